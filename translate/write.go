package translate

import (
	"github.com/cayleygraph/quad"

	"github.com/c360studio/semowl/owl"
	"github.com/c360studio/semowl/rdf"
	"github.com/c360studio/semowl/vocabulary/owl2"
)

// writer materializes OWL objects as graph nodes.
type writer struct {
	g rdf.Graph
}

func newWriter(g rdf.Graph, ax owl.Axiom) *writer {
	return &writer{g: scope(g, ax)}
}

func (w *writer) add(s quad.Value, p string, o quad.Value) {
	w.g.Add(rdf.T(s, p, o))
}

func (w *writer) typed(typ string) quad.BNode {
	b := w.g.NewBlankNode()
	w.add(b, owl2.RdfType, quad.IRI(typ))
	return b
}

// triple asserts (s p o) and reifies annotations on it with an owl:Axiom node.
func (w *writer) triple(s quad.Value, p string, o quad.Value, anns []owl.Annotation) error {
	w.add(s, p, o)
	if len(anns) == 0 {
		return nil
	}
	return w.reify(owl2.OwlAxiom, s, quad.IRI(p), o, anns)
}

// reify writes the node describing (s p o) and the annotations on it.
func (w *writer) reify(typ string, s, p, o quad.Value, anns []owl.Annotation) error {
	b := w.typed(typ)
	w.add(b, owl2.OwlAnnotatedSource, s)
	w.add(b, owl2.OwlAnnotatedProperty, p)
	w.add(b, owl2.OwlAnnotatedTarget, o)
	return w.annotate(b, anns)
}

// annotate attaches anns directly to subject. Nested annotations are reified
// with owl:Annotation nodes anchored at subject.
func (w *writer) annotate(subject quad.Value, anns []owl.Annotation) error {
	for _, a := range anns {
		if a.Property == "" {
			return illegalArgumentf("annotation without property")
		}
		v, err := w.annotationValue(a.Value)
		if err != nil {
			return err
		}
		p := quad.IRI(a.Property)
		w.g.Add(rdf.NewTriple(subject, p, v))
		if len(a.Annotations) > 0 {
			if err := w.reify(owl2.OwlAnnotation, subject, p, v, a.Annotations); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *writer) annotationValue(v owl.AnnotationValue) (quad.Value, error) {
	switch x := v.(type) {
	case nil:
		return nil, illegalArgumentf("annotation without value")
	case owl.IRI:
		return w.node(x)
	case owl.AnonymousIndividual:
		return w.node(x)
	case owl.Literal:
		return literalTerm(x), nil
	default:
		return nil, illegalArgumentf("unsupported annotation value %T", v)
	}
}

// list writes an RDF list of the nodes of items.
func (w *writer) list(typ string, items []quad.Value) quad.Value {
	return rdf.CreateList(w.g, typ, items...)
}

// node returns the graph node for obj, writing the triples of anonymous
// structures. Named objects map to their IRI.
func (w *writer) node(obj any) (quad.Value, error) {
	switch x := obj.(type) {
	case nil:
		return nil, illegalArgumentf("nil operand")
	case owl.IRI:
		return named(string(x))
	case owl.Entity:
		return named(string(x.IRI()))
	case owl.AnonymousIndividual:
		if x == "" {
			return nil, illegalArgumentf("anonymous individual without node id")
		}
		return quad.BNode(x), nil
	case owl.Literal:
		return literalTerm(x), nil
	case owl.Variable:
		v, err := named(string(x))
		if err != nil {
			return nil, err
		}
		w.add(v, owl2.RdfType, quad.IRI(owl2.SwrlVariable))
		return v, nil
	case owl.ObjectInverseOf:
		p, err := named(string(x.Property))
		if err != nil {
			return nil, err
		}
		b := w.g.NewBlankNode()
		w.add(b, owl2.OwlInverseOf, p)
		return b, nil
	case owl.ClassExpression:
		return w.classExpression(x)
	case owl.DataRange:
		return w.dataRange(x)
	case owl.Atom:
		return w.atom(x)
	default:
		return nil, illegalArgumentf("unsupported operand %T", obj)
	}
}

func named(iri string) (quad.Value, error) {
	if iri == "" {
		return nil, illegalArgumentf("empty IRI")
	}
	return quad.IRI(iri), nil
}

// nodes maps every element of xs through w.node.
func nodes[T any](w *writer, xs []T) ([]quad.Value, error) {
	out := make([]quad.Value, 0, len(xs))
	for _, x := range xs {
		n, err := w.node(x)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func literalTerm(l owl.Literal) quad.Value {
	l = l.Normalize()
	switch {
	case l.Lang != "":
		return quad.LangString{Value: quad.String(l.Lexical), Lang: l.Lang}
	case l.Datatype == owl2.XsdString:
		return quad.String(l.Lexical)
	default:
		return quad.TypedString{Value: quad.String(l.Lexical), Type: quad.IRI(l.Datatype)}
	}
}
