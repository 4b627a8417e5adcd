package translate

import (
	"sort"
	"strings"

	"github.com/cayleygraph/quad"

	"github.com/c360studio/semowl/owl"
	"github.com/c360studio/semowl/provenance"
	"github.com/c360studio/semowl/rdf"
	"github.com/c360studio/semowl/vocabulary/owl2"
)

// reader reconstructs OWL objects from graph nodes. A reader serves one
// read call.
type reader struct {
	g      rdf.Graph
	cfg    Config
	assume bool
	kinds  map[entityKey]bool
	stack  map[string]bool
}

func newReader(g rdf.Graph, cfg Config) *reader {
	return &reader{
		g:     g,
		cfg:   cfg,
		kinds: make(map[entityKey]bool),
		stack: make(map[string]bool),
	}
}

// newAssumingReader returns a reader that views undeclared IRIs as whatever
// entity kind the statement being read requires.
func newAssumingReader(g rdf.Graph, cfg Config) *reader {
	r := newReader(g, cfg)
	r.assume = true
	return r
}

// enter marks node as being read. Re-entering a node that is still on the
// stack means the structure refers to itself.
func (r *reader) enter(node quad.Value) error {
	k := rdf.TermKey(node)
	if r.stack[k] {
		return translationErrorf("self-referential structure at %s", k)
	}
	r.stack[k] = true
	return nil
}

func (r *reader) leave(node quad.Value) {
	delete(r.stack, rdf.TermKey(node))
}

// annotationSet gives a slice of annotations a canonical form so that it
// can travel in a provenance wrapper.
type annotationSet []owl.Annotation

func (a annotationSet) String() string {
	parts := make([]string, 0, len(a))
	for _, x := range a {
		parts = append(parts, x.String())
	}
	sort.Strings(parts)
	return "{" + strings.Join(parts, " ") + "}"
}

// reifications returns the nodes of type typ that describe (s p o).
func (r *reader) reifications(typ string, s, p, o quad.Value) []quad.Value {
	var out []quad.Value
	for _, b := range rdf.Subjects(r.g, owl2.OwlAnnotatedSource, s) {
		if !rdf.IsBlank(b) || !rdf.HasType(r.g, b, typ) {
			continue
		}
		if r.g.Contains(rdf.NewTriple(b, quad.IRI(owl2.OwlAnnotatedProperty), p)) &&
			r.g.Contains(rdf.NewTriple(b, quad.IRI(owl2.OwlAnnotatedTarget), o)) {
			out = append(out, b)
		}
	}
	return out
}

func reificationTriples(b quad.Value, typ string, s, p, o quad.Value) []rdf.Triple {
	return []rdf.Triple{
		rdf.T(b, owl2.RdfType, quad.IRI(typ)),
		rdf.NewTriple(b, quad.IRI(owl2.OwlAnnotatedSource), s),
		rdf.NewTriple(b, quad.IRI(owl2.OwlAnnotatedProperty), p),
		rdf.NewTriple(b, quad.IRI(owl2.OwlAnnotatedTarget), o),
	}
}

// axiomAnnotations gathers the annotations reified on stmt with owl:Axiom
// nodes.
func (r *reader) axiomAnnotations(stmt rdf.Triple) (provenance.Wrapped[annotationSet], error) {
	nodes := r.reifications(owl2.OwlAxiom, stmt.Subject, stmt.Predicate, stmt.Object)
	if r.bulkDeclaration(stmt, nodes) {
		return provenance.New(annotationSet(nil)), nil
	}

	var (
		anns    annotationSet
		triples []rdf.Triple
	)
	for _, b := range nodes {
		w, err := r.annotationsOn(b)
		if err != nil {
			return provenance.Wrapped[annotationSet]{}, err
		}
		anns = append(anns, w.Object()...)
		triples = append(triples, reificationTriples(b, owl2.OwlAxiom, stmt.Subject, stmt.Predicate, stmt.Object)...)
		triples = append(triples, w.Triples()...)
	}
	return provenance.New(anns, triples...), nil
}

// bulkDeclaration reports whether the annotations on a declaration are to
// be read as annotation assertions instead.
func (r *reader) bulkDeclaration(stmt rdf.Triple, nodes []quad.Value) bool {
	if !r.cfg.BulkAnnotationAssertions || !isDeclaration(stmt) || len(nodes) == 0 {
		return false
	}
	for _, b := range nodes {
		for _, t := range r.annotationTriples(b) {
			if len(r.reifications(owl2.OwlAnnotation, t.Subject, t.Predicate, t.Object)) > 0 {
				return false
			}
		}
	}
	return true
}

func isDeclaration(stmt rdf.Triple) bool {
	if !rdf.Is(stmt.Predicate, owl2.RdfType) || !rdf.IsIRI(stmt.Subject) {
		return false
	}
	typ, ok := rdf.IRIOf(stmt.Object)
	return ok && owl2.DeclarationTypes[typ]
}

// annotationTriples lists the (b p v) triples of b whose predicate is an
// annotation property.
func (r *reader) annotationTriples(b quad.Value) []rdf.Triple {
	var out []rdf.Triple
	for _, t := range r.g.Find(b, nil, nil) {
		if r.isAnnotationPredicate(t.Predicate) {
			out = append(out, t)
		}
	}
	return out
}

// annotationsOn reads the annotations attached directly to subject,
// descending into owl:Annotation reifications for nested annotations.
func (r *reader) annotationsOn(subject quad.Value) (provenance.Wrapped[annotationSet], error) {
	if err := r.enter(subject); err != nil {
		return provenance.Wrapped[annotationSet]{}, err
	}
	defer r.leave(subject)

	var (
		anns    annotationSet
		triples []rdf.Triple
	)
	for _, t := range r.annotationTriples(subject) {
		a, ts, err := r.annotation(t)
		if err != nil {
			return provenance.Wrapped[annotationSet]{}, err
		}
		anns = append(anns, a)
		triples = append(triples, ts...)
	}
	return provenance.New(anns, triples...), nil
}

// annotation reads the annotation asserted by t together with its nested
// annotations.
func (r *reader) annotation(t rdf.Triple) (owl.Annotation, []rdf.Triple, error) {
	prop, _ := rdf.IRIOf(t.Predicate)
	value, err := r.annotationValue(t.Object)
	if err != nil {
		return owl.Annotation{}, nil, err
	}
	a := owl.Annotation{Property: owl.AnnotationProperty(prop), Value: value}
	triples := []rdf.Triple{t}
	for _, b := range r.reifications(owl2.OwlAnnotation, t.Subject, t.Predicate, t.Object) {
		nested, err := r.annotationsOn(b)
		if err != nil {
			return owl.Annotation{}, nil, err
		}
		a.Annotations = append(a.Annotations, nested.Object()...)
		triples = append(triples, reificationTriples(b, owl2.OwlAnnotation, t.Subject, t.Predicate, t.Object)...)
		triples = append(triples, nested.Triples()...)
	}
	return a, triples, nil
}

func (r *reader) annotationValue(v quad.Value) (owl.AnnotationValue, error) {
	switch x := v.(type) {
	case quad.IRI:
		return owl.IRI(x), nil
	case quad.BNode:
		return owl.AnonymousIndividual(x), nil
	}
	if l, ok := literalOf(v); ok {
		return l, nil
	}
	return nil, translationErrorf("bad annotation value %s", rdf.TermKey(v))
}

func (r *reader) annotationSubject(v quad.Value) (owl.AnnotationSubject, error) {
	switch x := v.(type) {
	case quad.IRI:
		return owl.IRI(x), nil
	case quad.BNode:
		return owl.AnonymousIndividual(x), nil
	}
	return nil, translationErrorf("bad annotation subject %s", rdf.TermKey(v))
}

func literalOf(v quad.Value) (owl.Literal, bool) {
	switch x := rdf.Normalize(v).(type) {
	case quad.String:
		return owl.StringLiteral(string(x)), true
	case quad.LangString:
		return owl.LangLiteral(string(x.Value), x.Lang), true
	case quad.TypedString:
		return owl.TypedLiteral(string(x.Value), owl.IRI(x.Type)), true
	default:
		return owl.Literal{}, false
	}
}

// literal reads a literal node.
func (r *reader) literal(v quad.Value) (owl.Literal, error) {
	l, ok := literalOf(v)
	if !ok {
		return owl.Literal{}, translationErrorf("%s is not a literal", rdf.TermKey(v))
	}
	return l, nil
}

// iri reads a named node.
func (r *reader) iri(v quad.Value) (string, error) {
	iri, ok := rdf.IRIOf(v)
	if !ok {
		return "", translationErrorf("%s is not an IRI", rdf.TermKey(v))
	}
	return iri, nil
}

// entity reads a named node as an entity of kind t. The entity must be
// declared, built in, or implied.
func (r *reader) entity(v quad.Value, t owl.EntityType) (owl.Entity, error) {
	iri, err := r.iri(v)
	if err != nil {
		return nil, err
	}
	if !r.is(v, t) {
		return nil, translationErrorf("%s is not a known %s", iri, t)
	}
	return owl.NewEntity(t, owl.IRI(iri)), nil
}

func (r *reader) dataProperty(v quad.Value) (owl.DataProperty, error) {
	e, err := r.entity(v, owl.EntityDataProperty)
	if err != nil {
		return "", err
	}
	return e.(owl.DataProperty), nil
}

func (r *reader) annotationProperty(v quad.Value) (owl.AnnotationProperty, error) {
	e, err := r.entity(v, owl.EntityAnnotationProperty)
	if err != nil {
		return "", err
	}
	return e.(owl.AnnotationProperty), nil
}

// objectProperty reads a named object property or an owl:inverseOf node.
func (r *reader) objectProperty(v quad.Value) (provenance.Wrapped[owl.ObjectPropertyExpression], error) {
	if rdf.IsBlank(v) {
		target, ok := rdf.Object(r.g, v, owl2.OwlInverseOf)
		if !ok {
			return provenance.Wrapped[owl.ObjectPropertyExpression]{}, translationErrorf("%s is not an inverse property expression", rdf.TermKey(v))
		}
		iri, err := r.iri(target)
		if err != nil {
			return provenance.Wrapped[owl.ObjectPropertyExpression]{}, err
		}
		inv := owl.ObjectInverseOf{Property: owl.ObjectProperty(iri)}
		return provenance.New[owl.ObjectPropertyExpression](inv, rdf.T(v, owl2.OwlInverseOf, target)), nil
	}
	e, err := r.entity(v, owl.EntityObjectProperty)
	if err != nil {
		return provenance.Wrapped[owl.ObjectPropertyExpression]{}, err
	}
	return provenance.New[owl.ObjectPropertyExpression](e.(owl.ObjectProperty)), nil
}

// individual reads a named or anonymous individual.
func (r *reader) individual(v quad.Value) (owl.Individual, error) {
	switch x := v.(type) {
	case quad.IRI:
		return owl.NamedIndividual(x), nil
	case quad.BNode:
		if r.isStructural(v) {
			return nil, translationErrorf("blank node %s is not an individual", rdf.TermKey(v))
		}
		return owl.AnonymousIndividual(x), nil
	}
	return nil, translationErrorf("%s is not an individual", rdf.TermKey(v))
}

// list reads an RDF list and returns its items and cell triples.
func (r *reader) list(head quad.Value) ([]quad.Value, []rdf.Triple, error) {
	items, triples, err := rdf.ReadList(r.g, head)
	if err != nil {
		return nil, nil, translationErrorf("%v", err)
	}
	return items, triples, nil
}

// listAt reads the list referenced by (s p ?).
func (r *reader) listAt(s quad.Value, p string) ([]quad.Value, []rdf.Triple, error) {
	head, ok := rdf.Object(r.g, s, p)
	if !ok {
		return nil, nil, translationErrorf("%s needs exactly one %s", rdf.TermKey(s), p)
	}
	items, triples, err := r.list(head)
	if err != nil {
		return nil, nil, err
	}
	return items, append([]rdf.Triple{rdf.T(s, p, head)}, triples...), nil
}

// readAll maps every node through read and unions the provenance.
func readAll[T provenance.Object](nodes []quad.Value, read func(quad.Value) (provenance.Wrapped[T], error)) ([]T, []provenance.TripleSource, error) {
	out := make([]T, 0, len(nodes))
	parts := make([]provenance.TripleSource, 0, len(nodes))
	for _, n := range nodes {
		w, err := read(n)
		if err != nil {
			return nil, nil, err
		}
		out = append(out, w.Object())
		parts = append(parts, w)
	}
	return out, parts, nil
}

// single reads one object node of (s p ?).
func (r *reader) single(s quad.Value, p string) (quad.Value, rdf.Triple, error) {
	o, ok := rdf.Object(r.g, s, p)
	if !ok {
		return nil, rdf.Triple{}, translationErrorf("%s needs exactly one %s", rdf.TermKey(s), p)
	}
	return o, rdf.T(s, p, o), nil
}
