package translate

import (
	"github.com/cayleygraph/quad"

	"github.com/c360studio/semowl/owl"
	"github.com/c360studio/semowl/provenance"
	"github.com/c360studio/semowl/rdf"
	"github.com/c360studio/semowl/vocabulary/owl2"
)

// Translator maps one axiom type onto graph triples and back.
type Translator interface {
	// AxiomType returns the axiom type this translator handles.
	AxiomType() owl.AxiomType

	// Write adds the triples of ax to g.
	Write(g rdf.Graph, ax owl.Axiom) error

	// Statements lists the statements of g this translator can read.
	Statements(g rdf.Graph, cfg Config) []rdf.Triple

	// Read reconstructs the axiom anchored at stmt together with every
	// triple that encodes it.
	Read(g rdf.Graph, stmt rdf.Triple, cfg Config) (provenance.Wrapped[owl.Axiom], error)
}

type (
	// acceptFunc filters candidate statements.
	acceptFunc func(r *reader, t rdf.Triple) bool

	// buildFunc reconstructs an axiom from its main triple and returns the
	// provenance of its operands.
	buildFunc func(r *reader, t rdf.Triple, anns owl.Annotations) (owl.Axiom, []provenance.TripleSource, error)
)

func checkType(t owl.AxiomType, ax owl.Axiom) error {
	if ax == nil {
		return illegalArgumentf("nil axiom")
	}
	if ax.AxiomType() != t {
		return illegalArgumentf("%s translator cannot write %s", t, ax.AxiomType())
	}
	return nil
}

// as returns ax as an A, or the zero A when ax has another dynamic type.
func as[A owl.Axiom](ax owl.Axiom) A {
	a, _ := ax.(A)
	return a
}

func notStatement(stmt rdf.Triple, t owl.AxiomType) error {
	return translationErrorf("%s does not encode %s", stmt, t)
}

// singleTriple writes one main triple annotated with an owl:Axiom
// reification. A fixed object turns it into the property-type shape.
type singleTriple struct {
	typ       owl.AxiomType
	predicate string
	object    string
	check     func(ax owl.Axiom) error
	operands  func(ax owl.Axiom) (subject, object any)
	accepts   acceptFunc
	build     buildFunc
}

func (s singleTriple) AxiomType() owl.AxiomType { return s.typ }

func (s singleTriple) Write(g rdf.Graph, ax owl.Axiom) error {
	if err := checkType(s.typ, ax); err != nil {
		return err
	}
	if s.check != nil {
		if err := s.check(ax); err != nil {
			return err
		}
	}
	w := newWriter(g, ax)
	subject, object := s.operands(ax)
	sn, err := w.node(subject)
	if err != nil {
		return err
	}
	on, err := w.node(object)
	if err != nil {
		return err
	}
	return w.triple(sn, s.predicate, on, ax.AxiomAnnotations())
}

func (s singleTriple) Statements(g rdf.Graph, cfg Config) []rdf.Triple {
	var o quad.Value
	if s.object != "" {
		o = quad.IRI(s.object)
	}
	return candidates(newReader(g, cfg), g.Find(nil, quad.IRI(s.predicate), o), s.accepts)
}

func (s singleTriple) Read(g rdf.Graph, stmt rdf.Triple, cfg Config) (provenance.Wrapped[owl.Axiom], error) {
	r := newAssumingReader(g, cfg)
	if !rdf.Is(stmt.Predicate, s.predicate) || (s.object != "" && !rdf.Is(stmt.Object, s.object)) {
		return provenance.Wrapped[owl.Axiom]{}, notStatement(stmt, s.typ)
	}
	return readMain(r, stmt, s.typ, s.accepts, s.build)
}

// readMain reads an axiom whose main triple carries its annotations through
// owl:Axiom reifications.
func readMain(r *reader, stmt rdf.Triple, typ owl.AxiomType, accepts acceptFunc, build buildFunc) (provenance.Wrapped[owl.Axiom], error) {
	var zero provenance.Wrapped[owl.Axiom]
	if !r.g.Contains(stmt) || (accepts != nil && !accepts(r, stmt)) {
		return zero, notStatement(stmt, typ)
	}
	anns, err := r.axiomAnnotations(stmt)
	if err != nil {
		return zero, err
	}
	ax, parts, err := build(r, stmt, owl.Annotations(anns.Object()))
	if err != nil {
		return zero, err
	}
	return provenance.New(ax, stmt).Append(parts...).Append(anns), nil
}

func candidates(r *reader, ts []rdf.Triple, accepts acceptFunc) []rdf.Triple {
	if accepts == nil {
		return ts
	}
	out := ts[:0:0]
	for _, t := range ts {
		if accepts(r, t) {
			out = append(out, t)
		}
	}
	return out
}

// operandReader reads one operand kind of an n-ary axiom.
type operandReader[T provenance.Object] struct {
	accepts func(r *reader, v quad.Value) bool
	read    func(r *reader, v quad.Value) (provenance.Wrapped[T], error)
}

func (o operandReader[T]) all(r *reader, vs ...quad.Value) bool {
	for _, v := range vs {
		if !o.accepts(r, v) {
			return false
		}
	}
	return true
}

var (
	classOperand = operandReader[owl.ClassExpression]{
		accepts: (*reader).isClass,
		read:    (*reader).classExpression,
	}
	objectPropertyOperand = operandReader[owl.ObjectPropertyExpression]{
		accepts: (*reader).isObjectPropertyExpression,
		read:    (*reader).objectProperty,
	}
	dataPropertyOperand = operandReader[owl.DataProperty]{
		accepts: func(r *reader, v quad.Value) bool { return r.is(v, owl.EntityDataProperty) },
		read: func(r *reader, v quad.Value) (provenance.Wrapped[owl.DataProperty], error) {
			dp, err := r.dataProperty(v)
			return provenance.New(dp), err
		},
	}
	individualOperand = operandReader[owl.Individual]{
		accepts: (*reader).isIndividual,
		read: func(r *reader, v quad.Value) (provenance.Wrapped[owl.Individual], error) {
			i, err := r.individual(v)
			return provenance.New(i), err
		},
	}
)

// nary writes an axiom over two or more operands as a star of pairwise
// triples anchored at the first named operand. Each pairwise triple carries
// the full annotation set. Reading yields one binary axiom per triple.
type nary[T provenance.Object] struct {
	typ       owl.AxiomType
	predicate string
	operands  func(ax owl.Axiom) []T
	operand   operandReader[T]
	build     func(ops []T, anns owl.Annotations) owl.Axiom
}

func (n nary[T]) AxiomType() owl.AxiomType { return n.typ }

func (n nary[T]) Write(g rdf.Graph, ax owl.Axiom) error {
	if err := checkType(n.typ, ax); err != nil {
		return err
	}
	ops := n.operands(ax)
	if len(ops) < 2 {
		return illegalArgumentf("%s needs at least two operands, got %d", n.typ, len(ops))
	}
	w := newWriter(g, ax)
	vs, err := nodes(w, ops)
	if err != nil {
		return err
	}
	anchor := -1
	for i, v := range vs {
		if rdf.IsIRI(v) {
			anchor = i
			break
		}
	}
	if anchor < 0 {
		return translationErrorf("%s has no named operand", n.typ)
	}
	for i, v := range vs {
		if i == anchor {
			continue
		}
		if err := w.triple(vs[anchor], n.predicate, v, ax.AxiomAnnotations()); err != nil {
			return err
		}
	}
	return nil
}

func (n nary[T]) Statements(g rdf.Graph, cfg Config) []rdf.Triple {
	return candidates(newReader(g, cfg), g.Find(nil, quad.IRI(n.predicate), nil), n.accepts)
}

func (n nary[T]) accepts(r *reader, t rdf.Triple) bool {
	return n.operand.all(r, t.Subject, t.Object)
}

func (n nary[T]) Read(g rdf.Graph, stmt rdf.Triple, cfg Config) (provenance.Wrapped[owl.Axiom], error) {
	if !rdf.Is(stmt.Predicate, n.predicate) {
		return provenance.Wrapped[owl.Axiom]{}, notStatement(stmt, n.typ)
	}
	return readMain(newAssumingReader(g, cfg), stmt, n.typ, n.accepts, n.pair)
}

func (n nary[T]) pair(r *reader, t rdf.Triple, anns owl.Annotations) (owl.Axiom, []provenance.TripleSource, error) {
	ops, parts, err := readAll([]quad.Value{t.Subject, t.Object}, func(v quad.Value) (provenance.Wrapped[T], error) {
		return n.operand.read(r, v)
	})
	if err != nil {
		return nil, nil, err
	}
	return n.build(ops, anns), parts, nil
}

// twoWayNary writes two operands as one binary triple and more operands as
// a typed blank node listing them. Annotations on the node form attach
// directly to the node.
type twoWayNary[T provenance.Object] struct {
	typ       owl.AxiomType
	predicate string
	nodeType  string
	members   string
	operands  func(ax owl.Axiom) []T
	operand   operandReader[T]
	build     func(ops []T, anns owl.Annotations) owl.Axiom
}

func (n twoWayNary[T]) AxiomType() owl.AxiomType { return n.typ }

func (n twoWayNary[T]) Write(g rdf.Graph, ax owl.Axiom) error {
	if err := checkType(n.typ, ax); err != nil {
		return err
	}
	ops := n.operands(ax)
	if len(ops) < 2 {
		return illegalArgumentf("%s needs at least two operands, got %d", n.typ, len(ops))
	}
	w := newWriter(g, ax)
	vs, err := nodes(w, ops)
	if err != nil {
		return err
	}
	if len(vs) == 2 {
		return w.triple(vs[0], n.predicate, vs[1], ax.AxiomAnnotations())
	}
	b := w.typed(n.nodeType)
	w.add(b, n.members, w.list("", vs))
	return w.annotate(b, ax.AxiomAnnotations())
}

func (n twoWayNary[T]) Statements(g rdf.Graph, cfg Config) []rdf.Triple {
	r := newReader(g, cfg)
	out := candidates(r, g.Find(nil, quad.IRI(n.predicate), nil), n.acceptsPair)
	return append(out, candidates(r, g.Find(nil, quad.IRI(owl2.RdfType), quad.IRI(n.nodeType)), n.acceptsNode)...)
}

func (n twoWayNary[T]) acceptsPair(r *reader, t rdf.Triple) bool {
	return n.operand.all(r, t.Subject, t.Object)
}

func (n twoWayNary[T]) acceptsNode(r *reader, t rdf.Triple) bool {
	if !rdf.IsBlank(t.Subject) {
		return false
	}
	items, _, err := r.listAt(t.Subject, n.memberPredicate(r, t.Subject))
	return err == nil && n.operand.all(r, items...)
}

// memberPredicate returns the list predicate used by node. owl:AllDifferent
// may use either owl:members or owl:distinctMembers.
func (n twoWayNary[T]) memberPredicate(r *reader, node quad.Value) string {
	if n.nodeType == owl2.OwlAllDifferent {
		if _, ok := rdf.Object(r.g, node, owl2.OwlMembers); ok {
			return owl2.OwlMembers
		}
		return owl2.OwlDistinctMembers
	}
	return n.members
}

func (n twoWayNary[T]) Read(g rdf.Graph, stmt rdf.Triple, cfg Config) (provenance.Wrapped[owl.Axiom], error) {
	var zero provenance.Wrapped[owl.Axiom]
	r := newAssumingReader(g, cfg)
	read := func(v quad.Value) (provenance.Wrapped[T], error) { return n.operand.read(r, v) }

	switch {
	case rdf.Is(stmt.Predicate, n.predicate):
		return readMain(r, stmt, n.typ, n.acceptsPair, func(r *reader, t rdf.Triple, anns owl.Annotations) (owl.Axiom, []provenance.TripleSource, error) {
			ops, parts, err := readAll([]quad.Value{t.Subject, t.Object}, read)
			if err != nil {
				return nil, nil, err
			}
			return n.build(ops, anns), parts, nil
		})
	case rdf.Is(stmt.Predicate, owl2.RdfType) && rdf.Is(stmt.Object, n.nodeType) && rdf.IsBlank(stmt.Subject):
		if !g.Contains(stmt) {
			return zero, notStatement(stmt, n.typ)
		}
		items, listTriples, err := r.listAt(stmt.Subject, n.memberPredicate(r, stmt.Subject))
		if err != nil {
			return zero, err
		}
		if len(items) < 2 {
			return zero, translationErrorf("%s lists %d members", rdf.TermKey(stmt.Subject), len(items))
		}
		ops, parts, err := readAll(items, read)
		if err != nil {
			return zero, err
		}
		anns, err := r.annotationsOn(stmt.Subject)
		if err != nil {
			return zero, err
		}
		ax := n.build(ops, owl.Annotations(anns.Object()))
		return provenance.New(ax, stmt).Add(listTriples...).Append(parts...).Append(anns), nil
	}
	return zero, notStatement(stmt, n.typ)
}

// subChainedList writes (subject predicate list) where the list holds the
// ordered operands of the axiom.
type subChainedList struct {
	typ       owl.AxiomType
	predicate string
	min       int
	operands  func(ax owl.Axiom) (subject any, items []any)
	accepts   acceptFunc
	build     func(r *reader, subject quad.Value, items []quad.Value, anns owl.Annotations) (owl.Axiom, []provenance.TripleSource, error)
}

func (s subChainedList) AxiomType() owl.AxiomType { return s.typ }

func (s subChainedList) Write(g rdf.Graph, ax owl.Axiom) error {
	if err := checkType(s.typ, ax); err != nil {
		return err
	}
	subject, items := s.operands(ax)
	if len(items) < s.min {
		return illegalArgumentf("%s needs at least %d list operands, got %d", s.typ, s.min, len(items))
	}
	w := newWriter(g, ax)
	sn, err := w.node(subject)
	if err != nil {
		return err
	}
	vs, err := nodes(w, items)
	if err != nil {
		return err
	}
	return w.triple(sn, s.predicate, w.list("", vs), ax.AxiomAnnotations())
}

func (s subChainedList) Statements(g rdf.Graph, cfg Config) []rdf.Triple {
	return candidates(newReader(g, cfg), g.Find(nil, quad.IRI(s.predicate), nil), s.accepts)
}

func (s subChainedList) Read(g rdf.Graph, stmt rdf.Triple, cfg Config) (provenance.Wrapped[owl.Axiom], error) {
	if !rdf.Is(stmt.Predicate, s.predicate) {
		return provenance.Wrapped[owl.Axiom]{}, notStatement(stmt, s.typ)
	}
	return readMain(newAssumingReader(g, cfg), stmt, s.typ, s.accepts, func(r *reader, t rdf.Triple, anns owl.Annotations) (owl.Axiom, []provenance.TripleSource, error) {
		items, listTriples, err := r.list(t.Object)
		if err != nil {
			return nil, nil, err
		}
		if len(items) < s.min {
			return nil, nil, translationErrorf("%s lists %d operands", t, len(items))
		}
		ax, parts, err := s.build(r, t.Subject, items, anns)
		if err != nil {
			return nil, nil, err
		}
		return ax, append(parts, provenance.New[owl.Axiom](ax, listTriples...)), nil
	})
}

// negativeAssertion writes a typed owl:NegativePropertyAssertion node and
// annotates it directly.
type negativeAssertion struct {
	typ      owl.AxiomType
	target   string
	operands func(ax owl.Axiom) (source, property, target any)
	build    func(e *exprReader, anns owl.Annotations) owl.Axiom
}

func (n negativeAssertion) AxiomType() owl.AxiomType { return n.typ }

func (n negativeAssertion) Write(g rdf.Graph, ax owl.Axiom) error {
	if err := checkType(n.typ, ax); err != nil {
		return err
	}
	w := newWriter(g, ax)
	source, property, target := n.operands(ax)
	vs, err := nodes(w, []any{source, property, target})
	if err != nil {
		return err
	}
	b := w.typed(owl2.OwlNegativePropertyAssertion)
	w.add(b, owl2.OwlSourceIndividual, vs[0])
	w.add(b, owl2.OwlAssertionProperty, vs[1])
	w.add(b, n.target, vs[2])
	return w.annotate(b, ax.AxiomAnnotations())
}

func (n negativeAssertion) Statements(g rdf.Graph, cfg Config) []rdf.Triple {
	return candidates(newReader(g, cfg), g.Find(nil, quad.IRI(owl2.RdfType), quad.IRI(owl2.OwlNegativePropertyAssertion)), n.accepts)
}

func (n negativeAssertion) accepts(r *reader, t rdf.Triple) bool {
	_, ok := rdf.Object(r.g, t.Subject, n.target)
	return ok && rdf.IsBlank(t.Subject)
}

func (n negativeAssertion) Read(g rdf.Graph, stmt rdf.Triple, cfg Config) (provenance.Wrapped[owl.Axiom], error) {
	return readNode(newAssumingReader(g, cfg), stmt, n.typ, owl2.OwlNegativePropertyAssertion, n.accepts, n.build)
}

// readNode reads an axiom encoded as a typed blank node carrying its
// annotations directly.
func readNode(r *reader, stmt rdf.Triple, typ owl.AxiomType, nodeType string, accepts acceptFunc, build func(e *exprReader, anns owl.Annotations) owl.Axiom) (provenance.Wrapped[owl.Axiom], error) {
	var zero provenance.Wrapped[owl.Axiom]
	if !rdf.Is(stmt.Predicate, owl2.RdfType) || !rdf.Is(stmt.Object, nodeType) || !r.g.Contains(stmt) || !accepts(r, stmt) {
		return zero, notStatement(stmt, typ)
	}
	anns, err := r.annotationsOn(stmt.Subject)
	if err != nil {
		return zero, err
	}
	if err := r.enter(stmt.Subject); err != nil {
		return zero, err
	}
	defer r.leave(stmt.Subject)

	e := r.on(stmt.Subject)
	ax := build(e, owl.Annotations(anns.Object()))
	if e.err != nil {
		return zero, e.err
	}
	return provenance.New(ax, stmt).Add(e.triples...).Append(e.parts...).Append(anns), nil
}

// swrlRule writes a swrl:Imp node with typed atom lists for body and head.
type swrlRule struct{}

func (swrlRule) AxiomType() owl.AxiomType { return owl.AxiomSWRLRule }

func (swrlRule) Write(g rdf.Graph, ax owl.Axiom) error {
	if err := checkType(owl.AxiomSWRLRule, ax); err != nil {
		return err
	}
	rule := as[owl.SWRLRule](ax)
	w := newWriter(g, ax)
	body, err := nodes(w, rule.Body)
	if err != nil {
		return err
	}
	head, err := nodes(w, rule.Head)
	if err != nil {
		return err
	}
	b := w.typed(owl2.SwrlImp)
	w.add(b, owl2.SwrlBody, w.list(owl2.SwrlAtomList, body))
	w.add(b, owl2.SwrlHead, w.list(owl2.SwrlAtomList, head))
	return w.annotate(b, ax.AxiomAnnotations())
}

func (s swrlRule) Statements(g rdf.Graph, cfg Config) []rdf.Triple {
	return candidates(newReader(g, cfg), g.Find(nil, quad.IRI(owl2.RdfType), quad.IRI(owl2.SwrlImp)), s.accepts)
}

func (swrlRule) accepts(_ *reader, t rdf.Triple) bool {
	return rdf.IsBlank(t.Subject)
}

func (s swrlRule) Read(g rdf.Graph, stmt rdf.Triple, cfg Config) (provenance.Wrapped[owl.Axiom], error) {
	return readNode(newAssumingReader(g, cfg), stmt, owl.AxiomSWRLRule, owl2.SwrlImp, s.accepts, func(e *exprReader, anns owl.Annotations) owl.Axiom {
		return owl.SWRLRule{
			Body:        e.atoms(owl2.SwrlBody),
			Head:        e.atoms(owl2.SwrlHead),
			Annotations: anns,
		}
	})
}

func (e *exprReader) atoms(p string) []owl.Atom {
	items := e.items(p)
	if e.err != nil {
		return nil
	}
	out, parts, err := readAll(items, e.r.atom)
	if err != nil {
		e.fail(err)
		return nil
	}
	e.parts = append(e.parts, parts...)
	return out
}
