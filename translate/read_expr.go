package translate

import (
	"strings"

	"github.com/cayleygraph/quad"

	"github.com/c360studio/semowl/owl"
	"github.com/c360studio/semowl/provenance"
	"github.com/c360studio/semowl/rdf"
	"github.com/c360studio/semowl/vocabulary/owl2"
)

// exprReader reads the operands of one anonymous node. The first failure
// sticks; later calls return zero values.
type exprReader struct {
	r       *reader
	node    quad.Value
	triples []rdf.Triple
	parts   []provenance.TripleSource
	err     error
}

func (r *reader) on(node quad.Value) *exprReader {
	return &exprReader{r: r, node: node}
}

func (e *exprReader) has(p string) bool {
	return len(e.r.g.Find(e.node, quad.IRI(p), nil)) > 0
}

// types records the rdf:type triples of the node.
func (e *exprReader) types() *exprReader {
	e.triples = append(e.triples, e.r.g.Find(e.node, quad.IRI(owl2.RdfType), nil)...)
	return e
}

func (e *exprReader) object(p string) quad.Value {
	if e.err != nil {
		return nil
	}
	o, t, err := e.r.single(e.node, p)
	if err != nil {
		e.err = err
		return nil
	}
	e.triples = append(e.triples, t)
	return o
}

func (e *exprReader) items(p string) []quad.Value {
	if e.err != nil {
		return nil
	}
	items, ts, err := e.r.listAt(e.node, p)
	if err != nil {
		e.err = err
		return nil
	}
	e.triples = append(e.triples, ts...)
	return items
}

func (e *exprReader) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

func (e *exprReader) class(p string) owl.ClassExpression {
	v := e.object(p)
	if e.err != nil {
		return nil
	}
	w, err := e.r.classExpression(v)
	if err != nil {
		e.fail(err)
		return nil
	}
	e.parts = append(e.parts, w)
	return w.Object()
}

func (e *exprReader) classes(p string) []owl.ClassExpression {
	items := e.items(p)
	if e.err != nil {
		return nil
	}
	out, parts, err := readAll(items, e.r.classExpression)
	if err != nil {
		e.fail(err)
		return nil
	}
	e.parts = append(e.parts, parts...)
	return out
}

func (e *exprReader) dataRange(p string) owl.DataRange {
	v := e.object(p)
	if e.err != nil {
		return nil
	}
	w, err := e.r.dataRange(v)
	if err != nil {
		e.fail(err)
		return nil
	}
	e.parts = append(e.parts, w)
	return w.Object()
}

func (e *exprReader) dataRanges(p string) []owl.DataRange {
	items := e.items(p)
	if e.err != nil {
		return nil
	}
	out, parts, err := readAll(items, e.r.dataRange)
	if err != nil {
		e.fail(err)
		return nil
	}
	e.parts = append(e.parts, parts...)
	return out
}

func (e *exprReader) objectProperty(p string) owl.ObjectPropertyExpression {
	v := e.object(p)
	if e.err != nil {
		return nil
	}
	w, err := e.r.objectProperty(v)
	if err != nil {
		e.fail(err)
		return nil
	}
	e.parts = append(e.parts, w)
	return w.Object()
}

func (e *exprReader) dataProperty(p string) owl.DataProperty {
	v := e.object(p)
	if e.err != nil {
		return ""
	}
	dp, err := e.r.dataProperty(v)
	e.fail(err)
	return dp
}

func (e *exprReader) dataProperties(p string) []owl.DataProperty {
	items := e.items(p)
	out := make([]owl.DataProperty, 0, len(items))
	for _, v := range items {
		dp, err := e.r.dataProperty(v)
		if err != nil {
			e.fail(err)
			return nil
		}
		out = append(out, dp)
	}
	return out
}

func (e *exprReader) individual(p string) owl.Individual {
	v := e.object(p)
	if e.err != nil {
		return nil
	}
	i, err := e.r.individual(v)
	e.fail(err)
	return i
}

func (e *exprReader) individuals(p string) []owl.Individual {
	items := e.items(p)
	out := make([]owl.Individual, 0, len(items))
	for _, v := range items {
		i, err := e.r.individual(v)
		if err != nil {
			e.fail(err)
			return nil
		}
		out = append(out, i)
	}
	return out
}

func (e *exprReader) literal(p string) owl.Literal {
	v := e.object(p)
	if e.err != nil {
		return owl.Literal{}
	}
	l, err := e.r.literal(v)
	e.fail(err)
	return l
}

func (e *exprReader) literals(p string) []owl.Literal {
	items := e.items(p)
	out := make([]owl.Literal, 0, len(items))
	for _, v := range items {
		l, err := e.r.literal(v)
		if err != nil {
			e.fail(err)
			return nil
		}
		out = append(out, l)
	}
	return out
}

func (e *exprReader) cardinality(p string) int {
	l := e.literal(p)
	if e.err != nil {
		return 0
	}
	n, err := l.Int()
	if err != nil || n < 0 {
		e.fail(translationErrorf("bad cardinality %s on %s", l, rdf.TermKey(e.node)))
		return 0
	}
	return n
}

// selfFlag reads owl:hasSelf, which must be a true xsd:boolean.
func (e *exprReader) selfFlag() {
	l := e.literal(owl2.OwlHasSelf)
	if e.err != nil {
		return
	}
	lexical := strings.TrimSpace(l.Lexical)
	if l.Datatype != owl2.XsdBoolean || (lexical != "true" && lexical != "1") {
		e.fail(translationErrorf("owl:hasSelf on %s must be \"true\"^^xsd:boolean, got %s", rdf.TermKey(e.node), l))
	}
}

// cardinalityOf reads whichever of the unqualified or qualified cardinality
// predicates the node carries and reports whether it was qualified.
func (e *exprReader) cardinalityOf(unqualified, qualified string) (int, bool) {
	if e.has(qualified) {
		return e.cardinality(qualified), true
	}
	return e.cardinality(unqualified), false
}

func (e *exprReader) done(w provenance.TripleSource) {
	e.parts = append(e.parts, w)
}

// classExpression reads a named class or an anonymous class expression.
// Unqualified cardinality restrictions get owl:Thing or rdfs:Literal as
// filler.
func (r *reader) classExpression(v quad.Value) (provenance.Wrapped[owl.ClassExpression], error) {
	var zero provenance.Wrapped[owl.ClassExpression]
	if iri, ok := rdf.IRIOf(v); ok {
		return provenance.New[owl.ClassExpression](owl.Class(iri)), nil
	}
	if err := r.enter(v); err != nil {
		return zero, err
	}
	defer r.leave(v)

	kind, err := r.classify(v)
	if err != nil {
		return zero, err
	}
	e := r.on(v).types()

	var ce owl.ClassExpression
	switch kind {
	case KindObjectIntersectionOf:
		ce = owl.ObjectIntersectionOf{Operands: e.classes(owl2.OwlIntersectionOf)}
	case KindObjectUnionOf:
		ce = owl.ObjectUnionOf{Operands: e.classes(owl2.OwlUnionOf)}
	case KindObjectComplementOf:
		ce = owl.ObjectComplementOf{Operand: e.class(owl2.OwlComplementOf)}
	case KindObjectOneOf:
		ce = owl.ObjectOneOf{Individuals: e.individuals(owl2.OwlOneOf)}
	case KindObjectSomeValuesFrom:
		ce = owl.ObjectSomeValuesFrom{Property: e.objectProperty(owl2.OwlOnProperty), Filler: e.class(owl2.OwlSomeValuesFrom)}
	case KindObjectAllValuesFrom:
		ce = owl.ObjectAllValuesFrom{Property: e.objectProperty(owl2.OwlOnProperty), Filler: e.class(owl2.OwlAllValuesFrom)}
	case KindObjectHasValue:
		ce = owl.ObjectHasValue{Property: e.objectProperty(owl2.OwlOnProperty), Value: e.individual(owl2.OwlHasValue)}
	case KindObjectHasSelf:
		ce = owl.ObjectHasSelf{Property: e.objectProperty(owl2.OwlOnProperty)}
		e.selfFlag()
	case KindObjectMinCardinality:
		p := e.objectProperty(owl2.OwlOnProperty)
		n, q := e.cardinalityOf(owl2.OwlMinCardinality, owl2.OwlMinQualifiedCardinality)
		ce = owl.ObjectMinCardinality{N: n, Property: p, Filler: e.onClass(q)}
	case KindObjectMaxCardinality:
		p := e.objectProperty(owl2.OwlOnProperty)
		n, q := e.cardinalityOf(owl2.OwlMaxCardinality, owl2.OwlMaxQualifiedCardinality)
		ce = owl.ObjectMaxCardinality{N: n, Property: p, Filler: e.onClass(q)}
	case KindObjectExactCardinality:
		p := e.objectProperty(owl2.OwlOnProperty)
		n, q := e.cardinalityOf(owl2.OwlCardinality, owl2.OwlQualifiedCardinality)
		ce = owl.ObjectExactCardinality{N: n, Property: p, Filler: e.onClass(q)}
	case KindDataSomeValuesFrom:
		ce = owl.DataSomeValuesFrom{Properties: e.restrictedDataProperties(), Filler: e.dataRange(owl2.OwlSomeValuesFrom)}
	case KindDataAllValuesFrom:
		ce = owl.DataAllValuesFrom{Properties: e.restrictedDataProperties(), Filler: e.dataRange(owl2.OwlAllValuesFrom)}
	case KindDataHasValue:
		ce = owl.DataHasValue{Property: e.dataProperty(owl2.OwlOnProperty), Value: e.literal(owl2.OwlHasValue)}
	case KindDataMinCardinality:
		p := e.dataProperty(owl2.OwlOnProperty)
		n, q := e.cardinalityOf(owl2.OwlMinCardinality, owl2.OwlMinQualifiedCardinality)
		ce = owl.DataMinCardinality{N: n, Property: p, Filler: e.onDataRange(q)}
	case KindDataMaxCardinality:
		p := e.dataProperty(owl2.OwlOnProperty)
		n, q := e.cardinalityOf(owl2.OwlMaxCardinality, owl2.OwlMaxQualifiedCardinality)
		ce = owl.DataMaxCardinality{N: n, Property: p, Filler: e.onDataRange(q)}
	case KindDataExactCardinality:
		p := e.dataProperty(owl2.OwlOnProperty)
		n, q := e.cardinalityOf(owl2.OwlCardinality, owl2.OwlQualifiedCardinality)
		ce = owl.DataExactCardinality{N: n, Property: p, Filler: e.onDataRange(q)}
	default:
		return zero, translationErrorf("%s is a %s, not a class expression", rdf.TermKey(v), kind)
	}
	if e.err != nil {
		return zero, e.err
	}
	return provenance.New(ce, e.triples...).Append(e.parts...), nil
}

func (e *exprReader) onClass(qualified bool) owl.ClassExpression {
	if !qualified {
		return owl.Thing
	}
	return e.class(owl2.OwlOnClass)
}

func (e *exprReader) onDataRange(qualified bool) owl.DataRange {
	if !qualified {
		return owl.TopLiteral
	}
	return e.dataRange(owl2.OwlOnDataRange)
}

func (e *exprReader) restrictedDataProperties() []owl.DataProperty {
	if e.has(owl2.OwlOnProperties) {
		return e.dataProperties(owl2.OwlOnProperties)
	}
	return []owl.DataProperty{e.dataProperty(owl2.OwlOnProperty)}
}

// dataRange reads a named datatype or an anonymous data range.
func (r *reader) dataRange(v quad.Value) (provenance.Wrapped[owl.DataRange], error) {
	var zero provenance.Wrapped[owl.DataRange]
	if iri, ok := rdf.IRIOf(v); ok {
		return provenance.New[owl.DataRange](owl.Datatype(iri)), nil
	}
	if err := r.enter(v); err != nil {
		return zero, err
	}
	defer r.leave(v)

	kind, err := r.classify(v)
	if err != nil {
		return zero, err
	}
	e := r.on(v).types()

	var dr owl.DataRange
	switch kind {
	case KindDataIntersectionOf:
		dr = owl.DataIntersectionOf{Operands: e.dataRanges(owl2.OwlIntersectionOf)}
	case KindDataUnionOf:
		dr = owl.DataUnionOf{Operands: e.dataRanges(owl2.OwlUnionOf)}
	case KindDataComplementOf:
		dr = owl.DataComplementOf{Operand: e.dataRange(owl2.OwlDatatypeComplementOf)}
	case KindDataOneOf:
		dr = owl.DataOneOf{Literals: e.literals(owl2.OwlOneOf)}
	case KindDatatypeRestriction:
		dr = e.datatypeRestriction()
	default:
		return zero, translationErrorf("%s is a %s, not a data range", rdf.TermKey(v), kind)
	}
	if e.err != nil {
		return zero, e.err
	}
	return provenance.New(dr, e.triples...).Append(e.parts...), nil
}

func (e *exprReader) datatypeRestriction() owl.DatatypeRestriction {
	dt := e.object(owl2.OwlOnDatatype)
	cells := e.items(owl2.OwlWithRestrictions)
	if e.err != nil {
		return owl.DatatypeRestriction{}
	}
	iri, err := e.r.iri(dt)
	if err != nil {
		e.fail(err)
		return owl.DatatypeRestriction{}
	}
	out := owl.DatatypeRestriction{Datatype: owl.Datatype(iri)}
	for _, c := range cells {
		ts := e.r.g.Find(c, nil, nil)
		if len(ts) != 1 {
			e.fail(translationErrorf("facet node %s needs exactly one triple", rdf.TermKey(c)))
			return out
		}
		facet, _ := rdf.IRIOf(ts[0].Predicate)
		if !owl2.IsFacet(facet) {
			e.fail(translationErrorf("unsupported facet %s", facet))
			return out
		}
		l, err := e.r.literal(ts[0].Object)
		if err != nil {
			e.fail(err)
			return out
		}
		out.Facets = append(out.Facets, owl.FacetRestriction{Facet: owl.IRI(facet), Value: l})
		e.triples = append(e.triples, ts[0])
	}
	return out
}

// atom reads a swrl atom node.
func (r *reader) atom(v quad.Value) (provenance.Wrapped[owl.Atom], error) {
	var zero provenance.Wrapped[owl.Atom]
	if !rdf.IsBlank(v) {
		return zero, translationErrorf("atom %s must be a blank node", rdf.TermKey(v))
	}
	if err := r.enter(v); err != nil {
		return zero, err
	}
	defer r.leave(v)

	e := r.on(v).types()
	var a owl.Atom
	switch {
	case rdf.HasType(r.g, v, owl2.SwrlClassAtom):
		a = owl.ClassAtom{Class: e.class(owl2.SwrlClassPredicate), Arg: e.iArg(owl2.SwrlArgument1)}
	case rdf.HasType(r.g, v, owl2.SwrlDataRangeAtom):
		a = owl.DataRangeAtom{Range: e.dataRange(owl2.SwrlDataRange), Arg: e.dArg(owl2.SwrlArgument1)}
	case rdf.HasType(r.g, v, owl2.SwrlIndividualPropertyAtom):
		a = owl.ObjectPropertyAtom{Property: e.impliedObjectProperty(owl2.SwrlPropertyPredicate), Arg1: e.iArg(owl2.SwrlArgument1), Arg2: e.iArg(owl2.SwrlArgument2)}
	case rdf.HasType(r.g, v, owl2.SwrlDatavaluedPropertyAtom):
		a = owl.DataPropertyAtom{Property: e.impliedDataProperty(owl2.SwrlPropertyPredicate), Arg1: e.iArg(owl2.SwrlArgument1), Arg2: e.dArg(owl2.SwrlArgument2)}
	case rdf.HasType(r.g, v, owl2.SwrlSameIndividualAtom):
		a = owl.SameIndividualAtom{Arg1: e.iArg(owl2.SwrlArgument1), Arg2: e.iArg(owl2.SwrlArgument2)}
	case rdf.HasType(r.g, v, owl2.SwrlDifferentIndividualsAtom):
		a = owl.DifferentIndividualsAtom{Arg1: e.iArg(owl2.SwrlArgument1), Arg2: e.iArg(owl2.SwrlArgument2)}
	case rdf.HasType(r.g, v, owl2.SwrlBuiltinAtom):
		a = e.builtinAtom()
	default:
		return zero, translationErrorf("%s has no known atom type", rdf.TermKey(v))
	}
	if e.err != nil {
		return zero, e.err
	}
	return provenance.New(a, e.triples...).Append(e.parts...), nil
}

// impliedObjectProperty reads a property whose kind is fixed by the
// enclosing structure, so no declaration is needed.
func (e *exprReader) impliedObjectProperty(p string) owl.ObjectPropertyExpression {
	v := e.object(p)
	if e.err != nil {
		return nil
	}
	if iri, ok := rdf.IRIOf(v); ok {
		return owl.ObjectProperty(iri)
	}
	w, err := e.r.objectProperty(v)
	if err != nil {
		e.fail(err)
		return nil
	}
	e.parts = append(e.parts, w)
	return w.Object()
}

func (e *exprReader) impliedDataProperty(p string) owl.DataProperty {
	v := e.object(p)
	if e.err != nil {
		return ""
	}
	iri, err := e.r.iri(v)
	e.fail(err)
	return owl.DataProperty(iri)
}

func (e *exprReader) builtinAtom() owl.BuiltInAtom {
	b := e.object(owl2.SwrlBuiltin)
	args := e.items(owl2.SwrlArguments)
	if e.err != nil {
		return owl.BuiltInAtom{}
	}
	iri, err := e.r.iri(b)
	if err != nil {
		e.fail(err)
		return owl.BuiltInAtom{}
	}
	out := owl.BuiltInAtom{Builtin: owl.IRI(iri)}
	for _, v := range args {
		out.Args = append(out.Args, e.dArgOf(v))
	}
	return out
}

func (e *exprReader) iArg(p string) owl.IArg {
	v := e.object(p)
	if e.err != nil {
		return nil
	}
	if e.variable(v) {
		iri, _ := rdf.IRIOf(v)
		return owl.Variable(iri)
	}
	i, err := e.r.individual(v)
	if err != nil {
		e.fail(err)
		return nil
	}
	return i.(owl.IArg)
}

func (e *exprReader) dArg(p string) owl.DArg {
	v := e.object(p)
	if e.err != nil {
		return nil
	}
	return e.dArgOf(v)
}

func (e *exprReader) dArgOf(v quad.Value) owl.DArg {
	if e.variable(v) {
		iri, _ := rdf.IRIOf(v)
		return owl.Variable(iri)
	}
	l, err := e.r.literal(v)
	if err != nil {
		e.fail(err)
		return nil
	}
	return l
}

// variable reports whether v is a swrl:Variable and records its type triple.
func (e *exprReader) variable(v quad.Value) bool {
	if !rdf.IsIRI(v) || !rdf.HasType(e.r.g, v, owl2.SwrlVariable) {
		return false
	}
	e.triples = append(e.triples, rdf.T(v, owl2.RdfType, quad.IRI(owl2.SwrlVariable)))
	return true
}
