package translate

import (
	"github.com/cayleygraph/quad"

	"github.com/c360studio/semowl/owl"
	"github.com/c360studio/semowl/vocabulary/owl2"
)

func (w *writer) classExpression(ce owl.ClassExpression) (quad.Value, error) {
	switch x := ce.(type) {
	case owl.Class:
		return named(string(x))
	case owl.ObjectIntersectionOf:
		return w.booleanClass(owl2.OwlIntersectionOf, x.Operands)
	case owl.ObjectUnionOf:
		return w.booleanClass(owl2.OwlUnionOf, x.Operands)
	case owl.ObjectComplementOf:
		operand, err := w.node(x.Operand)
		if err != nil {
			return nil, err
		}
		b := w.typed(owl2.OwlClass)
		w.add(b, owl2.OwlComplementOf, operand)
		return b, nil
	case owl.ObjectOneOf:
		members, err := nodes(w, x.Individuals)
		if err != nil {
			return nil, err
		}
		b := w.typed(owl2.OwlClass)
		w.add(b, owl2.OwlOneOf, w.list("", members))
		return b, nil
	case owl.ObjectSomeValuesFrom:
		return w.restriction(x.Property, owl2.OwlSomeValuesFrom, x.Filler)
	case owl.ObjectAllValuesFrom:
		return w.restriction(x.Property, owl2.OwlAllValuesFrom, x.Filler)
	case owl.ObjectHasValue:
		return w.restriction(x.Property, owl2.OwlHasValue, x.Value)
	case owl.ObjectHasSelf:
		return w.restriction(x.Property, owl2.OwlHasSelf, owl.BooleanLiteral(true))
	case owl.ObjectMinCardinality:
		return w.objectCardinality(x.N, x.Property, x.Filler, owl2.OwlMinCardinality, owl2.OwlMinQualifiedCardinality)
	case owl.ObjectMaxCardinality:
		return w.objectCardinality(x.N, x.Property, x.Filler, owl2.OwlMaxCardinality, owl2.OwlMaxQualifiedCardinality)
	case owl.ObjectExactCardinality:
		return w.objectCardinality(x.N, x.Property, x.Filler, owl2.OwlCardinality, owl2.OwlQualifiedCardinality)
	case owl.DataSomeValuesFrom:
		return w.dataRestriction(x.Properties, owl2.OwlSomeValuesFrom, x.Filler)
	case owl.DataAllValuesFrom:
		return w.dataRestriction(x.Properties, owl2.OwlAllValuesFrom, x.Filler)
	case owl.DataHasValue:
		return w.restriction(x.Property, owl2.OwlHasValue, x.Value)
	case owl.DataMinCardinality:
		return w.dataCardinality(x.N, x.Property, x.Filler, owl2.OwlMinCardinality, owl2.OwlMinQualifiedCardinality)
	case owl.DataMaxCardinality:
		return w.dataCardinality(x.N, x.Property, x.Filler, owl2.OwlMaxCardinality, owl2.OwlMaxQualifiedCardinality)
	case owl.DataExactCardinality:
		return w.dataCardinality(x.N, x.Property, x.Filler, owl2.OwlCardinality, owl2.OwlQualifiedCardinality)
	case nil:
		return nil, illegalArgumentf("nil class expression")
	default:
		return nil, translationErrorf("unsupported class expression %T", ce)
	}
}

func (w *writer) booleanClass(p string, operands []owl.ClassExpression) (quad.Value, error) {
	items, err := nodes(w, operands)
	if err != nil {
		return nil, err
	}
	b := w.typed(owl2.OwlClass)
	w.add(b, p, w.list("", items))
	return b, nil
}

// restriction writes _:x a owl:Restriction; owl:onProperty P; p value.
func (w *writer) restriction(property any, p string, value any) (quad.Value, error) {
	prop, err := w.node(property)
	if err != nil {
		return nil, err
	}
	v, err := w.node(value)
	if err != nil {
		return nil, err
	}
	b := w.typed(owl2.OwlRestriction)
	w.add(b, owl2.OwlOnProperty, prop)
	w.add(b, p, v)
	return b, nil
}

func (w *writer) cardinality(n int, property any) (quad.BNode, error) {
	if n < 0 {
		return "", illegalArgumentf("negative cardinality %d", n)
	}
	prop, err := w.node(property)
	if err != nil {
		return "", err
	}
	b := w.typed(owl2.OwlRestriction)
	w.add(b, owl2.OwlOnProperty, prop)
	return b, nil
}

func (w *writer) objectCardinality(n int, property owl.ObjectPropertyExpression, filler owl.ClassExpression, unqualified, qualified string) (quad.Value, error) {
	b, err := w.cardinality(n, property)
	if err != nil {
		return nil, err
	}
	count := literalTerm(owl.NonNegativeIntegerLiteral(n))
	if filler == nil || owl.Equal(filler, owl.Thing) {
		w.add(b, unqualified, count)
		return b, nil
	}
	f, err := w.node(filler)
	if err != nil {
		return nil, err
	}
	w.add(b, qualified, count)
	w.add(b, owl2.OwlOnClass, f)
	return b, nil
}

func (w *writer) dataCardinality(n int, property owl.DataProperty, filler owl.DataRange, unqualified, qualified string) (quad.Value, error) {
	b, err := w.cardinality(n, property)
	if err != nil {
		return nil, err
	}
	count := literalTerm(owl.NonNegativeIntegerLiteral(n))
	if filler == nil || owl.Equal(filler, owl.TopLiteral) {
		w.add(b, unqualified, count)
		return b, nil
	}
	f, err := w.node(filler)
	if err != nil {
		return nil, err
	}
	w.add(b, qualified, count)
	w.add(b, owl2.OwlOnDataRange, f)
	return b, nil
}

// dataRestriction writes a data some/all restriction. More than one
// property uses owl:onProperties with a list.
func (w *writer) dataRestriction(properties []owl.DataProperty, p string, filler owl.DataRange) (quad.Value, error) {
	switch len(properties) {
	case 0:
		return nil, illegalArgumentf("data restriction without property")
	case 1:
		return w.restriction(properties[0], p, filler)
	}
	props, err := nodes(w, properties)
	if err != nil {
		return nil, err
	}
	f, err := w.node(filler)
	if err != nil {
		return nil, err
	}
	b := w.typed(owl2.OwlRestriction)
	w.add(b, owl2.OwlOnProperties, w.list("", props))
	w.add(b, p, f)
	return b, nil
}

func (w *writer) dataRange(dr owl.DataRange) (quad.Value, error) {
	switch x := dr.(type) {
	case owl.Datatype:
		return named(string(x))
	case owl.DataIntersectionOf:
		return w.booleanData(owl2.OwlIntersectionOf, x.Operands)
	case owl.DataUnionOf:
		return w.booleanData(owl2.OwlUnionOf, x.Operands)
	case owl.DataComplementOf:
		operand, err := w.node(x.Operand)
		if err != nil {
			return nil, err
		}
		b := w.typed(owl2.RdfsDatatype)
		w.add(b, owl2.OwlDatatypeComplementOf, operand)
		return b, nil
	case owl.DataOneOf:
		members, err := nodes(w, x.Literals)
		if err != nil {
			return nil, err
		}
		b := w.typed(owl2.RdfsDatatype)
		w.add(b, owl2.OwlOneOf, w.list("", members))
		return b, nil
	case owl.DatatypeRestriction:
		return w.datatypeRestriction(x)
	case nil:
		return nil, illegalArgumentf("nil data range")
	default:
		return nil, translationErrorf("unsupported data range %T", dr)
	}
}

func (w *writer) booleanData(p string, operands []owl.DataRange) (quad.Value, error) {
	items, err := nodes(w, operands)
	if err != nil {
		return nil, err
	}
	b := w.typed(owl2.RdfsDatatype)
	w.add(b, p, w.list("", items))
	return b, nil
}

func (w *writer) datatypeRestriction(x owl.DatatypeRestriction) (quad.Value, error) {
	dt, err := named(string(x.Datatype))
	if err != nil {
		return nil, err
	}
	facets := make([]quad.Value, 0, len(x.Facets))
	for _, f := range x.Facets {
		if !owl2.IsFacet(string(f.Facet)) {
			return nil, translationErrorf("unsupported facet %s", f.Facet)
		}
		c := w.g.NewBlankNode()
		w.add(c, string(f.Facet), literalTerm(f.Value))
		facets = append(facets, c)
	}
	b := w.typed(owl2.RdfsDatatype)
	w.add(b, owl2.OwlOnDatatype, dt)
	w.add(b, owl2.OwlWithRestrictions, w.list("", facets))
	return b, nil
}

func (w *writer) atom(a owl.Atom) (quad.Value, error) {
	switch x := a.(type) {
	case owl.ClassAtom:
		return w.atomNode(owl2.SwrlClassAtom, owl2.SwrlClassPredicate, x.Class, x.Arg)
	case owl.DataRangeAtom:
		return w.atomNode(owl2.SwrlDataRangeAtom, owl2.SwrlDataRange, x.Range, x.Arg)
	case owl.ObjectPropertyAtom:
		return w.atomNode(owl2.SwrlIndividualPropertyAtom, owl2.SwrlPropertyPredicate, x.Property, x.Arg1, x.Arg2)
	case owl.DataPropertyAtom:
		return w.atomNode(owl2.SwrlDatavaluedPropertyAtom, owl2.SwrlPropertyPredicate, x.Property, x.Arg1, x.Arg2)
	case owl.SameIndividualAtom:
		return w.atomNode(owl2.SwrlSameIndividualAtom, "", nil, x.Arg1, x.Arg2)
	case owl.DifferentIndividualsAtom:
		return w.atomNode(owl2.SwrlDifferentIndividualsAtom, "", nil, x.Arg1, x.Arg2)
	case owl.BuiltInAtom:
		builtin, err := named(string(x.Builtin))
		if err != nil {
			return nil, err
		}
		args, err := nodes(w, x.Args)
		if err != nil {
			return nil, err
		}
		b := w.typed(owl2.SwrlBuiltinAtom)
		w.add(b, owl2.SwrlBuiltin, builtin)
		w.add(b, owl2.SwrlArguments, w.list("", args))
		return b, nil
	case nil:
		return nil, illegalArgumentf("nil atom")
	default:
		return nil, translationErrorf("unsupported atom %T", a)
	}
}

// atomNode writes a swrl atom with an optional predicate followed by its
// arguments.
func (w *writer) atomNode(typ, predicate string, pred any, args ...any) (quad.Value, error) {
	var p quad.Value
	if predicate != "" {
		n, err := w.node(pred)
		if err != nil {
			return nil, err
		}
		p = n
	}
	argNodes, err := nodes(w, args)
	if err != nil {
		return nil, err
	}
	b := w.typed(typ)
	if p != nil {
		w.add(b, predicate, p)
	}
	for i, a := range argNodes {
		w.add(b, argumentPredicates[i], a)
	}
	return b, nil
}

var argumentPredicates = [...]string{owl2.SwrlArgument1, owl2.SwrlArgument2}
