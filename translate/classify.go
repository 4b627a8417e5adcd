package translate

import (
	"github.com/cayleygraph/quad"

	"github.com/c360studio/semowl/owl"
	"github.com/c360studio/semowl/rdf"
	"github.com/c360studio/semowl/vocabulary/owl2"
)

// Kind is the shape of an anonymous class expression or data range.
type Kind int

const (
	KindUnknown Kind = iota
	KindNamed
	KindObjectIntersectionOf
	KindObjectUnionOf
	KindObjectComplementOf
	KindObjectOneOf
	KindObjectSomeValuesFrom
	KindObjectAllValuesFrom
	KindObjectHasValue
	KindObjectHasSelf
	KindObjectMinCardinality
	KindObjectMaxCardinality
	KindObjectExactCardinality
	KindDataSomeValuesFrom
	KindDataAllValuesFrom
	KindDataHasValue
	KindDataMinCardinality
	KindDataMaxCardinality
	KindDataExactCardinality
	KindDataIntersectionOf
	KindDataUnionOf
	KindDataComplementOf
	KindDataOneOf
	KindDatatypeRestriction
)

var kindNames = [...]string{
	KindUnknown:                "Unknown",
	KindNamed:                  "Named",
	KindObjectIntersectionOf:   "ObjectIntersectionOf",
	KindObjectUnionOf:          "ObjectUnionOf",
	KindObjectComplementOf:     "ObjectComplementOf",
	KindObjectOneOf:            "ObjectOneOf",
	KindObjectSomeValuesFrom:   "ObjectSomeValuesFrom",
	KindObjectAllValuesFrom:    "ObjectAllValuesFrom",
	KindObjectHasValue:         "ObjectHasValue",
	KindObjectHasSelf:          "ObjectHasSelf",
	KindObjectMinCardinality:   "ObjectMinCardinality",
	KindObjectMaxCardinality:   "ObjectMaxCardinality",
	KindObjectExactCardinality: "ObjectExactCardinality",
	KindDataSomeValuesFrom:     "DataSomeValuesFrom",
	KindDataAllValuesFrom:      "DataAllValuesFrom",
	KindDataHasValue:           "DataHasValue",
	KindDataMinCardinality:     "DataMinCardinality",
	KindDataMaxCardinality:     "DataMaxCardinality",
	KindDataExactCardinality:   "DataExactCardinality",
	KindDataIntersectionOf:     "DataIntersectionOf",
	KindDataUnionOf:            "DataUnionOf",
	KindDataComplementOf:       "DataComplementOf",
	KindDataOneOf:              "DataOneOf",
	KindDatatypeRestriction:    "DatatypeRestriction",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// IsClassExpression reports whether k denotes a class expression.
func (k Kind) IsClassExpression() bool {
	return k == KindNamed || (k >= KindObjectIntersectionOf && k <= KindDataExactCardinality)
}

// IsDataRange reports whether k denotes an anonymous data range.
func (k Kind) IsDataRange() bool {
	return k >= KindDataIntersectionOf && k <= KindDatatypeRestriction
}

// Classify returns the expression kind of node in g. Named nodes are
// KindNamed; blank nodes that match no expression shape are an error.
func Classify(g rdf.Graph, node quad.Value) (Kind, error) {
	return newReader(g, DefaultConfig()).classify(node)
}

// characteristic types that only object properties can have.
var objectCharacteristics = []string{
	owl2.OwlInverseFunctionalProperty,
	owl2.OwlReflexiveProperty,
	owl2.OwlIrreflexiveProperty,
	owl2.OwlSymmetricProperty,
	owl2.OwlAsymmetricProperty,
	owl2.OwlTransitiveProperty,
}

// is reports whether the named node v can be viewed as an entity of kind t:
// declared, built in, or implied by a characteristic type. An assuming
// reader also accepts undeclared IRIs outside the reserved vocabulary.
func (r *reader) is(v quad.Value, t owl.EntityType) bool {
	iri, ok := rdf.IRIOf(v)
	if !ok {
		return false
	}
	key := entityKey{iri: iri, t: t}
	if known, ok := r.kinds[key]; ok {
		return known
	}
	known := r.g.Contains(rdf.T(v, owl2.RdfType, quad.IRI(t.DeclarationType()))) || builtin(iri, t)
	if !known && t == owl.EntityObjectProperty {
		known = r.impliedObjectProperty(v)
	}
	if !known && r.assume && !owl2.IsReserved(iri) && !anyBuiltin(iri) && !r.declared(v) {
		known = true
	}
	r.kinds[key] = known
	return known
}

func (r *reader) impliedObjectProperty(v quad.Value) bool {
	for _, c := range objectCharacteristics {
		if rdf.HasType(r.g, v, c) {
			return true
		}
	}
	return false
}

// declared reports whether v has any declaration or implied entity type.
func (r *reader) declared(v quad.Value) bool {
	for _, t := range r.g.Find(v, quad.IRI(owl2.RdfType), nil) {
		if typ, ok := rdf.IRIOf(t.Object); ok && owl2.DeclarationTypes[typ] {
			return true
		}
	}
	return r.impliedObjectProperty(v)
}

type entityKey struct {
	iri string
	t   owl.EntityType
}

func builtin(iri string, t owl.EntityType) bool {
	switch t {
	case owl.EntityClass:
		return iri == owl2.OwlThing || iri == owl2.OwlNothing
	case owl.EntityObjectProperty:
		return iri == owl2.OwlTopObjectProperty || iri == owl2.OwlBottomObjectProperty
	case owl.EntityDataProperty:
		return iri == owl2.OwlTopDataProperty || iri == owl2.OwlBottomDataProperty
	case owl.EntityAnnotationProperty:
		return owl2.IsBuiltinAnnotationProperty(iri)
	case owl.EntityDatatype:
		return owl2.IsBuiltinDatatype(iri)
	default:
		return false
	}
}

func anyBuiltin(iri string) bool {
	for _, t := range []owl.EntityType{owl.EntityClass, owl.EntityDatatype, owl.EntityObjectProperty, owl.EntityDataProperty, owl.EntityAnnotationProperty} {
		if builtin(iri, t) {
			return true
		}
	}
	return false
}

// isObjectPropertyExpression accepts declared object properties and
// owl:inverseOf blank nodes.
func (r *reader) isObjectPropertyExpression(v quad.Value) bool {
	if rdf.IsBlank(v) {
		_, ok := rdf.Object(r.g, v, owl2.OwlInverseOf)
		return ok
	}
	return r.is(v, owl.EntityObjectProperty)
}

// isAnnotationPredicate reports whether p can carry an annotation: a known
// annotation property, or an undeclared IRI outside the reserved vocabulary
// that is not an object or data property.
func (r *reader) isAnnotationPredicate(p quad.Value) bool {
	iri, ok := rdf.IRIOf(p)
	if !ok {
		return false
	}
	if r.is(p, owl.EntityAnnotationProperty) {
		return true
	}
	return !owl2.IsReserved(iri) && !r.is(p, owl.EntityObjectProperty) && !r.is(p, owl.EntityDataProperty)
}

// isStructural reports whether the blank node b encodes an expression,
// list, reification or axiom rather than an anonymous individual.
func (r *reader) isStructural(b quad.Value) bool {
	for _, t := range r.g.Find(b, nil, nil) {
		p, _ := rdf.IRIOf(t.Predicate)
		switch p {
		case owl2.RdfType:
			if typ, ok := rdf.IRIOf(t.Object); ok && owl2.IsReservedType(typ) {
				return true
			}
		case owl2.OwlSameAs, owl2.OwlDifferentFrom:
		default:
			if owl2.IsReserved(p) && !owl2.IsBuiltinAnnotationProperty(p) {
				return true
			}
		}
	}
	return false
}

// isClass reports whether v can stand in a class position. Named nodes
// qualify unless they are only known as datatypes. Structural blank nodes
// that fail to classify are accepted so that reading reports the fault.
func (r *reader) isClass(v quad.Value) bool {
	if rdf.IsIRI(v) {
		return r.is(v, owl.EntityClass) || !r.is(v, owl.EntityDatatype)
	}
	if !rdf.IsBlank(v) {
		return false
	}
	k, err := r.classify(v)
	if err != nil {
		return r.isStructural(v)
	}
	return k.IsClassExpression()
}

// isDataRange reports whether v can stand in a data range position.
func (r *reader) isDataRange(v quad.Value) bool {
	if rdf.IsIRI(v) {
		return r.is(v, owl.EntityDatatype)
	}
	if !rdf.IsBlank(v) {
		return false
	}
	k, err := r.classify(v)
	return err == nil && k.IsDataRange()
}

// isIndividual accepts named nodes and blank anonymous individuals.
func (r *reader) isIndividual(v quad.Value) bool {
	if rdf.IsIRI(v) {
		return true
	}
	return rdf.IsBlank(v) && !r.isStructural(v)
}

// classify implements the expression classification used by every read.
func (r *reader) classify(v quad.Value) (Kind, error) {
	if rdf.IsIRI(v) {
		return KindNamed, nil
	}
	if !rdf.IsBlank(v) {
		return KindUnknown, translationErrorf("%s is not a class expression or data range", rdf.TermKey(v))
	}
	has := func(p string) bool { return len(r.g.Find(v, quad.IRI(p), nil)) > 0 }
	isDatatype := rdf.HasType(r.g, v, owl2.RdfsDatatype)

	switch {
	case has(owl2.OwlIntersectionOf):
		if isDatatype {
			return KindDataIntersectionOf, nil
		}
		return KindObjectIntersectionOf, nil
	case has(owl2.OwlUnionOf):
		if isDatatype {
			return KindDataUnionOf, nil
		}
		return KindObjectUnionOf, nil
	case has(owl2.OwlComplementOf):
		return KindObjectComplementOf, nil
	case has(owl2.OwlDatatypeComplementOf):
		return KindDataComplementOf, nil
	case has(owl2.OwlOneOf):
		if isDatatype || r.oneOfLiterals(v) {
			return KindDataOneOf, nil
		}
		return KindObjectOneOf, nil
	case has(owl2.OwlOnDatatype):
		return KindDatatypeRestriction, nil
	case has(owl2.OwlOnProperties):
		switch {
		case has(owl2.OwlSomeValuesFrom):
			return KindDataSomeValuesFrom, nil
		case has(owl2.OwlAllValuesFrom):
			return KindDataAllValuesFrom, nil
		}
	case has(owl2.OwlOnProperty):
		return r.classifyRestriction(v, has)
	}
	return KindUnknown, translationErrorf("blank node %s has no known expression shape", rdf.TermKey(v))
}

func (r *reader) oneOfLiterals(v quad.Value) bool {
	head, ok := rdf.Object(r.g, v, owl2.OwlOneOf)
	if !ok {
		return false
	}
	items, _, err := rdf.ReadList(r.g, head)
	return err == nil && len(items) > 0 && rdf.IsLiteral(items[0])
}

func (r *reader) classifyRestriction(v quad.Value, has func(string) bool) (Kind, error) {
	prop, ok := rdf.Object(r.g, v, owl2.OwlOnProperty)
	if !ok {
		return KindUnknown, translationErrorf("restriction %s needs exactly one owl:onProperty", rdf.TermKey(v))
	}
	object := r.isObjectPropertyExpression(prop)
	data := r.is(prop, owl.EntityDataProperty)
	if !object && !data {
		return KindUnknown, translationErrorf("restriction %s is on unknown property %s", rdf.TermKey(v), rdf.TermKey(prop))
	}

	// The filler settles punned properties; otherwise object wins.
	isData := data && !object
	if object && data {
		isData = r.hasDataFiller(v)
	}

	switch {
	case has(owl2.OwlHasSelf):
		return KindObjectHasSelf, nil
	case has(owl2.OwlSomeValuesFrom):
		return pick(isData, KindDataSomeValuesFrom, KindObjectSomeValuesFrom), nil
	case has(owl2.OwlAllValuesFrom):
		return pick(isData, KindDataAllValuesFrom, KindObjectAllValuesFrom), nil
	case has(owl2.OwlHasValue):
		return pick(isData, KindDataHasValue, KindObjectHasValue), nil
	case has(owl2.OwlMinCardinality), has(owl2.OwlMinQualifiedCardinality):
		return pick(isData, KindDataMinCardinality, KindObjectMinCardinality), nil
	case has(owl2.OwlMaxCardinality), has(owl2.OwlMaxQualifiedCardinality):
		return pick(isData, KindDataMaxCardinality, KindObjectMaxCardinality), nil
	case has(owl2.OwlCardinality), has(owl2.OwlQualifiedCardinality):
		return pick(isData, KindDataExactCardinality, KindObjectExactCardinality), nil
	}
	return KindUnknown, translationErrorf("restriction %s has no filler", rdf.TermKey(v))
}

func (r *reader) hasDataFiller(v quad.Value) bool {
	if len(r.g.Find(v, quad.IRI(owl2.OwlOnDataRange), nil)) > 0 {
		return true
	}
	if hv, ok := rdf.Object(r.g, v, owl2.OwlHasValue); ok && rdf.IsLiteral(hv) {
		return true
	}
	for _, p := range []string{owl2.OwlSomeValuesFrom, owl2.OwlAllValuesFrom} {
		if f, ok := rdf.Object(r.g, v, p); ok {
			if rdf.IsIRI(f) {
				return r.is(f, owl.EntityDatatype) && !r.is(f, owl.EntityClass)
			}
			if err := r.enter(f); err != nil {
				return false
			}
			k, err := r.classify(f)
			r.leave(f)
			return err == nil && k.IsDataRange()
		}
	}
	return false
}

func pick(cond bool, yes, no Kind) Kind {
	if cond {
		return yes
	}
	return no
}
