package owl

import "strconv"

// ClassExpression is a named class or an anonymous class expression.
type ClassExpression interface {
	String() string
	classExpression()
}

// ObjectPropertyExpression is an ObjectProperty or an ObjectInverseOf.
type ObjectPropertyExpression interface {
	String() string
	objectPropertyExpression()
}

// ObjectInverseOf is the inverse of a named object property.
type ObjectInverseOf struct {
	Property ObjectProperty
}

func (e ObjectInverseOf) String() string {
	return render("ObjectInverseOf", nil, e.Property.String())
}
func (ObjectInverseOf) objectPropertyExpression() {}

// HasCardinality is implemented by every cardinality restriction.
type HasCardinality interface {
	Cardinality() int
}

// HasFiller is implemented by restrictions that carry a class filler.
type HasFiller interface {
	ClassFiller() ClassExpression
}

// HasOperands is implemented by boolean class connectives over several operands.
type HasOperands interface {
	ClassOperands() []ClassExpression
}

// ObjectIntersectionOf is the conjunction of its operands.
type ObjectIntersectionOf struct {
	Operands []ClassExpression
}

func (e ObjectIntersectionOf) String() string {
	return render("ObjectIntersectionOf", nil, set(e.Operands)...)
}
func (e ObjectIntersectionOf) ClassOperands() []ClassExpression { return e.Operands }
func (ObjectIntersectionOf) classExpression()                    {}

// ObjectUnionOf is the disjunction of its operands.
type ObjectUnionOf struct {
	Operands []ClassExpression
}

func (e ObjectUnionOf) String() string {
	return render("ObjectUnionOf", nil, set(e.Operands)...)
}
func (e ObjectUnionOf) ClassOperands() []ClassExpression { return e.Operands }
func (ObjectUnionOf) classExpression()                    {}

// ObjectComplementOf is the negation of its operand.
type ObjectComplementOf struct {
	Operand ClassExpression
}

func (e ObjectComplementOf) String() string {
	return render("ObjectComplementOf", nil, stringOf(e.Operand))
}
func (ObjectComplementOf) classExpression() {}

// ObjectOneOf enumerates its individuals.
type ObjectOneOf struct {
	Individuals []Individual
}

func (e ObjectOneOf) String() string {
	return render("ObjectOneOf", nil, set(e.Individuals)...)
}
func (ObjectOneOf) classExpression() {}

// ObjectSomeValuesFrom is an existential restriction.
type ObjectSomeValuesFrom struct {
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

func (e ObjectSomeValuesFrom) String() string {
	return render("ObjectSomeValuesFrom", nil, stringOf(e.Property), stringOf(e.Filler))
}
func (e ObjectSomeValuesFrom) ClassFiller() ClassExpression { return e.Filler }
func (ObjectSomeValuesFrom) classExpression()                {}

// ObjectAllValuesFrom is a universal restriction.
type ObjectAllValuesFrom struct {
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

func (e ObjectAllValuesFrom) String() string {
	return render("ObjectAllValuesFrom", nil, stringOf(e.Property), stringOf(e.Filler))
}
func (e ObjectAllValuesFrom) ClassFiller() ClassExpression { return e.Filler }
func (ObjectAllValuesFrom) classExpression()                {}

// ObjectHasValue restricts a property to a fixed individual.
type ObjectHasValue struct {
	Property ObjectPropertyExpression
	Value    Individual
}

func (e ObjectHasValue) String() string {
	return render("ObjectHasValue", nil, stringOf(e.Property), stringOf(e.Value))
}
func (ObjectHasValue) classExpression() {}

// ObjectHasSelf is the class of individuals related to themselves.
type ObjectHasSelf struct {
	Property ObjectPropertyExpression
}

func (e ObjectHasSelf) String() string {
	return render("ObjectHasSelf", nil, stringOf(e.Property))
}
func (ObjectHasSelf) classExpression() {}

// objectFiller returns the filler, defaulting an unqualified restriction to owl:Thing.
func objectFiller(c ClassExpression) ClassExpression {
	if c == nil {
		return Thing
	}
	return c
}

// ObjectMinCardinality is an at-least restriction. A nil Filler means owl:Thing.
type ObjectMinCardinality struct {
	N        int
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

func (e ObjectMinCardinality) String() string {
	return render("ObjectMinCardinality", nil, strconv.Itoa(e.N), stringOf(e.Property), stringOf(objectFiller(e.Filler)))
}
func (e ObjectMinCardinality) Cardinality() int             { return e.N }
func (e ObjectMinCardinality) ClassFiller() ClassExpression { return objectFiller(e.Filler) }
func (ObjectMinCardinality) classExpression()               {}

// ObjectMaxCardinality is an at-most restriction. A nil Filler means owl:Thing.
type ObjectMaxCardinality struct {
	N        int
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

func (e ObjectMaxCardinality) String() string {
	return render("ObjectMaxCardinality", nil, strconv.Itoa(e.N), stringOf(e.Property), stringOf(objectFiller(e.Filler)))
}
func (e ObjectMaxCardinality) Cardinality() int             { return e.N }
func (e ObjectMaxCardinality) ClassFiller() ClassExpression { return objectFiller(e.Filler) }
func (ObjectMaxCardinality) classExpression()               {}

// ObjectExactCardinality is an exactly-n restriction. A nil Filler means owl:Thing.
type ObjectExactCardinality struct {
	N        int
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

func (e ObjectExactCardinality) String() string {
	return render("ObjectExactCardinality", nil, strconv.Itoa(e.N), stringOf(e.Property), stringOf(objectFiller(e.Filler)))
}
func (e ObjectExactCardinality) Cardinality() int             { return e.N }
func (e ObjectExactCardinality) ClassFiller() ClassExpression { return objectFiller(e.Filler) }
func (ObjectExactCardinality) classExpression()               {}

// DataSomeValuesFrom is an existential data restriction. More than one
// property makes it an n-ary restriction written with owl:onProperties.
type DataSomeValuesFrom struct {
	Properties []DataProperty
	Filler     DataRange
}

func (e DataSomeValuesFrom) String() string {
	return render("DataSomeValuesFrom", nil, append(list(e.Properties), stringOf(e.Filler))...)
}
func (DataSomeValuesFrom) classExpression() {}

// DataAllValuesFrom is a universal data restriction.
type DataAllValuesFrom struct {
	Properties []DataProperty
	Filler     DataRange
}

func (e DataAllValuesFrom) String() string {
	return render("DataAllValuesFrom", nil, append(list(e.Properties), stringOf(e.Filler))...)
}
func (DataAllValuesFrom) classExpression() {}

// DataHasValue restricts a data property to a fixed literal.
type DataHasValue struct {
	Property DataProperty
	Value    Literal
}

func (e DataHasValue) String() string {
	return render("DataHasValue", nil, e.Property.String(), e.Value.String())
}
func (DataHasValue) classExpression() {}

func dataFiller(d DataRange) DataRange {
	if d == nil {
		return TopLiteral
	}
	return d
}

// DataMinCardinality is an at-least data restriction. A nil Filler means rdfs:Literal.
type DataMinCardinality struct {
	N        int
	Property DataProperty
	Filler   DataRange
}

func (e DataMinCardinality) String() string {
	return render("DataMinCardinality", nil, strconv.Itoa(e.N), e.Property.String(), stringOf(dataFiller(e.Filler)))
}
func (e DataMinCardinality) Cardinality() int { return e.N }
func (DataMinCardinality) classExpression()   {}

// DataMaxCardinality is an at-most data restriction. A nil Filler means rdfs:Literal.
type DataMaxCardinality struct {
	N        int
	Property DataProperty
	Filler   DataRange
}

func (e DataMaxCardinality) String() string {
	return render("DataMaxCardinality", nil, strconv.Itoa(e.N), e.Property.String(), stringOf(dataFiller(e.Filler)))
}
func (e DataMaxCardinality) Cardinality() int { return e.N }
func (DataMaxCardinality) classExpression()   {}

// DataExactCardinality is an exactly-n data restriction. A nil Filler means rdfs:Literal.
type DataExactCardinality struct {
	N        int
	Property DataProperty
	Filler   DataRange
}

func (e DataExactCardinality) String() string {
	return render("DataExactCardinality", nil, strconv.Itoa(e.N), e.Property.String(), stringOf(dataFiller(e.Filler)))
}
func (e DataExactCardinality) Cardinality() int { return e.N }
func (DataExactCardinality) classExpression()   {}

// IsAnonymous reports whether x has no IRI of its own: anonymous class
// expressions, data ranges, inverse properties and anonymous individuals.
func IsAnonymous(x any) bool {
	switch x.(type) {
	case Class, Datatype, ObjectProperty, DataProperty, AnnotationProperty, NamedIndividual, IRI:
		return false
	default:
		return true
	}
}
