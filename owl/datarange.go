package owl

// DataRange is a named datatype or an anonymous data range.
type DataRange interface {
	String() string
	dataRange()
}

// DataIntersectionOf is the intersection of data ranges.
type DataIntersectionOf struct {
	Operands []DataRange
}

func (d DataIntersectionOf) String() string {
	return render("DataIntersectionOf", nil, set(d.Operands)...)
}
func (DataIntersectionOf) dataRange() {}

// DataUnionOf is the union of data ranges.
type DataUnionOf struct {
	Operands []DataRange
}

func (d DataUnionOf) String() string {
	return render("DataUnionOf", nil, set(d.Operands)...)
}
func (DataUnionOf) dataRange() {}

// DataComplementOf is the complement of a data range.
type DataComplementOf struct {
	Operand DataRange
}

func (d DataComplementOf) String() string {
	return render("DataComplementOf", nil, stringOf(d.Operand))
}
func (DataComplementOf) dataRange() {}

// DataOneOf enumerates literals.
type DataOneOf struct {
	Literals []Literal
}

func (d DataOneOf) String() string {
	return render("DataOneOf", nil, set(d.Literals)...)
}
func (DataOneOf) dataRange() {}

// FacetRestriction constrains a datatype by one facet, e.g. xsd:minInclusive 5.
type FacetRestriction struct {
	Facet IRI
	Value Literal
}

func (f FacetRestriction) String() string {
	return f.Facet.String() + " " + f.Value.String()
}

// DatatypeRestriction restricts a datatype by a list of facets.
type DatatypeRestriction struct {
	Datatype Datatype
	Facets   []FacetRestriction
}

func (d DatatypeRestriction) String() string {
	return render("DatatypeRestriction", nil, append([]string{d.Datatype.String()}, set(d.Facets)...)...)
}
func (DatatypeRestriction) dataRange() {}
