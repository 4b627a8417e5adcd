package owl2

import "strings"

var builtinAnnotationProperties = map[string]bool{
	RdfsLabel:                 true,
	RdfsComment:               true,
	RdfsSeeAlso:               true,
	RdfsIsDefinedBy:           true,
	OwlDeprecated:             true,
	OwlVersionInfo:            true,
	OwlPriorVersion:           true,
	OwlBackwardCompatibleWith: true,
	OwlIncompatibleWith:       true,
}

var builtinDatatypes = map[string]bool{
	RdfsLiteral:     true,
	RdfPlainLiteral: true,
	RdfLangString:   true,
	RdfXMLLiteral:   true,
	OwlReal:         true,
	OwlRational:     true,
}

var facets = map[string]bool{
	XsdMinInclusive:            true,
	XsdMaxInclusive:            true,
	XsdMinExclusive:            true,
	XsdMaxExclusive:            true,
	XsdLength:                  true,
	XsdMinLength:               true,
	XsdMaxLength:               true,
	XsdPattern:                 true,
	RdfNamespace + "langRange": true,
}

// DeclarationTypes maps every declaration type IRI to true.
var DeclarationTypes = map[string]bool{
	OwlClass:              true,
	RdfsDatatype:          true,
	OwlObjectProperty:     true,
	OwlDatatypeProperty:   true,
	OwlAnnotationProperty: true,
	OwlNamedIndividual:    true,
}

// IsReserved reports whether iri belongs to the RDF, RDFS, OWL or SWRL namespaces.
func IsReserved(iri string) bool {
	return strings.HasPrefix(iri, RdfNamespace) ||
		strings.HasPrefix(iri, RdfsNamespace) ||
		strings.HasPrefix(iri, OwlNamespace) ||
		strings.HasPrefix(iri, SwrlNamespace)
}

// IsReservedType reports whether iri cannot be the class of a class assertion.
// owl:Thing and owl:Nothing are reserved IRIs but remain valid classes.
func IsReservedType(iri string) bool {
	if iri == OwlThing || iri == OwlNothing {
		return false
	}
	return IsReserved(iri)
}

// IsBuiltinAnnotationProperty reports whether iri is an annotation property
// that needs no declaration.
func IsBuiltinAnnotationProperty(iri string) bool {
	return builtinAnnotationProperties[iri]
}

// IsBuiltinDatatype reports whether iri is a datatype that needs no declaration.
func IsBuiltinDatatype(iri string) bool {
	if builtinDatatypes[iri] {
		return true
	}
	return strings.HasPrefix(iri, XsdNamespace) && !facets[iri]
}

// IsFacet reports whether iri is a constraining facet usable in owl:withRestrictions.
func IsFacet(iri string) bool {
	return facets[iri]
}
