package owl2

import (
	"github.com/c360studio/semstreams/vocabulary"
	"github.com/cayleygraph/quad/voc/rdf"
	"github.com/cayleygraph/quad/voc/rdfs"
)

// Namespaces of the vocabularies used by the mapping.
const (
	RdfNamespace  = rdf.NS
	RdfsNamespace = rdfs.NS
	OwlNamespace  = "http://www.w3.org/2002/07/owl#"
	SwrlNamespace = "http://www.w3.org/2003/11/swrl#"
	XsdNamespace  = "http://www.w3.org/2001/XMLSchema#"
)

// RDF IRIs
const (
	RdfType         = RdfNamespace + "type"
	RdfFirst        = RdfNamespace + "first"
	RdfRest         = RdfNamespace + "rest"
	RdfNil          = RdfNamespace + "nil"
	RdfList         = RdfNamespace + "List"
	RdfProperty     = RdfNamespace + "Property"
	RdfPlainLiteral = RdfNamespace + "PlainLiteral"
	RdfLangString   = RdfNamespace + "langString"
	RdfXMLLiteral   = RdfNamespace + "XMLLiteral"
)

// RDF Schema IRIs
const (
	RdfsSubClassOf    = RdfsNamespace + "subClassOf"
	RdfsSubPropertyOf = RdfsNamespace + "subPropertyOf"
	RdfsDomain        = RdfsNamespace + "domain"
	RdfsRange         = RdfsNamespace + "range"
	RdfsDatatype      = RdfsNamespace + "Datatype"
	RdfsLiteral       = RdfsNamespace + "Literal"
	RdfsClass         = RdfsNamespace + "Class"
	RdfsIsDefinedBy   = RdfsNamespace + "isDefinedBy"

	// Shared with the semstreams standard vocabulary.
	RdfsLabel   = vocabulary.RdfsLabel
	RdfsComment = vocabulary.RdfsComment
	RdfsSeeAlso = vocabulary.RdfsSeeAlso
)

// OWL class IRIs.
const (
	OwlClass                     = OwlNamespace + "Class"
	OwlThing                     = OwlNamespace + "Thing"
	OwlNothing                   = OwlNamespace + "Nothing"
	OwlObjectProperty            = OwlNamespace + "ObjectProperty"
	OwlDatatypeProperty          = OwlNamespace + "DatatypeProperty"
	OwlAnnotationProperty        = OwlNamespace + "AnnotationProperty"
	OwlNamedIndividual           = OwlNamespace + "NamedIndividual"
	OwlOntology                  = OwlNamespace + "Ontology"
	OwlRestriction               = OwlNamespace + "Restriction"
	OwlAxiom                     = OwlNamespace + "Axiom"
	OwlAnnotation                = OwlNamespace + "Annotation"
	OwlAllDisjointClasses        = OwlNamespace + "AllDisjointClasses"
	OwlAllDisjointProperties     = OwlNamespace + "AllDisjointProperties"
	OwlAllDifferent              = OwlNamespace + "AllDifferent"
	OwlNegativePropertyAssertion = OwlNamespace + "NegativePropertyAssertion"
	OwlFunctionalProperty        = OwlNamespace + "FunctionalProperty"
	OwlInverseFunctionalProperty = OwlNamespace + "InverseFunctionalProperty"
	OwlReflexiveProperty         = OwlNamespace + "ReflexiveProperty"
	OwlIrreflexiveProperty       = OwlNamespace + "IrreflexiveProperty"
	OwlSymmetricProperty         = OwlNamespace + "SymmetricProperty"
	OwlAsymmetricProperty        = OwlNamespace + "AsymmetricProperty"
	OwlTransitiveProperty        = OwlNamespace + "TransitiveProperty"
	OwlReal                      = OwlNamespace + "real"
	OwlRational                  = OwlNamespace + "rational"
)

// OWL built-in properties.
const (
	OwlTopObjectProperty      = OwlNamespace + "topObjectProperty"
	OwlBottomObjectProperty   = OwlNamespace + "bottomObjectProperty"
	OwlTopDataProperty        = OwlNamespace + "topDataProperty"
	OwlBottomDataProperty     = OwlNamespace + "bottomDataProperty"
	OwlDeprecated             = OwlNamespace + "deprecated"
	OwlVersionInfo            = OwlNamespace + "versionInfo"
	OwlPriorVersion           = OwlNamespace + "priorVersion"
	OwlBackwardCompatibleWith = OwlNamespace + "backwardCompatibleWith"
	OwlIncompatibleWith       = OwlNamespace + "incompatibleWith"
)

// OWL mapping predicates.
const (
	OwlEquivalentClass         = vocabulary.OwlEquivalentClass
	OwlEquivalentProperty      = vocabulary.OwlEquivalentProperty
	OwlSameAs                  = vocabulary.OwlSameAs
	OwlDisjointWith            = OwlNamespace + "disjointWith"
	OwlPropertyDisjointWith    = OwlNamespace + "propertyDisjointWith"
	OwlDifferentFrom           = OwlNamespace + "differentFrom"
	OwlInverseOf               = OwlNamespace + "inverseOf"
	OwlHasKey                  = OwlNamespace + "hasKey"
	OwlDisjointUnionOf         = OwlNamespace + "disjointUnionOf"
	OwlPropertyChainAxiom      = OwlNamespace + "propertyChainAxiom"
	OwlOnProperty              = OwlNamespace + "onProperty"
	OwlOnProperties            = OwlNamespace + "onProperties"
	OwlOnClass                 = OwlNamespace + "onClass"
	OwlOnDataRange             = OwlNamespace + "onDataRange"
	OwlOnDatatype              = OwlNamespace + "onDatatype"
	OwlWithRestrictions        = OwlNamespace + "withRestrictions"
	OwlOneOf                   = OwlNamespace + "oneOf"
	OwlUnionOf                 = OwlNamespace + "unionOf"
	OwlIntersectionOf          = OwlNamespace + "intersectionOf"
	OwlComplementOf            = OwlNamespace + "complementOf"
	OwlDatatypeComplementOf    = OwlNamespace + "datatypeComplementOf"
	OwlHasValue                = OwlNamespace + "hasValue"
	OwlHasSelf                 = OwlNamespace + "hasSelf"
	OwlSomeValuesFrom          = OwlNamespace + "someValuesFrom"
	OwlAllValuesFrom           = OwlNamespace + "allValuesFrom"
	OwlMinCardinality          = OwlNamespace + "minCardinality"
	OwlMaxCardinality          = OwlNamespace + "maxCardinality"
	OwlCardinality             = OwlNamespace + "cardinality"
	OwlMinQualifiedCardinality = OwlNamespace + "minQualifiedCardinality"
	OwlMaxQualifiedCardinality = OwlNamespace + "maxQualifiedCardinality"
	OwlQualifiedCardinality    = OwlNamespace + "qualifiedCardinality"
	OwlAnnotatedSource         = OwlNamespace + "annotatedSource"
	OwlAnnotatedProperty       = OwlNamespace + "annotatedProperty"
	OwlAnnotatedTarget         = OwlNamespace + "annotatedTarget"
	OwlMembers                 = OwlNamespace + "members"
	OwlDistinctMembers         = OwlNamespace + "distinctMembers"
	OwlSourceIndividual        = OwlNamespace + "sourceIndividual"
	OwlAssertionProperty       = OwlNamespace + "assertionProperty"
	OwlTargetIndividual        = OwlNamespace + "targetIndividual"
	OwlTargetValue             = OwlNamespace + "targetValue"
)

// SWRL IRIs
const (
	SwrlImp                      = SwrlNamespace + "Imp"
	SwrlVariable                 = SwrlNamespace + "Variable"
	SwrlAtomList                 = SwrlNamespace + "AtomList"
	SwrlBuiltinAtom              = SwrlNamespace + "BuiltinAtom"
	SwrlClassAtom                = SwrlNamespace + "ClassAtom"
	SwrlDataRangeAtom            = SwrlNamespace + "DataRangeAtom"
	SwrlDatavaluedPropertyAtom   = SwrlNamespace + "DatavaluedPropertyAtom"
	SwrlIndividualPropertyAtom   = SwrlNamespace + "IndividualPropertyAtom"
	SwrlSameIndividualAtom       = SwrlNamespace + "SameIndividualAtom"
	SwrlDifferentIndividualsAtom = SwrlNamespace + "DifferentIndividualsAtom"
	SwrlBody                     = SwrlNamespace + "body"
	SwrlHead                     = SwrlNamespace + "head"
	SwrlArguments                = SwrlNamespace + "arguments"
	SwrlBuiltin                  = SwrlNamespace + "builtin"
	SwrlArgument1                = SwrlNamespace + "argument1"
	SwrlArgument2                = SwrlNamespace + "argument2"
	SwrlClassPredicate           = SwrlNamespace + "classPredicate"
	SwrlDataRange                = SwrlNamespace + "dataRange"
	SwrlPropertyPredicate        = SwrlNamespace + "propertyPredicate"
)

// XML Schema datatypes used by the mapping itself.
const (
	XsdString             = XsdNamespace + "string"
	XsdBoolean            = XsdNamespace + "boolean"
	XsdInteger            = XsdNamespace + "integer"
	XsdNonNegativeInteger = XsdNamespace + "nonNegativeInteger"
	XsdDecimal            = XsdNamespace + "decimal"
	XsdDouble             = XsdNamespace + "double"
	XsdFloat              = XsdNamespace + "float"
	XsdLong               = XsdNamespace + "long"
	XsdInt                = XsdNamespace + "int"
	XsdDateTime           = XsdNamespace + "dateTime"
	XsdMinInclusive       = XsdNamespace + "minInclusive"
	XsdMaxInclusive       = XsdNamespace + "maxInclusive"
	XsdMinExclusive       = XsdNamespace + "minExclusive"
	XsdMaxExclusive       = XsdNamespace + "maxExclusive"
	XsdLength             = XsdNamespace + "length"
	XsdMinLength          = XsdNamespace + "minLength"
	XsdMaxLength          = XsdNamespace + "maxLength"
	XsdPattern            = XsdNamespace + "pattern"
)
