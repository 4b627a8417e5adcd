package owl2

import (
	"sort"

	"github.com/c360studio/semstreams/vocabulary"
)

// Schema predicates shared by every axiom family.
const (
	// SchemaType links a resource to its declared type.
	SchemaType = "rdf.schema.type"

	// SchemaSubClassOf encodes SubClassOf axioms.
	SchemaSubClassOf = "rdfs.schema.sub_class_of"

	// SchemaSubPropertyOf encodes object, data and annotation sub-property axioms.
	SchemaSubPropertyOf = "rdfs.schema.sub_property_of"

	// SchemaDomain encodes property domain axioms.
	SchemaDomain = "rdfs.schema.domain"

	// SchemaRange encodes property range axioms.
	SchemaRange = "rdfs.schema.range"
)

// List predicates for RDF cons-lists.
const (
	ListFirst = "rdf.list.first"
	ListRest  = "rdf.list.rest"
)

// Axiom reification predicates.
const (
	// AxiomAnnotatedSource points from a reification node to the annotated subject.
	AxiomAnnotatedSource = "owl.axiom.annotated_source"

	// AxiomAnnotatedProperty points from a reification node to the annotated predicate.
	AxiomAnnotatedProperty = "owl.axiom.annotated_property"

	// AxiomAnnotatedTarget points from a reification node to the annotated object.
	AxiomAnnotatedTarget = "owl.axiom.annotated_target"
)

// Class axiom predicates.
const (
	ClassEquivalentClass = "owl.class.equivalent_class"
	ClassDisjointWith    = "owl.class.disjoint_with"
	ClassDisjointUnionOf = "owl.class.disjoint_union_of"
	ClassHasKey          = "owl.class.has_key"
	ClassMembers         = "owl.class.members"
)

// Class expression predicates.
const (
	ExpressionUnionOf              = "owl.expression.union_of"
	ExpressionIntersectionOf       = "owl.expression.intersection_of"
	ExpressionComplementOf         = "owl.expression.complement_of"
	ExpressionDatatypeComplementOf = "owl.expression.datatype_complement_of"
	ExpressionOneOf                = "owl.expression.one_of"
	ExpressionOnDatatype           = "owl.expression.on_datatype"
	ExpressionWithRestrictions     = "owl.expression.with_restrictions"
)

// Restriction predicates.
const (
	RestrictionOnProperty              = "owl.restriction.on_property"
	RestrictionOnProperties            = "owl.restriction.on_properties"
	RestrictionOnClass                 = "owl.restriction.on_class"
	RestrictionOnDataRange             = "owl.restriction.on_data_range"
	RestrictionSomeValuesFrom          = "owl.restriction.some_values_from"
	RestrictionAllValuesFrom           = "owl.restriction.all_values_from"
	RestrictionHasValue                = "owl.restriction.has_value"
	RestrictionHasSelf                 = "owl.restriction.has_self"
	RestrictionMinCardinality          = "owl.restriction.min_cardinality"
	RestrictionMaxCardinality          = "owl.restriction.max_cardinality"
	RestrictionCardinality             = "owl.restriction.cardinality"
	RestrictionMinQualifiedCardinality = "owl.restriction.min_qualified_cardinality"
	RestrictionMaxQualifiedCardinality = "owl.restriction.max_qualified_cardinality"
	RestrictionQualifiedCardinality    = "owl.restriction.qualified_cardinality"
)

// Property axiom predicates.
const (
	PropertyEquivalentProperty = "owl.property.equivalent_property"
	PropertyDisjointWith       = "owl.property.property_disjoint_with"
	PropertyInverseOf          = "owl.property.inverse_of"
	PropertyChainAxiom         = "owl.property.property_chain_axiom"
)

// Individual assertion predicates.
const (
	IndividualSameAs           = "owl.individual.same_as"
	IndividualDifferentFrom    = "owl.individual.different_from"
	IndividualDistinctMembers  = "owl.individual.distinct_members"
	AssertionSourceIndividual  = "owl.assertion.source_individual"
	AssertionAssertionProperty = "owl.assertion.assertion_property"
	AssertionTargetIndividual  = "owl.assertion.target_individual"
	AssertionTargetValue       = "owl.assertion.target_value"
)

// SWRL rule predicates.
const (
	RuleBody              = "swrl.rule.body"
	RuleHead              = "swrl.rule.head"
	AtomArguments         = "swrl.atom.arguments"
	AtomBuiltin           = "swrl.atom.builtin"
	AtomArgument1         = "swrl.atom.argument1"
	AtomArgument2         = "swrl.atom.argument2"
	AtomClassPredicate    = "swrl.atom.class_predicate"
	AtomDataRange         = "swrl.atom.data_range"
	AtomPropertyPredicate = "swrl.atom.property_predicate"
)

// predicateIRIs is the registration table. Keeping it in one place lets
// MappingPredicates and the reverse lookup share a single source.
var predicateIRIs = []struct {
	name        string
	iri         string
	description string
	dataType    string
}{
	{SchemaType, RdfType, "Declared type of a resource", "iri"},
	{SchemaSubClassOf, RdfsSubClassOf, "Subclass relation between class expressions", "iri"},
	{SchemaSubPropertyOf, RdfsSubPropertyOf, "Sub-property relation", "iri"},
	{SchemaDomain, RdfsDomain, "Property domain", "iri"},
	{SchemaRange, RdfsRange, "Property range", "iri"},
	{ListFirst, RdfFirst, "First element of an RDF list cell", "node"},
	{ListRest, RdfRest, "Remainder of an RDF list", "node"},
	{AxiomAnnotatedSource, OwlAnnotatedSource, "Subject of an annotated triple", "node"},
	{AxiomAnnotatedProperty, OwlAnnotatedProperty, "Predicate of an annotated triple", "iri"},
	{AxiomAnnotatedTarget, OwlAnnotatedTarget, "Object of an annotated triple", "node"},
	{ClassEquivalentClass, OwlEquivalentClass, "Equivalence of class expressions or datatype definition", "node"},
	{ClassDisjointWith, OwlDisjointWith, "Pairwise class disjointness", "node"},
	{ClassDisjointUnionOf, OwlDisjointUnionOf, "Disjoint union operand list", "list"},
	{ClassHasKey, OwlHasKey, "Key property list", "list"},
	{ClassMembers, OwlMembers, "Members of an n-ary disjointness node", "list"},
	{ExpressionUnionOf, OwlUnionOf, "Union operand list", "list"},
	{ExpressionIntersectionOf, OwlIntersectionOf, "Intersection operand list", "list"},
	{ExpressionComplementOf, OwlComplementOf, "Complemented class expression", "node"},
	{ExpressionDatatypeComplementOf, OwlDatatypeComplementOf, "Complemented data range", "node"},
	{ExpressionOneOf, OwlOneOf, "Enumeration of individuals or literals", "list"},
	{ExpressionOnDatatype, OwlOnDatatype, "Restricted datatype", "iri"},
	{ExpressionWithRestrictions, OwlWithRestrictions, "Facet restriction list", "list"},
	{RestrictionOnProperty, OwlOnProperty, "Restricted property", "node"},
	{RestrictionOnProperties, OwlOnProperties, "Restricted data property list", "list"},
	{RestrictionOnClass, OwlOnClass, "Qualified cardinality class filler", "node"},
	{RestrictionOnDataRange, OwlOnDataRange, "Qualified cardinality data range filler", "node"},
	{RestrictionSomeValuesFrom, OwlSomeValuesFrom, "Existential filler", "node"},
	{RestrictionAllValuesFrom, OwlAllValuesFrom, "Universal filler", "node"},
	{RestrictionHasValue, OwlHasValue, "Value restriction", "node"},
	{RestrictionHasSelf, OwlHasSelf, "Self restriction flag", "bool"},
	{RestrictionMinCardinality, OwlMinCardinality, "Unqualified minimum cardinality", "int"},
	{RestrictionMaxCardinality, OwlMaxCardinality, "Unqualified maximum cardinality", "int"},
	{RestrictionCardinality, OwlCardinality, "Unqualified exact cardinality", "int"},
	{RestrictionMinQualifiedCardinality, OwlMinQualifiedCardinality, "Qualified minimum cardinality", "int"},
	{RestrictionMaxQualifiedCardinality, OwlMaxQualifiedCardinality, "Qualified maximum cardinality", "int"},
	{RestrictionQualifiedCardinality, OwlQualifiedCardinality, "Qualified exact cardinality", "int"},
	{PropertyEquivalentProperty, OwlEquivalentProperty, "Pairwise property equivalence", "iri"},
	{PropertyDisjointWith, OwlPropertyDisjointWith, "Pairwise property disjointness", "iri"},
	{PropertyInverseOf, OwlInverseOf, "Inverse object property", "iri"},
	{PropertyChainAxiom, OwlPropertyChainAxiom, "Sub-property chain list", "list"},
	{IndividualSameAs, OwlSameAs, "Pairwise individual equality", "node"},
	{IndividualDifferentFrom, OwlDifferentFrom, "Pairwise individual inequality", "node"},
	{IndividualDistinctMembers, OwlDistinctMembers, "Members of an AllDifferent node", "list"},
	{AssertionSourceIndividual, OwlSourceIndividual, "Negative assertion subject", "node"},
	{AssertionAssertionProperty, OwlAssertionProperty, "Negative assertion property", "iri"},
	{AssertionTargetIndividual, OwlTargetIndividual, "Negative object assertion target", "node"},
	{AssertionTargetValue, OwlTargetValue, "Negative data assertion target", "literal"},
	{RuleBody, SwrlBody, "SWRL rule body atom list", "list"},
	{RuleHead, SwrlHead, "SWRL rule head atom list", "list"},
	{AtomArguments, SwrlArguments, "Built-in atom argument list", "list"},
	{AtomBuiltin, SwrlBuiltin, "Built-in predicate", "iri"},
	{AtomArgument1, SwrlArgument1, "First atom argument", "node"},
	{AtomArgument2, SwrlArgument2, "Second atom argument", "node"},
	{AtomClassPredicate, SwrlClassPredicate, "Class atom predicate", "node"},
	{AtomDataRange, SwrlDataRange, "Data range atom predicate", "node"},
	{AtomPropertyPredicate, SwrlPropertyPredicate, "Property atom predicate", "iri"},
}

func init() {
	for _, p := range predicateIRIs {
		vocabulary.Register(p.name,
			vocabulary.WithDescription(p.description),
			vocabulary.WithDataType(p.dataType),
			vocabulary.WithIRI(p.iri))
	}
}

// MappingPredicates returns the dotted names of every registered mapping predicate, sorted.
func MappingPredicates() []string {
	names := make([]string, 0, len(predicateIRIs))
	for _, p := range predicateIRIs {
		names = append(names, p.name)
	}
	sort.Strings(names)
	return names
}

// PredicateIRI resolves a dotted predicate name to its standard IRI through the registry.
func PredicateIRI(name string) (string, bool) {
	meta := vocabulary.GetPredicateMetadata(name)
	if meta == nil || meta.StandardIRI == "" {
		return "", false
	}
	return meta.StandardIRI, true
}
