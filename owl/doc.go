// Package owl provides the structural OWL2 object model translated to and from RDF.
//
// The model is a set of small immutable value types:
//
//   - Entities: Class, Datatype, ObjectProperty, DataProperty,
//     AnnotationProperty and NamedIndividual, all named by an IRI.
//   - Class expressions (ClassExpression) and data ranges (DataRange),
//     including restrictions, boolean connectives and enumerations.
//   - SWRL atoms and their arguments.
//   - Axioms: one struct per axiom kind, each carrying its operands plus an
//     Annotations set that may nest to any depth.
//
// Every object renders to a canonical functional-syntax string. Equality is
// defined on that rendering: operand sets are sorted and deduplicated and
// annotations are order-insensitive, so two axioms that differ only in the
// ordering of set operands or annotations compare equal with Equal.
//
// Capability traits (HasCardinality, HasFiller, HasOperands) are implemented
// per concrete expression variant instead of through a type hierarchy, so
// code that only cares about "has a cardinality" can use a single assertion.
package owl
