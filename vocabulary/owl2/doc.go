// Package owl2 provides the fixed RDF vocabulary of the OWL2 mapping to RDF graphs.
//
// The constants are full IRIs and must match the W3C "OWL 2 Web Ontology
// Language Mapping to RDF Graphs" literally: the translator writes and matches
// them byte for byte, so any change breaks interoperability with other tools.
//
// # Semstreams Integration
//
// Every mapping predicate is also registered in the semstreams predicate
// registry under a three-level dotted name, with the standard IRI attached:
//
//	meta := vocabulary.GetPredicateMetadata(owl2.AxiomAnnotatedSource)
//	meta.StandardIRI // "http://www.w3.org/2002/07/owl#annotatedSource"
//
// Import this package to auto-register predicates:
//
//	import _ "github.com/c360studio/semowl/vocabulary/owl2"
//
// # Reserved Vocabulary
//
// IsReserved, IsBuiltinDatatype and IsBuiltinAnnotationProperty answer the
// questions the reverse mapping asks when it has to decide whether a triple is
// structural (part of some axiom encoding) or user data.
package owl2
