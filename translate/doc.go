// Package translate maps OWL2 axioms to RDF triples and back, following the
// W3C OWL2 Mapping to RDF Graphs.
//
// Every axiom kind has one Translator, found with Lookup. Translators are
// built from a handful of shapes:
//
//	single triple      SubClassOf, Declaration, assertions, domain and range
//	property type      Functional, Transitive ... ObjectProperty
//	n-ary              EquivalentClasses, SameIndividual ...
//	two-way n-ary      DisjointClasses, DifferentIndividuals ...
//	sub-chained list   HasKey, DisjointUnion, SubPropertyChainOf
//	negative assertion NegativeObjectPropertyAssertion ...
//	rule               DLSafeRule (SWRL), encoded as swrl:Imp with atom lists
//
// Axiom annotations are reified with owl:Axiom nodes, nested annotations with
// owl:Annotation nodes. Axioms that already own an anonymous node, such as
// owl:AllDisjointClasses or owl:NegativePropertyAssertion, carry their
// annotations on that node.
//
// Reading returns a provenance.Wrapped axiom holding every triple that
// encodes it, so that Manager.Remove can retract exactly that closure.
//
// Blank nodes created by a write are labelled from the axiom's canonical
// form. Writing an axiom that is already present adds nothing.
package translate
