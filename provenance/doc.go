// Package provenance ties a structural OWL object to the exact triples that
// encode it.
//
// A Wrapped value is immutable: Add and Append return new wrappers whose
// triple set is the union. Equality and Hash look only at the wrapped
// object's canonical form, so two wrappers of the same axiom read from
// different triples are interchangeable for deduplication while each still
// knows which triples to retract.
package provenance
