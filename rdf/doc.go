// Package rdf provides the triple graph the OWL2 translator reads and writes.
//
// Terms are github.com/cayleygraph/quad values. Every term entering a graph
// is normalized so that equal RDF terms have equal Go values:
//
//   - "x"^^xsd:string and the plain literal "x" both become quad.String("x")
//   - native quad.Int, quad.Bool and quad.Float become typed strings
//   - language tags keep their case; graph identity compares them
//     case-insensitively
//
// MemGraph is a set-semantics in-memory store with subject, predicate and
// object indexes. Buffer stages the triples of one operation on top of any
// Graph and applies them with Commit, or drops them with Discard.
//
// List implements RDF collections (rdf:first/rdf:rest/rdf:nil) with an
// optional rdf:type on every cell, as used for swrl:AtomList.
package rdf
