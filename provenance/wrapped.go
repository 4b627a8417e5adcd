package provenance

import (
	"encoding/hex"

	"github.com/cayleygraph/quad"
	"lukechampine.com/blake3"

	"github.com/c360studio/semowl/rdf"
)

// Object is anything with a canonical string form.
type Object interface {
	String() string
}

// TripleSource is implemented by every wrapper regardless of its object type.
type TripleSource interface {
	Triples() []rdf.Triple
}

// Wrapped pairs an object with the triples it was read from or written as.
type Wrapped[O Object] struct {
	object  O
	triples []rdf.Triple
}

// New wraps obj with the given triples. Duplicate triples are dropped.
func New[O Object](obj O, triples ...rdf.Triple) Wrapped[O] {
	return Wrapped[O]{object: obj, triples: union(nil, triples)}
}

// FromStatement wraps obj with the single statement t.
func FromStatement[O Object](obj O, t rdf.Triple) Wrapped[O] {
	return New(obj, t)
}

// FromContent wraps obj with the content closure of node in g.
func FromContent[O Object](obj O, g rdf.Graph, node quad.Value) Wrapped[O] {
	return New(obj, rdf.Closure(g, node)...)
}

// Object returns the wrapped object.
func (w Wrapped[O]) Object() O { return w.object }

// Triples returns a copy of the triple set in insertion order.
func (w Wrapped[O]) Triples() []rdf.Triple {
	out := make([]rdf.Triple, len(w.triples))
	copy(out, w.triples)
	return out
}

// Len returns the number of triples.
func (w Wrapped[O]) Len() int { return len(w.triples) }

// Add returns a wrapper with ts added to the triple set.
func (w Wrapped[O]) Add(ts ...rdf.Triple) Wrapped[O] {
	return Wrapped[O]{object: w.object, triples: union(w.triples, ts)}
}

// Append returns a wrapper holding the union of w's triples and those of
// others. The object is kept from w.
func (w Wrapped[O]) Append(others ...TripleSource) Wrapped[O] {
	out := w
	for _, o := range others {
		out = out.Add(o.Triples()...)
	}
	return out
}

// Equal compares the wrapped objects only.
func (w Wrapped[O]) Equal(other Wrapped[O]) bool {
	return w.object.String() == other.object.String()
}

// Hash returns a hex BLAKE3 digest of the object's canonical form.
func (w Wrapped[O]) Hash() string {
	return Hash(w.object)
}

// String returns the object's canonical form.
func (w Wrapped[O]) String() string { return w.object.String() }

// Hash digests the canonical form of obj.
func Hash(obj Object) string {
	sum := blake3.Sum256([]byte(obj.String()))
	return hex.EncodeToString(sum[:])
}

// union appends the triples of add missing from base into a new slice.
func union(base, add []rdf.Triple) []rdf.Triple {
	out := make([]rdf.Triple, 0, len(base)+len(add))
	seen := make(map[string]bool, len(base)+len(add))
	for _, set := range [][]rdf.Triple{base, add} {
		for _, t := range set {
			k := t.Key()
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, t)
		}
	}
	return out
}
