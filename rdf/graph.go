package rdf

import (
	"sort"
	"strings"
	"sync"

	"github.com/cayleygraph/quad"
	"github.com/google/uuid"
)

// Graph is the triple store the translator operates on. Add and Remove have
// set semantics and report whether the graph changed. Find accepts nil as a
// wildcard and returns matches in insertion order.
type Graph interface {
	Add(t Triple) bool
	Remove(t Triple) bool
	Contains(t Triple) bool
	Find(s, p, o quad.Value) []Triple
	NewBlankNode() quad.BNode
	Size() int
}

type entry struct {
	seq    uint64
	triple Triple
}

type index map[string]map[string]struct{}

func (ix index) put(term, key string) {
	set, ok := ix[term]
	if !ok {
		set = make(map[string]struct{})
		ix[term] = set
	}
	set[key] = struct{}{}
}

func (ix index) drop(term, key string) {
	set, ok := ix[term]
	if !ok {
		return
	}
	delete(set, key)
	if len(set) == 0 {
		delete(ix, term)
	}
}

// MemGraph is an in-memory Graph safe for concurrent use.
type MemGraph struct {
	mu        sync.RWMutex
	seq       uint64
	triples   map[string]entry
	subject   index
	predicate index
	object    index
}

// NewMemGraph returns an empty graph.
func NewMemGraph() *MemGraph {
	return &MemGraph{
		triples:   make(map[string]entry),
		subject:   make(index),
		predicate: make(index),
		object:    make(index),
	}
}

// Add inserts t. It returns false when t was already present.
func (g *MemGraph) Add(t Triple) bool {
	t = NewTriple(t.Subject, t.Predicate, t.Object)
	key := t.Key()

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.triples[key]; ok {
		return false
	}
	g.seq++
	g.triples[key] = entry{seq: g.seq, triple: t}
	g.subject.put(TermKey(t.Subject), key)
	g.predicate.put(TermKey(t.Predicate), key)
	g.object.put(TermKey(t.Object), key)
	return true
}

// Remove deletes t. It returns false when t was absent.
func (g *MemGraph) Remove(t Triple) bool {
	t = NewTriple(t.Subject, t.Predicate, t.Object)
	key := t.Key()

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.triples[key]; !ok {
		return false
	}
	delete(g.triples, key)
	g.subject.drop(TermKey(t.Subject), key)
	g.predicate.drop(TermKey(t.Predicate), key)
	g.object.drop(TermKey(t.Object), key)
	return true
}

// Contains reports whether t is in the graph.
func (g *MemGraph) Contains(t Triple) bool {
	key := NewTriple(t.Subject, t.Predicate, t.Object).Key()

	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.triples[key]
	return ok
}

// Find returns every triple matching the pattern.
func (g *MemGraph) Find(s, p, o quad.Value) []Triple {
	g.mu.RLock()
	defer g.mu.RUnlock()

	candidates := g.candidates(s, p, o)
	matches := make([]entry, 0, len(candidates))
	for _, key := range candidates {
		e := g.triples[key]
		if e.triple.Matches(s, p, o) {
			matches = append(matches, e)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].seq < matches[j].seq })

	out := make([]Triple, len(matches))
	for i, e := range matches {
		out[i] = e.triple
	}
	return out
}

// candidates picks the smallest index bucket for the bound positions.
func (g *MemGraph) candidates(s, p, o quad.Value) []string {
	var best map[string]struct{}
	bound := false
	for _, c := range []struct {
		term quad.Value
		ix   index
	}{{s, g.subject}, {p, g.predicate}, {o, g.object}} {
		if c.term == nil {
			continue
		}
		set := c.ix[TermKey(Normalize(c.term))]
		if !bound || len(set) < len(best) {
			best = set
			bound = true
		}
	}

	if !bound {
		keys := make([]string, 0, len(g.triples))
		for k := range g.triples {
			keys = append(keys, k)
		}
		return keys
	}
	keys := make([]string, 0, len(best))
	for k := range best {
		keys = append(keys, k)
	}
	return keys
}

// NewBlankNode allocates a fresh blank node.
func (g *MemGraph) NewBlankNode() quad.BNode {
	return NewBlankNode()
}

// Size returns the number of triples.
func (g *MemGraph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.triples)
}

// NewBlankNode returns a blank node with a globally unique label.
func NewBlankNode() quad.BNode {
	return quad.BNode("b" + strings.ReplaceAll(uuid.NewString(), "-", ""))
}

// All returns every triple of g in insertion order.
func All(g Graph) []Triple {
	return g.Find(nil, nil, nil)
}

// Objects returns the objects of (s p ?).
func Objects(g Graph, s quad.Value, p string) []quad.Value {
	ts := g.Find(s, quad.IRI(p), nil)
	out := make([]quad.Value, len(ts))
	for i, t := range ts {
		out[i] = t.Object
	}
	return out
}

// Subjects returns the subjects of (? p o).
func Subjects(g Graph, p string, o quad.Value) []quad.Value {
	ts := g.Find(nil, quad.IRI(p), o)
	out := make([]quad.Value, len(ts))
	for i, t := range ts {
		out[i] = t.Subject
	}
	return out
}

// Object returns the single object of (s p ?). ok is false when there is
// no such triple or more than one.
func Object(g Graph, s quad.Value, p string) (quad.Value, bool) {
	objs := Objects(g, s, p)
	if len(objs) != 1 {
		return nil, false
	}
	return objs[0], true
}

// HasType reports whether (s rdf:type typ) is in g.
func HasType(g Graph, s quad.Value, typ string) bool {
	return g.Contains(T(s, typeIRI, quad.IRI(typ)))
}

// AddAll adds every triple and returns how many were new.
func AddAll(g Graph, ts []Triple) int {
	n := 0
	for _, t := range ts {
		if g.Add(t) {
			n++
		}
	}
	return n
}

// RemoveAll removes every triple and returns how many were present.
func RemoveAll(g Graph, ts []Triple) int {
	n := 0
	for _, t := range ts {
		if g.Remove(t) {
			n++
		}
	}
	return n
}
