package rdf

import (
	"github.com/cayleygraph/quad"
)

// Buffer stages additions and removals over a base graph. Reads see the
// staged state; the base is untouched until Commit.
type Buffer struct {
	base    Graph
	added   []Triple
	addKeys map[string]int
	removed map[string]Triple
}

// NewBuffer returns an empty buffer over base.
func NewBuffer(base Graph) *Buffer {
	return &Buffer{
		base:    base,
		addKeys: make(map[string]int),
		removed: make(map[string]Triple),
	}
}

// Add stages t for insertion.
func (b *Buffer) Add(t Triple) bool {
	t = NewTriple(t.Subject, t.Predicate, t.Object)
	key := t.Key()
	if _, ok := b.removed[key]; ok {
		delete(b.removed, key)
		return true
	}
	if _, ok := b.addKeys[key]; ok || b.base.Contains(t) {
		return false
	}
	b.addKeys[key] = len(b.added)
	b.added = append(b.added, t)
	return true
}

// Remove stages t for deletion.
func (b *Buffer) Remove(t Triple) bool {
	t = NewTriple(t.Subject, t.Predicate, t.Object)
	key := t.Key()
	if i, ok := b.addKeys[key]; ok {
		delete(b.addKeys, key)
		b.added[i] = Triple{}
		return true
	}
	if _, ok := b.removed[key]; ok || !b.base.Contains(t) {
		return false
	}
	b.removed[key] = t
	return true
}

// Contains reports whether t is present in the staged view.
func (b *Buffer) Contains(t Triple) bool {
	key := NewTriple(t.Subject, t.Predicate, t.Object).Key()
	if _, ok := b.addKeys[key]; ok {
		return true
	}
	if _, ok := b.removed[key]; ok {
		return false
	}
	return b.base.Contains(t)
}

// Find matches the pattern against the staged view. Base triples come first.
func (b *Buffer) Find(s, p, o quad.Value) []Triple {
	var out []Triple
	for _, t := range b.base.Find(s, p, o) {
		if _, gone := b.removed[t.Key()]; !gone {
			out = append(out, t)
		}
	}
	for _, t := range b.added {
		if t.Subject == nil {
			continue
		}
		if t.Matches(s, p, o) {
			out = append(out, t)
		}
	}
	return out
}

// NewBlankNode delegates to the base graph.
func (b *Buffer) NewBlankNode() quad.BNode {
	return b.base.NewBlankNode()
}

// Size returns the number of triples in the staged view.
func (b *Buffer) Size() int {
	return b.base.Size() + len(b.addKeys) - len(b.removed)
}

// Pending returns the staged additions in order.
func (b *Buffer) Pending() []Triple {
	out := make([]Triple, 0, len(b.addKeys))
	for _, t := range b.added {
		if t.Subject != nil {
			out = append(out, t)
		}
	}
	return out
}

// Commit applies the staged changes to the base graph and resets the buffer.
// It returns the number of triples added and removed.
func (b *Buffer) Commit() (added, removed int) {
	for _, t := range b.removed {
		if b.base.Remove(t) {
			removed++
		}
	}
	for _, t := range b.added {
		if t.Subject != nil && b.base.Add(t) {
			added++
		}
	}
	b.Discard()
	return added, removed
}

// Discard drops every staged change.
func (b *Buffer) Discard() {
	b.added = nil
	b.addKeys = make(map[string]int)
	b.removed = make(map[string]Triple)
}
