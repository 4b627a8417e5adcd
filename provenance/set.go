package provenance

import "github.com/c360studio/semowl/rdf"

// Set holds wrappers keyed by object. Adding a wrapper for an object already
// present merges the triple sets.
type Set[O Object] struct {
	order []string
	items map[string]Wrapped[O]
}

// NewSet returns an empty set.
func NewSet[O Object]() *Set[O] {
	return &Set[O]{items: make(map[string]Wrapped[O])}
}

// Add inserts w and reports whether its object was new.
func (s *Set[O]) Add(w Wrapped[O]) bool {
	key := w.Hash()
	if existing, ok := s.items[key]; ok {
		s.items[key] = existing.Append(w)
		return false
	}
	s.items[key] = w
	s.order = append(s.order, key)
	return true
}

// Get returns the wrapper for obj.
func (s *Set[O]) Get(obj O) (Wrapped[O], bool) {
	w, ok := s.items[Hash(obj)]
	return w, ok
}

// Contains reports whether obj is in the set.
func (s *Set[O]) Contains(obj O) bool {
	_, ok := s.items[Hash(obj)]
	return ok
}

// Remove deletes obj and reports whether it was present.
func (s *Set[O]) Remove(obj O) bool {
	key := Hash(obj)
	if _, ok := s.items[key]; !ok {
		return false
	}
	delete(s.items, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of distinct objects.
func (s *Set[O]) Len() int { return len(s.items) }

// Items returns the wrappers in first-insertion order.
func (s *Set[O]) Items() []Wrapped[O] {
	out := make([]Wrapped[O], 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.items[k])
	}
	return out
}

// Objects returns the objects in first-insertion order.
func (s *Set[O]) Objects() []O {
	out := make([]O, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.items[k].object)
	}
	return out
}

// Triples returns the union of every wrapper's triples.
func (s *Set[O]) Triples() []rdf.Triple {
	var all []rdf.Triple
	for _, k := range s.order {
		all = append(all, s.items[k].triples...)
	}
	return union(nil, all)
}
