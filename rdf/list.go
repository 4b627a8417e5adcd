package rdf

import (
	"errors"
	"fmt"

	"github.com/cayleygraph/quad"

	"github.com/c360studio/semowl/vocabulary/owl2"
)

const (
	typeIRI  = owl2.RdfType
	firstIRI = owl2.RdfFirst
	restIRI  = owl2.RdfRest
)

// List errors.
var (
	ErrRecursiveList   = errors.New("rdf list refers to itself")
	ErrMalformedList   = errors.New("malformed rdf list")
	ErrIndexOutOfRange = errors.New("list index out of range")
)

// List is an RDF collection whose cells optionally carry an rdf:type.
//
// The empty list is rdf:nil and has no type triple. The first cell of a
// non-empty list keeps its identity across AddFirst and RemoveFirst, but
// the transition between empty and non-empty changes Head. When the list
// was obtained with an owner (a triple pointing at the head) that triple is
// rewired; otherwise callers must re-read Head after such a transition.
type List struct {
	g      Graph
	head   quad.Value
	typ    quad.IRI
	owner  quad.Value
	ownerP quad.IRI
}

// NewList returns a view of the list starting at head. typ may be empty.
func NewList(g Graph, head quad.Value, typ string) *List {
	if head == nil {
		head = Nil
	}
	return &List{g: g, head: head, typ: quad.IRI(typ)}
}

// ListAt returns a view of the list referenced by (s p ?). A missing
// triple is read as the empty list; the triple is created on first add.
func ListAt(g Graph, s quad.Value, p string, typ string) *List {
	head, ok := Object(g, s, p)
	if !ok {
		head = nil
	}
	l := NewList(g, head, typ)
	l.owner, l.ownerP = s, quad.IRI(p)
	return l
}

// CreateList writes a new list holding items and returns its head. Cells
// are allocated from the tail, one fresh node per item; no existing cell is
// modified.
func CreateList(g Graph, typ string, items ...quad.Value) quad.Value {
	l := NewList(g, Nil, typ)
	var rest quad.Value = Nil
	for i := len(items) - 1; i >= 0; i-- {
		rest = l.newCell(items[i], rest)
	}
	return rest
}

// Head returns the resource currently representing the list.
func (l *List) Head() quad.Value { return l.head }

// Type returns the cell type, if any.
func (l *List) Type() (string, bool) {
	return string(l.typ), l.typ != ""
}

// IsEmpty reports whether the list is rdf:nil.
func (l *List) IsEmpty() bool { return Is(l.head, owl2.RdfNil) }

// Add is AddLast.
func (l *List) Add(v quad.Value) error { return l.AddLast(v) }

// Remove is RemoveLast.
func (l *List) Remove() error { return l.RemoveLast() }

// AddFirst prepends v.
func (l *List) AddFirst(v quad.Value) error {
	if l.IsEmpty() {
		cell := l.newCell(v, Nil)
		l.setHead(cell)
		return nil
	}
	// Move the current head contents into a fresh second cell so the head
	// resource stays the same.
	first, rest, err := cellOf(l.g, l.head)
	if err != nil {
		return fmt.Errorf("add first: %w", err)
	}
	second := l.newCell(first, rest)
	l.g.Remove(T(l.head, firstIRI, first))
	l.g.Remove(T(l.head, restIRI, rest))
	l.g.Add(T(l.head, firstIRI, v))
	l.g.Add(T(l.head, restIRI, second))
	return nil
}

// AddLast appends v.
func (l *List) AddLast(v quad.Value) error {
	if l.IsEmpty() {
		return l.AddFirst(v)
	}
	cells, err := l.cells()
	if err != nil {
		return fmt.Errorf("add last: %w", err)
	}
	last := cells[len(cells)-1]
	cell := l.newCell(v, Nil)
	l.g.Remove(T(last, restIRI, Nil))
	l.g.Add(T(last, restIRI, cell))
	return nil
}

// RemoveFirst drops the first item. It is a no-op on the empty list.
func (l *List) RemoveFirst() error {
	if l.IsEmpty() {
		return nil
	}
	first, rest, err := cellOf(l.g, l.head)
	if err != nil {
		return fmt.Errorf("remove first: %w", err)
	}
	if Is(rest, owl2.RdfNil) {
		l.dropCell(l.head)
		l.setHead(Nil)
		return nil
	}
	nextFirst, nextRest, err := cellOf(l.g, rest)
	if err != nil {
		return fmt.Errorf("remove first: %w", err)
	}
	l.dropCell(rest)
	l.g.Remove(T(l.head, firstIRI, first))
	l.g.Remove(T(l.head, restIRI, rest))
	l.g.Add(T(l.head, firstIRI, nextFirst))
	l.g.Add(T(l.head, restIRI, nextRest))
	return nil
}

// RemoveLast drops the last item. It is a no-op on the empty list.
func (l *List) RemoveLast() error {
	if l.IsEmpty() {
		return nil
	}
	cells, err := l.cells()
	if err != nil {
		return fmt.Errorf("remove last: %w", err)
	}
	if len(cells) == 1 {
		return l.RemoveFirst()
	}
	last, prev := cells[len(cells)-1], cells[len(cells)-2]
	l.dropCell(last)
	l.g.Remove(T(prev, restIRI, last))
	l.g.Add(T(prev, restIRI, Nil))
	return nil
}

// Clear removes every cell and turns the list into rdf:nil.
func (l *List) Clear() error {
	if l.IsEmpty() {
		return nil
	}
	cells, err := l.cells()
	if err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	for _, c := range cells {
		l.dropCell(c)
	}
	l.setHead(Nil)
	return nil
}

// Get returns the sublist starting at index i. Changes made through the
// view that empty or populate it rewire the preceding cell.
func (l *List) Get(i int) (*List, error) {
	if i < 0 {
		return nil, fmt.Errorf("get %d: %w", i, ErrIndexOutOfRange)
	}
	if i == 0 {
		return l, nil
	}
	cells, err := l.cells()
	if err != nil {
		return nil, err
	}
	if i > len(cells) {
		return nil, fmt.Errorf("get %d of %d: %w", i, len(cells), ErrIndexOutOfRange)
	}
	prev := cells[i-1]
	head, _ := Object(l.g, prev, restIRI)
	return &List{g: l.g, head: head, typ: l.typ, owner: prev, ownerP: quad.IRI(restIRI)}, nil
}

// Len returns the number of items.
func (l *List) Len() int {
	cells, _ := l.cells()
	return len(cells)
}

// Members returns the items in order.
func (l *List) Members() ([]quad.Value, error) {
	items, _, err := ReadList(l.g, l.head)
	return items, err
}

// Triples returns every triple making up the list cells.
func (l *List) Triples() ([]Triple, error) {
	_, ts, err := ReadList(l.g, l.head)
	return ts, err
}

func (l *List) newCell(first, rest quad.Value) quad.Value {
	cell := l.g.NewBlankNode()
	if l.typ != "" {
		l.g.Add(T(cell, typeIRI, l.typ))
	}
	l.g.Add(T(cell, firstIRI, first))
	l.g.Add(T(cell, restIRI, rest))
	return cell
}

func (l *List) dropCell(cell quad.Value) {
	for _, p := range []string{firstIRI, restIRI} {
		for _, t := range l.g.Find(cell, quad.IRI(p), nil) {
			l.g.Remove(t)
		}
	}
	if l.typ != "" {
		l.g.Remove(T(cell, typeIRI, l.typ))
	}
}

func (l *List) setHead(head quad.Value) {
	if l.owner != nil {
		if l.head != nil {
			l.g.Remove(NewTriple(l.owner, l.ownerP, l.head))
		}
		l.g.Add(NewTriple(l.owner, l.ownerP, head))
	}
	l.head = head
}

func (l *List) cells() ([]quad.Value, error) {
	var cells []quad.Value
	seen := make(map[string]bool)
	for cur := l.head; cur != nil && !Is(cur, owl2.RdfNil); {
		k := TermKey(cur)
		if seen[k] {
			return nil, fmt.Errorf("%w: at %s", ErrRecursiveList, k)
		}
		seen[k] = true
		cells = append(cells, cur)
		_, next, err := cellOf(l.g, cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cells, nil
}

// cellOf returns the single rdf:first and rdf:rest of a list cell.
func cellOf(g Graph, cell quad.Value) (first, rest quad.Value, err error) {
	first, ok := Object(g, cell, firstIRI)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s needs exactly one rdf:first", ErrMalformedList, TermKey(cell))
	}
	rest, ok = Object(g, cell, restIRI)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s needs exactly one rdf:rest", ErrMalformedList, TermKey(cell))
	}
	return first, rest, nil
}

// ReadList walks the collection at head and returns its items together
// with every rdf:first, rdf:rest and cell rdf:type triple visited.
func ReadList(g Graph, head quad.Value) ([]quad.Value, []Triple, error) {
	var (
		items   []quad.Value
		triples []Triple
	)
	seen := make(map[string]bool)
	for cur := head; !Is(cur, owl2.RdfNil); {
		if cur == nil || !IsResource(cur) {
			return nil, nil, fmt.Errorf("%w: bad cell %s", ErrMalformedList, TermKey(cur))
		}
		k := TermKey(cur)
		if seen[k] {
			return nil, nil, fmt.Errorf("%w: at %s", ErrRecursiveList, k)
		}
		seen[k] = true

		first, ok := Object(g, cur, firstIRI)
		if !ok {
			return nil, nil, fmt.Errorf("%w: %s needs exactly one rdf:first", ErrMalformedList, k)
		}
		rest, ok := Object(g, cur, restIRI)
		if !ok {
			return nil, nil, fmt.Errorf("%w: %s needs exactly one rdf:rest", ErrMalformedList, k)
		}
		items = append(items, first)
		triples = append(triples, T(cur, firstIRI, first), T(cur, restIRI, rest))
		if IsBlank(cur) {
			triples = append(triples, g.Find(cur, quad.IRI(typeIRI), nil)...)
		}
		cur = rest
	}
	return items, triples, nil
}
