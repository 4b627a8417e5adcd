package rdf

import (
	"errors"
	"fmt"
	"io"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/nquads"
)

// ReadNQuads loads N-Quads or N-Triples from r into g. Graph labels are
// dropped. Literals keep their lexical form and datatype.
func ReadNQuads(r io.Reader, g Graph) (int, error) {
	qr := nquads.NewReader(r, true)
	defer qr.Close()

	n := 0
	for {
		q, err := qr.ReadQuad()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, fmt.Errorf("read n-quads: %w", err)
		}
		if !q.IsValid() {
			continue
		}
		if g.Add(NewTriple(q.Subject, q.Predicate, q.Object)) {
			n++
		}
	}
}

// WriteNQuads writes every triple of g to w in insertion order.
func WriteNQuads(w io.Writer, g Graph) error {
	qw := nquads.NewWriter(w)
	for _, t := range All(g) {
		if err := qw.WriteQuad(t.Quad()); err != nil {
			return fmt.Errorf("write n-quads: %w", err)
		}
	}
	return qw.Close()
}

// Closure returns the triples describing node: its own statements plus,
// recursively, those of every blank node they reach.
func Closure(g Graph, node quad.Value) []Triple {
	var out []Triple
	seen := map[string]bool{TermKey(node): true}
	queue := []quad.Value{node}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, t := range g.Find(cur, nil, nil) {
			out = append(out, t)
			if IsBlank(t.Object) && !seen[TermKey(t.Object)] {
				seen[TermKey(t.Object)] = true
				queue = append(queue, t.Object)
			}
		}
	}
	return out
}
