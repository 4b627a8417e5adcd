package translate

import (
	"encoding/hex"
	"strconv"

	"github.com/cayleygraph/quad"
	"lukechampine.com/blake3"

	"github.com/c360studio/semowl/owl"
	"github.com/c360studio/semowl/rdf"
)

// scopedGraph labels new blank nodes from a digest of the axiom being
// written and a running counter. Every node within one write is fresh, and
// rewriting the same axiom yields the same labels.
type scopedGraph struct {
	rdf.Graph
	seed string
	n    int
}

func scope(g rdf.Graph, ax owl.Axiom) *scopedGraph {
	if s, ok := g.(*scopedGraph); ok {
		return s
	}
	sum := blake3.Sum256([]byte(ax.String()))
	return &scopedGraph{Graph: g, seed: "x" + hex.EncodeToString(sum[:12])}
}

func (s *scopedGraph) NewBlankNode() quad.BNode {
	s.n++
	return quad.BNode(s.seed + "n" + strconv.Itoa(s.n))
}
