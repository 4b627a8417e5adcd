package rdf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semowl/vocabulary/owl2"
)

const ex = "http://example.org/"

func iri(local string) quad.IRI { return quad.IRI(ex + local) }

func TestMemGraphSetSemantics(t *testing.T) {
	g := NewMemGraph()
	tr := T(iri("A"), owl2.RdfsSubClassOf, iri("B"))

	assert.True(t, g.Add(tr))
	assert.False(t, g.Add(tr), "second add must not duplicate")
	assert.Equal(t, 1, g.Size())
	assert.True(t, g.Contains(tr))

	assert.True(t, g.Remove(tr))
	assert.False(t, g.Remove(tr))
	assert.Equal(t, 0, g.Size())
	assert.False(t, g.Contains(tr))
}

func TestMemGraphFind(t *testing.T) {
	g := NewMemGraph()
	g.Add(T(iri("A"), owl2.RdfType, quad.IRI(owl2.OwlClass)))
	g.Add(T(iri("B"), owl2.RdfType, quad.IRI(owl2.OwlClass)))
	g.Add(T(iri("A"), owl2.RdfsSubClassOf, iri("B")))

	tests := []struct {
		name    string
		s, p, o quad.Value
		want    int
	}{
		{"all", nil, nil, nil, 3},
		{"by subject", iri("A"), nil, nil, 2},
		{"by predicate", nil, quad.IRI(owl2.RdfType), nil, 2},
		{"by object", nil, nil, iri("B"), 1},
		{"fully bound", iri("A"), quad.IRI(owl2.RdfsSubClassOf), iri("B"), 1},
		{"no match", iri("C"), nil, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, g.Find(tt.s, tt.p, tt.o), tt.want)
		})
	}

	all := All(g)
	require.Len(t, all, 3)
	assert.Equal(t, iri("A"), all[0].Subject, "insertion order")
	assert.Equal(t, iri("B"), all[1].Subject)
}

func TestLiteralNormalization(t *testing.T) {
	g := NewMemGraph()
	p := quad.IRI(ex + "p")

	g.Add(NewTriple(iri("s"), p, quad.TypedString{Value: "x", Type: quad.IRI(owl2.XsdString)}))
	assert.True(t, g.Contains(NewTriple(iri("s"), p, quad.String("x"))))

	g.Add(NewTriple(iri("s"), p, quad.Int(5)))
	assert.True(t, g.Contains(NewTriple(iri("s"), p, quad.TypedString{Value: "5", Type: quad.IRI(owl2.XsdInteger)})))

	g.Add(NewTriple(iri("s"), p, quad.LangString{Value: "chat", Lang: "FR"}))
	assert.True(t, g.Contains(NewTriple(iri("s"), p, quad.LangString{Value: "chat", Lang: "fr"})))
	assert.False(t, g.Add(NewTriple(iri("s"), p, quad.LangString{Value: "chat", Lang: "fr"})))
	stored := g.Find(iri("s"), p, quad.LangString{Value: "chat", Lang: "fr"})
	require.Len(t, stored, 1)
	assert.Equal(t, quad.LangString{Value: "chat", Lang: "FR"}, stored[0].Object, "tag case is preserved")

	assert.Equal(t, 3, g.Size())
	assert.True(t, IsLiteral(quad.String("x")))
	assert.False(t, IsLiteral(iri("s")))
}

func TestBlankNodesAreUnique(t *testing.T) {
	g := NewMemGraph()
	seen := make(map[quad.BNode]bool)
	for i := 0; i < 100; i++ {
		b := g.NewBlankNode()
		require.False(t, seen[b])
		seen[b] = true
	}
}

func TestBuffer(t *testing.T) {
	base := NewMemGraph()
	existing := T(iri("A"), owl2.RdfsSubClassOf, iri("B"))
	base.Add(existing)

	t.Run("staged changes are visible before commit", func(t *testing.T) {
		buf := NewBuffer(base)
		fresh := T(iri("B"), owl2.RdfsSubClassOf, iri("C"))

		assert.True(t, buf.Add(fresh))
		assert.False(t, buf.Add(existing))
		assert.True(t, buf.Contains(fresh))
		assert.False(t, base.Contains(fresh))
		assert.Len(t, buf.Find(nil, quad.IRI(owl2.RdfsSubClassOf), nil), 2)
		assert.Equal(t, 2, buf.Size())
		assert.Equal(t, []Triple{fresh}, buf.Pending())
	})

	t.Run("discard leaves base untouched", func(t *testing.T) {
		buf := NewBuffer(base)
		buf.Add(T(iri("X"), owl2.RdfType, quad.IRI(owl2.OwlClass)))
		buf.Remove(existing)
		assert.False(t, buf.Contains(existing))
		buf.Discard()
		assert.Equal(t, 1, base.Size())
		assert.True(t, base.Contains(existing))
	})

	t.Run("commit applies", func(t *testing.T) {
		buf := NewBuffer(base)
		fresh := T(iri("X"), owl2.RdfType, quad.IRI(owl2.OwlClass))
		buf.Add(fresh)
		buf.Remove(existing)
		added, removed := buf.Commit()
		assert.Equal(t, 1, added)
		assert.Equal(t, 1, removed)
		assert.True(t, base.Contains(fresh))
		assert.False(t, base.Contains(existing))
	})
}

func TestNQuadsRoundTrip(t *testing.T) {
	src := strings.Join([]string{
		`<http://example.org/A> <http://www.w3.org/2000/01/rdf-schema#subClassOf> <http://example.org/B> .`,
		`_:x <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://www.w3.org/2002/07/owl#Restriction> .`,
		`<http://example.org/A> <http://www.w3.org/2000/01/rdf-schema#label> "A"@en .`,
		`<http://example.org/i> <http://example.org/age> "42"^^<http://www.w3.org/2001/XMLSchema#integer> .`,
		``,
	}, "\n")

	g := NewMemGraph()
	n, err := ReadNQuads(strings.NewReader(src), g)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.True(t, g.Contains(T(iri("i"), ex+"age", quad.TypedString{Value: "42", Type: quad.IRI(owl2.XsdInteger)})))

	var buf bytes.Buffer
	require.NoError(t, WriteNQuads(&buf, g))

	again := NewMemGraph()
	_, err = ReadNQuads(&buf, again)
	require.NoError(t, err)
	assert.Equal(t, g.Size(), again.Size())
	for _, tr := range All(g) {
		assert.True(t, again.Contains(tr), tr.String())
	}
}

func TestClosure(t *testing.T) {
	g := NewMemGraph()
	r := g.NewBlankNode()
	g.Add(T(iri("A"), owl2.RdfsSubClassOf, r))
	g.Add(T(r, owl2.RdfType, quad.IRI(owl2.OwlRestriction)))
	g.Add(T(r, owl2.OwlOnProperty, iri("p")))
	list := CreateList(g, "", iri("B"), iri("C"))
	g.Add(T(r, owl2.OwlSomeValuesFrom, list))

	closure := Closure(g, r)
	assert.Len(t, closure, 3+4)
	for _, tr := range closure {
		assert.NotEqual(t, iri("A"), tr.Subject)
	}
}
