package translate

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semowl/metric"
	"github.com/c360studio/semowl/owl"
	"github.com/c360studio/semowl/rdf"
	"github.com/c360studio/semowl/vocabulary/owl2"
)

func count(g rdf.Graph, s quad.Value, p string, o quad.Value) int {
	var pv quad.Value
	if p != "" {
		pv = quad.IRI(p)
	}
	return len(g.Find(s, pv, o))
}

func TestTwoWayArity(t *testing.T) {
	m := NewManager(DefaultConfig())

	t.Run("two operands write one triple", func(t *testing.T) {
		g := rdf.NewMemGraph()
		require.NoError(t, m.Write(g, owl.DisjointClasses{Classes: []owl.ClassExpression{clsA, clsB}}))
		assert.Equal(t, 1, g.Size())
		assert.True(t, g.Contains(rdf.T(quad.IRI(clsA), owl2.OwlDisjointWith, quad.IRI(clsB))))
	})

	t.Run("more operands write a members list", func(t *testing.T) {
		g := rdf.NewMemGraph()
		require.NoError(t, m.Write(g, owl.DisjointClasses{Classes: []owl.ClassExpression{clsA, clsB, clsC}}))
		assert.Equal(t, 0, count(g, nil, owl2.OwlDisjointWith, nil))
		nodes := g.Find(nil, quad.IRI(owl2.RdfType), quad.IRI(owl2.OwlAllDisjointClasses))
		require.Len(t, nodes, 1)
		head, ok := rdf.Object(g, nodes[0].Subject, owl2.OwlMembers)
		require.True(t, ok)
		items, _, err := rdf.ReadList(g, head)
		require.NoError(t, err)
		assert.Len(t, items, 3)
	})

	t.Run("different individuals use distinct members", func(t *testing.T) {
		g := rdf.NewMemGraph()
		require.NoError(t, m.Write(g, owl.DifferentIndividuals{Individuals: []owl.Individual{indA, indB, indC}}))
		nodes := g.Find(nil, quad.IRI(owl2.RdfType), quad.IRI(owl2.OwlAllDifferent))
		require.Len(t, nodes, 1)
		_, ok := rdf.Object(g, nodes[0].Subject, owl2.OwlDistinctMembers)
		assert.True(t, ok)
	})

	t.Run("members list is also read for all different", func(t *testing.T) {
		g := rdf.NewMemGraph()
		b := g.NewBlankNode()
		g.Add(rdf.T(b, owl2.RdfType, quad.IRI(owl2.OwlAllDifferent)))
		g.Add(rdf.T(b, owl2.OwlMembers, rdf.CreateList(g, "", quad.IRI(indA), quad.IRI(indB), quad.IRI(indC))))

		want := owl.DifferentIndividuals{Individuals: []owl.Individual{indA, indB, indC}}
		assert.Equal(t, []string{want.String()}, readBack(t, m, g))
	})
}

func TestNaryStar(t *testing.T) {
	m := NewManager(DefaultConfig())
	union := owl.ObjectUnionOf{Operands: []owl.ClassExpression{clsB, clsC}}

	t.Run("anchored at first named operand", func(t *testing.T) {
		g := declaredGraph(t, m)
		ax := owl.EquivalentClasses{Classes: []owl.ClassExpression{union, clsA, clsB}}
		require.NoError(t, m.Write(g, ax))

		stmts := g.Find(nil, quad.IRI(owl2.OwlEquivalentClass), nil)
		require.Len(t, stmts, 2)
		for _, s := range stmts {
			assert.True(t, rdf.Is(s.Subject, string(clsA)), "subject %s", s.Subject)
		}
		assert.Equal(t, []string{ax.String()}, readBack(t, m, g))
	})

	t.Run("no named operand", func(t *testing.T) {
		g := rdf.NewMemGraph()
		other := owl.ObjectIntersectionOf{Operands: []owl.ClassExpression{clsA, clsB}}
		err := m.Write(g, owl.EquivalentClasses{Classes: []owl.ClassExpression{union, other}})
		require.Error(t, err)
		assert.True(t, IsTranslationError(err))
		assert.Equal(t, 0, g.Size())
	})

	t.Run("different annotations stay apart", func(t *testing.T) {
		g := declaredGraph(t, m)
		first := owl.EquivalentClasses{Classes: []owl.ClassExpression{clsA, clsB}, Annotations: annotated("one")}
		second := owl.EquivalentClasses{Classes: []owl.ClassExpression{clsA, clsC}}
		require.NoError(t, m.Write(g, first, second))
		assert.ElementsMatch(t, []string{first.String(), second.String()}, readBack(t, m, g))
	})
}

func TestNaryMergeAcrossOverlap(t *testing.T) {
	m := NewManager(DefaultConfig())
	g := declaredGraph(t, m)
	before := g.Size()

	first := owl.EquivalentClasses{Classes: []owl.ClassExpression{clsA, clsB}, Annotations: annotated("same")}
	second := owl.EquivalentClasses{Classes: []owl.ClassExpression{clsB, clsC}, Annotations: annotated("same")}
	require.NoError(t, m.Write(g, first, second))
	written := g.Size() - before

	merged := owl.EquivalentClasses{Classes: []owl.ClassExpression{clsA, clsB, clsC}, Annotations: annotated("same")}
	assert.Equal(t, []string{merged.String()}, readBack(t, m, g))

	ws, err := m.ReadAll(g)
	require.NoError(t, err)
	w, ok := find(ws, merged)
	require.True(t, ok)
	assert.Equal(t, written, w.Len())

	assert.Equal(t, written, m.Remove(g, w))
	assert.Equal(t, before, g.Size())
	assert.Empty(t, readBack(t, m, g))
}

func TestNestedAnnotations(t *testing.T) {
	m := NewManager(DefaultConfig())
	g := declaredGraph(t, m)
	ax := owl.SubClassOf{Sub: clsA, Super: clsB, Annotations: owl.Annotations{
		owl.NewAnnotation(label, owl.StringLiteral("x"),
			owl.NewAnnotation(owl.AnnotationProperty(owl2.RdfsComment), owl.StringLiteral("y"))),
	}}
	require.NoError(t, m.Write(g, ax))

	assert.Equal(t, 1, count(g, nil, owl2.RdfType, quad.IRI(owl2.OwlAxiom)))
	assert.Equal(t, 1, count(g, nil, owl2.RdfType, quad.IRI(owl2.OwlAnnotation)))
	assert.Equal(t, []string{ax.String()}, readBack(t, m, g))
}

func TestMultipleReificationsMerge(t *testing.T) {
	m := NewManager(DefaultConfig())
	g := declaredGraph(t, m)
	require.NoError(t, m.Write(g, owl.SubClassOf{Sub: clsA, Super: clsB, Annotations: annotated("one")}))
	require.NoError(t, m.Write(g, owl.SubClassOf{Sub: clsA, Super: clsB, Annotations: annotated("two")}))

	want := owl.SubClassOf{Sub: clsA, Super: clsB, Annotations: owl.Annotations{
		owl.NewAnnotation(label, owl.StringLiteral("one")),
		owl.NewAnnotation(label, owl.StringLiteral("two")),
	}}
	assert.Equal(t, []string{want.String()}, readBack(t, m, g))
}

func TestWriteIsIdempotent(t *testing.T) {
	x, y := owl.Variable(ns+"x"), owl.Variable(ns+"y")
	tests := []struct {
		name  string
		axiom owl.Axiom
	}{
		{"nested union", owl.SubClassOf{
			Sub:         clsA,
			Super:       owl.ObjectSomeValuesFrom{Property: propP, Filler: owl.ObjectUnionOf{Operands: []owl.ClassExpression{clsB, clsC}}},
			Annotations: annotated("once"),
		}},
		{"disjoint union", owl.DisjointUnion{Class: clsA, Classes: []owl.ClassExpression{clsB, clsC}, Annotations: annotated("du")}},
		{"has key", owl.HasKey{Class: clsA, ObjectProperties: []owl.ObjectPropertyExpression{propP, propQ}, DataProperties: []owl.DataProperty{dataD}}},
		{"property chain", owl.SubPropertyChainOf{Chain: []owl.ObjectPropertyExpression{propP, propQ}, Super: propR}},
		{"all disjoint classes", owl.DisjointClasses{Classes: []owl.ClassExpression{clsA, clsB, clsC}, Annotations: annotated("dc")}},
		{"all different", owl.DifferentIndividuals{Individuals: []owl.Individual{indA, indB, indC}}},
		{"facet list", owl.DataPropertyRange{Property: dataD, Range: owl.DatatypeRestriction{
			Datatype: xsdInteger,
			Facets: []owl.FacetRestriction{
				{Facet: owl.IRI(owl2.XsdMinInclusive), Value: owl.IntegerLiteral(0)},
				{Facet: owl.IRI(owl2.XsdMaxInclusive), Value: owl.IntegerLiteral(9)},
			},
		}}},
		{"swrl rule", owl.SWRLRule{
			Body: []owl.Atom{
				owl.ClassAtom{Class: clsA, Arg: x},
				owl.ObjectPropertyAtom{Property: propP, Arg1: x, Arg2: y},
			},
			Head: []owl.Atom{owl.ClassAtom{Class: clsB, Arg: y}},
		}},
	}

	m := NewManager(DefaultConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := declaredGraph(t, m)
			require.NoError(t, m.Write(g, tt.axiom))
			size := g.Size()
			require.Equal(t, []string{tt.axiom.String()}, readBack(t, m, g))

			require.NoError(t, m.Write(g, tt.axiom))
			assert.Equal(t, size, g.Size())
			assert.Equal(t, []string{tt.axiom.String()}, readBack(t, m, g))
		})
	}
}

func TestWriteIllegalArguments(t *testing.T) {
	tests := []struct {
		name  string
		axiom owl.Axiom
	}{
		{"nil axiom", nil},
		{"nil operand", owl.SubClassOf{Super: clsB}},
		{"single operand", owl.EquivalentClasses{Classes: []owl.ClassExpression{clsA}}},
		{"empty annotation domain", owl.AnnotationPropertyDomain{Property: note}},
		{"two inverse operands", owl.InverseObjectProperties{First: owl.ObjectInverseOf{Property: propP}, Second: owl.ObjectInverseOf{Property: propQ}}},
		{"short chain", owl.SubPropertyChainOf{Chain: []owl.ObjectPropertyExpression{propP}, Super: propQ}},
		{"annotation without value", owl.SubClassOf{Sub: clsA, Super: clsB, Annotations: owl.Annotations{{Property: label}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(DefaultConfig())
			g := declaredGraph(t, m)
			size := g.Size()

			err := m.Write(g, tt.axiom)
			require.Error(t, err)
			assert.True(t, IsIllegalArgument(err), "got %v", err)
			assert.Equal(t, size, g.Size())
		})
	}
}

func TestWriteNonAtomicKeepsPartialTriples(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AtomicWrites = false
	m := NewManager(cfg)
	g := rdf.NewMemGraph()

	err := m.Write(g, owl.SubClassOf{Sub: clsA, Super: clsB, Annotations: owl.Annotations{{Property: label}}})
	require.Error(t, err)
	assert.True(t, g.Contains(rdf.T(quad.IRI(clsA), owl2.RdfsSubClassOf, quad.IRI(clsB))))
}

func TestSelfReferenceFails(t *testing.T) {
	build := func(t *testing.T, m *Manager) rdf.Graph {
		g := declaredGraph(t, m)
		c := g.NewBlankNode()
		g.Add(rdf.T(c, owl2.OwlComplementOf, c))
		g.Add(rdf.T(quad.IRI(clsA), owl2.RdfsSubClassOf, c))
		return g
	}

	t.Run("aborts by default", func(t *testing.T) {
		m := NewManager(DefaultConfig())
		_, err := m.ReadAll(build(t, m))
		require.Error(t, err)
		assert.True(t, IsTranslationError(err))
	})

	t.Run("skipped when ignoring errors", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.IgnoreReadErrors = true
		var logs bytes.Buffer
		m := NewManager(cfg, WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))

		assert.Empty(t, readBack(t, m, build(t, m)))
		assert.Contains(t, logs.String(), "Skipping statement")
	})
}

func TestMalformedRestriction(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IgnoreReadErrors = true
	m := NewManager(cfg)
	g := declaredGraph(t, m)
	require.NoError(t, m.Write(g, owl.SubClassOf{Sub: clsB, Super: clsC}))

	r := g.NewBlankNode()
	g.Add(rdf.T(r, owl2.RdfType, quad.IRI(owl2.OwlRestriction)))
	g.Add(rdf.T(r, owl2.OwlOnProperty, quad.IRI(propP)))
	g.Add(rdf.T(quad.IRI(clsA), owl2.RdfsSubClassOf, r))

	want := owl.SubClassOf{Sub: clsB, Super: clsC}
	assert.Equal(t, []string{want.String()}, readBack(t, m, g))
}

func TestHasSelfMustBeTrue(t *testing.T) {
	build := func(t *testing.T, m *Manager, flag quad.Value) rdf.Graph {
		g := declaredGraph(t, m)
		r := g.NewBlankNode()
		g.Add(rdf.T(r, owl2.RdfType, quad.IRI(owl2.OwlRestriction)))
		g.Add(rdf.T(r, owl2.OwlOnProperty, quad.IRI(propP)))
		g.Add(rdf.T(r, owl2.OwlHasSelf, flag))
		g.Add(rdf.T(quad.IRI(clsA), owl2.RdfsSubClassOf, r))
		return g
	}
	boolean := func(lexical string) quad.Value {
		return quad.TypedString{Value: quad.String(lexical), Type: quad.IRI(owl2.XsdBoolean)}
	}
	self := owl.SubClassOf{Sub: clsA, Super: owl.ObjectHasSelf{Property: propP}}

	t.Run("true is read", func(t *testing.T) {
		m := NewManager(DefaultConfig())
		assert.Equal(t, []string{self.String()}, readBack(t, m, build(t, m, boolean("true"))))
		assert.Equal(t, []string{self.String()}, readBack(t, m, build(t, m, boolean("1"))))
	})

	for _, tt := range []struct {
		name string
		flag quad.Value
	}{
		{"false", boolean("false")},
		{"plain string", quad.String("true")},
		{"integer", quad.TypedString{Value: "1", Type: quad.IRI(owl2.XsdInteger)}},
		{"iri", quad.IRI(ns + "yes")},
	} {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(DefaultConfig())
			_, err := m.ReadAll(build(t, m, tt.flag))
			require.Error(t, err)
			assert.True(t, IsTranslationError(err), "got %v", err)

			cfg := DefaultConfig()
			cfg.IgnoreReadErrors = true
			lenient := NewManager(cfg)
			assert.Empty(t, readBack(t, lenient, build(t, lenient, tt.flag)))
		})
	}
}

func TestUnsupportedFacet(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IgnoreReadErrors = true
	m := NewManager(cfg)
	g := declaredGraph(t, m)

	facet := g.NewBlankNode()
	g.Add(rdf.T(facet, ns+"notAFacet", quad.Int(3)))
	restriction := g.NewBlankNode()
	g.Add(rdf.T(restriction, owl2.RdfType, quad.IRI(owl2.RdfsDatatype)))
	g.Add(rdf.T(restriction, owl2.OwlOnDatatype, quad.IRI(owl2.XsdInteger)))
	g.Add(rdf.T(restriction, owl2.OwlWithRestrictions, rdf.CreateList(g, "", facet)))
	g.Add(rdf.T(quad.IRI(dataD), owl2.RdfsRange, restriction))

	ws, err := m.ReadAll(g)
	require.NoError(t, err)
	for _, w := range ws {
		assert.Equal(t, owl.AxiomDeclaration, w.Object().AxiomType(), "unexpected %s", w)
	}
}

func TestLookupUnknownType(t *testing.T) {
	_, err := Lookup(owl.AxiomType(999))
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))

	_, err = NewManager(DefaultConfig()).Read(rdf.NewMemGraph(), owl.AxiomType(999), rdf.Triple{})
	assert.True(t, IsConfigurationError(err))
}

func TestTranslatorsCoverEveryAxiomType(t *testing.T) {
	trs := Translators()
	require.Len(t, trs, len(owl.AxiomTypes()))
	for i, at := range owl.AxiomTypes() {
		assert.Equal(t, at, trs[i].AxiomType())
	}
}

func TestWrongTypeForTranslator(t *testing.T) {
	tr, err := Lookup(owl.AxiomSubClassOf)
	require.NoError(t, err)
	err = tr.Write(rdf.NewMemGraph(), owl.EquivalentClasses{Classes: []owl.ClassExpression{clsA, clsB}})
	assert.True(t, IsIllegalArgument(err))
}

func TestBulkAnnotationAssertions(t *testing.T) {
	decl := owl.Declaration{Entity: clsA, Annotations: annotated("A")}

	t.Run("enabled", func(t *testing.T) {
		m := NewManager(DefaultConfig())
		g := rdf.NewMemGraph()
		require.NoError(t, m.Write(g, decl))

		ws, err := m.ReadAll(g)
		require.NoError(t, err)
		require.Len(t, ws, 2)
		_, ok := find(ws, owl.Declaration{Entity: clsA})
		assert.True(t, ok)
		assertion, ok := find(ws, owl.AnnotationAssertion{Property: label, Subject: owl.IRI(clsA), Value: owl.StringLiteral("A")})
		require.True(t, ok)
		assert.Equal(t, 5, assertion.Len())
	})

	t.Run("disabled", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.BulkAnnotationAssertions = false
		m := NewManager(cfg)
		g := rdf.NewMemGraph()
		require.NoError(t, m.Write(g, decl))

		ws, err := m.ReadAll(g)
		require.NoError(t, err)
		require.Len(t, ws, 1)
		assert.True(t, owl.Equal(decl, ws[0].Object()))
	})

	t.Run("nested annotations keep the declaration annotated", func(t *testing.T) {
		m := NewManager(DefaultConfig())
		g := rdf.NewMemGraph()
		nested := owl.Declaration{Entity: clsA, Annotations: owl.Annotations{
			owl.NewAnnotation(label, owl.StringLiteral("A"), owl.NewAnnotation(note, owl.StringLiteral("why"))),
		}}
		require.NoError(t, m.Write(g, nested))

		ws, err := m.ReadAll(g)
		require.NoError(t, err)
		require.Len(t, ws, 1)
		assert.True(t, owl.Equal(nested, ws[0].Object()))
	})
}

func TestInverseAssertionReadsOnNamedProperty(t *testing.T) {
	m := NewManager(DefaultConfig())
	g := declaredGraph(t, m)
	require.NoError(t, m.Write(g, owl.ObjectPropertyAssertion{Property: owl.ObjectInverseOf{Property: propP}, Subject: indA, Object: indB}))

	assert.True(t, g.Contains(rdf.T(quad.IRI(indB), string(propP), quad.IRI(indA))))
	want := owl.ObjectPropertyAssertion{Property: propP, Subject: indB, Object: indA}
	assert.Equal(t, []string{want.String()}, readBack(t, m, g))
}

func TestInverseObjectPropertiesNamedFirst(t *testing.T) {
	m := NewManager(DefaultConfig())
	g := declaredGraph(t, m)
	ax := owl.InverseObjectProperties{First: owl.ObjectInverseOf{Property: propQ}, Second: propP}
	require.NoError(t, m.Write(g, ax))

	stmts := g.Find(quad.IRI(propP), quad.IRI(owl2.OwlInverseOf), nil)
	require.Len(t, stmts, 1)
	assert.True(t, rdf.IsBlank(stmts[0].Object))
	assert.Equal(t, []string{ax.String()}, readBack(t, m, g))
}

func TestRemove(t *testing.T) {
	m := NewManager(DefaultConfig())
	g := declaredGraph(t, m)
	before := g.Size()

	ax := owl.SubClassOf{
		Sub:         clsA,
		Super:       owl.ObjectSomeValuesFrom{Property: propP, Filler: owl.ObjectIntersectionOf{Operands: []owl.ClassExpression{clsB, clsC}}},
		Annotations: owl.Annotations{owl.NewAnnotation(label, owl.StringLiteral("x"), owl.NewAnnotation(note, owl.StringLiteral("y")))},
	}
	require.NoError(t, m.Write(g, ax))
	written := g.Size() - before

	ws, err := m.ReadAll(g)
	require.NoError(t, err)
	w, ok := find(ws, ax)
	require.True(t, ok)
	assert.Equal(t, written, w.Len())

	assert.Equal(t, written, m.Remove(g, w))
	assert.Equal(t, before, g.Size())
	assert.Equal(t, 0, m.Remove(g, w))
}

func TestRemoveLeavesSharedOperands(t *testing.T) {
	m := NewManager(DefaultConfig())
	g := declaredGraph(t, m)
	keep := owl.SubClassOf{Sub: clsA, Super: clsB}
	drop := owl.SubClassOf{Sub: clsA, Super: clsC}
	require.NoError(t, m.Write(g, keep, drop))

	ws, err := m.ReadAll(g)
	require.NoError(t, err)
	w, ok := find(ws, drop)
	require.True(t, ok)
	assert.Equal(t, 1, m.Remove(g, w))
	assert.Equal(t, []string{keep.String()}, readBack(t, m, g))
}

func TestLanguageTagCaseKept(t *testing.T) {
	m := NewManager(DefaultConfig())
	g := declaredGraph(t, m)
	ax := owl.DataPropertyAssertion{Property: dataD, Subject: indA, Value: owl.LangLiteral("colour", "en-GB")}
	require.NoError(t, m.Write(g, ax))

	stmts := g.Find(quad.IRI(indA), quad.IRI(dataD), nil)
	require.Len(t, stmts, 1)
	assert.Equal(t, quad.LangString{Value: "colour", Lang: "en-GB"}, stmts[0].Object)

	ws, err := m.ReadAll(g)
	require.NoError(t, err)
	w, ok := find(ws, ax)
	require.True(t, ok)
	back, ok := w.Object().(owl.DataPropertyAssertion)
	require.True(t, ok)
	assert.Equal(t, "en-GB", back.Value.Lang)

	require.NoError(t, m.Write(g, ax))
	assert.Len(t, g.Find(quad.IRI(indA), quad.IRI(dataD), nil), 1)
}

func TestPunnedPropertyRestriction(t *testing.T) {
	m := NewManager(DefaultConfig())
	g := declaredGraph(t, m)
	punned := owl.DataProperty(propP)
	require.NoError(t, m.Write(g, owl.Declaration{Entity: punned}))

	object := owl.SubClassOf{Sub: clsA, Super: owl.ObjectSomeValuesFrom{Property: propP, Filler: clsB}}
	data := owl.SubClassOf{Sub: clsC, Super: owl.DataSomeValuesFrom{Properties: []owl.DataProperty{punned}, Filler: xsdInteger}}
	require.NoError(t, m.Write(g, object, data))

	assert.ElementsMatch(t, []string{object.String(), data.String()}, readBack(t, m, g))
}

func TestClassify(t *testing.T) {
	m := NewManager(DefaultConfig())
	g := declaredGraph(t, m)
	require.NoError(t, m.Write(g, owl.SubClassOf{Sub: clsA, Super: owl.DataSomeValuesFrom{Properties: []owl.DataProperty{dataD}, Filler: xsdInteger}}))
	require.NoError(t, m.Write(g, owl.DataPropertyRange{Property: dataE, Range: owl.DataUnionOf{Operands: []owl.DataRange{xsdInteger, xsdString}}}))

	super, ok := rdf.Object(g, quad.IRI(clsA), owl2.RdfsSubClassOf)
	require.True(t, ok)
	k, err := Classify(g, super)
	require.NoError(t, err)
	assert.Equal(t, KindDataSomeValuesFrom, k)
	assert.True(t, k.IsClassExpression())

	rng, ok := rdf.Object(g, quad.IRI(dataE), owl2.RdfsRange)
	require.True(t, ok)
	k, err = Classify(g, rng)
	require.NoError(t, err)
	assert.Equal(t, KindDataUnionOf, k)
	assert.True(t, k.IsDataRange())

	k, err = Classify(g, quad.IRI(clsA))
	require.NoError(t, err)
	assert.Equal(t, KindNamed, k)

	_, err = Classify(g, g.NewBlankNode())
	assert.True(t, IsTranslationError(err))
}

func TestMetrics(t *testing.T) {
	metrics := metric.NewMetrics("translate_test")
	cfg := DefaultConfig()
	cfg.IgnoreReadErrors = true
	m := NewManager(cfg, WithMetrics(metrics))
	g := declaredGraph(t, m)
	require.NoError(t, m.Write(g, owl.SubClassOf{Sub: clsA, Super: clsB}))
	c := g.NewBlankNode()
	g.Add(rdf.T(c, owl2.OwlComplementOf, c))
	g.Add(rdf.T(quad.IRI(clsB), owl2.RdfsSubClassOf, c))

	_, err := m.ReadAll(g)
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.AxiomsWritten.WithLabelValues("SubClassOf", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.AxiomsRead.WithLabelValues("SubClassOf")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ReadErrors.WithLabelValues("SubClassOf", "skipped")))
}
