package translate

import (
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semowl/owl"
	"github.com/c360studio/semowl/provenance"
	"github.com/c360studio/semowl/rdf"
	"github.com/c360studio/semowl/vocabulary/owl2"
)

const ns = "http://example.org/onto#"

var (
	clsA = owl.Class(ns + "A")
	clsB = owl.Class(ns + "B")
	clsC = owl.Class(ns + "C")

	propP = owl.ObjectProperty(ns + "p")
	propQ = owl.ObjectProperty(ns + "q")
	propR = owl.ObjectProperty(ns + "r")

	dataD = owl.DataProperty(ns + "d")
	dataE = owl.DataProperty(ns + "e")

	note  = owl.AnnotationProperty(ns + "note")
	label = owl.AnnotationProperty(owl2.RdfsLabel)

	dtT = owl.Datatype(ns + "T")

	indA = owl.NamedIndividual(ns + "a")
	indB = owl.NamedIndividual(ns + "b")
	indC = owl.NamedIndividual(ns + "c")

	xsdInteger = owl.Datatype(owl2.XsdInteger)
	xsdString  = owl.Datatype(owl2.XsdString)
)

// declarations types every fixture entity so that strict reads can tell
// properties and datatypes apart.
func declarations() []owl.Axiom {
	entities := []owl.Entity{clsA, clsB, clsC, propP, propQ, propR, dataD, dataE, note, dtT}
	out := make([]owl.Axiom, 0, len(entities))
	for _, e := range entities {
		out = append(out, owl.Declaration{Entity: e})
	}
	return out
}

func declaredGraph(t *testing.T, m *Manager) *rdf.MemGraph {
	t.Helper()
	g := rdf.NewMemGraph()
	require.NoError(t, m.Write(g, declarations()...))
	return g
}

// readBack reads g and returns the canonical forms of every axiom that is
// not a declaration.
func readBack(t *testing.T, m *Manager, g rdf.Graph) []string {
	t.Helper()
	ws, err := m.ReadAll(g)
	require.NoError(t, err)
	var out []string
	for _, w := range ws {
		if w.Object().AxiomType() != owl.AxiomDeclaration {
			out = append(out, w.String())
		}
	}
	return out
}

func find(ws []provenance.Wrapped[owl.Axiom], ax owl.Axiom) (provenance.Wrapped[owl.Axiom], bool) {
	for _, w := range ws {
		if owl.Equal(w.Object(), ax) {
			return w, true
		}
	}
	return provenance.Wrapped[owl.Axiom]{}, false
}

func annotated(v string) owl.Annotations {
	return owl.Annotations{owl.NewAnnotation(label, owl.StringLiteral(v))}
}

func TestRoundTrip(t *testing.T) {
	ce := func(c ...owl.ClassExpression) []owl.ClassExpression { return c }
	ope := func(p ...owl.ObjectPropertyExpression) []owl.ObjectPropertyExpression { return p }
	inds := func(i ...owl.Individual) []owl.Individual { return i }

	tests := []struct {
		name  string
		axiom owl.Axiom
	}{
		{"subclass", owl.SubClassOf{Sub: clsA, Super: clsB}},
		{"subclass annotated", owl.SubClassOf{Sub: clsA, Super: clsB, Annotations: annotated("sub")}},
		{"some values from", owl.SubClassOf{Sub: clsA, Super: owl.ObjectSomeValuesFrom{Property: propP, Filler: clsB}}},
		{"all values from inverse", owl.SubClassOf{Sub: clsA, Super: owl.ObjectAllValuesFrom{Property: owl.ObjectInverseOf{Property: propQ}, Filler: clsC}}},
		{"has value", owl.SubClassOf{Sub: clsA, Super: owl.ObjectHasValue{Property: propP, Value: indA}}},
		{"has self", owl.SubClassOf{Sub: clsA, Super: owl.ObjectHasSelf{Property: propP}}},
		{"qualified min cardinality", owl.SubClassOf{Sub: clsA, Super: owl.ObjectMinCardinality{N: 2, Property: propP, Filler: clsB}}},
		{"unqualified max cardinality", owl.SubClassOf{Sub: clsA, Super: owl.ObjectMaxCardinality{N: 1, Property: propP}}},
		{"exact cardinality", owl.SubClassOf{Sub: clsA, Super: owl.ObjectExactCardinality{N: 3, Property: propQ, Filler: clsC}}},
		{"complement", owl.SubClassOf{Sub: owl.ObjectComplementOf{Operand: clsA}, Super: clsB}},
		{"one of", owl.SubClassOf{Sub: clsA, Super: owl.ObjectOneOf{Individuals: inds(indA, indB)}}},
		{"union and intersection", owl.SubClassOf{
			Sub:   owl.ObjectIntersectionOf{Operands: ce(clsA, clsB)},
			Super: owl.ObjectUnionOf{Operands: ce(clsC, owl.ObjectComplementOf{Operand: clsA})},
		}},
		{"data some values from", owl.SubClassOf{Sub: clsA, Super: owl.DataSomeValuesFrom{Properties: []owl.DataProperty{dataD}, Filler: xsdInteger}}},
		{"n-ary data all values from", owl.SubClassOf{Sub: clsA, Super: owl.DataAllValuesFrom{Properties: []owl.DataProperty{dataD, dataE}, Filler: xsdString}}},
		{"data has value", owl.SubClassOf{Sub: clsA, Super: owl.DataHasValue{Property: dataD, Value: owl.IntegerLiteral(7)}}},
		{"data exact cardinality", owl.SubClassOf{Sub: clsA, Super: owl.DataExactCardinality{N: 1, Property: dataD}}},
		{"qualified data min cardinality", owl.SubClassOf{Sub: clsA, Super: owl.DataMinCardinality{N: 1, Property: dataE, Filler: xsdString}}},
		{"equivalent classes", owl.EquivalentClasses{Classes: ce(clsA, clsB)}},
		{"three equivalent classes", owl.EquivalentClasses{Classes: ce(clsA, clsB, clsC)}},
		{"disjoint classes", owl.DisjointClasses{Classes: ce(clsA, clsB)}},
		{"all disjoint classes", owl.DisjointClasses{Classes: ce(clsA, clsB, clsC), Annotations: annotated("disjoint")}},
		{"disjoint union", owl.DisjointUnion{Class: clsA, Classes: ce(clsB, clsC)}},

		{"sub object property", owl.SubObjectPropertyOf{Sub: propP, Super: propQ}},
		{"sub object property inverse", owl.SubObjectPropertyOf{Sub: owl.ObjectInverseOf{Property: propP}, Super: propQ}},
		{"property chain", owl.SubPropertyChainOf{Chain: ope(propP, propQ), Super: propR}},
		{"equivalent object properties", owl.EquivalentObjectProperties{Properties: ope(propP, propQ)}},
		{"disjoint object properties", owl.DisjointObjectProperties{Properties: ope(propP, propQ)}},
		{"all disjoint object properties", owl.DisjointObjectProperties{Properties: ope(propP, propQ, propR)}},
		{"inverse object properties", owl.InverseObjectProperties{First: propP, Second: propQ}},
		{"object property domain", owl.ObjectPropertyDomain{Property: propP, Domain: owl.ObjectIntersectionOf{Operands: ce(clsA, clsB)}}},
		{"object property range", owl.ObjectPropertyRange{Property: propP, Range: clsC}},
		{"functional", owl.FunctionalObjectProperty{Property: propP}},
		{"inverse functional", owl.InverseFunctionalObjectProperty{Property: propP}},
		{"reflexive", owl.ReflexiveObjectProperty{Property: propP}},
		{"irreflexive", owl.IrreflexiveObjectProperty{Property: propP}},
		{"symmetric inverse", owl.SymmetricObjectProperty{Property: owl.ObjectInverseOf{Property: propP}}},
		{"asymmetric", owl.AsymmetricObjectProperty{Property: propP}},
		{"transitive annotated", owl.TransitiveObjectProperty{Property: propQ, Annotations: annotated("t")}},

		{"sub data property", owl.SubDataPropertyOf{Sub: dataD, Super: dataE}},
		{"equivalent data properties", owl.EquivalentDataProperties{Properties: []owl.DataProperty{dataD, dataE}}},
		{"disjoint data properties", owl.DisjointDataProperties{Properties: []owl.DataProperty{dataD, dataE}}},
		{"data property domain", owl.DataPropertyDomain{Property: dataD, Domain: clsA}},
		{"data property range", owl.DataPropertyRange{Property: dataD, Range: xsdInteger}},
		{"data property range restriction", owl.DataPropertyRange{Property: dataD, Range: owl.DatatypeRestriction{
			Datatype: xsdInteger,
			Facets:   []owl.FacetRestriction{{Facet: owl.IRI(owl2.XsdMinInclusive), Value: owl.IntegerLiteral(0)}},
		}}},
		{"data property range one of", owl.DataPropertyRange{Property: dataE, Range: owl.DataOneOf{Literals: []owl.Literal{owl.StringLiteral("x"), owl.StringLiteral("y")}}}},
		{"data property range complement", owl.DataPropertyRange{Property: dataE, Range: owl.DataComplementOf{Operand: xsdInteger}}},
		{"data property range intersection", owl.DataPropertyRange{Property: dataE, Range: owl.DataIntersectionOf{Operands: []owl.DataRange{xsdInteger, dtT}}}},
		{"functional data property", owl.FunctionalDataProperty{Property: dataD}},
		{"datatype definition", owl.DatatypeDefinition{Datatype: dtT, Range: owl.DataUnionOf{Operands: []owl.DataRange{xsdInteger, xsdString}}}},
		{"has key", owl.HasKey{Class: clsA, ObjectProperties: ope(propP), DataProperties: []owl.DataProperty{dataD}}},

		{"same individual", owl.SameIndividual{Individuals: inds(indA, indB)}},
		{"different individuals", owl.DifferentIndividuals{Individuals: inds(indA, indB)}},
		{"all different", owl.DifferentIndividuals{Individuals: inds(indA, indB, indC)}},
		{"class assertion", owl.ClassAssertion{Class: clsA, Individual: indA}},
		{"class assertion anonymous class", owl.ClassAssertion{Class: owl.ObjectSomeValuesFrom{Property: propP, Filler: clsB}, Individual: indA}},
		{"object property assertion", owl.ObjectPropertyAssertion{Property: propP, Subject: indA, Object: indB}},
		{"data property assertion", owl.DataPropertyAssertion{Property: dataD, Subject: indA, Value: owl.IntegerLiteral(42)}},
		{"negative object property assertion", owl.NegativeObjectPropertyAssertion{Property: propP, Subject: indA, Object: indB}},
		{"negative data property assertion", owl.NegativeDataPropertyAssertion{Property: dataD, Subject: indA, Value: owl.StringLiteral("no"), Annotations: annotated("neg")}},

		{"annotation assertion", owl.AnnotationAssertion{Property: note, Subject: owl.IRI(clsA), Value: owl.LangLiteral("hello", "en")}},
		{"annotation assertion iri value", owl.AnnotationAssertion{Property: label, Subject: owl.IRI(indA), Value: owl.IRI(ns + "elsewhere")}},
		{"sub annotation property", owl.SubAnnotationPropertyOf{Sub: note, Super: owl.AnnotationProperty(owl2.RdfsComment)}},
		{"annotation property domain", owl.AnnotationPropertyDomain{Property: note, Domain: owl.IRI(clsA)}},
		{"annotation property range", owl.AnnotationPropertyRange{Property: note, Range: owl.IRI(owl2.XsdString)}},

		{"swrl rule", owl.SWRLRule{
			Body: []owl.Atom{
				owl.ClassAtom{Class: clsA, Arg: owl.Variable(ns + "x")},
				owl.ObjectPropertyAtom{Property: propP, Arg1: owl.Variable(ns + "x"), Arg2: owl.Variable(ns + "y")},
				owl.DataPropertyAtom{Property: dataD, Arg1: owl.Variable(ns + "y"), Arg2: owl.Variable(ns + "v")},
				owl.BuiltInAtom{Builtin: owl.IRI("http://www.w3.org/2003/11/swrlb#greaterThan"), Args: []owl.DArg{owl.Variable(ns + "v"), owl.IntegerLiteral(18)}},
			},
			Head: []owl.Atom{
				owl.ClassAtom{Class: clsB, Arg: owl.Variable(ns + "y")},
				owl.DifferentIndividualsAtom{Arg1: owl.Variable(ns + "x"), Arg2: indA},
			},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(DefaultConfig())
			g := declaredGraph(t, m)
			require.NoError(t, m.Write(g, tt.axiom))

			assert.Equal(t, []string{tt.axiom.String()}, readBack(t, m, g))
		})
	}
}

func TestReadDeclarations(t *testing.T) {
	m := NewManager(DefaultConfig())
	g := declaredGraph(t, m)

	ws, err := m.ReadAll(g)
	require.NoError(t, err)
	require.Len(t, ws, len(declarations()))
	for _, ax := range declarations() {
		w, ok := find(ws, ax)
		require.True(t, ok, "missing %s", ax)
		assert.Equal(t, 1, w.Len())
	}
}

func TestExplicitReadWithoutDeclarations(t *testing.T) {
	m := NewManager(DefaultConfig())
	g := rdf.NewMemGraph()
	ax := owl.SubClassOf{Sub: clsA, Super: owl.ObjectSomeValuesFrom{Property: propP, Filler: clsB}}
	require.NoError(t, m.Write(g, ax))

	stmts := rdf.All(g)
	var main rdf.Triple
	for _, s := range stmts {
		if rdf.Is(s.Predicate, owl2.RdfsSubClassOf) {
			main = s
		}
	}
	w, err := m.Read(g, owl.AxiomSubClassOf, main)
	require.NoError(t, err)
	assert.True(t, owl.Equal(ax, w.Object()))
	assert.Equal(t, g.Size(), w.Len())
}

func TestReadRejectsForeignStatement(t *testing.T) {
	m := NewManager(DefaultConfig())
	g := declaredGraph(t, m)
	stmt := rdf.T(quad.IRI(clsA), owl2.RdfsSubClassOf, quad.IRI(clsB))

	_, err := m.Read(g, owl.AxiomSubClassOf, stmt)
	require.Error(t, err)
	assert.True(t, IsTranslationError(err))
}
