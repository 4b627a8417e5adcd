package owl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ex = "http://example.org/"

func TestAxiomTypes(t *testing.T) {
	types := AxiomTypes()
	require.Len(t, types, int(axiomTypeCount))
	seen := make(map[string]bool)
	for _, at := range types {
		name := at.String()
		assert.NotEqual(t, "Unknown", name)
		assert.False(t, seen[name], "duplicate axiom name %s", name)
		seen[name] = true

		parsed, ok := ParseAxiomType(name)
		require.True(t, ok)
		assert.Equal(t, at, parsed)
	}
	assert.Equal(t, "Unknown", AxiomType(-1).String())
	_, ok := ParseAxiomType("Bogus")
	assert.False(t, ok)
}

func TestCanonicalString(t *testing.T) {
	a, b, c := Class(ex+"A"), Class(ex+"B"), Class(ex+"C")
	p := ObjectProperty(ex + "p")
	label := AnnotationProperty("http://www.w3.org/2000/01/rdf-schema#label")

	tests := []struct {
		name  string
		axiom Axiom
		want  string
	}{
		{
			name:  "subclass",
			axiom: SubClassOf{Sub: a, Super: b},
			want:  "SubClassOf(<http://example.org/A> <http://example.org/B>)",
		},
		{
			name:  "declaration",
			axiom: Declaration{Entity: a},
			want:  "Declaration(Class(<http://example.org/A>))",
		},
		{
			name: "annotated subclass",
			axiom: SubClassOf{Sub: a, Super: b, Annotations: Annotations{
				NewAnnotation(label, StringLiteral("x")),
			}},
			want: `SubClassOf(Annotation(<http://www.w3.org/2000/01/rdf-schema#label> "x"^^<http://www.w3.org/2001/XMLSchema#string>) <http://example.org/A> <http://example.org/B>)`,
		},
		{
			name:  "chain keeps order",
			axiom: SubPropertyChainOf{Chain: []ObjectPropertyExpression{ObjectProperty(ex + "q"), p}, Super: p},
			want:  "SubObjectPropertyOf(ObjectPropertyChain(<http://example.org/q> <http://example.org/p>) <http://example.org/p>)",
		},
		{
			name: "has key",
			axiom: HasKey{Class: a, ObjectProperties: []ObjectPropertyExpression{p},
				DataProperties: []DataProperty{DataProperty(ex + "d")}},
			want: "HasKey(<http://example.org/A> (<http://example.org/p>) (<http://example.org/d>))",
		},
		{
			name:  "disjoint classes sorted",
			axiom: DisjointClasses{Classes: []ClassExpression{c, a, b}},
			want:  "DisjointClasses(<http://example.org/A> <http://example.org/B> <http://example.org/C>)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.axiom.String())
		})
	}
}

func TestEquality(t *testing.T) {
	a, b, c := Class(ex+"A"), Class(ex+"B"), Class(ex+"C")
	label := AnnotationProperty("http://www.w3.org/2000/01/rdf-schema#label")
	comment := AnnotationProperty("http://www.w3.org/2000/01/rdf-schema#comment")

	t.Run("operand order is irrelevant for sets", func(t *testing.T) {
		x := EquivalentClasses{Classes: []ClassExpression{a, b, c}}
		y := EquivalentClasses{Classes: []ClassExpression{c, a, b}}
		assert.True(t, Equal(x, y))
	})

	t.Run("annotation order is irrelevant", func(t *testing.T) {
		x := SubClassOf{Sub: a, Super: b, Annotations: Annotations{
			NewAnnotation(label, StringLiteral("l")),
			NewAnnotation(comment, StringLiteral("c")),
		}}
		y := SubClassOf{Sub: a, Super: b, Annotations: Annotations{
			NewAnnotation(comment, StringLiteral("c")),
			NewAnnotation(label, StringLiteral("l")),
		}}
		assert.True(t, Equal(x, y))
	})

	t.Run("annotations distinguish axioms", func(t *testing.T) {
		x := SubClassOf{Sub: a, Super: b}
		y := SubClassOf{Sub: a, Super: b, Annotations: Annotations{NewAnnotation(label, StringLiteral("l"))}}
		assert.False(t, Equal(x, y))
	})

	t.Run("chain order matters", func(t *testing.T) {
		p, q := ObjectProperty(ex+"p"), ObjectProperty(ex+"q")
		x := SubPropertyChainOf{Chain: []ObjectPropertyExpression{p, q}, Super: p}
		y := SubPropertyChainOf{Chain: []ObjectPropertyExpression{q, p}, Super: p}
		assert.False(t, Equal(x, y))
	})

	t.Run("nil", func(t *testing.T) {
		assert.True(t, Equal(nil, nil))
		assert.False(t, Equal(a, nil))
	})
}

func TestCardinalityDefaults(t *testing.T) {
	p := ObjectProperty(ex + "p")
	unqualified := ObjectMinCardinality{N: 2, Property: p}
	qualified := ObjectMinCardinality{N: 2, Property: p, Filler: Thing}
	assert.True(t, Equal(unqualified, qualified))
	assert.Equal(t, Thing, unqualified.ClassFiller())
	assert.Equal(t, 2, unqualified.Cardinality())

	d := DataProperty(ex + "d")
	assert.True(t, Equal(DataMaxCardinality{N: 1, Property: d}, DataMaxCardinality{N: 1, Property: d, Filler: TopLiteral}))
}

func TestLiteralNormalization(t *testing.T) {
	tests := []struct {
		name string
		a, b Literal
		same bool
	}{
		{"plain equals xsd:string", Literal{Lexical: "x"}, StringLiteral("x"), true},
		{"plain literal datatype", TypedLiteral("x", "http://www.w3.org/1999/02/22-rdf-syntax-ns#PlainLiteral"), StringLiteral("x"), true},
		{"lang tag case", LangLiteral("chat", "FR"), Literal{Lexical: "chat", Lang: "fr"}, true},
		{"different datatype", IntegerLiteral(1), StringLiteral("1"), false},
		{"different lang", LangLiteral("chat", "fr"), LangLiteral("chat", "en"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.same, Equal(tt.a, tt.b))
		})
	}

	assert.Equal(t, "en-GB", LangLiteral("colour", "en-GB").Lang)
	assert.Equal(t, "en-GB", LangLiteral("colour", "en-GB").Normalize().Lang)

	n, err := NonNegativeIntegerLiteral(3).Int()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestIsAnonymous(t *testing.T) {
	assert.False(t, IsAnonymous(Class(ex+"A")))
	assert.False(t, IsAnonymous(NamedIndividual(ex+"i")))
	assert.True(t, IsAnonymous(AnonymousIndividual("b0")))
	assert.True(t, IsAnonymous(ObjectInverseOf{Property: ObjectProperty(ex + "p")}))
	assert.True(t, IsAnonymous(ObjectUnionOf{}))
}

func TestEntityTypes(t *testing.T) {
	for _, et := range []EntityType{EntityClass, EntityDatatype, EntityObjectProperty,
		EntityDataProperty, EntityAnnotationProperty, EntityNamedIndividual} {
		got, ok := EntityTypeForDeclaration(et.DeclarationType())
		require.True(t, ok, et.String())
		assert.Equal(t, et, got)

		e := NewEntity(et, IRI(ex+"e"))
		assert.Equal(t, et, e.EntityType())
		assert.Equal(t, IRI(ex+"e"), e.IRI())
	}
}

func TestSWRLRuleString(t *testing.T) {
	x := Variable(ex + "x")
	rule := SWRLRule{
		Body: []Atom{ClassAtom{Class: Class(ex + "A"), Arg: x}},
		Head: []Atom{ClassAtom{Class: Class(ex + "B"), Arg: x}},
	}
	assert.Equal(t,
		"DLSafeRule(Body(ClassAtom(<http://example.org/A> Variable(<http://example.org/x>))) Head(ClassAtom(<http://example.org/B> Variable(<http://example.org/x>))))",
		rule.String())
}
