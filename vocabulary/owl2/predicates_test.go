package owl2

import (
	"testing"

	"github.com/c360studio/semstreams/vocabulary"
)

func TestPredicatesRegistered(t *testing.T) {
	for _, pred := range MappingPredicates() {
		t.Run(pred, func(t *testing.T) {
			meta := vocabulary.GetPredicateMetadata(pred)
			if meta == nil || meta.Description == "" {
				t.Fatalf("predicate %s not registered or missing description", pred)
			}
			if meta.StandardIRI == "" {
				t.Errorf("predicate %s has no standard IRI", pred)
			}
		})
	}
}

func TestPredicateIRI(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{AxiomAnnotatedSource, "http://www.w3.org/2002/07/owl#annotatedSource"},
		{SchemaSubClassOf, "http://www.w3.org/2000/01/rdf-schema#subClassOf"},
		{ListFirst, "http://www.w3.org/1999/02/22-rdf-syntax-ns#first"},
		{RuleBody, "http://www.w3.org/2003/11/swrl#body"},
		{IndividualSameAs, "http://www.w3.org/2002/07/owl#sameAs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PredicateIRI(tt.name)
			if !ok {
				t.Fatalf("PredicateIRI(%q) not found", tt.name)
			}
			if got != tt.want {
				t.Errorf("PredicateIRI(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}

	if _, ok := PredicateIRI("owl.unknown.predicate"); ok {
		t.Error("expected unknown predicate to be unresolved")
	}
}

func TestPredicatesUseThreeLevelNotation(t *testing.T) {
	for _, pred := range MappingPredicates() {
		if !vocabulary.IsValidPredicate(pred) {
			t.Errorf("predicate %s is not domain.category.property", pred)
		}
	}
}

func TestReservedVocabulary(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) bool
		iri  string
		want bool
	}{
		{"owl class is reserved", IsReserved, OwlClass, true},
		{"swrl term is reserved", IsReserved, SwrlImp, true},
		{"user iri is not reserved", IsReserved, "http://example.com/A", false},
		{"thing is a valid assertion type", IsReservedType, OwlThing, false},
		{"restriction is not an assertion type", IsReservedType, OwlRestriction, true},
		{"label is builtin annotation", IsBuiltinAnnotationProperty, RdfsLabel, true},
		{"deprecated is builtin annotation", IsBuiltinAnnotationProperty, OwlDeprecated, true},
		{"subClassOf is not annotation", IsBuiltinAnnotationProperty, RdfsSubClassOf, false},
		{"xsd string is builtin datatype", IsBuiltinDatatype, XsdString, true},
		{"rdfs literal is builtin datatype", IsBuiltinDatatype, RdfsLiteral, true},
		{"facet is not a datatype", IsBuiltinDatatype, XsdMinInclusive, false},
		{"minInclusive is a facet", IsFacet, XsdMinInclusive, true},
		{"integer is not a facet", IsFacet, XsdInteger, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.iri); got != tt.want {
				t.Errorf("got %v, want %v for %s", got, tt.want, tt.iri)
			}
		})
	}
}
