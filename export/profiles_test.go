package export_test

import (
	"testing"

	"github.com/c360studio/semowl/export"
	"github.com/c360studio/semowl/owl"
)

func TestGetProfileConfig(t *testing.T) {
	tests := []struct {
		profile   export.Profile
		wantAll   bool
		wantClass bool
		wantProp  bool
		wantABox  bool
	}{
		{export.ProfileFull, true, true, true, true},
		{export.ProfileTBox, false, true, false, false},
		{export.ProfileRBox, false, false, true, false},
		{export.ProfileABox, false, false, false, true},
		{export.ProfileSchema, false, true, true, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.profile), func(t *testing.T) {
			config := export.GetProfileConfig(tc.profile)
			if config.AllTriples != tc.wantAll {
				t.Errorf("AllTriples = %v, want %v", config.AllTriples, tc.wantAll)
			}
			if got := config.Includes(owl.AxiomSubClassOf); got != tc.wantClass {
				t.Errorf("Includes(SubClassOf) = %v, want %v", got, tc.wantClass)
			}
			if got := config.Includes(owl.AxiomTransitiveObjectProperty); got != tc.wantProp {
				t.Errorf("Includes(TransitiveObjectProperty) = %v, want %v", got, tc.wantProp)
			}
			if got := config.Includes(owl.AxiomClassAssertion); got != tc.wantABox {
				t.Errorf("Includes(ClassAssertion) = %v, want %v", got, tc.wantABox)
			}
			if !config.Includes(owl.AxiomDeclaration) {
				t.Error("every profile should include declarations")
			}
		})
	}
}

func TestUnknownProfileFallsBackToFull(t *testing.T) {
	config := export.GetProfileConfig("bogus")
	if config.Name != export.ProfileFull {
		t.Errorf("expected full profile, got %s", config.Name)
	}
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		axiom owl.AxiomType
		want  export.Category
	}{
		{owl.AxiomDeclaration, export.CategoryDeclaration},
		{owl.AxiomDisjointUnion, export.CategoryClass},
		{owl.AxiomHasKey, export.CategoryClass},
		{owl.AxiomDatatypeDefinition, export.CategoryClass},
		{owl.AxiomSubPropertyChainOf, export.CategoryProperty},
		{owl.AxiomFunctionalDataProperty, export.CategoryProperty},
		{owl.AxiomNegativeDataPropertyAssertion, export.CategoryAssertion},
		{owl.AxiomSameIndividual, export.CategoryAssertion},
		{owl.AxiomAnnotationAssertion, export.CategoryAnnotation},
		{owl.AxiomAnnotationPropertyRange, export.CategoryAnnotation},
		{owl.AxiomSWRLRule, export.CategoryRule},
	}

	for _, tc := range tests {
		t.Run(tc.axiom.String(), func(t *testing.T) {
			if got := export.CategoryOf(tc.axiom); got != tc.want {
				t.Errorf("CategoryOf(%s) = %s, want %s", tc.axiom, got, tc.want)
			}
		})
	}
}

func TestEveryAxiomTypeHasACategory(t *testing.T) {
	schema := export.GetProfileConfig(export.ProfileSchema)
	abox := export.GetProfileConfig(export.ProfileABox)
	for _, at := range owl.AxiomTypes() {
		if !schema.Includes(at) && !abox.Includes(at) {
			t.Errorf("%s is in neither the schema nor the abox profile", at)
		}
	}
}
