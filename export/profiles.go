package export

import (
	"github.com/c360studio/semowl/owl"
)

// Profile determines which axioms of a graph are exported.
type Profile string

const (
	// ProfileFull exports every triple of the graph, including triples that
	// encode no axiom.
	ProfileFull Profile = "full"

	// ProfileTBox exports declarations, class axioms and datatype definitions.
	ProfileTBox Profile = "tbox"

	// ProfileRBox exports declarations and property axioms.
	ProfileRBox Profile = "rbox"

	// ProfileABox exports declarations and individual assertions.
	ProfileABox Profile = "abox"

	// ProfileSchema exports everything except individual assertions.
	ProfileSchema Profile = "schema"
)

// Category groups axiom types by the part of an ontology they belong to.
type Category string

const (
	CategoryDeclaration Category = "declaration"
	CategoryClass       Category = "class"
	CategoryProperty    Category = "property"
	CategoryAssertion   Category = "assertion"
	CategoryAnnotation  Category = "annotation"
	CategoryRule        Category = "rule"
)

// ProfileConfig contains configuration for an export profile.
type ProfileConfig struct {
	// Name is the profile identifier.
	Name Profile

	// Description describes the profile.
	Description string

	// AllTriples exports the graph unfiltered.
	AllTriples bool

	// Categories lists the axiom categories that are exported.
	Categories []Category
}

// Profiles contains the configuration for all available export profiles.
var Profiles = map[Profile]ProfileConfig{
	ProfileFull: {
		Name:        ProfileFull,
		Description: "Every triple of the graph",
		AllTriples:  true,
	},
	ProfileTBox: {
		Name:        ProfileTBox,
		Description: "Declarations, class axioms and datatype definitions",
		Categories:  []Category{CategoryDeclaration, CategoryClass},
	},
	ProfileRBox: {
		Name:        ProfileRBox,
		Description: "Declarations and property axioms",
		Categories:  []Category{CategoryDeclaration, CategoryProperty},
	},
	ProfileABox: {
		Name:        ProfileABox,
		Description: "Declarations and individual assertions",
		Categories:  []Category{CategoryDeclaration, CategoryAssertion},
	},
	ProfileSchema: {
		Name:        ProfileSchema,
		Description: "All axioms except individual assertions",
		Categories:  []Category{CategoryDeclaration, CategoryClass, CategoryProperty, CategoryAnnotation, CategoryRule},
	},
}

// GetProfileConfig returns the configuration for a profile. Unknown
// profiles fall back to the full profile.
func GetProfileConfig(profile Profile) ProfileConfig {
	if config, ok := Profiles[profile]; ok {
		return config
	}
	return Profiles[ProfileFull]
}

// Includes reports whether axioms of type t are exported.
func (c ProfileConfig) Includes(t owl.AxiomType) bool {
	if c.AllTriples {
		return true
	}
	cat := CategoryOf(t)
	for _, c := range c.Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// CategoryOf returns the category of an axiom type.
func CategoryOf(t owl.AxiomType) Category {
	switch t {
	case owl.AxiomDeclaration:
		return CategoryDeclaration
	case owl.AxiomSubClassOf, owl.AxiomEquivalentClasses, owl.AxiomDisjointClasses,
		owl.AxiomDisjointUnion, owl.AxiomHasKey, owl.AxiomDatatypeDefinition:
		return CategoryClass
	case owl.AxiomSameIndividual, owl.AxiomDifferentIndividuals, owl.AxiomClassAssertion,
		owl.AxiomObjectPropertyAssertion, owl.AxiomDataPropertyAssertion,
		owl.AxiomNegativeObjectPropertyAssertion, owl.AxiomNegativeDataPropertyAssertion:
		return CategoryAssertion
	case owl.AxiomAnnotationAssertion, owl.AxiomSubAnnotationPropertyOf,
		owl.AxiomAnnotationPropertyDomain, owl.AxiomAnnotationPropertyRange:
		return CategoryAnnotation
	case owl.AxiomSWRLRule:
		return CategoryRule
	default:
		return CategoryProperty
	}
}
