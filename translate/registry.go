package translate

import (
	"fmt"

	"github.com/c360studio/semowl/owl"
)

// registry maps every axiom type to its translator. It is filled once at
// package initialization.
var registry = buildRegistry()

func buildRegistry() map[owl.AxiomType]Translator {
	table := []Translator{
		declaration,
		subClassOf,
		equivalentClasses,
		disjointClasses,
		disjointUnion,
		subObjectPropertyOf,
		subPropertyChainOf,
		equivalentObjectProperties,
		disjointObjectProperties,
		inverseObjectProperties,
		objectPropertyDomain,
		objectPropertyRange,
		subDataPropertyOf,
		equivalentDataProperties,
		disjointDataProperties,
		dataPropertyDomain,
		dataPropertyRange,
		functionalDataProperty,
		datatypeDefinition,
		hasKey,
		sameIndividual,
		differentIndividuals,
		classAssertion,
		objectPropertyAssertion,
		dataPropertyAssertion,
		negativeObjectPropertyAssertion,
		negativeDataPropertyAssertion,
		annotationAssertions,
		subAnnotationPropertyOf,
		annotationPropertyDomain,
		annotationPropertyRange,
		swrlRule{},
	}
	for _, c := range characteristics {
		table = append(table, c)
	}

	m := make(map[owl.AxiomType]Translator, len(table))
	for _, t := range table {
		if _, dup := m[t.AxiomType()]; dup {
			panic(fmt.Sprintf("translate: duplicate translator for %s", t.AxiomType()))
		}
		m[t.AxiomType()] = t
	}
	return m
}

// Lookup returns the translator registered for t.
func Lookup(t owl.AxiomType) (Translator, error) {
	tr, ok := registry[t]
	if !ok {
		return nil, classify(fmt.Errorf("%w for %s", ErrConfiguration, t), "Lookup", "resolve translator")
	}
	return tr, nil
}

// Translators returns every registered translator in axiom type order.
func Translators() []Translator {
	out := make([]Translator, 0, len(registry))
	for _, t := range owl.AxiomTypes() {
		if tr, ok := registry[t]; ok {
			out = append(out, tr)
		}
	}
	return out
}
