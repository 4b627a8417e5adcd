package owl

// AxiomType identifies an axiom kind.
type AxiomType int

const (
	AxiomDeclaration AxiomType = iota
	AxiomSubClassOf
	AxiomEquivalentClasses
	AxiomDisjointClasses
	AxiomDisjointUnion
	AxiomSubObjectPropertyOf
	AxiomSubPropertyChainOf
	AxiomEquivalentObjectProperties
	AxiomDisjointObjectProperties
	AxiomInverseObjectProperties
	AxiomObjectPropertyDomain
	AxiomObjectPropertyRange
	AxiomFunctionalObjectProperty
	AxiomInverseFunctionalObjectProperty
	AxiomReflexiveObjectProperty
	AxiomIrreflexiveObjectProperty
	AxiomSymmetricObjectProperty
	AxiomAsymmetricObjectProperty
	AxiomTransitiveObjectProperty
	AxiomSubDataPropertyOf
	AxiomEquivalentDataProperties
	AxiomDisjointDataProperties
	AxiomDataPropertyDomain
	AxiomDataPropertyRange
	AxiomFunctionalDataProperty
	AxiomDatatypeDefinition
	AxiomHasKey
	AxiomSameIndividual
	AxiomDifferentIndividuals
	AxiomClassAssertion
	AxiomObjectPropertyAssertion
	AxiomDataPropertyAssertion
	AxiomNegativeObjectPropertyAssertion
	AxiomNegativeDataPropertyAssertion
	AxiomAnnotationAssertion
	AxiomSubAnnotationPropertyOf
	AxiomAnnotationPropertyDomain
	AxiomAnnotationPropertyRange
	AxiomSWRLRule

	axiomTypeCount
)

var axiomTypeNames = [...]string{
	AxiomDeclaration:                     "Declaration",
	AxiomSubClassOf:                      "SubClassOf",
	AxiomEquivalentClasses:               "EquivalentClasses",
	AxiomDisjointClasses:                 "DisjointClasses",
	AxiomDisjointUnion:                   "DisjointUnion",
	AxiomSubObjectPropertyOf:             "SubObjectPropertyOf",
	AxiomSubPropertyChainOf:              "SubPropertyChainOf",
	AxiomEquivalentObjectProperties:      "EquivalentObjectProperties",
	AxiomDisjointObjectProperties:        "DisjointObjectProperties",
	AxiomInverseObjectProperties:         "InverseObjectProperties",
	AxiomObjectPropertyDomain:            "ObjectPropertyDomain",
	AxiomObjectPropertyRange:             "ObjectPropertyRange",
	AxiomFunctionalObjectProperty:        "FunctionalObjectProperty",
	AxiomInverseFunctionalObjectProperty: "InverseFunctionalObjectProperty",
	AxiomReflexiveObjectProperty:         "ReflexiveObjectProperty",
	AxiomIrreflexiveObjectProperty:       "IrreflexiveObjectProperty",
	AxiomSymmetricObjectProperty:         "SymmetricObjectProperty",
	AxiomAsymmetricObjectProperty:        "AsymmetricObjectProperty",
	AxiomTransitiveObjectProperty:        "TransitiveObjectProperty",
	AxiomSubDataPropertyOf:               "SubDataPropertyOf",
	AxiomEquivalentDataProperties:        "EquivalentDataProperties",
	AxiomDisjointDataProperties:          "DisjointDataProperties",
	AxiomDataPropertyDomain:              "DataPropertyDomain",
	AxiomDataPropertyRange:               "DataPropertyRange",
	AxiomFunctionalDataProperty:          "FunctionalDataProperty",
	AxiomDatatypeDefinition:              "DatatypeDefinition",
	AxiomHasKey:                          "HasKey",
	AxiomSameIndividual:                  "SameIndividual",
	AxiomDifferentIndividuals:            "DifferentIndividuals",
	AxiomClassAssertion:                  "ClassAssertion",
	AxiomObjectPropertyAssertion:         "ObjectPropertyAssertion",
	AxiomDataPropertyAssertion:           "DataPropertyAssertion",
	AxiomNegativeObjectPropertyAssertion: "NegativeObjectPropertyAssertion",
	AxiomNegativeDataPropertyAssertion:   "NegativeDataPropertyAssertion",
	AxiomAnnotationAssertion:             "AnnotationAssertion",
	AxiomSubAnnotationPropertyOf:         "SubAnnotationPropertyOf",
	AxiomAnnotationPropertyDomain:        "AnnotationPropertyDomain",
	AxiomAnnotationPropertyRange:         "AnnotationPropertyRange",
	AxiomSWRLRule:                        "DLSafeRule",
}

func (t AxiomType) String() string {
	if t < 0 || t >= axiomTypeCount {
		return "Unknown"
	}
	return axiomTypeNames[t]
}

// AxiomTypes returns every axiom type in declaration order.
func AxiomTypes() []AxiomType {
	out := make([]AxiomType, 0, axiomTypeCount)
	for t := AxiomType(0); t < axiomTypeCount; t++ {
		out = append(out, t)
	}
	return out
}

// ParseAxiomType resolves a functional-syntax axiom name.
func ParseAxiomType(name string) (AxiomType, bool) {
	for t := AxiomType(0); t < axiomTypeCount; t++ {
		if axiomTypeNames[t] == name {
			return t, true
		}
	}
	if name == "SWRLRule" {
		return AxiomSWRLRule, true
	}
	return 0, false
}

// Axiom is implemented by every axiom struct.
type Axiom interface {
	AxiomType() AxiomType
	AxiomAnnotations() []Annotation
	String() string
}

// Declaration declares an entity.
type Declaration struct {
	Entity Entity
	Annotations
}

func (Declaration) AxiomType() AxiomType { return AxiomDeclaration }
func (a Declaration) String() string {
	return render("Declaration", a.Annotations, render(a.Entity.EntityType().String(), nil, a.Entity.String()))
}

// SubClassOf states that Sub is a subclass of Super.
type SubClassOf struct {
	Sub   ClassExpression
	Super ClassExpression
	Annotations
}

func (SubClassOf) AxiomType() AxiomType { return AxiomSubClassOf }
func (a SubClassOf) String() string {
	return render("SubClassOf", a.Annotations, stringOf(a.Sub), stringOf(a.Super))
}

// EquivalentClasses states that all operands are equivalent.
type EquivalentClasses struct {
	Classes []ClassExpression
	Annotations
}

func (EquivalentClasses) AxiomType() AxiomType { return AxiomEquivalentClasses }
func (a EquivalentClasses) String() string {
	return render("EquivalentClasses", a.Annotations, set(a.Classes)...)
}

// DisjointClasses states that the operands are pairwise disjoint.
type DisjointClasses struct {
	Classes []ClassExpression
	Annotations
}

func (DisjointClasses) AxiomType() AxiomType { return AxiomDisjointClasses }
func (a DisjointClasses) String() string {
	return render("DisjointClasses", a.Annotations, set(a.Classes)...)
}

// DisjointUnion states that Class is the disjoint union of Classes.
type DisjointUnion struct {
	Class   Class
	Classes []ClassExpression
	Annotations
}

func (DisjointUnion) AxiomType() AxiomType { return AxiomDisjointUnion }
func (a DisjointUnion) String() string {
	return render("DisjointUnion", a.Annotations, append([]string{a.Class.String()}, set(a.Classes)...)...)
}

// SubObjectPropertyOf states a sub-property relation between object properties.
type SubObjectPropertyOf struct {
	Sub   ObjectPropertyExpression
	Super ObjectPropertyExpression
	Annotations
}

func (SubObjectPropertyOf) AxiomType() AxiomType { return AxiomSubObjectPropertyOf }
func (a SubObjectPropertyOf) String() string {
	return render("SubObjectPropertyOf", a.Annotations, stringOf(a.Sub), stringOf(a.Super))
}

// SubPropertyChainOf states that the property chain implies Super.
type SubPropertyChainOf struct {
	Chain []ObjectPropertyExpression
	Super ObjectPropertyExpression
	Annotations
}

func (SubPropertyChainOf) AxiomType() AxiomType { return AxiomSubPropertyChainOf }
func (a SubPropertyChainOf) String() string {
	return render("SubObjectPropertyOf", a.Annotations, render("ObjectPropertyChain", nil, list(a.Chain)...), stringOf(a.Super))
}

// EquivalentObjectProperties states that the object properties are equivalent.
type EquivalentObjectProperties struct {
	Properties []ObjectPropertyExpression
	Annotations
}

func (EquivalentObjectProperties) AxiomType() AxiomType { return AxiomEquivalentObjectProperties }
func (a EquivalentObjectProperties) String() string {
	return render("EquivalentObjectProperties", a.Annotations, set(a.Properties)...)
}

// DisjointObjectProperties states that the object properties are pairwise disjoint.
type DisjointObjectProperties struct {
	Properties []ObjectPropertyExpression
	Annotations
}

func (DisjointObjectProperties) AxiomType() AxiomType { return AxiomDisjointObjectProperties }
func (a DisjointObjectProperties) String() string {
	return render("DisjointObjectProperties", a.Annotations, set(a.Properties)...)
}

// InverseObjectProperties states that First and Second are inverses. The
// pair is unordered.
type InverseObjectProperties struct {
	First  ObjectPropertyExpression
	Second ObjectPropertyExpression
	Annotations
}

func (InverseObjectProperties) AxiomType() AxiomType { return AxiomInverseObjectProperties }
func (a InverseObjectProperties) String() string {
	return render("InverseObjectProperties", a.Annotations, set([]ObjectPropertyExpression{a.First, a.Second})...)
}

// ObjectPropertyDomain states the domain of an object property.
type ObjectPropertyDomain struct {
	Property ObjectPropertyExpression
	Domain   ClassExpression
	Annotations
}

func (ObjectPropertyDomain) AxiomType() AxiomType { return AxiomObjectPropertyDomain }
func (a ObjectPropertyDomain) String() string {
	return render("ObjectPropertyDomain", a.Annotations, stringOf(a.Property), stringOf(a.Domain))
}

// ObjectPropertyRange states the range of an object property.
type ObjectPropertyRange struct {
	Property ObjectPropertyExpression
	Range    ClassExpression
	Annotations
}

func (ObjectPropertyRange) AxiomType() AxiomType { return AxiomObjectPropertyRange }
func (a ObjectPropertyRange) String() string {
	return render("ObjectPropertyRange", a.Annotations, stringOf(a.Property), stringOf(a.Range))
}

// ObjectPropertyCharacteristic is the shape shared by the seven
// characteristic axioms: a property and its annotations.
type ObjectPropertyCharacteristic interface {
	Axiom
	CharacteristicProperty() ObjectPropertyExpression
}

// FunctionalObjectProperty states that the property is functional.
type FunctionalObjectProperty struct {
	Property ObjectPropertyExpression
	Annotations
}

func (FunctionalObjectProperty) AxiomType() AxiomType { return AxiomFunctionalObjectProperty }
func (a FunctionalObjectProperty) CharacteristicProperty() ObjectPropertyExpression {
	return a.Property
}
func (a FunctionalObjectProperty) String() string {
	return render("FunctionalObjectProperty", a.Annotations, stringOf(a.Property))
}

// InverseFunctionalObjectProperty states that the property is inverse functional.
type InverseFunctionalObjectProperty struct {
	Property ObjectPropertyExpression
	Annotations
}

func (InverseFunctionalObjectProperty) AxiomType() AxiomType {
	return AxiomInverseFunctionalObjectProperty
}
func (a InverseFunctionalObjectProperty) CharacteristicProperty() ObjectPropertyExpression {
	return a.Property
}
func (a InverseFunctionalObjectProperty) String() string {
	return render("InverseFunctionalObjectProperty", a.Annotations, stringOf(a.Property))
}

// ReflexiveObjectProperty states that the property is reflexive.
type ReflexiveObjectProperty struct {
	Property ObjectPropertyExpression
	Annotations
}

func (ReflexiveObjectProperty) AxiomType() AxiomType { return AxiomReflexiveObjectProperty }
func (a ReflexiveObjectProperty) CharacteristicProperty() ObjectPropertyExpression {
	return a.Property
}
func (a ReflexiveObjectProperty) String() string {
	return render("ReflexiveObjectProperty", a.Annotations, stringOf(a.Property))
}

// IrreflexiveObjectProperty states that the property is irreflexive.
type IrreflexiveObjectProperty struct {
	Property ObjectPropertyExpression
	Annotations
}

func (IrreflexiveObjectProperty) AxiomType() AxiomType { return AxiomIrreflexiveObjectProperty }
func (a IrreflexiveObjectProperty) CharacteristicProperty() ObjectPropertyExpression {
	return a.Property
}
func (a IrreflexiveObjectProperty) String() string {
	return render("IrreflexiveObjectProperty", a.Annotations, stringOf(a.Property))
}

// SymmetricObjectProperty states that the property is symmetric.
type SymmetricObjectProperty struct {
	Property ObjectPropertyExpression
	Annotations
}

func (SymmetricObjectProperty) AxiomType() AxiomType { return AxiomSymmetricObjectProperty }
func (a SymmetricObjectProperty) CharacteristicProperty() ObjectPropertyExpression {
	return a.Property
}
func (a SymmetricObjectProperty) String() string {
	return render("SymmetricObjectProperty", a.Annotations, stringOf(a.Property))
}

// AsymmetricObjectProperty states that the property is asymmetric.
type AsymmetricObjectProperty struct {
	Property ObjectPropertyExpression
	Annotations
}

func (AsymmetricObjectProperty) AxiomType() AxiomType { return AxiomAsymmetricObjectProperty }
func (a AsymmetricObjectProperty) CharacteristicProperty() ObjectPropertyExpression {
	return a.Property
}
func (a AsymmetricObjectProperty) String() string {
	return render("AsymmetricObjectProperty", a.Annotations, stringOf(a.Property))
}

// TransitiveObjectProperty states that the property is transitive.
type TransitiveObjectProperty struct {
	Property ObjectPropertyExpression
	Annotations
}

func (TransitiveObjectProperty) AxiomType() AxiomType { return AxiomTransitiveObjectProperty }
func (a TransitiveObjectProperty) CharacteristicProperty() ObjectPropertyExpression {
	return a.Property
}
func (a TransitiveObjectProperty) String() string {
	return render("TransitiveObjectProperty", a.Annotations, stringOf(a.Property))
}

// SubDataPropertyOf states a sub-property relation between data properties.
type SubDataPropertyOf struct {
	Sub   DataProperty
	Super DataProperty
	Annotations
}

func (SubDataPropertyOf) AxiomType() AxiomType { return AxiomSubDataPropertyOf }
func (a SubDataPropertyOf) String() string {
	return render("SubDataPropertyOf", a.Annotations, a.Sub.String(), a.Super.String())
}

// EquivalentDataProperties states that the data properties are equivalent.
type EquivalentDataProperties struct {
	Properties []DataProperty
	Annotations
}

func (EquivalentDataProperties) AxiomType() AxiomType { return AxiomEquivalentDataProperties }
func (a EquivalentDataProperties) String() string {
	return render("EquivalentDataProperties", a.Annotations, set(a.Properties)...)
}

// DisjointDataProperties states that the data properties are pairwise disjoint.
type DisjointDataProperties struct {
	Properties []DataProperty
	Annotations
}

func (DisjointDataProperties) AxiomType() AxiomType { return AxiomDisjointDataProperties }
func (a DisjointDataProperties) String() string {
	return render("DisjointDataProperties", a.Annotations, set(a.Properties)...)
}

// DataPropertyDomain states the domain of a data property.
type DataPropertyDomain struct {
	Property DataProperty
	Domain   ClassExpression
	Annotations
}

func (DataPropertyDomain) AxiomType() AxiomType { return AxiomDataPropertyDomain }
func (a DataPropertyDomain) String() string {
	return render("DataPropertyDomain", a.Annotations, a.Property.String(), stringOf(a.Domain))
}

// DataPropertyRange states the range of a data property.
type DataPropertyRange struct {
	Property DataProperty
	Range    DataRange
	Annotations
}

func (DataPropertyRange) AxiomType() AxiomType { return AxiomDataPropertyRange }
func (a DataPropertyRange) String() string {
	return render("DataPropertyRange", a.Annotations, a.Property.String(), stringOf(a.Range))
}

// FunctionalDataProperty states that the data property is functional.
type FunctionalDataProperty struct {
	Property DataProperty
	Annotations
}

func (FunctionalDataProperty) AxiomType() AxiomType { return AxiomFunctionalDataProperty }
func (a FunctionalDataProperty) String() string {
	return render("FunctionalDataProperty", a.Annotations, a.Property.String())
}

// DatatypeDefinition defines Datatype as a synonym of Range.
type DatatypeDefinition struct {
	Datatype Datatype
	Range    DataRange
	Annotations
}

func (DatatypeDefinition) AxiomType() AxiomType { return AxiomDatatypeDefinition }
func (a DatatypeDefinition) String() string {
	return render("DatatypeDefinition", a.Annotations, a.Datatype.String(), stringOf(a.Range))
}

// HasKey states that the listed properties uniquely identify instances of Class.
type HasKey struct {
	Class            ClassExpression
	ObjectProperties []ObjectPropertyExpression
	DataProperties   []DataProperty
	Annotations
}

func (HasKey) AxiomType() AxiomType { return AxiomHasKey }
func (a HasKey) String() string {
	return render("HasKey", a.Annotations, stringOf(a.Class),
		"("+joined(set(a.ObjectProperties))+")",
		"("+joined(set(a.DataProperties))+")")
}

// SameIndividual states that the individuals are equal.
type SameIndividual struct {
	Individuals []Individual
	Annotations
}

func (SameIndividual) AxiomType() AxiomType { return AxiomSameIndividual }
func (a SameIndividual) String() string {
	return render("SameIndividual", a.Annotations, set(a.Individuals)...)
}

// DifferentIndividuals states that the individuals are pairwise different.
type DifferentIndividuals struct {
	Individuals []Individual
	Annotations
}

func (DifferentIndividuals) AxiomType() AxiomType { return AxiomDifferentIndividuals }
func (a DifferentIndividuals) String() string {
	return render("DifferentIndividuals", a.Annotations, set(a.Individuals)...)
}

// ClassAssertion states that Individual is an instance of Class.
type ClassAssertion struct {
	Class      ClassExpression
	Individual Individual
	Annotations
}

func (ClassAssertion) AxiomType() AxiomType { return AxiomClassAssertion }
func (a ClassAssertion) String() string {
	return render("ClassAssertion", a.Annotations, stringOf(a.Class), stringOf(a.Individual))
}

// ObjectPropertyAssertion relates Subject to Object by Property.
type ObjectPropertyAssertion struct {
	Property ObjectPropertyExpression
	Subject  Individual
	Object   Individual
	Annotations
}

func (ObjectPropertyAssertion) AxiomType() AxiomType { return AxiomObjectPropertyAssertion }
func (a ObjectPropertyAssertion) String() string {
	return render("ObjectPropertyAssertion", a.Annotations, stringOf(a.Property), stringOf(a.Subject), stringOf(a.Object))
}

// DataPropertyAssertion gives Subject the literal Value for Property.
type DataPropertyAssertion struct {
	Property DataProperty
	Subject  Individual
	Value    Literal
	Annotations
}

func (DataPropertyAssertion) AxiomType() AxiomType { return AxiomDataPropertyAssertion }
func (a DataPropertyAssertion) String() string {
	return render("DataPropertyAssertion", a.Annotations, a.Property.String(), stringOf(a.Subject), a.Value.String())
}

// NegativeObjectPropertyAssertion states that Subject is not related to Object by Property.
type NegativeObjectPropertyAssertion struct {
	Property ObjectPropertyExpression
	Subject  Individual
	Object   Individual
	Annotations
}

func (NegativeObjectPropertyAssertion) AxiomType() AxiomType {
	return AxiomNegativeObjectPropertyAssertion
}
func (a NegativeObjectPropertyAssertion) String() string {
	return render("NegativeObjectPropertyAssertion", a.Annotations, stringOf(a.Property), stringOf(a.Subject), stringOf(a.Object))
}

// NegativeDataPropertyAssertion states that Subject does not have Value for Property.
type NegativeDataPropertyAssertion struct {
	Property DataProperty
	Subject  Individual
	Value    Literal
	Annotations
}

func (NegativeDataPropertyAssertion) AxiomType() AxiomType {
	return AxiomNegativeDataPropertyAssertion
}
func (a NegativeDataPropertyAssertion) String() string {
	return render("NegativeDataPropertyAssertion", a.Annotations, a.Property.String(), stringOf(a.Subject), a.Value.String())
}

// AnnotationAssertion annotates Subject with Value for Property.
type AnnotationAssertion struct {
	Property AnnotationProperty
	Subject  AnnotationSubject
	Value    AnnotationValue
	Annotations
}

func (AnnotationAssertion) AxiomType() AxiomType { return AxiomAnnotationAssertion }
func (a AnnotationAssertion) String() string {
	return render("AnnotationAssertion", a.Annotations, a.Property.String(), stringOf(a.Subject), stringOf(a.Value))
}

// SubAnnotationPropertyOf states a sub-property relation between annotation properties.
type SubAnnotationPropertyOf struct {
	Sub   AnnotationProperty
	Super AnnotationProperty
	Annotations
}

func (SubAnnotationPropertyOf) AxiomType() AxiomType { return AxiomSubAnnotationPropertyOf }
func (a SubAnnotationPropertyOf) String() string {
	return render("SubAnnotationPropertyOf", a.Annotations, a.Sub.String(), a.Super.String())
}

// AnnotationPropertyDomain states the domain IRI of an annotation property.
type AnnotationPropertyDomain struct {
	Property AnnotationProperty
	Domain   IRI
	Annotations
}

func (AnnotationPropertyDomain) AxiomType() AxiomType { return AxiomAnnotationPropertyDomain }
func (a AnnotationPropertyDomain) String() string {
	return render("AnnotationPropertyDomain", a.Annotations, a.Property.String(), a.Domain.String())
}

// AnnotationPropertyRange states the range IRI of an annotation property.
type AnnotationPropertyRange struct {
	Property AnnotationProperty
	Range    IRI
	Annotations
}

func (AnnotationPropertyRange) AxiomType() AxiomType { return AxiomAnnotationPropertyRange }
func (a AnnotationPropertyRange) String() string {
	return render("AnnotationPropertyRange", a.Annotations, a.Property.String(), a.Range.String())
}

// SWRLRule is a DL-safe rule: Body implies Head.
type SWRLRule struct {
	Body []Atom
	Head []Atom
	Annotations
}

func (SWRLRule) AxiomType() AxiomType { return AxiomSWRLRule }
func (a SWRLRule) String() string {
	return render("DLSafeRule", a.Annotations, render("Body", nil, list(a.Body)...), render("Head", nil, list(a.Head)...))
}
