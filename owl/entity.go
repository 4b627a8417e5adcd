package owl

import (
	"strconv"
	"strings"

	"github.com/c360studio/semowl/vocabulary/owl2"
)

// IRI is an absolute internationalized resource identifier.
type IRI string

func (i IRI) String() string { return "<" + string(i) + ">" }

func (IRI) annotationValue()   {}
func (IRI) annotationSubject() {}

// EntityType identifies the kind of a named entity.
type EntityType int

const (
	EntityClass EntityType = iota
	EntityDatatype
	EntityObjectProperty
	EntityDataProperty
	EntityAnnotationProperty
	EntityNamedIndividual
)

var entityTypeNames = [...]string{
	EntityClass:              "Class",
	EntityDatatype:           "Datatype",
	EntityObjectProperty:     "ObjectProperty",
	EntityDataProperty:       "DataProperty",
	EntityAnnotationProperty: "AnnotationProperty",
	EntityNamedIndividual:    "NamedIndividual",
}

// String returns the functional-syntax keyword of the entity type.
func (t EntityType) String() string {
	if int(t) < 0 || int(t) >= len(entityTypeNames) {
		return "Unknown"
	}
	return entityTypeNames[t]
}

// DeclarationType returns the rdf:type IRI used to declare entities of this kind.
func (t EntityType) DeclarationType() string {
	switch t {
	case EntityClass:
		return owl2.OwlClass
	case EntityDatatype:
		return owl2.RdfsDatatype
	case EntityObjectProperty:
		return owl2.OwlObjectProperty
	case EntityDataProperty:
		return owl2.OwlDatatypeProperty
	case EntityAnnotationProperty:
		return owl2.OwlAnnotationProperty
	case EntityNamedIndividual:
		return owl2.OwlNamedIndividual
	default:
		return ""
	}
}

// EntityTypeForDeclaration maps a declaration rdf:type IRI back to its entity type.
func EntityTypeForDeclaration(typeIRI string) (EntityType, bool) {
	switch typeIRI {
	case owl2.OwlClass:
		return EntityClass, true
	case owl2.RdfsDatatype:
		return EntityDatatype, true
	case owl2.OwlObjectProperty:
		return EntityObjectProperty, true
	case owl2.OwlDatatypeProperty:
		return EntityDataProperty, true
	case owl2.OwlAnnotationProperty:
		return EntityAnnotationProperty, true
	case owl2.OwlNamedIndividual:
		return EntityNamedIndividual, true
	default:
		return 0, false
	}
}

// Entity is a named OWL object.
type Entity interface {
	IRI() IRI
	EntityType() EntityType
	String() string
}

// NewEntity builds the entity of the given kind for iri.
func NewEntity(t EntityType, iri IRI) Entity {
	switch t {
	case EntityClass:
		return Class(iri)
	case EntityDatatype:
		return Datatype(iri)
	case EntityObjectProperty:
		return ObjectProperty(iri)
	case EntityDataProperty:
		return DataProperty(iri)
	case EntityAnnotationProperty:
		return AnnotationProperty(iri)
	default:
		return NamedIndividual(iri)
	}
}

// Class is a named class.
type Class IRI

func (c Class) IRI() IRI               { return IRI(c) }
func (Class) EntityType() EntityType   { return EntityClass }
func (c Class) String() string         { return IRI(c).String() }
func (Class) classExpression()         {}

// Datatype is a named datatype.
type Datatype IRI

func (d Datatype) IRI() IRI             { return IRI(d) }
func (Datatype) EntityType() EntityType { return EntityDatatype }
func (d Datatype) String() string       { return IRI(d).String() }
func (Datatype) dataRange()             {}

// ObjectProperty is a named object property.
type ObjectProperty IRI

func (p ObjectProperty) IRI() IRI             { return IRI(p) }
func (ObjectProperty) EntityType() EntityType { return EntityObjectProperty }
func (p ObjectProperty) String() string       { return IRI(p).String() }
func (ObjectProperty) objectPropertyExpression() {}

// DataProperty is a named data property.
type DataProperty IRI

func (p DataProperty) IRI() IRI             { return IRI(p) }
func (DataProperty) EntityType() EntityType { return EntityDataProperty }
func (p DataProperty) String() string       { return IRI(p).String() }

// AnnotationProperty is a named annotation property.
type AnnotationProperty IRI

func (p AnnotationProperty) IRI() IRI             { return IRI(p) }
func (AnnotationProperty) EntityType() EntityType { return EntityAnnotationProperty }
func (p AnnotationProperty) String() string       { return IRI(p).String() }

// NamedIndividual is an individual identified by an IRI.
type NamedIndividual IRI

func (i NamedIndividual) IRI() IRI             { return IRI(i) }
func (NamedIndividual) EntityType() EntityType { return EntityNamedIndividual }
func (i NamedIndividual) String() string       { return IRI(i).String() }
func (NamedIndividual) individual()            {}
func (NamedIndividual) iArg()                  {}

// Built-in entities.
const (
	Thing      = Class(owl2.OwlThing)
	Nothing    = Class(owl2.OwlNothing)
	TopLiteral = Datatype(owl2.RdfsLiteral)
)

// AnonymousIndividual is an individual known only by a graph-local node ID.
type AnonymousIndividual string

func (a AnonymousIndividual) String() string { return "_:" + string(a) }
func (AnonymousIndividual) individual()        {}
func (AnonymousIndividual) iArg()              {}
func (AnonymousIndividual) annotationValue()   {}
func (AnonymousIndividual) annotationSubject() {}

// Individual is a NamedIndividual or an AnonymousIndividual.
type Individual interface {
	String() string
	individual()
}

// Literal is an RDF literal. Lang is set only for language-tagged strings,
// whose Datatype is rdf:langString.
type Literal struct {
	Lexical  string
	Datatype IRI
	Lang     string
}

// StringLiteral returns an xsd:string literal.
func StringLiteral(s string) Literal {
	return Literal{Lexical: s, Datatype: owl2.XsdString}
}

// LangLiteral returns a language-tagged string. The tag is kept as given.
func LangLiteral(s, lang string) Literal {
	return Literal{Lexical: s, Datatype: owl2.RdfLangString, Lang: lang}
}

// TypedLiteral returns a literal with an explicit datatype.
func TypedLiteral(lexical string, datatype IRI) Literal {
	return Literal{Lexical: lexical, Datatype: datatype}.Normalize()
}

// IntegerLiteral returns an xsd:integer literal.
func IntegerLiteral(n int64) Literal {
	return Literal{Lexical: strconv.FormatInt(n, 10), Datatype: owl2.XsdInteger}
}

// BooleanLiteral returns an xsd:boolean literal.
func BooleanLiteral(b bool) Literal {
	return Literal{Lexical: strconv.FormatBool(b), Datatype: owl2.XsdBoolean}
}

// NonNegativeIntegerLiteral returns the literal form used for cardinalities.
func NonNegativeIntegerLiteral(n int) Literal {
	return Literal{Lexical: strconv.Itoa(n), Datatype: owl2.XsdNonNegativeInteger}
}

// Normalize fills the implicit datatype so that equal literals compare equal
// whatever path produced them.
func (l Literal) Normalize() Literal {
	if l.Lang != "" {
		l.Datatype = owl2.RdfLangString
		return l
	}
	if l.Datatype == "" || l.Datatype == owl2.RdfPlainLiteral {
		l.Datatype = owl2.XsdString
	}
	return l
}

// Int parses the lexical form as an integer.
func (l Literal) Int() (int, error) {
	return strconv.Atoi(strings.TrimSpace(l.Lexical))
}

// String renders the canonical form. Language tags compare
// case-insensitively, so they are folded here and only here.
func (l Literal) String() string {
	n := l.Normalize()
	q := strconv.Quote(n.Lexical)
	if n.Lang != "" {
		return q + "@" + strings.ToLower(n.Lang)
	}
	return q + "^^" + n.Datatype.String()
}

func (Literal) annotationValue() {}
func (Literal) dArg()            {}

// AnnotationValue is an IRI, an AnonymousIndividual or a Literal.
type AnnotationValue interface {
	String() string
	annotationValue()
}

// AnnotationSubject is an IRI or an AnonymousIndividual.
type AnnotationSubject interface {
	String() string
	annotationSubject()
}

// Annotation attaches a property/value pair, itself annotatable, to an axiom
// or to another annotation.
type Annotation struct {
	Property    AnnotationProperty
	Value       AnnotationValue
	Annotations []Annotation
}

// NewAnnotation builds an annotation with optional nested annotations.
func NewAnnotation(p AnnotationProperty, v AnnotationValue, nested ...Annotation) Annotation {
	return Annotation{Property: p, Value: v, Annotations: nested}
}

// IsPlain reports whether the annotation carries no nested annotations.
func (a Annotation) IsPlain() bool { return len(a.Annotations) == 0 }

func (a Annotation) String() string {
	return render("Annotation", a.Annotations, a.Property.String(), stringOf(a.Value))
}

// Annotations is the annotation set embedded in every axiom.
type Annotations []Annotation

// AxiomAnnotations returns the annotations of the enclosing axiom.
func (a Annotations) AxiomAnnotations() []Annotation { return a }
