package rdf

import (
	"strconv"
	"strings"

	"github.com/cayleygraph/quad"

	"github.com/c360studio/semowl/vocabulary/owl2"
)

// Triple is a single RDF statement. The object may be a literal.
type Triple struct {
	Subject   quad.Value
	Predicate quad.Value
	Object    quad.Value
}

// NewTriple builds a triple with normalized terms.
func NewTriple(s, p, o quad.Value) Triple {
	return Triple{Subject: Normalize(s), Predicate: Normalize(p), Object: Normalize(o)}
}

// T is shorthand for NewTriple with an IRI predicate.
func T(s quad.Value, p string, o quad.Value) Triple {
	return NewTriple(s, quad.IRI(p), o)
}

// Key returns the identity of the triple inside a graph.
func (t Triple) Key() string {
	return TermKey(t.Subject) + " " + TermKey(t.Predicate) + " " + TermKey(t.Object)
}

// String renders the triple as an N-Triples statement.
func (t Triple) String() string {
	return t.Key() + " ."
}

// Quad converts the triple to a default-graph quad.
func (t Triple) Quad() quad.Quad {
	return quad.Quad{Subject: t.Subject, Predicate: t.Predicate, Object: t.Object}
}

// Matches reports whether the triple fits a pattern; nil positions match anything.
func (t Triple) Matches(s, p, o quad.Value) bool {
	return matchTerm(s, t.Subject) && matchTerm(p, t.Predicate) && matchTerm(o, t.Object)
}

func matchTerm(pattern, v quad.Value) bool {
	return pattern == nil || TermKey(Normalize(pattern)) == TermKey(v)
}

// TermKey returns the canonical N-Triples form of a term. nil maps to "".
// Language tags are folded to lower case in the key only; the stored term
// keeps the tag as written.
func TermKey(v quad.Value) string {
	if v == nil {
		return ""
	}
	if x, ok := v.(quad.LangString); ok {
		x.Lang = strings.ToLower(x.Lang)
		return x.String()
	}
	return v.String()
}

// Normalize maps a term onto its canonical Go value.
func Normalize(v quad.Value) quad.Value {
	switch x := v.(type) {
	case quad.TypedString:
		switch string(x.Type) {
		case "", owl2.XsdString, owl2.RdfPlainLiteral:
			return x.Value
		}
		return x
	case quad.Int:
		return quad.TypedString{Value: quad.String(strconv.FormatInt(int64(x), 10)), Type: quad.IRI(owl2.XsdInteger)}
	case quad.Bool:
		return quad.TypedString{Value: quad.String(strconv.FormatBool(bool(x))), Type: quad.IRI(owl2.XsdBoolean)}
	case quad.Float:
		return quad.TypedString{Value: quad.String(strconv.FormatFloat(float64(x), 'g', -1, 64)), Type: quad.IRI(owl2.XsdDouble)}
	default:
		return v
	}
}

// IsBlank reports whether v is a blank node.
func IsBlank(v quad.Value) bool {
	_, ok := v.(quad.BNode)
	return ok
}

// IsIRI reports whether v is a named node.
func IsIRI(v quad.Value) bool {
	_, ok := v.(quad.IRI)
	return ok
}

// IsLiteral reports whether v is a literal of any kind.
func IsLiteral(v quad.Value) bool {
	switch Normalize(v).(type) {
	case quad.String, quad.TypedString, quad.LangString:
		return true
	default:
		return false
	}
}

// IsResource reports whether v can be the subject of a triple.
func IsResource(v quad.Value) bool {
	return IsIRI(v) || IsBlank(v)
}

// IRIOf returns the IRI of a named node.
func IRIOf(v quad.Value) (string, bool) {
	iri, ok := v.(quad.IRI)
	return string(iri), ok
}

// Is reports whether v is the named node iri.
func Is(v quad.Value, iri string) bool {
	got, ok := IRIOf(v)
	return ok && got == iri
}

// Nil is the empty list.
var Nil = quad.IRI(owl2.RdfNil)
