package owl

import (
	"fmt"
	"sort"
	"strings"
)

// Equal reports whether two objects have the same canonical form.
func Equal(a, b fmt.Stringer) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.String() == b.String()
}

// render writes name(annotations... args...) with annotations in canonical order.
func render(name string, anns []Annotation, args ...string) string {
	parts := make([]string, 0, len(anns)+len(args))
	parts = append(parts, annotationSet(anns)...)
	parts = append(parts, args...)

	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('(')
	sb.WriteString(strings.Join(parts, " "))
	sb.WriteByte(')')
	return sb.String()
}

func annotationSet(anns []Annotation) []string {
	out := make([]string, 0, len(anns))
	for _, a := range anns {
		out = append(out, a.String())
	}
	return dedupe(out)
}

func stringOf(v fmt.Stringer) string {
	if v == nil {
		return "<nil>"
	}
	return v.String()
}

// list renders operands in their given order.
func list[T fmt.Stringer](xs []T) []string {
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		out = append(out, stringOf(x))
	}
	return out
}

// set renders operands sorted and without duplicates.
func set[T fmt.Stringer](xs []T) []string {
	return dedupe(list(xs))
}

func dedupe(xs []string) []string {
	sort.Strings(xs)
	out := xs[:0]
	for i, x := range xs {
		if i > 0 && x == xs[i-1] {
			continue
		}
		out = append(out, x)
	}
	return out
}

func joined(xs []string) string {
	return strings.Join(xs, " ")
}
