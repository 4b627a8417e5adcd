package translate

import (
	"github.com/c360studio/semowl/owl"
	"github.com/c360studio/semowl/provenance"
)

// naryOperands returns the operands of axioms whose pairwise encodings
// ReadAll joins. Only transitive relations qualify.
func naryOperands(ax owl.Axiom) ([]provenance.Object, bool) {
	switch a := ax.(type) {
	case owl.EquivalentClasses:
		return objects(a.Classes), true
	case owl.EquivalentObjectProperties:
		return objects(a.Properties), true
	case owl.EquivalentDataProperties:
		return objects(a.Properties), true
	case owl.SameIndividual:
		return objects(a.Individuals), true
	}
	return nil, false
}

func withOperands(ax owl.Axiom, ops []provenance.Object) owl.Axiom {
	switch a := ax.(type) {
	case owl.EquivalentClasses:
		a.Classes = typed[owl.ClassExpression](ops)
		return a
	case owl.EquivalentObjectProperties:
		a.Properties = typed[owl.ObjectPropertyExpression](ops)
		return a
	case owl.EquivalentDataProperties:
		a.Properties = typed[owl.DataProperty](ops)
		return a
	case owl.SameIndividual:
		a.Individuals = typed[owl.Individual](ops)
		return a
	}
	return ax
}

func objects[T provenance.Object](xs []T) []provenance.Object {
	out := make([]provenance.Object, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}

func typed[T provenance.Object](xs []provenance.Object) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if t, ok := x.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// unionFind groups operand keys into connected components.
type unionFind map[string]string

func (u unionFind) find(k string) string {
	for {
		p, ok := u[k]
		if !ok || p == k {
			return k
		}
		u[k] = u[p]
		k = p
	}
}

func (u unionFind) union(a, b string) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u[rb] = ra
	}
}

// mergeNary joins axioms of the same n-ary type and annotation set whose
// operands overlap. Each joined axiom sits where its first member was and
// carries the union of the members' triples.
func mergeNary(items []provenance.Wrapped[owl.Axiom]) []provenance.Wrapped[owl.Axiom] {
	groups := make(map[string][]int)
	for i, w := range items {
		if _, ok := naryOperands(w.Object()); ok {
			key := w.Object().AxiomType().String() + annotationSet(w.Object().AxiomAnnotations()).String()
			groups[key] = append(groups[key], i)
		}
	}

	out := make([]provenance.Wrapped[owl.Axiom], 0, len(items))
	done := make(map[string]bool)
	for _, w := range items {
		if _, ok := naryOperands(w.Object()); !ok {
			out = append(out, w)
			continue
		}
		key := w.Object().AxiomType().String() + annotationSet(w.Object().AxiomAnnotations()).String()
		if done[key] {
			continue
		}
		done[key] = true
		out = append(out, mergeGroup(items, groups[key])...)
	}
	return out
}

func mergeGroup(items []provenance.Wrapped[owl.Axiom], members []int) []provenance.Wrapped[owl.Axiom] {
	uf := make(unionFind)
	for _, i := range members {
		ops, _ := naryOperands(items[i].Object())
		for _, op := range ops[1:] {
			uf.union(ops[0].String(), op.String())
		}
	}

	var roots []string
	components := make(map[string][]int)
	for _, i := range members {
		ops, _ := naryOperands(items[i].Object())
		if len(ops) == 0 {
			continue
		}
		root := uf.find(ops[0].String())
		if _, ok := components[root]; !ok {
			roots = append(roots, root)
		}
		components[root] = append(components[root], i)
	}

	out := make([]provenance.Wrapped[owl.Axiom], 0, len(roots))
	for _, root := range roots {
		idx := components[root]
		first := items[idx[0]]
		var (
			ops  []provenance.Object
			seen = make(map[string]bool)
			rest []provenance.TripleSource
		)
		for n, i := range idx {
			xs, _ := naryOperands(items[i].Object())
			for _, x := range xs {
				if !seen[x.String()] {
					seen[x.String()] = true
					ops = append(ops, x)
				}
			}
			if n > 0 {
				rest = append(rest, items[i])
			}
		}
		ax := withOperands(first.Object(), ops)
		out = append(out, provenance.New(ax, first.Triples()...).Append(rest...))
	}
	return out
}
