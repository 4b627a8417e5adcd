package translate

import (
	"github.com/cayleygraph/quad"

	"github.com/c360studio/semowl/owl"
	"github.com/c360studio/semowl/provenance"
	"github.com/c360studio/semowl/rdf"
	"github.com/c360studio/semowl/vocabulary/owl2"
)

// both reads the subject and object of t with op.
func both[T provenance.Object](op operandReader[T], r *reader, t rdf.Triple) (T, T, []provenance.TripleSource, error) {
	var zero T
	ops, parts, err := readAll([]quad.Value{t.Subject, t.Object}, func(v quad.Value) (provenance.Wrapped[T], error) {
		return op.read(r, v)
	})
	if err != nil {
		return zero, zero, nil, err
	}
	return ops[0], ops[1], parts, nil
}

// pairOf returns a binary acceptFunc checking subject and object.
func pairOf(subject, object func(r *reader, v quad.Value) bool) acceptFunc {
	return func(r *reader, t rdf.Triple) bool {
		return subject(r, t.Subject) && object(r, t.Object)
	}
}

func entityOf(t owl.EntityType) func(r *reader, v quad.Value) bool {
	return func(r *reader, v quad.Value) bool { return r.is(v, t) }
}

// propertyPredicate reports whether the predicate of an assertion can be
// viewed as a property of kind t.
func propertyPredicate(r *reader, p quad.Value, t owl.EntityType) bool {
	iri, ok := rdf.IRIOf(p)
	if !ok || (owl2.IsReserved(iri) && !builtin(iri, t)) {
		return false
	}
	return r.is(p, t)
}

func anyNode(*reader, quad.Value) bool { return true }

// Declarations and class axioms.

var declaration = singleTriple{
	typ:       owl.AxiomDeclaration,
	predicate: owl2.RdfType,
	operands: func(ax owl.Axiom) (any, any) {
		d := as[owl.Declaration](ax)
		if d.Entity == nil {
			return nil, nil
		}
		return d.Entity, owl.IRI(d.Entity.EntityType().DeclarationType())
	},
	accepts: func(_ *reader, t rdf.Triple) bool { return isDeclaration(t) },
	build: func(_ *reader, t rdf.Triple, anns owl.Annotations) (owl.Axiom, []provenance.TripleSource, error) {
		iri, _ := rdf.IRIOf(t.Subject)
		typ, _ := rdf.IRIOf(t.Object)
		et, _ := owl.EntityTypeForDeclaration(typ)
		return owl.Declaration{Entity: owl.NewEntity(et, owl.IRI(iri)), Annotations: anns}, nil, nil
	},
}

var subClassOf = singleTriple{
	typ:       owl.AxiomSubClassOf,
	predicate: owl2.RdfsSubClassOf,
	operands: func(ax owl.Axiom) (any, any) {
		a := as[owl.SubClassOf](ax)
		return a.Sub, a.Super
	},
	accepts: pairOf((*reader).isClass, (*reader).isClass),
	build: func(r *reader, t rdf.Triple, anns owl.Annotations) (owl.Axiom, []provenance.TripleSource, error) {
		sub, super, parts, err := both(classOperand, r, t)
		return owl.SubClassOf{Sub: sub, Super: super, Annotations: anns}, parts, err
	},
}

var equivalentClasses = nary[owl.ClassExpression]{
	typ:       owl.AxiomEquivalentClasses,
	predicate: owl2.OwlEquivalentClass,
	operands:  func(ax owl.Axiom) []owl.ClassExpression { return as[owl.EquivalentClasses](ax).Classes },
	operand:   classOperand,
	build: func(ops []owl.ClassExpression, anns owl.Annotations) owl.Axiom {
		return owl.EquivalentClasses{Classes: ops, Annotations: anns}
	},
}

var disjointClasses = twoWayNary[owl.ClassExpression]{
	typ:       owl.AxiomDisjointClasses,
	predicate: owl2.OwlDisjointWith,
	nodeType:  owl2.OwlAllDisjointClasses,
	members:   owl2.OwlMembers,
	operands:  func(ax owl.Axiom) []owl.ClassExpression { return as[owl.DisjointClasses](ax).Classes },
	operand:   classOperand,
	build: func(ops []owl.ClassExpression, anns owl.Annotations) owl.Axiom {
		return owl.DisjointClasses{Classes: ops, Annotations: anns}
	},
}

var disjointUnion = subChainedList{
	typ:       owl.AxiomDisjointUnion,
	predicate: owl2.OwlDisjointUnionOf,
	min:       2,
	operands: func(ax owl.Axiom) (any, []any) {
		a := as[owl.DisjointUnion](ax)
		return a.Class, anys(a.Classes)
	},
	accepts: func(r *reader, t rdf.Triple) bool { return rdf.IsIRI(t.Subject) && r.isClass(t.Subject) },
	build: func(r *reader, subject quad.Value, items []quad.Value, anns owl.Annotations) (owl.Axiom, []provenance.TripleSource, error) {
		iri, _ := rdf.IRIOf(subject)
		classes, parts, err := readAll(items, r.classExpression)
		return owl.DisjointUnion{Class: owl.Class(iri), Classes: classes, Annotations: anns}, parts, err
	},
}

// Object property axioms.

var subObjectPropertyOf = singleTriple{
	typ:       owl.AxiomSubObjectPropertyOf,
	predicate: owl2.RdfsSubPropertyOf,
	operands: func(ax owl.Axiom) (any, any) {
		a := as[owl.SubObjectPropertyOf](ax)
		return a.Sub, a.Super
	},
	accepts: pairOf((*reader).isObjectPropertyExpression, (*reader).isObjectPropertyExpression),
	build: func(r *reader, t rdf.Triple, anns owl.Annotations) (owl.Axiom, []provenance.TripleSource, error) {
		sub, super, parts, err := both(objectPropertyOperand, r, t)
		return owl.SubObjectPropertyOf{Sub: sub, Super: super, Annotations: anns}, parts, err
	},
}

var subPropertyChainOf = subChainedList{
	typ:       owl.AxiomSubPropertyChainOf,
	predicate: owl2.OwlPropertyChainAxiom,
	min:       2,
	operands: func(ax owl.Axiom) (any, []any) {
		a := as[owl.SubPropertyChainOf](ax)
		return a.Super, anys(a.Chain)
	},
	accepts: func(r *reader, t rdf.Triple) bool { return r.isObjectPropertyExpression(t.Subject) },
	build: func(r *reader, subject quad.Value, items []quad.Value, anns owl.Annotations) (owl.Axiom, []provenance.TripleSource, error) {
		super, err := r.objectProperty(subject)
		if err != nil {
			return nil, nil, err
		}
		chain, parts, err := readAll(items, r.objectProperty)
		return owl.SubPropertyChainOf{Chain: chain, Super: super.Object(), Annotations: anns}, append(parts, super), err
	},
}

var equivalentObjectProperties = nary[owl.ObjectPropertyExpression]{
	typ:       owl.AxiomEquivalentObjectProperties,
	predicate: owl2.OwlEquivalentProperty,
	operands: func(ax owl.Axiom) []owl.ObjectPropertyExpression {
		return as[owl.EquivalentObjectProperties](ax).Properties
	},
	operand: objectPropertyOperand,
	build: func(ops []owl.ObjectPropertyExpression, anns owl.Annotations) owl.Axiom {
		return owl.EquivalentObjectProperties{Properties: ops, Annotations: anns}
	},
}

var disjointObjectProperties = twoWayNary[owl.ObjectPropertyExpression]{
	typ:       owl.AxiomDisjointObjectProperties,
	predicate: owl2.OwlPropertyDisjointWith,
	nodeType:  owl2.OwlAllDisjointProperties,
	members:   owl2.OwlMembers,
	operands: func(ax owl.Axiom) []owl.ObjectPropertyExpression {
		return as[owl.DisjointObjectProperties](ax).Properties
	},
	operand: objectPropertyOperand,
	build: func(ops []owl.ObjectPropertyExpression, anns owl.Annotations) owl.Axiom {
		return owl.DisjointObjectProperties{Properties: ops, Annotations: anns}
	},
}

// inverseObjectProperties puts a named operand in subject position so the
// main triple cannot be mistaken for an inverse property expression.
var inverseObjectProperties = singleTriple{
	typ:       owl.AxiomInverseObjectProperties,
	predicate: owl2.OwlInverseOf,
	check: func(ax owl.Axiom) error {
		a := as[owl.InverseObjectProperties](ax)
		if owl.IsAnonymous(a.First) && owl.IsAnonymous(a.Second) {
			return illegalArgumentf("inverse object properties need a named operand")
		}
		return nil
	},
	operands: func(ax owl.Axiom) (any, any) {
		a := as[owl.InverseObjectProperties](ax)
		if owl.IsAnonymous(a.First) {
			return a.Second, a.First
		}
		return a.First, a.Second
	},
	accepts: func(r *reader, t rdf.Triple) bool {
		return rdf.IsIRI(t.Subject) && r.isObjectPropertyExpression(t.Subject) && r.isObjectPropertyExpression(t.Object)
	},
	build: func(r *reader, t rdf.Triple, anns owl.Annotations) (owl.Axiom, []provenance.TripleSource, error) {
		first, second, parts, err := both(objectPropertyOperand, r, t)
		return owl.InverseObjectProperties{First: first, Second: second, Annotations: anns}, parts, err
	},
}

var objectPropertyDomain = singleTriple{
	typ:       owl.AxiomObjectPropertyDomain,
	predicate: owl2.RdfsDomain,
	operands: func(ax owl.Axiom) (any, any) {
		a := as[owl.ObjectPropertyDomain](ax)
		return a.Property, a.Domain
	},
	accepts: pairOf((*reader).isObjectPropertyExpression, (*reader).isClass),
	build: func(r *reader, t rdf.Triple, anns owl.Annotations) (owl.Axiom, []provenance.TripleSource, error) {
		p, err := r.objectProperty(t.Subject)
		if err != nil {
			return nil, nil, err
		}
		d, err := r.classExpression(t.Object)
		if err != nil {
			return nil, nil, err
		}
		return owl.ObjectPropertyDomain{Property: p.Object(), Domain: d.Object(), Annotations: anns}, []provenance.TripleSource{p, d}, nil
	},
}

var objectPropertyRange = singleTriple{
	typ:       owl.AxiomObjectPropertyRange,
	predicate: owl2.RdfsRange,
	operands: func(ax owl.Axiom) (any, any) {
		a := as[owl.ObjectPropertyRange](ax)
		return a.Property, a.Range
	},
	accepts: pairOf((*reader).isObjectPropertyExpression, (*reader).isClass),
	build: func(r *reader, t rdf.Triple, anns owl.Annotations) (owl.Axiom, []provenance.TripleSource, error) {
		p, err := r.objectProperty(t.Subject)
		if err != nil {
			return nil, nil, err
		}
		rng, err := r.classExpression(t.Object)
		if err != nil {
			return nil, nil, err
		}
		return owl.ObjectPropertyRange{Property: p.Object(), Range: rng.Object(), Annotations: anns}, []provenance.TripleSource{p, rng}, nil
	},
}

// characteristic builds the property-type translator for an object
// property characteristic.
func characteristic(typ owl.AxiomType, rdfType string, build func(p owl.ObjectPropertyExpression, anns owl.Annotations) owl.Axiom) singleTriple {
	return singleTriple{
		typ:       typ,
		predicate: owl2.RdfType,
		object:    rdfType,
		operands: func(ax owl.Axiom) (any, any) {
			c, ok := ax.(owl.ObjectPropertyCharacteristic)
			if !ok || c.CharacteristicProperty() == nil {
				return nil, nil
			}
			return c.CharacteristicProperty(), owl.IRI(rdfType)
		},
		accepts: func(r *reader, t rdf.Triple) bool { return r.isObjectPropertyExpression(t.Subject) },
		build: func(r *reader, t rdf.Triple, anns owl.Annotations) (owl.Axiom, []provenance.TripleSource, error) {
			p, err := r.objectProperty(t.Subject)
			if err != nil {
				return nil, nil, err
			}
			return build(p.Object(), anns), []provenance.TripleSource{p}, nil
		},
	}
}

var characteristics = []singleTriple{
	characteristic(owl.AxiomFunctionalObjectProperty, owl2.OwlFunctionalProperty, func(p owl.ObjectPropertyExpression, anns owl.Annotations) owl.Axiom {
		return owl.FunctionalObjectProperty{Property: p, Annotations: anns}
	}),
	characteristic(owl.AxiomInverseFunctionalObjectProperty, owl2.OwlInverseFunctionalProperty, func(p owl.ObjectPropertyExpression, anns owl.Annotations) owl.Axiom {
		return owl.InverseFunctionalObjectProperty{Property: p, Annotations: anns}
	}),
	characteristic(owl.AxiomReflexiveObjectProperty, owl2.OwlReflexiveProperty, func(p owl.ObjectPropertyExpression, anns owl.Annotations) owl.Axiom {
		return owl.ReflexiveObjectProperty{Property: p, Annotations: anns}
	}),
	characteristic(owl.AxiomIrreflexiveObjectProperty, owl2.OwlIrreflexiveProperty, func(p owl.ObjectPropertyExpression, anns owl.Annotations) owl.Axiom {
		return owl.IrreflexiveObjectProperty{Property: p, Annotations: anns}
	}),
	characteristic(owl.AxiomSymmetricObjectProperty, owl2.OwlSymmetricProperty, func(p owl.ObjectPropertyExpression, anns owl.Annotations) owl.Axiom {
		return owl.SymmetricObjectProperty{Property: p, Annotations: anns}
	}),
	characteristic(owl.AxiomAsymmetricObjectProperty, owl2.OwlAsymmetricProperty, func(p owl.ObjectPropertyExpression, anns owl.Annotations) owl.Axiom {
		return owl.AsymmetricObjectProperty{Property: p, Annotations: anns}
	}),
	characteristic(owl.AxiomTransitiveObjectProperty, owl2.OwlTransitiveProperty, func(p owl.ObjectPropertyExpression, anns owl.Annotations) owl.Axiom {
		return owl.TransitiveObjectProperty{Property: p, Annotations: anns}
	}),
}

// Data property axioms.

var subDataPropertyOf = singleTriple{
	typ:       owl.AxiomSubDataPropertyOf,
	predicate: owl2.RdfsSubPropertyOf,
	operands: func(ax owl.Axiom) (any, any) {
		a := as[owl.SubDataPropertyOf](ax)
		return a.Sub, a.Super
	},
	accepts: pairOf(entityOf(owl.EntityDataProperty), entityOf(owl.EntityDataProperty)),
	build: func(r *reader, t rdf.Triple, anns owl.Annotations) (owl.Axiom, []provenance.TripleSource, error) {
		sub, super, parts, err := both(dataPropertyOperand, r, t)
		return owl.SubDataPropertyOf{Sub: sub, Super: super, Annotations: anns}, parts, err
	},
}

var equivalentDataProperties = nary[owl.DataProperty]{
	typ:       owl.AxiomEquivalentDataProperties,
	predicate: owl2.OwlEquivalentProperty,
	operands:  func(ax owl.Axiom) []owl.DataProperty { return as[owl.EquivalentDataProperties](ax).Properties },
	operand:   dataPropertyOperand,
	build: func(ops []owl.DataProperty, anns owl.Annotations) owl.Axiom {
		return owl.EquivalentDataProperties{Properties: ops, Annotations: anns}
	},
}

var disjointDataProperties = twoWayNary[owl.DataProperty]{
	typ:       owl.AxiomDisjointDataProperties,
	predicate: owl2.OwlPropertyDisjointWith,
	nodeType:  owl2.OwlAllDisjointProperties,
	members:   owl2.OwlMembers,
	operands:  func(ax owl.Axiom) []owl.DataProperty { return as[owl.DisjointDataProperties](ax).Properties },
	operand:   dataPropertyOperand,
	build: func(ops []owl.DataProperty, anns owl.Annotations) owl.Axiom {
		return owl.DisjointDataProperties{Properties: ops, Annotations: anns}
	},
}

var dataPropertyDomain = singleTriple{
	typ:       owl.AxiomDataPropertyDomain,
	predicate: owl2.RdfsDomain,
	operands: func(ax owl.Axiom) (any, any) {
		a := as[owl.DataPropertyDomain](ax)
		return a.Property, a.Domain
	},
	accepts: pairOf(entityOf(owl.EntityDataProperty), (*reader).isClass),
	build: func(r *reader, t rdf.Triple, anns owl.Annotations) (owl.Axiom, []provenance.TripleSource, error) {
		p, err := r.dataProperty(t.Subject)
		if err != nil {
			return nil, nil, err
		}
		d, err := r.classExpression(t.Object)
		if err != nil {
			return nil, nil, err
		}
		return owl.DataPropertyDomain{Property: p, Domain: d.Object(), Annotations: anns}, []provenance.TripleSource{d}, nil
	},
}

var dataPropertyRange = singleTriple{
	typ:       owl.AxiomDataPropertyRange,
	predicate: owl2.RdfsRange,
	operands: func(ax owl.Axiom) (any, any) {
		a := as[owl.DataPropertyRange](ax)
		return a.Property, a.Range
	},
	accepts: pairOf(entityOf(owl.EntityDataProperty), (*reader).isDataRange),
	build: func(r *reader, t rdf.Triple, anns owl.Annotations) (owl.Axiom, []provenance.TripleSource, error) {
		p, err := r.dataProperty(t.Subject)
		if err != nil {
			return nil, nil, err
		}
		rng, err := r.dataRange(t.Object)
		if err != nil {
			return nil, nil, err
		}
		return owl.DataPropertyRange{Property: p, Range: rng.Object(), Annotations: anns}, []provenance.TripleSource{rng}, nil
	},
}

var functionalDataProperty = singleTriple{
	typ:       owl.AxiomFunctionalDataProperty,
	predicate: owl2.RdfType,
	object:    owl2.OwlFunctionalProperty,
	operands: func(ax owl.Axiom) (any, any) {
		a := as[owl.FunctionalDataProperty](ax)
		return a.Property, owl.IRI(owl2.OwlFunctionalProperty)
	},
	accepts: func(r *reader, t rdf.Triple) bool { return r.is(t.Subject, owl.EntityDataProperty) },
	build: func(r *reader, t rdf.Triple, anns owl.Annotations) (owl.Axiom, []provenance.TripleSource, error) {
		p, err := r.dataProperty(t.Subject)
		return owl.FunctionalDataProperty{Property: p, Annotations: anns}, nil, err
	},
}

// Datatype definitions share owl:equivalentClass with class equivalence;
// the subject being a datatype tells them apart.
var datatypeDefinition = singleTriple{
	typ:       owl.AxiomDatatypeDefinition,
	predicate: owl2.OwlEquivalentClass,
	operands: func(ax owl.Axiom) (any, any) {
		a := as[owl.DatatypeDefinition](ax)
		return a.Datatype, a.Range
	},
	accepts: func(r *reader, t rdf.Triple) bool {
		return rdf.IsIRI(t.Subject) && r.is(t.Subject, owl.EntityDatatype) && r.isDataRange(t.Object)
	},
	build: func(r *reader, t rdf.Triple, anns owl.Annotations) (owl.Axiom, []provenance.TripleSource, error) {
		iri, _ := rdf.IRIOf(t.Subject)
		rng, err := r.dataRange(t.Object)
		if err != nil {
			return nil, nil, err
		}
		return owl.DatatypeDefinition{Datatype: owl.Datatype(iri), Range: rng.Object(), Annotations: anns}, []provenance.TripleSource{rng}, nil
	},
}

// hasKey lists object properties before data properties. A punned key
// property is read as an object property.
var hasKey = subChainedList{
	typ:       owl.AxiomHasKey,
	predicate: owl2.OwlHasKey,
	min:       1,
	operands: func(ax owl.Axiom) (any, []any) {
		a := as[owl.HasKey](ax)
		return a.Class, append(anys(a.ObjectProperties), anys(a.DataProperties)...)
	},
	accepts: func(r *reader, t rdf.Triple) bool { return r.isClass(t.Subject) },
	build: func(r *reader, subject quad.Value, items []quad.Value, anns owl.Annotations) (owl.Axiom, []provenance.TripleSource, error) {
		class, err := r.classExpression(subject)
		if err != nil {
			return nil, nil, err
		}
		ax := owl.HasKey{Class: class.Object(), Annotations: anns}
		parts := []provenance.TripleSource{class}
		for _, v := range items {
			switch {
			case r.isObjectPropertyExpression(v):
				p, err := r.objectProperty(v)
				if err != nil {
					return nil, nil, err
				}
				ax.ObjectProperties = append(ax.ObjectProperties, p.Object())
				parts = append(parts, p)
			case r.is(v, owl.EntityDataProperty):
				dp, _ := r.dataProperty(v)
				ax.DataProperties = append(ax.DataProperties, dp)
			default:
				return nil, nil, translationErrorf("key property %s is neither an object nor a data property", rdf.TermKey(v))
			}
		}
		return ax, parts, nil
	},
}

// Assertions.

var sameIndividual = nary[owl.Individual]{
	typ:       owl.AxiomSameIndividual,
	predicate: owl2.OwlSameAs,
	operands:  func(ax owl.Axiom) []owl.Individual { return as[owl.SameIndividual](ax).Individuals },
	operand:   individualOperand,
	build: func(ops []owl.Individual, anns owl.Annotations) owl.Axiom {
		return owl.SameIndividual{Individuals: ops, Annotations: anns}
	},
}

var differentIndividuals = twoWayNary[owl.Individual]{
	typ:       owl.AxiomDifferentIndividuals,
	predicate: owl2.OwlDifferentFrom,
	nodeType:  owl2.OwlAllDifferent,
	members:   owl2.OwlDistinctMembers,
	operands:  func(ax owl.Axiom) []owl.Individual { return as[owl.DifferentIndividuals](ax).Individuals },
	operand:   individualOperand,
	build: func(ops []owl.Individual, anns owl.Annotations) owl.Axiom {
		return owl.DifferentIndividuals{Individuals: ops, Annotations: anns}
	},
}

var classAssertion = singleTriple{
	typ:       owl.AxiomClassAssertion,
	predicate: owl2.RdfType,
	operands: func(ax owl.Axiom) (any, any) {
		a := as[owl.ClassAssertion](ax)
		return a.Individual, a.Class
	},
	accepts: func(r *reader, t rdf.Triple) bool {
		if iri, ok := rdf.IRIOf(t.Object); ok && owl2.IsReservedType(iri) {
			return false
		}
		return r.isIndividual(t.Subject) && r.isClass(t.Object)
	},
	build: func(r *reader, t rdf.Triple, anns owl.Annotations) (owl.Axiom, []provenance.TripleSource, error) {
		i, err := r.individual(t.Subject)
		if err != nil {
			return nil, nil, err
		}
		c, err := r.classExpression(t.Object)
		if err != nil {
			return nil, nil, err
		}
		return owl.ClassAssertion{Class: c.Object(), Individual: i, Annotations: anns}, []provenance.TripleSource{c}, nil
	},
}

// assertion writes (subject property object) with a variable predicate.
type assertion struct {
	typ      owl.AxiomType
	operands func(ax owl.Axiom) (subject, property, object any)
	accepts  acceptFunc
	build    buildFunc
}

func (a assertion) AxiomType() owl.AxiomType { return a.typ }

func (a assertion) Write(g rdf.Graph, ax owl.Axiom) error {
	if err := checkType(a.typ, ax); err != nil {
		return err
	}
	w := newWriter(g, ax)
	s, p, o := a.operands(ax)
	vs, err := nodes(w, []any{s, p, o})
	if err != nil {
		return err
	}
	iri, ok := rdf.IRIOf(vs[1])
	if !ok {
		return illegalArgumentf("assertion property must be named")
	}
	return w.triple(vs[0], iri, vs[2], ax.AxiomAnnotations())
}

func (a assertion) Statements(g rdf.Graph, cfg Config) []rdf.Triple {
	return candidates(newReader(g, cfg), rdf.All(g), a.accepts)
}

func (a assertion) Read(g rdf.Graph, stmt rdf.Triple, cfg Config) (provenance.Wrapped[owl.Axiom], error) {
	return readMain(newAssumingReader(g, cfg), stmt, a.typ, a.accepts, a.build)
}

// objectPropertyAssertion writes an assertion on an inverse property with
// the individuals swapped, so it reads back on the named property.
var objectPropertyAssertion = assertion{
	typ: owl.AxiomObjectPropertyAssertion,
	operands: func(ax owl.Axiom) (any, any, any) {
		a := as[owl.ObjectPropertyAssertion](ax)
		if inv, ok := a.Property.(owl.ObjectInverseOf); ok {
			return a.Object, inv.Property, a.Subject
		}
		return a.Subject, a.Property, a.Object
	},
	accepts: func(r *reader, t rdf.Triple) bool {
		return propertyPredicate(r, t.Predicate, owl.EntityObjectProperty) && r.isIndividual(t.Subject) && r.isIndividual(t.Object)
	},
	build: func(r *reader, t rdf.Triple, anns owl.Annotations) (owl.Axiom, []provenance.TripleSource, error) {
		s, o, _, err := both(individualOperand, r, t)
		if err != nil {
			return nil, nil, err
		}
		p, _ := rdf.IRIOf(t.Predicate)
		return owl.ObjectPropertyAssertion{Property: owl.ObjectProperty(p), Subject: s, Object: o, Annotations: anns}, nil, nil
	},
}

var dataPropertyAssertion = assertion{
	typ: owl.AxiomDataPropertyAssertion,
	operands: func(ax owl.Axiom) (any, any, any) {
		a := as[owl.DataPropertyAssertion](ax)
		return a.Subject, a.Property, a.Value
	},
	accepts: func(r *reader, t rdf.Triple) bool {
		return propertyPredicate(r, t.Predicate, owl.EntityDataProperty) && r.isIndividual(t.Subject) && rdf.IsLiteral(t.Object)
	},
	build: func(r *reader, t rdf.Triple, anns owl.Annotations) (owl.Axiom, []provenance.TripleSource, error) {
		s, err := r.individual(t.Subject)
		if err != nil {
			return nil, nil, err
		}
		v, err := r.literal(t.Object)
		if err != nil {
			return nil, nil, err
		}
		p, _ := rdf.IRIOf(t.Predicate)
		return owl.DataPropertyAssertion{Property: owl.DataProperty(p), Subject: s, Value: v, Annotations: anns}, nil, nil
	},
}

var negativeObjectPropertyAssertion = negativeAssertion{
	typ:    owl.AxiomNegativeObjectPropertyAssertion,
	target: owl2.OwlTargetIndividual,
	operands: func(ax owl.Axiom) (any, any, any) {
		a := as[owl.NegativeObjectPropertyAssertion](ax)
		return a.Subject, a.Property, a.Object
	},
	build: func(e *exprReader, anns owl.Annotations) owl.Axiom {
		return owl.NegativeObjectPropertyAssertion{
			Subject:     e.individual(owl2.OwlSourceIndividual),
			Property:    e.impliedObjectProperty(owl2.OwlAssertionProperty),
			Object:      e.individual(owl2.OwlTargetIndividual),
			Annotations: anns,
		}
	},
}

var negativeDataPropertyAssertion = negativeAssertion{
	typ:    owl.AxiomNegativeDataPropertyAssertion,
	target: owl2.OwlTargetValue,
	operands: func(ax owl.Axiom) (any, any, any) {
		a := as[owl.NegativeDataPropertyAssertion](ax)
		return a.Subject, a.Property, a.Value
	},
	build: func(e *exprReader, anns owl.Annotations) owl.Axiom {
		return owl.NegativeDataPropertyAssertion{
			Subject:     e.individual(owl2.OwlSourceIndividual),
			Property:    e.impliedDataProperty(owl2.OwlAssertionProperty),
			Value:       e.literal(owl2.OwlTargetValue),
			Annotations: anns,
		}
	},
}

// Annotation axioms.

// annotationAssertion also reads the plain annotations reified on a
// declaration as assertions about the declared entity.
type annotationAssertion struct {
	assertion
}

var annotationAssertions = annotationAssertion{assertion{
	typ: owl.AxiomAnnotationAssertion,
	operands: func(ax owl.Axiom) (any, any, any) {
		a := as[owl.AnnotationAssertion](ax)
		return a.Subject, a.Property, a.Value
	},
	accepts: func(r *reader, t rdf.Triple) bool {
		if !propertyPredicate(r, t.Predicate, owl.EntityAnnotationProperty) {
			return false
		}
		return rdf.IsIRI(t.Subject) || (rdf.IsBlank(t.Subject) && !r.isStructural(t.Subject))
	},
	build: func(r *reader, t rdf.Triple, anns owl.Annotations) (owl.Axiom, []provenance.TripleSource, error) {
		s, err := r.annotationSubject(t.Subject)
		if err != nil {
			return nil, nil, err
		}
		v, err := r.annotationValue(t.Object)
		if err != nil {
			return nil, nil, err
		}
		p, _ := rdf.IRIOf(t.Predicate)
		return owl.AnnotationAssertion{Property: owl.AnnotationProperty(p), Subject: s, Value: v, Annotations: anns}, nil, nil
	},
}}

func (a annotationAssertion) Statements(g rdf.Graph, cfg Config) []rdf.Triple {
	out := a.assertion.Statements(g, cfg)
	if !cfg.BulkAnnotationAssertions {
		return out
	}
	r := newReader(g, cfg)
	for _, d := range g.Find(nil, quad.IRI(owl2.RdfType), nil) {
		if !isDeclaration(d) {
			continue
		}
		nodes := r.reifications(owl2.OwlAxiom, d.Subject, d.Predicate, d.Object)
		if !r.bulkDeclaration(d, nodes) {
			continue
		}
		for _, b := range nodes {
			out = append(out, r.annotationTriples(b)...)
		}
	}
	return out
}

func (a annotationAssertion) Read(g rdf.Graph, stmt rdf.Triple, cfg Config) (provenance.Wrapped[owl.Axiom], error) {
	r := newAssumingReader(g, cfg)
	if d, ok := r.bulkSource(stmt.Subject); ok && g.Contains(stmt) && r.isAnnotationPredicate(stmt.Predicate) {
		v, err := r.annotationValue(stmt.Object)
		if err != nil {
			return provenance.Wrapped[owl.Axiom]{}, err
		}
		p, _ := rdf.IRIOf(stmt.Predicate)
		s, _ := rdf.IRIOf(d.Subject)
		ax := owl.AnnotationAssertion{Property: owl.AnnotationProperty(p), Subject: owl.IRI(s), Value: v}
		scaffold := reificationTriples(stmt.Subject, owl2.OwlAxiom, d.Subject, d.Predicate, d.Object)
		return provenance.New[owl.Axiom](ax, stmt).Add(scaffold...), nil
	}
	return a.assertion.Read(g, stmt, cfg)
}

// bulkSource returns the declaration reified by b when its annotations are
// read as annotation assertions.
func (r *reader) bulkSource(b quad.Value) (rdf.Triple, bool) {
	if !r.cfg.BulkAnnotationAssertions || !rdf.IsBlank(b) || !rdf.HasType(r.g, b, owl2.OwlAxiom) {
		return rdf.Triple{}, false
	}
	s, ok1 := rdf.Object(r.g, b, owl2.OwlAnnotatedSource)
	p, ok2 := rdf.Object(r.g, b, owl2.OwlAnnotatedProperty)
	o, ok3 := rdf.Object(r.g, b, owl2.OwlAnnotatedTarget)
	if !ok1 || !ok2 || !ok3 {
		return rdf.Triple{}, false
	}
	d := rdf.NewTriple(s, p, o)
	if !isDeclaration(d) || !r.g.Contains(d) {
		return rdf.Triple{}, false
	}
	return d, r.bulkDeclaration(d, r.reifications(owl2.OwlAxiom, s, p, o))
}

var subAnnotationPropertyOf = singleTriple{
	typ:       owl.AxiomSubAnnotationPropertyOf,
	predicate: owl2.RdfsSubPropertyOf,
	operands: func(ax owl.Axiom) (any, any) {
		a := as[owl.SubAnnotationPropertyOf](ax)
		return a.Sub, a.Super
	},
	accepts: pairOf(entityOf(owl.EntityAnnotationProperty), entityOf(owl.EntityAnnotationProperty)),
	build: func(r *reader, t rdf.Triple, anns owl.Annotations) (owl.Axiom, []provenance.TripleSource, error) {
		sub, err := r.annotationProperty(t.Subject)
		if err != nil {
			return nil, nil, err
		}
		super, err := r.annotationProperty(t.Object)
		return owl.SubAnnotationPropertyOf{Sub: sub, Super: super, Annotations: anns}, nil, err
	},
}

// annotationPropertyTarget builds the domain or range translator for
// annotation properties. The target must be an IRI.
func annotationPropertyTarget(typ owl.AxiomType, predicate string, target func(ax owl.Axiom) (owl.AnnotationProperty, owl.IRI), build func(p owl.AnnotationProperty, iri owl.IRI, anns owl.Annotations) owl.Axiom) singleTriple {
	return singleTriple{
		typ:       typ,
		predicate: predicate,
		operands: func(ax owl.Axiom) (any, any) {
			p, iri := target(ax)
			return p, iri
		},
		accepts: pairOf(entityOf(owl.EntityAnnotationProperty), anyNode),
		build: func(r *reader, t rdf.Triple, anns owl.Annotations) (owl.Axiom, []provenance.TripleSource, error) {
			p, err := r.annotationProperty(t.Subject)
			if err != nil {
				return nil, nil, err
			}
			iri, ok := rdf.IRIOf(t.Object)
			if !ok {
				return nil, nil, translationErrorf("%s of %s must be an IRI, got %s", predicate, p, rdf.TermKey(t.Object))
			}
			return build(p, owl.IRI(iri), anns), nil, nil
		},
	}
}

var annotationPropertyDomain = annotationPropertyTarget(owl.AxiomAnnotationPropertyDomain, owl2.RdfsDomain,
	func(ax owl.Axiom) (owl.AnnotationProperty, owl.IRI) {
		a := as[owl.AnnotationPropertyDomain](ax)
		return a.Property, a.Domain
	},
	func(p owl.AnnotationProperty, iri owl.IRI, anns owl.Annotations) owl.Axiom {
		return owl.AnnotationPropertyDomain{Property: p, Domain: iri, Annotations: anns}
	})

var annotationPropertyRange = annotationPropertyTarget(owl.AxiomAnnotationPropertyRange, owl2.RdfsRange,
	func(ax owl.Axiom) (owl.AnnotationProperty, owl.IRI) {
		a := as[owl.AnnotationPropertyRange](ax)
		return a.Property, a.Range
	},
	func(p owl.AnnotationProperty, iri owl.IRI, anns owl.Annotations) owl.Axiom {
		return owl.AnnotationPropertyRange{Property: p, Range: iri, Annotations: anns}
	})

// anys converts a typed slice for the writer.
func anys[T any](xs []T) []any {
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}
