package owl

// Variable is a SWRL variable.
type Variable IRI

func (v Variable) String() string { return render("Variable", nil, IRI(v).String()) }
func (Variable) iArg()            {}
func (Variable) dArg()            {}

// IArg is an individual-valued atom argument: an Individual or a Variable.
type IArg interface {
	String() string
	iArg()
}

// DArg is a data-valued atom argument: a Literal or a Variable.
type DArg interface {
	String() string
	dArg()
}

// Atom is a SWRL atom.
type Atom interface {
	String() string
	atom()
}

// ClassAtom holds when Arg is an instance of Class.
type ClassAtom struct {
	Class ClassExpression
	Arg   IArg
}

func (a ClassAtom) String() string {
	return render("ClassAtom", nil, stringOf(a.Class), stringOf(a.Arg))
}
func (ClassAtom) atom() {}

// DataRangeAtom holds when Arg is in Range.
type DataRangeAtom struct {
	Range DataRange
	Arg   DArg
}

func (a DataRangeAtom) String() string {
	return render("DataRangeAtom", nil, stringOf(a.Range), stringOf(a.Arg))
}
func (DataRangeAtom) atom() {}

// ObjectPropertyAtom holds when Arg1 is related to Arg2 by Property.
type ObjectPropertyAtom struct {
	Property ObjectPropertyExpression
	Arg1     IArg
	Arg2     IArg
}

func (a ObjectPropertyAtom) String() string {
	return render("ObjectPropertyAtom", nil, stringOf(a.Property), stringOf(a.Arg1), stringOf(a.Arg2))
}
func (ObjectPropertyAtom) atom() {}

// DataPropertyAtom holds when Arg1 has data value Arg2 for Property.
type DataPropertyAtom struct {
	Property DataProperty
	Arg1     IArg
	Arg2     DArg
}

func (a DataPropertyAtom) String() string {
	return render("DataPropertyAtom", nil, a.Property.String(), stringOf(a.Arg1), stringOf(a.Arg2))
}
func (DataPropertyAtom) atom() {}

// BuiltInAtom applies a built-in predicate such as swrlb:greaterThan.
type BuiltInAtom struct {
	Builtin IRI
	Args    []DArg
}

func (a BuiltInAtom) String() string {
	return render("BuiltInAtom", nil, append([]string{a.Builtin.String()}, list(a.Args)...)...)
}
func (BuiltInAtom) atom() {}

// SameIndividualAtom holds when both arguments denote the same individual.
type SameIndividualAtom struct {
	Arg1 IArg
	Arg2 IArg
}

func (a SameIndividualAtom) String() string {
	return render("SameIndividualAtom", nil, stringOf(a.Arg1), stringOf(a.Arg2))
}
func (SameIndividualAtom) atom() {}

// DifferentIndividualsAtom holds when the arguments denote different individuals.
type DifferentIndividualsAtom struct {
	Arg1 IArg
	Arg2 IArg
}

func (a DifferentIndividualsAtom) String() string {
	return render("DifferentIndividualsAtom", nil, stringOf(a.Arg1), stringOf(a.Arg2))
}
func (DifferentIndividualsAtom) atom() {}
