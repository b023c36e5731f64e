package core

// Well-known columns of the element dataset.
const (
	FieldSymbol       = "Symbol"
	FieldName         = "Element"
	FieldAtomicNumber = "AtomicNumber"
	FieldAtomicMass   = "AtomicMass"
	FieldGroup        = "Group"
	FieldPeriod       = "Period"
)

// DocumentFields lists the columns required by the fixed-column document layout, in order.
var DocumentFields = []string{FieldSymbol, FieldName, FieldAtomicMass, FieldGroup, FieldPeriod}
