package cql

// BindType is the CQL type a caller must supply for one bind marker of
// a prepared statement.
type BindType int

const (
	TypeText BindType = iota
	TypeAscii
	TypeBigInt
	TypeInt
	TypeBoolean
	TypeDouble
	TypeFloat
	TypeTimestamp
	TypeUUID
	TypeTimeUUID
	TypeBlob
	TypeCounter
)

func (t BindType) String() string {
	switch t {
	case TypeText:
		return "text"
	case TypeAscii:
		return "ascii"
	case TypeBigInt:
		return "bigint"
	case TypeInt:
		return "int"
	case TypeBoolean:
		return "boolean"
	case TypeDouble:
		return "double"
	case TypeFloat:
		return "float"
	case TypeTimestamp:
		return "timestamp"
	case TypeUUID:
		return "uuid"
	case TypeTimeUUID:
		return "timeuuid"
	case TypeBlob:
		return "blob"
	case TypeCounter:
		return "counter"
	}
	return "unknown"
}

// Mark records that a value of the given type will be bound at
// execution time where the clause rendered a "?".
type Mark struct {
	Type BindType
}

// Ledger is the per-category record of bind marks, in the order the
// clauses carrying them were appended. Appending returns a new ledger;
// the backing array is never shared.
type Ledger struct {
	marks []Mark
}

func (l Ledger) Append(marks ...Mark) Ledger {
	if len(marks) == 0 {
		return l
	}
	out := make([]Mark, len(l.marks)+len(marks))
	copy(out, l.marks)
	copy(out[len(l.marks):], marks)
	return Ledger{marks: out}
}

func (l Ledger) Len() int { return len(l.marks) }

// Marks returns the recorded marks in append order. The slice is a
// copy; callers may not mutate ledger state through it.
func (l Ledger) Marks() []Mark {
	out := make([]Mark, len(l.marks))
	copy(out, l.marks)
	return out
}

// LedgerSet holds one ledger per category, mirroring FragmentSet.
type LedgerSet struct {
	Using Ledger
	Set   Ledger
	Where Ledger
	Cas   Ledger
}

// Get returns the ledger for the category.
func (ls LedgerSet) Get(c Category) Ledger {
	switch c {
	case Using:
		return ls.Using
	case Set:
		return ls.Set
	case Where:
		return ls.Where
	case Cas:
		return ls.Cas
	}
	return Ledger{}
}

// Record appends marks to the category's ledger and returns the new
// set.
func (ls LedgerSet) Record(c Category, marks ...Mark) LedgerSet {
	switch c {
	case Using:
		ls.Using = ls.Using.Append(marks...)
	case Set:
		ls.Set = ls.Set.Append(marks...)
	case Where:
		ls.Where = ls.Where.Append(marks...)
	case Cas:
		ls.Cas = ls.Cas.Append(marks...)
	}
	return ls
}
