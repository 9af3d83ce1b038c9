package cql

import "strings"

// Category identifies one clause family of a DML statement. Categories
// render in a fixed order regardless of the order the builder appended
// to them.
type Category int

const (
	Using Category = iota
	Set
	Where
	Cas
)

// Keyword is the literal introducing the category in statement text.
func (c Category) Keyword() string {
	switch c {
	case Using:
		return "USING"
	case Set:
		return "SET"
	case Where:
		return "WHERE"
	case Cas:
		return "IF"
	}
	return ""
}

// Separator joins sibling parts within the category. WHERE and IF
// chains join with AND, USING and SET with commas.
func (c Category) Separator() string {
	switch c {
	case Where, Cas:
		return " AND "
	default:
		return ", "
	}
}

func (c Category) String() string {
	if kw := c.Keyword(); kw != "" {
		return kw
	}
	return "UNKNOWN"
}

// Fragment is an immutable ordered part list for one category. The
// zero value is an empty fragment of the Using category; construct
// with NewFragment for anything else.
type Fragment struct {
	category Category
	parts    []string
}

func NewFragment(c Category) Fragment {
	return Fragment{category: c}
}

func (f Fragment) Category() Category { return f.category }

func (f Fragment) Empty() bool { return len(f.parts) == 0 }

func (f Fragment) Len() int { return len(f.parts) }

// Append returns a new fragment with text as its last part. The
// receiver's backing array is never shared with the result, so a
// fragment held by a branched query cannot observe the append.
func (f Fragment) Append(text string) Fragment {
	parts := make([]string, len(f.parts)+1)
	copy(parts, f.parts)
	parts[len(f.parts)] = text
	return Fragment{category: f.category, parts: parts}
}

// AppendClause appends the clause text unless the clause is skipped.
// Skipped clauses contribute nothing, matching modify-if-changed
// semantics.
func (f Fragment) AppendClause(cl Clause) Fragment {
	if cl.Skipped {
		return f
	}
	return f.Append(cl.Text)
}

// render writes the fragment as " KEYWORD part SEP part ..." or
// nothing when empty.
func (f Fragment) render(sb *strings.Builder) {
	if len(f.parts) == 0 {
		return
	}
	sb.WriteByte(' ')
	sb.WriteString(f.category.Keyword())
	sb.WriteByte(' ')
	sep := f.category.Separator()
	for i, p := range f.parts {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(p)
	}
}

// FragmentSet holds one fragment per category. It is a value type;
// copying it and appending to the copy leaves the original untouched.
type FragmentSet struct {
	Using Fragment
	Set   Fragment
	Where Fragment
	Cas   Fragment
}

func NewFragmentSet() FragmentSet {
	return FragmentSet{
		Using: NewFragment(Using),
		Set:   NewFragment(Set),
		Where: NewFragment(Where),
		Cas:   NewFragment(Cas),
	}
}

// Get returns the fragment for the category.
func (fs FragmentSet) Get(c Category) Fragment {
	switch c {
	case Using:
		return fs.Using
	case Set:
		return fs.Set
	case Where:
		return fs.Where
	case Cas:
		return fs.Cas
	}
	return Fragment{}
}

// With returns a set with the category's fragment replaced.
func (fs FragmentSet) With(f Fragment) FragmentSet {
	switch f.category {
	case Using:
		fs.Using = f
	case Set:
		fs.Set = f
	case Where:
		fs.Where = f
	case Cas:
		fs.Cas = f
	}
	return fs
}

// Assemble renders the final statement text: the base verbatim, then
// each non-empty fragment in fixed category order USING, SET, WHERE,
// IF. The output depends only on the inputs, never on the call history
// that produced them.
func Assemble(base string, fs FragmentSet) string {
	var sb strings.Builder
	sb.WriteString(base)
	fs.Using.render(&sb)
	fs.Set.render(&sb)
	fs.Where.render(&sb)
	fs.Cas.render(&sb)
	return sb.String()
}
