package cql

import (
	"strings"

	"github.com/websudos/phantom/dialect"
)

// Clause is one rendered predicate or assignment. Skipped clauses
// contribute no text and no marks when appended to a fragment. Marks
// lists the bind marks the clause introduced, in left-to-right text
// order.
type Clause struct {
	Text    string
	Skipped bool
	Marks   []Mark
}

// Raw wraps already-rendered clause text. The caller owns escaping.
func Raw(text string) Clause {
	return Clause{Text: text}
}

// bindMarker is the sentinel callers pass in place of a value to
// render a "?" and record a typed mark.
type bindMarker struct{}

// Bind marks a clause position for execution-time binding.
var Bind bindMarker

// IsBind reports whether v is the Bind sentinel.
func IsBind(v any) bool {
	_, ok := v.(bindMarker)
	return ok
}

// Column names a table column together with its CQL type. The type
// seeds the mark recorded when a predicate or assignment against the
// column uses Bind.
type Column struct {
	Name string
	Type BindType
}

func Col(name string, t BindType) Column {
	return Column{Name: name, Type: t}
}

func (c Column) cmp(op string, v any) Clause {
	if _, ok := v.(bindMarker); ok {
		return Clause{
			Text:  c.Name + " " + op + " " + dialect.Default.Placeholder(),
			Marks: []Mark{{Type: c.Type}},
		}
	}
	return Clause{Text: c.Name + " " + op + " " + dialect.Default.RenderValue(v)}
}

// Eq renders "name = v", or "name = ?" with a recorded mark when v is
// Bind.
func (c Column) Eq(v any) Clause  { return c.cmp("=", v) }
func (c Column) Gt(v any) Clause  { return c.cmp(">", v) }
func (c Column) Gte(v any) Clause { return c.cmp(">=", v) }
func (c Column) Lt(v any) Clause  { return c.cmp("<", v) }
func (c Column) Lte(v any) Clause { return c.cmp("<=", v) }

// In renders "name IN (v, v, ...)". Bind markers are legal among the
// values and record one mark each.
func (c Column) In(vs ...any) Clause {
	parts := make([]string, len(vs))
	var marks []Mark
	for i, v := range vs {
		if _, ok := v.(bindMarker); ok {
			parts[i] = dialect.Default.Placeholder()
			marks = append(marks, Mark{Type: c.Type})
			continue
		}
		parts[i] = dialect.Default.RenderValue(v)
	}
	return Clause{
		Text:  c.Name + " IN (" + strings.Join(parts, ", ") + ")",
		Marks: marks,
	}
}

// SetTo renders the assignment "name = v" for a SET fragment.
func (c Column) SetTo(v any) Clause { return c.cmp("=", v) }

// SetToIf is SetTo with modify-if-changed semantics: when apply is
// false the clause is skipped and renders nothing.
func (c Column) SetToIf(v any, apply bool) Clause {
	cl := c.SetTo(v)
	cl.Skipped = !apply
	return cl
}

// Increment renders "name = name + n" for counter columns.
func (c Column) Increment(n int64) Clause {
	return Clause{Text: c.Name + " = " + c.Name + " + " + dialect.Default.RenderValue(n)}
}

// Decrement renders "name = name - n" for counter columns.
func (c Column) Decrement(n int64) Clause {
	return Clause{Text: c.Name + " = " + c.Name + " - " + dialect.Default.RenderValue(n)}
}
