package dialect

// Dialect captures the rendering rules for a target query language:
// identifier quoting, the positional bind marker, and value literals.
// The builder core targets CQL, but literal formatting stays behind
// this interface so the clause model never hand-rolls escaping.
type Dialect interface {
	QuoteIdentifier(name string) string
	Placeholder() string
	RenderValue(v any) string
}

// Default is the dialect used by clause constructors that are not
// handed an explicit one.
var Default Dialect = NewCassandraDialect()
