package schema

import (
	"strings"
	"unicode"

	pluralizer "github.com/gertd/go-pluralize"
)

// pluralizeClient is a singleton so table-name derivation is stable
// across descriptors.
var pluralizeClient = pluralizer.NewClient()

// NamingStrategy converts Go identifiers into keyspace object names.
type NamingStrategy interface {
	// TableName converts a record type name to a table name.
	TableName(structName string) string
	// ColumnName converts a field name to a column name.
	ColumnName(fieldName string) string
}

// SnakeCaseNaming is the default strategy: snake_case columns, with
// optional pluralized table names ("UserProfile" -> "user_profiles").
type SnakeCaseNaming struct {
	PluralTables bool
}

func DefaultNaming() NamingStrategy {
	return SnakeCaseNaming{PluralTables: true}
}

func (s SnakeCaseNaming) TableName(structName string) string {
	name := toSnakeCase(structName)
	if s.PluralTables {
		name = pluralizeClient.Plural(name)
	}
	return name
}

func (s SnakeCaseNaming) ColumnName(fieldName string) string {
	return toSnakeCase(fieldName)
}

// commonInitialisms maps identifiers that would otherwise split badly.
var commonInitialisms = map[string]string{
	"ID":   "id",
	"UUID": "uuid",
	"URL":  "url",
	"API":  "api",
	"JSON": "json",
	"CQL":  "cql",
	"TTL":  "ttl",
}

func toSnakeCase(name string) string {
	if name == "" {
		return ""
	}
	if mapped, ok := commonInitialisms[name]; ok {
		return mapped
	}
	// already snake_case
	if strings.Contains(name, "_") && !hasUpperCase(name) {
		return strings.ToLower(name)
	}

	runes := []rune(name)
	var sb strings.Builder
	sb.Grow(len(runes) + 4)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			// break before an upper rune that starts a new word:
			// aB -> a_b, and the last upper of an acronym run
			// followed by a lower: IDValue -> id_value
			if i > 0 && (unicode.IsLower(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				sb.WriteByte('_')
			}
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func hasUpperCase(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
