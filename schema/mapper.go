package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// Row is one raw result row keyed by column name.
type Row map[string]any

// MapFunc populates dest (a pointer to a record) from a raw row.
type MapFunc func(row Row, dest any) error

// RowMapper is the contract for the row-to-record derivation layer.
// Given a record shape and the table's column shape it produces a
// mapping function, or an UnmatchedFieldsError naming every field no
// column unambiguously covers. Implementations live outside this
// module; the query builder only hands rows across this boundary.
type RowMapper interface {
	Mapper(t Table, recordType reflect.Type) (MapFunc, error)
}

// UnmatchedFieldsError reports the record fields a table's columns
// could not be mapped onto.
type UnmatchedFieldsError struct {
	Table  string
	Fields []string
}

func (e *UnmatchedFieldsError) Error() string {
	return fmt.Sprintf("no column in %s matches record fields: %s",
		e.Table, strings.Join(e.Fields, ", "))
}
