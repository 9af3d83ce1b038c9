// Package phantom is a statically checked CQL query builder. Each
// query phase is a distinct type exposing only the operations legal
// from that phase, so chains like a double WHERE or a Modify after
// OnlyIf do not compile. Builder values are immutable and safe to
// branch from any point.
package phantom

import (
	"context"

	"github.com/websudos/phantom/connector"
	"github.com/websudos/phantom/cql"
	"github.com/websudos/phantom/query"
	"github.com/websudos/phantom/schema"
)

// Re-exported building blocks, so simple callers only import the root
// package.
type (
	Table    = schema.Table
	Column   = schema.Column
	Clause   = cql.Clause
	BindType = cql.BindType

	Statement     = query.Statement
	PreparedBlock = query.PreparedBlock
	Session       = query.Session
)

// Bind is the execution-time binding sentinel.
var Bind = cql.Bind

const (
	TypeText      = cql.TypeText
	TypeBigInt    = cql.TypeBigInt
	TypeInt       = cql.TypeInt
	TypeBoolean   = cql.TypeBoolean
	TypeDouble    = cql.TypeDouble
	TypeTimestamp = cql.TypeTimestamp
	TypeUUID      = cql.TypeUUID
	TypeTimeUUID  = cql.TypeTimeUUID
	TypeBlob      = cql.TypeBlob
)

// NewTable builds a table descriptor bound to a keyspace.
func NewTable(keyspace, name string, cols ...schema.Column) schema.Table {
	return schema.NewTable(keyspace, name, cols...)
}

// Col builds a clause handle for an ad hoc column.
func Col(name string, t cql.BindType) cql.Column {
	return cql.Col(name, t)
}

func Update(t schema.Table) *query.UpdateBuilder { return query.Update(t) }

func Select(t schema.Table, cols ...string) *query.SelectBuilder {
	return query.Select(t, cols...)
}

func Insert(t schema.Table) *query.InsertBuilder { return query.Insert(t) }

func Delete(t schema.Table, cols ...string) *query.DeleteBuilder {
	return query.Delete(t, cols...)
}

func Batch(kind query.BatchKind) *query.Batch { return query.NewBatch(kind) }

// Connect opens a cluster connection whose executor satisfies the
// Session collaborator contract.
func Connect(ctx context.Context, cfg connector.Config) (connector.Connection, error) {
	return connector.Connect(ctx, cfg)
}
