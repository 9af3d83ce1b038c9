package query

import (
	"strings"
	"time"

	gocql "github.com/apache/cassandra-gocql-driver/v2"
	"github.com/websudos/phantom/cql"
	"github.com/websudos/phantom/schema"
)

// DeleteBuilder is the entry phase of a DELETE. A DELETE without a
// WHERE chain is not a valid statement, so the terminals only appear
// once Where has been called.
type DeleteBuilder struct {
	st state
}

// Delete starts a DELETE of whole rows, or of the named columns when
// any are given.
func Delete(t schema.Table, cols ...string) *DeleteBuilder {
	base := "DELETE FROM " + t.QualifiedName()
	if len(cols) > 0 {
		base = "DELETE " + strings.Join(cols, ", ") + " FROM " + t.QualifiedName()
	}
	return &DeleteBuilder{st: newState(base)}
}

// Timestamp appends USING TIMESTAMP with the write time in
// milliseconds.
func (q *DeleteBuilder) Timestamp(millis int64) *DeleteBuilder {
	return &DeleteBuilder{st: q.st.timestamp(millis)}
}

func (q *DeleteBuilder) TimestampAt(t time.Time) *DeleteBuilder {
	return &DeleteBuilder{st: q.st.timestamp(t.UnixMilli())}
}

func (q *DeleteBuilder) Consistency(level gocql.Consistency) *DeleteBuilder {
	return &DeleteBuilder{st: q.st.withConsistency(level)}
}

// Where starts the WHERE chain and unlocks the terminals.
func (q *DeleteBuilder) Where(pred cql.Clause) *DeleteWhere {
	return &DeleteWhere{terminal{q.st.append(cql.Where, pred)}}
}

func (q *DeleteBuilder) Err() error { return q.st.err }

func (q *DeleteBuilder) String() string { return q.st.text() }

// DeleteWhere is a DELETE whose WHERE chain has started.
type DeleteWhere struct {
	terminal
}

func (q *DeleteWhere) And(pred cql.Clause) *DeleteWhere {
	return &DeleteWhere{terminal{q.st.append(cql.Where, pred)}}
}

// OnlyIf moves the delete into the conditional phase.
func (q *DeleteWhere) OnlyIf(pred cql.Clause) *ConditionalQuery {
	return &ConditionalQuery{terminal{q.st.append(cql.Cas, pred)}}
}

func (q *DeleteWhere) IfExists() *ConditionalQuery {
	return &ConditionalQuery{terminal{q.st.append(cql.Cas, cql.Raw("EXISTS"))}}
}

func (q *DeleteWhere) Timestamp(millis int64) *DeleteWhere {
	return &DeleteWhere{terminal{q.st.timestamp(millis)}}
}

func (q *DeleteWhere) TimestampAt(t time.Time) *DeleteWhere {
	return &DeleteWhere{terminal{q.st.timestamp(t.UnixMilli())}}
}

func (q *DeleteWhere) Consistency(level gocql.Consistency) *DeleteWhere {
	return &DeleteWhere{terminal{q.st.withConsistency(level)}}
}
