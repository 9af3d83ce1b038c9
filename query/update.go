package query

import (
	"time"

	gocql "github.com/apache/cassandra-gocql-driver/v2"
	"github.com/websudos/phantom/cql"
	"github.com/websudos/phantom/schema"
)

// The UPDATE machine encodes each query phase as a distinct type so
// that an illegal chain does not compile. The phases:
//
//	UpdateBuilder    fresh statement; no WHERE, no SET
//	UpdateWhere      WHERE chain started; only And extends it
//	AssignmentsQuery SET chain started; WHERE not yet started
//	AssignmentsWhere SET and WHERE both started
//	ConditionalQuery IF chain active; permanently conditional
//
// There is no Where method on UpdateWhere or AssignmentsWhere, no
// Modify on ConditionalQuery, and no And anywhere a chain has not
// started. Every method returns a fresh value; the receiver is never
// mutated.

// UpdateBuilder is the entry phase of an UPDATE statement.
type UpdateBuilder struct {
	st state
}

// Update starts an UPDATE against the table descriptor.
func Update(t schema.Table) *UpdateBuilder {
	return &UpdateBuilder{st: newState("UPDATE " + t.QualifiedName())}
}

// Where starts the WHERE chain. The returned phase has no Where
// method, so a second WHERE on this lineage cannot be expressed.
func (q *UpdateBuilder) Where(pred cql.Clause) *UpdateWhere {
	return &UpdateWhere{terminal{q.st.append(cql.Where, pred)}}
}

// Modify starts the SET chain and moves to the assignments phase.
func (q *UpdateBuilder) Modify(assignment cql.Clause) *AssignmentsQuery {
	return &AssignmentsQuery{terminal{q.st.append(cql.Set, assignment)}}
}

// OnlyIf starts the IF chain and moves permanently to the conditional
// phase.
func (q *UpdateBuilder) OnlyIf(pred cql.Clause) *ConditionalQuery {
	return &ConditionalQuery{terminal{q.st.append(cql.Cas, pred)}}
}

// IfExists is OnlyIf with the fixed existence predicate.
func (q *UpdateBuilder) IfExists() *ConditionalQuery {
	return &ConditionalQuery{terminal{q.st.append(cql.Cas, cql.Raw("EXISTS"))}}
}

// TTL appends a USING TTL directive.
func (q *UpdateBuilder) TTL(seconds int64) *UpdateBuilder {
	return &UpdateBuilder{q.st.ttl(cql.Using, seconds)}
}

// TTLDuration is TTL with the duration truncated to whole seconds.
// Durations under one second render TTL 0, which Cassandra treats as
// no TTL.
func (q *UpdateBuilder) TTLDuration(d time.Duration) *UpdateBuilder {
	return &UpdateBuilder{q.st.ttlDuration(cql.Using, d)}
}

// TTLBind appends USING TTL ? and records a bigint bind mark.
func (q *UpdateBuilder) TTLBind() *UpdateBuilder {
	return &UpdateBuilder{q.st.ttlBind(cql.Using)}
}

// Consistency sets the consistency level for the chain. Setting it
// twice records ErrConsistencySet, returned by Err and the terminals.
func (q *UpdateBuilder) Consistency(level gocql.Consistency) *UpdateBuilder {
	return &UpdateBuilder{q.st.withConsistency(level)}
}

func (q *UpdateBuilder) Err() error { return q.st.err }

func (q *UpdateBuilder) String() string { return q.st.text() }

// UpdateWhere is an UPDATE whose WHERE chain has started.
type UpdateWhere struct {
	terminal
}

// And appends another WHERE predicate.
func (q *UpdateWhere) And(pred cql.Clause) *UpdateWhere {
	return &UpdateWhere{terminal{q.st.append(cql.Where, pred)}}
}

// Modify starts the SET chain; the WHERE chain is carried over and
// stays closed to further predicates except through And on the result.
func (q *UpdateWhere) Modify(assignment cql.Clause) *AssignmentsWhere {
	return &AssignmentsWhere{terminal{q.st.append(cql.Set, assignment)}}
}

func (q *UpdateWhere) OnlyIf(pred cql.Clause) *ConditionalQuery {
	return &ConditionalQuery{terminal{q.st.append(cql.Cas, pred)}}
}

func (q *UpdateWhere) IfExists() *ConditionalQuery {
	return &ConditionalQuery{terminal{q.st.append(cql.Cas, cql.Raw("EXISTS"))}}
}

func (q *UpdateWhere) TTL(seconds int64) *UpdateWhere {
	return &UpdateWhere{terminal{q.st.ttl(cql.Using, seconds)}}
}

func (q *UpdateWhere) TTLDuration(d time.Duration) *UpdateWhere {
	return &UpdateWhere{terminal{q.st.ttlDuration(cql.Using, d)}}
}

func (q *UpdateWhere) TTLBind() *UpdateWhere {
	return &UpdateWhere{terminal{q.st.ttlBind(cql.Using)}}
}

func (q *UpdateWhere) Consistency(level gocql.Consistency) *UpdateWhere {
	return &UpdateWhere{terminal{q.st.withConsistency(level)}}
}

// AssignmentsQuery is an UPDATE whose SET chain has started and whose
// WHERE chain has not.
type AssignmentsQuery struct {
	terminal
}

// And appends another assignment to the SET chain.
func (q *AssignmentsQuery) And(assignment cql.Clause) *AssignmentsQuery {
	return &AssignmentsQuery{terminal{q.st.append(cql.Set, assignment)}}
}

// Where starts the WHERE chain.
func (q *AssignmentsQuery) Where(pred cql.Clause) *AssignmentsWhere {
	return &AssignmentsWhere{terminal{q.st.append(cql.Where, pred)}}
}

func (q *AssignmentsQuery) OnlyIf(pred cql.Clause) *ConditionalQuery {
	return &ConditionalQuery{terminal{q.st.append(cql.Cas, pred)}}
}

func (q *AssignmentsQuery) IfExists() *ConditionalQuery {
	return &ConditionalQuery{terminal{q.st.append(cql.Cas, cql.Raw("EXISTS"))}}
}

// TTL in the assignments phase renders into the SET fragment rather
// than USING. This per-phase divergence is intentional and preserved;
// do not unify with the plain-phase path.
func (q *AssignmentsQuery) TTL(seconds int64) *AssignmentsQuery {
	return &AssignmentsQuery{terminal{q.st.ttl(cql.Set, seconds)}}
}

func (q *AssignmentsQuery) TTLDuration(d time.Duration) *AssignmentsQuery {
	return &AssignmentsQuery{terminal{q.st.ttlDuration(cql.Set, d)}}
}

func (q *AssignmentsQuery) TTLBind() *AssignmentsQuery {
	return &AssignmentsQuery{terminal{q.st.ttlBind(cql.Set)}}
}

// Timestamp appends USING TIMESTAMP with the write time in
// milliseconds.
func (q *AssignmentsQuery) Timestamp(millis int64) *AssignmentsQuery {
	return &AssignmentsQuery{terminal{q.st.timestamp(millis)}}
}

func (q *AssignmentsQuery) TimestampAt(t time.Time) *AssignmentsQuery {
	return &AssignmentsQuery{terminal{q.st.timestamp(t.UnixMilli())}}
}

func (q *AssignmentsQuery) Consistency(level gocql.Consistency) *AssignmentsQuery {
	return &AssignmentsQuery{terminal{q.st.withConsistency(level)}}
}

// AssignmentsWhere is an UPDATE with both SET and WHERE chains
// started. And extends WHERE; the SET chain is closed.
type AssignmentsWhere struct {
	terminal
}

func (q *AssignmentsWhere) And(pred cql.Clause) *AssignmentsWhere {
	return &AssignmentsWhere{terminal{q.st.append(cql.Where, pred)}}
}

func (q *AssignmentsWhere) OnlyIf(pred cql.Clause) *ConditionalQuery {
	return &ConditionalQuery{terminal{q.st.append(cql.Cas, pred)}}
}

func (q *AssignmentsWhere) IfExists() *ConditionalQuery {
	return &ConditionalQuery{terminal{q.st.append(cql.Cas, cql.Raw("EXISTS"))}}
}

// TTL renders into the SET fragment; see AssignmentsQuery.TTL.
func (q *AssignmentsWhere) TTL(seconds int64) *AssignmentsWhere {
	return &AssignmentsWhere{terminal{q.st.ttl(cql.Set, seconds)}}
}

func (q *AssignmentsWhere) TTLDuration(d time.Duration) *AssignmentsWhere {
	return &AssignmentsWhere{terminal{q.st.ttlDuration(cql.Set, d)}}
}

func (q *AssignmentsWhere) TTLBind() *AssignmentsWhere {
	return &AssignmentsWhere{terminal{q.st.ttlBind(cql.Set)}}
}

func (q *AssignmentsWhere) Timestamp(millis int64) *AssignmentsWhere {
	return &AssignmentsWhere{terminal{q.st.timestamp(millis)}}
}

func (q *AssignmentsWhere) TimestampAt(t time.Time) *AssignmentsWhere {
	return &AssignmentsWhere{terminal{q.st.timestamp(t.UnixMilli())}}
}

func (q *AssignmentsWhere) Consistency(level gocql.Consistency) *AssignmentsWhere {
	return &AssignmentsWhere{terminal{q.st.withConsistency(level)}}
}

// ConditionalQuery is a query whose IF chain is active. The operation
// set is strictly narrower than any other phase: only further IF
// predicates, TTL, a consistency level, and the terminals. There is no
// way back to Modify or Where.
type ConditionalQuery struct {
	terminal
}

// And appends another IF predicate.
func (q *ConditionalQuery) And(pred cql.Clause) *ConditionalQuery {
	return &ConditionalQuery{terminal{q.st.append(cql.Cas, pred)}}
}

func (q *ConditionalQuery) TTL(seconds int64) *ConditionalQuery {
	return &ConditionalQuery{terminal{q.st.ttl(cql.Using, seconds)}}
}

func (q *ConditionalQuery) TTLDuration(d time.Duration) *ConditionalQuery {
	return &ConditionalQuery{terminal{q.st.ttlDuration(cql.Using, d)}}
}

func (q *ConditionalQuery) TTLBind() *ConditionalQuery {
	return &ConditionalQuery{terminal{q.st.ttlBind(cql.Using)}}
}

func (q *ConditionalQuery) Consistency(level gocql.Consistency) *ConditionalQuery {
	return &ConditionalQuery{terminal{q.st.withConsistency(level)}}
}
