package query

import (
	"fmt"
	"strings"

	gocql "github.com/apache/cassandra-gocql-driver/v2"
)

// BatchKind selects the batch log semantics.
type BatchKind int

const (
	LoggedBatch BatchKind = iota
	UnloggedBatch
	CounterBatch
)

func (k BatchKind) String() string {
	switch k {
	case UnloggedBatch:
		return "UNLOGGED"
	case CounterBatch:
		return "COUNTER"
	default:
		return "LOGGED"
	}
}

// GocqlType maps the kind onto the driver's batch type.
func (k BatchKind) GocqlType() gocql.BatchType {
	switch k {
	case UnloggedBatch:
		return gocql.UnloggedBatch
	case CounterBatch:
		return gocql.CounterBatch
	default:
		return gocql.LoggedBatch
	}
}

// Batch collects batchable statements. Like the query phases it is
// immutable: Add returns a new batch.
type Batch struct {
	kind  BatchKind
	stmts []*Statement
	opts  Options
	err   error
}

func NewBatch(kind BatchKind) *Batch {
	return &Batch{kind: kind}
}

// Add appends a statement. Statements that are not batchable record
// ErrNotBatchable, surfaced at Statement and Err.
func (b *Batch) Add(st *Statement) *Batch {
	out := b.clone()
	if !st.Batchable() {
		if out.err == nil {
			out.err = fmt.Errorf("%w: %q", ErrNotBatchable, st.Text)
		}
		return out
	}
	out.stmts = append(out.stmts, st)
	return out
}

func (b *Batch) Consistency(level gocql.Consistency) *Batch {
	out := b.clone()
	if out.opts.consistencySet {
		if out.err == nil {
			out.err = fmt.Errorf("%w (was %s)", ErrConsistencySet, out.opts.Consistency)
		}
		return out
	}
	out.opts.Consistency = level
	out.opts.consistencySet = true
	return out
}

func (b *Batch) clone() *Batch {
	out := *b
	out.stmts = append([]*Statement(nil), b.stmts...)
	return &out
}

func (b *Batch) Kind() BatchKind { return b.kind }

// Statements returns the collected statements in append order.
func (b *Batch) Statements() []*Statement {
	return append([]*Statement(nil), b.stmts...)
}

func (b *Batch) Err() error { return b.err }

// Statement renders BEGIN [UNLOGGED|COUNTER] BATCH ... APPLY BATCH
// with the collected statements in append order. The assembled batch
// is itself not batchable.
func (b *Batch) Statement() (*Statement, error) {
	if b.err != nil {
		return nil, b.err
	}
	var sb strings.Builder
	sb.WriteString("BEGIN ")
	if b.kind != LoggedBatch {
		sb.WriteString(b.kind.String())
		sb.WriteByte(' ')
	}
	sb.WriteString("BATCH")
	for _, st := range b.stmts {
		sb.WriteByte(' ')
		sb.WriteString(st.Text)
		sb.WriteByte(';')
	}
	sb.WriteString(" APPLY BATCH")
	return &Statement{Text: sb.String(), Options: b.opts, batchable: false}, nil
}
