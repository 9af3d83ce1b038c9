package query

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	gocql "github.com/apache/cassandra-gocql-driver/v2"
	"github.com/websudos/phantom/cql"
	"github.com/websudos/phantom/dialect"
	"github.com/websudos/phantom/schema"
)

// InsertBuilder accumulates column/value pairs for an INSERT. The
// statement shape differs from the UPDATE family (the column and value
// lists interleave with the base text, and USING renders last), so it
// renders itself instead of going through the shared assembler; only
// the USING fragment and ledger are reused.
type InsertBuilder struct {
	table    string
	cols     []string
	vals     []string
	marks    []cql.Mark
	notExist bool
	using    cql.Fragment
	usingLed cql.Ledger
	opts     Options
	err      error
}

// Insert starts an INSERT into the table descriptor.
func Insert(t schema.Table) *InsertBuilder {
	return &InsertBuilder{
		table: t.QualifiedName(),
		using: cql.NewFragment(cql.Using),
	}
}

// clone copies the builder with room for one more column/value pair.
// Slices are never shared between the receiver and the result.
func (q *InsertBuilder) clone() *InsertBuilder {
	out := *q
	out.cols = append([]string(nil), q.cols...)
	out.vals = append([]string(nil), q.vals...)
	out.marks = append([]cql.Mark(nil), q.marks...)
	return &out
}

// Value adds a column/value pair. Passing cql.Bind renders a marker
// and records a mark of the column's type.
func (q *InsertBuilder) Value(col cql.Column, v any) *InsertBuilder {
	out := q.clone()
	out.cols = append(out.cols, col.Name)
	if cql.IsBind(v) {
		out.vals = append(out.vals, dialect.Default.Placeholder())
		out.marks = append(out.marks, cql.Mark{Type: col.Type})
		return out
	}
	out.vals = append(out.vals, dialect.Default.RenderValue(v))
	return out
}

// Generated adds a column populated from a client-side ID generator.
// Generator failures are recorded and surface at the terminals.
func (q *InsertBuilder) Generated(col cql.Column, gen schema.IDGenerator) *InsertBuilder {
	id, err := gen.Generate()
	if err != nil {
		out := q.clone()
		if out.err == nil {
			out.err = fmt.Errorf("phantom: generating %s value for %s: %w", gen.Type(), col.Name, err)
		}
		return out
	}
	return q.Value(col, id)
}

// IfNotExists makes the insert a lightweight transaction.
func (q *InsertBuilder) IfNotExists() *InsertBuilder {
	out := q.clone()
	out.notExist = true
	return out
}

func (q *InsertBuilder) TTL(seconds int64) *InsertBuilder {
	out := q.clone()
	out.using = out.using.Append("TTL " + strconv.FormatInt(seconds, 10))
	return out
}

// TTLDuration truncates to whole seconds; durations under one second
// render TTL 0, which Cassandra treats as no TTL.
func (q *InsertBuilder) TTLDuration(d time.Duration) *InsertBuilder {
	return q.TTL(int64(d / time.Second))
}

func (q *InsertBuilder) TTLBind() *InsertBuilder {
	out := q.clone()
	out.using = out.using.Append("TTL ?")
	out.usingLed = out.usingLed.Append(cql.Mark{Type: cql.TypeBigInt})
	return out
}

func (q *InsertBuilder) Timestamp(millis int64) *InsertBuilder {
	out := q.clone()
	out.using = out.using.Append("TIMESTAMP " + strconv.FormatInt(millis, 10))
	return out
}

func (q *InsertBuilder) Consistency(level gocql.Consistency) *InsertBuilder {
	out := q.clone()
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

func (q *InsertBuilder) Err() error { return q.err }

func (q *InsertBuilder) String() string {
	text, _ := q.render(nil)
	return text
}

// render assembles INSERT INTO t (cols) VALUES (vals)
// [IF NOT EXISTS] [USING ...]; INSERT is the one statement shape where
// USING trails the conditional.
func (q *InsertBuilder) render(sess Session) (string, Options) {
	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(q.table)
	sb.WriteString(" (")
	sb.WriteString(strings.Join(q.cols, ", "))
	sb.WriteString(") VALUES (")
	sb.WriteString(strings.Join(q.vals, ", "))
	sb.WriteString(")")
	if q.notExist {
		sb.WriteString(" IF NOT EXISTS")
	}
	using := q.using
	opts := q.opts
	if opts.consistencySet && sess != nil && !sess.SupportsOutOfBandConsistency() {
		using = using.Append("CONSISTENCY " + opts.Consistency.String())
		opts.consistencySet = false
		opts.Consistency = 0
	}
	return cql.Assemble(sb.String(), cql.FragmentSet{}.With(using)), opts
}

// bindTypes lists the value marks in column order followed by the
// USING marks, matching left-to-right marker order in the rendered
// text.
func (q *InsertBuilder) bindTypes() ([]cql.BindType, error) {
	var out []cql.BindType
	for _, m := range q.marks {
		out = append(out, m.Type)
	}
	for _, m := range q.usingLed.Marks() {
		out = append(out, m.Type)
	}
	if len(out) == 0 {
		return nil, ErrNothingToBind
	}
	return out, nil
}

func (q *InsertBuilder) Statement() (*Statement, error) {
	if q.err != nil {
		return nil, q.err
	}
	text, opts := q.render(nil)
	return &Statement{Text: text, Options: opts, batchable: true}, nil
}

func (q *InsertBuilder) StatementFor(sess Session) (*Statement, error) {
	if q.err != nil {
		return nil, q.err
	}
	text, opts := q.render(sess)
	return &Statement{Text: text, Options: opts, batchable: true}, nil
}

func (q *InsertBuilder) Prepare(ctx context.Context, sess Session) (*PreparedBlock, error) {
	if q.err != nil {
		return nil, q.err
	}
	types, err := q.bindTypes()
	if err != nil {
		return nil, err
	}
	text, opts := q.render(sess)
	handle, proto, err := sess.Prepare(ctx, text)
	if err != nil {
		return nil, err
	}
	return &PreparedBlock{Text: text, Handle: handle, Proto: proto, Options: opts, BindTypes: types}, nil
}

func (q *InsertBuilder) PrepareAsync(ctx context.Context, sess Session) <-chan PrepareResult {
	ch := make(chan PrepareResult, 1)
	if q.err != nil {
		ch <- PrepareResult{Err: q.err}
		close(ch)
		return ch
	}
	types, err := q.bindTypes()
	if err != nil {
		ch <- PrepareResult{Err: err}
		close(ch)
		return ch
	}
	text, opts := q.render(sess)
	outcomes := sess.PrepareAsync(ctx, text)
	go func() {
		defer close(ch)
		out, ok := <-outcomes
		if !ok {
			ch <- PrepareResult{Err: fmt.Errorf("phantom: session closed prepare channel for %q", text)}
			return
		}
		if out.Err != nil {
			ch <- PrepareResult{Err: out.Err}
			return
		}
		ch <- PrepareResult{Block: &PreparedBlock{
			Text: text, Handle: out.Handle, Proto: out.Proto, Options: opts, BindTypes: types,
		}}
	}()
	return ch
}
