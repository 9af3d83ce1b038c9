package query

import (
	"context"
	"strconv"
	"strings"

	gocql "github.com/apache/cassandra-gocql-driver/v2"
	"github.com/websudos/phantom/cql"
	"github.com/websudos/phantom/schema"
)

// Ordering is one ORDER BY entry.
type Ordering struct {
	col  string
	desc bool
}

func Asc(col string) Ordering  { return Ordering{col: col} }
func Desc(col string) Ordering { return Ordering{col: col, desc: true} }

func (o Ordering) render() string {
	if o.desc {
		return o.col + " DESC"
	}
	return o.col + " ASC"
}

// SelectBuilder is the entry phase of a SELECT statement. SELECTs ride
// the same fragment machinery as the UPDATE machine but only populate
// the WHERE category; ORDER BY, LIMIT and ALLOW FILTERING render as
// trailing clauses in call order.
type SelectBuilder struct {
	st state
}

// Select starts a SELECT of the given columns, or of * when none are
// named.
func Select(t schema.Table, cols ...string) *SelectBuilder {
	list := "*"
	if len(cols) > 0 {
		list = strings.Join(cols, ", ")
	}
	return &SelectBuilder{st: newState("SELECT " + list + " FROM " + t.QualifiedName())}
}

// SelectCount starts a SELECT COUNT(*).
func SelectCount(t schema.Table) *SelectBuilder {
	return &SelectBuilder{st: newState("SELECT COUNT(*) FROM " + t.QualifiedName())}
}

// Where starts the WHERE chain; the returned phase has no Where
// method.
func (q *SelectBuilder) Where(pred cql.Clause) *SelectWhere {
	return &SelectWhere{st: q.st.append(cql.Where, pred)}
}

func (q *SelectBuilder) OrderBy(ords ...Ordering) *SelectBuilder {
	return &SelectBuilder{st: q.st.appendSuffix(renderOrderBy(ords))}
}

func (q *SelectBuilder) Limit(n int) *SelectBuilder {
	return &SelectBuilder{st: q.st.appendSuffix("LIMIT " + strconv.Itoa(n))}
}

func (q *SelectBuilder) AllowFiltering() *SelectBuilder {
	return &SelectBuilder{st: q.st.appendSuffix("ALLOW FILTERING")}
}

func (q *SelectBuilder) Consistency(level gocql.Consistency) *SelectBuilder {
	return &SelectBuilder{st: q.st.withConsistency(level)}
}

func (q *SelectBuilder) Err() error { return q.st.err }

func (q *SelectBuilder) String() string { return q.st.text() }

// Statement produces the executable statement. SELECTs are not
// batchable.
func (q *SelectBuilder) Statement() (*Statement, error) {
	return q.st.statement(false)
}

func (q *SelectBuilder) StatementFor(sess Session) (*Statement, error) {
	return selectStatementFor(q.st, sess)
}

func (q *SelectBuilder) Prepare(ctx context.Context, sess Session) (*PreparedBlock, error) {
	return q.st.prepare(ctx, sess)
}

func (q *SelectBuilder) PrepareAsync(ctx context.Context, sess Session) <-chan PrepareResult {
	return q.st.prepareAsync(ctx, sess)
}

// SelectWhere is a SELECT whose WHERE chain has started.
type SelectWhere struct {
	st state
}

func (q *SelectWhere) And(pred cql.Clause) *SelectWhere {
	return &SelectWhere{st: q.st.append(cql.Where, pred)}
}

func (q *SelectWhere) OrderBy(ords ...Ordering) *SelectWhere {
	return &SelectWhere{st: q.st.appendSuffix(renderOrderBy(ords))}
}

func (q *SelectWhere) Limit(n int) *SelectWhere {
	return &SelectWhere{st: q.st.appendSuffix("LIMIT " + strconv.Itoa(n))}
}

func (q *SelectWhere) AllowFiltering() *SelectWhere {
	return &SelectWhere{st: q.st.appendSuffix("ALLOW FILTERING")}
}

func (q *SelectWhere) Consistency(level gocql.Consistency) *SelectWhere {
	return &SelectWhere{st: q.st.withConsistency(level)}
}

func (q *SelectWhere) Err() error { return q.st.err }

func (q *SelectWhere) String() string { return q.st.text() }

func (q *SelectWhere) Statement() (*Statement, error) {
	return q.st.statement(false)
}

func (q *SelectWhere) StatementFor(sess Session) (*Statement, error) {
	return selectStatementFor(q.st, sess)
}

func (q *SelectWhere) Prepare(ctx context.Context, sess Session) (*PreparedBlock, error) {
	return q.st.prepare(ctx, sess)
}

func (q *SelectWhere) PrepareAsync(ctx context.Context, sess Session) <-chan PrepareResult {
	return q.st.prepareAsync(ctx, sess)
}

func renderOrderBy(ords []Ordering) string {
	parts := make([]string, len(ords))
	for i, o := range ords {
		parts[i] = o.render()
	}
	return "ORDER BY " + strings.Join(parts, ", ")
}

func selectStatementFor(s state, sess Session) (*Statement, error) {
	if s.err != nil {
		return nil, s.err
	}
	text, opts := s.renderFor(sess)
	return &Statement{Text: text, Options: opts, batchable: false}, nil
}
