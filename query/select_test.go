package query

import (
	"context"
	"testing"

	gocql "github.com/apache/cassandra-gocql-driver/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/websudos/phantom/cql"
)

func TestSelectRendersColumnList(t *testing.T) {
	tbl := usersTable()

	assert.Equal(t, "SELECT * FROM ks.t", Select(tbl).String())
	assert.Equal(t, "SELECT id, name FROM ks.t", Select(tbl, "id", "name").String())
	assert.Equal(t, "SELECT COUNT(*) FROM ks.t", SelectCount(tbl).String())
}

func TestSelectWhereChain(t *testing.T) {
	tbl := usersTable()

	q := Select(tbl, "name").
		Where(tbl.Col("id").Eq(5)).
		And(tbl.Col("age").Gte(18))

	assert.Equal(t, "SELECT name FROM ks.t WHERE id = 5 AND age >= 18", q.String())
}

func TestSelectTrailingClausesRenderInCallOrder(t *testing.T) {
	tbl := usersTable()

	q := Select(tbl).
		Where(tbl.Col("id").Eq(5)).
		OrderBy(Desc("seen"), Asc("name")).
		Limit(10).
		AllowFiltering()

	assert.Equal(t,
		"SELECT * FROM ks.t WHERE id = 5 ORDER BY seen DESC, name ASC LIMIT 10 ALLOW FILTERING",
		q.String())
}

func TestSelectIsNotBatchable(t *testing.T) {
	tbl := usersTable()

	st, err := Select(tbl).Where(tbl.Col("id").Eq(5)).Statement()
	require.NoError(t, err)
	assert.False(t, st.Batchable())
}

func TestSelectPrepareBindOrder(t *testing.T) {
	tbl := usersTable()
	sess := &fakeSession{oob: true}

	blk, err := Select(tbl).
		Where(tbl.Col("id").Eq(cql.Bind)).
		And(tbl.Col("name").Eq(cql.Bind)).
		Limit(1).
		Prepare(context.Background(), sess)
	require.NoError(t, err)

	assert.Equal(t, "SELECT * FROM ks.t WHERE id = ? AND name = ? LIMIT 1", blk.Text)
	assert.Equal(t, []cql.BindType{cql.TypeBigInt, cql.TypeText}, blk.BindTypes)
}

func TestSelectBuilderBranchesIndependently(t *testing.T) {
	tbl := usersTable()

	base := Select(tbl).Where(tbl.Col("id").Eq(5))
	limited := base.Limit(1)
	filtered := base.AllowFiltering()

	assert.Equal(t, "SELECT * FROM ks.t WHERE id = 5", base.String())
	assert.Equal(t, "SELECT * FROM ks.t WHERE id = 5 LIMIT 1", limited.String())
	assert.Equal(t, "SELECT * FROM ks.t WHERE id = 5 ALLOW FILTERING", filtered.String())
}

func TestSelectConsistencyFallbackRendersUsing(t *testing.T) {
	tbl := usersTable()
	sess := &fakeSession{oob: false}

	st, err := Select(tbl).
		Where(tbl.Col("id").Eq(5)).
		Consistency(gocql.LocalQuorum).
		StatementFor(sess)
	require.NoError(t, err)

	assert.Equal(t, "SELECT * FROM ks.t USING CONSISTENCY LOCAL_QUORUM WHERE id = 5", st.Text)
}

func TestSelectDoubleConsistencyIsRejected(t *testing.T) {
	tbl := usersTable()

	q := Select(tbl).
		Consistency(gocql.One).
		Consistency(gocql.Two)
	assert.ErrorIs(t, q.Err(), ErrConsistencySet)

	_, err := q.Statement()
	assert.ErrorIs(t, err, ErrConsistencySet)
}
