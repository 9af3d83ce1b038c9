package query

import (
	"testing"

	gocql "github.com/apache/cassandra-gocql-driver/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchRendersStatementsInAppendOrder(t *testing.T) {
	tbl := usersTable()

	first, err := Update(tbl).
		Modify(tbl.Col("name").SetTo("a")).
		Where(tbl.Col("id").Eq(1)).
		Statement()
	require.NoError(t, err)
	second, err := Insert(tbl).
		Value(tbl.Col("id"), 2).
		Statement()
	require.NoError(t, err)

	st, err := NewBatch(LoggedBatch).Add(first).Add(second).Statement()
	require.NoError(t, err)
	assert.Equal(t,
		"BEGIN BATCH UPDATE ks.t SET name = 'a' WHERE id = 1; INSERT INTO ks.t (id) VALUES (2); APPLY BATCH",
		st.Text)
	assert.False(t, st.Batchable(), "a batch cannot nest inside another batch")
}

func TestBatchKindPrefixes(t *testing.T) {
	tbl := usersTable()
	inner, err := Insert(tbl).Value(tbl.Col("id"), 1).Statement()
	require.NoError(t, err)

	unlogged, err := NewBatch(UnloggedBatch).Add(inner).Statement()
	require.NoError(t, err)
	assert.Contains(t, unlogged.Text, "BEGIN UNLOGGED BATCH")

	counter, err := NewBatch(CounterBatch).Add(inner).Statement()
	require.NoError(t, err)
	assert.Contains(t, counter.Text, "BEGIN COUNTER BATCH")
}

func TestBatchRejectsNonBatchableStatements(t *testing.T) {
	tbl := usersTable()

	sel, err := Select(tbl).Where(tbl.Col("id").Eq(1)).Statement()
	require.NoError(t, err)

	b := NewBatch(LoggedBatch).Add(sel)
	assert.ErrorIs(t, b.Err(), ErrNotBatchable)

	_, err = b.Statement()
	assert.ErrorIs(t, err, ErrNotBatchable)
}

func TestBatchAddIsImmutable(t *testing.T) {
	tbl := usersTable()
	inner, err := Insert(tbl).Value(tbl.Col("id"), 1).Statement()
	require.NoError(t, err)

	base := NewBatch(LoggedBatch)
	withOne := base.Add(inner)

	assert.Empty(t, base.Statements())
	assert.Len(t, withOne.Statements(), 1)
}

func TestBatchGocqlTypeMapping(t *testing.T) {
	assert.Equal(t, gocql.LoggedBatch, LoggedBatch.GocqlType())
	assert.Equal(t, gocql.UnloggedBatch, UnloggedBatch.GocqlType())
	assert.Equal(t, gocql.CounterBatch, CounterBatch.GocqlType())
}

func TestBatchDoubleConsistencyIsRejected(t *testing.T) {
	b := NewBatch(LoggedBatch).
		Consistency(gocql.Quorum).
		Consistency(gocql.One)
	assert.ErrorIs(t, b.Err(), ErrConsistencySet)
}
