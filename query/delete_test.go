package query

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/websudos/phantom/cql"
)

func TestDeleteWholeRow(t *testing.T) {
	tbl := usersTable()

	st, err := Delete(tbl).Where(tbl.Col("id").Eq(5)).Statement()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM ks.t WHERE id = 5", st.Text)
	assert.True(t, st.Batchable())
}

func TestDeleteNamedColumns(t *testing.T) {
	tbl := usersTable()

	q := Delete(tbl, "name", "age").
		Where(tbl.Col("id").Eq(5)).
		And(tbl.Col("name").Eq("x"))

	assert.Equal(t, "DELETE name, age FROM ks.t WHERE id = 5 AND name = 'x'", q.String())
}

func TestDeleteTimestampRendersUsing(t *testing.T) {
	tbl := usersTable()
	at := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	q := Delete(tbl).
		TimestampAt(at).
		Where(tbl.Col("id").Eq(5))

	assert.Equal(t,
		"DELETE FROM ks.t USING TIMESTAMP 1709251200000 WHERE id = 5",
		q.String())
}

func TestDeleteConditional(t *testing.T) {
	tbl := usersTable()

	q := Delete(tbl).
		Where(tbl.Col("id").Eq(5)).
		OnlyIf(tbl.Col("name").Eq("old"))
	assert.Equal(t, "DELETE FROM ks.t WHERE id = 5 IF name = 'old'", q.String())

	e := Delete(tbl).Where(tbl.Col("id").Eq(5)).IfExists()
	assert.Equal(t, "DELETE FROM ks.t WHERE id = 5 IF EXISTS", e.String())
}

func TestDeletePrepareBindOrder(t *testing.T) {
	tbl := usersTable()
	sess := &fakeSession{oob: true}

	blk, err := Delete(tbl).
		Where(tbl.Col("id").Eq(cql.Bind)).
		OnlyIf(tbl.Col("name").Eq(cql.Bind)).
		Prepare(context.Background(), sess)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM ks.t WHERE id = ? IF name = ?", blk.Text)
	assert.Equal(t, []cql.BindType{cql.TypeBigInt, cql.TypeText}, blk.BindTypes)
}
