package dialect

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCassandraRenderValue(t *testing.T) {
	d := NewCassandraDialect()
	id := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	ts := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"nil", nil, "null"},
		{"string", "hello", "'hello'"},
		{"string escaped", "it's", "'it''s'"},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"int", 42, "42"},
		{"int64", int64(-7), "-7"},
		{"uint", uint(9), "9"},
		{"float", 1.5, "1.5"},
		{"duration seconds", 90 * time.Second, "90"},
		{"time", ts, "'2024-03-01T12:30:00.000Z'"},
		{"uuid unquoted", id, "550e8400-e29b-41d4-a716-446655440000"},
		{"blob", []byte{0xde, 0xad}, "0xdead"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, d.RenderValue(tt.value))
		})
	}
}

func TestCassandraIdentifierQuoting(t *testing.T) {
	d := NewCassandraDialect()
	assert.Equal(t, `"order"`, d.QuoteIdentifier("order"))
	assert.Equal(t, `"we""ird"`, d.QuoteIdentifier(`we"ird`))
}

func TestCassandraPlaceholder(t *testing.T) {
	assert.Equal(t, "?", NewCassandraDialect().Placeholder())
}
