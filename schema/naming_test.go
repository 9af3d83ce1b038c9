package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableNamePluralization(t *testing.T) {
	ns := DefaultNaming()

	tests := []struct {
		structName string
		expected   string
	}{
		{"UserProfile", "user_profiles"},
		{"Account", "accounts"},
		{"Person", "people"},
		{"Status", "statuses"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ns.TableName(tt.structName), tt.structName)
	}
}

func TestTableNameSingularStrategy(t *testing.T) {
	ns := SnakeCaseNaming{PluralTables: false}
	assert.Equal(t, "user_profile", ns.TableName("UserProfile"))
}

func TestColumnNameSnakeCase(t *testing.T) {
	ns := DefaultNaming()

	tests := []struct {
		fieldName string
		expected  string
	}{
		{"CreatedAt", "created_at"},
		{"Name", "name"},
		{"ID", "id"},
		{"UUID", "uuid"},
		{"UserID", "user_id"},
		{"IDValue", "id_value"},
		{"HTTPStatus", "http_status"},
		{"already_snake", "already_snake"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ns.ColumnName(tt.fieldName), tt.fieldName)
	}
}
