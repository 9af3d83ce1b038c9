package dialect

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	gocql "github.com/apache/cassandra-gocql-driver/v2"
	"github.com/google/uuid"
)

// Cassandra renders CQL literals. String escaping follows the CQL
// grammar: single quotes double inside string literals, double quotes
// double inside quoted identifiers.
type Cassandra struct{}

func NewCassandraDialect() Dialect {
	return &Cassandra{}
}

func (Cassandra) QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// Placeholder returns the CQL bind marker. CQL markers are purely
// positional, so unlike Postgres there is no index to interpolate.
func (Cassandra) Placeholder() string {
	return "?"
}

func (Cassandra) RenderValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return "'" + strings.ReplaceAll(val, "'", "''") + "'"
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case time.Duration:
		// durations bind as whole seconds (TTL)
		return strconv.FormatInt(int64(val/time.Second), 10)
	case time.Time:
		return "'" + val.UTC().Format("2006-01-02T15:04:05.000Z0700") + "'"
	case uuid.UUID:
		// uuid literals are unquoted in CQL
		return val.String()
	case gocql.UUID:
		return val.String()
	case []byte:
		return fmt.Sprintf("0x%x", val)
	default:
		return "'" + strings.ReplaceAll(fmt.Sprint(val), "'", "''") + "'"
	}
}
