package query

import gocql "github.com/apache/cassandra-gocql-driver/v2"

// Options is the execution-option bag carried through to the final
// statement. The core treats it as pass-through; the connector reads
// it when dispatching.
type Options struct {
	Consistency gocql.Consistency
	PageSize    int
	Idempotent  bool

	consistencySet bool
}

// ConsistencySet reports whether a consistency level was set on the
// chain. The connector falls back to its configured default when this
// is false.
func (o Options) ConsistencySet() bool {
	return o.consistencySet
}
