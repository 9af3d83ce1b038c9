package connector

import (
	"context"

	gocql "github.com/apache/cassandra-gocql-driver/v2"
	"github.com/websudos/phantom/cache"
	"github.com/websudos/phantom/query"
	"github.com/websudos/phantom/utils"
)

// Preparer is any builder phase that can prepare itself against a
// session: every terminal-capable phase in the query package
// satisfies it.
type Preparer interface {
	Prepare(ctx context.Context, sess query.Session) (*query.PreparedBlock, error)
	String() string
}

// Executor implements query.Session over a live gocql session and
// dispatches assembled statements. It owns the prepared-block cache.
type Executor struct {
	session     *gocql.Session
	proto       int
	consistency gocql.Consistency
	pageSize    int
	prepared    *cache.PreparedCache
}

func NewExecutor(session *gocql.Session, proto int, consistency gocql.Consistency, pageSize, cacheSize int) *Executor {
	return &Executor{
		session:     session,
		proto:       proto,
		consistency: consistency,
		pageSize:    pageSize,
		prepared:    cache.NewPreparedCache(cacheSize),
	}
}

// Prepare registers the statement text with the driver. gocql prepares
// lazily on first execution, so the handle is the text-bound driver
// query; server-side prepare failures surface on first dispatch.
func (e *Executor) Prepare(ctx context.Context, text string) (query.Handle, query.ProtoInfo, error) {
	qry := e.session.Query(text).WithContext(ctx)
	return qry, query.ProtoInfo{Version: e.proto}, nil
}

func (e *Executor) PrepareAsync(ctx context.Context, text string) <-chan query.PrepareOutcome {
	ch := make(chan query.PrepareOutcome, 1)
	go func() {
		defer close(ch)
		handle, proto, err := e.Prepare(ctx, text)
		ch <- query.PrepareOutcome{Handle: handle, Proto: proto, Err: err}
	}()
	return ch
}

// SupportsOutOfBandConsistency reports whether the protocol attaches
// the consistency level per request. Native protocol v2 and above do;
// below that the level must render as a USING CONSISTENCY directive.
func (e *Executor) SupportsOutOfBandConsistency() bool {
	return e.proto >= 2
}

// PrepareCached prepares through the LRU cache. The key mixes the
// rendered text fingerprint with the protocol version, since a handle
// prepared under one protocol is not valid under another.
func (e *Executor) PrepareCached(ctx context.Context, p Preparer) (*query.PreparedBlock, error) {
	key := utils.Mix64(utils.U64(p.String()), uint64(e.proto))
	return e.prepared.GetOrDerive(key, func() (*query.PreparedBlock, error) {
		return p.Prepare(ctx, e)
	})
}

// Exec dispatches an executable statement, applying its option bag
// over the executor defaults.
func (e *Executor) Exec(ctx context.Context, st *query.Statement, values ...any) error {
	return e.buildQuery(ctx, st, values...).Exec()
}

// ExecPrepared dispatches through a prepared block's handle.
func (e *Executor) ExecPrepared(ctx context.Context, blk *query.PreparedBlock, values ...any) error {
	cached, ok := blk.Handle.(*gocql.Query)
	if !ok {
		// handle prepared by a different execution layer; fall back to text
		st := &query.Statement{Text: blk.Text, Options: blk.Options}
		return e.Exec(ctx, st, values...)
	}
	// WithContext returns a copy of the query; Bind mutates its
	// receiver. The cached handle is shared across goroutines, so bind
	// only on the copy.
	qry := cached.WithContext(ctx).Bind(values...)
	if blk.Options.ConsistencySet() {
		qry.Consistency(blk.Options.Consistency)
	} else {
		qry.Consistency(e.consistency)
	}
	return qry.Exec()
}

// ExecBatch assembles and dispatches a driver batch from the collected
// statements.
func (e *Executor) ExecBatch(ctx context.Context, b *query.Batch) error {
	if err := b.Err(); err != nil {
		return err
	}
	batch := e.session.Batch(b.Kind().GocqlType()).WithContext(ctx)
	for _, st := range b.Statements() {
		batch.Query(st.Text)
	}
	return batch.Exec()
}

func (e *Executor) buildQuery(ctx context.Context, st *query.Statement, values ...any) *gocql.Query {
	qry := e.session.Query(st.Text, values...).WithContext(ctx)
	if st.Options.ConsistencySet() {
		qry.Consistency(st.Options.Consistency)
	} else {
		qry.Consistency(e.consistency)
	}
	pageSize := st.Options.PageSize
	if pageSize == 0 {
		pageSize = e.pageSize
	}
	if pageSize > 0 {
		qry.PageSize(pageSize)
	}
	if st.Options.Idempotent {
		qry.Idempotent(true)
	}
	return qry
}
