package query

import (
	"context"
	"fmt"
	"strconv"
	"time"

	gocql "github.com/apache/cassandra-gocql-driver/v2"
	"github.com/websudos/phantom/cql"
)

// state is the tuple every phase type wraps: base statement text, the
// per-category fragments and ledgers, the option bag, and the first
// structural error recorded on the chain. state is a value; every
// builder operation copies it, so a query can be branched from any
// point and neither branch observes the other.
type state struct {
	base   string
	frags  cql.FragmentSet
	leds   cql.LedgerSet
	suffix []string
	opts   Options
	err    error
}

func newState(base string) state {
	return state{base: base, frags: cql.NewFragmentSet()}
}

// append adds a clause to the category's fragment and records its
// marks in the matching ledger. Skipped clauses leave the state
// untouched.
func (s state) append(c cql.Category, cl cql.Clause) state {
	if cl.Skipped {
		return s
	}
	s.frags = s.frags.With(s.frags.Get(c).AppendClause(cl))
	if len(cl.Marks) > 0 {
		s.leds = s.leds.Record(c, cl.Marks...)
	}
	return s
}

func (s state) appendText(c cql.Category, text string) state {
	s.frags = s.frags.With(s.frags.Get(c).Append(text))
	return s
}

// appendSuffix adds trailing clause text rendered after every
// fragment (ORDER BY, LIMIT, ALLOW FILTERING on SELECT).
func (s state) appendSuffix(text string) state {
	out := make([]string, len(s.suffix)+1)
	copy(out, s.suffix)
	out[len(s.suffix)] = text
	s.suffix = out
	return s
}

func (s state) ttl(c cql.Category, seconds int64) state {
	return s.appendText(c, "TTL "+strconv.FormatInt(seconds, 10))
}

// ttlDuration truncates to whole seconds. A sub-second duration
// renders TTL 0, which the server treats as no TTL.
func (s state) ttlDuration(c cql.Category, d time.Duration) state {
	return s.ttl(c, int64(d/time.Second))
}

// ttlBind renders "TTL ?" and records a bigint mark in the ledger of
// the category the directive rendered into, keeping mark order aligned
// with text order.
func (s state) ttlBind(c cql.Category) state {
	s = s.appendText(c, "TTL ?")
	s.leds = s.leds.Record(c, cql.Mark{Type: cql.TypeBigInt})
	return s
}

func (s state) timestamp(millis int64) state {
	return s.appendText(cql.Using, "TIMESTAMP "+strconv.FormatInt(millis, 10))
}

func (s state) withConsistency(level gocql.Consistency) state {
	if s.opts.consistencySet {
		if s.err == nil {
			s.err = fmt.Errorf("%w (was %s)", ErrConsistencySet, s.opts.Consistency)
		}
		return s
	}
	s.opts.Consistency = level
	s.opts.consistencySet = true
	return s
}

// text renders the statement with options carried out of band.
func (s state) text() string {
	out := cql.Assemble(s.base, s.frags)
	for _, sfx := range s.suffix {
		out += " " + sfx
	}
	return out
}

// renderFor picks the consistency rendering strategy against the
// session's capability: out-of-band option when supported, textual
// USING CONSISTENCY directive otherwise.
func (s state) renderFor(sess Session) (string, Options) {
	frags := s.frags
	opts := s.opts
	if opts.consistencySet && sess != nil && !sess.SupportsOutOfBandConsistency() {
		frags = frags.With(frags.Get(cql.Using).Append("CONSISTENCY " + opts.Consistency.String()))
		opts.consistencySet = false
		opts.Consistency = 0
	}
	out := cql.Assemble(s.base, frags)
	for _, sfx := range s.suffix {
		out += " " + sfx
	}
	return out, opts
}

func (s state) statement(batchable bool) (*Statement, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &Statement{Text: s.text(), Options: s.opts, batchable: batchable}, nil
}

func (s state) prepare(ctx context.Context, sess Session) (*PreparedBlock, error) {
	if s.err != nil {
		return nil, s.err
	}
	types, err := deriveBindTypes(s.frags, s.leds)
	if err != nil {
		return nil, err
	}
	text, opts := s.renderFor(sess)
	handle, proto, err := sess.Prepare(ctx, text)
	if err != nil {
		return nil, err
	}
	return &PreparedBlock{
		Text:      text,
		Handle:    handle,
		Proto:     proto,
		Options:   opts,
		BindTypes: types,
	}, nil
}

func (s state) prepareAsync(ctx context.Context, sess Session) <-chan PrepareResult {
	ch := make(chan PrepareResult, 1)
	if s.err != nil {
		ch <- PrepareResult{Err: s.err}
		close(ch)
		return ch
	}
	types, err := deriveBindTypes(s.frags, s.leds)
	if err != nil {
		ch <- PrepareResult{Err: err}
		close(ch)
		return ch
	}
	text, opts := s.renderFor(sess)
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
			Text:      text,
			Handle:    out.Handle,
			Proto:     out.Proto,
			Options:   opts,
			BindTypes: types,
		}}
	}()
	return ch
}

// terminal carries the operations shared by every phase that can
// produce an executable or prepared statement. Phase types embed it.
type terminal struct {
	st state
}

// Err returns the first structural error recorded on the chain, if
// any. Terminal operations return the same error.
func (t terminal) Err() error { return t.st.err }

// String renders the statement text as built so far.
func (t terminal) String() string { return t.st.text() }

// Statement produces the executable statement with options carried
// out of band.
func (t terminal) Statement() (*Statement, error) {
	return t.st.statement(true)
}

// StatementFor produces the executable statement with the consistency
// rendering strategy resolved against the session's capability.
func (t terminal) StatementFor(sess Session) (*Statement, error) {
	if t.st.err != nil {
		return nil, t.st.err
	}
	text, opts := t.st.renderFor(sess)
	return &Statement{Text: text, Options: opts, batchable: true}, nil
}

// Prepare derives the bind order and registers the statement with the
// session. Structural and derivation errors surface before the
// session is contacted.
func (t terminal) Prepare(ctx context.Context, sess Session) (*PreparedBlock, error) {
	return t.st.prepare(ctx, sess)
}

// PrepareAsync is Prepare with the network handoff delegated to the
// session's async path. Derivation errors are delivered on the
// returned channel without contacting the session.
func (t terminal) PrepareAsync(ctx context.Context, sess Session) <-chan PrepareResult {
	return t.st.prepareAsync(ctx, sess)
}
