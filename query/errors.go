package query

import "errors"

var (
	// ErrConsistencySet reports a second Consistency call on the same
	// query lineage.
	ErrConsistencySet = errors.New("phantom: consistency level already set")

	// ErrNothingToBind reports an attempt to prepare a statement with
	// zero bind markers. A zero-arity prepared statement is a usage
	// error, not a degenerate success.
	ErrNothingToBind = errors.New("phantom: prepared statement has no bind markers")

	// ErrLedgerMismatch reports a placeholder ledger referencing a
	// clause category that rendered nothing. This is an internal bug
	// in the builder, never caller misuse.
	ErrLedgerMismatch = errors.New("phantom: placeholder ledger does not match rendered fragments")

	// ErrNotBatchable reports adding a non-batchable statement to a
	// batch.
	ErrNotBatchable = errors.New("phantom: statement cannot join a batch")
)
