package query

import "context"

// Handle is the driver-side prepared statement handle. The core never
// inspects it; it travels inside the PreparedBlock back to whatever
// execution layer produced it.
type Handle any

// ProtoInfo carries the negotiated native protocol version the handle
// was prepared under.
type ProtoInfo struct {
	Version int
}

// PrepareOutcome is the async counterpart of Session.Prepare.
type PrepareOutcome struct {
	Handle Handle
	Proto  ProtoInfo
	Err    error
}

// Session is the execution collaborator contract. The builder touches
// it only at the prepare handoff; connection management, retries and
// timeouts are entirely the implementation's concern.
type Session interface {
	Prepare(ctx context.Context, text string) (Handle, ProtoInfo, error)
	PrepareAsync(ctx context.Context, text string) <-chan PrepareOutcome

	// SupportsOutOfBandConsistency reports whether the protocol can
	// attach a consistency level per request. When false, the level
	// renders as a textual USING CONSISTENCY directive instead.
	SupportsOutOfBandConsistency() bool
}
