package query

import (
	"fmt"

	"github.com/websudos/phantom/cql"
)

// PreparedBlock is the artifact of a successful prepare: the rendered
// text, the driver handle, the protocol the handle was prepared under,
// the option bag, and the bind types in the exact left-to-right order
// markers occur in Text.
type PreparedBlock struct {
	Text      string
	Handle    Handle
	Proto     ProtoInfo
	Options   Options
	BindTypes []cql.BindType
}

// PrepareResult is delivered by PrepareAsync: a block or an error,
// never both.
type PrepareResult struct {
	Block *PreparedBlock
	Err   error
}

// deriveBindTypes flattens the per-category ledgers into the final
// binding order. Categories concatenate in render order (USING, SET,
// WHERE, IF); within a category the ledger is already in append order,
// so no per-category reshuffling is needed.
//
// A ledger with marks whose fragment rendered nothing means the state
// machine recorded a mark it never rendered; that is a core bug and
// fails loudly rather than silently producing a mis-bound statement.
func deriveBindTypes(frags cql.FragmentSet, leds cql.LedgerSet) ([]cql.BindType, error) {
	var out []cql.BindType
	for _, c := range []cql.Category{cql.Using, cql.Set, cql.Where, cql.Cas} {
		led := leds.Get(c)
		if led.Len() == 0 {
			continue
		}
		if frags.Get(c).Empty() {
			return nil, fmt.Errorf("%w: %s ledger holds %d mark(s) but the fragment is empty",
				ErrLedgerMismatch, c, led.Len())
		}
		for _, m := range led.Marks() {
			out = append(out, m.Type)
		}
	}
	if len(out) == 0 {
		return nil, ErrNothingToBind
	}
	return out, nil
}
