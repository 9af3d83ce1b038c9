package query

// Statement is the final executable artifact: assembled text plus the
// option bag, handed to the execution collaborator as-is. It is not
// further mutable.
type Statement struct {
	Text    string
	Options Options

	batchable bool
}

// Batchable reports whether the statement may be combined with others
// into one atomic multi-statement request. DML statements are
// batchable; SELECTs and assembled batches are not.
func (s *Statement) Batchable() bool {
	return s.batchable
}

func (s *Statement) String() string {
	return s.Text
}
