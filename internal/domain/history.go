package domain

// HistoryEntry is one completed computation. Entries are never mutated after
// they are appended to a session's history.
type HistoryEntry struct {
	Expression string
	Result     string
}

func (e HistoryEntry) String() string {
	return e.Expression + " = " + e.Result
}
