package application

import "github.com/bnema/pocketcalc/internal/domain"

// Snapshot is the state a presentation layer renders.
type Snapshot struct {
	Display         string
	Memory          float64
	MemoryStored    bool
	PendingOperator string
	JustCalculated  bool
	History         []domain.HistoryEntry
}

func (s Snapshot) HistoryLines() []string {
	lines := make([]string, 0, len(s.History))
	for _, entry := range s.History {
		lines = append(lines, entry.String())
	}
	return lines
}
