package domain

import "time"

// HistoryStatus is the outcome of one dispatched command.
type HistoryStatus int

const (
	HistoryOK HistoryStatus = iota
	HistoryInputError
	HistoryActionError
)

func (s HistoryStatus) String() string {
	switch s {
	case HistoryOK:
		return "ok"
	case HistoryInputError:
		return "input-error"
	case HistoryActionError:
		return "action-error"
	default:
		return "unknown"
	}
}

// HistoryEntry is one command of one input line.
type HistoryEntry struct {
	ID        int64
	Session   string
	Line      string
	Position  int // 1-based position of the command within its line
	Command   string
	Status    HistoryStatus
	ErrorKind string
	Message   string
	Timestamp time.Time
}
