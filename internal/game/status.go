package game

// Status is the lifecycle state of a game. Won and Lost are terminal.
type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusLost
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Over reports whether the status is terminal.
func (s Status) Over() bool {
	return s == StatusWon || s == StatusLost
}
