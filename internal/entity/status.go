package entity

// Status - is derived from a Board on demand and never stored.
type Status uint8

const (
	StatusInProgress Status = iota
	StatusXWins
	StatusOWins
	StatusDraw
	StatusImpossible
)

// IsTerminal - reports whether the game loop must stop.
func (s Status) IsTerminal() bool {
	return s != StatusInProgress
}

// String - returns the message printed when the game ends.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "Game not finished"
	case StatusXWins:
		return "X wins"
	case StatusOWins:
		return "O wins"
	case StatusDraw:
		return "Draw"
	case StatusImpossible:
		return "Impossible"
	default:
		return "Unknown game state"
	}
}
