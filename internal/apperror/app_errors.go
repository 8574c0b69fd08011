package apperror

import (
	"errors"
	"fmt"
)

// Kind - enumerates the recoverable failures of a single move attempt.
type Kind uint8

const (
	KindUnknown        Kind = 0
	KindOutOfBounds    Kind = 1
	KindCellOccupied   Kind = 2
	KindMalformedInput Kind = 3
)

// String - returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindOutOfBounds:
		return "out of bounds"
	case KindCellOccupied:
		return "cell occupied"
	case KindMalformedInput:
		return "malformed input"
	default:
		return "unknown"
	}
}

// MoveError - a rejected move. Two MoveErrors match under errors.Is when their kinds are equal.
type MoveError struct {
	Kind Kind
}

// Error - returns the description of the kind.
func (that *MoveError) Error() string {
	switch that.Kind {
	case KindOutOfBounds:
		return "coordinates are out of bounds"
	case KindCellOccupied:
		return "cell is already occupied"
	case KindMalformedInput:
		return "input is not two integers"
	default:
		return fmt.Sprintf("move error of kind %d", that.Kind)
	}
}

// Is - matches any MoveError of the same kind.
func (that *MoveError) Is(target error) bool {
	var other *MoveError
	if !errors.As(target, &other) {
		return false
	}

	return that.Kind == other.Kind
}

var (
	ErrOutOfBounds    = &MoveError{Kind: KindOutOfBounds}
	ErrCellOccupied   = &MoveError{Kind: KindCellOccupied}
	ErrMalformedInput = &MoveError{Kind: KindMalformedInput}

	ErrInputClosed = errors.New("input is closed")
)

// KindOf - returns the kind of the first MoveError in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var moveErr *MoveError
	if errors.As(err, &moveErr) {
		return moveErr.Kind
	}

	return KindUnknown
}
