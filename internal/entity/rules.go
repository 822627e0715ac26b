package entity

import (
	"errors"
	"fmt"
)

const (
	DefaultWinLength = 4
	DefaultBoardSize = 4
)

var ErrInvalidRules = errors.New("invalid game rules")

// Rules - the accepted board bounds and the run length needed to win.
type Rules struct {
	WinLength  int
	MinColumns int
	MaxColumns int
	MinRows    int
	MaxRows    int
}

// DefaultRules - accepts only the 4x4 board with a run of four.
func DefaultRules() Rules {
	return Rules{
		WinLength:  DefaultWinLength,
		MinColumns: DefaultBoardSize,
		MaxColumns: DefaultBoardSize,
		MinRows:    DefaultBoardSize,
		MaxRows:    DefaultBoardSize,
	}
}

func (that Rules) Validate() error {
	switch {
	case that.WinLength < 2:
		return fmt.Errorf("%w: win length %d must be at least 2", ErrInvalidRules, that.WinLength)
	case that.MinColumns < 1 || that.MinRows < 1:
		return fmt.Errorf("%w: minimum columns and rows must be at least 1", ErrInvalidRules)
	case that.MinColumns > that.MaxColumns:
		return fmt.Errorf("%w: min columns %d > max columns %d", ErrInvalidRules, that.MinColumns, that.MaxColumns)
	case that.MinRows > that.MaxRows:
		return fmt.Errorf("%w: min rows %d > max rows %d", ErrInvalidRules, that.MinRows, that.MaxRows)
	case that.WinLength > max(that.MaxColumns, that.MaxRows):
		return fmt.Errorf("%w: win length %d does not fit a %dx%d board", ErrInvalidRules, that.WinLength, that.MaxColumns, that.MaxRows)
	}

	return nil
}

// AcceptsDimensions - reports whether a board of this size may be created.
func (that Rules) AcceptsDimensions(columns, rows int) bool {
	return columns >= that.MinColumns && columns <= that.MaxColumns &&
		rows >= that.MinRows && rows <= that.MaxRows
}
