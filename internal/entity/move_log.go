package entity

import (
	"fmt"

	"github.com/rocketscienceinc/droptoken-backend/internal/apperror"
)

type MoveType string

const (
	MoveTypeMove MoveType = "MOVE"
	MoveTypeQuit MoveType = "QUIT"
)

// Move - one entry of the move log, Column is set only for MOVE entries.
type Move struct {
	Type   MoveType `json:"type"`
	Player string   `json:"player"`
	Column *int     `json:"column,omitempty"`
}

func NewDropMove(player string, column int) Move {
	return Move{
		Type:   MoveTypeMove,
		Player: player,
		Column: &column,
	}
}

func NewQuitMove(player string) Move {
	return Move{
		Type:   MoveTypeQuit,
		Player: player,
	}
}

func (that Move) IsQuit() bool {
	return that.Type == MoveTypeQuit
}

// MoveLog - append-only log, indices are never reassigned.
type MoveLog struct {
	entries []Move
}

func NewMoveLog() *MoveLog {
	return &MoveLog{}
}

func (that *MoveLog) Append(move Move) int {
	that.entries = append(that.entries, move)

	return len(that.entries) - 1
}

func (that *MoveLog) Len() int {
	return len(that.entries)
}

func (that *MoveLog) Get(index int) (Move, error) {
	if index < 0 || index >= len(that.entries) {
		return Move{}, fmt.Errorf("%w: move %d", apperror.ErrNotFound, index)
	}

	return that.entries[index], nil
}

// Slice - returns a copy of the entries in [start, until).
// A nil start means 0 and a nil until means the log length; until is clamped to the length.
func (that *MoveLog) Slice(start, until *int) ([]Move, error) {
	from, to := 0, len(that.entries)

	if start != nil {
		from = *start
	}

	if until != nil {
		to = *until
	}

	if from < 0 || to < 0 || from > to {
		return nil, fmt.Errorf("%w: start %d, until %d", apperror.ErrInvalidRange, from, to)
	}

	to = min(to, len(that.entries))
	if from >= to {
		return []Move{}, nil
	}

	moves := make([]Move, to-from)
	copy(moves, that.entries[from:to])

	return moves, nil
}
