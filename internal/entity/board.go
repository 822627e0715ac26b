package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/droptoken-backend/internal/apperror"
)

const EmptyCell = ""

var (
	ErrInvalidColumn = errors.New("invalid column index")
	ErrColumnFull    = errors.New("column is full")
)

// directions - one vector per line through a cell; the opposite direction is scanned too.
var directions = [4][2]int{
	{1, 0},  // horizontal
	{0, 1},  // vertical
	{1, 1},  // diagonal /
	{1, -1}, // diagonal \
}

// Board - grid of cells addressed as [column][row], row 0 is the bottom.
type Board struct {
	columns   int
	rows      int
	winLength int

	cells   [][]string
	heights []int
	tokens  int
}

func NewBoard(columns, rows int, rules Rules) (*Board, error) {
	if !rules.AcceptsDimensions(columns, rows) {
		return nil, fmt.Errorf("%w: %dx%d", apperror.ErrInvalidDimensions, columns, rows)
	}

	cells := make([][]string, columns)
	for i := range cells {
		cells[i] = make([]string, rows)
	}

	return &Board{
		columns:   columns,
		rows:      rows,
		winLength: rules.WinLength,
		cells:     cells,
		heights:   make([]int, columns),
	}, nil
}

func (that *Board) Columns() int {
	return that.columns
}

func (that *Board) Rows() int {
	return that.rows
}

// Cell - returns the owner of the cell or EmptyCell, out of range cells are empty.
func (that *Board) Cell(column, row int) string {
	if !that.inBounds(column, row) {
		return EmptyCell
	}

	return that.cells[column][row]
}

// Drop - places the player's token in the lowest empty row of the column and returns that row.
func (that *Board) Drop(column int, player string) (int, error) {
	if column < 0 || column >= that.columns {
		return 0, fmt.Errorf("%w: column %d", ErrInvalidColumn, column)
	}

	row := that.heights[column]
	if row >= that.rows {
		return 0, fmt.Errorf("%w: column %d", ErrColumnFull, column)
	}

	that.cells[column][row] = player
	that.heights[column]++
	that.tokens++

	return row, nil
}

// CheckWin - scans only the lines passing through the given cell.
func (that *Board) CheckWin(column, row int, player string) bool {
	if player == EmptyCell || that.Cell(column, row) != player {
		return false
	}

	for _, dir := range directions {
		run := 1 +
			that.countRun(column, row, dir[0], dir[1], player) +
			that.countRun(column, row, -dir[0], -dir[1], player)
		if run >= that.winLength {
			return true
		}
	}

	return false
}

func (that *Board) IsFull() bool {
	return that.tokens == that.columns*that.rows
}

// countRun - counts contiguous player tokens from the cell in one direction, excluding the cell itself.
func (that *Board) countRun(column, row, dc, dr int, player string) int {
	count := 0

	for count < that.winLength-1 {
		column += dc
		row += dr
		if !that.inBounds(column, row) || that.cells[column][row] != player {
			break
		}
		count++
	}

	return count
}

func (that *Board) inBounds(column, row int) bool {
	return column >= 0 && column < that.columns && row >= 0 && row < that.rows
}
