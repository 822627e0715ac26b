package entity

import (
	"fmt"
	"slices"
	"sync"

	"github.com/rocketscienceinc/droptoken-backend/internal/apperror"
)

type State string

const (
	StateInProgress State = "IN_PROGRESS"
	StateDone       State = "DONE"
)

const PlayersPerGame = 2

// CreateGameRequest - already decoded input of a game creation.
type CreateGameRequest struct {
	Players []string `json:"players"`
	Columns int      `json:"columns"`
	Rows    int      `json:"rows"`
}

// Status - public view of a game; Winner is nil while in progress and on a draw.
type Status struct {
	Players []string
	State   State
	Winner  *string
}

func (that Status) IsDraw() bool {
	return that.State == StateDone && that.Winner == nil
}

// Snapshot - full serializable copy of a game.
// Version is the move count, so a later snapshot always has a greater one.
type Snapshot struct {
	ID      string   `json:"id"`
	Version int      `json:"version"`
	Players []string `json:"players"`
	State   State    `json:"state"`
	Winner  *string  `json:"winner,omitempty"`
	Columns int      `json:"columns"`
	Rows    int      `json:"rows"`
	Moves   []Move   `json:"moves"`
}

// Game - a single match; safe for concurrent use.
type Game struct {
	mu sync.RWMutex

	id      string
	players [PlayersPerGame]string
	board   *Board
	moves   *MoveLog

	state        State
	winner       string
	activePlayer int
}

// ValidatePlayers - exactly two distinct non-empty names.
func ValidatePlayers(players []string) error {
	if len(players) != PlayersPerGame {
		return fmt.Errorf("%w: got %d players", apperror.ErrInvalidPlayers, len(players))
	}

	for _, player := range players {
		if player == "" {
			return fmt.Errorf("%w: empty player name", apperror.ErrInvalidPlayers)
		}
	}

	if players[0] == players[1] {
		return fmt.Errorf("%w: duplicate player %q", apperror.ErrInvalidPlayers, players[0])
	}

	return nil
}

func NewGame(id string, req CreateGameRequest, rules Rules) (*Game, error) {
	if err := ValidatePlayers(req.Players); err != nil {
		return nil, err
	}

	board, err := NewBoard(req.Columns, req.Rows, rules)
	if err != nil {
		return nil, err
	}

	return &Game{
		id:      id,
		players: [PlayersPerGame]string{req.Players[0], req.Players[1]},
		board:   board,
		moves:   NewMoveLog(),
		state:   StateInProgress,
	}, nil
}

func (that *Game) ID() string {
	return that.id
}

func (that *Game) Players() []string {
	return []string{that.players[0], that.players[1]}
}

// Move - drops the player's token into the column and returns the index of the log entry.
func (that *Game) Move(player string, column int) (int, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.state == StateDone {
		return 0, apperror.ErrGameAlreadyDone
	}

	idx, ok := that.playerIndex(player)
	if !ok {
		return 0, fmt.Errorf("%w: %s", apperror.ErrUnknownPlayer, player)
	}

	if idx != that.activePlayer {
		return 0, fmt.Errorf("%w: waiting for %s", apperror.ErrOutOfTurn, that.players[that.activePlayer])
	}

	row, err := that.board.Drop(column, player)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", apperror.ErrIllegalMove, err)
	}

	moveIndex := that.moves.Append(NewDropMove(player, column))
	that.activePlayer = 1 - that.activePlayer

	switch {
	case that.board.CheckWin(column, row, player):
		that.finish(player)
	case that.board.IsFull():
		that.finish(EmptyCell)
	}

	return moveIndex, nil
}

// Quit - forfeits the game, the other player wins.
func (that *Game) Quit(player string) (int, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	idx, ok := that.playerIndex(player)
	if !ok {
		return 0, fmt.Errorf("%w: %s", apperror.ErrUnknownPlayer, player)
	}

	if that.state == StateDone {
		return 0, apperror.ErrGameAlreadyDone
	}

	moveIndex := that.moves.Append(NewQuitMove(player))
	that.finish(that.players[1-idx])

	return moveIndex, nil
}

func (that *Game) Status() Status {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return Status{
		Players: that.Players(),
		State:   that.state,
		Winner:  that.winnerRef(),
	}
}

func (that *Game) IsDone() bool {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.state == StateDone
}

func (that *Game) GetMove(index int) (Move, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.moves.Get(index)
}

func (that *Game) GetMoves(start, until *int) ([]Move, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.moves.Slice(start, until)
}

func (that *Game) Snapshot() *Snapshot {
	that.mu.RLock()
	defer that.mu.RUnlock()

	moves, _ := that.moves.Slice(nil, nil)

	return &Snapshot{
		ID:      that.id,
		Version: len(moves),
		Players: that.Players(),
		State:   that.state,
		Winner:  that.winnerRef(),
		Columns: that.board.Columns(),
		Rows:    that.board.Rows(),
		Moves:   moves,
	}
}

// finish - winner EmptyCell records a draw.
func (that *Game) finish(winner string) {
	that.state = StateDone
	that.winner = winner
}

func (that *Game) winnerRef() *string {
	if that.state != StateDone || that.winner == EmptyCell {
		return nil
	}

	winner := that.winner

	return &winner
}

func (that *Game) playerIndex(player string) (int, bool) {
	idx := slices.Index(that.players[:], player)

	return idx, idx >= 0
}
