package entity

import (
	"encoding/json"
	"testing"

	"github.com/rocketscienceinc/droptoken-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func newSevenEntryLog() *MoveLog {
	log := NewMoveLog()
	for i := 0; i < 6; i++ {
		player := playerOne
		if i%2 == 1 {
			player = playerTwo
		}
		log.Append(NewDropMove(player, i%2))
	}
	log.Append(NewQuitMove(playerTwo))

	return log
}

func TestMoveLog_Append(t *testing.T) {
	// Given: an empty log
	log := NewMoveLog()

	for want := 0; want < 3; want++ {
		// When: appending an entry
		got := log.Append(NewDropMove(playerOne, want))

		// Then: the index equals the previous length
		assert.Equal(t, want, got)
		assert.Equal(t, want+1, log.Len())
	}
}

func TestMoveLog_Get(t *testing.T) {
	log := newSevenEntryLog()

	t.Run("Returns the entry at the index", func(t *testing.T) {
		move, err := log.Get(6)

		require.NoError(t, err)
		assert.Equal(t, NewQuitMove(playerTwo), move)
	})

	t.Run("Returns ErrNotFound outside of the log", func(t *testing.T) {
		for _, idx := range []int{-1, 7, 99} {
			_, err := log.Get(idx)
			assert.ErrorIs(t, err, apperror.ErrNotFound)
		}
	})
}

func TestMoveLog_Slice(t *testing.T) {
	log := newSevenEntryLog()

	t.Run("No bounds returns everything in order", func(t *testing.T) {
		moves, err := log.Slice(nil, nil)

		require.NoError(t, err)
		require.Len(t, moves, 7)
		assert.Equal(t, NewDropMove(playerOne, 0), moves[0])
		assert.Equal(t, NewQuitMove(playerTwo), moves[6])
	})

	t.Run("Start only returns the tail", func(t *testing.T) {
		moves, err := log.Slice(intPtr(5), nil)

		require.NoError(t, err)
		assert.Equal(t, []Move{NewDropMove(playerTwo, 1), NewQuitMove(playerTwo)}, moves)
	})

	t.Run("Until only returns the head", func(t *testing.T) {
		moves, err := log.Slice(nil, intPtr(5))

		require.NoError(t, err)
		require.Len(t, moves, 5)
		assert.Equal(t, NewDropMove(playerOne, 0), moves[4])
	})

	t.Run("Until past the end is clamped", func(t *testing.T) {
		moves, err := log.Slice(intPtr(2), intPtr(100))

		require.NoError(t, err)
		assert.Len(t, moves, 5)
	})

	t.Run("Empty and out of range windows are empty", func(t *testing.T) {
		moves, err := log.Slice(intPtr(3), intPtr(3))
		require.NoError(t, err)
		assert.Empty(t, moves)

		moves, err = log.Slice(intPtr(10), intPtr(20))
		require.NoError(t, err)
		assert.Empty(t, moves)
	})

	t.Run("Malformed bounds return ErrInvalidRange", func(t *testing.T) {
		cases := [][2]*int{
			{intPtr(-1), nil},
			{nil, intPtr(-1)},
			{intPtr(2), intPtr(1)},
		}

		for _, c := range cases {
			_, err := log.Slice(c[0], c[1])
			assert.ErrorIs(t, err, apperror.ErrInvalidRange)
		}
	})

	t.Run("Returned slice does not alias the log", func(t *testing.T) {
		moves, err := log.Slice(nil, nil)
		require.NoError(t, err)

		moves[0] = NewQuitMove("someone")

		first, err := log.Get(0)
		require.NoError(t, err)
		assert.Equal(t, NewDropMove(playerOne, 0), first)
	})
}

func TestMove_JSON(t *testing.T) {
	drop, err := json.Marshal(NewDropMove(playerOne, 0))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"MOVE","player":"player1","column":0}`, string(drop))

	quit, err := json.Marshal(NewQuitMove(playerTwo))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"QUIT","player":"player2"}`, string(quit))
}
