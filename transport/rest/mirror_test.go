package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/droptoken-backend/internal/entity"
	"github.com/rocketscienceinc/droptoken-backend/internal/repository"
	"github.com/rocketscienceinc/droptoken-backend/internal/usecase"
)

type mockSnapshotReader struct {
	mock.Mock
}

func (that *mockSnapshotReader) GetByID(ctx context.Context, id string) (*entity.Snapshot, error) {
	args := that.Called(ctx, id)
	snapshot, _ := args.Get(0).(*entity.Snapshot)
	return snapshot, args.Error(1)
}

func (that *mockSnapshotReader) ListIDs(ctx context.Context) ([]string, error) {
	args := that.Called(ctx)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

func newMirrorRouter(t *testing.T, reader snapshotReader) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := usecase.NewGameManager(logger, usecase.NewRegistry(entity.DefaultRules()), nil)

	var opts []RouterOption
	if reader != nil {
		opts = append(opts, WithSnapshots(reader))
	}

	return NewRouter(logger, manager, opts...)
}

func serve(t *testing.T, router http.Handler, path string) (int, map[string]any) {
	t.Helper()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))

	var body map[string]any
	if recorder.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	}

	return recorder.Code, body
}

func TestMirrorRoutes(t *testing.T) {
	t.Run("Lists mirrored ids", func(t *testing.T) {
		reader := &mockSnapshotReader{}
		reader.On("ListIDs", mock.Anything).Return([]string{"game-1", "game-2"}, nil).Once()

		code, body := serve(t, newMirrorRouter(t, reader), "/mirror/games")

		require.Equal(t, http.StatusOK, code)
		assert.ElementsMatch(t, []any{"game-1", "game-2"}, body["games"])
		reader.AssertExpectations(t)
	})

	t.Run("Returns a stored snapshot", func(t *testing.T) {
		// Given: a mirrored finished game
		winner := "player1"
		reader := &mockSnapshotReader{}
		reader.On("GetByID", mock.Anything, "game-1").Return(&entity.Snapshot{
			ID:      "game-1",
			Version: 1,
			Players: []string{"player1", "player2"},
			State:   entity.StateDone,
			Winner:  &winner,
			Columns: 4,
			Rows:    4,
			Moves:   []entity.Move{entity.NewQuitMove("player2")},
		}, nil).Once()

		// When: it is requested
		code, body := serve(t, newMirrorRouter(t, reader), "/mirror/games/game-1")

		// Then: the snapshot json is returned as stored
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "game-1", body["id"])
		assert.EqualValues(t, 1, body["version"])
		assert.Equal(t, "DONE", body["state"])
		assert.Equal(t, "player1", body["winner"])
		reader.AssertExpectations(t)
	})

	t.Run("Missing snapshot is not found", func(t *testing.T) {
		reader := &mockSnapshotReader{}
		reader.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrGameNotFound).Once()

		code, body := serve(t, newMirrorRouter(t, reader), "/mirror/games/missing")

		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "not_found", body["error"])
	})

	t.Run("Storage failure is internal", func(t *testing.T) {
		reader := &mockSnapshotReader{}
		reader.On("ListIDs", mock.Anything).Return(nil, errors.New("redis down")).Once()

		code, body := serve(t, newMirrorRouter(t, reader), "/mirror/games")

		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "internal", body["error"])
	})

	t.Run("Routes are absent without a mirror", func(t *testing.T) {
		code, _ := serve(t, newMirrorRouter(t, nil), "/mirror/games")

		assert.Equal(t, http.StatusNotFound, code)
	})
}
