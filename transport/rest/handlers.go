package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rocketscienceinc/droptoken-backend/internal/entity"
)

type gameService interface {
	CreateGame(ctx context.Context, req entity.CreateGameRequest) (string, error)
	ListActiveGames(ctx context.Context) []string
	GetStatus(ctx context.Context, gameID string) (entity.Status, error)
	MakeMove(ctx context.Context, gameID, player string, column int) (int, error)
	Quit(ctx context.Context, gameID, player string) (int, error)
	GetMove(ctx context.Context, gameID string, index int) (entity.Move, error)
	GetMoves(ctx context.Context, gameID string, start, until *int) ([]entity.Move, error)
}

type handlers struct {
	logger      *slog.Logger
	gameService gameService
}

func (that *handlers) getGames(w http.ResponseWriter, r *http.Request) {
	that.respondWithJSON(w, http.StatusOK, getGamesResponse{
		Games: that.gameService.ListActiveGames(r.Context()),
	})
}

func (that *handlers) createGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := decodeBody(r, &req); err != nil {
		that.respondWithError(w, err, nil)
		return
	}

	if req.Columns == nil || req.Rows == nil {
		that.respondWithError(w, fmt.Errorf("%w: columns and rows are required", errBadRequest), nil)
		return
	}

	gameID, err := that.gameService.CreateGame(r.Context(), entity.CreateGameRequest{
		Players: req.Players,
		Columns: *req.Columns,
		Rows:    *req.Rows,
	})
	if err != nil {
		that.respondWithError(w, err, nil)
		return
	}

	that.respondWithJSON(w, http.StatusOK, createGameResponse{GameID: gameID})
}

func (that *handlers) getGameStatus(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["id"]

	status, err := that.gameService.GetStatus(r.Context(), gameID)
	if err != nil {
		that.respondWithError(w, err, nil)
		return
	}

	that.respondWithJSON(w, http.StatusOK, gameStatusResponse{status: status})
}

func (that *handlers) postMove(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID, player := vars["id"], vars["player"]

	var req postMoveRequest
	if err := decodeBody(r, &req); err != nil {
		that.respondWithError(w, err, moveOverrides)
		return
	}

	if req.Column == nil {
		that.respondWithError(w, fmt.Errorf("%w: column is required", errBadRequest), moveOverrides)
		return
	}

	moveIndex, err := that.gameService.MakeMove(r.Context(), gameID, player, *req.Column)
	if err != nil {
		that.respondWithError(w, err, moveOverrides)
		return
	}

	that.respondWithJSON(w, http.StatusOK, postMoveResponse{
		Move: fmt.Sprintf("%s/moves/%d", gameID, moveIndex),
	})
}

func (that *handlers) playerQuit(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if _, err := that.gameService.Quit(r.Context(), vars["id"], vars["player"]); err != nil {
		that.respondWithError(w, err, nil)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func (that *handlers) getMoves(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["id"]

	start, err := optionalInt(r, "start")
	if err != nil {
		that.respondWithError(w, err, nil)
		return
	}

	until, err := optionalInt(r, "until")
	if err != nil {
		that.respondWithError(w, err, nil)
		return
	}

	moves, err := that.gameService.GetMoves(r.Context(), gameID, start, until)
	if err != nil {
		that.respondWithError(w, err, nil)
		return
	}

	that.respondWithJSON(w, http.StatusOK, getMovesResponse{Moves: moves})
}

func (that *handlers) getMove(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	index, err := strconv.Atoi(vars["move"])
	if err != nil {
		that.respondWithError(w, fmt.Errorf("%w: move index %q", errBadRequest, vars["move"]), nil)
		return
	}

	move, err := that.gameService.GetMove(r.Context(), vars["id"], index)
	if err != nil {
		that.respondWithError(w, err, nil)
		return
	}

	that.respondWithJSON(w, http.StatusOK, move)
}

func (that *handlers) respondWithError(w http.ResponseWriter, err error, overrides statusOverrides) {
	status, body := classify(err, overrides)
	if status == http.StatusInternalServerError {
		that.logger.Error("unexpected error", "error", err)
	}

	that.respondWithJSON(w, status, body)
}

func (that *handlers) respondWithJSON(w http.ResponseWriter, status int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		that.logger.Error("failed to marshal response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(response); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func decodeBody(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", errBadRequest, err)
	}

	return nil
}

func optionalInt(r *http.Request, key string) (*int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", errBadRequest, key)
	}

	return &value, nil
}
