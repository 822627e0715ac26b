package rest

import (
	"errors"
	"net/http"

	"github.com/rocketscienceinc/droptoken-backend/internal/apperror"
)

var errBadRequest = errors.New("malformed request")

type errorKind struct {
	err    error
	code   string
	status int
}

// errorKinds - checked in order, the first match wins.
var errorKinds = []errorKind{
	{apperror.ErrInvalidPlayers, "invalid_players", http.StatusBadRequest},
	{apperror.ErrInvalidDimensions, "invalid_dimensions", http.StatusBadRequest},
	{apperror.ErrIllegalMove, "illegal_move", http.StatusBadRequest},
	{apperror.ErrInvalidRange, "invalid_range", http.StatusBadRequest},
	{errBadRequest, "bad_request", http.StatusBadRequest},
	{apperror.ErrNotFound, "not_found", http.StatusNotFound},
	{apperror.ErrUnknownPlayer, "unknown_player", http.StatusNotFound},
	{apperror.ErrOutOfTurn, "out_of_turn", http.StatusConflict},
	{apperror.ErrGameAlreadyDone, "game_already_done", http.StatusGone},
}

type statusOverrides map[error]int

// moveOverrides - a move against a finished game is answered as not found.
var moveOverrides = statusOverrides{
	apperror.ErrGameAlreadyDone: http.StatusNotFound,
}

func classify(err error, overrides statusOverrides) (int, errorResponse) {
	for _, kind := range errorKinds {
		if !errors.Is(err, kind.err) {
			continue
		}

		status := kind.status
		if override, ok := overrides[kind.err]; ok {
			status = override
		}

		return status, errorResponse{Error: kind.code, Message: err.Error()}
	}

	return http.StatusInternalServerError, errorResponse{Error: "internal", Message: http.StatusText(http.StatusInternalServerError)}
}
