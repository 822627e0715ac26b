package rest

import (
	"encoding/json"

	"github.com/rocketscienceinc/droptoken-backend/internal/entity"
)

type createGameRequest struct {
	Players []string `json:"players"`
	Columns *int     `json:"columns"`
	Rows    *int     `json:"rows"`
}

type postMoveRequest struct {
	Column *int `json:"column"`
}

type createGameResponse struct {
	GameID string `json:"gameId"`
}

type getGamesResponse struct {
	Games []string `json:"games"`
}

type postMoveResponse struct {
	Move string `json:"move"`
}

type getMovesResponse struct {
	Moves []entity.Move `json:"moves"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// gameStatusResponse - winner is written only for finished games, as null on a draw.
type gameStatusResponse struct {
	status entity.Status
}

func (that gameStatusResponse) MarshalJSON() ([]byte, error) {
	body := map[string]any{
		"players": that.status.Players,
		"state":   that.status.State,
	}

	if that.status.State == entity.StateDone {
		body["winner"] = that.status.Winner
	}

	return json.Marshal(body)
}
