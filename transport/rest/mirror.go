package rest

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rocketscienceinc/droptoken-backend/internal/entity"
)

// snapshotReader - read side of the snapshot mirror.
type snapshotReader interface {
	GetByID(ctx context.Context, id string) (*entity.Snapshot, error)
	ListIDs(ctx context.Context) ([]string, error)
}

type mirrorHandlers struct {
	*handlers
	snapshots snapshotReader
}

func (that *mirrorHandlers) register(router *mux.Router) {
	mirror := router.PathPrefix("/mirror/games").Subrouter()
	mirror.HandleFunc("", that.listSnapshots).Methods(http.MethodGet)
	mirror.HandleFunc("/{id}", that.getSnapshot).Methods(http.MethodGet)
}

func (that *mirrorHandlers) listSnapshots(w http.ResponseWriter, r *http.Request) {
	ids, err := that.snapshots.ListIDs(r.Context())
	if err != nil {
		that.respondWithError(w, err, nil)
		return
	}

	that.respondWithJSON(w, http.StatusOK, getGamesResponse{Games: ids})
}

func (that *mirrorHandlers) getSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, err := that.snapshots.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		that.respondWithError(w, err, nil)
		return
	}

	that.respondWithJSON(w, http.StatusOK, snapshot)
}
