package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

const shutdownTimeout = 5 * time.Second

type routerOptions struct {
	snapshots snapshotReader
}

type RouterOption func(*routerOptions)

// WithSnapshots - serves the mirrored snapshots under /mirror/games.
func WithSnapshots(snapshots snapshotReader) RouterOption {
	return func(opts *routerOptions) {
		opts.snapshots = snapshots
	}
}

// NewRouter - routes of the drop token API, every request is logged including unmatched ones.
func NewRouter(logger *slog.Logger, gameService gameService, opts ...RouterOption) http.Handler {
	var options routerOptions
	for _, opt := range opts {
		opt(&options)
	}

	h := &handlers{
		logger:      logger.With("component", "rest"),
		gameService: gameService,
	}

	router := mux.NewRouter()

	router.HandleFunc("/ping", pingHandler).Methods(http.MethodGet)

	api := router.PathPrefix("/drop_token").Subrouter()
	api.HandleFunc("", h.getGames).Methods(http.MethodGet)
	api.HandleFunc("", h.createGame).Methods(http.MethodPost)
	api.HandleFunc("/{id}", h.getGameStatus).Methods(http.MethodGet)
	api.HandleFunc("/{id}/moves", h.getMoves).Methods(http.MethodGet)
	api.HandleFunc("/{id}/moves/{move}", h.getMove).Methods(http.MethodGet)
	api.HandleFunc("/{id}/{player}", h.postMove).Methods(http.MethodPost)
	api.HandleFunc("/{id}/{player}", h.playerQuit).Methods(http.MethodDelete)

	if options.snapshots != nil {
		(&mirrorHandlers{handlers: h, snapshots: options.snapshots}).register(router)
	}

	return loggingMiddleware(h.logger)(router)
}

// Start - serves the handler until ctx is canceled.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}

		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped with error: %w", err)
		}

		return nil
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (that *statusRecorder) WriteHeader(status int) {
	that.status = status
	that.ResponseWriter.WriteHeader(status)
}

func loggingMiddleware(logger *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r)

			logger.Info("request handled",
				"method", r.Method,
				"path", r.URL.Path,
				"status", recorder.status,
				"duration", time.Since(started),
			)
		})
	}
}
