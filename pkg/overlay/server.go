// Package overlay serves the presentation side of the scoreboard: a web
// page rendering the latest snapshot, a JSON endpoint it polls, and a
// WebSocket push channel. It consumes the shared store read-only and is
// entirely separate from frame ingestion.
package overlay

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/CABMadeira/bodet-scoreboard/pkg/log"
	"github.com/CABMadeira/bodet-scoreboard/pkg/state"
	"github.com/gorilla/mux"
)

type OverlayServer struct {
	server *http.Server
}

type NewOverlayServerOptions struct {
	Addr  string
	Store state.SnapshotStore
	// PushInterval is the cadence of WebSocket state pushes.
	PushInterval time.Duration
}

// NewOverlayServer creates a new http.Server for the overlay endpoints.
func NewOverlayServer(opts NewOverlayServerOptions) *OverlayServer {
	pushInterval := opts.PushInterval
	if pushInterval <= 0 {
		pushInterval = time.Second
	}

	router := mux.NewRouter()
	router.HandleFunc("/", HandleIndex()).Methods(http.MethodGet)
	router.HandleFunc("/api/state", HandleGetState(opts.Store)).Methods(http.MethodGet)
	router.HandleFunc("/live", HandleLive(opts.Store, pushInterval)).Methods(http.MethodGet)

	return &OverlayServer{
		server: &http.Server{
			Addr:    opts.Addr,
			Handler: router,
		},
	}
}

// Start starts the OverlayServer
func (s *OverlayServer) Start() {
	log.Info("Overlay server listening on %s", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("Overlay server closed")
			return
		}
		log.Error("Overlay server error: %v", err)
	}
}

// Stop stops the OverlayServer
func (s *OverlayServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
