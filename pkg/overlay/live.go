package overlay

import (
	"net/http"
	"time"

	"github.com/CABMadeira/bodet-scoreboard/pkg/log"
	"github.com/CABMadeira/bodet-scoreboard/pkg/state"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleLive upgrades to a WebSocket and pushes the state JSON at a fixed
// cadence. A null message means no frame has arrived yet. The connection
// lives until the peer goes away or a write fails.
func HandleLive(store state.SnapshotStore, interval time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Error("Failed to upgrade to WebSocket: %v", err)
			return
		}
		defer conn.Close()

		log.Debug("New WebSocket connection from %s", conn.RemoteAddr())

		// Drain incoming control frames so pings and close messages are
		// processed; the peer is not expected to send data.
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			snapshot, err := store.Get(r.Context())
			if err != nil {
				log.Error("failed to get snapshot: %v", err)
				return
			}

			var payload *StateResponse
			if snapshot != nil {
				payload = NewStateResponse(snapshot)
			}

			if err := conn.WriteJSON(payload); err != nil {
				log.Trace("WebSocket connection closed for %s: %v", conn.RemoteAddr(), err)
				return
			}

			select {
			case <-ticker.C:
			case <-r.Context().Done():
				return
			}
		}
	}
}
