package overlay

import (
	"encoding/json"
	"net/http"

	"github.com/CABMadeira/bodet-scoreboard/pkg/log"
	"github.com/CABMadeira/bodet-scoreboard/pkg/protocol"
	"github.com/CABMadeira/bodet-scoreboard/pkg/state"
)

// StateResponse is the JSON rendering of a snapshot, with the derived
// views precomputed so the page does no game logic of its own.
type StateResponse struct {
	HomeScore    uint16 `json:"homeScore"`
	AwayScore    uint16 `json:"awayScore"`
	Period       uint8  `json:"period"`
	PeriodName   string `json:"periodName"`
	Clock        string `json:"clock"`
	HomeFouls    uint8  `json:"homeFouls"`
	AwayFouls    uint8  `json:"awayFouls"`
	HomeTimeouts uint8  `json:"homeTimeouts"`
	AwayTimeouts uint8  `json:"awayTimeouts"`
	Possession   string `json:"possession"`
	GameState    string `json:"gameState"`
	Overtime     bool   `json:"overtime"`
	Finished     bool   `json:"finished"`
}

// NewStateResponse builds the JSON view of a snapshot.
func NewStateResponse(s *protocol.GameSnapshot) *StateResponse {
	return &StateResponse{
		HomeScore:    s.HomeScore,
		AwayScore:    s.AwayScore,
		Period:       s.Period,
		PeriodName:   s.PeriodName(),
		Clock:        s.Clock(),
		HomeFouls:    s.HomeFouls,
		AwayFouls:    s.AwayFouls,
		HomeTimeouts: s.HomeTimeouts,
		AwayTimeouts: s.AwayTimeouts,
		Possession:   s.Possession.String(),
		GameState:    s.GameState.String(),
		Overtime:     s.IsOvertime(),
		Finished:     s.IsFinished(),
	}
}

// HandleGetState returns the current snapshot as JSON, or 204 No Content
// when no frame has been decoded yet.
func HandleGetState(store state.SnapshotStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := store.Get(r.Context())
		if err != nil {
			log.Error("failed to get snapshot: %v", err)
			http.Error(w, "Failed to get snapshot", http.StatusInternalServerError)
			return
		}

		if snapshot == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(NewStateResponse(snapshot)); err != nil {
			log.Error("failed to encode snapshot: %v", err)
			http.Error(w, "Failed to encode snapshot", http.StatusInternalServerError)
			return
		}
	}
}

// HandleIndex serves the overlay page.
func HandleIndex() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write([]byte(overlayPage)); err != nil {
			log.Error("failed to write overlay page: %v", err)
		}
	}
}
