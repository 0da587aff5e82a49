package overlay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/CABMadeira/bodet-scoreboard/pkg/protocol"
	"github.com/CABMadeira/bodet-scoreboard/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleGetStateNoSnapshot(t *testing.T) {
	store := state.NewInMemorySnapshotStore()

	req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
	rec := httptest.NewRecorder()
	HandleGetState(store)(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHandleGetState(t *testing.T) {
	store := state.NewInMemorySnapshotStore()
	snapshot := protocol.GameSnapshot{
		HomeScore:    105,
		AwayScore:    102,
		Period:       5,
		TimeMinutes:  3,
		TimeSeconds:  45,
		HomeFouls:    7,
		AwayFouls:    6,
		HomeTimeouts: 1,
		Possession:   protocol.PossessionAway,
		GameState:    protocol.GameStateRunning,
	}
	require.NoError(t, store.Set(context.Background(), &snapshot))

	req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
	rec := httptest.NewRecorder()
	HandleGetState(store)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got StateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, uint16(105), got.HomeScore)
	assert.Equal(t, uint16(102), got.AwayScore)
	assert.Equal(t, "OT1", got.PeriodName)
	assert.Equal(t, "03:45", got.Clock)
	assert.Equal(t, "Away", got.Possession)
	assert.Equal(t, "Running", got.GameState)
	assert.True(t, got.Overtime)
	assert.False(t, got.Finished)
}

func TestHandleGetStateFinal(t *testing.T) {
	store := state.NewInMemorySnapshotStore()
	snapshot := protocol.GameSnapshot{
		HomeScore: 110,
		AwayScore: 108,
		Period:    5,
		GameState: protocol.GameStateFinal,
	}
	require.NoError(t, store.Set(context.Background(), &snapshot))

	req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
	rec := httptest.NewRecorder()
	HandleGetState(store)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got StateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Finished)
}

func TestHandleIndex(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	HandleIndex()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.True(t, strings.Contains(rec.Body.String(), "/api/state"))
}

func TestOverlayServerRouting(t *testing.T) {
	store := state.NewInMemorySnapshotStore()
	server := NewOverlayServer(NewOverlayServerOptions{
		Addr:  ":0",
		Store: store,
	})

	ts := httptest.NewServer(server.server.Handler)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/state")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = http.Post(ts.URL+"/api/state", "", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
