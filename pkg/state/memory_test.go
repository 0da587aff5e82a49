package state

import (
	"context"
	"sync"
	"testing"

	"github.com/CABMadeira/bodet-scoreboard/pkg/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBeforeFirstWrite(t *testing.T) {
	store := NewInMemorySnapshotStore()

	snapshot, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestSetThenGet(t *testing.T) {
	ctx := context.Background()
	store := NewInMemorySnapshotStore()

	want := protocol.GameSnapshot{HomeScore: 80, AwayScore: 74, Period: 4, GameState: protocol.GameStateRunning}
	require.NoError(t, store.Set(ctx, &want))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
}

func TestSetNil(t *testing.T) {
	store := NewInMemorySnapshotStore()
	assert.Error(t, store.Set(context.Background(), nil))
}

func TestLastWriteWins(t *testing.T) {
	ctx := context.Background()
	store := NewInMemorySnapshotStore()

	first := protocol.GameSnapshot{HomeScore: 10, Period: 1, GameState: protocol.GameStateRunning}
	second := protocol.GameSnapshot{HomeScore: 12, Period: 1, GameState: protocol.GameStateRunning}
	require.NoError(t, store.Set(ctx, &first))
	require.NoError(t, store.Set(ctx, &second))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, *got)
}

func TestGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewInMemorySnapshotStore()

	original := protocol.GameSnapshot{HomeScore: 80, Period: 4, GameState: protocol.GameStateRunning}
	require.NoError(t, store.Set(ctx, &original))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	got.HomeScore = 999

	again, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint16(80), again.HomeScore)
}

func TestSetCopiesItsArgument(t *testing.T) {
	ctx := context.Background()
	store := NewInMemorySnapshotStore()

	snapshot := protocol.GameSnapshot{HomeScore: 80, Period: 4, GameState: protocol.GameStateRunning}
	require.NoError(t, store.Set(ctx, &snapshot))
	snapshot.HomeScore = 999

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint16(80), got.HomeScore)
}

// Concurrent writers with distinct snapshots: a subsequent read must return
// one of them whole, never a byte-mixed value.
func TestConcurrentWriters(t *testing.T) {
	ctx := context.Background()
	store := NewInMemorySnapshotStore()

	const writers = 32
	written := make([]protocol.GameSnapshot, writers)
	for i := range written {
		// Every field derives from i, so a torn write would produce a
		// snapshot matching none of the inputs.
		written[i] = protocol.GameSnapshot{
			HomeScore:    uint16(i * 3),
			AwayScore:    uint16(i * 5),
			Period:       uint8(i%10) + 1,
			TimeMinutes:  uint8(i),
			TimeSeconds:  uint8(i % 60),
			HomeFouls:    uint8(i),
			AwayFouls:    uint8(i * 2),
			HomeTimeouts: uint8(i % 8),
			AwayTimeouts: uint8((i + 1) % 8),
			Possession:   protocol.Possession(i % 3),
			GameState:    protocol.GameState(i % 6),
		}
	}

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, store.Set(ctx, &written[i]))
		}(i)
	}
	wg.Wait()

	got, err := store.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Contains(t, written, *got)
}
