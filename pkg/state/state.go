package state

import (
	"context"

	"github.com/CABMadeira/bodet-scoreboard/pkg/protocol"
)

// SnapshotStore provides shared access to the latest decoded game snapshot.
// Implementations must be thread-safe: sessions write concurrently, the
// overlay reads concurrently, and no reader may observe a torn snapshot.
type SnapshotStore interface {
	// Get returns a copy of the current snapshot, or nil if no frame has
	// been decoded yet.
	Get(ctx context.Context) (*protocol.GameSnapshot, error)
	// Set unconditionally replaces the current snapshot. Last write wins,
	// regardless of which connection or in-game clock it came from.
	Set(ctx context.Context, snapshot *protocol.GameSnapshot) error
}
