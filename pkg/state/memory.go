package state

import (
	"context"
	"fmt"
	"sync"

	"github.com/CABMadeira/bodet-scoreboard/pkg/protocol"
)

// InMemorySnapshotStore holds the latest snapshot in a mutex-guarded slot.
type InMemorySnapshotStore struct {
	lock     sync.RWMutex
	snapshot *protocol.GameSnapshot
}

// NewInMemorySnapshotStore creates an empty store. Get returns nil until
// the first Set.
func NewInMemorySnapshotStore() *InMemorySnapshotStore {
	return &InMemorySnapshotStore{}
}

func (s *InMemorySnapshotStore) Get(ctx context.Context) (*protocol.GameSnapshot, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	if s.snapshot == nil {
		return nil, nil
	}

	copy := *s.snapshot
	return &copy, nil
}

func (s *InMemorySnapshotStore) Set(ctx context.Context, snapshot *protocol.GameSnapshot) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if snapshot == nil {
		return fmt.Errorf("snapshot is nil")
	}

	copy := *snapshot
	s.snapshot = &copy
	return nil
}
