package pools

import (
	"context"
	"fmt"
	"strings"
)

// Static serves fixed snapshots, typically loaded from configuration.
type Static struct {
	pools map[string]Snapshot
}

// NewStatic indexes snapshots by ID. IDs are matched case-insensitively.
func NewStatic(snapshots ...Snapshot) (*Static, error) {
	s := &Static{pools: make(map[string]Snapshot, len(snapshots))}
	for _, snap := range snapshots {
		key := strings.ToLower(snap.ID)
		if key == "" {
			return nil, fmt.Errorf("static pool: empty id")
		}
		if _, dup := s.pools[key]; dup {
			return nil, fmt.Errorf("static pool %q: duplicate id", snap.ID)
		}
		s.pools[key] = snap
	}
	return s, nil
}

func (s *Static) Snapshot(_ context.Context, id string) (Snapshot, error) {
	snap, ok := s.pools[strings.ToLower(id)]
	if !ok {
		return Snapshot{}, ErrUnknownPool
	}
	return snap, nil
}

// Len returns the number of pools served.
func (s *Static) Len() int { return len(s.pools) }
