// Package service contains the quoting workflows backing HTTP handlers and
// the CLI: resolve a pool snapshot, run the amm engine, apply guards.
package service

import (
	"fmt"
	"log/slog"
)

// BaseService provides common dependencies for service types.
type BaseService struct {
	logger *slog.Logger
}

// poolError attaches the pool ID to an engine error. Sentinels stay
// reachable through errors.Is.
func (s BaseService) poolError(poolID string, err error) error {
	s.logger.Debug("quote rejected", "pool", poolID, "err", err)
	return fmt.Errorf("pool %s: %w", poolID, err)
}
