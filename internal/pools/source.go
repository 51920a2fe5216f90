// Package pools provides point-in-time pool snapshots to the quoting layer.
package pools

import (
	"context"
	"errors"
	"strings"

	"github.com/holiman/uint256"

	"github.com/Urban-Blazer/srm-front-end-sub001/pkg/amm"
)

var (
	ErrUnknownPool  = errors.New("unknown pool")
	ErrSameToken    = errors.New("src and dst are equal")
	ErrPairMismatch = errors.New("pair does not match src/dst")
)

// Snapshot is a pool's state at one read, together with the identifiers of
// its two tokens and its LP token supply.
type Snapshot struct {
	ID       string
	TokenA   string
	TokenB   string
	Pool     amm.Pool
	LPSupply uint256.Int
}

// Source returns pool snapshots by pool identifier.
type Source interface {
	Snapshot(ctx context.Context, id string) (Snapshot, error)
}

// Direction resolves the swap direction selling src for dst. Token
// identifiers compare case-insensitively so checksummed and lowercase hex
// addresses match.
func (s Snapshot) Direction(src, dst string) (amm.Direction, error) {
	if strings.EqualFold(src, dst) {
		return 0, ErrSameToken
	}
	switch {
	case strings.EqualFold(src, s.TokenA) && strings.EqualFold(dst, s.TokenB):
		return amm.AToB, nil
	case strings.EqualFold(src, s.TokenB) && strings.EqualFold(dst, s.TokenA):
		return amm.BToA, nil
	default:
		return 0, ErrPairMismatch
	}
}

// DepositDirection resolves the direction of a deposit entered in token src.
func (s Snapshot) DepositDirection(src string) (amm.Direction, error) {
	switch {
	case strings.EqualFold(src, s.TokenA):
		return amm.AToB, nil
	case strings.EqualFold(src, s.TokenB):
		return amm.BToA, nil
	default:
		return 0, ErrPairMismatch
	}
}

// OutputDecimals returns the decimals of the token received in dir.
func (s Snapshot) OutputDecimals(dir amm.Direction) uint8 {
	if dir == amm.BToA {
		return s.Pool.DecimalsA
	}
	return s.Pool.DecimalsB
}

// InputDecimals returns the decimals of the token paid in dir.
func (s Snapshot) InputDecimals(dir amm.Direction) uint8 {
	return s.OutputDecimals(dir.Reverse())
}

type chained []Source

// Chained returns a Source that asks each source in order and returns the
// first answer that is not ErrUnknownPool.
func Chained(sources ...Source) Source {
	return chained(sources)
}

func (c chained) Snapshot(ctx context.Context, id string) (Snapshot, error) {
	for _, src := range c {
		if src == nil {
			continue
		}
		snap, err := src.Snapshot(ctx, id)
		if errors.Is(err, ErrUnknownPool) {
			continue
		}
		return snap, err
	}
	return Snapshot{}, ErrUnknownPool
}
