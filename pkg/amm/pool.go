package amm

import (
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

// Direction selects which reserve a swap or single-sided deposit enters.
type Direction uint8

const (
	AToB Direction = iota
	BToA
)

func (d Direction) String() string {
	switch d {
	case AToB:
		return "a-to-b"
	case BToA:
		return "b-to-a"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == AToB {
		return BToA
	}
	return AToB
}

// ParseDirection accepts a-to-b, a2b or ab and their b-first counterparts.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a-to-b", "a2b", "ab":
		return AToB, nil
	case "b-to-a", "b2a", "ba":
		return BToA, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// Pool is a point-in-time snapshot of a constant-product pool. Reserves are
// raw token units. Quote functions take it by value and never modify it.
type Pool struct {
	ReserveA  uint256.Int
	ReserveB  uint256.Int
	DecimalsA uint8
	DecimalsB uint8
	Fees      FeeSchedule
}

// NewPool validates token decimals and returns a pool snapshot.
func NewPool(reserveA, reserveB uint256.Int, decimalsA, decimalsB uint8, fees FeeSchedule) (Pool, error) {
	if decimalsA > MaxDecimals || decimalsB > MaxDecimals {
		return Pool{}, ErrInvalidDecimals
	}
	return Pool{
		ReserveA:  reserveA,
		ReserveB:  reserveB,
		DecimalsA: decimalsA,
		DecimalsB: decimalsB,
		Fees:      fees,
	}, nil
}

// Quotable reports whether both reserves are non-zero.
func (p Pool) Quotable() bool {
	return !p.ReserveA.IsZero() && !p.ReserveB.IsZero()
}

// sides returns reserveIn, reserveOut, decimalsIn, decimalsOut for dir.
func (p Pool) sides(dir Direction) (uint256.Int, uint256.Int, uint8, uint8) {
	if dir == BToA {
		return p.ReserveB, p.ReserveA, p.DecimalsB, p.DecimalsA
	}
	return p.ReserveA, p.ReserveB, p.DecimalsA, p.DecimalsB
}

func validDirection(dir Direction) error {
	if dir != AToB && dir != BToA {
		return fmt.Errorf("%w: %s", ErrInvalidDirection, dir)
	}
	return nil
}
