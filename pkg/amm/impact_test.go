package amm

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceImpact_Reference(t *testing.T) {
	t.Parallel()

	pct := ComputePriceImpact(referencePool(t), AToB, u(10_000))
	assert.Equal(t, "0.9796", pct.StringFixed(4))
}

func TestPriceImpact_IndependentOfDecimals(t *testing.T) {
	t.Parallel()

	base := referencePool(t)
	want := ComputePriceImpact(base, AToB, u(10_000))

	for _, decs := range [][2]uint8{{0, 0}, {6, 9}, {18, 2}, {9, 18}} {
		pool := base
		pool.DecimalsA, pool.DecimalsB = decs[0], decs[1]
		got := ComputePriceImpact(pool, AToB, u(10_000))
		assert.True(t, want.Equal(got), "decimals %v: got %s want %s", decs, got, want)
	}
}

func TestPriceImpact_VanishesForSmallTrades(t *testing.T) {
	t.Parallel()

	reserve, err := uint256.FromDecimal("1000000000000000000000000000000")
	require.NoError(t, err)
	pool, err := NewPool(*reserve, *reserve, 18, 18, FeeSchedule{})
	require.NoError(t, err)

	prev := decimal.NewFromInt(100)
	for _, amt := range []uint64{1_000_000_000, 1_000_000_000_000, 1_000_000_000_000_000} {
		pct := ComputePriceImpact(pool, AToB, u(amt))
		assert.False(t, pct.IsNegative(), "amount %d", amt)
		assert.True(t, pct.LessThan(prev), "amount %d: %s not below %s", amt, pct, prev)
		prev = pct
	}
	assert.True(t, prev.LessThan(decimal.RequireFromString("0.0000000001")), "impact %s", prev)
}

func TestPriceImpact_NeverNegative(t *testing.T) {
	t.Parallel()

	pool := referencePool(t)
	for _, dir := range []Direction{AToB, BToA} {
		for amt := uint64(3); amt < 1<<40; amt *= 7 {
			q, err := QuoteSwap(pool, dir, u(amt))
			require.NoError(t, err)
			assert.False(t, q.PriceImpact.IsNegative(), "dir=%s amount=%d impact=%s", dir, amt, q.PriceImpact)
			assert.True(t, q.PriceImpact.LessThanOrEqual(hundred))
			assert.GreaterOrEqual(t, q.PriceImpactBp, int64(0))
		}
	}
}

func TestPriceImpact_Degenerate(t *testing.T) {
	t.Parallel()

	pool := referencePool(t)
	assert.True(t, PriceImpact(pool, AToB, u(0), u(0)).IsZero())

	empty := pool
	empty.ReserveA = u(0)
	assert.True(t, ComputePriceImpact(empty, AToB, u(10_000)).IsZero())
	assert.True(t, ComputePriceImpact(pool, AToB, u(0)).IsZero())
}

func TestPriceImpact_LargeTradeIsBlocked(t *testing.T) {
	t.Parallel()

	pool := referencePool(t)
	pct := ComputePriceImpact(pool, AToB, u(1_000_000))
	assert.True(t, pct.GreaterThan(decimal.NewFromInt(49)), "impact %s", pct)
	assert.True(t, IsImpactBlocked(pct))
}
