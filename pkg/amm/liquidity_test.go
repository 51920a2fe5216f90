package amm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteLiquidityDeposit(t *testing.T) {
	t.Parallel()

	pool := referencePool(t)

	q, err := QuoteLiquidityDeposit(pool, u(707_106), AToB, u(10_000), 50)
	require.NoError(t, err)
	assert.Equal(t, uint64(5_000), q.PairedAmount.Uint64())
	assert.Equal(t, uint64(7_071), q.ExpectedLp.Uint64())
	// 7071 * 995000 / 1000000
	assert.Equal(t, uint64(7_035), q.MinLpOut.Uint64())

	q, err = QuoteLiquidityDeposit(pool, u(707_106), BToA, u(5_000), 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(10_000), q.PairedAmount.Uint64())
	assert.Equal(t, uint64(7_071), q.MinLpOut.Uint64())
}

func TestQuoteLiquidityDeposit_SmallerEstimateBinds(t *testing.T) {
	t.Parallel()

	pool := referencePool(t)
	// paired floors from 1.5 to 1, so the B side implies fewer LP tokens
	q, err := QuoteLiquidityDeposit(pool, u(1_000_000), AToB, u(3), 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), q.PairedAmount.Uint64())
	assert.Equal(t, uint64(2), q.ExpectedLp.Uint64())
	assert.Equal(t, uint64(2), q.MinLpOut.Uint64())
}

func TestQuoteLiquidityDeposit_FirstDeposit(t *testing.T) {
	t.Parallel()

	pool := referencePool(t)
	for _, tol := range []uint64{0, 50, 10_000, 50_000} {
		q, err := QuoteLiquidityDeposit(pool, u(0), AToB, u(10_000), tol)
		require.NoError(t, err, "tolerance %d", tol)
		assert.True(t, q.MinLpOut.IsZero())
		assert.Equal(t, uint64(5_000), q.PairedAmount.Uint64())
	}
}

func TestQuoteLiquidityDeposit_Errors(t *testing.T) {
	t.Parallel()

	pool := referencePool(t)

	emptyIn := pool
	emptyIn.ReserveA = u(0)
	_, err := QuoteLiquidityDeposit(emptyIn, u(1_000), AToB, u(10), 50)
	require.ErrorIs(t, err, ErrEmptyPool)

	emptyOut := pool
	emptyOut.ReserveB = u(0)
	_, err = QuoteLiquidityDeposit(emptyOut, u(1_000), AToB, u(10), 50)
	require.ErrorIs(t, err, ErrEmptyPool)

	_, err = QuoteLiquidityDeposit(pool, u(1_000), AToB, u(10), 10_001)
	require.ErrorIs(t, err, ErrSlippageTooHigh)

	q, err := QuoteLiquidityDeposit(pool, u(707_106), AToB, u(10_000), 10_000)
	require.NoError(t, err)
	assert.True(t, q.MinLpOut.IsZero())
}

func TestQuoteLiquidityWithdraw(t *testing.T) {
	t.Parallel()

	pool := referencePool(t)

	q, err := QuoteLiquidityWithdraw(pool, u(707_106), u(70_710), 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(99_999), q.AmountA.Uint64())
	assert.Equal(t, uint64(49_999), q.AmountB.Uint64())
	assert.Equal(t, uint64(99_000), q.MinAmountA.Uint64())
	assert.Equal(t, uint64(49_500), q.MinAmountB.Uint64())

	all, err := QuoteLiquidityWithdraw(pool, u(707_106), u(707_106), 0)
	require.NoError(t, err)
	assert.Equal(t, pool.ReserveA.Dec(), all.AmountA.Dec())
	assert.Equal(t, pool.ReserveB.Dec(), all.AmountB.Dec())

	_, err = QuoteLiquidityWithdraw(pool, u(0), u(1), 0)
	require.ErrorIs(t, err, ErrEmptyPool)
	_, err = QuoteLiquidityWithdraw(pool, u(100), u(101), 0)
	require.ErrorIs(t, err, ErrInsufficientLpSupply)
	_, err = QuoteLiquidityWithdraw(pool, u(100), u(0), 0)
	require.ErrorIs(t, err, ErrInvalidAmount)
	_, err = QuoteLiquidityWithdraw(pool, u(100), u(10), 10_001)
	require.ErrorIs(t, err, ErrSlippageTooHigh)
}
