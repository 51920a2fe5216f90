package amm

import (
	"fmt"

	"github.com/holiman/uint256"
)

// lpToleranceScale is the fixed-point base of the LP slippage multiplier.
const lpToleranceScale = 1_000_000

// LiquidityQuote is the result of quoting a proportional two-sided deposit.
type LiquidityQuote struct {
	Direction Direction
	// DepositIn is the amount of the token the depositor entered.
	DepositIn uint256.Int
	// PairedAmount is the amount of the other token required at the pool ratio.
	PairedAmount uint256.Int
	// ExpectedLp is the smaller of the LP amounts implied by each side.
	ExpectedLp uint256.Int
	// MinLpOut is ExpectedLp after slippage tolerance. Zero on a first deposit.
	MinLpOut uint256.Int
}

// WithdrawQuote is the result of quoting the burn of LP tokens.
type WithdrawQuote struct {
	LpAmount   uint256.Int
	AmountA    uint256.Int
	AmountB    uint256.Int
	MinAmountA uint256.Int
	MinAmountB uint256.Int
}

// QuoteLiquidityDeposit prices a deposit of depositIn units of the token on
// the input side of dir and the minimum LP tokens it must mint.
//
// Both sides are converted to an LP estimate because reserves may move
// between quote and execution; the smaller estimate binds. When lpSupply is
// zero the deposit is the pool's first and MinLpOut is zero.
func QuoteLiquidityDeposit(pool Pool, lpSupply uint256.Int, dir Direction, depositIn uint256.Int, toleranceBp uint64) (LiquidityQuote, error) {
	if err := validDirection(dir); err != nil {
		return LiquidityQuote{}, err
	}
	reserveIn, reserveOut, _, _ := pool.sides(dir)
	if reserveIn.IsZero() {
		return LiquidityQuote{}, ErrEmptyPool
	}

	q := LiquidityQuote{Direction: dir, DepositIn: depositIn}
	if _, overflow := q.PairedAmount.MulDivOverflow(&depositIn, &reserveOut, &reserveIn); overflow {
		return LiquidityQuote{}, ErrAmountOverflow
	}
	if lpSupply.IsZero() {
		return q, nil
	}
	if reserveOut.IsZero() {
		return LiquidityQuote{}, ErrEmptyPool
	}
	if toleranceBp > BasisPointMax {
		return LiquidityQuote{}, ErrSlippageTooHigh
	}

	var fromIn, fromOut uint256.Int
	if _, overflow := fromIn.MulDivOverflow(&lpSupply, &depositIn, &reserveIn); overflow {
		return LiquidityQuote{}, ErrAmountOverflow
	}
	if _, overflow := fromOut.MulDivOverflow(&lpSupply, &q.PairedAmount, &reserveOut); overflow {
		return LiquidityQuote{}, ErrAmountOverflow
	}
	q.ExpectedLp = fromIn
	if fromOut.Lt(&fromIn) {
		q.ExpectedLp = fromOut
	}

	// 1_000_000 * (1 - tolerancePercent/100) with the tolerance in bp
	factor := uint256.NewInt(lpToleranceScale - toleranceBp*100)
	q.MinLpOut.MulDivOverflow(&q.ExpectedLp, factor, uint256.NewInt(lpToleranceScale))
	return q, nil
}

// QuoteLiquidityWithdraw prices burning lpAmount of lpSupply LP tokens for a
// proportional share of both reserves, each floored. The minimums apply
// toleranceBp to each share; a zero share yields a zero minimum.
func QuoteLiquidityWithdraw(pool Pool, lpSupply, lpAmount uint256.Int, toleranceBp uint64) (WithdrawQuote, error) {
	if lpSupply.IsZero() {
		return WithdrawQuote{}, ErrEmptyPool
	}
	if lpAmount.IsZero() {
		return WithdrawQuote{}, fmt.Errorf("%w: lp amount must be positive", ErrInvalidAmount)
	}
	if lpAmount.Gt(&lpSupply) {
		return WithdrawQuote{}, ErrInsufficientLpSupply
	}
	if toleranceBp > BasisPointMax {
		return WithdrawQuote{}, ErrSlippageTooHigh
	}

	q := WithdrawQuote{LpAmount: lpAmount}
	// lpAmount <= lpSupply keeps each share within its reserve
	q.AmountA.MulDivOverflow(&lpAmount, &pool.ReserveA, &lpSupply)
	q.AmountB.MulDivOverflow(&lpAmount, &pool.ReserveB, &lpSupply)
	q.MinAmountA = applyTolerance(q.AmountA, toleranceBp)
	q.MinAmountB = applyTolerance(q.AmountB, toleranceBp)
	return q, nil
}
