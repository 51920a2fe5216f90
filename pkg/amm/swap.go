package amm

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

var bpDenominator = uint256.NewInt(BasisPointMax)

// SwapQuote is the result of quoting a swap against a pool snapshot.
type SwapQuote struct {
	Direction Direction
	// AmountIn is the gross input, before fees.
	AmountIn uint256.Int
	// EffectiveAmountIn is the input left after every fee is deducted; it is
	// the amount that enters the constant-product formula.
	EffectiveAmountIn uint256.Int
	AmountOut         uint256.Int
	// PriceImpact is the percentage shortfall of AmountOut against the
	// pool's marginal price.
	PriceImpact   decimal.Decimal
	PriceImpactBp int64
}

// EffectiveAmountIn deducts the full fee schedule from amount, rounding down.
func EffectiveAmountIn(amount uint256.Int, fees FeeSchedule) uint256.Int {
	var out uint256.Int
	// result never exceeds amount, so the 512-bit product cannot overflow
	out.MulDivOverflow(&amount, uint256.NewInt(uint64(fees.NetBp())), bpDenominator)
	return out
}

// GetAmountOut applies the constant-product formula
//
//	amountOut = effectiveIn * reserveOut / (reserveIn + effectiveIn)
//
// rounding down, so amountOut is always strictly below reserveOut.
func GetAmountOut(effectiveIn, reserveIn, reserveOut uint256.Int) (uint256.Int, error) {
	if reserveIn.IsZero() || reserveOut.IsZero() {
		return uint256.Int{}, ErrAmountOutsideLiquidity
	}
	var denominator, out uint256.Int
	if _, overflow := denominator.AddOverflow(&reserveIn, &effectiveIn); overflow {
		return uint256.Int{}, ErrAmountOverflow
	}
	if _, overflow := out.MulDivOverflow(&effectiveIn, &reserveOut, &denominator); overflow {
		return uint256.Int{}, ErrAmountOverflow
	}
	return out, nil
}

// QuoteSwap quotes an exact-input swap of amountIn raw units in direction dir.
func QuoteSwap(pool Pool, dir Direction, amountIn uint256.Int) (SwapQuote, error) {
	if err := validDirection(dir); err != nil {
		return SwapQuote{}, err
	}
	reserveIn, reserveOut, _, _ := pool.sides(dir)
	if reserveIn.IsZero() || reserveOut.IsZero() {
		return SwapQuote{}, ErrAmountOutsideLiquidity
	}

	effectiveIn := EffectiveAmountIn(amountIn, pool.Fees)
	if effectiveIn.IsZero() {
		return SwapQuote{}, ErrZeroEffectiveInput
	}

	amountOut, err := GetAmountOut(effectiveIn, reserveIn, reserveOut)
	if err != nil {
		return SwapQuote{}, err
	}

	return newSwapQuote(pool, dir, amountIn, effectiveIn, amountOut), nil
}

// QuoteSwapExactOut returns the smallest gross input, as computed by rounding
// up through both the curve and the fee, that yields at least amountOut.
// The returned quote's AmountOut is what that input actually fills.
func QuoteSwapExactOut(pool Pool, dir Direction, amountOut uint256.Int) (SwapQuote, error) {
	if err := validDirection(dir); err != nil {
		return SwapQuote{}, err
	}
	if amountOut.IsZero() {
		return SwapQuote{}, fmt.Errorf("%w: amount out must be positive", ErrInvalidAmount)
	}
	reserveIn, reserveOut, _, _ := pool.sides(dir)
	if reserveIn.IsZero() || reserveOut.IsZero() || !amountOut.Lt(&reserveOut) {
		return SwapQuote{}, ErrAmountOutsideLiquidity
	}

	// netIn = ceil(reserveIn * amountOut / (reserveOut - amountOut))
	var remaining uint256.Int
	remaining.Sub(&reserveOut, &amountOut)
	netIn, err := mulDivRoundingUp(reserveIn, amountOut, remaining)
	if err != nil {
		return SwapQuote{}, err
	}

	// grossIn = ceil(netIn * 10_000 / netBp)
	grossIn, err := mulDivRoundingUp(netIn, *bpDenominator, *uint256.NewInt(uint64(pool.Fees.NetBp())))
	if err != nil {
		return SwapQuote{}, err
	}

	effectiveIn := EffectiveAmountIn(grossIn, pool.Fees)
	filled, err := GetAmountOut(effectiveIn, reserveIn, reserveOut)
	if err != nil {
		return SwapQuote{}, err
	}
	return newSwapQuote(pool, dir, grossIn, effectiveIn, filled), nil
}

func newSwapQuote(pool Pool, dir Direction, amountIn, effectiveIn, amountOut uint256.Int) SwapQuote {
	impact := PriceImpact(pool, dir, effectiveIn, amountOut)
	return SwapQuote{
		Direction:         dir,
		AmountIn:          amountIn,
		EffectiveAmountIn: effectiveIn,
		AmountOut:         amountOut,
		PriceImpact:       impact.Mul(hundred),
		PriceImpactBp:     impact.Mul(bpScale).IntPart(),
	}
}

func mulDivRoundingUp(x, y, d uint256.Int) (uint256.Int, error) {
	var q, rem uint256.Int
	if _, overflow := q.MulDivOverflow(&x, &y, &d); overflow {
		return uint256.Int{}, ErrAmountOverflow
	}
	if !rem.MulMod(&x, &y, &d).IsZero() {
		if _, overflow := q.AddOverflow(&q, uint256.NewInt(1)); overflow {
			return uint256.Int{}, ErrAmountOverflow
		}
	}
	return q, nil
}
