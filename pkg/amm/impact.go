package amm

import (
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// impactPrecision is the number of fractional digits kept by the single
// rounding step of the impact fraction.
const impactPrecision = 18

var (
	hundred = decimal.NewFromInt(100)
	bpScale = decimal.NewFromInt(BasisPointMax)
)

// PriceImpact returns the fraction by which amountOut falls short of the
// output at the pool's marginal price,
//
//	noImpactOut = effectiveIn * reserveOut / reserveIn
//	impact      = (noImpactOut - amountOut) / noImpactOut
//
// with every quantity decimal-adjusted. Returns zero when noImpactOut is zero.
func PriceImpact(pool Pool, dir Direction, effectiveIn, amountOut uint256.Int) decimal.Decimal {
	reserveIn, reserveOut, decIn, decOut := pool.sides(dir)
	if effectiveIn.IsZero() || reserveIn.IsZero() {
		return decimal.Zero
	}

	reserveInHuman := toHuman(reserveIn, decIn)
	reserveOutHuman := toHuman(reserveOut, decOut)
	effectiveInHuman := toHuman(effectiveIn, decIn)
	actualOut := toHuman(amountOut, decOut)

	// Both terms are scaled by reserveInHuman so the only inexact operation
	// is the final division.
	noImpactScaled := effectiveInHuman.Mul(reserveOutHuman)
	if noImpactScaled.IsZero() {
		return decimal.Zero
	}
	actualScaled := actualOut.Mul(reserveInHuman)

	return noImpactScaled.Sub(actualScaled).DivRound(noImpactScaled, impactPrecision)
}

// ComputePriceImpact quotes amountIn and returns its price impact as a
// percentage. A trade that cannot be quoted has zero impact.
func ComputePriceImpact(pool Pool, dir Direction, amountIn uint256.Int) decimal.Decimal {
	q, err := QuoteSwap(pool, dir, amountIn)
	if err != nil {
		return decimal.Zero
	}
	return q.PriceImpact
}
