package amm

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// Price-impact thresholds, in percent. They are fixed, not per pool.
const (
	HighImpactPercent  = 5
	BlockImpactPercent = 15
)

var (
	highImpact  = decimal.NewFromInt(HighImpactPercent)
	blockImpact = decimal.NewFromInt(BlockImpactPercent)
)

// ImpactLevel is the verdict of the price-impact guard.
type ImpactLevel uint8

const (
	ImpactNormal ImpactLevel = iota
	// ImpactHigh warns but does not stop the trade.
	ImpactHigh
	// ImpactBlocked stops the trade. The quote is still valid and displayable.
	ImpactBlocked
)

func (l ImpactLevel) String() string {
	switch l {
	case ImpactNormal:
		return "normal"
	case ImpactHigh:
		return "high"
	case ImpactBlocked:
		return "blocked"
	default:
		return fmt.Sprintf("impact(%d)", uint8(l))
	}
}

// ComputeMinOut returns amountOut reduced by toleranceBp, rounding the
// deduction down. A tolerance that leaves nothing is ErrSlippageTooHigh.
func ComputeMinOut(amountOut uint256.Int, toleranceBp uint64) (uint256.Int, error) {
	if toleranceBp >= BasisPointMax {
		return uint256.Int{}, ErrSlippageTooHigh
	}
	minOut := applyTolerance(amountOut, toleranceBp)
	if minOut.IsZero() {
		return uint256.Int{}, ErrSlippageTooHigh
	}
	return minOut, nil
}

// IsImpactBlocked reports whether a trade with the given price impact, in
// percent, must be refused. The boundary is inclusive.
func IsImpactBlocked(priceImpactPercent decimal.Decimal) bool {
	return priceImpactPercent.GreaterThanOrEqual(blockImpact)
}

// ClassifyImpact maps a price impact in percent to its guard level.
func ClassifyImpact(priceImpactPercent decimal.Decimal) ImpactLevel {
	switch {
	case IsImpactBlocked(priceImpactPercent):
		return ImpactBlocked
	case priceImpactPercent.GreaterThanOrEqual(highImpact):
		return ImpactHigh
	default:
		return ImpactNormal
	}
}

// applyTolerance returns amount - floor(amount * toleranceBp / 10_000).
// toleranceBp must not exceed BasisPointMax.
func applyTolerance(amount uint256.Int, toleranceBp uint64) uint256.Int {
	var cut, out uint256.Int
	cut.MulDivOverflow(&amount, uint256.NewInt(toleranceBp), bpDenominator)
	out.Sub(&amount, &cut)
	return out
}
