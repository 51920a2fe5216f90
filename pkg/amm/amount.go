// Package amm implements constant-product pool quoting: swap outputs net of a
// basis-point fee schedule, price impact, slippage-bounded minimums and
// proportional liquidity quotes. Every function is pure and operates on raw
// integer token units.
package amm

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// MaxDecimals is the largest number of fractional digits a token may declare.
const MaxDecimals = 18

// Amount is a raw on-chain integer amount together with the decimal exponent
// of its token. The human value is Raw / 10^Decimals.
type Amount struct {
	Raw      uint256.Int
	Decimals uint8
}

// NewAmount returns an Amount for raw units of a token with the given decimals.
func NewAmount(raw uint256.Int, decimals uint8) (Amount, error) {
	if decimals > MaxDecimals {
		return Amount{}, ErrInvalidDecimals
	}
	return Amount{Raw: raw, Decimals: decimals}, nil
}

// ParseAmount converts a human-readable amount such as "1.25" into raw units.
// More fractional digits than the token supports is an error, not a rounding.
func ParseAmount(s string, decimals uint8) (Amount, error) {
	if decimals > MaxDecimals {
		return Amount{}, ErrInvalidDecimals
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if d.IsNegative() {
		return Amount{}, fmt.Errorf("%w: %q is negative", ErrInvalidAmount, s)
	}
	shifted := d.Shift(int32(decimals))
	if !shifted.IsInteger() {
		return Amount{}, fmt.Errorf("%w: %q has more than %d decimals", ErrInvalidAmount, s, decimals)
	}
	raw, overflow := uint256.FromBig(shifted.BigInt())
	if overflow {
		return Amount{}, ErrAmountOverflow
	}
	return Amount{Raw: *raw, Decimals: decimals}, nil
}

// ParseRaw parses a base-10 raw integer amount.
func ParseRaw(s string) (uint256.Int, error) {
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return uint256.Int{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return *v, nil
}

// Decimal returns the decimal-adjusted value.
func (a Amount) Decimal() decimal.Decimal {
	return toHuman(a.Raw, a.Decimals)
}

// String formats the amount with exactly Decimals fractional digits.
func (a Amount) String() string {
	return a.Decimal().StringFixed(int32(a.Decimals))
}

func toHuman(raw uint256.Int, decimals uint8) decimal.Decimal {
	return decimal.NewFromBigInt(raw.ToBig(), -int32(decimals))
}
