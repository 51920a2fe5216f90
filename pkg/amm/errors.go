package amm

import "errors"

var (
	// ErrInvalidFeeSchedule is returned when a fee is negative or the total
	// fee including the base fee reaches 10,000 bp.
	ErrInvalidFeeSchedule = errors.New("invalid fee schedule")

	// ErrEmptyPool is returned by liquidity quotes against a pool with a zero
	// reserve on the side the deposit is priced from.
	ErrEmptyPool = errors.New("pool has empty reserves")

	// ErrAmountOutsideLiquidity is returned when a swap cannot be filled by the
	// pool's reserves.
	ErrAmountOutsideLiquidity = errors.New("amount outside pool liquidity")

	// ErrZeroEffectiveInput is returned when the input left after fees is zero.
	ErrZeroEffectiveInput = errors.New("effective input is zero after fees")

	// ErrSlippageTooHigh is returned when the tolerance leaves no positive
	// minimum output.
	ErrSlippageTooHigh = errors.New("slippage tolerance too high for trade size")

	ErrInvalidDecimals      = errors.New("decimals must be between 0 and 18")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrAmountOverflow       = errors.New("amount overflows 256 bits")
	ErrInvalidDirection     = errors.New("invalid swap direction")
	ErrInsufficientLpSupply = errors.New("lp amount exceeds lp supply")
)
