package amm

import "fmt"

const (
	// BasisPointMax is 100% expressed in basis points.
	BasisPointMax = 10_000

	// BaseFeeBp is the protocol swap fee charged on top of the four
	// configurable fees of every pool.
	BaseFeeBp = 100
)

// FeeSchedule is the set of basis-point fees a pool charges on swap input.
// It is immutable once built by NewFeeSchedule. The zero value is a valid
// schedule that charges only the base fee.
type FeeSchedule struct {
	lpBuilderFeeBp      int
	burnFeeBp           int
	creatorRoyaltyFeeBp int
	rewardsFeeBp        int
}

// NewFeeSchedule validates and returns a fee schedule. Each fee must be
// non-negative and the total including BaseFeeBp must stay below
// BasisPointMax so that a swap always keeps a positive share of its input.
func NewFeeSchedule(lpBuilderFeeBp, burnFeeBp, creatorRoyaltyFeeBp, rewardsFeeBp int) (FeeSchedule, error) {
	for _, bp := range [...]int{lpBuilderFeeBp, burnFeeBp, creatorRoyaltyFeeBp, rewardsFeeBp} {
		if bp < 0 || bp >= BasisPointMax {
			return FeeSchedule{}, fmt.Errorf("%w: fee %d bp out of range", ErrInvalidFeeSchedule, bp)
		}
	}
	fs := FeeSchedule{
		lpBuilderFeeBp:      lpBuilderFeeBp,
		burnFeeBp:           burnFeeBp,
		creatorRoyaltyFeeBp: creatorRoyaltyFeeBp,
		rewardsFeeBp:        rewardsFeeBp,
	}
	if total := fs.TotalFeeBp(); total >= BasisPointMax {
		return FeeSchedule{}, fmt.Errorf("%w: total fee %d bp", ErrInvalidFeeSchedule, total)
	}
	return fs, nil
}

// MustFeeSchedule is like NewFeeSchedule but panics on an invalid schedule.
func MustFeeSchedule(lpBuilderFeeBp, burnFeeBp, creatorRoyaltyFeeBp, rewardsFeeBp int) FeeSchedule {
	fs, err := NewFeeSchedule(lpBuilderFeeBp, burnFeeBp, creatorRoyaltyFeeBp, rewardsFeeBp)
	if err != nil {
		panic(err)
	}
	return fs
}

func (f FeeSchedule) LpBuilderFeeBp() int      { return f.lpBuilderFeeBp }
func (f FeeSchedule) BurnFeeBp() int           { return f.burnFeeBp }
func (f FeeSchedule) CreatorRoyaltyFeeBp() int { return f.creatorRoyaltyFeeBp }
func (f FeeSchedule) RewardsFeeBp() int        { return f.rewardsFeeBp }

// TotalFeeBp returns the base fee plus the four configurable fees.
func (f FeeSchedule) TotalFeeBp() int {
	return BaseFeeBp + f.lpBuilderFeeBp + f.burnFeeBp + f.creatorRoyaltyFeeBp + f.rewardsFeeBp
}

// NetBp returns the share of swap input, in basis points, that reaches the
// curve after all fees.
func (f FeeSchedule) NetBp() int {
	return BasisPointMax - f.TotalFeeBp()
}

func (f FeeSchedule) String() string {
	return fmt.Sprintf("lp=%dbp burn=%dbp royalty=%dbp rewards=%dbp total=%dbp",
		f.lpBuilderFeeBp, f.burnFeeBp, f.creatorRoyaltyFeeBp, f.rewardsFeeBp, f.TotalFeeBp())
}
