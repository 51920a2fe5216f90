package service

import (
	"context"
	"log/slog"

	"github.com/holiman/uint256"

	"github.com/Urban-Blazer/srm-front-end-sub001/internal/pools"
	"github.com/Urban-Blazer/srm-front-end-sub001/pkg/amm"
)

// QuoteService quotes swaps and liquidity changes against pools served by a
// pools.Source. It holds no per-request state.
type QuoteService struct {
	BaseService
	pools             pools.Source
	defaultSlippageBp uint64
}

// NewQuoteService constructs a QuoteService. defaultSlippageBp applies to
// requests that do not carry their own tolerance.
func NewQuoteService(logger *slog.Logger, source pools.Source, defaultSlippageBp uint64) *QuoteService {
	return &QuoteService{
		BaseService:       BaseService{logger: logger},
		pools:             source,
		defaultSlippageBp: defaultSlippageBp,
	}
}

type SwapParams struct {
	Pool     string
	Src      string
	Dst      string
	AmountIn uint256.Int
	// SlippageBp overrides the service default when set.
	SlippageBp *uint64
}

type SwapResult struct {
	Snapshot     pools.Snapshot
	Quote        amm.SwapQuote
	SlippageBp   uint64
	MinAmountOut uint256.Int
	Impact       amm.ImpactLevel
	Blocked      bool
}

type DepositParams struct {
	Pool       string
	Src        string
	Amount     uint256.Int
	SlippageBp *uint64
}

type DepositResult struct {
	Snapshot   pools.Snapshot
	Quote      amm.LiquidityQuote
	SlippageBp uint64
	// FirstDeposit is set when the pool has no LP supply yet; MinLpOut is
	// then zero and initial pricing is up to the depositor.
	FirstDeposit bool
}

type WithdrawParams struct {
	Pool       string
	LpAmount   uint256.Int
	SlippageBp *uint64
}

type WithdrawResult struct {
	Snapshot   pools.Snapshot
	Quote      amm.WithdrawQuote
	SlippageBp uint64
}

// Estimate returns the raw amount of dst received for amountIn of src.
func (s *QuoteService) Estimate(ctx context.Context, pool, src, dst string, amountIn uint256.Int) (uint256.Int, error) {
	res, err := s.quoteSwap(ctx, pool, src, dst, amountIn)
	if err != nil {
		return uint256.Int{}, err
	}
	return res.Quote.AmountOut, nil
}

// QuoteSwap quotes an exact-input swap and applies the slippage and
// price-impact guards. A blocked trade is a successful quote with Blocked set.
func (s *QuoteService) QuoteSwap(ctx context.Context, p SwapParams) (SwapResult, error) {
	res, err := s.quoteSwap(ctx, p.Pool, p.Src, p.Dst, p.AmountIn)
	if err != nil {
		return SwapResult{}, err
	}

	res.SlippageBp = s.slippage(p.SlippageBp)
	res.MinAmountOut, err = amm.ComputeMinOut(res.Quote.AmountOut, res.SlippageBp)
	if err != nil {
		return SwapResult{}, err
	}
	res.Impact = amm.ClassifyImpact(res.Quote.PriceImpact)
	res.Blocked = res.Impact == amm.ImpactBlocked

	if res.Impact != amm.ImpactNormal {
		s.logger.Info("high price impact", "pool", res.Snapshot.ID, "impact_pct", res.Quote.PriceImpact.StringFixed(4), "blocked", res.Blocked)
	}
	return res, nil
}

func (s *QuoteService) quoteSwap(ctx context.Context, poolID, src, dst string, amountIn uint256.Int) (SwapResult, error) {
	s.logger.Debug("quoting swap", "pool", poolID, "src", src, "dst", dst, "in", amountIn.Dec())

	snap, err := s.pools.Snapshot(ctx, poolID)
	if err != nil {
		return SwapResult{}, err
	}
	dir, err := snap.Direction(src, dst)
	if err != nil {
		return SwapResult{}, err
	}
	q, err := amm.QuoteSwap(snap.Pool, dir, amountIn)
	if err != nil {
		return SwapResult{}, s.poolError(snap.ID, err)
	}

	s.logger.Debug("swap quoted", "pool", snap.ID, "dir", dir.String(),
		"effective_in", q.EffectiveAmountIn.Dec(), "out", q.AmountOut.Dec(), "impact_bp", q.PriceImpactBp)
	return SwapResult{Snapshot: snap, Quote: q}, nil
}

// QuoteDeposit quotes a proportional deposit entered in token p.Src.
func (s *QuoteService) QuoteDeposit(ctx context.Context, p DepositParams) (DepositResult, error) {
	snap, err := s.pools.Snapshot(ctx, p.Pool)
	if err != nil {
		return DepositResult{}, err
	}
	dir, err := snap.DepositDirection(p.Src)
	if err != nil {
		return DepositResult{}, err
	}

	tol := s.slippage(p.SlippageBp)
	q, err := amm.QuoteLiquidityDeposit(snap.Pool, snap.LPSupply, dir, p.Amount, tol)
	if err != nil {
		return DepositResult{}, s.poolError(snap.ID, err)
	}

	s.logger.Debug("deposit quoted", "pool", snap.ID, "dir", dir.String(),
		"deposit", q.DepositIn.Dec(), "paired", q.PairedAmount.Dec(), "min_lp_out", q.MinLpOut.Dec())
	return DepositResult{
		Snapshot:     snap,
		Quote:        q,
		SlippageBp:   tol,
		FirstDeposit: snap.LPSupply.IsZero(),
	}, nil
}

// QuoteWithdraw quotes burning p.LpAmount LP tokens.
func (s *QuoteService) QuoteWithdraw(ctx context.Context, p WithdrawParams) (WithdrawResult, error) {
	snap, err := s.pools.Snapshot(ctx, p.Pool)
	if err != nil {
		return WithdrawResult{}, err
	}

	tol := s.slippage(p.SlippageBp)
	q, err := amm.QuoteLiquidityWithdraw(snap.Pool, snap.LPSupply, p.LpAmount, tol)
	if err != nil {
		return WithdrawResult{}, s.poolError(snap.ID, err)
	}

	s.logger.Debug("withdraw quoted", "pool", snap.ID,
		"lp", q.LpAmount.Dec(), "amount_a", q.AmountA.Dec(), "amount_b", q.AmountB.Dec())
	return WithdrawResult{Snapshot: snap, Quote: q, SlippageBp: tol}, nil
}

func (s *QuoteService) slippage(override *uint64) uint64 {
	if override != nil {
		return *override
	}
	return s.defaultSlippageBp
}
