package handler

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/holiman/uint256"

	"github.com/Urban-Blazer/srm-front-end-sub001/internal/service"
	"github.com/Urban-Blazer/srm-front-end-sub001/pkg/amm"
)

// QuoteHandler serves the JSON quote endpoints under /quote.
type QuoteHandler struct {
	BaseHandler
	service *service.QuoteService
}

func NewQuoteHandler(logger *slog.Logger, svc *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		BaseHandler: BaseHandler{
			logger: logger,
		},
		service: svc,
	}
}

// Register mounts the quote routes on r.
func (h *QuoteHandler) Register(r fiber.Router) {
	r.Get("/swap", h.Swap())
	r.Get("/deposit", h.Deposit())
	r.Get("/withdraw", h.Withdraw())
}

type SwapRequest struct {
	Pool       string `query:"pool"`
	Src        string `query:"src"`
	Dst        string `query:"dst"`
	AmountIn   string `query:"amount_in"`
	SlippageBp string `query:"slippage_bp"`
}

type SwapResponse struct {
	Pool              string `json:"pool"`
	Src               string `json:"src"`
	Dst               string `json:"dst"`
	Direction         string `json:"direction"`
	AmountIn          string `json:"amount_in"`
	AmountInHuman     string `json:"amount_in_human"`
	EffectiveAmountIn string `json:"effective_amount_in"`
	AmountOut         string `json:"amount_out"`
	AmountOutHuman    string `json:"amount_out_human"`
	MinAmountOut      string `json:"min_amount_out"`
	MinAmountOutHuman string `json:"min_amount_out_human"`
	SlippageBp        uint64 `json:"slippage_bp"`
	PriceImpactPct    string `json:"price_impact_pct"`
	PriceImpactBp     int64  `json:"price_impact_bp"`
	ImpactLevel       string `json:"impact_level"`
	Blocked           bool   `json:"blocked"`
	Fees              string `json:"fees"`
}

// Swap serves GET /quote/swap.
func (h *QuoteHandler) Swap() fiber.Handler {
	return func(c fiber.Ctx) error {
		var req SwapRequest
		if err := c.Bind().Query(&req); err != nil {
			h.logger.Debug("failed to bind query parameters", "err", err)
			return ErrInvalidQueryParameters
		}
		if err := requireFields(field{"pool", req.Pool}, field{"src", req.Src}, field{"dst", req.Dst}); err != nil {
			return err
		}
		if strings.EqualFold(req.Src, req.Dst) {
			return ErrSameTokens
		}
		amountIn, err := parsePositiveAmount("amount_in", req.AmountIn)
		if err != nil {
			return err
		}
		slippage, err := parseSlippage(req.SlippageBp)
		if err != nil {
			return err
		}

		res, err := h.service.QuoteSwap(c.Context(), service.SwapParams{
			Pool:       req.Pool,
			Src:        req.Src,
			Dst:        req.Dst,
			AmountIn:   amountIn,
			SlippageBp: slippage,
		})
		if err != nil {
			return h.handleServiceError(err)
		}

		q := res.Quote
		decIn := res.Snapshot.InputDecimals(q.Direction)
		decOut := res.Snapshot.OutputDecimals(q.Direction)
		return c.JSON(SwapResponse{
			Pool:              res.Snapshot.ID,
			Src:               req.Src,
			Dst:               req.Dst,
			Direction:         q.Direction.String(),
			AmountIn:          q.AmountIn.Dec(),
			AmountInHuman:     human(q.AmountIn, decIn),
			EffectiveAmountIn: q.EffectiveAmountIn.Dec(),
			AmountOut:         q.AmountOut.Dec(),
			AmountOutHuman:    human(q.AmountOut, decOut),
			MinAmountOut:      res.MinAmountOut.Dec(),
			MinAmountOutHuman: human(res.MinAmountOut, decOut),
			SlippageBp:        res.SlippageBp,
			PriceImpactPct:    q.PriceImpact.StringFixed(4),
			PriceImpactBp:     q.PriceImpactBp,
			ImpactLevel:       res.Impact.String(),
			Blocked:           res.Blocked,
			Fees:              res.Snapshot.Pool.Fees.String(),
		})
	}
}

type DepositRequest struct {
	Pool       string `query:"pool"`
	Src        string `query:"src"`
	Amount     string `query:"amount"`
	SlippageBp string `query:"slippage_bp"`
}

type DepositResponse struct {
	Pool              string `json:"pool"`
	Src               string `json:"src"`
	Direction         string `json:"direction"`
	DepositIn         string `json:"deposit_in"`
	DepositInHuman    string `json:"deposit_in_human"`
	PairedAmount      string `json:"paired_amount"`
	PairedAmountHuman string `json:"paired_amount_human"`
	ExpectedLp        string `json:"expected_lp"`
	MinLpOut          string `json:"min_lp_out"`
	SlippageBp        uint64 `json:"slippage_bp"`
	FirstDeposit      bool   `json:"first_deposit"`
}

// Deposit serves GET /quote/deposit.
func (h *QuoteHandler) Deposit() fiber.Handler {
	return func(c fiber.Ctx) error {
		var req DepositRequest
		if err := c.Bind().Query(&req); err != nil {
			h.logger.Debug("failed to bind query parameters", "err", err)
			return ErrInvalidQueryParameters
		}
		if err := requireFields(field{"pool", req.Pool}, field{"src", req.Src}); err != nil {
			return err
		}
		amount, err := parsePositiveAmount("amount", req.Amount)
		if err != nil {
			return err
		}
		slippage, err := parseSlippage(req.SlippageBp)
		if err != nil {
			return err
		}

		res, err := h.service.QuoteDeposit(c.Context(), service.DepositParams{
			Pool:       req.Pool,
			Src:        req.Src,
			Amount:     amount,
			SlippageBp: slippage,
		})
		if err != nil {
			return h.handleServiceError(err)
		}

		q := res.Quote
		return c.JSON(DepositResponse{
			Pool:              res.Snapshot.ID,
			Src:               req.Src,
			Direction:         q.Direction.String(),
			DepositIn:         q.DepositIn.Dec(),
			DepositInHuman:    human(q.DepositIn, res.Snapshot.InputDecimals(q.Direction)),
			PairedAmount:      q.PairedAmount.Dec(),
			PairedAmountHuman: human(q.PairedAmount, res.Snapshot.OutputDecimals(q.Direction)),
			ExpectedLp:        q.ExpectedLp.Dec(),
			MinLpOut:          q.MinLpOut.Dec(),
			SlippageBp:        res.SlippageBp,
			FirstDeposit:      res.FirstDeposit,
		})
	}
}

type WithdrawRequest struct {
	Pool       string `query:"pool"`
	LpAmount   string `query:"lp_amount"`
	SlippageBp string `query:"slippage_bp"`
}

type WithdrawResponse struct {
	Pool       string `json:"pool"`
	TokenA     string `json:"token_a"`
	TokenB     string `json:"token_b"`
	LpAmount   string `json:"lp_amount"`
	AmountA    string `json:"amount_a"`
	AmountB    string `json:"amount_b"`
	MinAmountA string `json:"min_amount_a"`
	MinAmountB string `json:"min_amount_b"`
	SlippageBp uint64 `json:"slippage_bp"`
}

// Withdraw serves GET /quote/withdraw.
func (h *QuoteHandler) Withdraw() fiber.Handler {
	return func(c fiber.Ctx) error {
		var req WithdrawRequest
		if err := c.Bind().Query(&req); err != nil {
			h.logger.Debug("failed to bind query parameters", "err", err)
			return ErrInvalidQueryParameters
		}
		if err := requireFields(field{"pool", req.Pool}); err != nil {
			return err
		}
		lpAmount, err := parsePositiveAmount("lp_amount", req.LpAmount)
		if err != nil {
			return err
		}
		slippage, err := parseSlippage(req.SlippageBp)
		if err != nil {
			return err
		}

		res, err := h.service.QuoteWithdraw(c.Context(), service.WithdrawParams{
			Pool:       req.Pool,
			LpAmount:   lpAmount,
			SlippageBp: slippage,
		})
		if err != nil {
			return h.handleServiceError(err)
		}

		q := res.Quote
		return c.JSON(WithdrawResponse{
			Pool:       res.Snapshot.ID,
			TokenA:     res.Snapshot.TokenA,
			TokenB:     res.Snapshot.TokenB,
			LpAmount:   q.LpAmount.Dec(),
			AmountA:    q.AmountA.Dec(),
			AmountB:    q.AmountB.Dec(),
			MinAmountA: q.MinAmountA.Dec(),
			MinAmountB: q.MinAmountB.Dec(),
			SlippageBp: res.SlippageBp,
		})
	}
}

func human(raw uint256.Int, decimals uint8) string {
	return amm.Amount{Raw: raw, Decimals: decimals}.String()
}
