package handler

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/Urban-Blazer/srm-front-end-sub001/internal/service"
)

type EstimateHandler struct {
	BaseHandler
	service *service.QuoteService
}

func NewEstimateHandler(logger *slog.Logger, svc *service.QuoteService) *EstimateHandler {
	return &EstimateHandler{
		BaseHandler: BaseHandler{
			logger: logger,
		},
		service: svc,
	}
}

type EstimateRequest struct {
	Pool     string `query:"pool" json:"pool"`
	Src      string `query:"src" json:"src"`
	Dst      string `query:"dst" json:"dst"`
	AmountIn string `query:"src_amount" json:"amount_in"`
}

// Handle serves GET /estimate and responds with the raw output amount as
// plain text.
func (h *EstimateHandler) Handle() fiber.Handler {
	return func(c fiber.Ctx) error {
		req, err := h.parseAndValidateRequest(c)
		if err != nil {
			return err
		}

		amountIn, err := parsePositiveAmount("src_amount", req.AmountIn)
		if err != nil {
			return err
		}

		amountOut, err := h.service.Estimate(c.Context(), req.Pool, req.Src, req.Dst, amountIn)
		if err != nil {
			return h.handleServiceError(err)
		}

		h.logger.Debug("estimate computed", "pool", req.Pool, "src", req.Src, "dst", req.Dst, "in", amountIn.Dec(), "out", amountOut.Dec())
		return c.SendString(amountOut.Dec())
	}
}

func (h *EstimateHandler) parseAndValidateRequest(c fiber.Ctx) (*EstimateRequest, error) {
	var req EstimateRequest

	if err := c.Bind().Query(&req); err != nil {
		h.logger.Debug("failed to bind query parameters", "err", err)
		return nil, ErrInvalidQueryParameters
	}

	if err := requireFields(
		field{"pool", req.Pool},
		field{"src", req.Src},
		field{"dst", req.Dst},
	); err != nil {
		return nil, err
	}

	if strings.EqualFold(req.Src, req.Dst) {
		return nil, ErrSameTokens
	}

	return &req, nil
}
