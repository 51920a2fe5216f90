// Package handler defines HTTP request handlers and related utilities.
package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/Urban-Blazer/srm-front-end-sub001/internal/pools"
	"github.com/Urban-Blazer/srm-front-end-sub001/pkg/amm"
)

// BaseHandler provides common dependencies for HTTP handlers.
type BaseHandler struct {
	logger *slog.Logger
}

// domainErrors are quote failures caused by the request against the current
// pool state. They surface to the client with their own message.
var domainErrors = []error{
	amm.ErrInvalidFeeSchedule,
	amm.ErrEmptyPool,
	amm.ErrAmountOutsideLiquidity,
	amm.ErrZeroEffectiveInput,
	amm.ErrSlippageTooHigh,
	amm.ErrInvalidAmount,
	amm.ErrAmountOverflow,
	amm.ErrInsufficientLpSupply,
}

func (h BaseHandler) handleServiceError(err error) error {
	switch {
	case errors.Is(err, pools.ErrUnknownPool):
		return ErrUnknownPoolNotFound
	case errors.Is(err, pools.ErrSameToken):
		return ErrSameTokenBadRequest
	case errors.Is(err, pools.ErrPairMismatch):
		return ErrPairMismatchBadRequest
	}
	for _, target := range domainErrors {
		if errors.Is(err, target) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}
	h.logger.Error("quote failed", "err", err)
	return ErrQuoteFailedInternal
}
