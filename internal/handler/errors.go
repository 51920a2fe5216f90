package handler

import "github.com/gofiber/fiber/v3"

// ErrInvalidQueryParameters indicates that the request query string could not
// be parsed into the expected structure.
var ErrInvalidQueryParameters = fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")

// ErrSameTokens is returned when src and dst are identical.
var ErrSameTokens = fiber.NewError(fiber.StatusBadRequest, "src and dst cannot be the same")

// ErrSameTokenBadRequest maps a same-token failure from the quote layer to a
// 400 error.
var ErrSameTokenBadRequest = fiber.NewError(fiber.StatusBadRequest, "src and dst tokens cannot be the same")

// ErrPairMismatchBadRequest is returned when the tokens are not the pool's pair.
var ErrPairMismatchBadRequest = fiber.NewError(fiber.StatusBadRequest, "tokens do not match the pool pair")

var ErrUnknownPoolNotFound = fiber.NewError(fiber.StatusNotFound, "pool not found")

// ErrQuoteFailedInternal signals a generic server-side quoting error.
var ErrQuoteFailedInternal = fiber.NewError(fiber.StatusInternalServerError, "quote failed")

// NewFieldRequired returns a 400 Bad Request for a missing query field.
func NewFieldRequired(field string) error {
	return fiber.NewError(fiber.StatusBadRequest, field+" is required")
}

// NewInvalidAmount wraps an amount parsing error into a 400 Bad Request.
func NewInvalidAmount(field string, err error) error {
	return fiber.NewError(fiber.StatusBadRequest, "invalid "+field+": "+err.Error())
}

// NewAmountNonPositive is returned when an amount is zero.
func NewAmountNonPositive(field string) error {
	return fiber.NewError(fiber.StatusBadRequest, field+" must be greater than zero")
}

// NewInvalidSlippage returns a 400 Bad Request for a malformed slippage_bp.
func NewInvalidSlippage(raw string) error {
	return fiber.NewError(fiber.StatusBadRequest, "invalid slippage_bp: "+raw)
}
