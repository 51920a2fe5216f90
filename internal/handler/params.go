package handler

import (
	"strconv"
	"strings"

	"github.com/holiman/uint256"

	"github.com/Urban-Blazer/srm-front-end-sub001/pkg/amm"
)

type field struct {
	name  string
	value string
}

// requireFields reports the first field, in order, that is blank.
func requireFields(fields ...field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return NewFieldRequired(f.name)
		}
	}
	return nil
}

// parsePositiveAmount parses a raw base-10 integer amount and rejects zero.
func parsePositiveAmount(field, raw string) (uint256.Int, error) {
	if raw == "" {
		return uint256.Int{}, NewFieldRequired(field)
	}
	amount, err := amm.ParseRaw(raw)
	if err != nil {
		return uint256.Int{}, NewInvalidAmount(field, err)
	}
	if amount.IsZero() {
		return uint256.Int{}, NewAmountNonPositive(field)
	}
	return amount, nil
}

// parseSlippage returns nil when raw is empty so the service default applies.
func parseSlippage(raw string) (*uint64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, NewInvalidSlippage(raw)
	}
	return &v, nil
}
