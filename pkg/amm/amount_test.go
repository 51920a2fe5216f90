package amm

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in       string
		decimals uint8
		wantRaw  string
		wantErr  error
	}{
		{in: "1.5", decimals: 6, wantRaw: "1500000"},
		{in: "0.000001", decimals: 6, wantRaw: "1"},
		{in: "42", decimals: 0, wantRaw: "42"},
		{in: "1000000000", decimals: 18, wantRaw: "1000000000000000000000000000"},
		{in: "0.0000001", decimals: 6, wantErr: ErrInvalidAmount},
		{in: "-1", decimals: 6, wantErr: ErrInvalidAmount},
		{in: "abc", decimals: 6, wantErr: ErrInvalidAmount},
		{in: "1", decimals: 19, wantErr: ErrInvalidDecimals},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()

			a, err := ParseAmount(tc.in, tc.decimals)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantRaw, a.Raw.Dec())
			assert.Equal(t, tc.decimals, a.Decimals)
		})
	}
}

func TestParseAmountOverflow(t *testing.T) {
	_, err := ParseAmount("1e80", 0)
	require.ErrorIs(t, err, ErrAmountOverflow)
}

func TestAmountString(t *testing.T) {
	a, err := NewAmount(*uint256.NewInt(1_234_500), 6)
	require.NoError(t, err)
	assert.Equal(t, "1.234500", a.String())
	assert.Equal(t, "1.2345", a.Decimal().String())

	_, err = NewAmount(*uint256.NewInt(1), 19)
	require.ErrorIs(t, err, ErrInvalidDecimals)
}

func TestParseRaw(t *testing.T) {
	v, err := ParseRaw("115792089237316195423570985008687907853269984665640564039457584007913129639935")
	require.NoError(t, err)
	assert.Equal(t, new(uint256.Int).SetAllOne().Dec(), v.Dec())

	_, err = ParseRaw("1.5")
	require.ErrorIs(t, err, ErrInvalidAmount)
	_, err = ParseRaw("")
	require.ErrorIs(t, err, ErrInvalidAmount)
}
