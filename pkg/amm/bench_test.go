package amm

import (
	"testing"

	"github.com/holiman/uint256"
)

func BenchmarkQuoteSwap(b *testing.B) {
	rIn, _ := uint256.FromDecimal("13451234567890")
	rOut, _ := uint256.FromDecimal("98765432109876")
	pool, err := NewPool(*rIn, *rOut, 9, 6, MustFeeSchedule(50, 30, 20, 0))
	if err != nil {
		b.Fatal(err)
	}
	in := u(1_000_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = QuoteSwap(pool, AToB, in)
	}
}

func BenchmarkGetAmountOut_NoAlloc(b *testing.B) {
	rIn := u(13_451_234_567_890)
	rOut := u(98_765_432_109_876)
	in := u(1_000_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = GetAmountOut(in, rIn, rOut)
	}
}
