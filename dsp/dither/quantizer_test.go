package dither

import (
	"math"
	"math/rand/v2"
	"testing"
)

func newTestQuantizer(t *testing.T, opts ...Option) *Quantizer {
	t.Helper()
	q, err := NewQuantizer(opts...)
	if err != nil {
		t.Fatalf("NewQuantizer() error = %v", err)
	}
	return q
}

func TestLimits(t *testing.T) {
	tests := []struct {
		bits   int
		lo, hi int
	}{
		{8, -128, 127},
		{16, -32768, 32767},
		{24, -8388608, 8388607},
		{32, -2147483648, 2147483647},
	}
	for _, tt := range tests {
		q := newTestQuantizer(t, WithBitDepth(tt.bits))
		lo, hi := q.Limits()
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("%d-bit Limits() = (%d, %d), want (%d, %d)", tt.bits, lo, hi, tt.lo, tt.hi)
		}
		if got := q.ProcessInteger(10); got != tt.hi {
			t.Errorf("%d-bit ProcessInteger(10) = %d, want %d", tt.bits, got, tt.hi)
		}
		if got := q.ProcessInteger(-10); got != tt.lo {
			t.Errorf("%d-bit ProcessInteger(-10) = %d, want %d", tt.bits, got, tt.lo)
		}
	}
}

func TestProcessIntegerNoDither(t *testing.T) {
	q := newTestQuantizer(t)
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{0.25, 8192},
		{0.5, 16384},
		{1, 32767},
		{-1, -32767},
		{math.NaN(), 0},
		{math.Inf(1), 32767},
		{math.Inf(-1), -32768},
	}
	for _, tt := range tests {
		if got := q.ProcessInteger(tt.in); got != tt.want {
			t.Errorf("ProcessInteger(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNoDitherIsDeterministic(t *testing.T) {
	a := newTestQuantizer(t, WithBitDepth(24))
	b := newTestQuantizer(t, WithBitDepth(24))
	for i := range 100 {
		x := math.Sin(float64(i) * 0.1)
		if a.ProcessInteger(x) != b.ProcessInteger(x) {
			t.Fatalf("sample %d differs between quantizers", i)
		}
	}
}

func TestTriangularDitherIsUnbiased(t *testing.T) {
	q := newTestQuantizer(t,
		WithDitherType(DitherTriangular),
		WithRNG(rand.New(rand.NewPCG(1, 2))),
	)
	// 0.3 LSB is lost entirely without dither.
	in := 0.3 / 32767
	const n = 20000
	sum := 0
	for range n {
		sum += q.ProcessInteger(in)
	}
	mean := float64(sum) / n
	if math.Abs(mean-0.3) > 0.05 {
		t.Fatalf("mean = %v, want ~0.3", mean)
	}
}

func TestRectangularDitherBounded(t *testing.T) {
	q := newTestQuantizer(t,
		WithDitherType(DitherRectangular),
		WithRNG(rand.New(rand.NewPCG(3, 4))),
	)
	for range 1000 {
		if got := q.ProcessInteger(0); got < -1 || got > 1 {
			t.Fatalf("ProcessInteger(0) = %d, want within one LSB", got)
		}
	}
}

func TestProcessBlock(t *testing.T) {
	q := newTestQuantizer(t)
	dst := make([]int, 2)
	if n := q.ProcessBlock(dst, []float64{0.5, -0.5, 1}); n != 2 {
		t.Fatalf("ProcessBlock() = %d, want 2", n)
	}
	if dst[0] != 16384 || dst[1] != -16384 {
		t.Fatalf("dst = %v, want [16384 -16384]", dst)
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize(16384, 16); got != 0.5 {
		t.Fatalf("Normalize(16384, 16) = %v, want 0.5", got)
	}
	if got := Normalize(-128, 8); got != -1 {
		t.Fatalf("Normalize(-128, 8) = %v, want -1", got)
	}
	if got := Normalize(5, 0); got != 0 {
		t.Fatalf("Normalize(5, 0) = %v, want 0", got)
	}
}

func TestGetters(t *testing.T) {
	q := newTestQuantizer(t, WithBitDepth(24), WithDitherType(DitherTriangular), WithDitherAmplitude(0.5))
	if q.BitDepth() != 24 || q.DitherType() != DitherTriangular || q.DitherAmplitude() != 0.5 {
		t.Fatalf("getters = %d/%v/%v", q.BitDepth(), q.DitherType(), q.DitherAmplitude())
	}
}

func BenchmarkProcessInteger(b *testing.B) {
	q, err := NewQuantizer(WithDitherType(DitherTriangular), WithRNG(rand.New(rand.NewPCG(42, 0))))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		q.ProcessInteger(0.5)
	}
}
