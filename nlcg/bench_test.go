package nlcg_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlopt/nlcg"
	"github.com/katalvlaran/lvlopt/optfunc"
)

// benchmarkQuadratic solves one seeded random quadratic per loop iteration
// from a fixed start, so every run does identical work.
func benchmarkQuadratic(b *testing.B, dim int, v nlcg.Variant) {
	rng := rand.New(rand.NewSource(100))
	q := optfunc.NewRandomQuadratic(dim, rng)
	start := optfunc.UniformStart(rng, dim, -1, 1)

	opts := nlcg.DefaultOptions()
	opts.MaxIterations = 1000
	opts.Variant = v

	x := make([]float64, dim)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(x, start)
		if _, err := nlcg.Minimize(q, x, &opts); err != nil {
			b.Fatalf("Minimize failed: %v", err)
		}
	}
}

// BenchmarkMinimize_PolakRibiere16 measures the acceptance-scenario run.
func BenchmarkMinimize_PolakRibiere16(b *testing.B) {
	benchmarkQuadratic(b, 16, nlcg.PolakRibiere)
}

// BenchmarkMinimize_FletcherReeves16 compares the FR coefficient.
func BenchmarkMinimize_FletcherReeves16(b *testing.B) {
	benchmarkQuadratic(b, 16, nlcg.FletcherReeves)
}

// BenchmarkMinimize_PolakRibiere64 measures a mid-sized dense problem.
func BenchmarkMinimize_PolakRibiere64(b *testing.B) {
	benchmarkQuadratic(b, 64, nlcg.PolakRibiere)
}
