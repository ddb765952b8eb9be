package solver_test

import (
	"context"
	"testing"

	"github.com/robalobadob/wordlesolver/internal/solver"
)

func BenchmarkEncode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = solver.Encode("eerie", "three")
	}
}

func BenchmarkEntropy(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := solver.Entropy("crate", sampleWords); err != nil {
			b.Fatalf("Entropy failed: %v", err)
		}
	}
}

func BenchmarkEntropyByEnumeration(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := solver.EntropyByEnumeration("crate", sampleWords); err != nil {
			b.Fatalf("EntropyByEnumeration failed: %v", err)
		}
	}
}

func BenchmarkRank_Sequential(b *testing.B) {
	benchmarkRank(b, 1)
}

func BenchmarkRank_Parallel(b *testing.B) {
	benchmarkRank(b, 0)
}

func benchmarkRank(b *testing.B, workers int) {
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solver.Rank(ctx, sampleWords, sampleWords, solver.RankOptions{Workers: workers}); err != nil {
			b.Fatalf("Rank failed: %v", err)
		}
	}
}
