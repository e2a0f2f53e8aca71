package bench

import (
	"context"
	"math/big"
	"testing"

	"qacode/algebra"
	"qacode/internal/kfield"
	"qacode/numtheory"

	"github.com/tuneinsight/lattigo/v4/utils"
)

func BenchmarkAnalyzeSemisimple(b *testing.B) {
	ctx := context.Background()
	param := []int64{3, 5, 7, 9}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := algebra.Analyze(ctx, 2, 1, param); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAnalyzeParallel(b *testing.B) {
	ctx := context.Background()
	param := []int64{5, 5, 32, 21}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := algebra.Analyze(ctx, 2, 1, param, algebra.WithParallelism(4)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDivisorVectors(b *testing.B) {
	radical := []uint64{45, 63, 105}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = algebra.DivisorVectors(radical)
	}
}

func BenchmarkMultiplicativeOrder(b *testing.B) {
	q := new(big.Int).Exp(big.NewInt(3), big.NewInt(200), nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := numtheory.MultiplicativeOrder(q, 1000003); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFindIrreducible(b *testing.B) {
	prng, err := utils.NewKeyedPRNG([]byte("bench"))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := kfield.FindIrreducible(2, 16, prng); err != nil {
			b.Fatal(err)
		}
	}
}
