// Package matrix_test provides benchmarks for core matrix operations,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Matrix
	sinkF float64
)

func BenchmarkProduct(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{16, 64, 128} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustNew(b, n, n)
			B := mustNew(b, n, n)
			fillRand(A, 1337)
			fillRand(B, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Product(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

// Laplace expansion is O(n!); sizes stay tiny on purpose.
func BenchmarkDeterminant(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{3, 5, 7} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustNew(b, n, n)
			fillRand(A, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkF = A.Determinant()
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{3, 5} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustNew(b, n, n)
			fillRand(A, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM = A.Inverse()
			}
		})
	}
}
