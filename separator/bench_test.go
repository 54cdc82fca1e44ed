// SPDX-License-Identifier: MIT

package separator_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/axisep/separator"
)

// BenchmarkSolve_100 measures a full run on a random instance at the
// default capacity. The Solver is built once; Solve resets it every time.
func BenchmarkSolve_100(b *testing.B) {
	pts := randomPoints(rand.New(rand.NewSource(1)), separator.DefaultCapacity)
	s, err := separator.New(pts)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Solve()
	}
}

// BenchmarkNew_100 measures validation, sorting, relation setup and
// candidate generation.
func BenchmarkNew_100(b *testing.B) {
	pts := randomPoints(rand.New(rand.NewSource(1)), separator.DefaultCapacity)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = separator.New(pts)
	}
}
