package mapgen_test

import (
	"testing"

	"github.com/katalvlaran/tilepath/mapgen"
)

// BenchmarkGenerate measures a 40×40 map at 30% density.
// Each committed obstacle costs one O(W×H) flood fill.
func BenchmarkGenerate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := mapgen.Generate(40, 40, 0.3, int64(i+1)); err != nil {
			b.Fatal(err)
		}
	}
}
