package adjacency_test

import (
	"testing"

	"github.com/katalvlaran/tilemosaic/adjacency"
	"github.com/katalvlaran/tilemosaic/internal/mosaictest"
)

// BenchmarkResolve measures the pairwise fingerprint comparison on a
// 12×12 mosaic.
// Complexity: O(N²·D)
func BenchmarkResolve(b *testing.B) {
	cfg := mosaictest.DefaultConfig()
	cfg.Side, cfg.TileSize = 12, 14
	m, err := mosaictest.Generate(cfg)
	if err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = adjacency.Resolve(m.Tiles)
	}
}
