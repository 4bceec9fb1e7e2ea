package assemble_test

import (
	"testing"

	"github.com/katalvlaran/tilemosaic/adjacency"
	"github.com/katalvlaran/tilemosaic/assemble"
	"github.com/katalvlaran/tilemosaic/internal/mosaictest"
)

// BenchmarkAssemble measures a 12×12 mosaic of 14×14 tiles. Tiles are a
// little larger than typical puzzle input so every border gets a unique code.
// Complexity: O(N·8·D²)
func BenchmarkAssemble(b *testing.B) {
	cfg := mosaictest.DefaultConfig()
	cfg.Side, cfg.TileSize = 12, 14
	m, err := mosaictest.Generate(cfg)
	if err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}
	adj, err := adjacency.Resolve(m.Tiles)
	if err != nil {
		b.Fatalf("setup Resolve failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = assemble.Assemble(m.Tiles, adj)
	}
}
