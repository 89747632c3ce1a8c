package bfs_test

import (
	"testing"

	"github.com/katalvlaran/smpls/bfs"
	"github.com/katalvlaran/smpls/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain of N states.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := core.New[int, string]()
	prev := g.AddState(0)
	for i := 1; i <= N; i++ {
		next := g.AddState(i)
		_, _ = g.AddEdge(prev, "e", next)
		prev = next
	}
	start := []core.StateID{0}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, start)
	}
}
