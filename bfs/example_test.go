package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/smpls/bfs"
	"github.com/katalvlaran/smpls/core"
)

// ExampleShortestWord finds the shortest accepted word of a small automaton
// with a long and a short branch.
func ExampleShortestWord() {
	g := core.New[int, string]()
	s0, s1, s2, s3 := g.AddState(0), g.AddState(1), g.AddState(2), g.AddState(3)
	_, _ = g.AddEdge(s0, "load", s1)
	_, _ = g.AddEdge(s1, "process", s2)
	_, _ = g.AddEdge(s2, "unload", s3)
	_, _ = g.AddEdge(s0, "skip", s3)
	_ = g.AddInitial(s0)
	_ = g.AddFinal(s3)

	word, _ := bfs.ShortestWord(g, s3)
	fmt.Println(word)

	// Output:
	// [skip]
}
