package core_test

import (
	"fmt"

	"github.com/katalvlaran/smpls/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create a graph with integer state labels and string edge labels:
	g := core.New[int, string]()

	// 2) Add states and edges:
	s0 := g.AddState(0)
	s1 := g.AddState(1)
	s2 := g.AddState(2)
	_, _ = g.AddEdge(s0, "a", s1)
	_, _ = g.AddEdge(s1, "b", s2)
	_ = g.AddInitial(s0)
	_ = g.AddFinal(s2)

	// 3) Inspect outgoing edges:
	out, _ := g.Outgoing(s0)
	fmt.Println("edges from 0:", len(out), out[0].Label)

	// 4) Remove a state and its edges:
	_ = g.RemoveState(s1)
	fmt.Println("states:", g.StateCount(), "edges:", g.EdgeCount())
	fmt.Println("initial:", g.Initial(), "final:", g.Final())

	// Output:
	// edges from 0: 1 a
	// states: 2 edges: 0
	// initial: [0] final: [2]
}

// ExampleGraph_StateByLabel shows label lookup on composite labels.
func ExampleGraph_StateByLabel() {
	type token struct{ ID, K int }

	g := core.New[token, float64]()
	g.AddState(token{ID: 7, K: 0})
	id := g.AddState(token{ID: 7, K: 1})

	got, err := g.StateByLabel(token{ID: 7, K: 1})
	fmt.Println(got == id, err)

	// Output:
	// true <nil>
}
