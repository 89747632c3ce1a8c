package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/smpls/bfs"
	"github.com/katalvlaran/smpls/core"
	"github.com/katalvlaran/smpls/dfs"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Summarize the model automata",
	Long: `Print state and edge counts, the states reachable from the initial
states, the elementary cycles and a shortest word to every final state
of each automaton in the model.`,
	Args: cobra.NoArgs,
	RunE: traced(func(ctx context.Context, cmd *cobra.Command, span trace.Span) error {
		doc, err := loadModel(ctx)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "matrices: %d\n", len(doc.Matrices))
		if doc.FSM != nil {
			fsm, err := doc.ScenarioFSM()
			if err != nil {
				return err
			}
			if err = summarize(out, span, "fsm", fsm); err != nil {
				return err
			}
		}
		if doc.IOA != nil {
			ioa, err := doc.IOAutomaton()
			if err != nil {
				return err
			}
			if err = summarize(out, span, "ioa", ioa); err != nil {
				return err
			}
		}
		return nil
	}),
}

func summarize[E any](out io.Writer, span trace.Span, name string, g *core.Graph[int, E]) error {
	reach, err := dfs.Reachable(g, g.Initial())
	if err != nil {
		return err
	}
	_, cycles, err := dfs.DetectCycles(g)
	if err != nil {
		return err
	}
	span.SetAttributes(
		attribute.Int("smpls."+name+".states", g.StateCount()),
		attribute.Int("smpls."+name+".cycles", len(cycles)))

	fmt.Fprintf(out, "%s: %d states, %d edges, %d initial, %d final\n",
		name, g.StateCount(), g.EdgeCount(), len(g.Initial()), len(g.Final()))
	fmt.Fprintf(out, "  reachable: %v\n", labels(g, reach))
	for _, c := range cycles {
		fmt.Fprintf(out, "  cycle: %v\n", labels(g, c))
	}
	for _, f := range g.Final() {
		l, _ := g.Label(f)
		word, err := bfs.ShortestWord(g, f)
		if errors.Is(err, bfs.ErrUnreached) {
			fmt.Fprintf(out, "  final %d: unreachable\n", l)
			continue
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  final %d: shortest word %v\n", l, word)
	}

	return nil
}

func labels[E any](g *core.Graph[int, E], ids []core.StateID) []int {
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		l, _ := g.Label(id)
		out = append(out, l)
	}
	return out
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
