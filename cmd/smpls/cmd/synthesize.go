package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/smpls/model"
	"github.com/katalvlaran/smpls/smpls"
)

var synthesizeCmd = &cobra.Command{
	Use:   "synthesize",
	Short: "Synthesize the scenario FSM and matrices of an I/O automaton",
	Long: `Synthesize the scenario FSM and matrices of an I/O automaton and write
them as a model that convert accepts. Matrices are padded to one square size.`,
	Args: cobra.NoArgs,
	RunE: traced(func(ctx context.Context, cmd *cobra.Command, span trace.Span) error {
		doc, err := loadModel(ctx)
		if err != nil {
			return err
		}
		m, err := doc.EventModel(libOptions()...)
		if err != nil {
			return err
		}
		syn, err := m.Synthesize()
		if err != nil {
			return err
		}
		span.SetAttributes(
			attribute.Int("smpls.scenarios", len(syn.Table)),
			attribute.Int("smpls.resources", syn.Resources))

		smpls.SquareTable(syn.Table, syn.Size)
		out := &model.Document{
			Matrices: model.FromTable(syn.Table),
			FSM:      model.FromScenarioFSM(syn.FSM),
		}
		return withOutput(cmd, func(w io.Writer) error { return model.Flush(w, out) })
	}),
}

func init() {
	rootCmd.AddCommand(synthesizeCmd)
}
