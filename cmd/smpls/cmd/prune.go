package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/smpls/model"
)

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove dangling states from the scenario FSM",
	Long: `Remove every scenario FSM state without outgoing edges, repeatedly,
and write the pruned model.`,
	Args: cobra.NoArgs,
	RunE: traced(func(ctx context.Context, cmd *cobra.Command, span trace.Span) error {
		doc, err := loadModel(ctx)
		if err != nil {
			return err
		}
		sys, err := doc.SMPLS(libOptions()...)
		if err != nil {
			return err
		}
		removed := sys.RemoveDanglingStates()
		span.SetAttributes(attribute.Int("smpls.removed", removed))

		doc.FSM = model.FromScenarioFSM(sys.FSM())
		return withOutput(cmd, func(w io.Writer) error { return model.Flush(w, doc) })
	}),
}

func init() {
	rootCmd.AddCommand(pruneCmd)
}
