package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"
)

var determinizeCmd = &cobra.Command{
	Use:   "determinize",
	Short: "Write the determinized I/O automaton",
	Long: `Write the determinized I/O automaton in the ioautomaton statespace
format. The I/O automaton of the model is consumed by the walk.`,
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
		return withOutput(cmd, m.Determinize)
	}),
}

func init() {
	rootCmd.AddCommand(determinizeCmd)
}
