package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var errInconsistent = errors.New("model is not consistent")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that every emitted event is processed exactly once",
	Args:  cobra.NoArgs,
	RunE: traced(func(ctx context.Context, cmd *cobra.Command, span trace.Span) error {
		doc, err := loadModel(ctx)
		if err != nil {
			return err
		}
		m, err := doc.EventModel(libOptions()...)
		if err != nil {
			return err
		}
		report, err := m.IsConsistent()
		if err != nil {
			return err
		}
		span.SetAttributes(attribute.Bool("smpls.consistent", report.Consistent))

		if report.Consistent {
			fmt.Fprintln(cmd.OutOrStdout(), "consistent")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), report.Message)
		return errInconsistent
	}),
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
