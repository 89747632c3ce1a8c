package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/katalvlaran/smpls/model"
	"github.com/katalvlaran/smpls/smpls"
)

var (
	pruneFirst bool
	transpose  bool
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Translate the model into a max-plus automaton",
	Long: `Translate the model into a max-plus automaton. A model with an I/O
automaton is synthesized first; a model with a scenario FSM is translated
directly. Output is yaml or text (--format).`,
	Args: cobra.NoArgs,
	RunE: traced(func(ctx context.Context, cmd *cobra.Command, span trace.Span) error {
		doc, err := loadModel(ctx)
		if err != nil {
			return err
		}
		mpa, err := convert(doc)
		if err != nil {
			return err
		}
		span.SetAttributes(
			attribute.Int("smpls.states", mpa.StateCount()),
			attribute.Int("smpls.edges", mpa.EdgeCount()))
		logger.Info("converted",
			zap.Int("states", mpa.StateCount()),
			zap.Int("edges", mpa.EdgeCount()))

		return withOutput(cmd, func(w io.Writer) error {
			return writeMaxPlus(w, model.FromMaxPlusAutomaton(mpa))
		})
	}),
}

func convert(doc *model.Document) (*smpls.MaxPlusAutomaton, error) {
	if doc.IOA != nil {
		m, err := doc.EventModel(libOptions()...)
		if err != nil {
			return nil, err
		}
		if transpose {
			m.TransposeMatrices()
		}
		return m.ConvertToMaxPlusAutomaton()
	}

	sys, err := doc.SMPLS(libOptions()...)
	if err != nil {
		return nil, err
	}
	if transpose {
		sys.TransposeMatrices()
	}
	if pruneFirst {
		sys.RemoveDanglingStates()
	}

	return sys.ConvertToMaxPlusAutomaton()
}

func writeMaxPlus(w io.Writer, mpa *model.MaxPlus) error {
	switch format {
	case "yaml":
		return model.FlushMaxPlus(w, mpa)
	case "text":
		for _, s := range mpa.States {
			flags := ""
			if s.Initial {
				flags += " initial"
			}
			if s.Final {
				flags += " final"
			}
			if _, err := fmt.Fprintf(w, "state (%d,%d)%s\n", s.ID, s.Token, flags); err != nil {
				return err
			}
		}
		for _, e := range mpa.Edges {
			if _, err := fmt.Fprintf(w, "%s -%v/%s-> %s\n", e.From, float64(e.Delay), e.Scenario, e.To); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q, want yaml or text", format)
	}
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().BoolVar(&pruneFirst, "prune", false, "remove dangling FSM states before translating")
	convertCmd.Flags().BoolVar(&transpose, "transpose", false, "transpose every matrix first")
}
