package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/goccy/go-graphviz"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/smpls/render"
)

var (
	renderWhat string
	rankDir    string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Draw the model automaton or its max-plus automaton with graphviz",
	Long: `Draw the scenario FSM (fsm), the I/O automaton (ioa) or the translated
max-plus automaton (mpa). --format is a graphviz format such as svg, png or dot.`,
	Args: cobra.NoArgs,
	RunE: traced(func(ctx context.Context, cmd *cobra.Command, span trace.Span) error {
		doc, err := loadModel(ctx)
		if err != nil {
			return err
		}
		gvFormat := format
		if gvFormat == "yaml" {
			gvFormat = "svg"
		}
		w := render.New(&render.Config{
			Font:    render.Helvetica,
			RankDir: render.RankDir(rankDir),
			Format:  graphviz.Format(gvFormat),
		})

		return withOutput(cmd, func(out io.Writer) error {
			switch renderWhat {
			case "fsm":
				fsm, err := doc.ScenarioFSM()
				if err != nil {
					return err
				}
				return w.FlushScenarioFSM(out, fsm)
			case "ioa":
				ioa, err := doc.IOAutomaton()
				if err != nil {
					return err
				}
				return w.FlushIOAutomaton(out, ioa)
			case "mpa":
				mpa, err := convert(doc)
				if err != nil {
					return err
				}
				return w.FlushMaxPlus(out, mpa)
			default:
				return fmt.Errorf("unknown automaton %q, want fsm, ioa or mpa", renderWhat)
			}
		})
	}),
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVar(&renderWhat, "what", "mpa", "automaton to draw: fsm, ioa or mpa")
	renderCmd.Flags().StringVar(&rankDir, "rankdir", string(render.LeftToRight), "LR, RL, TB or BT")
}
