package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/katalvlaran/smpls/core"
	"github.com/katalvlaran/smpls/smpls"
)

// Font is a Graphviz fontname; several fonts form a fallback list.
type Font string

// Or appends other as a fallback font.
func (f Font) Or(other Font) Font {
	return f + "," + other
}

// Common fonts.
const (
	Helvetica Font = "Helvetica"
	Arial     Font = "Arial"
	SansSerif Font = "sans-serif"
	Times     Font = "Times"
)

// RankDir is the Graphviz layout direction.
type RankDir string

// Layout directions.
const (
	LeftToRight RankDir = "LR"
	RightToLeft RankDir = "RL"
	TopToBottom RankDir = "TB"
	BottomToTop RankDir = "BT"
)

// Config controls the look of rendered graphs. Zero fields take defaults.
type Config struct {
	Name string
	Font
	RankDir
	// Format is any Graphviz output format; xdot when empty.
	Format graphviz.Format
}

// Writer renders automata.
type Writer struct {
	*Config
}

// New returns a Writer, filling the defaults of cfg in place. A nil cfg
// yields the default configuration.
func New(cfg *Config) *Writer {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.Name == "" {
		cfg.Name = "smpls"
	}
	if cfg.Font == "" {
		cfg.Font = Helvetica
	}
	if cfg.RankDir == "" {
		cfg.RankDir = LeftToRight
	}
	if cfg.Format == "" {
		cfg.Format = graphviz.XDOT
	}

	return &Writer{Config: cfg}
}

// FlushScenarioFSM renders fsm; edges are labeled with their scenario.
func (w *Writer) FlushScenarioFSM(out io.Writer, fsm *smpls.ScenarioFSM) error {
	return flush(w, out, fsm, strconv.Itoa, func(s string) string { return s })
}

// FlushIOAutomaton renders ioa; edges are labeled "input,output".
func (w *Writer) FlushIOAutomaton(out io.Writer, ioa *smpls.IOAutomaton) error {
	return flush(w, out, ioa, strconv.Itoa, smpls.IOLabel.String)
}

// FlushMaxPlus renders mpa; states are labeled "(id,token)" and edges
// "delay/scenario".
func (w *Writer) FlushMaxPlus(out io.Writer, mpa *smpls.MaxPlusAutomaton) error {
	return flush(w, out, mpa, smpls.TokenState.String, func(l smpls.WeightedScenario) string {
		return strconv.FormatFloat(l.Delay, 'g', -1, 64) + "/" + l.Scenario
	})
}

func flush[S comparable, E any](
	w *Writer,
	out io.Writer,
	a *core.Graph[S, E],
	stateLabel func(S) string,
	edgeLabel func(E) string,
) error {
	if a == nil {
		return fmt.Errorf("render %s: %w", w.Name, smpls.ErrNotLoaded)
	}
	gv := graphviz.New()
	defer func() {
		_ = gv.Close()
	}()
	g, err := gv.Graph()
	if err != nil {
		return err
	}
	defer func() {
		_ = g.Close()
	}()
	g.SetRankDir(cgraph.RankDir(w.RankDir))

	nodes := make(map[core.StateID]*cgraph.Node, a.StateCount())
	for _, id := range a.States() {
		l, err := a.Label(id)
		if err != nil {
			return err
		}
		node, err := g.CreateNode(fmt.Sprintf("q%d", id))
		if err != nil {
			return err
		}
		node.SetShape(cgraph.CircleShape)
		if a.IsFinal(id) {
			node.SetShape(cgraph.DoubleCircleShape)
		}
		if a.IsInitial(id) {
			node.Set("style", "bold")
		}
		node.SetLabel(stateLabel(l))
		node.Set("fontname", string(w.Font))
		nodes[id] = node
	}

	for _, e := range a.Edges() {
		edge, err := g.CreateEdge(fmt.Sprintf("e%d", e.ID), nodes[e.From], nodes[e.To])
		if err != nil {
			return err
		}
		edge.SetLabel(edgeLabel(e.Label))
		edge.Set("fontname", string(w.Font))
	}

	return gv.Render(g, w.Format, out)
}
