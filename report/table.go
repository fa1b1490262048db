package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/markkurossi/tabulate"

	"github.com/katalvlaran/gasgraph/centrality"
	"github.com/katalvlaran/gasgraph/core"
)

var styles = map[string]tabulate.Style{
	"plain":   tabulate.Plain,
	"ascii":   tabulate.ASCII,
	"unicode": tabulate.Unicode,
}

// ParseStyle maps a style name (plain, ascii, unicode) to a table style.
func ParseStyle(name string) (tabulate.Style, error) {
	s, ok := styles[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return tabulate.Plain, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}

	return s, nil
}

// StyleNames lists the names accepted by ParseStyle.
func StyleNames() []string {
	return []string{"plain", "ascii", "unicode"}
}

// WriteRanking renders scores as a table with rank, address, centrality and
// distance columns.
func WriteRanking(w io.Writer, style tabulate.Style, scores []Score) error {
	tab := tabulate.New(style)
	tab.Header("#").SetAlign(tabulate.MR)
	tab.Header("Address").SetAlign(tabulate.ML)
	tab.Header("Centrality").SetAlign(tabulate.MR)
	tab.Header("Gas").SetAlign(tabulate.MR)

	for i, s := range scores {
		row := tab.Row()
		row.Column(strconv.Itoa(i + 1))
		row.Column(s.Address)
		row.Column(strconv.FormatFloat(s.Centrality, 'g', -1, 64))
		row.Column(strconv.FormatUint(s.Distance, 10))
	}

	return render(w, tab)
}

// WritePath renders a path as one row per hop with the cumulative gas.
func WritePath(w io.Writer, style tabulate.Style, g *core.Graph, res *centrality.Result, path []core.VertexID) error {
	tab := tabulate.New(style)
	tab.Header("Hop").SetAlign(tabulate.MR)
	tab.Header("Address").SetAlign(tabulate.ML)
	tab.Header("Gas").SetAlign(tabulate.MR)
	tab.Header("Centrality").SetAlign(tabulate.MR)

	for i, id := range path {
		row := tab.Row()
		row.Column(strconv.Itoa(i))
		row.Column(g.Address(id))
		row.Column(strconv.FormatUint(res.Distance(id), 10))
		row.Column(strconv.FormatFloat(res.Centrality(id), 'g', -1, 64))
	}

	return render(w, tab)
}

// WriteSummary renders s as a two-column key/value table.
func WriteSummary(w io.Writer, style tabulate.Style, s Summary) error {
	tab := tabulate.New(style)
	tab.Header("Field").SetAlign(tabulate.ML)
	tab.Header("Value").SetAlign(tabulate.ML)

	for _, kv := range [][2]string{
		{"source", s.Source},
		{"mode", s.Mode.String()},
		{"vertices", strconv.Itoa(s.Vertices)},
		{"edges", strconv.Itoa(s.Edges)},
		{"reached", strconv.Itoa(s.Reached)},
		{"unreachable", strconv.Itoa(s.Unreachable)},
		{"max gas", strconv.FormatUint(s.MaxDistance, 10)},
		{"farthest", s.Farthest},
		{"total centrality", strconv.FormatFloat(s.TotalCentrality, 'g', -1, 64)},
		{"pushes", strconv.Itoa(s.Stats.Pushes)},
		{"stale pops", strconv.Itoa(s.Stats.StalePops)},
		{"elapsed", s.Elapsed.String()},
	} {
		row := tab.Row()
		row.Column(kv[0])
		row.Column(kv[1])
	}

	return render(w, tab)
}

// render writes tab to w and reports the first write error.
func render(w io.Writer, tab *tabulate.Tabulate) error {
	ew := &errWriter{w: w}
	tab.Print(ew)

	return ew.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = fmt.Errorf("report: write table: %w", err)
	}

	return n, err
}
