package report_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/markkurossi/tabulate"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gasgraph/centrality"
	"github.com/katalvlaran/gasgraph/core"
	"github.com/katalvlaran/gasgraph/report"
)

// diamond builds A→B(4), A→C(4), B→D(1), C→D(1), D→E(2) plus an isolated F,
// and runs the engine from A.
func diamond(t *testing.T) (*core.Graph, *centrality.Result) {
	t.Helper()

	g := core.NewGraph()
	for _, e := range []struct {
		from, to string
		gas      uint64
	}{
		{"A", "B", 4}, {"A", "C", 4}, {"B", "D", 1}, {"C", "D", 1}, {"D", "E", 2},
	} {
		_, err := g.AddTransaction(e.from, e.to, 1, e.gas, 1)
		require.NoError(t, err)
	}
	_, err := g.AddVertex("F")
	require.NoError(t, err)

	res, err := centrality.Run(g, centrality.Source("A"))
	require.NoError(t, err)

	return g, res
}

func addresses(scores []report.Score) []string {
	out := make([]string, len(scores))
	for i, s := range scores {
		out[i] = s.Address
	}

	return out
}

func TestRank(t *testing.T) {
	g, res := diamond(t)

	all := report.Rank(g, res, 0)
	// D and E collect both routes (2.0); A, B and C hold 1.0; F is unreachable.
	require.Equal(t, []string{"D", "E", "A", "B", "C"}, addresses(all))
	require.Equal(t, 2.0, all[0].Centrality)
	require.Equal(t, uint64(5), all[0].Distance)
	require.Equal(t, uint64(7), all[1].Distance)

	top := report.Rank(g, res, 2)
	require.Equal(t, []string{"D", "E"}, addresses(top))

	require.Len(t, report.Rank(g, res, 100), 5)
}

func TestPath(t *testing.T) {
	g, res := diamond(t)
	e, _ := g.Lookup("E")
	a, _ := g.Lookup("A")

	path, err := report.Path(res, e)
	require.NoError(t, err)
	require.Len(t, path, 4)
	require.Equal(t, a, path[0])
	require.Equal(t, e, path[3])
	for i := 1; i < len(path); i++ {
		require.Less(t, res.Distance(path[i-1]), res.Distance(path[i]))
	}

	src, err := report.Path(res, a)
	require.NoError(t, err)
	require.Equal(t, []core.VertexID{a}, src)
}

func TestPath_Unreachable(t *testing.T) {
	g, res := diamond(t)
	f, _ := g.Lookup("F")

	_, err := report.Path(res, f)
	require.ErrorIs(t, err, report.ErrUnreachable)

	_, err = report.Path(res, core.VertexID(99))
	require.ErrorIs(t, err, report.ErrUnreachable)
}

func TestSummarize(t *testing.T) {
	g, res := diamond(t)

	s := report.Summarize(g, res)
	require.Equal(t, "A", s.Source)
	require.Equal(t, centrality.ModeShortestPaths, s.Mode)
	require.Equal(t, 6, s.Vertices)
	require.Equal(t, 5, s.Edges)
	require.Equal(t, 5, s.Reached)
	require.Equal(t, 1, s.Unreachable)
	require.Equal(t, uint64(7), s.MaxDistance)
	require.Equal(t, "E", s.Farthest)
	require.Equal(t, 7.0, s.TotalCentrality)
}

func TestParseStyle(t *testing.T) {
	for _, name := range report.StyleNames() {
		_, err := report.ParseStyle(strings.ToUpper(name))
		require.NoError(t, err, name)
	}

	_, err := report.ParseStyle("fancy")
	require.ErrorIs(t, err, report.ErrUnknownStyle)
}

func TestWriteTables(t *testing.T) {
	g, res := diamond(t)

	var buf bytes.Buffer
	require.NoError(t, report.WriteRanking(&buf, tabulate.ASCII, report.Rank(g, res, 0)))
	out := buf.String()
	require.Contains(t, out, "Address")
	require.Contains(t, out, "Centrality")
	require.Less(t, strings.Index(out, "D"), strings.Index(out, "B"), "ranked rows in order")

	buf.Reset()
	e, _ := g.Lookup("E")
	path, err := report.Path(res, e)
	require.NoError(t, err)
	require.NoError(t, report.WritePath(&buf, tabulate.Plain, g, res, path))
	require.Contains(t, buf.String(), "Hop")
	require.Contains(t, buf.String(), "7")

	buf.Reset()
	require.NoError(t, report.WriteSummary(&buf, tabulate.Unicode, report.Summarize(g, res)))
	require.Contains(t, buf.String(), "farthest")
	require.Contains(t, buf.String(), "shortest")
}

type failingWriter struct{}

var errDiskFull = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errDiskFull }

func TestWriteRanking_WriteError(t *testing.T) {
	g, res := diamond(t)

	err := report.WriteRanking(failingWriter{}, tabulate.Plain, report.Rank(g, res, 0))
	require.ErrorIs(t, err, errDiskFull)
}
