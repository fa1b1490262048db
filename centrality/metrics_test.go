package centrality_test

import (
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gasgraph/centrality"
	"github.com/katalvlaran/gasgraph/core"
)

func TestMetrics_ObserveRuns(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := centrality.NewMetrics(reg)
	g := build(t, [][3]interface{}{{"A", "B", 5}, {"B", "C", 3}, {"A", "C", 10}})

	_, err := centrality.Run(g, centrality.Source("A"), centrality.WithMetrics(m))
	require.NoError(t, err)
	_, err = centrality.Run(g, centrality.Source("A"), centrality.WithMetrics(m),
		centrality.WithMode(centrality.ModeEveryRelaxation))
	require.NoError(t, err)

	require.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues("shortest", "ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues("every", "ok")))
	require.Equal(t, 6.0, testutil.ToFloat64(m.Relaxations), "three relaxations per run")
	require.Equal(t, 2.0, testutil.ToFloat64(m.StalePops))

	count, err := testutil.GatherAndCount(reg, "gasgraph_centrality_run_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestMetrics_CountsSaturatedCandidates(t *testing.T) {
	m := centrality.NewMetrics(nil)
	g := core.NewGraph()
	_, err := g.AddTransaction("A", "B", 1, math.MaxUint64, 1)
	require.NoError(t, err)

	res, err := centrality.Run(g, centrality.Source("A"), centrality.WithMetrics(m))
	require.NoError(t, err)
	require.False(t, res.Reachable(id(t, g, "B")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Saturated))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues("shortest", "ok")))
}
