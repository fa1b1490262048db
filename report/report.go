// Package report turns centrality results into rankings, shortest paths and
// printable tables.
package report

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/gasgraph/centrality"
	"github.com/katalvlaran/gasgraph/core"
)

var (
	// ErrUnreachable indicates the target was not reached from the run's source.
	ErrUnreachable = errors.New("report: target unreachable from source")

	// ErrUnknownStyle indicates an unsupported table style name.
	ErrUnknownStyle = errors.New("report: unknown table style")
)

// Score is one ranked vertex.
type Score struct {
	Vertex     core.VertexID
	Address    string
	Centrality float64
	Distance   uint64
}

// Rank returns the reachable vertices of res ordered by centrality descending,
// ties broken by address ascending. n <= 0 returns every reachable vertex.
//
// Complexity: O(V log V).
func Rank(g *core.Graph, res *centrality.Result, n int) []Score {
	scores := make([]Score, 0, len(res.Order))
	for _, id := range res.Order {
		scores = append(scores, Score{
			Vertex:     id,
			Address:    g.Address(id),
			Centrality: res.Centrality(id),
			Distance:   res.Distance(id),
		})
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Centrality != scores[j].Centrality {
			return scores[i].Centrality > scores[j].Centrality
		}
		return scores[i].Address < scores[j].Address
	})
	if n > 0 && n < len(scores) {
		scores = scores[:n]
	}

	return scores
}

// Path follows parents from target back to the source and returns the
// vertices source first.
func Path(res *centrality.Result, target core.VertexID) ([]core.VertexID, error) {
	if !res.Reachable(target) {
		return nil, fmt.Errorf("%w: vertex %d", ErrUnreachable, target)
	}

	var path []core.VertexID
	for v := target; v != core.NoVertex; v = res.Parent(v) {
		path = append(path, v)
		if len(path) > res.Traversal.Len() {
			return nil, fmt.Errorf("report: parent chain of vertex %d does not end at the source", target)
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	if path[0] != res.Source {
		return nil, fmt.Errorf("report: parent chain of vertex %d does not end at the source", target)
	}

	return path, nil
}

// Summary aggregates one run for display.
type Summary struct {
	Source          string
	Mode            centrality.Mode
	Vertices        int
	Edges           int
	Reached         int
	Unreachable     int
	MaxDistance     uint64
	Farthest        string
	TotalCentrality float64
	Stats           centrality.Stats
	Elapsed         time.Duration
}

// Summarize computes the Summary of res over g.
func Summarize(g *core.Graph, res *centrality.Result) Summary {
	s := Summary{
		Source:   g.Address(res.Source),
		Mode:     res.Mode,
		Vertices: g.VertexCount(),
		Edges:    g.EdgeCount(),
		Reached:  len(res.Order),
		Stats:    res.Stats,
		Elapsed:  res.Elapsed,
	}
	s.Unreachable = s.Vertices - s.Reached
	for _, id := range res.Order {
		s.TotalCentrality += res.Centrality(id)
		if d := res.Distance(id); d >= s.MaxDistance {
			s.MaxDistance = d
			s.Farthest = g.Address(id)
		}
	}

	return s
}
