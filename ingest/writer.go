package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/gasgraph/core"
)

// WriteEdges writes a header built from cols followed by one record per edge
// of g, in insertion order. Values are written in the graph's scaled unit, so
// reading the output back needs WithValueExponent(0).
func WriteEdges(w io.Writer, g *core.Graph, cols Columns) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{cols.From, cols.To, cols.Value, cols.Gas, cols.GasPrice}); err != nil {
		return fmt.Errorf("ingest: write header: %w", err)
	}
	for _, e := range g.Edges() {
		rec, err := g.EdgeRecord(e.ID())
		if err != nil {
			return err
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("ingest: write edge %d: %w", e.ID(), err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteEdgesFile creates path and writes the edges of g into it.
func WriteEdgesFile(path string, g *core.Graph, cols Columns) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ingest: create %s: %w", path, err)
	}
	if err := WriteEdges(f, g, cols); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
