package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/katalvlaran/gasgraph/core"
)

// LoadFile opens path and calls Load on it.
func LoadFile(ctx context.Context, path string, g *core.Graph, opts ...Option) (Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("ingest: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(ctx, f, g, opts...)
}

// Load reads transactions from r and adds them to g.
//
// Steps:
//  1. Read the header and resolve column positions (ErrMissingColumn).
//  2. For every row: parse addresses, value, gas and gas price (ErrBadRecord,
//     ErrBadAddress), skip rows without destination, add the edge.
//  3. Stop at EOF, at the row limit, or when ctx is done.
//
// Rows added before an error stay in g.
func Load(ctx context.Context, r io.Reader, g *core.Graph, opts ...Option) (Stats, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Stats{}, fmt.Errorf("%w: empty input", ErrMissingColumn)
		}
		return Stats{}, fmt.Errorf("ingest: read header: %w", err)
	}
	idx, err := resolveColumns(header, cfg.Columns)
	if err != nil {
		return Stats{}, err
	}

	start := time.Now()
	var stats Stats
	for cfg.Limit == 0 || stats.Rows < cfg.Limit {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("%w: %v", ErrBadRecord, err)
		}
		stats.Rows++
		line, _ := cr.FieldPos(0)

		tx, skip, err := parseRecord(rec, idx, cfg)
		if err != nil {
			return stats, fmt.Errorf("line %d: %w", line, err)
		}
		if skip {
			stats.Skipped++
			cfg.Logger.Debug("skipping transaction without destination", zap.Int("line", line))
			continue
		}

		if _, err := g.AddTransaction(tx.from, tx.to, tx.value, tx.gas, tx.gasPrice); err != nil {
			return stats, fmt.Errorf("line %d: %w", line, err)
		}
		stats.Edges++
	}

	cfg.Logger.Info("transactions loaded",
		zap.Int("rows", stats.Rows),
		zap.Int("edges", stats.Edges),
		zap.Int("skipped", stats.Skipped),
		zap.Int("vertices", g.VertexCount()),
		zap.Duration("elapsed", time.Since(start)),
	)

	return stats, nil
}

// columnIndex holds header positions of the required columns.
type columnIndex struct {
	from, to, value, gas, gasPrice int
}

func resolveColumns(header []string, cols Columns) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[strings.ToLower(strings.TrimSpace(h))] = i
	}
	find := func(name string) (int, error) {
		i, ok := pos[strings.ToLower(name)]
		if !ok {
			return -1, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
		return i, nil
	}

	var (
		idx columnIndex
		err error
	)
	if idx.from, err = find(cols.From); err != nil {
		return idx, err
	}
	if idx.to, err = find(cols.To); err != nil {
		return idx, err
	}
	if idx.value, err = find(cols.Value); err != nil {
		return idx, err
	}
	if idx.gas, err = find(cols.Gas); err != nil {
		return idx, err
	}
	if idx.gasPrice, err = find(cols.GasPrice); err != nil {
		return idx, err
	}

	return idx, nil
}

type transaction struct {
	from, to      string
	value         float64
	gas, gasPrice uint64
}

// parseRecord converts one row. skip is true for rows without a destination.
func parseRecord(rec []string, idx columnIndex, cfg Options) (transaction, bool, error) {
	field := func(i int) string {
		if i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var tx transaction
	var err error

	tx.to = field(idx.to)
	if tx.to == "" {
		return tx, true, nil
	}
	tx.from = field(idx.from)
	if tx.from == "" {
		return tx, false, fmt.Errorf("%w: empty %s", ErrBadRecord, cfg.Columns.From)
	}
	if cfg.StrictAddresses {
		if tx.from, err = NormalizeAddress(tx.from); err != nil {
			return tx, false, err
		}
		if tx.to, err = NormalizeAddress(tx.to); err != nil {
			return tx, false, err
		}
	}

	if tx.value, err = parseValue(field(idx.value), cfg.ValueExponent); err != nil {
		return tx, false, err
	}
	if tx.gas, err = parseUint(field(idx.gas), cfg.Columns.Gas); err != nil {
		return tx, false, err
	}
	if tx.gasPrice, err = parseUint(field(idx.gasPrice), cfg.Columns.GasPrice); err != nil {
		return tx, false, err
	}

	return tx, false, nil
}

// NormalizeAddress validates a hex address and returns its EIP-55 form.
func NormalizeAddress(s string) (string, error) {
	if !common.IsHexAddress(s) {
		return "", fmt.Errorf("%w: %q", ErrBadAddress, s)
	}

	return common.HexToAddress(s).Hex(), nil
}

// parseValue parses decimal wei and shifts it by -exp. An empty field is zero.
func parseValue(s string, exp int32) (float64, error) {
	if s == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: value %q: %v", ErrBadRecord, s, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: negative value %q", ErrBadRecord, s)
	}
	v, _ := d.Shift(-exp).Float64()

	return v, nil
}

func parseUint(s, column string) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty %s", ErrBadRecord, column)
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q: %v", ErrBadRecord, column, s, err)
	}

	return v, nil
}
