package ingest_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gasgraph/core"
	"github.com/katalvlaran/gasgraph/ingest"
)

const (
	addrA = "0x00000000000000000000000000000000000000aa"
	addrB = "0x00000000000000000000000000000000000000bb"
	addrC = "0x00000000000000000000000000000000000000cc"
)

const sample = `block_number,from_address,to_address,value,gas,gas_price
1,` + addrA + `,` + addrB + `,1000000000000000000,21000,30000000000
2,` + addrB + `,` + addrC + `,2500000000000,50000,30000000000
3,` + addrA + `,,0,900000,30000000000
4,` + addrA + `,` + addrC + `,,100000,1
`

func load(t *testing.T, input string, opts ...ingest.Option) (*core.Graph, ingest.Stats, error) {
	t.Helper()

	g := core.NewGraph()
	stats, err := ingest.Load(context.Background(), strings.NewReader(input), g, opts...)

	return g, stats, err
}

func TestLoad_Sample(t *testing.T) {
	g, stats, err := load(t, sample)
	require.NoError(t, err)

	require.Equal(t, ingest.Stats{Rows: 4, Edges: 3, Skipped: 1}, stats)
	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 3, g.EdgeCount())

	e, err := g.Edge(0)
	require.NoError(t, err)
	require.Equal(t, addrA, g.Address(e.Source()))
	require.Equal(t, addrB, g.Address(e.Destination()))
	require.InDelta(t, 1e6, e.Value(), 1e-9, "one ether in trillions of wei")
	require.Equal(t, uint64(21000), e.Gas())
	require.Equal(t, uint64(30000000000), e.GasPrice())

	e, err = g.Edge(1)
	require.NoError(t, err)
	require.InDelta(t, 2.5, e.Value(), 1e-12)

	e, err = g.Edge(2)
	require.NoError(t, err)
	require.Zero(t, e.Value(), "empty value reads as zero")
}

func TestLoad_ValueExponent(t *testing.T) {
	g, _, err := load(t, sample, ingest.WithValueExponent(18))
	require.NoError(t, err)

	e, err := g.Edge(0)
	require.NoError(t, err)
	require.InDelta(t, 1.0, e.Value(), 1e-12)
}

func TestLoad_CustomColumns(t *testing.T) {
	input := "src,dst,amount,gas_used,price\nx,y,5,7,9\n"
	g, stats, err := load(t, input,
		ingest.WithColumns(ingest.Columns{From: "src", To: "dst", Value: "amount", Gas: "gas_used", GasPrice: "price"}),
		ingest.WithValueExponent(0),
	)
	require.NoError(t, err)
	require.Equal(t, 1, stats.Edges)

	e, err := g.Edge(0)
	require.NoError(t, err)
	require.Equal(t, "x", g.Address(e.Source()))
	require.Equal(t, 5.0, e.Value())
	require.Equal(t, uint64(7), e.Gas())
}

func TestLoad_HeaderCaseInsensitive(t *testing.T) {
	input := "FROM_ADDRESS, To_Address ,VALUE,Gas,GAS_PRICE\na,b,0,1,1\n"
	_, stats, err := load(t, input)
	require.NoError(t, err)
	require.Equal(t, 1, stats.Edges)
}

func TestLoad_MissingColumn(t *testing.T) {
	_, _, err := load(t, "from_address,to_address,value,gas\na,b,1,2\n")
	require.ErrorIs(t, err, ingest.ErrMissingColumn)
	require.Contains(t, err.Error(), "gas_price")

	_, _, err = load(t, "")
	require.ErrorIs(t, err, ingest.ErrMissingColumn)
}

func TestLoad_BadRecords(t *testing.T) {
	header := "from_address,to_address,value,gas,gas_price\n"
	cases := map[string]string{
		"non-numeric gas":   "a,b,1,lots,1\n",
		"negative gas":      "a,b,1,-5,1\n",
		"empty gas":         "a,b,1,,1\n",
		"bad value":         "a,b,1.2.3,5,1\n",
		"negative value":    "a,b,-1,5,1\n",
		"empty source":      ",b,1,5,1\n",
		"gas price too big": "a,b,1,5,18446744073709551616\n",
	}
	for name, row := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := load(t, header+row)
			require.ErrorIs(t, err, ingest.ErrBadRecord)
			require.Contains(t, err.Error(), "line 2")
		})
	}
}

func TestLoad_KeepsRowsBeforeError(t *testing.T) {
	input := "from_address,to_address,value,gas,gas_price\na,b,1,5,1\nb,c,1,oops,1\n"
	g, stats, err := load(t, input)
	require.ErrorIs(t, err, ingest.ErrBadRecord)
	require.Equal(t, 1, stats.Edges)
	require.Equal(t, 1, g.EdgeCount())
}

func TestLoad_StrictAddresses(t *testing.T) {
	lower := "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"
	checksum := "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	input := "from_address,to_address,value,gas,gas_price\n" +
		lower + "," + addrB + ",0,21000,1\n" +
		checksum + "," + addrC + ",0,21000,1\n"

	g, stats, err := load(t, input, ingest.WithStrictAddresses())
	require.NoError(t, err)
	require.Equal(t, 2, stats.Edges)
	require.Equal(t, 3, g.VertexCount(), "both spellings collapse onto one vertex")
	require.True(t, g.HasVertex(checksum))

	_, _, err = load(t, "from_address,to_address,value,gas,gas_price\nalice,"+addrB+",0,1,1\n", ingest.WithStrictAddresses())
	require.ErrorIs(t, err, ingest.ErrBadAddress)
}

func TestLoad_Limit(t *testing.T) {
	g, stats, err := load(t, sample, ingest.WithLimit(2))
	require.NoError(t, err)
	require.Equal(t, 2, stats.Rows)
	require.Equal(t, 2, g.EdgeCount())
}

func TestLoad_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := core.NewGraph()
	_, err := ingest.Load(ctx, strings.NewReader(sample), g)
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, g.EdgeCount())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tx.csv")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	g := core.NewGraph()
	stats, err := ingest.LoadFile(context.Background(), path, g)
	require.NoError(t, err)
	require.Equal(t, 3, stats.Edges)

	_, err = ingest.LoadFile(context.Background(), filepath.Join(t.TempDir(), "missing.csv"), g)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteEdges_RoundTrip(t *testing.T) {
	src := core.NewGraph()
	_, err := src.AddTransaction("a", "b", 1.5, 21000, 30)
	require.NoError(t, err)
	_, err = src.AddTransaction("b", "c", 0.25, 50000, 1)
	require.NoError(t, err)
	_, err = src.AddTransaction("a", "a", 0, 1, 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ingest.WriteEdges(&buf, src, ingest.DefaultColumns()))
	require.Equal(t,
		"from_address,to_address,value,gas,gas_price\na,b,1.5,21000,30\nb,c,0.25,50000,1\na,a,0,1,1\n",
		buf.String())

	dst := core.NewGraph()
	_, err = ingest.Load(context.Background(), &buf, dst, ingest.WithValueExponent(0))
	require.NoError(t, err)
	require.Equal(t, src.VertexCount(), dst.VertexCount())
	require.Equal(t, src.EdgeCount(), dst.EdgeCount())
	for _, e := range src.Edges() {
		want, err := src.FormatEdge(e.ID())
		require.NoError(t, err)
		got, err := dst.FormatEdge(e.ID())
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestWriteEdgesFile(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddTransaction("a", "b", 1, 2, 3)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, ingest.WriteEdgesFile(path, g, ingest.DefaultColumns()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "from_address,to_address,value,gas,gas_price\na,b,1,2,3\n", string(data))
}
