// Package ingest populates a core.Graph from transaction CSV exports and
// writes a graph's edges back out in the same field-delimited form.
//
// Input format: a header row followed by one transaction per row. Columns are
// located by header name (see Columns); extra columns are ignored.
//
//	from_address,to_address,value,gas,gas_price
//	0xab..,0xcd..,1000000000000000000,21000,30000000000
//
// Values are decimal wei and are stored scaled by 10^-ValueExponent
// (trillions of wei by default). Rows without a destination (contract
// creations) are skipped.
package ingest

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors returned by Load.
var (
	// ErrMissingColumn indicates the header lacks a required column.
	ErrMissingColumn = errors.New("ingest: required column missing from header")

	// ErrBadRecord indicates a row whose fields cannot be parsed.
	ErrBadRecord = errors.New("ingest: malformed record")

	// ErrBadAddress indicates a non-hex address while strict addresses are on.
	ErrBadAddress = errors.New("ingest: invalid address")
)

// DefaultValueExponent scales wei to trillions of wei.
const DefaultValueExponent int32 = 12

// Columns names the header fields holding each transaction attribute.
type Columns struct {
	From     string `yaml:"from"`
	To       string `yaml:"to"`
	Value    string `yaml:"value"`
	Gas      string `yaml:"gas"`
	GasPrice string `yaml:"gasPrice"`
}

// DefaultColumns returns the column names used by public Ethereum exports.
func DefaultColumns() Columns {
	return Columns{
		From:     "from_address",
		To:       "to_address",
		Value:    "value",
		Gas:      "gas",
		GasPrice: "gas_price",
	}
}

// Options configures Load.
type Options struct {
	Columns         Columns
	ValueExponent   int32 // stored value = wei * 10^-ValueExponent
	StrictAddresses bool  // validate and checksum hex addresses
	Limit           int   // maximum data rows to read; 0 reads everything
	Logger          *zap.Logger
}

// Option represents a functional option for configuring Load.
type Option func(*Options)

// WithColumns overrides the header names; empty fields keep their defaults.
func WithColumns(c Columns) Option {
	return func(o *Options) {
		if c.From != "" {
			o.Columns.From = c.From
		}
		if c.To != "" {
			o.Columns.To = c.To
		}
		if c.Value != "" {
			o.Columns.Value = c.Value
		}
		if c.Gas != "" {
			o.Columns.Gas = c.Gas
		}
		if c.GasPrice != "" {
			o.Columns.GasPrice = c.GasPrice
		}
	}
}

// WithValueExponent sets the decimal exponent used to scale values.
func WithValueExponent(exp int32) Option {
	return func(o *Options) {
		o.ValueExponent = exp
	}
}

// WithStrictAddresses enables hex address validation and EIP-55 normalisation.
func WithStrictAddresses() Option {
	return func(o *Options) {
		o.StrictAddresses = true
	}
}

// WithLimit caps the number of data rows read.
func WithLimit(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Limit = n
		}
	}
}

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns the defaults used by Load.
func DefaultOptions() Options {
	return Options{
		Columns:       DefaultColumns(),
		ValueExponent: DefaultValueExponent,
		Logger:        zap.NewNop(),
	}
}

// Stats summarises one Load call.
type Stats struct {
	Rows    int // data rows read
	Edges   int // edges added
	Skipped int // rows without a destination
}
