// Package rules defines the caller-supplied configuration surface of the
// cleaning pipeline: which columns get trimmed, the categorical correction
// map, the outlier and sign rules, the placeholder value set, and the null
// handling policy. A Ruleset is plain data; the pipeline interprets it.
//
// Rulesets can be loaded from a YAML/JSON file (see Load) and are validated
// against the table schema before any row is processed.
package rules

import (
	"github.com/shopspring/decimal"

	"tablewash/internal/table"
)

// SignMode selects how the sign normalizer treats negative values.
type SignMode string

const (
	// SignSilent replaces negatives with their absolute value, keeping no trace.
	SignSilent SignMode = "silent"
	// SignFlagged derives a boolean flag column from the pre-normalization
	// sign before replacing negatives with their absolute value.
	SignFlagged SignMode = "flagged"
)

// NullPolicyMode selects which null-handling strategy admits rows.
type NullPolicyMode string

const (
	// NullKeyFields admits a row iff every configured key column is non-null.
	NullKeyFields NullPolicyMode = "key-fields"
	// NullAllColumns admits a row iff no column at all is null.
	NullAllColumns NullPolicyMode = "all-columns"
)

// OutlierRule rewrites sentinel values in an integer column back into range.
type OutlierRule struct {
	Column      string `mapstructure:"column"`
	Threshold   int64  `mapstructure:"threshold"`
	Replacement int64  `mapstructure:"replacement"`
}

// SignRule normalizes negative magnitudes in an integer column.
type SignRule struct {
	Column     string   `mapstructure:"column"`
	Mode       SignMode `mapstructure:"mode"`
	FlagColumn string   `mapstructure:"flag_column"`
}

// PlaceholderRule removes rows whose decimal column equals a sentinel value.
// Values are decimal literals so comparison stays exact.
type PlaceholderRule struct {
	Column string   `mapstructure:"column"`
	Values []string `mapstructure:"values"`
}

// Decimals returns the parsed placeholder values. Unparsable entries are
// skipped; Validate rejects them before a run starts.
func (r PlaceholderRule) Decimals() []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(r.Values))
	for _, v := range r.Values {
		d, err := decimal.NewFromString(v)
		if err != nil {
			continue
		}
		out = append(out, d)
	}
	return out
}

// CorrectionRule replaces one known-bad category token with its canonical
// form within a column. Matching is exact and case-sensitive.
type CorrectionRule struct {
	Column  string `mapstructure:"column"`
	Replace string `mapstructure:"replace"`
	With    string `mapstructure:"with"`
}

// NullPolicyRule selects the row admission strategy for the final stage.
type NullPolicyRule struct {
	Mode       NullPolicyMode `mapstructure:"mode"`
	KeyColumns []string       `mapstructure:"key_columns"`
}

// ColumnRule declares one schema column in a ruleset file.
type ColumnRule struct {
	Name string `mapstructure:"name"`
	Type string `mapstructure:"type"`
}

// Ruleset is the complete configuration for one pipeline run.
type Ruleset struct {
	// Columns optionally declares the table schema so a ruleset file is
	// self-contained. Empty means the caller supplies the schema directly.
	Columns []ColumnRule `mapstructure:"columns"`

	TrimColumns []string         `mapstructure:"trim_columns"`
	Corrections []CorrectionRule `mapstructure:"corrections"`
	Outlier     OutlierRule      `mapstructure:"outlier"`
	Sign        SignRule         `mapstructure:"sign"`
	Placeholder PlaceholderRule  `mapstructure:"placeholder"`
	NullPolicy  NullPolicyRule   `mapstructure:"null_policy"`
}

// TableSchema builds a table.Schema from the ruleset's column declarations.
// A nil schema with a nil error means the ruleset declares no columns; an
// unrecognized type name is a *ConfigurationError.
func (rs Ruleset) TableSchema() (table.Schema, error) {
	if len(rs.Columns) == 0 {
		return nil, nil
	}
	schema := make(table.Schema, 0, len(rs.Columns))
	for _, c := range rs.Columns {
		ft, ok := table.ParseFieldType(c.Type)
		if !ok {
			return nil, configErr("columns", "column %q has unknown type %q", c.Name, c.Type)
		}
		schema = append(schema, table.Column{Name: c.Name, Type: ft})
	}
	return schema, nil
}

// Default returns the ruleset for the supermarket sales dataset this
// pipeline was originally built around.
func Default() Ruleset {
	return Ruleset{
		TrimColumns: []string{"City", "Membership", "Gender", "Product line", "Payment", "Invoice ID"},
		Corrections: []CorrectionRule{
			{Column: "Membership", Replace: "Nomal", With: "Normal"},
		},
		Outlier: OutlierRule{Column: "Rating", Threshold: 99, Replacement: 9},
		Sign:    SignRule{Column: "Quantity", Mode: SignSilent, FlagColumn: "IsReturn"},
		Placeholder: PlaceholderRule{
			Column: "Unit price",
			Values: []string{"999", "9999", "99999"},
		},
		NullPolicy: NullPolicyRule{
			Mode:       NullKeyFields,
			KeyColumns: []string{"City", "Membership", "Payment", "Unit price", "Quantity"},
		},
	}
}

// DefaultSchema returns the column contract of the supermarket sales dataset.
func DefaultSchema() table.Schema {
	return table.Schema{
		{Name: "Invoice ID", Type: table.FieldText},
		{Name: "City", Type: table.FieldText},
		{Name: "Membership", Type: table.FieldText},
		{Name: "Gender", Type: table.FieldText},
		{Name: "Product line", Type: table.FieldText},
		{Name: "Unit price", Type: table.FieldDecimal},
		{Name: "Quantity", Type: table.FieldInteger},
		{Name: "Date", Type: table.FieldDate},
		{Name: "Payment", Type: table.FieldText},
		{Name: "Rating", Type: table.FieldInteger},
	}
}
