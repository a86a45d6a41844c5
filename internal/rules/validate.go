package rules

import (
	"fmt"

	"github.com/shopspring/decimal"

	"tablewash/internal/table"
)

// ConfigurationError reports an invalid ruleset. It is raised before any
// row is processed; a run never starts with a bad configuration.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration %s: %s", e.Field, e.Message)
}

func configErr(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Validate checks the ruleset against the schema it will run over.
// Every named column must exist with the expected type, and each rule's own
// invariants must hold. Returns a *ConfigurationError describing the first
// problem found.
func (rs Ruleset) Validate(schema table.Schema) error {
	for _, name := range rs.TrimColumns {
		if err := requireColumn(schema, "trim_columns", name, table.FieldText); err != nil {
			return err
		}
	}

	for _, c := range rs.Corrections {
		if err := requireColumn(schema, "corrections", c.Column, table.FieldText); err != nil {
			return err
		}
		if c.Replace == "" {
			return configErr("corrections", "correction for column %q has an empty token to replace", c.Column)
		}
	}

	if rs.Outlier.Column != "" {
		if err := requireColumn(schema, "outlier.column", rs.Outlier.Column, table.FieldInteger); err != nil {
			return err
		}
		if rs.Outlier.Replacement >= rs.Outlier.Threshold {
			return configErr("outlier", "replacement %d must be below threshold %d",
				rs.Outlier.Replacement, rs.Outlier.Threshold)
		}
	}

	if rs.Sign.Column != "" {
		if err := requireColumn(schema, "sign.column", rs.Sign.Column, table.FieldInteger); err != nil {
			return err
		}
		switch rs.Sign.Mode {
		case SignSilent:
		case SignFlagged:
			if rs.Sign.FlagColumn == "" {
				return configErr("sign.flag_column", "flagged mode requires a flag column name")
			}
			if col, ok := schema.Column(rs.Sign.FlagColumn); ok && col.Type != table.FieldBool {
				return configErr("sign.flag_column", "column %q exists with type %s, want %s",
					rs.Sign.FlagColumn, col.Type, table.FieldBool)
			}
		default:
			return configErr("sign.mode", "unknown mode %q", rs.Sign.Mode)
		}
	}

	if rs.Placeholder.Column != "" {
		if err := requireColumn(schema, "placeholder.column", rs.Placeholder.Column, table.FieldDecimal); err != nil {
			return err
		}
		if len(rs.Placeholder.Values) == 0 {
			return configErr("placeholder.values", "placeholder filter configured with an empty value set")
		}
		for _, v := range rs.Placeholder.Values {
			if _, err := decimal.NewFromString(v); err != nil {
				return configErr("placeholder.values", "%q is not a decimal value", v)
			}
		}
	}

	switch rs.NullPolicy.Mode {
	case NullAllColumns:
	case NullKeyFields:
		if len(rs.NullPolicy.KeyColumns) == 0 {
			return configErr("null_policy.key_columns", "key-fields policy requires at least one key column")
		}
		for _, name := range rs.NullPolicy.KeyColumns {
			if !schema.Has(name) {
				return configErr("null_policy.key_columns", "column %q not in schema", name)
			}
		}
	default:
		return configErr("null_policy.mode", "unknown mode %q", rs.NullPolicy.Mode)
	}

	return nil
}

func requireColumn(schema table.Schema, field, name string, want table.FieldType) error {
	col, ok := schema.Column(name)
	if !ok {
		return configErr(field, "column %q not in schema", name)
	}
	if col.Type != want {
		return configErr(field, "column %q has type %s, want %s", name, col.Type, want)
	}
	return nil
}
