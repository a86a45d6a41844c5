package clean

import (
	"tablewash/internal/rules"
	"tablewash/internal/table"
)

// NullPolicy is the final row admission gate. Exactly one variant runs per
// pipeline execution; the variants are alternative configurations, never
// composed within one run.
type NullPolicy interface {
	// Admit reports whether the row survives the policy.
	Admit(row table.Row, schema table.Schema) bool
	// Name identifies the policy in logs.
	Name() string
}

// KeyFieldsOnly admits a row iff every configured key column is non-null.
// Other columns may remain null in the output.
type KeyFieldsOnly struct {
	Columns []string
}

func (p KeyFieldsOnly) Admit(row table.Row, _ table.Schema) bool {
	for _, name := range p.Columns {
		if !row[name].Valid {
			return false
		}
	}
	return true
}

func (p KeyFieldsOnly) Name() string { return "key-fields" }

// AllColumns admits a row iff no column in the schema is null.
type AllColumns struct{}

func (AllColumns) Admit(row table.Row, schema table.Schema) bool {
	for _, col := range schema {
		if !row[col.Name].Valid {
			return false
		}
	}
	return true
}

func (AllColumns) Name() string { return "all-columns" }

// policyFor maps the ruleset's null policy configuration onto its variant.
// Validate has already rejected unknown modes.
func policyFor(rule rules.NullPolicyRule) NullPolicy {
	if rule.Mode == rules.NullAllColumns {
		return AllColumns{}
	}
	return KeyFieldsOnly{Columns: rule.KeyColumns}
}

// applyNullPolicy keeps only the rows the policy admits.
func applyNullPolicy(t table.Table, policy NullPolicy, audit *Audit) table.Table {
	out := table.Table{Schema: t.Schema.Clone(), Rows: make([]table.Row, 0, len(t.Rows))}
	for _, row := range t.Rows {
		if !policy.Admit(row, t.Schema) {
			audit.RowsRemovedNullPolicy++
			continue
		}
		out.Rows = append(out.Rows, row.Clone())
	}
	return out
}
