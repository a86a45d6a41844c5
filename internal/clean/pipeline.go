// Package clean implements the data-cleaning pipeline: an ordered sequence
// of pure Table -> Table repair and validation stages driven by a Ruleset.
//
// Stage order is fixed: coerce -> trim -> correct categories -> remap
// outliers -> normalize sign -> filter placeholders -> apply null policy.
// Later stages rely on earlier stages' typing and normalization holding for
// every row, so a stage never starts before the previous one has produced
// its full output table.
//
// Per-cell problems are absorbed into nulls and audit counters. Structural
// problems (a row not matching the schema, an invalid ruleset) abort the
// run before any stage executes: the caller gets either a cleaned table
// with its audit, or a single error, never a partially cleaned table.
//
// The full run is idempotent: every stage is a projection, so running the
// pipeline over its own output changes nothing.
package clean

import (
	"log/slog"

	"tablewash/internal/rules"
	"tablewash/internal/table"
)

// Run executes the pipeline over tbl and returns the cleaned table and the
// audit of what changed. The input table is not modified.
func Run(tbl table.Table, rs rules.Ruleset) (table.Table, *Audit, error) {
	if err := tbl.Schema.Validate(); err != nil {
		return table.Table{}, nil, err
	}
	if err := tbl.Conform(); err != nil {
		return table.Table{}, nil, err
	}
	if err := rs.Validate(tbl.Schema); err != nil {
		return table.Table{}, nil, err
	}

	audit := newAudit(len(tbl.Rows))
	policy := policyFor(rs.NullPolicy)

	stages := []struct {
		name  string
		apply func(table.Table) table.Table
	}{
		{"coerce", func(t table.Table) table.Table {
			return coerceTable(t, audit)
		}},
		{"trim", func(t table.Table) table.Table {
			return trimText(t, rs.TrimColumns)
		}},
		{"correct-categories", func(t table.Table) table.Table {
			return correctCategories(t, rs.Corrections)
		}},
		{"remap-outliers", func(t table.Table) table.Table {
			if rs.Outlier.Column == "" {
				return t
			}
			return remapOutliers(t, rs.Outlier, audit)
		}},
		{"normalize-sign", func(t table.Table) table.Table {
			if rs.Sign.Column == "" {
				return t
			}
			return normalizeSign(t, rs.Sign, audit)
		}},
		{"filter-placeholders", func(t table.Table) table.Table {
			if rs.Placeholder.Column == "" {
				return t
			}
			return filterPlaceholders(t, rs.Placeholder, audit)
		}},
		{"null-policy", func(t table.Table) table.Table {
			return applyNullPolicy(t, policy, audit)
		}},
	}

	for _, stage := range stages {
		tbl = stage.apply(tbl)
		slog.Debug("stage complete", "stage", stage.name, "rows", len(tbl.Rows))
	}

	audit.finish(len(tbl.Rows))
	slog.Info("cleaning run complete",
		"run_id", audit.RunID,
		"policy", policy.Name(),
		"rows_in", audit.RowsIn,
		"rows_out", audit.RowsOut,
		"cells_coerced_to_null", audit.CellsCoercedToNull,
		"cells_outlier_remapped", audit.CellsOutlierRemapped,
		"cells_sign_normalized", audit.CellsSignNormalized,
		"rows_removed_placeholder", audit.RowsRemovedPlaceholder,
		"rows_removed_null_policy", audit.RowsRemovedNullPolicy,
	)

	return tbl, audit, nil
}
