package clean

// stages.go holds the column-level repair stages between coercion and the
// row admission filters. Every stage is a pure Table -> Table function and
// a projection: applying it to an already-clean table changes nothing.

import (
	"strings"

	"github.com/shopspring/decimal"

	"tablewash/internal/rules"
	"tablewash/internal/table"
)

// trimText strips leading/trailing whitespace from the configured text
// columns. Internal whitespace is preserved; nulls pass through.
func trimText(t table.Table, columns []string) table.Table {
	out := table.Table{Schema: t.Schema.Clone(), Rows: make([]table.Row, 0, len(t.Rows))}
	for _, row := range t.Rows {
		next := row.Clone()
		for _, name := range columns {
			cell := next[name]
			if !cell.Valid || cell.Type != table.FieldText {
				continue
			}
			next[name] = table.NewText(strings.TrimSpace(cell.Text))
		}
		out.Rows = append(out.Rows, next)
	}
	return out
}

// correctCategories replaces known-bad category tokens with their canonical
// form. Matches are exact and case-sensitive, applied after trimming.
func correctCategories(t table.Table, corrections []rules.CorrectionRule) table.Table {
	byColumn := make(map[string]map[string]string, len(corrections))
	for _, c := range corrections {
		if byColumn[c.Column] == nil {
			byColumn[c.Column] = make(map[string]string)
		}
		byColumn[c.Column][c.Replace] = c.With
	}

	out := table.Table{Schema: t.Schema.Clone(), Rows: make([]table.Row, 0, len(t.Rows))}
	for _, row := range t.Rows {
		next := row.Clone()
		for name, mapping := range byColumn {
			cell := next[name]
			if !cell.Valid || cell.Type != table.FieldText {
				continue
			}
			if good, ok := mapping[cell.Text]; ok {
				next[name] = table.NewText(good)
			}
		}
		out.Rows = append(out.Rows, next)
	}
	return out
}

// remapOutliers rewrites sentinel values at or above the threshold to the
// canonical replacement. In-range values and nulls pass through, so the
// stage preserves row count.
func remapOutliers(t table.Table, rule rules.OutlierRule, audit *Audit) table.Table {
	out := table.Table{Schema: t.Schema.Clone(), Rows: make([]table.Row, 0, len(t.Rows))}
	for _, row := range t.Rows {
		next := row.Clone()
		cell := next[rule.Column]
		if cell.Valid && cell.Type == table.FieldInteger && cell.Int >= rule.Threshold {
			next[rule.Column] = table.NewInt(rule.Replacement)
			audit.CellsOutlierRemapped++
		}
		out.Rows = append(out.Rows, next)
	}
	return out
}

// normalizeSign replaces negative values with their absolute value. In
// flagged mode the flag is computed from the pre-normalization value; a
// flag already set true on the input row stays true, which keeps a rerun
// over cleaned data a no-op.
func normalizeSign(t table.Table, rule rules.SignRule, audit *Audit) table.Table {
	flagged := rule.Mode == rules.SignFlagged

	schema := t.Schema.Clone()
	if flagged {
		schema = schema.WithColumn(table.Column{Name: rule.FlagColumn, Type: table.FieldBool})
	}

	out := table.Table{Schema: schema, Rows: make([]table.Row, 0, len(t.Rows))}
	for _, row := range t.Rows {
		next := row.Clone()
		cell := next[rule.Column]
		negative := cell.Valid && cell.Type == table.FieldInteger && cell.Int < 0

		if flagged {
			prev := next[rule.FlagColumn]
			next[rule.FlagColumn] = table.NewBool(negative || (prev.Valid && prev.Bool))
		}
		if negative {
			next[rule.Column] = table.NewInt(-cell.Int)
			audit.CellsSignNormalized++
		}
		out.Rows = append(out.Rows, next)
	}
	return out
}

// filterPlaceholders removes rows whose designated decimal column equals a
// member of the placeholder set. Nulls are not removed here; that is the
// null policy's job.
func filterPlaceholders(t table.Table, rule rules.PlaceholderRule, audit *Audit) table.Table {
	values := rule.Decimals()

	out := table.Table{Schema: t.Schema.Clone(), Rows: make([]table.Row, 0, len(t.Rows))}
	for _, row := range t.Rows {
		cell := row[rule.Column]
		if cell.Valid && cell.Type == table.FieldDecimal && isPlaceholder(cell.Dec, values) {
			audit.RowsRemovedPlaceholder++
			continue
		}
		out.Rows = append(out.Rows, row.Clone())
	}
	return out
}

func isPlaceholder(d decimal.Decimal, values []decimal.Decimal) bool {
	for _, v := range values {
		if d.Equal(v) {
			return true
		}
	}
	return false
}
