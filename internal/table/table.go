package table

import "fmt"

// Row maps column names to cells. A row conforming to a schema has exactly
// the schema's columns; a missing value is a null cell, never an absent key.
type Row map[string]Cell

// Clone returns an independent copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Table is an ordered sequence of rows conforming to one schema.
type Table struct {
	Schema Schema
	Rows   []Row
}

// SchemaViolation reports a row that does not match the table's schema.
// It aborts a pipeline run before any stage executes.
type SchemaViolation struct {
	Row    int    // 1-based row position
	Column string // offending column
	Reason string
}

func (e *SchemaViolation) Error() string {
	return fmt.Sprintf("schema violation at row %d, column %q: %s", e.Row, e.Column, e.Reason)
}

// Conform verifies every row carries exactly the schema's columns.
// Cell types are not checked here; pre-coercion cells may hold raw values.
func (t Table) Conform() error {
	for i, row := range t.Rows {
		for _, col := range t.Schema {
			if _, ok := row[col.Name]; !ok {
				return &SchemaViolation{Row: i + 1, Column: col.Name, Reason: "declared column missing from row"}
			}
		}
		if len(row) > len(t.Schema) {
			for name := range row {
				if !t.Schema.Has(name) {
					return &SchemaViolation{Row: i + 1, Column: name, Reason: "column not declared in schema"}
				}
			}
		}
	}
	return nil
}
