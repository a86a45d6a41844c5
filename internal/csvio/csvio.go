// Package csvio is the ingestion and output collaborator of the cleaning
// pipeline. It materializes a CSV stream into a raw table (text cells for
// the coercion stage to type) and renders a cleaned table back to CSV in
// schema column order. The pipeline itself never touches files.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"tablewash/internal/table"
)

// Load reads CSV data and materializes it against the schema. The first
// record is the header; matching against schema column names is
// case-insensitive. Cells become raw text cells (empty cells become nulls),
// leaving all typing to the pipeline's coercion stage.
func Load(r io.Reader, schema table.Schema) (table.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows are handled below
	reader.LazyQuotes = true    // tolerate Excel ="..." artifacts

	records, err := reader.ReadAll()
	if err != nil {
		return table.Table{}, fmt.Errorf("reading csv: %w", err)
	}
	if len(records) == 0 {
		return table.Table{}, fmt.Errorf("csv input is empty")
	}

	headerIdx, err := matchHeader(records[0], schema)
	if err != nil {
		return table.Table{}, err
	}

	out := table.Table{Schema: schema.Clone(), Rows: make([]table.Row, 0, len(records)-1)}
	for _, record := range records[1:] {
		if isBlank(record) {
			continue
		}
		row := make(table.Row, len(schema))
		for _, col := range schema {
			pos := headerIdx[strings.ToLower(col.Name)]
			if pos >= len(record) {
				row[col.Name] = table.Null(col.Type)
				continue
			}
			raw := CleanCell(record[pos])
			if raw == "" {
				row[col.Name] = table.Null(col.Type)
				continue
			}
			row[col.Name] = table.NewText(raw)
		}
		out.Rows = append(out.Rows, row)
	}

	return out, nil
}

// LoadFile reads a CSV file into a raw table.
func LoadFile(path string, schema table.Schema) (table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return table.Table{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return Load(f, schema)
}

// Write renders the table as CSV in schema column order.
// Null cells render as empty fields.
func Write(w io.Writer, t table.Table) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(t.Schema.Names()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	record := make([]string, len(t.Schema))
	for _, row := range t.Rows {
		for i, col := range t.Schema {
			record[i] = row[col.Name].String()
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteFile renders the table to a CSV file.
func WriteFile(path string, t table.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	return Write(f, t)
}

// matchHeader maps lowercased header names to their record positions and
// verifies every schema column is present.
func matchHeader(header []string, schema table.Schema) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(CleanCell(h))] = i
	}

	var missing []string
	for _, col := range schema {
		if _, ok := idx[strings.ToLower(col.Name)]; !ok {
			missing = append(missing, col.Name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns in csv header: %s", strings.Join(missing, ", "))
	}

	return idx, nil
}

// CleanCell removes common CSV artifacts from a cell value:
// - Trims a UTF-8 BOM and surrounding whitespace
// - Removes Excel formula prefix (="...")
// - Removes surrounding quotes
func CleanCell(s string) string {
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	return strings.Trim(s, `"'`)
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
