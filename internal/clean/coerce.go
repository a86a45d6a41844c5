package clean

// coerce.go converts raw cells to the column's declared type.
//
// Coercion handles the messy reality of user-provided tabular data:
//   - Multiple date formats (US, EU, ISO, with or without a time component)
//   - Currency symbols and thousand separators in numbers
//   - Various boolean representations (yes/no, true/false, 1/0)
//
// A failed parse never raises: the cell becomes null and the audit's
// coercion counter is incremented. Bad cells do not abort the run.

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"tablewash/internal/table"
)

// numericRegex validates that a string is a valid numeric format after cleanup.
// Matches integers, decimals, and scientific notation.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// TwoDigitYearPivot defines how 2-digit years are interpreted.
// Years that would result in dates more than this many years in the future
// are assumed to be in the previous century.
var TwoDigitYearPivot = 20

// Date layouts split by year format for proper 2-digit year handling.
// Layouts carrying a time component are truncated to the calendar date.
var (
	twoDigitYearLayouts = []string{
		"1/2/06", "01/02/06", "1-2-06", "1.2.06", "01.02.06",
	}
	fourDigitYearLayouts = []string{
		"1/2/2006", "01/02/2006", "1-2-2006", "01-02-2006", "1.2.2006", "01.02.2006",
		"2006-01-02", "2006/01/02", "2006.01.02",
		"Jan 2, 2006", "2 Jan 2006",
		"20060102",
		"2006-01-02 15:04:05", "2006-01-02T15:04:05", "2006-01-02 15:04",
		"1/2/2006 15:04:05", "1/2/2006 15:04",
	}
)

// coerceTable replaces every cell with the typed form its column declares.
// Non-null cells that fail to coerce become null and are counted.
func coerceTable(t table.Table, audit *Audit) table.Table {
	out := table.Table{Schema: t.Schema.Clone(), Rows: make([]table.Row, 0, len(t.Rows))}
	for _, row := range t.Rows {
		next := make(table.Row, len(row))
		for _, col := range t.Schema {
			cell := coerceCell(row[col.Name], col.Type)
			if row[col.Name].Valid && !cell.Valid {
				audit.CellsCoercedToNull++
			}
			next[col.Name] = cell
		}
		out.Rows = append(out.Rows, next)
	}
	return out
}

// coerceCell converts one raw cell to the declared type, or null.
func coerceCell(c table.Cell, want table.FieldType) table.Cell {
	if !c.Valid {
		return table.Null(want)
	}

	switch want {
	case table.FieldText:
		return coerceText(c)
	case table.FieldInteger:
		return coerceInteger(c)
	case table.FieldDecimal:
		return coerceDecimal(c)
	case table.FieldDate:
		return coerceDate(c)
	case table.FieldBool:
		return coerceBool(c)
	default:
		return table.Null(want)
	}
}

func coerceText(c table.Cell) table.Cell {
	s := c.String()
	if strings.TrimSpace(s) == "" {
		return table.Null(table.FieldText)
	}
	return table.NewText(s)
}

func coerceInteger(c table.Cell) table.Cell {
	switch c.Type {
	case table.FieldInteger:
		return c
	case table.FieldDecimal:
		if c.Dec.IsInteger() {
			return table.NewInt(c.Dec.IntPart())
		}
	case table.FieldText:
		i, err := strconv.ParseInt(strings.TrimSpace(c.Text), 10, 64)
		if err == nil {
			return table.NewInt(i)
		}
	}
	return table.Null(table.FieldInteger)
}

func coerceDecimal(c table.Cell) table.Cell {
	switch c.Type {
	case table.FieldDecimal:
		return c
	case table.FieldInteger:
		return table.NewDecimal(decimal.NewFromInt(c.Int))
	case table.FieldText:
		if d, ok := parseDecimal(c.Text); ok {
			return table.NewDecimal(d)
		}
	}
	return table.Null(table.FieldDecimal)
}

func coerceDate(c table.Cell) table.Cell {
	switch c.Type {
	case table.FieldDate:
		// Re-truncate in case the cell was built outside the constructors.
		return table.NewDate(c.Date)
	case table.FieldText:
		if t, ok := parseDate(c.Text); ok {
			return table.NewDate(t)
		}
	}
	return table.Null(table.FieldDate)
}

func coerceBool(c table.Cell) table.Cell {
	switch c.Type {
	case table.FieldBool:
		return c
	case table.FieldText:
		if b, ok := parseBool(c.Text); ok {
			return table.NewBool(b)
		}
	}
	return table.Null(table.FieldBool)
}

// parseDecimal handles currency symbols, thousands separators, and
// accounting format (parentheses for negative).
func parseDecimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, false
	}

	// Detect negative accounting format "(123.45)"
	isNegative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		isNegative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	// Remove common currency symbols and thousands separators
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "€", "") // Euro
	s = strings.ReplaceAll(s, "£", "") // Pound
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if isNegative {
		s = "-" + s
	}

	if !numericRegex.MatchString(s) {
		return decimal.Decimal{}, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// parseDate supports multiple date formats and handles 2-digit years with a
// pivot. The time-of-day component, when present, is dropped by the caller.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	// Try 4-digit year layouts first (unambiguous)
	for _, layout := range fourDigitYearLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, true
		}
	}

	// Try 2-digit year layouts with pivot year adjustment
	pivotYear := time.Now().Year() + TwoDigitYearPivot

	for _, layout := range twoDigitYearLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			if t.Year() > pivotYear {
				t = t.AddDate(-100, 0, 0)
			}
			return t, true
		}
	}

	return time.Time{}, false
}

// parseBool accepts the common boolean token sets.
func parseBool(s string) (bool, bool) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "true", "t", "yes", "y", "1":
		return true, true
	case "false", "f", "no", "n", "0":
		return false, true
	default:
		return false, false
	}
}
