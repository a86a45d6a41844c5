package table

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// FieldType identifies the declared type of a column.
type FieldType int

const (
	FieldText FieldType = iota
	FieldInteger
	FieldDecimal
	FieldDate
	FieldBool
)

// String returns the configuration name of the field type.
func (t FieldType) String() string {
	switch t {
	case FieldText:
		return "text"
	case FieldInteger:
		return "integer"
	case FieldDecimal:
		return "decimal"
	case FieldDate:
		return "date"
	case FieldBool:
		return "boolean"
	default:
		return "unknown"
	}
}

// ParseFieldType converts a configuration type name to a FieldType.
func ParseFieldType(s string) (FieldType, bool) {
	switch s {
	case "text", "string":
		return FieldText, true
	case "integer", "int":
		return FieldInteger, true
	case "decimal", "numeric":
		return FieldDecimal, true
	case "date":
		return FieldDate, true
	case "boolean", "bool":
		return FieldBool, true
	default:
		return FieldText, false
	}
}

// Cell is a single typed value or an explicit null. A cell with Valid=false
// is the null marker; its value fields are meaningless and must be ignored.
// Only the value field matching Type carries data.
type Cell struct {
	Type  FieldType
	Valid bool
	Text  string
	Int   int64
	Dec   decimal.Decimal
	Date  time.Time
	Bool  bool
}

// Null returns the null cell for the given type.
func Null(t FieldType) Cell {
	return Cell{Type: t}
}

// NewText returns a valid text cell.
func NewText(s string) Cell {
	return Cell{Type: FieldText, Valid: true, Text: s}
}

// NewInt returns a valid integer cell.
func NewInt(i int64) Cell {
	return Cell{Type: FieldInteger, Valid: true, Int: i}
}

// NewDecimal returns a valid decimal cell.
func NewDecimal(d decimal.Decimal) Cell {
	return Cell{Type: FieldDecimal, Valid: true, Dec: d}
}

// NewDate returns a valid date cell. Any time-of-day component is dropped.
func NewDate(t time.Time) Cell {
	return Cell{Type: FieldDate, Valid: true, Date: TruncateToDate(t)}
}

// NewBool returns a valid boolean cell.
func NewBool(b bool) Cell {
	return Cell{Type: FieldBool, Valid: true, Bool: b}
}

// TruncateToDate drops the time-of-day component, keeping the calendar date.
func TruncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FromRaw builds a cell from an untyped scalar handed over by an external
// loader. nil becomes a null text cell; unrecognized kinds are stringified
// so the coercion stage can still make sense of them.
func FromRaw(v any) Cell {
	switch x := v.(type) {
	case nil:
		return Null(FieldText)
	case string:
		return NewText(x)
	case bool:
		return NewBool(x)
	case int:
		return NewInt(int64(x))
	case int32:
		return NewInt(int64(x))
	case int64:
		return NewInt(x)
	case float32:
		return NewDecimal(decimal.NewFromFloat32(x))
	case float64:
		return NewDecimal(decimal.NewFromFloat(x))
	case decimal.Decimal:
		return NewDecimal(x)
	case time.Time:
		return NewDate(x)
	case Cell:
		return x
	default:
		return NewText(stringify(v))
	}
}

// Equal reports whether two cells hold the same type and value.
// Null cells of the same type compare equal regardless of leftover fields.
func (c Cell) Equal(o Cell) bool {
	if c.Type != o.Type || c.Valid != o.Valid {
		return false
	}
	if !c.Valid {
		return true
	}
	switch c.Type {
	case FieldText:
		return c.Text == o.Text
	case FieldInteger:
		return c.Int == o.Int
	case FieldDecimal:
		return c.Dec.Equal(o.Dec)
	case FieldDate:
		return c.Date.Equal(o.Date)
	case FieldBool:
		return c.Bool == o.Bool
	default:
		return false
	}
}

// String renders the cell for output. Null cells render as the empty string.
func (c Cell) String() string {
	if !c.Valid {
		return ""
	}
	switch c.Type {
	case FieldText:
		return c.Text
	case FieldInteger:
		return strconv.FormatInt(c.Int, 10)
	case FieldDecimal:
		return c.Dec.String()
	case FieldDate:
		return c.Date.Format("2006-01-02")
	case FieldBool:
		return strconv.FormatBool(c.Bool)
	default:
		return ""
	}
}

func stringify(v any) string {
	return fmt.Sprintf("%v", v)
}
