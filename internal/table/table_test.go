package table

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestSchemaValidate(t *testing.T) {
	tests := []struct {
		name    string
		schema  Schema
		wantErr bool
	}{
		{
			name:   "valid schema",
			schema: Schema{{Name: "City", Type: FieldText}, {Name: "Quantity", Type: FieldInteger}},
		},
		{
			name:    "duplicate column name",
			schema:  Schema{{Name: "City", Type: FieldText}, {Name: "City", Type: FieldInteger}},
			wantErr: true,
		},
		{
			name:    "empty column name",
			schema:  Schema{{Name: "", Type: FieldText}},
			wantErr: true,
		},
		{
			name:    "empty schema",
			schema:  Schema{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schema.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSchemaWithColumn(t *testing.T) {
	s := Schema{{Name: "Quantity", Type: FieldInteger}}

	extended := s.WithColumn(Column{Name: "IsReturn", Type: FieldBool})
	if len(extended) != 2 || extended[1].Name != "IsReturn" {
		t.Fatalf("WithColumn did not append: %v", extended)
	}
	if len(s) != 1 {
		t.Errorf("WithColumn mutated the receiver")
	}

	again := extended.WithColumn(Column{Name: "IsReturn", Type: FieldBool})
	if len(again) != 2 {
		t.Errorf("WithColumn duplicated an existing column")
	}
}

func TestTableConform(t *testing.T) {
	schema := Schema{{Name: "City", Type: FieldText}, {Name: "Quantity", Type: FieldInteger}}

	ok := Table{Schema: schema, Rows: []Row{
		{"City": NewText("Yangon"), "Quantity": NewInt(3)},
		{"City": Null(FieldText), "Quantity": Null(FieldInteger)},
	}}
	if err := ok.Conform(); err != nil {
		t.Errorf("Conform() error = %v, want nil", err)
	}

	missing := Table{Schema: schema, Rows: []Row{
		{"City": NewText("Yangon")},
	}}
	err := missing.Conform()
	sv, isViolation := err.(*SchemaViolation)
	if !isViolation {
		t.Fatalf("Conform() error = %T, want *SchemaViolation", err)
	}
	if sv.Column != "Quantity" || sv.Row != 1 {
		t.Errorf("violation = %+v, want row 1 column Quantity", sv)
	}

	extra := Table{Schema: schema, Rows: []Row{
		{"City": NewText("Yangon"), "Quantity": NewInt(3), "Ghost": NewText("boo")},
	}}
	if _, isViolation := extra.Conform().(*SchemaViolation); !isViolation {
		t.Errorf("Conform() should reject undeclared columns")
	}
}

func TestNewDateTruncates(t *testing.T) {
	c := NewDate(time.Date(2024, 6, 1, 18, 30, 59, 12, time.UTC))
	want := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	if !c.Date.Equal(want) {
		t.Errorf("NewDate = %v, want %v", c.Date, want)
	}
}

func TestFromRaw(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Cell
	}{
		{"nil", nil, Null(FieldText)},
		{"string", "hi", NewText("hi")},
		{"int", 7, NewInt(7)},
		{"int64", int64(-2), NewInt(-2)},
		{"float64", 2.5, NewDecimal(decimal.NewFromFloat(2.5))},
		{"bool", true, NewBool(true)},
		{"time", time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC), NewDate(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromRaw(tt.in); !got.Equal(tt.want) {
				t.Errorf("FromRaw(%v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCellString(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want string
	}{
		{"null", Null(FieldDecimal), ""},
		{"text", NewText("Cash"), "Cash"},
		{"int", NewInt(-3), "-3"},
		{"decimal", NewDecimal(decimal.RequireFromString("74.69")), "74.69"},
		{"date", NewDate(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)), "2024-03-15"},
		{"bool", NewBool(true), "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cell.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseFieldType(t *testing.T) {
	for name, want := range map[string]FieldType{
		"text": FieldText, "integer": FieldInteger, "decimal": FieldDecimal,
		"date": FieldDate, "boolean": FieldBool, "bool": FieldBool,
	} {
		got, ok := ParseFieldType(name)
		if !ok || got != want {
			t.Errorf("ParseFieldType(%q) = (%v, %v), want (%v, true)", name, got, ok, want)
		}
	}
	if _, ok := ParseFieldType("blob"); ok {
		t.Errorf("ParseFieldType(blob) accepted an unknown type")
	}
}
