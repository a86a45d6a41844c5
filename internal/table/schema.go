// Package table defines the in-memory tabular data model shared by the
// cleaning pipeline and its collaborators: a column schema, typed cells
// with an explicit null marker, and an ordered table of rows.
//
// The model has no I/O; loaders hand over raw cells (usually text) and the
// pipeline replaces them with typed cells. Tables are treated as immutable
// between pipeline stages: each stage builds a new Table rather than
// mutating rows in place.
package table

import "fmt"

// Column is one (name, declared type) pair in a schema.
type Column struct {
	Name string
	Type FieldType
}

// Schema is the ordered set of columns a table conforms to.
// Column order defines output order; names must be unique.
type Schema []Column

// Validate checks the schema invariants: non-empty, unique column names.
func (s Schema) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("schema has no columns")
	}
	seen := make(map[string]struct{}, len(s))
	for _, col := range s {
		if col.Name == "" {
			return fmt.Errorf("schema contains a column with an empty name")
		}
		if _, dup := seen[col.Name]; dup {
			return fmt.Errorf("duplicate column %q in schema", col.Name)
		}
		seen[col.Name] = struct{}{}
	}
	return nil
}

// Column returns the column with the given name, if present.
func (s Schema) Column(name string) (Column, bool) {
	for _, col := range s {
		if col.Name == name {
			return col, true
		}
	}
	return Column{}, false
}

// Has reports whether the schema contains a column with the given name.
func (s Schema) Has(name string) bool {
	_, ok := s.Column(name)
	return ok
}

// Names returns the column names in schema order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, col := range s {
		names[i] = col.Name
	}
	return names
}

// Clone returns an independent copy of the schema.
func (s Schema) Clone() Schema {
	out := make(Schema, len(s))
	copy(out, s)
	return out
}

// WithColumn returns a schema extended with col appended at the end.
// If a column with the same name already exists, the schema is unchanged.
func (s Schema) WithColumn(col Column) Schema {
	if s.Has(col.Name) {
		return s.Clone()
	}
	out := make(Schema, len(s), len(s)+1)
	copy(out, s)
	return append(out, col)
}
