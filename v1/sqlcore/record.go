package sqlcore

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// ResultSet is an ordered sequence of records. A nil ResultSet means the
// statement produced no rows, either because it has no result set or because
// the result set was empty.
type ResultSet []Record

// Record is one row keyed by column name. Column order follows the cursor
// description.
type Record struct {
	columns []string
	values  []any
}

// NewRecord builds a Record from aligned column and value slices. Extra entries on
// either side are dropped.
func NewRecord(columns []string, values []any) Record {
	n := min(len(columns), len(values))
	return Record{columns: columns[:n:n], values: values[:n:n]}
}

// Len returns the number of columns in the record.
func (r Record) Len() int {
	return len(r.columns)
}

// Columns returns the column names in order.
func (r Record) Columns() []string {
	return append([]string(nil), r.columns...)
}

// Values returns the column values in order.
func (r Record) Values() []any {
	return append([]any(nil), r.values...)
}

// Get returns the value of column. When a name repeats, the last value wins.
func (r Record) Get(column string) (any, bool) {
	for i := len(r.columns) - 1; i >= 0; i-- {
		if r.columns[i] == column {
			return r.values[i], true
		}
	}
	return nil, false
}

// Map returns the record as a plain map.
func (r Record) Map() map[string]any {
	m := make(map[string]any, len(r.columns))
	for i, column := range r.columns {
		m[column] = r.values[i]
	}
	return m
}

// MarshalJSON encodes the record as an object whose keys keep column order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	seen := make(map[string]struct{}, len(r.columns))
	for _, column := range r.columns {
		if _, dup := seen[column]; dup {
			continue
		}
		seen[column] = struct{}{}

		if len(seen) > 1 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(column)
		if err != nil {
			return nil, err
		}
		value, _ := r.Get(column)
		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(encoded)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Maps converts every record with Record.Map.
func (rs ResultSet) Maps() []map[string]any {
	if rs == nil {
		return nil
	}
	out := make([]map[string]any, len(rs))
	for i, r := range rs {
		out[i] = r.Map()
	}
	return out
}

// orNil collapses an empty result set to nil.
func (rs ResultSet) orNil() ResultSet {
	if len(rs) == 0 {
		return nil
	}
	return rs
}
