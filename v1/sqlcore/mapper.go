package sqlcore

import "context"

// ColumnNames extracts the names of a cursor description in order.
func ColumnNames(description []ColumnDescriptor) []string {
	names := make([]string, len(description))
	for i, column := range description {
		names[i] = column.Name
	}
	return names
}

// MapRows pairs each row with columns. Rows and columns keep their order; the
// columns slice is shared by every record.
func MapRows(columns []string, rows [][]any) ResultSet {
	result := make(ResultSet, 0, len(rows))
	for _, row := range rows {
		result = append(result, NewRecord(columns, row))
	}
	return result
}

// Materialize reads the description of cursor once, fetches every row and maps
// them into a ResultSet. The result is empty, not nil, when there are no rows.
func Materialize(ctx context.Context, cursor Cursor) (ResultSet, error) {
	columns := ColumnNames(cursor.Description())

	rows, err := cursor.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	return MapRows(columns, rows), nil
}
