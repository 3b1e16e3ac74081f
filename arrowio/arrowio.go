// Package arrowio bridges tables to Apache Arrow record batches, so a
// host can hand results to the arrow ecosystem (IPC, parquet writers,
// compute) without the engine learning typed columns. Every table
// column maps to a utf8 arrow column and back.
package arrowio

import (
	"errors"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/tuannm99/tabrel"
)

var ErrColumnType = errors.New("arrowio: column is not utf8")

// Record builds an all-utf8 record batch mirroring t, attribute names
// as field names and rows in order. The caller owns the record and
// must Release it.
func Record(t tabrel.Table) arrow.Record {
	fields := make([]arrow.Field, 0, t.ColumnCount())
	for _, name := range t.Attributes() {
		fields = append(fields, arrow.Field{Name: name, Type: arrow.BinaryTypes.String})
	}
	schema := arrow.NewSchema(fields, nil)

	bld := array.NewRecordBuilder(memory.NewGoAllocator(), schema)
	defer bld.Release()
	_ = t.Each(func(_ int, row []string) error {
		for col, cell := range row {
			bld.Field(col).(*array.StringBuilder).Append(cell)
		}
		return nil
	})
	return bld.NewRecord()
}

// FromRecord ingests a record batch whose columns are all utf8,
// failing with ErrColumnType on anything else. Null entries become
// empty cells.
func FromRecord(rec arrow.Record) (tabrel.Table, error) {
	names := make([]string, int(rec.NumCols()))
	cols := make([]*array.String, int(rec.NumCols()))
	for i := range cols {
		names[i] = rec.ColumnName(i)
		col, ok := rec.Column(i).(*array.String)
		if !ok {
			return tabrel.Table{}, fmt.Errorf("arrowio: column %q is %s: %w",
				names[i], rec.Column(i).DataType(), ErrColumnType)
		}
		cols[i] = col
	}

	rows := make([][]string, int(rec.NumRows()))
	for r := range rows {
		row := make([]string, len(cols))
		for c, col := range cols {
			if !col.IsNull(r) {
				row[c] = col.Value(r)
			}
		}
		rows[r] = row
	}
	return tabrel.FromRows(names, rows)
}
