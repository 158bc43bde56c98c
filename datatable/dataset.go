// Copyright 2025 Magnus Pierre
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package datatable

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
)

// Dataset is an immutable, ordered collection of named columns backed by an
// Arrow record. Column names are unique and every column has RowCount values.
//
// A Dataset holds a reference on its record; call Release when done.
type Dataset struct {
	rec     arrow.Record
	columns []ColumnInfo
	index   map[string]int
}

// NewDataset wraps rec after checking that column names are unique and
// that every column is RowCount long. The record is retained; the caller
// keeps its own reference.
func NewDataset(rec arrow.Record) (*Dataset, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, ErrNoDataSource)
	}

	schema := rec.Schema()
	rows := rec.NumRows()
	ds := &Dataset{
		columns: make([]ColumnInfo, int(rec.NumCols())),
		index:   make(map[string]int, int(rec.NumCols())),
	}

	for i, field := range schema.Fields() {
		if _, exists := ds.index[field.Name]; exists {
			return nil, fmt.Errorf("%w: %w: %q", ErrInvalidInput, ErrDuplicateColumn, field.Name)
		}
		if n := int64(rec.Column(i).Len()); n != rows {
			return nil, fmt.Errorf("%w: %w: column %q has %d rows, want %d",
				ErrInvalidInput, ErrRowCountMismatch, field.Name, n, rows)
		}

		dt := DataTypeOf(field.Type)
		ds.index[field.Name] = i
		ds.columns[i] = ColumnInfo{
			Index:    i,
			Name:     field.Name,
			Type:     dt,
			Kind:     KindOf(dt),
			Nullable: field.Nullable,
		}
	}

	rec.Retain()
	ds.rec = rec
	return ds, nil
}

// Release drops the Dataset's reference on its record. Calling it more
// than once has no further effect; the Dataset must not be used afterwards.
func (d *Dataset) Release() {
	if d.rec != nil {
		d.rec.Release()
		d.rec = nil
	}
}

// Record returns the underlying Arrow record. The Dataset keeps ownership;
// callers that hold on to it must Retain it.
func (d *Dataset) Record() arrow.Record {
	return d.rec
}

// Schema returns the Arrow schema of the dataset.
func (d *Dataset) Schema() *arrow.Schema {
	return d.rec.Schema()
}

// RowCount returns the number of rows.
func (d *Dataset) RowCount() int {
	return int(d.rec.NumRows())
}

// ColumnCount returns the number of columns.
func (d *Dataset) ColumnCount() int {
	return len(d.columns)
}

// Columns returns a copy of the column descriptions in dataset order.
func (d *Dataset) Columns() []ColumnInfo {
	out := make([]ColumnInfo, len(d.columns))
	copy(out, d.columns)
	return out
}

// ColumnNames returns the column names in dataset order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.columns))
	for i, c := range d.columns {
		names[i] = c.Name
	}
	return names
}

// ColumnIndex returns the position of the named column.
func (d *Dataset) ColumnIndex(name string) (int, error) {
	i, ok := d.index[name]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return i, nil
}

// ColumnName returns the name of the column at col.
func (d *Dataset) ColumnName(col int) (string, error) {
	if err := d.checkColumn(col); err != nil {
		return "", err
	}
	return d.columns[col].Name, nil
}

// ColumnType returns the DataType of the column at col.
func (d *Dataset) ColumnType(col int) (DataType, error) {
	if err := d.checkColumn(col); err != nil {
		return TypeOther, err
	}
	return d.columns[col].Type, nil
}

// ColumnKind returns the Kind of the column at col.
func (d *Dataset) ColumnKind(col int) (Kind, error) {
	if err := d.checkColumn(col); err != nil {
		return KindUnknown, err
	}
	return d.columns[col].Kind, nil
}

// Column returns the Arrow array holding the column at col. The array is
// owned by the Dataset.
func (d *Dataset) Column(col int) (arrow.Array, error) {
	if err := d.checkColumn(col); err != nil {
		return nil, err
	}
	return d.rec.Column(col), nil
}

// Cell returns the value at row, col.
func (d *Dataset) Cell(row, col int) (Value, error) {
	if err := d.checkColumn(col); err != nil {
		return Value{}, err
	}
	if err := d.checkRow(row); err != nil {
		return Value{}, err
	}
	return NewValue(typedValue(d.rec.Column(col), row), d.columns[col].Type), nil
}

// Row returns all values of the given row.
func (d *Dataset) Row(row int) ([]Value, error) {
	if err := d.checkRow(row); err != nil {
		return nil, err
	}

	values := make([]Value, len(d.columns))
	for col, info := range d.columns {
		values[col] = NewValue(typedValue(d.rec.Column(col), row), info.Type)
	}
	return values, nil
}

// IsMissing reports whether the cell at row, col is null, or NaN in a
// floating-point column.
func (d *Dataset) IsMissing(row, col int) (bool, error) {
	if err := d.checkColumn(col); err != nil {
		return false, err
	}
	if err := d.checkRow(row); err != nil {
		return false, err
	}
	return isMissing(d.rec.Column(col), row), nil
}

// MissingMask returns one flag per row of the column at col, true where
// the cell is missing.
func (d *Dataset) MissingMask(col int) ([]bool, error) {
	if err := d.checkColumn(col); err != nil {
		return nil, err
	}

	arr := d.rec.Column(col)
	mask := make([]bool, arr.Len())
	for i := range mask {
		mask[i] = isMissing(arr, i)
	}
	return mask, nil
}

// Metadata returns the schema metadata as a map.
func (d *Dataset) Metadata() Metadata {
	md := d.rec.Schema().Metadata()
	out := make(Metadata, md.Len())
	for i, k := range md.Keys() {
		out[k] = md.Values()[i]
	}
	return out
}

func (d *Dataset) checkColumn(col int) error {
	if col < 0 || col >= len(d.columns) {
		return fmt.Errorf("%w: %d", ErrInvalidColumn, col)
	}
	return nil
}

func (d *Dataset) checkRow(row int) error {
	if row < 0 || row >= d.RowCount() {
		return fmt.Errorf("%w: %d", ErrInvalidRow, row)
	}
	return nil
}
