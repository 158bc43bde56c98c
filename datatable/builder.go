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
	"math"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// Builder assembles a Dataset column by column from Go slices.
//
// Each append method takes an optional validity mask: a nil mask marks
// every value present, otherwise valid[i] == false makes row i null and the
// mask must be as long as the values. The first error sticks and is
// returned by Build.
type Builder struct {
	mem    memory.Allocator
	fields []arrow.Field
	cols   []arrow.Array
	rows   int64
	err    error
}

// Timestamps representable as int64 nanoseconds since the epoch.
var (
	minNanoTime = time.Unix(0, math.MinInt64).UTC()
	maxNanoTime = time.Unix(0, math.MaxInt64).UTC()
)

// NewBuilder returns a Builder allocating from mem. A nil mem uses the
// default Go allocator.
func NewBuilder(mem memory.Allocator) *Builder {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	return &Builder{mem: mem, rows: -1}
}

// Rows fixes the row count of the dataset. Every column must then have n
// values, and a Builder with no columns builds n empty rows.
func (b *Builder) Rows(n int) *Builder {
	if b.err != nil {
		return b
	}
	if n < 0 {
		b.err = fmt.Errorf("%w: negative row count %d", ErrInvalidInput, n)
		return b
	}
	b.rows = int64(n)
	return b
}

// Float64 appends a float64 column.
func (b *Builder) Float64(name string, values []float64, valid []bool) *Builder {
	if !b.checkMask(name, len(values), valid) {
		return b
	}
	bld := array.NewFloat64Builder(b.mem)
	defer bld.Release()
	bld.AppendValues(values, valid)
	return b.add(name, bld.NewArray())
}

// Int64 appends an int64 column.
func (b *Builder) Int64(name string, values []int64, valid []bool) *Builder {
	if !b.checkMask(name, len(values), valid) {
		return b
	}
	bld := array.NewInt64Builder(b.mem)
	defer bld.Release()
	bld.AppendValues(values, valid)
	return b.add(name, bld.NewArray())
}

// String appends a string column.
func (b *Builder) String(name string, values []string, valid []bool) *Builder {
	if !b.checkMask(name, len(values), valid) {
		return b
	}
	bld := array.NewStringBuilder(b.mem)
	defer bld.Release()
	bld.AppendValues(values, valid)
	return b.add(name, bld.NewArray())
}

// Bool appends a boolean column.
func (b *Builder) Bool(name string, values []bool, valid []bool) *Builder {
	if !b.checkMask(name, len(values), valid) {
		return b
	}
	bld := array.NewBooleanBuilder(b.mem)
	defer bld.Release()
	bld.AppendValues(values, valid)
	return b.add(name, bld.NewArray())
}

// Date32 appends a date column; the time of day is dropped.
func (b *Builder) Date32(name string, values []time.Time, valid []bool) *Builder {
	if !b.checkMask(name, len(values), valid) {
		return b
	}
	days := make([]arrow.Date32, len(values))
	for i, t := range values {
		days[i] = arrow.Date32FromTime(t)
	}
	bld := array.NewDate32Builder(b.mem)
	defer bld.Release()
	bld.AppendValues(days, valid)
	return b.add(name, bld.NewArray())
}

// Timestamp appends a nanosecond UTC timestamp column. Present values
// must lie within the nanosecond range, roughly the years 1678 to 2262.
func (b *Builder) Timestamp(name string, values []time.Time, valid []bool) *Builder {
	if !b.checkMask(name, len(values), valid) {
		return b
	}
	stamps := make([]arrow.Timestamp, len(values))
	for i, t := range values {
		if valid != nil && !valid[i] {
			continue
		}
		if t.Before(minNanoTime) || t.After(maxNanoTime) {
			b.err = fmt.Errorf("%w: %w: column %q row %d: %s is outside the nanosecond timestamp range",
				ErrInvalidInput, ErrTypeMismatch, name, i, t.Format(time.RFC3339))
			return b
		}
		stamps[i] = arrow.Timestamp(t.UnixNano())
	}
	bld := array.NewTimestampBuilder(b.mem, &arrow.TimestampType{Unit: arrow.Nanosecond, TimeZone: "UTC"})
	defer bld.Release()
	bld.AppendValues(stamps, valid)
	return b.add(name, bld.NewArray())
}

// Array appends a pre-built Arrow array. The builder takes its own
// reference; the caller keeps theirs.
func (b *Builder) Array(name string, arr arrow.Array) *Builder {
	if b.err != nil {
		return b
	}
	if arr == nil {
		b.err = fmt.Errorf("%w: column %q: %w", ErrInvalidInput, name, ErrNoDataSource)
		return b
	}
	arr.Retain()
	return b.add(name, arr)
}

// Build creates the Dataset and releases the builder's column references.
// The Builder is empty afterwards.
func (b *Builder) Build() (*Dataset, error) {
	defer b.reset()
	if b.err != nil {
		return nil, b.err
	}

	rows := b.rows
	for i, col := range b.cols {
		if rows < 0 {
			rows = int64(col.Len())
			continue
		}
		if int64(col.Len()) != rows {
			return nil, fmt.Errorf("%w: %w: column %q has %d rows, want %d",
				ErrInvalidInput, ErrRowCountMismatch, b.fields[i].Name, col.Len(), rows)
		}
	}

	seen := make(map[string]struct{}, len(b.fields))
	for _, f := range b.fields {
		if _, ok := seen[f.Name]; ok {
			return nil, fmt.Errorf("%w: %w: %q", ErrInvalidInput, ErrDuplicateColumn, f.Name)
		}
		seen[f.Name] = struct{}{}
	}

	if rows < 0 {
		rows = 0
	}

	rec := array.NewRecord(arrow.NewSchema(b.fields, nil), b.cols, rows)
	defer rec.Release()
	return NewDataset(rec)
}

func (b *Builder) add(name string, arr arrow.Array) *Builder {
	b.fields = append(b.fields, arrow.Field{Name: name, Type: arr.DataType(), Nullable: true})
	b.cols = append(b.cols, arr)
	return b
}

func (b *Builder) checkMask(name string, n int, valid []bool) bool {
	if b.err != nil {
		return false
	}
	if valid != nil && len(valid) != n {
		b.err = fmt.Errorf("%w: %w: column %q has %d values but %d validity flags",
			ErrInvalidInput, ErrRowCountMismatch, name, n, len(valid))
		return false
	}
	return true
}

func (b *Builder) reset() {
	for _, col := range b.cols {
		col.Release()
	}
	b.fields = nil
	b.cols = nil
	b.rows = -1
	b.err = nil
}
