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
	"sort"
	"time"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// FromMaps builds a Dataset from a slice of records, one map per row, as
// produced by decoding a JSON array of objects. Columns are the union of
// all keys, sorted by name. A key absent from a row, or mapped to nil, is
// a null cell.
//
// Each column takes the type of its non-nil values: float64/float32 become
// Float, Go integers become Int, string becomes String, bool becomes Bool
// and time.Time becomes Timestamp. A column whose values disagree, or an
// unsigned value above math.MaxInt64, returns ErrTypeMismatch; a column
// with no non-nil value becomes an all-null column of TypeOther. The row
// count is len(rows) even when no row has a key.
func FromMaps(mem memory.Allocator, rows []map[string]interface{}) (*Dataset, error) {
	if rows == nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, ErrNoDataSource)
	}
	if mem == nil {
		mem = memory.DefaultAllocator
	}

	keys := make(map[string]struct{})
	for _, row := range rows {
		for k := range row {
			keys[k] = struct{}{}
		}
	}
	names := make([]string, 0, len(keys))
	for k := range keys {
		names = append(names, k)
	}
	sort.Strings(names)

	b := NewBuilder(mem).Rows(len(rows))
	for _, name := range names {
		if err := appendMapColumn(b, name, rows); err != nil {
			b.reset()
			return nil, err
		}
	}
	return b.Build()
}

func appendMapColumn(b *Builder, name string, rows []map[string]interface{}) error {
	dt := TypeOther
	for _, row := range rows {
		v := row[name]
		if v == nil {
			continue
		}
		got, ok := inferType(v)
		if !ok {
			return fmt.Errorf("%w: %w: column %q holds unsupported %T", ErrInvalidInput, ErrTypeMismatch, name, v)
		}
		if dt != TypeOther && got != dt {
			return fmt.Errorf("%w: %w: column %q mixes %s and %s", ErrInvalidInput, ErrTypeMismatch, name, dt, got)
		}
		dt = got
	}

	n := len(rows)
	valid := make([]bool, n)
	for i, row := range rows {
		valid[i] = row[name] != nil
	}

	switch dt {
	case TypeFloat:
		values := make([]float64, n)
		for i, row := range rows {
			if valid[i] {
				values[i] = toFloat(row[name])
			}
		}
		b.Float64(name, values, valid)
	case TypeInt:
		values := make([]int64, n)
		for i, row := range rows {
			if !valid[i] {
				continue
			}
			v, ok := toInt(row[name])
			if !ok {
				return fmt.Errorf("%w: %w: column %q row %d: %v overflows int64",
					ErrInvalidInput, ErrTypeMismatch, name, i, row[name])
			}
			values[i] = v
		}
		b.Int64(name, values, valid)
	case TypeString:
		values := make([]string, n)
		for i, row := range rows {
			if valid[i] {
				values[i] = row[name].(string)
			}
		}
		b.String(name, values, valid)
	case TypeBool:
		values := make([]bool, n)
		for i, row := range rows {
			if valid[i] {
				values[i] = row[name].(bool)
			}
		}
		b.Bool(name, values, valid)
	case TypeTimestamp:
		values := make([]time.Time, n)
		for i, row := range rows {
			if valid[i] {
				values[i] = row[name].(time.Time)
			}
		}
		b.Timestamp(name, values, valid)
	default:
		nulls := array.NewNull(n)
		defer nulls.Release()
		b.Array(name, nulls)
	}
	return nil
}

func inferType(v interface{}) (DataType, bool) {
	switch v.(type) {
	case float64, float32:
		return TypeFloat, true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return TypeInt, true
	case string:
		return TypeString, true
	case bool:
		return TypeBool, true
	case time.Time:
		return TypeTimestamp, true
	default:
		return TypeOther, false
	}
}

func toFloat(v interface{}) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	}
	return 0
}

func toInt(v interface{}) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return int64(x), uint64(x) <= math.MaxInt64
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return int64(x), x <= math.MaxInt64
	}
	return 0, false
}
