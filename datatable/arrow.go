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
	"math"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// DataTypeOf maps an Arrow data type onto a DataType.
func DataTypeOf(dt arrow.DataType) DataType {
	switch dt.ID() {
	case arrow.STRING, arrow.LARGE_STRING, arrow.STRING_VIEW:
		return TypeString
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64,
		arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64:
		return TypeInt
	case arrow.FLOAT16, arrow.FLOAT32, arrow.FLOAT64:
		return TypeFloat
	case arrow.BOOL:
		return TypeBool
	case arrow.DATE32, arrow.DATE64:
		return TypeDate
	case arrow.TIMESTAMP:
		return TypeTimestamp
	case arrow.BINARY, arrow.LARGE_BINARY, arrow.BINARY_VIEW, arrow.FIXED_SIZE_BINARY:
		return TypeBinary
	case arrow.DECIMAL128, arrow.DECIMAL256:
		return TypeDecimal
	case arrow.STRUCT:
		return TypeStruct
	case arrow.LIST, arrow.LARGE_LIST, arrow.FIXED_SIZE_LIST:
		return TypeList
	case arrow.DICTIONARY:
		return TypeDictionary
	default:
		return TypeOther
	}
}

// isMissing reports whether the value at pos is null or a floating-point NaN.
func isMissing(col arrow.Array, pos int) bool {
	if col.DataType().ID() == arrow.NULL || col.IsNull(pos) {
		return true
	}

	switch col.DataType().ID() {
	case arrow.FLOAT64:
		return math.IsNaN(col.(*array.Float64).Value(pos))
	case arrow.FLOAT32:
		return math.IsNaN(float64(col.(*array.Float32).Value(pos)))
	case arrow.FLOAT16:
		return math.IsNaN(float64(col.(*array.Float16).Value(pos).Float32()))
	default:
		return false
	}
}

// typedValue returns the Go value stored at pos.
func typedValue(col arrow.Array, pos int) interface{} {
	if col.DataType().ID() == arrow.NULL || col.IsNull(pos) {
		return nil
	}

	switch col.DataType().ID() {
	case arrow.STRING:
		return col.(*array.String).Value(pos)

	case arrow.LARGE_STRING:
		return col.(*array.LargeString).Value(pos)

	case arrow.BOOL:
		return col.(*array.Boolean).Value(pos)

	case arrow.INT8:
		return int64(col.(*array.Int8).Value(pos))

	case arrow.INT16:
		return int64(col.(*array.Int16).Value(pos))

	case arrow.INT32:
		return int64(col.(*array.Int32).Value(pos))

	case arrow.INT64:
		return col.(*array.Int64).Value(pos)

	case arrow.UINT8:
		return uint64(col.(*array.Uint8).Value(pos))

	case arrow.UINT16:
		return uint64(col.(*array.Uint16).Value(pos))

	case arrow.UINT32:
		return uint64(col.(*array.Uint32).Value(pos))

	case arrow.UINT64:
		return col.(*array.Uint64).Value(pos)

	case arrow.FLOAT16:
		return float64(col.(*array.Float16).Value(pos).Float32())

	case arrow.FLOAT32:
		return float64(col.(*array.Float32).Value(pos))

	case arrow.FLOAT64:
		return col.(*array.Float64).Value(pos)

	case arrow.DATE32:
		return col.(*array.Date32).Value(pos).ToTime()

	case arrow.DATE64:
		return col.(*array.Date64).Value(pos).ToTime()

	case arrow.TIMESTAMP:
		ts := col.(*array.Timestamp)
		unit := ts.DataType().(*arrow.TimestampType).Unit
		return ts.Value(pos).ToTime(unit)

	case arrow.DECIMAL128:
		return col.(*array.Decimal128).Value(pos).BigInt().String()

	default:
		return col.ValueStr(pos)
	}
}
