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

// Package datatable provides typed, Arrow-backed tabular datasets for
// exploratory analysis.
package datatable

import "fmt"

// DataType represents the physical type of data in a column.
type DataType int

const (
	// TypeString represents string data.
	TypeString DataType = iota
	// TypeInt represents integer data (any size).
	TypeInt
	// TypeFloat represents floating-point data (any precision).
	TypeFloat
	// TypeBool represents boolean data.
	TypeBool
	// TypeDate represents date data (without time).
	TypeDate
	// TypeTimestamp represents timestamp data (date + time).
	TypeTimestamp
	// TypeBinary represents binary/blob data.
	TypeBinary
	// TypeDecimal represents decimal/numeric data (fixed precision).
	TypeDecimal
	// TypeStruct represents structured data (nested fields).
	TypeStruct
	// TypeList represents list/array data.
	TypeList
	// TypeDictionary represents dictionary-encoded data.
	TypeDictionary
	// TypeOther represents any Arrow type without a dedicated mapping,
	// including the all-null type.
	TypeOther
)

// String returns the string representation of a DataType.
func (dt DataType) String() string {
	switch dt {
	case TypeString:
		return "String"
	case TypeInt:
		return "Int"
	case TypeFloat:
		return "Float"
	case TypeBool:
		return "Bool"
	case TypeDate:
		return "Date"
	case TypeTimestamp:
		return "Timestamp"
	case TypeBinary:
		return "Binary"
	case TypeDecimal:
		return "Decimal"
	case TypeStruct:
		return "Struct"
	case TypeList:
		return "List"
	case TypeDictionary:
		return "Dictionary"
	case TypeOther:
		return "Other"
	default:
		return fmt.Sprintf("Unknown(%d)", dt)
	}
}

// Kind is the semantic bucket a column belongs to. Every column gets
// exactly one Kind when its Dataset is constructed.
type Kind int

const (
	// KindCategorical holds text columns.
	KindCategorical Kind = iota
	// KindNumerical holds integer and floating-point columns.
	KindNumerical
	// KindBoolean holds boolean columns.
	KindBoolean
	// KindDateTime holds date and timestamp columns.
	KindDateTime
	// KindUnknown holds every column whose type maps to none of the
	// other kinds. Such columns are left out of type groupings.
	KindUnknown
)

// Kinds lists the classifiable kinds in reporting order.
var Kinds = []Kind{KindCategorical, KindNumerical, KindBoolean, KindDateTime}

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case KindCategorical:
		return "Categorical"
	case KindNumerical:
		return "Numerical"
	case KindBoolean:
		return "Boolean"
	case KindDateTime:
		return "DateTime"
	case KindUnknown:
		return "Unknown"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// KindOf returns the Kind a column of the given DataType belongs to.
// Decimal, dictionary and nested types are deliberately Unknown: integer
// codes and fixed-point values are not unambiguously numerical.
func KindOf(dt DataType) Kind {
	switch dt {
	case TypeString:
		return KindCategorical
	case TypeInt, TypeFloat:
		return KindNumerical
	case TypeBool:
		return KindBoolean
	case TypeDate, TypeTimestamp:
		return KindDateTime
	default:
		return KindUnknown
	}
}

// ColumnInfo describes one column of a Dataset.
type ColumnInfo struct {
	Index    int
	Name     string
	Type     DataType
	Kind     Kind
	Nullable bool
}

// Value is a typed container for cell values.
// It holds the raw value, type information, and a pre-formatted string for display.
type Value struct {
	// Raw holds the underlying value.
	// The type depends on the DataType field.
	Raw interface{}

	// Type indicates the data type of this value.
	Type DataType

	// IsNull indicates whether this value is null/nil.
	IsNull bool

	// Formatted is a pre-formatted string representation for display.
	Formatted string
}

// NewValue creates a new Value from a raw value and type.
func NewValue(raw interface{}, dataType DataType) Value {
	if raw == nil {
		return NewNullValue(dataType)
	}

	return Value{
		Raw:       raw,
		Type:      dataType,
		Formatted: fmt.Sprintf("%v", raw),
	}
}

// NewNullValue creates a null value of the specified type.
func NewNullValue(dataType DataType) Value {
	return Value{
		Type:   dataType,
		IsNull: true,
	}
}

// Metadata holds optional metadata about a data source.
type Metadata map[string]interface{}
