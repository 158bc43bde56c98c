package datatable

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/stretchr/testify/assert"
)

func TestDataTypeString(t *testing.T) {
	assert.Equal(t, "String", TypeString.String())
	assert.Equal(t, "Timestamp", TypeTimestamp.String())
	assert.Equal(t, "Dictionary", TypeDictionary.String())
	assert.Equal(t, "Unknown(99)", DataType(99).String())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		dt   DataType
		want Kind
	}{
		{TypeString, KindCategorical},
		{TypeInt, KindNumerical},
		{TypeFloat, KindNumerical},
		{TypeBool, KindBoolean},
		{TypeDate, KindDateTime},
		{TypeTimestamp, KindDateTime},
		{TypeBinary, KindUnknown},
		{TypeDecimal, KindUnknown},
		{TypeStruct, KindUnknown},
		{TypeList, KindUnknown},
		{TypeDictionary, KindUnknown},
		{TypeOther, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.dt.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.dt))
		})
	}
}

func TestDataTypeOf(t *testing.T) {
	tests := []struct {
		name string
		in   arrow.DataType
		want DataType
	}{
		{"utf8", arrow.BinaryTypes.String, TypeString},
		{"large utf8", arrow.BinaryTypes.LargeString, TypeString},
		{"int8", arrow.PrimitiveTypes.Int8, TypeInt},
		{"uint64", arrow.PrimitiveTypes.Uint64, TypeInt},
		{"float32", arrow.PrimitiveTypes.Float32, TypeFloat},
		{"float64", arrow.PrimitiveTypes.Float64, TypeFloat},
		{"bool", arrow.FixedWidthTypes.Boolean, TypeBool},
		{"date32", arrow.FixedWidthTypes.Date32, TypeDate},
		{"timestamp", arrow.FixedWidthTypes.Timestamp_ns, TypeTimestamp},
		{"binary", arrow.BinaryTypes.Binary, TypeBinary},
		{"decimal", &arrow.Decimal128Type{Precision: 10, Scale: 2}, TypeDecimal},
		{"list", arrow.ListOf(arrow.PrimitiveTypes.Int64), TypeList},
		{"dictionary", &arrow.DictionaryType{IndexType: arrow.PrimitiveTypes.Int32, ValueType: arrow.BinaryTypes.String}, TypeDictionary},
		{"null", arrow.Null, TypeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DataTypeOf(tt.in))
		})
	}
}

func TestNewValue(t *testing.T) {
	v := NewValue(int64(3), TypeInt)
	assert.False(t, v.IsNull)
	assert.Equal(t, "3", v.Formatted)

	null := NewValue(nil, TypeString)
	assert.True(t, null.IsNull)
	assert.Equal(t, TypeString, null.Type)
	assert.Empty(t, null.Formatted)
}
