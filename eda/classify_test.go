package eda

import (
	"context"
	"testing"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magpierre/dsb-eda/datatable"
	"github.com/magpierre/dsb-eda/internal/testutil"
)

// exampleDataset returns {"x": [1, null, 3], "y": ["a", "b", null]}.
func exampleDataset(t *testing.T, mem memory.Allocator) *datatable.Dataset {
	t.Helper()
	ds, err := datatable.NewBuilder(mem).
		Float64("x", []float64{1, 0, 3}, []bool{true, false, true}).
		String("y", []string{"a", "b", ""}, []bool{true, true, false}).
		Build()
	require.NoError(t, err)
	return ds
}

func mixedDataset(t *testing.T) *datatable.Dataset {
	t.Helper()

	dec := array.NewDecimal128Builder(memory.DefaultAllocator, &arrow.Decimal128Type{Precision: 9, Scale: 2})
	defer dec.Release()
	dec.AppendNull()
	dec.AppendNull()
	prices := dec.NewArray()
	defer prices.Release()

	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	ds, err := datatable.NewBuilder(nil).
		String("city", []string{"Oslo", "Bergen"}, nil).
		Int64("age", []int64{30, 0}, []bool{true, false}).
		Bool("member", []bool{true, false}, nil).
		Timestamp("seen", []time.Time{now, now}, nil).
		Float64("score", []float64{1.5, 2.5}, nil).
		Array("price", prices).
		Date32("joined", []time.Time{now, now}, nil).
		String("country", []string{"NO", "NO"}, nil).
		Build()
	require.NoError(t, err)
	t.Cleanup(ds.Release)
	return ds
}

func TestGroupByDataTypesExample(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	ds := exampleDataset(t, mem)
	defer ds.Release()

	report, err := GroupByDataTypes(ds)
	require.NoError(t, err)

	assert.Equal(t, []string{"x"}, report.Numerical)
	assert.Equal(t, []string{"y"}, report.Categorical)
	assert.Empty(t, report.Boolean)
	assert.Empty(t, report.DateTime)
}

func TestGroupByDataTypesNumericAge(t *testing.T) {
	ds, err := datatable.NewBuilder(nil).
		Int64("age", []int64{1, 2, 0}, []bool{true, true, false}).
		Build()
	require.NoError(t, err)
	defer ds.Release()

	report, err := GroupByDataTypes(ds)
	require.NoError(t, err)

	assert.Equal(t, []string{"age"}, report.Numerical)
	assert.Empty(t, report.Categorical)
	assert.Empty(t, report.Boolean)
	assert.Empty(t, report.DateTime)
}

func TestGroupByDataTypesMixed(t *testing.T) {
	ds := mixedDataset(t)

	report, err := GroupByDataTypes(ds)
	require.NoError(t, err)

	assert.Equal(t, []string{"city", "country"}, report.Categorical)
	assert.Equal(t, []string{"age", "score"}, report.Numerical)
	assert.Equal(t, []string{"member"}, report.Boolean)
	assert.Equal(t, []string{"seen", "joined"}, report.DateTime)

	// Buckets are disjoint and only hold dataset columns; the decimal
	// column is in none of them.
	columns := make(map[string]bool)
	for _, name := range ds.ColumnNames() {
		columns[name] = true
	}
	seen := make(map[string]datatable.Kind)
	for _, k := range datatable.Kinds {
		for _, name := range report.Bucket(k) {
			prev, dup := seen[name]
			assert.False(t, dup, "%q in both %s and %s", name, prev, k)
			assert.True(t, columns[name], "%q is not a dataset column", name)
			seen[name] = k
		}
	}
	assert.NotContains(t, seen, "price")
	assert.Nil(t, report.Bucket(datatable.KindUnknown))
}

func TestGroupByDataTypesStable(t *testing.T) {
	ds := mixedDataset(t)

	first, err := GroupByDataTypes(ds)
	require.NoError(t, err)
	second, err := GroupByDataTypes(ds)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGroupByDataTypesEmpty(t *testing.T) {
	ds, err := datatable.NewBuilder(nil).Build()
	require.NoError(t, err)
	defer ds.Release()

	report, err := GroupByDataTypes(ds)
	require.NoError(t, err)

	for _, k := range datatable.Kinds {
		assert.Empty(t, report.Bucket(k), k.String())
	}
	assert.Equal(t, 0, report.Height())
}

func TestGroupByDataTypesNil(t *testing.T) {
	_, err := GroupByDataTypes(nil)
	assert.ErrorIs(t, err, datatable.ErrInvalidInput)
}

func TestReportTable(t *testing.T) {
	report := ColumnTypeReport{
		Categorical: []string{"city", "country"},
		Numerical:   []string{"age"},
		Boolean:     []string{},
		DateTime:    []string{"seen"},
	}
	assert.Equal(t, 2, report.Height())

	table, err := report.Table(nil)
	require.NoError(t, err)
	defer table.Release()

	assert.Equal(t, []string{CategoricalColumns, NumericalColumns, BooleanColumns, DateTimeColumns}, table.ColumnNames())
	require.Equal(t, 2, table.RowCount())

	row, err := table.Row(1)
	require.NoError(t, err)
	assert.Equal(t, "country", row[0].Raw)
	assert.True(t, row[1].IsNull)
	assert.True(t, row[2].IsNull)
	assert.True(t, row[3].IsNull)

	row, err = table.Row(0)
	require.NoError(t, err)
	assert.Equal(t, "age", row[1].Raw)
	assert.True(t, row[2].IsNull)
}

func TestReportTableEmpty(t *testing.T) {
	table, err := ColumnTypeReport{}.Table(nil)
	require.NoError(t, err)
	defer table.Release()

	assert.Equal(t, 4, table.ColumnCount())
	assert.Equal(t, 0, table.RowCount())
}

func TestSelectByType(t *testing.T) {
	ds := mixedDataset(t)

	tests := []struct {
		name string
		sel  Selection
		want []string
	}{
		{
			name: "include numbers",
			sel:  Selection{Include: []datatable.DataType{datatable.TypeInt, datatable.TypeFloat}},
			want: []string{"age", "score"},
		},
		{
			name: "exclude strings",
			sel:  Selection{Exclude: []datatable.DataType{datatable.TypeString}},
			want: []string{"age", "member", "seen", "score", "price", "joined"},
		},
		{
			name: "exclude wins",
			sel: Selection{
				Include: []datatable.DataType{datatable.TypeDate, datatable.TypeTimestamp},
				Exclude: []datatable.DataType{datatable.TypeDate},
			},
			want: []string{"seen"},
		},
		{
			name: "everything",
			sel:  Selection{},
			want: ds.ColumnNames(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectByType(ds, tt.sel)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := SelectByType(nil, Selection{})
	assert.ErrorIs(t, err, datatable.ErrInvalidInput)
}

func TestColumnGroups(t *testing.T) {
	logger, handler := testutil.NewTestLogger(t)
	a := NewAnalyzer(logger)
	ds := mixedDataset(t)

	groups, err := a.ColumnGroups(context.Background(), ds)
	require.NoError(t, err)

	assert.Equal(t, map[datatable.DataType][]string{
		datatable.TypeString:    {"city", "country"},
		datatable.TypeInt:       {"age"},
		datatable.TypeBool:      {"member"},
		datatable.TypeTimestamp: {"seen"},
		datatable.TypeFloat:     {"score"},
		datatable.TypeDecimal:   {"price"},
		datatable.TypeDate:      {"joined"},
	}, groups)

	assert.Equal(t, []string{"START ...", "... FINISH"}, handler.Messages())

	_, err = a.ColumnGroups(context.Background(), nil)
	assert.ErrorIs(t, err, datatable.ErrInvalidInput)
	assert.Len(t, handler.Messages(), 2)
}
