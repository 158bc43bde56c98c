package eda

import (
	"context"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/magpierre/dsb-eda/datatable"
	"github.com/magpierre/dsb-eda/internal/selector"
)

// ColumnTypeReport lists the columns of a dataset per Kind, in dataset order.
// Columns of KindUnknown appear in no bucket.
type ColumnTypeReport struct {
	Categorical []string `json:"categorical_columns"`
	Numerical   []string `json:"numerical_columns"`
	Boolean     []string `json:"boolean_columns"`
	DateTime    []string `json:"datetime_columns"`
}

// Report column names, in the order Table lays them out.
const (
	CategoricalColumns = "categorical_columns"
	NumericalColumns   = "numerical_columns"
	BooleanColumns     = "boolean_columns"
	DateTimeColumns    = "datetime_columns"
)

// Bucket returns the column names of kind k, or nil for KindUnknown.
func (r ColumnTypeReport) Bucket(k datatable.Kind) []string {
	switch k {
	case datatable.KindCategorical:
		return r.Categorical
	case datatable.KindNumerical:
		return r.Numerical
	case datatable.KindBoolean:
		return r.Boolean
	case datatable.KindDateTime:
		return r.DateTime
	default:
		return nil
	}
}

// Height returns the length of the longest bucket.
func (r ColumnTypeReport) Height() int {
	h := 0
	for _, k := range datatable.Kinds {
		h = max(h, len(r.Bucket(k)))
	}
	return h
}

// Table renders the report as a rectangular four-column string dataset,
// one column per bucket. Buckets shorter than Height are padded with nulls.
func (r ColumnTypeReport) Table(mem memory.Allocator) (*datatable.Dataset, error) {
	h := r.Height()
	b := datatable.NewBuilder(mem)
	for i, k := range datatable.Kinds {
		bucket := r.Bucket(k)
		values := make([]string, h)
		valid := make([]bool, h)
		copy(values, bucket)
		for j := range bucket {
			valid[j] = true
		}
		b.String(reportColumns[i], values, valid)
	}
	return b.Build()
}

var reportColumns = []string{CategoricalColumns, NumericalColumns, BooleanColumns, DateTimeColumns}

// GroupByDataTypes partitions the columns of ds into the categorical,
// numerical, boolean and datetime buckets. It only reads ds.
func GroupByDataTypes(ds *datatable.Dataset) (ColumnTypeReport, error) {
	if ds == nil {
		return ColumnTypeReport{}, fmt.Errorf("%w: %w", datatable.ErrInvalidInput, datatable.ErrNoDataSource)
	}

	buckets := make([][]string, len(datatable.Kinds))
	for i, k := range datatable.Kinds {
		names, err := selector.Select(ds, selector.KindIs(k))
		if err != nil {
			return ColumnTypeReport{}, err
		}
		buckets[i] = names
	}

	return ColumnTypeReport{
		Categorical: buckets[0],
		Numerical:   buckets[1],
		Boolean:     buckets[2],
		DateTime:    buckets[3],
	}, nil
}

// Selection names the DataTypes SelectByType keeps and drops.
type Selection struct {
	// Include lists the types to keep. Empty keeps every type.
	Include []datatable.DataType
	// Exclude lists the types to drop. Exclude wins over Include.
	Exclude []datatable.DataType
}

// SelectByType returns the names of the columns of ds chosen by sel, in
// dataset order.
func SelectByType(ds *datatable.Dataset, sel Selection) ([]string, error) {
	if ds == nil {
		return nil, fmt.Errorf("%w: %w", datatable.ErrInvalidInput, datatable.ErrNoDataSource)
	}

	pred := &selector.Composite{Logic: selector.LogicAND}
	if len(sel.Include) > 0 {
		pred.Predicates = append(pred.Predicates, selector.TypeIn(sel.Include))
	}
	if len(sel.Exclude) > 0 {
		pred.Predicates = append(pred.Predicates, selector.Not{Predicate: selector.TypeIn(sel.Exclude)})
	}
	return selector.Select(ds, pred)
}

// ColumnGroups groups the column names of ds by their exact DataType,
// keeping dataset order within each group. Types absent from ds have no
// entry.
func (a *Analyzer) ColumnGroups(ctx context.Context, ds *datatable.Dataset) (map[datatable.DataType][]string, error) {
	if ds == nil {
		return nil, fmt.Errorf("%w: %w", datatable.ErrInvalidInput, datatable.ErrNoDataSource)
	}
	ctx, logger := a.begin(ctx, "column_groups")

	groups := make(map[datatable.DataType][]string)
	for _, col := range ds.Columns() {
		groups[col.Type] = append(groups[col.Type], col.Name)
	}

	logger.InfoContext(ctx, "... FINISH", "groups", len(groups))
	return groups, nil
}
