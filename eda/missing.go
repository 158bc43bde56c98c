package eda

import (
	"context"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/magpierre/dsb-eda/datatable"
)

// AddMissingIndicators returns a new dataset holding the columns of ds
// followed by one boolean indicator column per original column, named with
// the Analyzer's suffix, true where the original cell is missing.
//
// ds is not modified and stays owned by the caller. The result shares the
// original column arrays and must be released on its own.
func (a *Analyzer) AddMissingIndicators(ctx context.Context, ds *datatable.Dataset) (*datatable.Dataset, error) {
	if ds == nil {
		return nil, fmt.Errorf("%w: %w", datatable.ErrInvalidInput, datatable.ErrNoDataSource)
	}
	ctx, logger := a.begin(ctx, "add_missing_indicators")

	n := ds.ColumnCount()
	src := ds.Record()
	fields := make([]arrow.Field, 0, 2*n)
	cols := make([]arrow.Array, 0, 2*n)
	fields = append(fields, src.Schema().Fields()...)
	cols = append(cols, src.Columns()...)

	indicators := make([]arrow.Array, 0, n)
	defer func() {
		for _, arr := range indicators {
			arr.Release()
		}
	}()

	for col, name := range ds.ColumnNames() {
		mask, err := ds.MissingMask(col)
		if err != nil {
			logger.ErrorContext(ctx, "... FAILED", "error", err)
			return nil, err
		}

		bld := array.NewBooleanBuilder(a.mem)
		bld.AppendValues(mask, nil)
		arr := bld.NewArray()
		bld.Release()

		indicators = append(indicators, arr)
		fields = append(fields, arrow.Field{Name: name + a.suffix, Type: arrow.FixedWidthTypes.Boolean})
		cols = append(cols, arr)
	}

	md := src.Schema().Metadata()
	rec := array.NewRecord(arrow.NewSchema(fields, &md), cols, int64(ds.RowCount()))
	defer rec.Release()

	out, err := datatable.NewDataset(rec)
	if err != nil {
		logger.ErrorContext(ctx, "... FAILED", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "... FINISH", "columns", out.ColumnCount(), "rows", out.RowCount())
	return out, nil
}
