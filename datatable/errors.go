package datatable

import "errors"

// Common errors returned by the datatable package.
var (
	// ErrInvalidInput is returned when a dataset is nil or malformed.
	// Every structural error below is wrapped in it when a dataset is
	// being constructed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidColumn is returned when a column index is out of range.
	ErrInvalidColumn = errors.New("invalid column index")

	// ErrInvalidRow is returned when a row index is out of range.
	ErrInvalidRow = errors.New("invalid row index")

	// ErrTypeMismatch is returned when values of different types share a column.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrNoDataSource is returned when a required data source is nil.
	ErrNoDataSource = errors.New("data source is nil")

	// ErrColumnNotFound is returned when a column name is not found.
	ErrColumnNotFound = errors.New("column not found")

	// ErrDuplicateColumn is returned when two columns share a name.
	ErrDuplicateColumn = errors.New("duplicate column name")

	// ErrRowCountMismatch is returned when columns differ in length.
	ErrRowCountMismatch = errors.New("row count mismatch")
)
