// Package selector picks dataset columns by their declared type.
package selector

import (
	"fmt"
	"strings"

	"github.com/magpierre/dsb-eda/datatable"
)

// Predicate decides whether a column is selected.
type Predicate interface {
	// Match reports whether the column passes the predicate.
	Match(col datatable.ColumnInfo) (bool, error)

	// Description returns a human-readable form of the predicate.
	Description() string
}

// KindIs selects columns of one Kind.
type KindIs datatable.Kind

// Match implements the Predicate interface.
func (k KindIs) Match(col datatable.ColumnInfo) (bool, error) {
	return col.Kind == datatable.Kind(k), nil
}

// Description implements the Predicate interface.
func (k KindIs) Description() string {
	return "kind = " + datatable.Kind(k).String()
}

// TypeIn selects columns whose DataType is one of the listed types.
type TypeIn []datatable.DataType

// Match implements the Predicate interface.
func (t TypeIn) Match(col datatable.ColumnInfo) (bool, error) {
	for _, dt := range t {
		if col.Type == dt {
			return true, nil
		}
	}
	return false, nil
}

// Description implements the Predicate interface.
func (t TypeIn) Description() string {
	names := make([]string, len(t))
	for i, dt := range t {
		names[i] = dt.String()
	}
	return "type in [" + strings.Join(names, ", ") + "]"
}

// Not inverts a predicate.
type Not struct {
	Predicate Predicate
}

// Match implements the Predicate interface.
func (n Not) Match(col datatable.ColumnInfo) (bool, error) {
	ok, err := n.Predicate.Match(col)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

// Description implements the Predicate interface.
func (n Not) Description() string {
	return "NOT " + n.Predicate.Description()
}

// Select returns the names of the columns of ds that match p, in dataset
// order.
func Select(ds *datatable.Dataset, p Predicate) ([]string, error) {
	names := make([]string, 0)
	for _, col := range ds.Columns() {
		ok, err := p.Match(col)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", col.Name, err)
		}
		if ok {
			names = append(names, col.Name)
		}
	}
	return names, nil
}
