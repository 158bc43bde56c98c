package selector

import (
	"errors"
	"fmt"
	"strings"

	"github.com/magpierre/dsb-eda/datatable"
)

// ErrInvalidLogic is returned when a composite uses an unknown operator.
var ErrInvalidLogic = errors.New("invalid logic operator")

// LogicOp represents a logical operator for combining predicates.
type LogicOp int

const (
	// LogicAND requires all predicates to pass.
	LogicAND LogicOp = iota
	// LogicOR requires at least one predicate to pass.
	LogicOR
)

// String returns the string representation of a LogicOp.
func (op LogicOp) String() string {
	switch op {
	case LogicAND:
		return "AND"
	case LogicOR:
		return "OR"
	default:
		return fmt.Sprintf("unknown(%d)", op)
	}
}

// Composite combines multiple predicates with AND or OR logic.
type Composite struct {
	// Predicates is the list of predicates to combine.
	Predicates []Predicate

	// Logic specifies how to combine the predicates (AND or OR).
	Logic LogicOp
}

// Match implements the Predicate interface.
func (c *Composite) Match(col datatable.ColumnInfo) (bool, error) {
	if len(c.Predicates) == 0 {
		return true, nil // Empty composite passes all columns
	}

	switch c.Logic {
	case LogicAND:
		for _, p := range c.Predicates {
			ok, err := p.Match(col)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
		return true, nil

	case LogicOR:
		for _, p := range c.Predicates {
			ok, err := p.Match(col)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil

	default:
		return false, fmt.Errorf("%w: %d", ErrInvalidLogic, c.Logic)
	}
}

// Description implements the Predicate interface.
func (c *Composite) Description() string {
	if len(c.Predicates) == 0 {
		return "all columns"
	}

	descriptions := make([]string, len(c.Predicates))
	for i, p := range c.Predicates {
		descriptions[i] = p.Description()
	}
	return "(" + strings.Join(descriptions, " "+c.Logic.String()+" ") + ")"
}
