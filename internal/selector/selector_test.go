package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magpierre/dsb-eda/datatable"
)

func newDataset(t *testing.T) *datatable.Dataset {
	t.Helper()
	ds, err := datatable.NewBuilder(nil).
		String("name", []string{"a", "b"}, nil).
		Int64("count", []int64{1, 2}, nil).
		Float64("ratio", []float64{0.5, 1.5}, nil).
		Bool("ok", []bool{true, false}, nil).
		Build()
	require.NoError(t, err)
	t.Cleanup(ds.Release)
	return ds
}

type failing struct{}

func (failing) Match(datatable.ColumnInfo) (bool, error) { return false, assert.AnError }
func (failing) Description() string                      { return "failing" }

func TestSelect(t *testing.T) {
	ds := newDataset(t)

	tests := []struct {
		name string
		pred Predicate
		want []string
	}{
		{"kind numerical", KindIs(datatable.KindNumerical), []string{"count", "ratio"}},
		{"kind datetime", KindIs(datatable.KindDateTime), []string{}},
		{"type in", TypeIn{datatable.TypeBool, datatable.TypeString}, []string{"name", "ok"}},
		{"not", Not{Predicate: TypeIn{datatable.TypeInt}}, []string{"name", "ratio", "ok"}},
		{"empty composite", &Composite{}, []string{"name", "count", "ratio", "ok"}},
		{
			name: "and",
			pred: &Composite{Logic: LogicAND, Predicates: []Predicate{
				KindIs(datatable.KindNumerical),
				Not{Predicate: TypeIn{datatable.TypeFloat}},
			}},
			want: []string{"count"},
		},
		{
			name: "or",
			pred: &Composite{Logic: LogicOR, Predicates: []Predicate{
				KindIs(datatable.KindBoolean),
				TypeIn{datatable.TypeFloat},
			}},
			want: []string{"ratio", "ok"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Select(ds, tt.pred)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectErrors(t *testing.T) {
	ds := newDataset(t)

	_, err := Select(ds, &Composite{Logic: LogicOp(7), Predicates: []Predicate{KindIs(datatable.KindNumerical)}})
	assert.ErrorIs(t, err, ErrInvalidLogic)

	_, err = Select(ds, Not{Predicate: failing{}})
	assert.ErrorIs(t, err, assert.AnError)

	_, err = Select(ds, &Composite{Logic: LogicOR, Predicates: []Predicate{failing{}}})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestDescription(t *testing.T) {
	pred := &Composite{Logic: LogicOR, Predicates: []Predicate{
		KindIs(datatable.KindBoolean),
		Not{Predicate: TypeIn{datatable.TypeInt, datatable.TypeFloat}},
	}}
	assert.Equal(t, "(kind = Boolean OR NOT type in [Int, Float])", pred.Description())
	assert.Equal(t, "all columns", (&Composite{}).Description())
	assert.Equal(t, "unknown(9)", LogicOp(9).String())
}
