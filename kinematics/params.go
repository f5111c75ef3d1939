package kinematics

import (
	"math"

	"go.uber.org/multierr"
)

// Limit is the closed interval of values a joint may take, in the joint's own unit.
type Limit struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// JointParameter holds the Denavit-Hartenberg parameters of one joint. Theta and Alpha are in
// radians; D and A share whatever linear unit the caller uses.
type JointParameter struct {
	Theta float64
	D     float64
	A     float64
	Alpha float64
	// Range is stored for callers. Nothing in this package enforces it.
	Range Limit
}

// DHTable lists joint parameters from the base (index 0) to the tip.
type DHTable []JointParameter

// NewDHTable zips parallel parameter lists into a table. All lists must have the same length.
func NewDHTable(theta, d, a, alpha []float64, ranges []Limit) (DHTable, error) {
	for _, l := range []struct {
		name string
		n    int
	}{{"d", len(d)}, {"a", len(a)}, {"alpha", len(alpha)}, {"ranges", len(ranges)}} {
		if l.n != len(theta) {
			return nil, NewLengthMismatchError(l.name, l.n, "theta", len(theta))
		}
	}

	table := make(DHTable, len(theta))
	for i := range theta {
		table[i] = JointParameter{
			Theta: theta[i],
			D:     d[i],
			A:     a[i],
			Alpha: alpha[i],
			Range: ranges[i],
		}
	}
	return table, nil
}

// DoF returns the number of joints in the table.
func (t DHTable) DoF() int {
	return len(t)
}

// Validate checks that the table is non-empty, that all parameters are finite, and that every
// range is ordered. All problems found are returned together.
func (t DHTable) Validate() error {
	if len(t) == 0 {
		return NewEmptyChainError()
	}
	var errAll error
	for i, p := range t {
		for _, v := range []struct {
			name  string
			value float64
		}{{"theta", p.Theta}, {"d", p.D}, {"a", p.A}, {"alpha", p.Alpha}} {
			if !isFinite(v.value) {
				multierr.AppendInto(&errAll, NewNonFiniteError(v.name, i, v.value))
			}
		}
		if math.IsNaN(p.Range.Min) {
			multierr.AppendInto(&errAll, NewNonFiniteError("range min", i, p.Range.Min))
		}
		if math.IsNaN(p.Range.Max) {
			multierr.AppendInto(&errAll, NewNonFiniteError("range max", i, p.Range.Max))
		}
		if p.Range.Min > p.Range.Max {
			multierr.AppendInto(&errAll, NewInvalidLimitError(i, p.Range))
		}
	}
	return errAll
}

// Limits returns the stored range of every joint.
func (t DHTable) Limits() []Limit {
	limits := make([]Limit, 0, len(t))
	for _, p := range t {
		limits = append(limits, p.Range)
	}
	return limits
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
