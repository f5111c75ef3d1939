package kinematics

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNoModelInformation is returned when a model file is empty.
var ErrNoModelInformation = errors.New("no model information")

// ConfigurationError is returned when the shape of a chain's parameters is invalid.
// No partial chain is ever returned alongside it.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid kinematic chain configuration: " + e.Reason
}

// NumericError is returned when a parameter or a computed transform is not finite.
type NumericError struct {
	// Param names the offending value, e.g. "theta" or "chain transform".
	Param string
	// Joint is the index of the joint the value belongs to.
	Joint int
	Value float64
}

func (e *NumericError) Error() string {
	return fmt.Sprintf("non-finite %s for joint %d: %v", e.Param, e.Joint, e.Value)
}

// NewLengthMismatchError is used when two parallel parameter lists differ in length.
func NewLengthMismatchError(name string, got int, refName string, want int) error {
	return &ConfigurationError{fmt.Sprintf("%s has %d values but %s has %d", name, got, refName, want)}
}

// NewEmptyChainError is used when a chain is built with no joints.
func NewEmptyChainError() error {
	return &ConfigurationError{"a chain needs at least one joint"}
}

// NewInvalidLimitError is used when a joint range has its bounds reversed.
func NewInvalidLimitError(joint int, limit Limit) error {
	return &ConfigurationError{fmt.Sprintf("joint %d range min %v is greater than max %v", joint, limit.Min, limit.Max)}
}

// NewDegenerateRangeError is used when a linear mapping has an empty source interval.
func NewDegenerateRangeError(x1, x2 float64) error {
	return &ConfigurationError{fmt.Sprintf("cannot map from degenerate interval [%v, %v]", x1, x2)}
}

// NewNonFiniteError is used when a NaN or infinite value is found.
func NewNonFiniteError(param string, joint int, value float64) error {
	return &NumericError{Param: param, Joint: joint, Value: value}
}

// NewJointIndexError is used when a joint index is outside the chain.
func NewJointIndexError(index, dof int) error {
	return errors.Errorf("joint index %d out of range for chain with %d degrees of freedom", index, dof)
}
