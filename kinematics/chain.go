// Package kinematics computes forward kinematics for serial manipulators described by
// Denavit-Hartenberg parameters.
package kinematics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// Chain is a serial kinematic chain. Every transform is computed when the chain is built and
// the chain never changes afterwards, so it is safe for concurrent use. To move a joint, build
// a new chain.
type Chain struct {
	table DHTable
	// joints[i] is the transform from frame i to frame i+1.
	joints []Transform
	// frames[i] is the transform from the base to frame i+1. The last one is the full chain.
	frames []Transform
}

// NewChain builds a chain from parallel parameter lists, one entry per joint.
func NewChain(theta, d, a, alpha []float64, ranges []Limit) (*Chain, error) {
	table, err := NewDHTable(theta, d, a, alpha, ranges)
	if err != nil {
		return nil, err
	}
	return NewChainFromTable(table)
}

// NewChainFromTable builds a chain from a table. The table is copied.
func NewChainFromTable(table DHTable) (*Chain, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}

	c := &Chain{
		table:  append(DHTable(nil), table...),
		joints: make([]Transform, 0, len(table)),
		frames: make([]Transform, 0, len(table)),
	}
	cumulative := NewTransform()
	for i, p := range c.table {
		// finite parameters always give a finite joint transform; only the product can overflow
		joint := DH(p.Theta, p.D, p.A, p.Alpha)
		cumulative = cumulative.Mul(joint)
		if !cumulative.IsFinite() {
			return nil, NewNonFiniteError("chain transform", i, firstNonFinite(cumulative))
		}
		c.joints = append(c.joints, joint)
		c.frames = append(c.frames, cumulative)
	}
	return c, nil
}

// DoF returns the number of joints.
func (c *Chain) DoF() int {
	return len(c.table)
}

// Table returns a copy of the parameters the chain was built from.
func (c *Chain) Table() DHTable {
	return append(DHTable(nil), c.table...)
}

// Limits returns the stored range of every joint.
func (c *Chain) Limits() []Limit {
	return c.table.Limits()
}

// Transform returns the transform from the base frame to the end effector. A chain with no
// joints, such as the zero value, returns the identity.
func (c *Chain) Transform() Transform {
	if len(c.frames) == 0 {
		return NewTransform()
	}
	return c.frames[len(c.frames)-1]
}

// JointTransform returns the transform contributed by joint i alone.
func (c *Chain) JointTransform(i int) (Transform, error) {
	if i < 0 || i >= len(c.joints) {
		return Transform{}, NewJointIndexError(i, c.DoF())
	}
	return c.joints[i], nil
}

// JointTransforms returns the transform of every joint, base first.
func (c *Chain) JointTransforms() []Transform {
	return append([]Transform(nil), c.joints...)
}

// FrameTransform returns the transform from the base to the frame at the end of joint i.
// FrameTransform(DoF()-1) equals Transform().
func (c *Chain) FrameTransform(i int) (Transform, error) {
	if i < 0 || i >= len(c.frames) {
		return Transform{}, NewJointIndexError(i, c.DoF())
	}
	return c.frames[i], nil
}

// EndEffectorPosition returns the homogeneous position of the end effector in the base frame.
func (c *Chain) EndEffectorPosition() mgl64.Vec4 {
	return EndEffectorPosition(c.Transform())
}

// Position returns the cartesian position of the end effector in the base frame.
func (c *Chain) Position() r3.Vector {
	p := c.EndEffectorPosition()
	return r3.Vector{X: p[0], Y: p[1], Z: p[2]}
}

// JointOrigins returns the origin of every frame in the base frame, starting with the base
// itself and ending with the end effector.
func (c *Chain) JointOrigins() []r3.Vector {
	origins := make([]r3.Vector, 0, len(c.frames)+1)
	origins = append(origins, r3.Vector{})
	for _, f := range c.frames {
		origins = append(origins, f.Translation())
	}
	return origins
}

// ChainBuilder collects joints one at a time and builds an immutable Chain.
type ChainBuilder struct {
	table DHTable
}

// NewChainBuilder returns an empty builder.
func NewChainBuilder() *ChainBuilder {
	return &ChainBuilder{}
}

// AddJoint appends a joint after the ones already added.
func (b *ChainBuilder) AddJoint(p JointParameter) *ChainBuilder {
	b.table = append(b.table, p)
	return b
}

// Build validates the collected joints and computes the chain. The builder can be reused.
func (b *ChainBuilder) Build() (*Chain, error) {
	return NewChainFromTable(b.table)
}

func firstNonFinite(t Transform) float64 {
	for _, v := range t.Matrix() {
		if !isFinite(v) {
			return v
		}
	}
	return 0
}
