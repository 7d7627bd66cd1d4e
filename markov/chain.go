package markov

import (
	"fmt"

	"github.com/katalvlaran/helloworld/matrix"
)

// Chain is an immutable pair of a transition matrix and a state vector.
// WithMatrix and WithVector return new Chains; the receiver is never changed,
// so a Chain may be shared freely.
//
// The zero Chain has no matrix yet: Matrix returns nil, Shape returns 0, 0,
// and VectorDot and Stationary report ErrNilMatrix.
type Chain struct {
	transition *matrix.Dense
	vector     []float64
}

// NewChain returns a rows×cols zero matrix paired with a zero vector of
// length cols.
//
// Errors: ErrInvalidDimensions (wrapped) when rows or cols is not positive.
func NewChain(rows, cols int) (*Chain, error) {
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opChain, err)
	}

	return &Chain{transition: m, vector: make([]float64, cols)}, nil
}

// WithMatrix returns a copy of c holding a matrix built from row literals.
// The vector is carried over unchanged; shapes are checked when the chain is
// used, not here.
func (c *Chain) WithMatrix(rows [][]float64) (*Chain, error) {
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: WithMatrix: %w", opChain, err)
	}

	return &Chain{transition: m, vector: c.Vector()}, nil
}

// WithVector returns a copy of c holding a copy of v.
func (c *Chain) WithVector(v []float64) (*Chain, error) {
	if err := matrix.ValidateFiniteVec(v); err != nil {
		return nil, fmt.Errorf("%s: WithVector: %w", opChain, err)
	}
	cp := make([]float64, len(v))
	copy(cp, v)

	return &Chain{transition: c.Matrix(), vector: cp}, nil
}

// Matrix returns a deep copy of the transition matrix, or nil when none is set.
func (c *Chain) Matrix() *matrix.Dense {
	if c.transition == nil {
		return nil
	}

	return c.transition.Clone().(*matrix.Dense)
}

// Vector returns a copy of the state vector.
func (c *Chain) Vector() []float64 {
	cp := make([]float64, len(c.vector))
	copy(cp, c.vector)

	return cp
}

// Shape returns the matrix dimensions.
func (c *Chain) Shape() (rows, cols int) {
	if c.transition == nil {
		return 0, 0
	}

	return c.transition.Shape()
}

// VectorDot applies the transition once: vector · matrix.
func (c *Chain) VectorDot() ([]float64, error) {
	return VectorDot(c.transition, c.vector)
}

// Stationary runs Solve on the chain's matrix and vector.
func (c *Chain) Stationary(opts ...Option) (Result, error) {
	return Solve(c.transition, c.vector, opts...)
}

// String renders the chain for diagnostics.
func (c *Chain) String() string {
	if c.transition == nil {
		return fmt.Sprintf("<no matrix>\nvector=%v", c.vector)
	}

	return fmt.Sprintf("%svector=%v", c.transition.String(), c.vector)
}
