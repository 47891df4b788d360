// Package costmodel is the canonical source of plan cost and output
// cardinality, injected into the optimizer rather than referenced as a
// package-level singleton so tests can substitute a Model with
// different constants. It never mutates the plan tree it is given;
// the optimizer is responsible for writing the returned estimates
// back onto each node.
package costmodel

// Model holds the tunable cost constants. The zero value is not
// useful; construct one with DefaultConfig or NewModel.
type Model struct {
	SequentialIO float64
	RandomIO     float64
	CPUTuple     float64
	CPUOperator  float64
	MemorySort   float64
	HashBuild    float64
	HashProbe    float64
}

// DefaultConfig returns the constants fixed by the cost model's
// published cost table.
func DefaultConfig() Model {
	return Model{
		SequentialIO: 1.0,
		RandomIO:     4.0,
		CPUTuple:     0.01,
		CPUOperator:  0.0025,
		MemorySort:   2.0,
		HashBuild:    1.0,
		HashProbe:    0.5,
	}
}

// NewModel builds a Model from the given config, letting callers
// override individual constants for experimentation or testing.
func NewModel(cfg Model) *Model {
	m := cfg
	return &m
}
