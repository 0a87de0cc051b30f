package array

import (
	"github.com/pkg/errors"

	"github.com/outofforest/sandbox/types"
)

const (
	// StaticCapacity is the maximum length of static array.
	StaticCapacity = 10

	// MaxIndex is the highest row or column index accepted by multi-dimensional array.
	MaxIndex = 1023
)

// Config stores array configuration.
type Config struct {
	Variant types.Variant
}

// New creates new array.
func New(config Config) (*Array, error) {
	switch config.Variant {
	case types.VariantStatic, types.VariantDynamic, types.VariantMultiDimensional:
	default:
		return nil, errors.Errorf("unsupported array variant %q", config.Variant)
	}
	return &Array{
		config: config,
	}, nil
}

// Array simulates flat and multi-dimensional arrays.
type Array struct {
	config Config

	data []types.Value
	rows [][]types.Value
}

// Variant returns the variant of the array.
func (a *Array) Variant() types.Variant {
	return a.config.Variant
}

// Push appends value. Static array silently ignores values beyond its capacity.
// Multi-dimensional array receives a new row holding the value.
func (a *Array) Push(value types.Value) types.Snapshot {
	switch a.config.Variant {
	case types.VariantMultiDimensional:
		a.rows = append(a.rows, []types.Value{value})
	case types.VariantStatic:
		if len(a.data) >= StaticCapacity {
			break
		}
		a.data = append(a.data, value)
	default:
		a.data = append(a.data, value)
	}
	return a.Snapshot()
}

// Pop removes and returns the last element, or the last row of multi-dimensional array.
// False is returned if array is empty.
func (a *Array) Pop() (types.Value, bool) {
	if a.config.Variant == types.VariantMultiDimensional {
		if len(a.rows) == 0 {
			return nil, false
		}
		row := a.rows[len(a.rows)-1]
		a.rows[len(a.rows)-1] = nil
		a.rows = a.rows[:len(a.rows)-1]
		return append(types.Sequence{}, row...), true
	}

	if len(a.data) == 0 {
		return nil, false
	}
	value := a.data[len(a.data)-1]
	a.data[len(a.data)-1] = nil
	a.data = a.data[:len(a.data)-1]
	return value, true
}

// Set writes value at (row, col) of multi-dimensional array, growing rows and columns as needed.
// Other variants and out-of-range indices leave the state unchanged.
func (a *Array) Set(row, col int, value types.Value) types.Snapshot {
	if a.config.Variant != types.VariantMultiDimensional ||
		row < 0 || col < 0 || row > MaxIndex || col > MaxIndex {
		return a.Snapshot()
	}

	for len(a.rows) <= row {
		a.rows = append(a.rows, nil)
	}
	for len(a.rows[row]) <= col {
		a.rows[row] = append(a.rows[row], nil)
	}
	a.rows[row][col] = value

	return a.Snapshot()
}

// Get returns the element at index of flat array.
func (a *Array) Get(index int) (types.Value, bool) {
	if index < 0 || index >= len(a.data) {
		return nil, false
	}
	return a.data[index], true
}

// Len returns the number of elements, or rows of multi-dimensional array.
func (a *Array) Len() int {
	if a.config.Variant == types.VariantMultiDimensional {
		return len(a.rows)
	}
	return len(a.data)
}

// Snapshot returns the copy of current state.
func (a *Array) Snapshot() types.Snapshot {
	return Extract(a)
}

// Extract extracts snapshot of the array.
func Extract(a *Array) types.Snapshot {
	s := types.Snapshot{
		Family:  types.FamilyArray,
		Variant: a.config.Variant,
	}
	if a.config.Variant == types.VariantMultiDimensional {
		grid := make(types.Grid, 0, len(a.rows))
		for _, row := range a.rows {
			if row == nil {
				grid = append(grid, nil)
				continue
			}
			grid = append(grid, append([]types.Value{}, row...))
		}
		s.Data = grid
		return s
	}

	s.Data = append(types.Sequence{}, a.data...)
	return s
}
