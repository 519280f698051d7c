package operator

import (
	"fmt"

	"github.com/odl-go/odl/internal/space"
)

// ElOp is an operator mapping single elements to single elements,
// the entry type of the product-space combinators.
type ElOp[T space.DType] = Operator[*space.Element[T], *space.Element[T]]

// entrySpaces extracts the concrete domain and range spaces of a
// block entry. Entries of product-space combinators must act between
// plain spaces, not sets.
func entrySpaces[T space.DType](op ElOp[T]) (dom, ran *space.Space[T], err error) {
	dom, ok := op.Domain().(*space.Space[T])
	if !ok {
		return nil, nil, fmt.Errorf("entry domain %s is not a space", op.Domain())
	}
	ran, ok = op.Range().(*space.Space[T])
	if !ok {
		return nil, nil, fmt.Errorf("entry range %s is not a space", op.Range())
	}
	return dom, ran, nil
}

// Matrix is a block matrix of elementwise operators acting between
// power spaces: out[i] = sum over j of rows[i][j](x[j]), with nil
// entries treated as zero blocks. Its domain is base^cols and its
// range is base^rows.
//
// All non-nil entries must share one domain space and one range
// space (the powers here are homogeneous), and every row and column
// needs at least one non-nil entry so both powers are determined.
//
// Example:
//
//	r3 := space.Rn[float64](3)
//	id := operator.NewIdentity(r3)
//	sum, _ := operator.NewMatrix([][]operator.ElOp[float64]{{id, id}})
//	y, _ := sum.Call(space.Tuple[float64]{x1, x2}) // y[0] = x1 + x2
type Matrix[T space.DType] struct {
	rows   [][]ElOp[T]
	domain *space.Power[T]
	rng    *space.Power[T]
}

// NewMatrix creates a block-operator matrix from rows of entries.
// Rows must be non-empty and rectangular; nil entries are zero blocks.
func NewMatrix[T space.DType](rows [][]ElOp[T]) (*Matrix[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("operator matrix must have at least one entry")
	}
	cols := len(rows[0])

	var domBase, ranBase *space.Space[T]
	rowHas := make([]bool, len(rows))
	colHas := make([]bool, cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("operator matrix is ragged: row %d has %d entries, want %d",
				i, len(row), cols)
		}
		for j, op := range row {
			if op == nil {
				continue
			}
			dom, ran, err := entrySpaces(op)
			if err != nil {
				return nil, fmt.Errorf("entry (%d, %d): %w", i, j, err)
			}
			if domBase == nil {
				domBase = dom
			} else if dom != domBase {
				return nil, fmt.Errorf("entry (%d, %d): domain %s differs from %s", i, j, dom, domBase)
			}
			if ranBase == nil {
				ranBase = ran
			} else if ran != ranBase {
				return nil, fmt.Errorf("entry (%d, %d): range %s differs from %s", i, j, ran, ranBase)
			}
			rowHas[i] = true
			colHas[j] = true
		}
	}
	for i, ok := range rowHas {
		if !ok {
			return nil, fmt.Errorf("row %d has no operator", i)
		}
	}
	for j, ok := range colHas {
		if !ok {
			return nil, fmt.Errorf("column %d has no operator", j)
		}
	}

	domain, err := space.NewPower(domBase, cols)
	if err != nil {
		return nil, err
	}
	rng, err := space.NewPower(ranBase, len(rows))
	if err != nil {
		return nil, err
	}

	// Copy the rows so later mutation of the argument cannot skew the
	// validated layout.
	copied := make([][]ElOp[T], len(rows))
	for i, row := range rows {
		copied[i] = append([]ElOp[T](nil), row...)
	}
	return &Matrix[T]{rows: copied, domain: domain, rng: rng}, nil
}

// Domain returns the power base^cols.
func (m *Matrix[T]) Domain() space.Set { return m.domain }

// Range returns the power base^rows.
func (m *Matrix[T]) Range() space.Set { return m.rng }

// Call returns a new tuple with out[i] = sum_j rows[i][j](x[j]).
func (m *Matrix[T]) Call(x space.Tuple[T]) (space.Tuple[T], error) {
	out := m.rng.Zero()
	if err := m.Apply(x, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Apply writes the block-matrix product into out. Components of out
// must not alias components of x.
func (m *Matrix[T]) Apply(x, out space.Tuple[T]) error {
	if !m.domain.Contains(x) {
		return fmt.Errorf("%w: %s", ErrNotInDomain, m.domain)
	}
	if !m.rng.Contains(out) {
		return fmt.Errorf("%w: %s", ErrNotInRange, m.rng)
	}
	tmp := m.rng.Base().Zero()
	for i, row := range m.rows {
		first := true
		for j, op := range row {
			if op == nil {
				continue
			}
			if first {
				if err := op.Apply(x[j], out[i]); err != nil {
					return err
				}
				first = false
				continue
			}
			if err := op.Apply(x[j], tmp); err != nil {
				return err
			}
			if err := out[i].Lincomb(1, out[i], 1, tmp); err != nil {
				return err
			}
		}
	}
	return nil
}

// Adjoint returns the transposed matrix of entry adjoints.
// Fails with ErrUnsupported if any entry has no adjoint.
func (m *Matrix[T]) Adjoint() (Operator[space.Tuple[T], space.Tuple[T]], error) {
	cols := len(m.rows[0])
	transposed := make([][]ElOp[T], cols)
	for j := range transposed {
		transposed[j] = make([]ElOp[T], len(m.rows))
	}
	for i, row := range m.rows {
		for j, op := range row {
			if op == nil {
				continue
			}
			lin, ok := op.(Linear[*space.Element[T], *space.Element[T]])
			if !ok {
				return nil, fmt.Errorf("%w: entry (%d, %d) has no adjoint", ErrUnsupported, i, j)
			}
			adj, err := lin.Adjoint()
			if err != nil {
				return nil, err
			}
			transposed[j][i] = adj
		}
	}
	return NewMatrix(transposed)
}

// Derivative returns the matrix of entry derivatives at the matching
// component of x. Fails with ErrUnsupported if any entry has no
// derivative.
func (m *Matrix[T]) Derivative(x space.Tuple[T]) (Operator[space.Tuple[T], space.Tuple[T]], error) {
	if !m.domain.Contains(x) {
		return nil, fmt.Errorf("%w: %s", ErrNotInDomain, m.domain)
	}
	derived := make([][]ElOp[T], len(m.rows))
	for i, row := range m.rows {
		derived[i] = make([]ElOp[T], len(row))
		for j, op := range row {
			if op == nil {
				continue
			}
			diff, ok := op.(Differentiable[*space.Element[T], *space.Element[T]])
			if !ok {
				return nil, fmt.Errorf("%w: entry (%d, %d) has no derivative", ErrUnsupported, i, j)
			}
			deriv, err := diff.Derivative(x[j])
			if err != nil {
				return nil, err
			}
			derived[i][j] = deriv
		}
	}
	return NewMatrix(derived)
}

// String returns a human-readable representation, e.g. "op-matrix(2x2)".
func (m *Matrix[T]) String() string {
	return fmt.Sprintf("op-matrix(%dx%d)", len(m.rows), len(m.rows[0]))
}
