package gf2

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ToGonum exports m as a gonum *mat.Dense of exact 0/1 float64 entries,
// for consumers that want numeric tooling (formatting, spectra, plotting)
// on top of the encoder's output. The bridge is one-way interop: nothing
// inside this package ever computes through floating point.
// Zero-row matrices are not representable by gonum and yield ErrBadShape.
func ToGonum(m *Dense) (*mat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("ToGonum: %w", ErrNilMatrix)
	}
	if m.r == 0 {
		return nil, fmt.Errorf("ToGonum: %dx%d: %w", m.r, m.c, ErrBadShape)
	}
	data := make([]float64, len(m.data))
	for i, v := range m.data {
		data[i] = float64(v)
	}

	return mat.NewDense(m.r, m.c, data), nil
}

// FromGonum imports a gonum matrix whose entries are exactly 0 or 1.
// Any other value (including anything fractional, negative or non-finite)
// yields ErrNonBinary — no rounding is ever applied.
func FromGonum(src mat.Matrix) (*Dense, error) {
	if src == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilMatrix)
	}
	r, c := src.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := src.At(i, j)
			if math.IsNaN(v) || (v != 0 && v != 1) {
				return nil, fmt.Errorf("FromGonum: entry (%d,%d)=%v: %w", i, j, v, ErrNonBinary)
			}
			out.data[i*c+j] = uint8(v)
		}
	}

	return out, nil
}
