package cursordust

import (
	"errors"
	"math"
)

// ErrInvalidViewport is returned by Projection when either viewport dimension
// is zero; the pixel-to-clip mapping would otherwise divide by zero.
var ErrInvalidViewport = errors.New("cursordust: viewport dimensions must be non-zero")

// Matrix is an immutable row-major homogeneous 3x3 affine matrix:
//
//	| m0 m1 m2 |
//	| m3 m4 m5 |
//	| m6 m7 m8 |
//
// Matrices use the column-vector convention (matrix * vec3(x, y, 1)), so in a
// chained product the rightmost factor applies to a point first.
type Matrix [9]float64

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Projection returns the matrix mapping viewport pixels (origin top-left,
// Y down) to clip space (origin center, Y up, range [-1, 1]):
// scale by (2/w, -2/h), then translate by (-1, 1).
func Projection(width, height float64) (Matrix, error) {
	if width == 0 || height == 0 {
		return Identity(), ErrInvalidViewport
	}
	return Matrix{
		2 / width, 0, -1,
		0, -2 / height, 1,
		0, 0, 1,
	}, nil
}

// Translation returns the matrix translating by (tx, ty).
func Translation(tx, ty float64) Matrix {
	return Matrix{
		1, 0, tx,
		0, 1, ty,
		0, 0, 1,
	}
}

// Rotation returns the matrix rotating by the given angle in radians.
func Rotation(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{
		cos, -sin, 0,
		sin, cos, 0,
		0, 0, 1,
	}
}

// Scaling returns the matrix scaling by (sx, sy).
func Scaling(sx, sy float64) Matrix {
	return Matrix{
		sx, 0, 0,
		0, sy, 0,
		0, 0, 1,
	}
}

// Multiply returns a * b. Applied to a point, b's transform happens first,
// then a's.
func Multiply(a, b Matrix) Matrix {
	var out Matrix
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[row*3+col] = a[row*3]*b[col] +
				a[row*3+1]*b[3+col] +
				a[row*3+2]*b[6+col]
		}
	}
	return out
}

// Compose folds factors left to right via Multiply, so the last factor is the
// first applied to a point. The per-particle transform is
// Compose(projection, translation, rotation, scaling): rotation and scale act
// in local particle space before translation, and projection wraps the result.
func Compose(factors ...Matrix) Matrix {
	out := Identity()
	for _, f := range factors {
		out = Multiply(out, f)
	}
	return out
}

// Apply transforms the point (x, y) by m.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}
