// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ps2pdf

import "math"

// Matrix is a PostScript/PDF affine transform, in the usual six-element
// row-vector form: [x' y' 1] = [x y 1] · Matrix.
//
// The recognized operator subset (spec.md §4.4) records CTM changes from
// translate/scale/rotate/concat but never applies them to individual path
// or text coordinates — GraphicsState.CTM records what the source
// PostScript asked for; it is not copied into the page model and does not
// drive rendering.
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity is the default CTM.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Multiply composes m acting first, followed by n: it mirrors the PDF `cm`
// operator, which premultiplies the new matrix into the current one.
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.B*n.C,
		B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C,
		D: m.C*n.B + m.D*n.D,
		E: m.E*n.A + m.F*n.C + n.E,
		F: m.E*n.B + m.F*n.D + n.F,
	}
}

// Translate returns a matrix that translates by (tx, ty).
func Translate(tx, ty float64) Matrix {
	return Matrix{A: 1, D: 1, E: tx, F: ty}
}

// Scale returns a matrix that scales by (sx, sy).
func Scale(sx, sy float64) Matrix {
	return Matrix{A: sx, D: sy}
}

// Rotate returns a matrix that rotates by deg degrees counter-clockwise,
// following the PostScript `rotate` convention.
func Rotate(deg float64) Matrix {
	rad := deg * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	return Matrix{A: cos, B: sin, C: -sin, D: cos}
}
