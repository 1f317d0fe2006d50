// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ps2pdf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

const epsilon = 1e-6

func approxEqual(t *testing.T, want, got float64) {
	t.Helper()
	require.InDeltaf(t, want, got, epsilon, "want %v got %v", want, got)
}

func TestCoordinateTransformSquareBBoxOnA4(t *testing.T) {
	bbox := BoundingBox{X1: 0, Y1: 0, X2: 100, Y2: 100, Valid: true}
	ct := NewCoordinateTransform(bbox, PageSizeA4)

	wantScale := math.Min(PageSizeA4.Wd/100, PageSizeA4.Ht/100)
	approxEqual(t, wantScale, ct.Scale)

	x, y := ct.Apply(0, 0)
	// origin maps to the centered, Y-flipped corner.
	approxEqual(t, ct.OffsetX, x)
	approxEqual(t, ct.PDFPageHeight-ct.OffsetY, y)
}

func TestCoordinateTransformRoundTripProperty8(t *testing.T) {
	bbox := BoundingBox{X1: 0, Y1: 0, X2: 100, Y2: 100, Valid: true}
	ct := NewCoordinateTransform(bbox, PageSizeA4)

	px, py := ct.Apply(10, 10)
	qx, qy := ct.Apply(90, 90)

	wantScale := math.Min(PageSizeA4.Wd/100, PageSizeA4.Ht/100)
	wantOX := (PageSizeA4.Wd-100*wantScale)/2 - 0*wantScale
	wantOY := (PageSizeA4.Ht-100*wantScale)/2 - 0*wantScale

	approxEqual(t, 10*wantScale+wantOX, px)
	approxEqual(t, PageSizeA4.Ht-(10*wantScale+wantOY), py)
	approxEqual(t, 90*wantScale+wantOX, qx)
	approxEqual(t, PageSizeA4.Ht-(90*wantScale+wantOY), qy)
}

func TestCoordinateTransformDegenerateBBox(t *testing.T) {
	bbox := BoundingBox{X1: 0, Y1: 0, X2: 0, Y2: 0}
	ct := NewCoordinateTransform(bbox, PageSizeA4)

	require.Equal(t, 1.0, ct.Scale)
	require.Equal(t, 0.0, ct.OffsetX)
	require.Equal(t, 0.0, ct.OffsetY)
	require.Equal(t, 0.0, ct.PageWidth)
	require.Equal(t, 0.0, ct.PageHeight)
}

func TestDefaultBoundingBoxMatchesA4(t *testing.T) {
	bbox := defaultBoundingBox()
	require.Equal(t, PageSizeA4.Wd, bbox.X2-bbox.X1)
	require.Equal(t, PageSizeA4.Ht, bbox.Y2-bbox.Y1)
	require.False(t, bbox.Valid)
}
