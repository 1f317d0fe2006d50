// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ps2pdf

// BoundingBox is the source document's geometric extent, populated from a
// %%BoundingBox DSC comment or defaulted (spec.md §3).
type BoundingBox struct {
	X1, Y1, X2, Y2 float64
	Valid          bool
}

// defaultBoundingBox is the A4-sized fallback used when no %%BoundingBox
// comment precedes the first operator.
func defaultBoundingBox() BoundingBox {
	return BoundingBox{X1: 0, Y1: 0, X2: PageSizeA4.Wd, Y2: PageSizeA4.Ht}
}

// CoordinateTransform maps PS-space points into PDF user space: uniform
// scale to fit the source bounding box onto the target paper, centered,
// with a Y-flip (spec.md §4.5). The flip direction is the one the source
// specification codifies; see DESIGN.md for the open-question
// disposition.
type CoordinateTransform struct {
	Scale   float64
	OffsetX float64
	OffsetY float64

	// PDFPageHeight is the H term of the Y-flip; PageWidth/PageHeight are
	// the resolved target page dimensions a newly created Page is sized
	// with.
	PDFPageHeight float64
	PageWidth     float64
	PageHeight    float64
}

// NewCoordinateTransform derives the transform once per document, after
// the DSC prelude has been scanned (spec.md §4.4.1, §4.5).
func NewCoordinateTransform(bbox BoundingBox, paper PageSize) CoordinateTransform {
	psW := bbox.X2 - bbox.X1
	psH := bbox.Y2 - bbox.Y1
	if psW <= 0 || psH <= 0 {
		// Degenerate bbox: identity scale, zero offsets, paper dimensions
		// set to the PS bbox (spec.md §4.5).
		return CoordinateTransform{
			Scale:         1,
			PDFPageHeight: psH,
			PageWidth:     psW,
			PageHeight:    psH,
		}
	}

	scale := paper.Wd / psW
	if s := paper.Ht / psH; s < scale {
		scale = s
	}
	sw := psW * scale
	sh := psH * scale

	return CoordinateTransform{
		Scale:         scale,
		OffsetX:       (paper.Wd-sw)/2 - bbox.X1*scale,
		OffsetY:       (paper.Ht-sh)/2 - bbox.Y1*scale,
		PDFPageHeight: paper.Ht,
		PageWidth:     paper.Wd,
		PageHeight:    paper.Ht,
	}
}

// Apply maps a PS-space point to PDF user space.
func (c CoordinateTransform) Apply(xs, ys float64) (xp, yp float64) {
	xp = xs*c.Scale + c.OffsetX
	yp = c.PDFPageHeight - (ys*c.Scale + c.OffsetY)
	return xp, yp
}

// pageSize returns the (width, height) a Page created under this
// transform should carry.
func (c CoordinateTransform) pageSize() PageSize {
	return PageSize{Wd: c.PageWidth, Ht: c.PageHeight}
}
