// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ps2pdf

// PathElementKind tags a PathElement's variant (spec.md §3). Grounded on
// the teacher's SVGBasicSegmentType tagged-command idiom in svgbasic.go,
// generalized from a byte command code to a proper Go enum since this
// package doesn't need SVG's single-letter command compactness.
type PathElementKind int

const (
	PathMoveTo PathElementKind = iota
	PathLineTo
	PathCurveTo
	PathClosePath
	PathPaintStroke
	PathPaintFill
)

// PathElement is one step of an accumulated path, in absolute PDF-space
// coordinates. Only MoveTo/LineTo/CurveTo carry point data; ClosePath and
// the two paint terminators carry none.
type PathElement struct {
	Kind PathElementKind
	X, Y float64
	C1X, C1Y float64
	C2X, C2Y float64
}

// pathAccumulator is the interpreter's owned path buffer (spec.md §4.3): a
// single in-progress batch, cleared on flush or discard.
type pathAccumulator struct {
	elems     []PathElement
	opened    bool // at least one MoveTo recorded since the last discard/flush
	closedSub bool // ClosePath already appended for the current subpath
}

func (p *pathAccumulator) moveTo(x, y float64) {
	p.elems = append(p.elems, PathElement{Kind: PathMoveTo, X: x, Y: y})
	p.opened = true
	p.closedSub = false
}

// lineTo defaults to a MoveTo when no prior MoveTo has been recorded, per
// spec.md §4.3's local-recovery rule.
func (p *pathAccumulator) lineTo(x, y float64) {
	if !p.opened {
		p.moveTo(x, y)
		return
	}
	p.elems = append(p.elems, PathElement{Kind: PathLineTo, X: x, Y: y})
}

func (p *pathAccumulator) curveTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !p.opened {
		p.moveTo(c1x, c1y)
	}
	p.elems = append(p.elems, PathElement{Kind: PathCurveTo, C1X: c1x, C1Y: c1y, C2X: c2x, C2Y: c2y, X: x, Y: y})
}

// closePath appends at most once per subpath (spec.md §3 invariant).
func (p *pathAccumulator) closePath() {
	if p.closedSub {
		return
	}
	p.elems = append(p.elems, PathElement{Kind: PathClosePath})
	p.closedSub = true
}

func (p *pathAccumulator) discard() {
	p.elems = nil
	p.opened = false
	p.closedSub = false
}

// flush appends the paint terminator and returns the completed batch,
// clearing the buffer. Returns nil without clearing anything meaningful
// if nothing had been accumulated (an empty stroke/fill is a no-op, not an
// empty page item).
func (p *pathAccumulator) flush(terminator PathElementKind) []PathElement {
	if len(p.elems) == 0 {
		return nil
	}
	batch := append(p.elems, PathElement{Kind: terminator})
	p.discard()
	return batch
}
