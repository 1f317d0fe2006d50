// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ps2pdf

// GraphicsState is the value type cloned on gsave and restored on
// grestore (spec.md §3). CurrentX/Y are PS-space coordinates; the
// interpreter transforms them through the CoordinateTransform only when
// recording a path point or text placement into the page model.
type GraphicsState struct {
	CurrentX, CurrentY float64
	LineWidth          float64
	ColorRGB           [3]float64
	FontName           string
	FontSize           float64
	CTM                Matrix
}

func defaultGraphicsState() GraphicsState {
	return GraphicsState{
		LineWidth: 1,
		FontName:  "Helvetica",
		FontSize:  12,
		CTM:       Identity(),
	}
}

// maxGraphicsStateDepth bounds the gsave/grestore stack (spec.md §4.2).
const maxGraphicsStateDepth = 256

// gstateStack is the interpreter's owned graphics-state stack. pop on an
// empty stack is a no-op, matching real-world PS tolerance for unbalanced
// grestore.
type gstateStack struct {
	cur   GraphicsState
	saved []GraphicsState
}

func newGstateStack() *gstateStack {
	return &gstateStack{cur: defaultGraphicsState()}
}

func (s *gstateStack) current() *GraphicsState {
	return &s.cur
}

func (s *gstateStack) push() error {
	if len(s.saved) >= maxGraphicsStateDepth {
		return newErrorf(InterpreterError, "graphics state stack overflow (depth %d)", maxGraphicsStateDepth)
	}
	s.saved = append(s.saved, s.cur)
	return nil
}

func (s *gstateStack) pop() {
	n := len(s.saved)
	if n == 0 {
		return
	}
	s.cur = s.saved[n-1]
	s.saved = s.saved[:n-1]
}
