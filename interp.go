// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ps2pdf

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type operandKind int

const (
	opNumber operandKind = iota
	opString
	opName
)

type operand struct {
	kind operandKind
	num  float64
	str  []byte
	name string
}

// interpreter drives the tokenizer and dispatches operator tokens against
// an operand stack, graphics-state stack and path accumulator it
// exclusively owns (spec.md §4.4, §5's ownership rule).
type interpreter struct {
	gs        *gstateStack
	path      pathAccumulator
	stack     []operand
	pages     []*Page
	transform CoordinateTransform
	diag      DiagnosticFunc
	fileName  string

	// dictDepth counts nested << / [ while skipping a dictionary literal
	// (setpagedevice's argument); only << starts the skip, and [ is counted
	// only inside it. Zero means normal dispatch.
	dictDepth int
}

func (ip *interpreter) warn(line int, format string, args ...interface{}) {
	ip.diag.emit(Diagnostic{Severity: SeverityWarning, File: ip.fileName, Line: line, Message: fmt.Sprintf(format, args...)})
}

func (ip *interpreter) currentPage() *Page {
	return ip.pages[len(ip.pages)-1]
}

func (ip *interpreter) push(o operand) {
	ip.stack = append(ip.stack, o)
}

// popNumbers pops n numbers, returned in the order they were pushed
// (stack top last). Returns ok=false, leaving the stack untouched, if
// there are fewer than n operands or any of the top n aren't numbers.
func (ip *interpreter) popNumbers(n int) ([]float64, bool) {
	if len(ip.stack) < n {
		return nil, false
	}
	k := len(ip.stack) - n
	nums := make([]float64, n)
	for i := 0; i < n; i++ {
		v := ip.stack[k+i]
		if v.kind != opNumber {
			return nil, false
		}
		nums[i] = v.num
	}
	ip.stack = ip.stack[:k]
	return nums, true
}

func (ip *interpreter) popString() ([]byte, bool) {
	if len(ip.stack) < 1 {
		return nil, false
	}
	v := ip.stack[len(ip.stack)-1]
	if v.kind != opString {
		return nil, false
	}
	ip.stack = ip.stack[:len(ip.stack)-1]
	return v.str, true
}

func (ip *interpreter) popName() (string, bool) {
	if len(ip.stack) < 1 {
		return "", false
	}
	v := ip.stack[len(ip.stack)-1]
	if v.kind != opName {
		return "", false
	}
	ip.stack = ip.stack[:len(ip.stack)-1]
	return v.name, true
}

func (ip *interpreter) popAny() bool {
	if len(ip.stack) < 1 {
		return false
	}
	ip.stack = ip.stack[:len(ip.stack)-1]
	return true
}

func (ip *interpreter) recordMove(x, y float64) {
	gs := ip.gs.current()
	gs.CurrentX, gs.CurrentY = x, y
	px, py := ip.transform.Apply(x, y)
	ip.path.moveTo(px, py)
}

func (ip *interpreter) recordLine(x, y float64) {
	gs := ip.gs.current()
	gs.CurrentX, gs.CurrentY = x, y
	px, py := ip.transform.Apply(x, y)
	ip.path.lineTo(px, py)
}

func (ip *interpreter) recordCurve(c1x, c1y, c2x, c2y, x, y float64) {
	gs := ip.gs.current()
	gs.CurrentX, gs.CurrentY = x, y
	p1x, p1y := ip.transform.Apply(c1x, c1y)
	p2x, p2y := ip.transform.Apply(c2x, c2y)
	px, py := ip.transform.Apply(x, y)
	ip.path.curveTo(p1x, p1y, p2x, p2y, px, py)
}

func (ip *interpreter) recordShow(s []byte) {
	gs := ip.gs.current()
	px, py := ip.transform.Apply(gs.CurrentX, gs.CurrentY)
	ip.currentPage().appendText(TextElement{
		X: px, Y: py, Text: s,
		FontName: gs.FontName, FontSize: gs.FontSize, Color: gs.ColorRGB,
	})
}

func (ip *interpreter) flushPath(terminator PathElementKind) {
	gs := ip.gs.current()
	elems := ip.path.flush(terminator)
	if elems == nil {
		return
	}
	ip.currentPage().appendPath(PathBatch{Elements: elems, LineWidth: gs.LineWidth, Color: gs.ColorRGB})
}

// dispatch applies one recognized operator (spec.md §4.4's table). Operand
// underflow or a type mismatch is a warning-level local recovery: the
// operator is skipped and the interpreter continues.
func (ip *interpreter) dispatch(name string, line int) error {
	switch name {
	case "gsave", "q":
		if err := ip.gs.push(); err != nil {
			return err
		}
	case "grestore", "Q":
		ip.gs.pop()

	case "setlinewidth", "w":
		n, ok := ip.popNumbers(1)
		if !ok {
			ip.warn(line, "operand stack underflow for %s", name)
			return nil
		}
		ip.gs.current().LineWidth = n[0]

	case "setrgbcolor", "rg":
		n, ok := ip.popNumbers(3)
		if !ok {
			ip.warn(line, "operand stack underflow for %s", name)
			return nil
		}
		ip.gs.current().ColorRGB = [3]float64{n[0], n[1], n[2]}

	case "setgray":
		n, ok := ip.popNumbers(1)
		if !ok {
			ip.warn(line, "operand stack underflow for setgray")
			return nil
		}
		ip.gs.current().ColorRGB = [3]float64{n[0], n[0], n[0]}

	case "moveto", "m":
		n, ok := ip.popNumbers(2)
		if !ok {
			ip.warn(line, "operand stack underflow for %s", name)
			return nil
		}
		ip.recordMove(n[0], n[1])

	case "lineto", "l":
		n, ok := ip.popNumbers(2)
		if !ok {
			ip.warn(line, "operand stack underflow for %s", name)
			return nil
		}
		ip.recordLine(n[0], n[1])

	case "curveto", "c":
		n, ok := ip.popNumbers(6)
		if !ok {
			ip.warn(line, "operand stack underflow for %s", name)
			return nil
		}
		ip.recordCurve(n[0], n[1], n[2], n[3], n[4], n[5])

	case "closepath", "h":
		ip.path.closePath()

	case "newpath":
		ip.path.discard()

	case "stroke", "s", "S":
		ip.flushPath(PathPaintStroke)

	case "fill", "f", "F":
		ip.flushPath(PathPaintFill)

	case "findfont":
		n, ok := ip.popName()
		if !ok {
			ip.warn(line, "operand stack underflow for findfont")
			return nil
		}
		ip.push(operand{kind: opName, name: n})

	case "scalefont":
		size, ok := ip.popNumbers(1)
		if !ok {
			ip.warn(line, "operand stack underflow for scalefont")
			return nil
		}
		n, ok := ip.popName()
		if !ok {
			ip.warn(line, "operand stack underflow for scalefont")
			return nil
		}
		ip.gs.current().FontSize = size[0]
		ip.push(operand{kind: opName, name: n})

	case "setfont":
		n, ok := ip.popName()
		if !ok {
			ip.warn(line, "operand stack underflow for setfont")
			return nil
		}
		ip.gs.current().FontName = n

	case "show", "Tj":
		s, ok := ip.popString()
		if !ok {
			ip.warn(line, "operand stack underflow for %s", name)
			return nil
		}
		ip.recordShow(s)

	case "translate":
		n, ok := ip.popNumbers(2)
		if !ok {
			ip.warn(line, "operand stack underflow for translate")
			return nil
		}
		gs := ip.gs.current()
		gs.CTM = Translate(n[0], n[1]).Multiply(gs.CTM)

	case "scale":
		n, ok := ip.popNumbers(2)
		if !ok {
			ip.warn(line, "operand stack underflow for scale")
			return nil
		}
		gs := ip.gs.current()
		gs.CTM = Scale(n[0], n[1]).Multiply(gs.CTM)

	case "rotate":
		n, ok := ip.popNumbers(1)
		if !ok {
			ip.warn(line, "operand stack underflow for rotate")
			return nil
		}
		gs := ip.gs.current()
		gs.CTM = Rotate(n[0]).Multiply(gs.CTM)

	case "concat":
		n, ok := ip.popNumbers(6)
		if !ok {
			ip.warn(line, "operand stack underflow for concat")
			return nil
		}
		gs := ip.gs.current()
		gs.CTM = Matrix{A: n[0], B: n[1], C: n[2], D: n[3], E: n[4], F: n[5]}.Multiply(gs.CTM)

	case "showpage":
		ip.currentPage().shown = true
		ip.pages = append(ip.pages, newPage(ip.transform.pageSize()))

	case "setpagedevice":
		if !ip.popAny() {
			ip.warn(line, "operand stack underflow for setpagedevice")
		}

	default:
		ip.warn(line, "unknown operator: %s", name)
	}
	return nil
}

// handle processes one token outside of dict-skip mode, or updates the
// skip depth while inside it (setpagedevice's "accept and ignore a
// dictionary literal", spec.md §4.4).
func (ip *interpreter) handle(tok Token) error {
	if ip.dictDepth > 0 {
		if tok.Kind == TokName {
			switch tok.Str {
			case "<<", "[":
				ip.dictDepth++
			case ">>", "]":
				ip.dictDepth--
				if ip.dictDepth == 0 {
					ip.push(operand{kind: opName})
				}
			}
		}
		return nil
	}

	switch tok.Kind {
	case TokDSCComment, TokLineComment:
		// Recognized prefixes were already consumed by the DSC prelude
		// pass; any others are tokenized but otherwise ignored (§6.1).
	case TokNumber:
		ip.push(operand{kind: opNumber, num: tok.Num})
	case TokLiteralString:
		ip.push(operand{kind: opString, str: tok.Byte})
	case TokOperator:
		return ip.dispatch(tok.Str, tok.Line)
	case TokName:
		if tok.Str == "<<" {
			ip.dictDepth = 1
			return nil
		}
		if !tok.Literal {
			ip.warn(tok.Line, "unknown operator: %s", tok.Str)
			return nil
		}
		ip.push(operand{kind: opName, name: tok.Str})
	}
	return nil
}

// finalize applies the trailing-page rule (spec.md §4.4.2): a page that
// received no items and was never closed by showpage is dropped, unless
// it is the only page (the implicit first page always survives, even
// empty — property 7's idempotence-on-empty-input guarantee).
func (ip *interpreter) finalize() {
	if len(ip.pages) <= 1 {
		return
	}
	last := ip.pages[len(ip.pages)-1]
	if !last.shown && len(last.Items) == 0 {
		ip.pages = ip.pages[:len(ip.pages)-1]
	}
}

// applyDSCComment updates bbox/info from one recognized DSC prefix
// (spec.md §4.4.1). Unrecognized %% comments are left untouched.
func applyDSCComment(text string, bbox *BoundingBox, info *DocumentInfo) {
	switch {
	case strings.HasPrefix(text, "Title:"):
		info.Title = strings.TrimSpace(strings.TrimPrefix(text, "Title:"))
	case strings.HasPrefix(text, "Creator:"):
		info.Creator = strings.TrimSpace(strings.TrimPrefix(text, "Creator:"))
	case strings.HasPrefix(text, "BoundingBox:"):
		fields := strings.Fields(strings.TrimPrefix(text, "BoundingBox:"))
		if len(fields) != 4 {
			return
		}
		var nums [4]float64
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return
			}
			nums[i] = v
		}
		bbox.X1, bbox.Y1, bbox.X2, bbox.Y2 = nums[0], nums[1], nums[2], nums[3]
		bbox.Valid = true
	}
}

// interpretDocument runs the full tokenize+interpret pipeline over data:
// a DSC prelude pass to finalize the coordinate transform (§4.4.1),
// followed by the main operator-dispatch pass (§4.4).
func interpretDocument(data []byte, paper PageSize, fileName string, diag DiagnosticFunc) ([]*Page, DocumentInfo, error) {
	info := DocumentInfo{}
	bbox := defaultBoundingBox()

	pre, err := NewTokenizer(bytes.NewReader(data))
	if err != nil {
		return nil, info, newError(InputUnreadable, err)
	}
prescan:
	for {
		tok, terr := pre.Next()
		switch {
		case terr == io.EOF:
			break prescan
		case terr != nil:
			break prescan // the main pass below raises the real TokenizeError
		case tok.Kind == TokDSCComment:
			applyDSCComment(tok.Str, &bbox, &info)
		case tok.Kind == TokOperator:
			break prescan
		}
	}

	transform := NewCoordinateTransform(bbox, paper)

	ip := &interpreter{
		gs:        newGstateStack(),
		transform: transform,
		diag:      diag,
		fileName:  fileName,
	}
	ip.pages = []*Page{newPage(transform.pageSize())}

	main, err := NewTokenizer(bytes.NewReader(data))
	if err != nil {
		return nil, info, newError(InputUnreadable, err)
	}
	for {
		tok, terr := main.Next()
		if terr == io.EOF {
			break
		}
		if terr != nil {
			if e, ok := terr.(*Error); ok {
				e.File = fileName
				return nil, info, e
			}
			return nil, info, &Error{Kind: TokenizeError, File: fileName, Err: terr}
		}
		if err := ip.handle(tok); err != nil {
			if e, ok := err.(*Error); ok {
				e.File = fileName
				if e.Line == 0 {
					e.Line = tok.Line
				}
			}
			return nil, info, err
		}
	}
	ip.finalize()
	return ip.pages, info, nil
}
