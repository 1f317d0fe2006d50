// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ps2pdf

import (
	"bytes"
	"fmt"
)

// renderContentStream composes a page's items into the PDF operators
// described by spec.md §4.6: a q...Q wrapper around a fixed preamble
// (default line width, round caps/joins) followed by one PathBatch or
// TextElement block per item, in order.
func renderContentStream(page *Page) []byte {
	var buf bytes.Buffer
	buf.WriteString("q\n1 w\n1 J\n1 j\n")
	for _, item := range page.Items {
		if item.IsText() {
			writeTextElement(&buf, item.Text())
		} else {
			writePathBatch(&buf, item.Path())
		}
	}
	buf.WriteString("Q\n")
	return buf.Bytes()
}

// writePathBatch emits color/line-width operators reflecting the
// graphics state the batch was painted under (spec.md S5: "the emitter
// may emit color operators at the start of each batch"), then the path
// construction operators, then the paint terminator.
func writePathBatch(buf *bytes.Buffer, batch PathBatch) {
	r, g, b := formatNumber(batch.Color[0]), formatNumber(batch.Color[1]), formatNumber(batch.Color[2])
	fmt.Fprintf(buf, "%s %s %s RG\n%s %s %s rg\n%s w\n", r, g, b, r, g, b, formatNumber(batch.LineWidth))
	for _, el := range batch.Elements {
		switch el.Kind {
		case PathMoveTo:
			fmt.Fprintf(buf, "%s %s m\n", formatNumber(el.X), formatNumber(el.Y))
		case PathLineTo:
			fmt.Fprintf(buf, "%s %s l\n", formatNumber(el.X), formatNumber(el.Y))
		case PathCurveTo:
			fmt.Fprintf(buf, "%s %s %s %s %s %s c\n",
				formatNumber(el.C1X), formatNumber(el.C1Y),
				formatNumber(el.C2X), formatNumber(el.C2Y),
				formatNumber(el.X), formatNumber(el.Y))
		case PathClosePath:
			buf.WriteString("h\n")
		case PathPaintStroke:
			buf.WriteString("S\n")
		case PathPaintFill:
			buf.WriteString("f\n")
		}
	}
}

func writeTextElement(buf *bytes.Buffer, t TextElement) {
	fmt.Fprintf(buf, "BT\n/F1 %s Tf\n", formatNumber(t.FontSize))
	fmt.Fprintf(buf, "%s %s %s rg\n", formatNumber(t.Color[0]), formatNumber(t.Color[1]), formatNumber(t.Color[2]))
	fmt.Fprintf(buf, "1 0 0 1 %s %s Tm\n", formatNumber(t.X), formatNumber(t.Y))
	fmt.Fprintf(buf, "(%s) Tj\n", escapeContentString(t.Text))
	buf.WriteString("ET\n")
}
