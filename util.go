// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ps2pdf

import (
	"strconv"
	"strings"
)

// formatNumber renders a coordinate or dimension the way a PDF content
// stream expects it: fixed-point, no trailing zeros beyond what's needed,
// never exponential notation.
func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		s = "0"
	}
	return s
}

// escapeContentString applies the PDF literal-string escaping law of
// spec.md §4.6: backslash and both parentheses are backslash-escaped;
// everything else, printable or not, passes through unchanged. PDF
// content streams are binary safe between the parens, so there is no
// need to force non-printing bytes to octal notation.
func escapeContentString(b []byte) string {
	var out strings.Builder
	out.Grow(len(b) + 4)
	for _, c := range b {
		switch c {
		case '\\', '(', ')':
			out.WriteByte('\\')
		}
		out.WriteByte(c)
	}
	return out.String()
}
