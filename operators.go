// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ps2pdf

// operatorNames is the recognized operator subset (spec.md §4.4, both long
// and PDF-style short forms). It is the single source of truth for two
// consumers: the tokenizer, which classifies an executable name as an
// Operator token only if it appears here, and the interpreter's dispatch
// table, which is keyed by the same names.
var operatorNames = map[string]bool{
	"gsave": true, "q": true,
	"grestore": true, "Q": true,
	"setlinewidth": true, "w": true,
	"setrgbcolor": true, "rg": true,
	"setgray":   true,
	"moveto":    true, "m": true,
	"lineto":    true, "l": true,
	"curveto":   true, "c": true,
	"closepath": true, "h": true,
	"newpath":   true,
	"stroke": true, "s": true, "S": true,
	"fill": true, "f": true, "F": true,
	"findfont":   true,
	"scalefont":  true,
	"setfont":    true,
	"show": true, "Tj": true,
	"translate": true, "scale": true, "rotate": true, "concat": true,
	"showpage":      true,
	"setpagedevice": true,
}
