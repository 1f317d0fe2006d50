// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ps2pdf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Property 9 — escaping law: only backslash and both parens gain a
// backslash, every other byte (including non-printing ones) is
// unchanged, and the count of inserted backslashes equals the count of
// escapable characters in the input.
func TestEscapeContentStringLaw(t *testing.T) {
	cases := [][]byte{
		[]byte("plain text"),
		[]byte(`a\b(c)d`),
		[]byte("(((("),
		[]byte(")))"),
		[]byte("\x00\x01 binary \xff"),
		[]byte(""),
	}
	for _, in := range cases {
		out := escapeContentString(in)
		escapable := 0
		for _, c := range in {
			if c == '\\' || c == '(' || c == ')' {
				escapable++
			}
		}
		require.Equal(t, len(in)+escapable, len(out), "input %q", in)

		// Walking the output and stripping one backslash before each
		// escaped char must reproduce the input exactly.
		rebuilt := []byte{}
		bs := []byte(out)
		for i := 0; i < len(bs); i++ {
			if bs[i] == '\\' && i+1 < len(bs) {
				switch bs[i+1] {
				case '\\', '(', ')':
					i++
				}
			}
			rebuilt = append(rebuilt, bs[i])
		}
		require.Equal(t, in, rebuilt, "input %q", in)
	}
}

func TestWritePathBatchOperators(t *testing.T) {
	page := newPage(PageSizeA4)
	page.appendPath(PathBatch{
		LineWidth: 2,
		Color:     [3]float64{0, 0, 1},
		Elements: []PathElement{
			{Kind: PathMoveTo, X: 0, Y: 0},
			{Kind: PathCurveTo, X: 10, Y: 10, C1X: 1, C1Y: 1, C2X: 2, C2Y: 2},
			{Kind: PathPaintFill},
		},
	})
	content := string(renderContentStream(page))
	require.Contains(t, content, "0 0 1 RG")
	require.Contains(t, content, "0 0 1 rg")
	require.Contains(t, content, "2 w")
	require.Contains(t, content, " c\n")
	require.Contains(t, content, "f\n")
}

func TestWriteTextElementFields(t *testing.T) {
	page := newPage(PageSizeA4)
	page.appendText(TextElement{X: 5, Y: 6, Text: []byte("Hi (there)"), FontName: "Helvetica", FontSize: 24, Color: [3]float64{0, 0, 0}})
	content := string(renderContentStream(page))
	require.Contains(t, content, "BT\n")
	require.Contains(t, content, "/F1 24 Tf\n")
	require.Contains(t, content, "1 0 0 1 5 6 Tm\n")
	require.Contains(t, content, `(Hi \(there\)) Tj`)
	require.Contains(t, content, "ET\n")
}
