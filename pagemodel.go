// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ps2pdf

// TextElement is a single show/Tj placement, recorded in PDF-space
// coordinates (spec.md §3). Text may contain any byte; escaping happens
// in the content-stream writer, not here.
type TextElement struct {
	X, Y     float64
	Text     []byte
	FontName string
	FontSize float64
	Color    [3]float64
}

// PathBatch is a path accumulator flush: a sequence of PathElements ending
// in PaintStroke or PaintFill, plus the color/line-width the batch was
// painted with (so the content-stream writer can emit per-batch color
// operators, as S5 requires for gsave/grestore isolation).
type PathBatch struct {
	Elements  []PathElement
	LineWidth float64
	Color     [3]float64
}

// pageItemKind tags a Page.Items entry.
type pageItemKind int

const (
	itemPathBatch pageItemKind = iota
	itemText
)

// PageItem is one entry of a page's ordered item list: either a PathBatch
// or a TextElement, never both (spec.md §3's `PathBatch | TextElement`
// union, flattened to a tagged struct per the teacher's idiom of sum types
// over interfaces for small closed variant sets — see svgbasic.go).
type PageItem struct {
	kind  pageItemKind
	path  PathBatch
	text  TextElement
}

// IsText reports whether this item is a TextElement rather than a
// PathBatch.
func (it PageItem) IsText() bool { return it.kind == itemText }

// Path returns the item's PathBatch; valid only when !IsText().
func (it PageItem) Path() PathBatch { return it.path }

// Text returns the item's TextElement; valid only when IsText().
func (it PageItem) Text() TextElement { return it.text }

// Page is a single output page: its dimensions (in points) and the
// ordered sequence of path batches and text placements committed to it
// (spec.md §3).
type Page struct {
	WidthPts, HeightPts float64
	Items               []PageItem

	shown bool // showpage observed for this page (§4.4.2 trailing-page rule)
}

func newPage(size PageSize) *Page {
	return &Page{WidthPts: size.Wd, HeightPts: size.Ht}
}

func (p *Page) appendPath(batch PathBatch) {
	p.Items = append(p.Items, PageItem{kind: itemPathBatch, path: batch})
}

func (p *Page) appendText(t TextElement) {
	p.Items = append(p.Items, PageItem{kind: itemText, text: t})
}
