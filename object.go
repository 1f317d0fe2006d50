// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ps2pdf

import (
	"fmt"
	"strings"
)

// PdfObject is one indirect object: a sequentially assigned ID, its
// dictionary/stream body (already serialized to bytes, not escaped
// further), and the byte offset the serializer fills in as it writes
// (spec.md §3).
type PdfObject struct {
	ID     uint32
	Body   []byte
	Offset uint64
}

// buildObjects constructs the full indirect-object graph for a document
// (spec.md §4.6): Catalog, Pages tree, one Page+Contents pair per page in
// order, the shared Font resource, and — per SPEC_FULL.md §12's
// supplemented Info feature — a trailing /Info object carrying document
// metadata. IDs are assigned sequentially starting at 1, matching the
// fixed order §4.6 and §6.2 both assume (object 1 is always the Catalog,
// object 2 is always the Pages tree).
func buildObjects(pages []*Page, info DocumentInfo) []*PdfObject {
	nextID := uint32(0)
	alloc := func() uint32 {
		nextID++
		return nextID
	}

	catalogID := alloc()
	pagesID := alloc()

	type pagePair struct{ page, contents uint32 }
	pairs := make([]pagePair, len(pages))
	for i := range pages {
		pairs[i] = pagePair{page: alloc(), contents: alloc()}
	}
	fontID := alloc()
	infoID := alloc()

	objs := make([]*PdfObject, 0, 2+2*len(pages)+2)

	objs = append(objs, &PdfObject{
		ID:   catalogID,
		Body: []byte(fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R >>", pagesID)),
	})

	kids := make([]string, len(pairs))
	for i, p := range pairs {
		kids[i] = fmt.Sprintf("%d 0 R", p.page)
	}
	objs = append(objs, &PdfObject{
		ID:   pagesID,
		Body: []byte(fmt.Sprintf("<< /Type /Pages /Count %d /Kids [%s] >>", len(pages), strings.Join(kids, " "))),
	})

	for i, page := range pages {
		content := renderContentStream(page)
		objs = append(objs, &PdfObject{
			ID: pairs[i].page,
			Body: []byte(fmt.Sprintf(
				"<< /Type /Page /Parent %d 0 R /MediaBox [0 0 %s %s] /Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>",
				pagesID, formatNumber(page.WidthPts), formatNumber(page.HeightPts), fontID, pairs[i].contents,
			)),
		})
		objs = append(objs, &PdfObject{
			ID:   pairs[i].contents,
			Body: []byte(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content)),
		})
	}

	objs = append(objs, &PdfObject{
		ID:   fontID,
		Body: []byte("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>"),
	})

	objs = append(objs, &PdfObject{
		ID: infoID,
		Body: []byte(fmt.Sprintf("<< /Title (%s) /Creator (%s) /Producer (%s) >>",
			escapeContentString([]byte(info.Title)),
			escapeContentString([]byte(info.Creator)),
			escapeContentString([]byte(info.Producer)),
		)),
	})

	return objs
}
