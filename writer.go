// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ps2pdf

import (
	"fmt"
	"io"

	"github.com/bits-and-blooms/bitset"
)

// posWriter wraps a sink, counting bytes written so the serializer can
// record each object's offset the instant it is emitted rather than
// computing offsets post-hoc (spec.md §9's design note against
// double-buffering via ostringstream). Write errors are sticky: once one
// occurs, further writes are no-ops and the error surfaces when the
// caller checks err. Grounded on seehuhn.de/go/pdf's writer.go posWriter,
// adapted from an embedded io.Writer to a standalone counting wrapper
// over this package's OutputSink.
type posWriter struct {
	w   io.Writer
	pos uint64
	err error
}

func (p *posWriter) writeString(s string) {
	if p.err != nil {
		return
	}
	n, err := p.w.Write([]byte(s))
	p.pos += uint64(n)
	if err != nil {
		p.err = err
	}
}

func (p *posWriter) writeBytes(b []byte) {
	if p.err != nil {
		return
	}
	n, err := p.w.Write(b)
	p.pos += uint64(n)
	if err != nil {
		p.err = err
	}
}

// objectIDTracker asserts the "IDs assigned 1..N, each written exactly
// once" invariant as objects are emitted, repurposing the teacher's
// bitset dependency (originally glyph-usage tracking in ttf/set.go) for
// an object-ID presence check instead.
type objectIDTracker struct {
	seen *bitset.BitSet
	n    uint32
}

func newObjectIDTracker(n uint32) *objectIDTracker {
	return &objectIDTracker{seen: bitset.New(uint(n) + 1), n: n}
}

func (t *objectIDTracker) mark(id uint32) error {
	if t.seen.Test(uint(id)) {
		return newErrorf(OutputUnwritable, "object id %d written more than once", id)
	}
	t.seen.Set(uint(id))
	return nil
}

func (t *objectIDTracker) verifyComplete() error {
	for i := uint32(1); i <= t.n; i++ {
		if !t.seen.Test(uint(i)) {
			return newErrorf(OutputUnwritable, "object id %d was never written", i)
		}
	}
	return nil
}

// serialize writes the full PDF file layout in one linear pass straight
// through to sink, with no intermediate full-file buffer (spec.md §4.7,
// §6.2, §9's design note against double-buffering): header, indirect
// objects with offsets recorded as they're written, cross-reference
// table, trailer. Returns the number of bytes written even on error, so
// a caller wrapping sink in a temp-file/rename scheme (the out-of-core
// "File I/O and temp-file bookkeeping" collaborator of spec.md §1) knows
// how much partial output to discard.
func serialize(sink io.Writer, objs []*PdfObject, version Version) (uint64, error) {
	pw := &posWriter{w: sink}

	pw.writeString(fmt.Sprintf("%%PDF-1.%d\n", uint8(version)))
	pw.writeString("%\xE2\xE3\xCF\xD3\n")

	tracker := newObjectIDTracker(uint32(len(objs)))
	byID := make(map[uint32]*PdfObject, len(objs))
	for _, obj := range objs {
		if err := tracker.mark(obj.ID); err != nil {
			return pw.pos, err
		}
		byID[obj.ID] = obj

		obj.Offset = pw.pos
		pw.writeString(fmt.Sprintf("%d 0 obj\n", obj.ID))
		pw.writeBytes(obj.Body)
		pw.writeString("\nendobj\n\n")
	}
	if err := tracker.verifyComplete(); err != nil {
		return pw.pos, err
	}

	xrefOffset := pw.pos
	pw.writeString(fmt.Sprintf("xref\n0 %d\n", len(objs)+1))
	pw.writeString("0000000000 65535 f \n")
	for i := uint32(1); i <= uint32(len(objs)); i++ {
		pw.writeString(fmt.Sprintf("%010d 00000 n \n", byID[i].Offset))
	}

	infoID := uint32(len(objs))
	pw.writeString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R /Info %d 0 R >>\n", len(objs)+1, infoID))
	pw.writeString(fmt.Sprintf("startxref\n%d\n%%%%EOF\n", xrefOffset))

	if pw.err != nil {
		return pw.pos, newError(OutputUnwritable, pw.err)
	}
	return pw.pos, nil
}
