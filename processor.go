// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ps2pdf

import (
	"io"
	"os"
)

// Summary reports what Process did, for a caller that wants more than a
// bare success/fail signal (spec.md §4.8).
type Summary struct {
	InputsProcessed int
	PagesWritten    int
	BytesWritten    uint64
}

// CancelFunc is polled between input files and before serialization
// (spec.md §5). A nil CancelFunc never cancels.
type CancelFunc func() bool

func (f CancelFunc) cancelled() bool {
	return f != nil && f()
}

// Process is the core's single externally visible surface (spec.md
// §4.8): read each input in order, interpret it, concatenate the
// resulting pages, then serialize the assembled document to sink.
//
// A parse-level problem (unknown operator, malformed number, operand
// underflow) is a warning delivered through opts.Diagnostic and processing
// continues. A fatal error (missing input, unreadable input, an
// unterminated string at EOF, a write failure, cancellation) aborts the
// whole call; sink.Close is not called, and any bytes already written to
// sink are that sink's to discard (spec.md §1 leaves temp-file/rename
// bookkeeping to the caller that constructs the sink).
func Process(opts ProcessingOptions, sink OutputSink, cancel CancelFunc) (Summary, error) {
	if err := opts.validate(); err != nil {
		return Summary{}, err
	}
	paper, err := opts.resolvedPageSize()
	if err != nil {
		return Summary{}, err
	}
	progress := opts.progressFunc()
	total := len(opts.InputFiles)

	var pages []*Page
	var info DocumentInfo

	for i, path := range opts.InputFiles {
		if cancel.cancelled() {
			return Summary{}, newErrorf(Cancelled, "cancelled before processing %s", path)
		}
		progress.emit(Progress{Current: i + 1, Total: total, Status: StatusInputBegin, File: path})

		data, rerr := readInputFile(path)
		if rerr != nil {
			return Summary{}, rerr
		}

		filePages, fileInfo, ierr := interpretDocument(data, paper, path, opts.Diagnostic)
		if ierr != nil {
			return Summary{}, ierr
		}
		pages = append(pages, filePages...)
		if info.Title == "" {
			info.Title = fileInfo.Title
		}
		if info.Creator == "" {
			info.Creator = fileInfo.Creator
		}

		progress.emit(Progress{Current: i + 1, Total: total, Status: StatusInputEnd, File: path})
	}

	if len(pages) == 0 {
		pages = []*Page{newPage(paper)}
	}
	info.Producer = producer
	info.PDFVersion = opts.CompatibilityLevel

	if cancel.cancelled() {
		return Summary{}, newErrorf(Cancelled, "cancelled before serialization")
	}
	progress.emit(Progress{Current: total, Total: total, Status: StatusSerializing})

	objs := buildObjects(pages, info)

	n, serr := serialize(sink, objs, opts.CompatibilityLevel)
	if serr != nil {
		return Summary{}, serr
	}
	if err := sink.Close(); err != nil {
		return Summary{}, newError(OutputUnwritable, err)
	}

	return Summary{InputsProcessed: total, PagesWritten: len(pages), BytesWritten: n}, nil
}

func readInputFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &Error{Kind: InputNotFound, File: path, Err: err}
		}
		return nil, &Error{Kind: InputUnreadable, File: path, Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, &Error{Kind: InputUnreadable, File: path, Err: err}
	}
	return data, nil
}
