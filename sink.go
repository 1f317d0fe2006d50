// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ps2pdf

import (
	"io"
	"os"
)

// OutputSink is the byte-sink abstraction the serializer writes through
// (spec.md §1: file I/O and temp-file bookkeeping are out-of-core
// collaborators, consumed only via this interface).
type OutputSink interface {
	io.Writer
	Close() error
}

// fileSink writes straight to a destination path — the ordinary case.
type fileSink struct {
	f *os.File
}

// NewFileSink opens path for writing, truncating any existing contents.
func NewFileSink(path string) (OutputSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, &Error{Kind: OutputUnwritable, File: path, Err: err}
	}
	return &fileSink{f: f}, nil
}

func (s *fileSink) Write(b []byte) (int, error) { return s.f.Write(b) }
func (s *fileSink) Close() error                { return s.f.Close() }

// printerSink is the platform print-spool collaborator (spec.md §1): an
// alternate sink that hands the finished PDF bytes to an OS print queue
// instead of a file. Flattening the source's Device polymorphism (file
// device, printer device, and stub devices that unconditionally returned
// true) down to this two-case sum type is the rewrite spec.md §9 calls
// for; actual spooling is out of core scope, so this only buffers and
// hands off through a caller-supplied function.
type printerSink struct {
	spool func([]byte) error
	buf   []byte
}

// NewPrinterSink wraps a caller-supplied spool function. A nil spool
// discards the bytes.
func NewPrinterSink(spool func([]byte) error) OutputSink {
	return &printerSink{spool: spool}
}

func (s *printerSink) Write(b []byte) (int, error) {
	s.buf = append(s.buf, b...)
	return len(b), nil
}

func (s *printerSink) Close() error {
	if s.spool == nil {
		return nil
	}
	if err := s.spool(s.buf); err != nil {
		return newError(OutputUnwritable, err)
	}
	return nil
}
