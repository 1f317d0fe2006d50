// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ps2pdf

// Status names a point in the pipeline a Progress event reports on
// (spec.md §4.8: "called once per input file begin/end and at serializer
// start").
type Status int

const (
	StatusInputBegin Status = iota
	StatusInputEnd
	StatusSerializing
)

func (s Status) String() string {
	switch s {
	case StatusInputBegin:
		return "input-begin"
	case StatusInputEnd:
		return "input-end"
	case StatusSerializing:
		return "serializing"
	default:
		return "unknown"
	}
}

// Progress is one callback tuple: current/total input index (1-based,
// total is len(InputFiles)) and the pipeline stage it corresponds to. File
// is empty for the StatusSerializing event, which has no associated input.
type Progress struct {
	Current int
	Total   int
	Status  Status
	File    string
}

// ProgressFunc is the façade's progress hook; nil is a no-op, matching
// DiagnosticFunc's convention.
type ProgressFunc func(Progress)

func (f ProgressFunc) emit(p Progress) {
	if f != nil {
		f(p)
	}
}
