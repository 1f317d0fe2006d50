// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ps2pdf

import "fmt"

// PageSize is a paper size in PDF points (1/72 inch), following the
// teacher's PageSizeA4/PageSizeLetter convention of small named value
// types rather than an enum-keyed lookup sprinkled through the code.
type PageSize struct {
	Wd, Ht float64
}

// Paper is the recognized paper_size enumerant (spec.md §6.3).
type Paper int

const (
	PaperA4 Paper = iota
	PaperLetter
	PaperLegal
	PaperA3
	PaperA5
	PaperExecutive
	PaperCustom
)

func (p Paper) String() string {
	switch p {
	case PaperA4:
		return "A4"
	case PaperLetter:
		return "Letter"
	case PaperLegal:
		return "Legal"
	case PaperA3:
		return "A3"
	case PaperA5:
		return "A5"
	case PaperExecutive:
		return "Executive"
	case PaperCustom:
		return "Custom"
	default:
		return "Unknown"
	}
}

// Standard paper sizes in points. PageSizeA4 matches the default bounding
// box of spec.md §3 exactly (595.276 × 841.890) so that a document with no
// %%BoundingBox comment and default options renders to a page the same
// size as the box it falls back to.
var (
	PageSizeA4        = PageSize{595.276, 841.890}
	PageSizeLetter    = PageSize{612, 792}
	PageSizeLegal     = PageSize{612, 1008}
	PageSizeA3        = PageSize{841.890, 1190.551}
	PageSizeA5        = PageSize{420.945, 595.276}
	PageSizeExecutive = PageSize{522, 756}
)

func (p Paper) size(customW, customH float64) (PageSize, error) {
	switch p {
	case PaperA4:
		return PageSizeA4, nil
	case PaperLetter:
		return PageSizeLetter, nil
	case PaperLegal:
		return PageSizeLegal, nil
	case PaperA3:
		return PageSizeA3, nil
	case PaperA5:
		return PageSizeA5, nil
	case PaperExecutive:
		return PageSizeExecutive, nil
	case PaperCustom:
		if customW <= 0 || customH <= 0 {
			return PageSize{}, newErrorf(InvalidArgument, "custom paper size requires positive width and height, got %g x %g", customW, customH)
		}
		return PageSize{customW, customH}, nil
	default:
		return PageSize{}, newErrorf(InvalidArgument, "unrecognized paper size %d", int(p))
	}
}

// Quality is the informational rendering-quality hint (spec.md §6.3). It
// influences no bytes in this emitter; it exists so callers that set it
// (mirroring a gs-style -dPDFSETTINGS knob) don't trip InvalidArgument.
type Quality int

const (
	QualityDefault Quality = iota
	QualityScreen
	QualityEbook
	QualityPrinter
	QualityPrepress
)

// Version is a PDF compatibility level, recorded as the minor version
// digit (spec.md §6.3 names 1.4 through 1.7). Mirrors the teacher's packed
// pdfVersion idiom of a small integer type with a String method rather
// than a free-form string field.
type Version uint8

const (
	Version14 Version = 4
	Version15 Version = 5
	Version16 Version = 6
	Version17 Version = 7
)

func (v Version) String() string {
	return fmt.Sprintf("1.%d", uint8(v))
}

func (v Version) valid() bool {
	return v >= Version14 && v <= Version17
}

// DeviceNamePDFWrite is the only device_name this core runs for (spec.md
// §6.3); any other value routes to an alternate sink out of scope here.
const DeviceNamePDFWrite = "pdfwrite"

// producer is the fixed build-time producer string stamped into every
// document's /Info dictionary. A constant, never a mutable global (§9's
// design note on global statics for version/build strings).
const producer = "ps2pdf 1.0"

// DocumentInfo carries the document metadata that flows into the PDF
// /Info object (spec.md §3, supplemented per SPEC_FULL.md §12).
type DocumentInfo struct {
	Title      string
	Creator    string
	Producer   string
	PDFVersion Version
}

// ProcessingOptions is the recognized option set a CLI-style adapter
// yields to the core (spec.md §6.3). It is a plain value type, per the
// teacher's convention of grouping related knobs into small structs
// rather than threading a dozen parameters.
type ProcessingOptions struct {
	InputFiles []string
	OutputFile string
	DeviceName string

	PaperSize          Paper
	CustomWidthPoints  float64
	CustomHeightPoints float64

	CompatibilityLevel Version
	Quality            Quality

	Quiet     bool
	BatchMode bool
	NoPause   bool

	// Diagnostic receives warning-level recovery events and is nil (no-op)
	// by default.
	Diagnostic DiagnosticFunc
	// Progress receives (current, total, status) updates and is nil
	// (no-op) by default, or forced to nil when Quiet is set.
	Progress ProgressFunc
}

func (o *ProcessingOptions) validate() error {
	if len(o.InputFiles) == 0 {
		return newErrorf(InvalidArgument, "no input files given")
	}
	if o.OutputFile == "" {
		return newErrorf(InvalidArgument, "no output file given")
	}
	if o.DeviceName != "" && o.DeviceName != DeviceNamePDFWrite {
		return newErrorf(InvalidArgument, "device %q is not handled by this core", o.DeviceName)
	}
	if !o.CompatibilityLevel.valid() {
		return newErrorf(InvalidArgument, "compatibility level %s is not in the supported 1.4-1.7 range", o.CompatibilityLevel)
	}
	return nil
}

func (o *ProcessingOptions) resolvedPageSize() (PageSize, error) {
	return o.PaperSize.size(o.CustomWidthPoints, o.CustomHeightPoints)
}

func (o *ProcessingOptions) progressFunc() ProgressFunc {
	if o.Quiet {
		return nil
	}
	return o.Progress
}
