// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ps2pdf

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type memSink struct {
	bytes.Buffer
	closed bool
}

func (m *memSink) Close() error {
	m.closed = true
	return nil
}

func writeTempPS(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestProcessConcatenatesInputsInOrder(t *testing.T) {
	dir := t.TempDir()
	f1 := writeTempPS(t, dir, "a.ps", "%%BoundingBox: 0 0 100 100\n10 10 moveto 20 20 lineto stroke showpage\n")
	f2 := writeTempPS(t, dir, "b.ps", "%%BoundingBox: 0 0 100 100\n30 30 moveto 40 40 lineto stroke showpage\n")

	opts := ProcessingOptions{
		InputFiles:         []string{f1, f2},
		OutputFile:         "out.pdf",
		DeviceName:         DeviceNamePDFWrite,
		PaperSize:          PaperA4,
		CompatibilityLevel: Version17,
	}
	sink := &memSink{}
	summary, err := Process(opts, sink, nil)
	require.NoError(t, err)
	require.Equal(t, 2, summary.InputsProcessed)
	require.Equal(t, 2, summary.PagesWritten)
	require.True(t, sink.closed)
	require.Equal(t, uint64(sink.Len()), summary.BytesWritten)
	require.Contains(t, sink.String(), "%PDF-1.7\n")
}

func TestProcessMissingInputAborts(t *testing.T) {
	opts := ProcessingOptions{
		InputFiles:         []string{filepath.Join(t.TempDir(), "missing.ps")},
		OutputFile:         "out.pdf",
		DeviceName:         DeviceNamePDFWrite,
		PaperSize:          PaperA4,
		CompatibilityLevel: Version17,
	}
	sink := &memSink{}
	_, err := Process(opts, sink, nil)
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	require.Equal(t, InputNotFound, pe.Kind)
	require.False(t, sink.closed, "sink must not be closed on a fatal error")
}

func TestProcessCancellationBeforeInput(t *testing.T) {
	dir := t.TempDir()
	f1 := writeTempPS(t, dir, "a.ps", "%%BoundingBox: 0 0 100 100\nshowpage\n")
	opts := ProcessingOptions{
		InputFiles:         []string{f1},
		OutputFile:         "out.pdf",
		DeviceName:         DeviceNamePDFWrite,
		PaperSize:          PaperA4,
		CompatibilityLevel: Version17,
	}
	sink := &memSink{}
	_, err := Process(opts, sink, func() bool { return true })
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	require.Equal(t, Cancelled, pe.Kind)
}

func TestProcessEmptyInputStillProducesOnePage(t *testing.T) {
	dir := t.TempDir()
	f1 := writeTempPS(t, dir, "a.ps", "%!PS-Adobe-3.0\n% no drawing operators at all\n")
	opts := ProcessingOptions{
		InputFiles:         []string{f1},
		OutputFile:         "out.pdf",
		DeviceName:         DeviceNamePDFWrite,
		PaperSize:          PaperA4,
		CompatibilityLevel: Version17,
	}
	sink := &memSink{}
	summary, err := Process(opts, sink, nil)
	require.NoError(t, err)
	require.Equal(t, 1, summary.PagesWritten)
}

func TestProcessQuietSuppressesProgress(t *testing.T) {
	dir := t.TempDir()
	f1 := writeTempPS(t, dir, "a.ps", "%%BoundingBox: 0 0 100 100\nshowpage\n")
	calls := 0
	opts := ProcessingOptions{
		InputFiles:         []string{f1},
		OutputFile:         "out.pdf",
		DeviceName:         DeviceNamePDFWrite,
		PaperSize:          PaperA4,
		CompatibilityLevel: Version17,
		Quiet:              true,
		Progress:           func(Progress) { calls++ },
	}
	sink := &memSink{}
	_, err := Process(opts, sink, nil)
	require.NoError(t, err)
	require.Zero(t, calls)
}

func TestProcessProgressSequencing(t *testing.T) {
	dir := t.TempDir()
	f1 := writeTempPS(t, dir, "a.ps", "%%BoundingBox: 0 0 100 100\nshowpage\n")
	var seq []Status
	opts := ProcessingOptions{
		InputFiles:         []string{f1},
		OutputFile:         "out.pdf",
		DeviceName:         DeviceNamePDFWrite,
		PaperSize:          PaperA4,
		CompatibilityLevel: Version17,
		Progress:           func(p Progress) { seq = append(seq, p.Status) },
	}
	sink := &memSink{}
	_, err := Process(opts, sink, nil)
	require.NoError(t, err)
	require.Equal(t, []Status{StatusInputBegin, StatusInputEnd, StatusSerializing}, seq)
}

func TestProcessInvalidOptionsRejectedBeforeTouchingSink(t *testing.T) {
	sink := &memSink{}
	_, err := Process(ProcessingOptions{}, sink, nil)
	require.Error(t, err)
	require.Zero(t, sink.Len())
	require.False(t, sink.closed)
}
