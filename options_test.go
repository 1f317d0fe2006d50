// Copyright ©2023 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ps2pdf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validOptions() ProcessingOptions {
	return ProcessingOptions{
		InputFiles:         []string{"in.ps"},
		OutputFile:         "out.pdf",
		DeviceName:         DeviceNamePDFWrite,
		PaperSize:          PaperA4,
		CompatibilityLevel: Version17,
	}
}

func TestValidateAcceptsWellFormedOptions(t *testing.T) {
	opts := validOptions()
	require.NoError(t, opts.validate())
}

func TestValidateRejectsNoInputs(t *testing.T) {
	opts := validOptions()
	opts.InputFiles = nil
	require.Error(t, opts.validate())
}

func TestValidateRejectsNoOutput(t *testing.T) {
	opts := validOptions()
	opts.OutputFile = ""
	require.Error(t, opts.validate())
}

func TestValidateRejectsUnknownDevice(t *testing.T) {
	opts := validOptions()
	opts.DeviceName = "ljet4"
	require.Error(t, opts.validate())
}

func TestValidateRejectsBadCompatibilityLevel(t *testing.T) {
	opts := validOptions()
	opts.CompatibilityLevel = Version(9)
	require.Error(t, opts.validate())
}

func TestResolvedPageSizeCustomRequiresPositiveDims(t *testing.T) {
	opts := validOptions()
	opts.PaperSize = PaperCustom
	opts.CustomWidthPoints = 0
	opts.CustomHeightPoints = 100
	_, err := opts.resolvedPageSize()
	require.Error(t, err)

	opts.CustomWidthPoints = 300
	size, err := opts.resolvedPageSize()
	require.NoError(t, err)
	require.Equal(t, PageSize{300, 100}, size)
}

func TestProgressFuncNilWhenQuiet(t *testing.T) {
	called := false
	opts := validOptions()
	opts.Quiet = true
	opts.Progress = func(Progress) { called = true }
	require.Nil(t, opts.progressFunc())

	opts.Quiet = false
	require.NotNil(t, opts.progressFunc())
	opts.progressFunc().emit(Progress{})
	require.True(t, called)
}

func TestVersionString(t *testing.T) {
	require.Equal(t, "1.7", Version17.String())
	require.True(t, Version14.valid())
	require.False(t, Version(3).valid())
}
