// Functional tests for the command-line driver. Each test builds a
// throwaway directory of fake time-slice files and calls ReshaperRun as
// though it was being run from the command-line. These are NOT unit tests.
package reshaper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jedwards4b/PyReshaper/args"
	"github.com/jedwards4b/PyReshaper/common"
	"github.com/jedwards4b/PyReshaper/specification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTest(t *testing.T) (args.Args, string) {
	tmpDir := t.TempDir()
	for _, name := range []string{"slice.0001.nc", "slice.0002.nc"} {
		require.NoError(t,
			os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0644))
	}

	programArgs, err := args.Load(tmpDir)
	require.NoError(t, err)
	programArgs.ShowLog = true
	programArgs.OutputPrefix = filepath.Join(tmpDir, "tseries.")
	programArgs.Metadata = "time,time_bnds"
	return programArgs, tmpDir
}

func TestMakeSpecThenCheckThenShowSucceeds(t *testing.T) {
	programArgs, tmpDir := setupTest(t)

	glob := filepath.Join(tmpDir, "slice.*.nc")
	require.NoError(t, ReshaperRun(programArgs, []string{"makespec", glob}))
	require.True(t, common.FileExists(programArgs.SpecFile))

	spec, err := specification.LoadSpecFile(programArgs.SpecFile)
	require.NoError(t, err)
	assert.Len(t, spec.InputFiles(), 2)
	assert.Equal(t, "netcdf4c", spec.Format())

	s2s := spec.(*specification.Slice2SeriesSpecifier)
	assert.Equal(t, []string{"time", "time_bnds"}, s2s.Metadata())
	assert.Equal(t, filepath.Join(tmpDir, "tseries."), s2s.Prefix())

	require.NoError(t, ReshaperRun(programArgs, []string{"check", programArgs.SpecFile}))
	require.NoError(t, ReshaperRun(programArgs, []string{"show", programArgs.SpecFile}))
}

func TestMakeSpecWithMissingInputFails(t *testing.T) {
	programArgs, tmpDir := setupTest(t)

	missing := filepath.Join(tmpDir, "nope.nc")
	err := ReshaperRun(programArgs, []string{"makespec", missing})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.nc")
	assert.False(t, common.FileExists(programArgs.SpecFile))
}

func TestMakeSpecWithDryRunWritesNothing(t *testing.T) {
	programArgs, tmpDir := setupTest(t)
	programArgs.DryRun = true

	glob := filepath.Join(tmpDir, "slice.*.nc")
	require.NoError(t, ReshaperRun(programArgs, []string{"makespec", glob}))
	assert.False(t, common.FileExists(programArgs.SpecFile))
}

func TestCheckWithFailingSpecFileReturnsError(t *testing.T) {
	programArgs, tmpDir := setupTest(t)

	glob := filepath.Join(tmpDir, "slice.*.nc")
	require.NoError(t, ReshaperRun(programArgs, []string{"makespec", glob}))

	// Delete one input file out from under the specifier.
	require.NoError(t, os.Remove(filepath.Join(tmpDir, "slice.0002.nc")))
	err := ReshaperRun(programArgs, []string{"check", programArgs.SpecFile})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed validation")
}

func TestRunWithNoCommandFails(t *testing.T) {
	programArgs, _ := setupTest(t)
	require.Error(t, ReshaperRun(programArgs, []string{}))
}

func TestRunWithUnknownCommandFails(t *testing.T) {
	programArgs, _ := setupTest(t)
	err := ReshaperRun(programArgs, []string{"frobnicate"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frobnicate")
}
