package specification

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jedwards4b/PyReshaper/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The spec file tests exercise real files, so put the stat-based checks
// back in place (other tests in this package stub them out).
func useRealFilesystem() {
	common.FileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	common.IsDir = func(path string) bool {
		stat, _ := os.Stat(path)
		return stat != nil && stat.IsDir()
	}

	common.IsFile = func(path string) bool {
		stat, _ := os.Stat(path)
		return stat != nil && stat.Mode().IsRegular()
	}
}

func writeFile(t *testing.T, path, content string) {
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestSaveThenLoadSpecFileRoundTrips(t *testing.T) {
	useRealFilesystem()
	tmpDir := t.TempDir()

	inputFile := filepath.Join(tmpDir, "slice.0001.nc")
	writeFile(t, inputFile, "not really netcdf")

	spec, err := Create("slice-to-series", map[string]interface{}{
		"input_file_list":       []string{inputFile},
		"netcdf_format":         "netcdf4",
		"output_file_prefix":    filepath.Join(tmpDir, "tseries."),
		"output_file_suffix":    "out",
		"time_variant_metadata": []string{"time", "time_bnds"},
	})
	require.NoError(t, err)
	require.NoError(t, spec.Validate())

	specFile := filepath.Join(tmpDir, "reshape.s2s")
	require.NoError(t, SaveSpecFile(spec, specFile))

	loaded, err := LoadSpecFile(specFile)
	require.NoError(t, err)
	require.NoError(t, loaded.Validate())

	loadedS2s := loaded.(*Slice2SeriesSpecifier)
	assert.Equal(t, []string{inputFile}, loaded.InputFiles())
	assert.Equal(t, "netcdf4", loaded.Format())
	assert.Equal(t, filepath.Join(tmpDir, "tseries."), loadedS2s.Prefix())
	assert.Equal(t, "out.nc", loadedS2s.Suffix())
	assert.Equal(t, []string{"time", "time_bnds"}, loadedS2s.Metadata())
}

func TestLoadSpecFileWithMissingFileReturnsValueError(t *testing.T) {
	useRealFilesystem()

	spec, err := LoadSpecFile(filepath.Join(t.TempDir(), "nope.s2s"))
	require.Error(t, err)
	assert.Nil(t, spec)
	assert.IsType(t, &ValueError{}, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadSpecFileWithHandWrittenHjsonSucceeds(t *testing.T) {
	useRealFilesystem()
	specFile := filepath.Join(t.TempDir(), "reshape.s2s")
	writeFile(t, specFile, `{
  # written by hand
  specifier_type: slice-to-series
  input_file_list: ["slice.0001.nc", "slice.0002.nc"]
  netcdf_format: netcdf
}`)

	spec, err := LoadSpecFile(specFile)
	require.NoError(t, err)
	assert.Equal(t, "slice-to-series", spec.Type())
	assert.Equal(t, []string{"slice.0001.nc", "slice.0002.nc"}, spec.InputFiles())
	assert.Equal(t, "netcdf", spec.Format())
}

func TestLoadSpecFileWithoutSpecifierTypeReturnsValueError(t *testing.T) {
	useRealFilesystem()
	specFile := filepath.Join(t.TempDir(), "reshape.s2s")
	writeFile(t, specFile, `{
  netcdf_format: netcdf
}`)

	spec, err := LoadSpecFile(specFile)
	require.Error(t, err)
	assert.Nil(t, spec)
	assert.IsType(t, &ValueError{}, err)
	assert.Contains(t, err.Error(), "specifier_type")
}

func TestLoadSpecFileWithUnknownSpecifierTypeReturnsValueError(t *testing.T) {
	useRealFilesystem()
	specFile := filepath.Join(t.TempDir(), "reshape.s2s")
	writeFile(t, specFile, `{
  specifier_type: series-to-slice
}`)

	spec, err := LoadSpecFile(specFile)
	require.Error(t, err)
	assert.Nil(t, spec)
	assert.IsType(t, &ValueError{}, err)
}

func TestLoadSpecFileWithUnknownKeyReturnsTypeError(t *testing.T) {
	useRealFilesystem()
	specFile := filepath.Join(t.TempDir(), "reshape.s2s")
	writeFile(t, specFile, `{
  specifier_type: slice-to-series
  no_such_option: true
}`)

	spec, err := LoadSpecFile(specFile)
	require.Error(t, err)
	assert.Nil(t, spec)
	assert.IsType(t, &TypeError{}, err)
}

func TestLoadSpecFileWithNonMappingContentReturnsValueError(t *testing.T) {
	useRealFilesystem()
	specFile := filepath.Join(t.TempDir(), "reshape.s2s")
	writeFile(t, specFile, `[1, 2, 3]`)

	spec, err := LoadSpecFile(specFile)
	require.Error(t, err)
	assert.Nil(t, spec)
	assert.IsType(t, &ValueError{}, err)
}
