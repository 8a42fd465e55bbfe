// Args is where all flags used anywhere are defined. This is useful for
// flags which have no clear point at which they can be defined, and
// provides a simple way of adding new flags.
package args

import (
	"flag"
	"path/filepath"
)

type Args struct {
	// General flags.
	DryRun bool

	// Specifier options.
	SpecFile     string
	NetcdfFormat string
	OutputPrefix string
	OutputSuffix string
	Metadata     string

	// Display options.
	ShowLog           bool
	UseSimpleProgress bool

	// Not actual arguments, but still useful.
	CurrentDir string
}

// All flags are defined using flag.xVar(&flag, ...). This generally makes
// them easier to use, because pointers are smelly.
var (
	args Args
)

func init() {
	// General flags.
	flag.BoolVar(&args.DryRun, "dry_run", false,
		"Enable DryRun mode. When DryRun is enabled, no specifier file will be "+
			"written, but all validation will be performed. This is mostly useful "+
			"for testing.")

	// Specifier options.
	flag.StringVar(&args.SpecFile, "spec_file", "reshape.s2s",
		"The specifier file to write (makespec) or read (check/show). Can be "+
			"absolute or relative to the current directory.")

	flag.StringVar(&args.NetcdfFormat, "netcdf_format", "netcdf4c",
		"The NetCDF format to write the time-series output files in. Can be "+
			"netcdf|netcdf4|netcdf4c.")

	flag.StringVar(&args.OutputPrefix, "output_prefix", "tseries.",
		"The prefix common to all time-series output files. Output files are "+
			"named prefix + variable name + suffix; the directory part of the "+
			"prefix must exist.")

	flag.StringVar(&args.OutputSuffix, "output_suffix", ".nc",
		"The suffix common to all time-series output files. A suffix without "+
			"the .nc extension will have it appended.")

	flag.StringVar(&args.Metadata, "metadata", "",
		"Comma-separated list of time-variant metadata variable names to "+
			"include in every time-series output file.")

	// Display options.
	flag.BoolVar(&args.ShowLog, "show_log", false,
		"If enabled, raw log messages will be shown rather than progress bars.")

	flag.BoolVar(&args.UseSimpleProgress, "use_simple_progress", false,
		"If enabled, use the simple (and reliable) progress display.")
}

// Load performs additional setup required to ensure the arguments are in a
// consistent format. This involves making the specifier file path absolute
// and recording the current directory.
func Load(cwd string) (Args, error) {
	// Make a copy of the default args.
	newArgs := args

	// Load the CurrentDir flag.
	newArgs.CurrentDir = cwd

	// Load the SpecFile flag based on CurrentDir.
	if !filepath.IsAbs(newArgs.SpecFile) {
		newArgs.SpecFile = filepath.Join(newArgs.CurrentDir, newArgs.SpecFile)
	}

	return newArgs, nil
}
