package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/deckarep/golang-set"
	"github.com/jedwards4b/PyReshaper/args"
	"github.com/jedwards4b/PyReshaper/specification"
	"github.com/mattn/go-zglob"
	"github.com/op/go-logging"
)

var (
	log = logging.MustGetLogger("reshaper")

	// Aliased so that tests can stub out glob expansion.
	Glob = zglob.Glob
)

// MakeSpec builds a slice-to-series specifier from the command-line flags
// and the given input globs, validates it, and writes it to the specifier
// file.
func MakeSpec(args *args.Args, inputGlobs []string) error {
	if len(inputGlobs) == 0 {
		return errors.New("No input files specified on the command-line")
	}

	// Expand the globs, keeping the first-seen order and dropping
	// duplicates. Note that things might not expand if they aren't actually
	// globs; that's OK, a path that names no file is caught by validation.
	seen := mapset.NewSet()
	inputFiles := make([]string, 0)
	for _, inputGlob := range inputGlobs {
		matches, err := Glob(inputGlob)
		if err != nil || len(matches) == 0 {
			matches = []string{inputGlob}
		}

		for _, match := range matches {
			if seen.Contains(match) {
				continue
			}

			seen.Add(match)
			inputFiles = append(inputFiles, match)
		}
	}

	log.Infof("Collected %d input file(s)", len(inputFiles))

	// Build the specifier from the flags.
	metadata := []string{}
	if args.Metadata != "" {
		metadata = strings.Split(args.Metadata, ",")
	}

	spec, err := specification.Create(
		specification.TypeSlice2Series, map[string]interface{}{
			"input_file_list":       inputFiles,
			"netcdf_format":         args.NetcdfFormat,
			"output_file_prefix":    args.OutputPrefix,
			"output_file_suffix":    args.OutputSuffix,
			"time_variant_metadata": metadata,
		})
	if err != nil {
		return err
	}

	if err := spec.Validate(); err != nil {
		return err
	}

	if args.DryRun {
		log.Infof("DRY_RUN: not writing '%s'", args.SpecFile)
		return nil
	}

	if err := specification.SaveSpecFile(spec, args.SpecFile); err != nil {
		return err
	}

	fmt.Printf("Wrote %s to '%s'\n", spec, args.SpecFile)
	return nil
}
