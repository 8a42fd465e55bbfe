package command

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/jedwards4b/PyReshaper/args"
	"github.com/jedwards4b/PyReshaper/common"
	"github.com/jedwards4b/PyReshaper/progress"
	"github.com/jedwards4b/PyReshaper/specification"
)

// Check validates each of the given specifier files and prints a
// PASSED/FAILED line per file. With no arguments, the -spec_file flag is
// checked.
func Check(args *args.Args, specFiles []string) error {
	if len(specFiles) == 0 {
		specFiles = []string{args.SpecFile}
	}

	var (
		gPrint = color.New(color.FgHiGreen, color.Bold).SprintfFunc()
		rPrint = color.New(color.FgHiRed, color.Bold).SprintfFunc()
	)

	nFailed := 0
	for _, specFile := range specFiles {
		if err := checkSpecFile(specFile); err != nil {
			nFailed++
			fmt.Printf("\t%s: %s: %s\n", rPrint("FAILED"), specFile, err)
		} else {
			fmt.Printf("\t%s: %s\n", gPrint("PASSED"), specFile)
		}
	}

	if nFailed > 0 {
		return errors.New(fmt.Sprintf(
			"%d of %d specifier file(s) failed validation", nFailed, len(specFiles)))
	}

	return nil
}

func checkSpecFile(specFile string) error {
	spec, err := specification.LoadSpecFile(specFile)
	if err != nil {
		return err
	}

	// Walk the input list before validating so that every missing file gets
	// reported, not just the first one Validate stops at. Input lists can
	// run to thousands of files, hence the progress bar.
	inputFiles := spec.InputFiles()
	progressBar := progress.AddBar(len(inputFiles), filepath.Base(specFile))
	missing := 0
	for _, inputFile := range inputFiles {
		progressBar.SetSuffix(filepath.Base(inputFile))
		if !common.IsFile(inputFile) {
			log.Warningf("Missing input file '%s'", inputFile)
			missing++
		}

		progressBar.Increment()
	}

	progressBar.Finish()
	if missing > 0 {
		log.Warningf("%d of %d input file(s) are missing",
			missing, len(inputFiles))
	}

	return spec.Validate()
}
