package command

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/jedwards4b/PyReshaper/args"
	"github.com/jedwards4b/PyReshaper/specification"
)

// Show prints the normalized fields of a validated specifier file.
func Show(args *args.Args, specFile string) error {
	spec, err := specification.LoadSpecFile(specFile)
	if err != nil {
		return err
	}

	if err := spec.Validate(); err != nil {
		return err
	}

	keyPrint := color.New(color.FgHiYellow, color.Bold).SprintfFunc()

	fmt.Printf("%s %s\n", keyPrint("specifier_type:"), spec.Type())
	fmt.Printf("%s %s\n", keyPrint("netcdf_format:"), spec.Format())

	if s2s, ok := spec.(*specification.Slice2SeriesSpecifier); ok {
		fmt.Printf("%s %s\n", keyPrint("output_files:"), s2s.OutputFileFor("<variable>"))
		fmt.Printf("%s %s\n",
			keyPrint("time_variant_metadata:"), strings.Join(s2s.Metadata(), ", "))
	}

	fmt.Printf("%s\n", keyPrint("input_file_list:"))
	for _, inputFile := range spec.InputFiles() {
		fmt.Printf("\t%s\n", inputFile)
	}

	return nil
}
