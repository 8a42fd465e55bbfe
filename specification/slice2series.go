package specification

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jedwards4b/PyReshaper/common"
)

// Slice2SeriesSpecifier describes a time-slice to time-series conversion.
// The engine writes one output file per data variable, named
// prefix + variable name + suffix, and replicates every time-variant
// metadata variable into each of them.
type Slice2SeriesSpecifier struct {
	Specification

	OutputFilePrefix    interface{}
	OutputFileSuffix    interface{}
	TimeVariantMetadata interface{}
}

// NewSlice2SeriesSpecifier returns a specifier with default settings. The
// list defaults are allocated per call, never shared between instances.
func NewSlice2SeriesSpecifier() *Slice2SeriesSpecifier {
	spec := new(Slice2SeriesSpecifier)
	spec.Specification = newSpecification()
	spec.SpecifierType = TypeSlice2Series
	spec.OutputFilePrefix = "tseries."
	spec.OutputFileSuffix = ".nc"
	spec.TimeVariantMetadata = []string{}
	return spec
}

////////////////////////////////////////////////////////////////////////////////
//                          Interface Implementation                          //
////////////////////////////////////////////////////////////////////////////////

func (this *Slice2SeriesSpecifier) String() string {
	return fmt.Sprintf(
		"%s specifier (%d input files)", this.Type(), len(this.InputFiles()))
}

func (this *Slice2SeriesSpecifier) Validate() error {
	// Types first: the value checks below assume they can iterate the lists
	// and run path operations on the strings.
	if err := this.ValidateTypes(); err != nil {
		return err
	}

	return this.ValidateValues()
}

func (this *Slice2SeriesSpecifier) ValidateTypes() error {
	// Base checks run first, so base failures are reported before ours.
	if err := this.Specification.ValidateTypes(); err != nil {
		return err
	}

	if _, ok := this.OutputFilePrefix.(string); !ok {
		return typeErrorf("Output file prefix must be given as a string")
	}

	if _, ok := this.OutputFileSuffix.(string); !ok {
		return typeErrorf("Output file suffix must be given as a string")
	}

	return checkStringList(
		this.TimeVariantMetadata,
		"Time-variant metadata must be given as a list",
		"Time-variant metadata variable names must be given as strings")
}

func (this *Slice2SeriesSpecifier) ValidateValues() error {
	if err := this.Specification.ValidateValues(); err != nil {
		return err
	}

	// The directory implied by the output prefix must already exist; the
	// prefix itself is rewritten to its absolute form. This happens before
	// the suffix fixup and is not rolled back if a later check fails.
	prefix, _ := this.OutputFilePrefix.(string)
	absPrefix, err := filepath.Abs(prefix)
	if err != nil {
		return valueErrorf("Output prefix '%s' cannot be made absolute: %s", prefix, err)
	}

	outputDir := filepath.Dir(absPrefix)
	if !common.IsDir(outputDir) {
		return valueErrorf(
			"Output directory '%s' implied in output prefix '%s' is not valid",
			outputDir, prefix)
	}

	this.OutputFilePrefix = absPrefix

	// A suffix without the ".nc" extension is corrected, not rejected. This
	// is the one permissive check in the component; every sibling check is
	// strict.
	suffix, _ := this.OutputFileSuffix.(string)
	if !strings.HasSuffix(suffix, ".nc") {
		this.OutputFileSuffix = suffix + ".nc"
	}

	return nil
}

////////////////////////////////////////////////////////////////////////////////
//                        Post-Validation Accessors                           //
////////////////////////////////////////////////////////////////////////////////

func (this *Slice2SeriesSpecifier) Prefix() string {
	prefix, _ := this.OutputFilePrefix.(string)
	return prefix
}

func (this *Slice2SeriesSpecifier) Suffix() string {
	suffix, _ := this.OutputFileSuffix.(string)
	return suffix
}

// Metadata returns the variable names replicated into every output file.
// The names are never resolved against any input file at this layer.
func (this *Slice2SeriesSpecifier) Metadata() []string {
	metadata, _ := stringList(this.TimeVariantMetadata)
	return metadata
}

// OutputFileFor returns the output filename for the given data variable,
// following the prefix + variable name + suffix convention.
func (this *Slice2SeriesSpecifier) OutputFileFor(variable string) string {
	return this.Prefix() + variable + this.Suffix()
}
