// Package specification contains the typed, self-validating settings
// container consumed by the reshaping engine. A specifier describes how a
// batch of time-slice NetCDF files should be converted into per-variable
// time-series files: which input files to read, which NetCDF format to
// write, and how the output files should be named.
//
// Field values are deliberately untyped. They are populated from hjson
// specifier files or free-form option maps, so checking their dynamic
// types is a real validation phase rather than something the compiler can
// do for us. Validation never opens an input file; only filesystem
// metadata (stat) is consulted.
package specification

import (
	"fmt"

	"github.com/deckarep/golang-set"
	"github.com/jedwards4b/PyReshaper/common"
	"github.com/op/go-logging"
)

const (
	// Type tag carried by every slice-to-series specifier.
	TypeSlice2Series = "slice-to-series"
)

var (
	log = logging.MustGetLogger("reshaper")

	// The set of NetCDF format tags the engine can write.
	validFormats = mapset.NewSet("netcdf", "netcdf4", "netcdf4c")
)

////////////////////////////////////////////////////////////////////////////////
//                                   Errors                                   //
////////////////////////////////////////////////////////////////////////////////

// TypeError reports a specifier field whose value has the wrong dynamic
// type (e.g. a format tag which isn't a string). Type errors are always
// reported before value errors.
type TypeError struct {
	Message string
}

func (this *TypeError) Error() string {
	return this.Message
}

// ValueError reports a well-typed field holding a semantically invalid
// value (e.g. a missing input file).
type ValueError struct {
	Message string
}

func (this *ValueError) Error() string {
	return this.Message
}

func typeErrorf(format string, args ...interface{}) error {
	return &TypeError{Message: fmt.Sprintf(format, args...)}
}

func valueErrorf(format string, args ...interface{}) error {
	return &ValueError{Message: fmt.Sprintf(format, args...)}
}

////////////////////////////////////////////////////////////////////////////////
//                             Specifier Interface                            //
////////////////////////////////////////////////////////////////////////////////

type Specifier interface {
	// String returns a short representation of the specifier for display.
	String() string

	// Type returns the specifier variant tag (e.g. "slice-to-series").
	Type() string

	// Validate runs ValidateTypes then ValidateValues, in that order. The
	// value checks assume the type checks have passed. Validate is
	// idempotent on an already-valid specifier.
	Validate() error

	// ValidateTypes checks the dynamic types of every field.
	ValidateTypes() error

	// ValidateValues checks field values against the filesystem and the
	// set of allowed tags. It may normalize fields in place (absolute
	// output prefix, ".nc" suffix); callers must not assume the fields are
	// untouched after a failed pass.
	ValidateValues() error

	// InputFiles returns the input file list. Only meaningful after a
	// successful Validate.
	InputFiles() []string

	// Format returns the output NetCDF format tag. Only meaningful after a
	// successful Validate.
	Format() string
}

////////////////////////////////////////////////////////////////////////////////
//                             Specification Base                             //
////////////////////////////////////////////////////////////////////////////////

// Specification holds the fields common to every specifier variant. It is
// embedded by concrete variants, which must invoke the base validation
// phase before their own.
type Specification struct {
	SpecifierType string
	InputFileList interface{}
	NetcdfFormat  interface{}
}

// newSpecification returns the base fields with their defaults. The empty
// input list is freshly allocated on every call so that no two specifiers
// ever share a default slice.
func newSpecification() Specification {
	return Specification{
		SpecifierType: "undetermined",
		InputFileList: []string{},
		NetcdfFormat:  "netcdf4c",
	}
}

func (this *Specification) Type() string {
	return this.SpecifierType
}

func (this *Specification) InputFiles() []string {
	inputFiles, _ := stringList(this.InputFileList)
	return inputFiles
}

func (this *Specification) Format() string {
	format, _ := this.NetcdfFormat.(string)
	return format
}

func (this *Specification) ValidateTypes() error {
	if err := checkStringList(
		this.InputFileList,
		"Input file list must be a list",
		"Input file names must be given as strings"); err != nil {
		return err
	}

	if _, ok := this.NetcdfFormat.(string); !ok {
		return typeErrorf("NetCDF format must be given as a string")
	}

	return nil
}

func (this *Specification) ValidateValues() error {
	// Make sure there is at least one input file given.
	inputFiles := this.InputFiles()
	if len(inputFiles) == 0 {
		return valueErrorf("There must be at least one input file given")
	}

	// Each input file must exist as a regular file. Note that this never
	// opens the file; anything requiring a look at the file's contents
	// belongs to the engine, not here.
	for _, inputFile := range inputFiles {
		if !common.IsFile(inputFile) {
			return valueErrorf("Input file '%s' is not a regular file", inputFile)
		}
	}

	if !validFormats.Contains(this.Format()) {
		return valueErrorf(
			"Output NetCDF file format '%s' is not valid", this.Format())
	}

	return nil
}

////////////////////////////////////////////////////////////////////////////////
//                               Create Factory                               //
////////////////////////////////////////////////////////////////////////////////

// Create builds a specifier of the given variant and applies the given
// options to it. specType is untyped because it usually comes straight out
// of an untyped specifier file: a non-string tag is a TypeError, an
// unrecognized tag a ValueError. Option keys are the snake_case form of
// the variant's field names; the variant rejects keys it doesn't know.
func Create(specType interface{}, options map[string]interface{}) (Specifier, error) {
	typeTag, ok := specType.(string)
	if !ok {
		return nil, typeErrorf("Specification type must be given as a string")
	}

	switch typeTag {
	case TypeSlice2Series:
		spec := NewSlice2SeriesSpecifier()
		if err := applyOptions(spec, options); err != nil {
			return nil, err
		}

		log.Debugf("Created %s", spec)
		return spec, nil
	}

	return nil, valueErrorf("Specifier of type '%s' is not defined", typeTag)
}

////////////////////////////////////////////////////////////////////////////////
//                              Utility Functions                             //
////////////////////////////////////////////////////////////////////////////////

// stringList converts an untyped field value into a []string. Both
// []string (programmatic construction) and []interface{} with string
// elements (hjson decoding) are accepted. The second return value is false
// if the value is not a list of strings.
func stringList(value interface{}) ([]string, bool) {
	switch list := value.(type) {
	case []string:
		return list, true

	case []interface{}:
		items := make([]string, 0, len(list))
		for _, item := range list {
			itemString, ok := item.(string)
			if !ok {
				return nil, false
			}

			items = append(items, itemString)
		}

		return items, true
	}

	return nil, false
}

// checkStringList validates that the given value is a list of strings,
// reporting listMsg if it isn't a list at all and elemMsg if one of its
// elements isn't a string.
func checkStringList(value interface{}, listMsg, elemMsg string) error {
	switch list := value.(type) {
	case []string:
		return nil

	case []interface{}:
		for _, item := range list {
			if _, ok := item.(string); !ok {
				return typeErrorf(elemMsg)
			}
		}

		return nil
	}

	return typeErrorf(listMsg)
}
