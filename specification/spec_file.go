package specification

import (
	"encoding/json"
	"io/ioutil"

	"github.com/client9/xson/hjson"
	"github.com/jedwards4b/PyReshaper/common"
)

// LoadSpecFile loads the specifier file located at `path` and returns the
// specifier it describes. Specifier files are hjson: a generic key-value
// mapping whose specifier_type key selects the variant and whose remaining
// keys are forwarded to it as options.
func LoadSpecFile(path string) (Specifier, error) {
	if !common.FileExists(path) {
		return nil, valueErrorf("Specifier file not found '%s'", path)
	}

	content, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, valueErrorf("Could not read specifier file '%s': %s", path, err)
	}

	specJson := make(map[string]interface{})
	if err := hjson.Unmarshal(content, &specJson); err != nil {
		return nil, valueErrorf("Could not load specifier file '%s': %s", path, err)
	}

	specType, ok := specJson["specifier_type"]
	if !ok {
		return nil, valueErrorf(
			"Specifier file '%s' is missing required 'specifier_type' field", path)
	}

	// Everything but the type tag is an option for the variant.
	delete(specJson, "specifier_type")

	spec, err := Create(specType, specJson)
	if err != nil {
		return nil, err
	}

	log.Debugf("Loaded %s from '%s'", spec, path)
	return spec, nil
}

// SaveSpecFile writes the specifier to `path` using the same snake_case
// keys LoadSpecFile reads back. The file is written as indented JSON,
// which is valid hjson, so it round-trips through LoadSpecFile.
func SaveSpecFile(spec Specifier, path string) error {
	specJson := specifierFields(spec)
	specJson["specifier_type"] = spec.Type()

	content, err := json.MarshalIndent(specJson, "", "  ")
	if err != nil {
		return valueErrorf("Could not encode specifier for '%s': %s", path, err)
	}

	if err := ioutil.WriteFile(path, content, 0644); err != nil {
		return valueErrorf("Could not write specifier file '%s': %s", path, err)
	}

	log.Debugf("Saved %s to '%s'", spec, path)
	return nil
}
