package specification

import (
	"reflect"
	"strings"

	"github.com/fatih/camelcase"
)

// optionFields maps the snake_case option key of each exported field to
// the field's reflect.Value, recursing into embedded structs. The same
// mapping is used when applying options and when serializing a specifier,
// so spec files and option maps always agree on key names.
func optionFields(value reflect.Value, fields map[string]reflect.Value) {
	valueType := value.Type()
	for i := 0; i < valueType.NumField(); i++ {
		field := valueType.Field(i)
		if field.Anonymous {
			optionFields(value.Field(i), fields)
			continue
		}

		fieldName := strings.ToLower(strings.Join(camelcase.Split(field.Name), "_"))
		fields[fieldName] = value.Field(i)
	}
}

// applyOptions copies values from a free-form option map onto the fields
// of the given specifier. An unknown key is a TypeError: it is the
// equivalent of passing an unexpected keyword to the variant's
// constructor. The specifier_type field is owned by the factory and cannot
// be set through options. Values are stored as-is; type checking happens
// later, in ValidateTypes.
func applyOptions(spec Specifier, options map[string]interface{}) error {
	fields := make(map[string]reflect.Value)
	optionFields(reflect.ValueOf(spec).Elem(), fields)

	for key, value := range options {
		field, ok := fields[key]
		if !ok || key == "specifier_type" {
			return typeErrorf(
				"Unknown option '%s' for specifier of type '%s'", key, spec.Type())
		}

		// A null in the spec file leaves the default in place.
		if value == nil {
			continue
		}

		field.Set(reflect.ValueOf(value))
	}

	return nil
}

// specifierFields returns the specifier's fields keyed by their snake_case
// option names, including the specifier_type tag.
func specifierFields(spec Specifier) map[string]interface{} {
	fields := make(map[string]reflect.Value)
	optionFields(reflect.ValueOf(spec).Elem(), fields)

	values := make(map[string]interface{}, len(fields))
	for fieldName, field := range fields {
		values[fieldName] = field.Interface()
	}

	return values
}
