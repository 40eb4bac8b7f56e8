package homeassistant

import "errors"

// Entity field errors. These indicate a mismatch between the resolution
// tables and the entity schemas and should never occur with the shipped
// tables.
var (
	// ErrUnknownField indicates a field name outside the entity's schema.
	ErrUnknownField = errors.New("field not in entity schema")

	// ErrFieldType indicates a value that does not match the schema's
	// declared type for the field.
	ErrFieldType = errors.New("value does not match field type")
)
