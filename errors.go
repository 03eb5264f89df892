package cramdata

import "errors"

var (
	// ErrMissingKey is returned when a source mapping lacks a required field.
	ErrMissingKey = errors.New("cramdata: missing required key")

	// ErrUnexpectedKey is returned when a source mapping carries a key the
	// record does not define.
	ErrUnexpectedKey = errors.New("cramdata: unexpected key")

	// ErrFieldType is returned when a value cannot be decoded into the
	// field it maps to.
	ErrFieldType = errors.New("cramdata: field has wrong type")

	// ErrParse is returned when a file is not valid JSON/YAML or its top
	// level is not a list.
	ErrParse = errors.New("cramdata: parse failed")

	// ErrDuplicateCategory is returned when two category configs share a label.
	ErrDuplicateCategory = errors.New("cramdata: duplicate category label")

	// ErrInvalidConfig is returned for invalid configuration values.
	ErrInvalidConfig = errors.New("cramdata: invalid configuration")
)
