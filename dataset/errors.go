package dataset

import (
	"fmt"

	"github.com/brunobiangulo/cramdata"
)

// Re-exported so callers of this package need not import the root package.
var (
	ErrMissingKey        = cramdata.ErrMissingKey
	ErrUnexpectedKey     = cramdata.ErrUnexpectedKey
	ErrFieldType         = cramdata.ErrFieldType
	ErrParse             = cramdata.ErrParse
	ErrDuplicateCategory = cramdata.ErrDuplicateCategory
)

// KeyError reports a construction failure tied to one key of the source
// mapping. Err is one of ErrMissingKey, ErrUnexpectedKey or ErrFieldType.
type KeyError struct {
	Record string // "Data" or "CategoryConfig"
	Key    string
	Err    error
	Detail string
}

func (e *KeyError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %v %q: %s", e.Record, e.Err, e.Key, e.Detail)
	}
	return fmt.Sprintf("%s: %v %q", e.Record, e.Err, e.Key)
}

func (e *KeyError) Unwrap() error { return e.Err }

// ElementError wraps the failure of the element at Index of a loaded list.
type ElementError struct {
	Index int
	Err   error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("element %d: %v", e.Index, e.Err)
}

func (e *ElementError) Unwrap() error { return e.Err }
