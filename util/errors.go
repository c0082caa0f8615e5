package util

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedInput is returned for items that are not complete
	// in-memory buffers, such as incremental byte streams.
	ErrUnsupportedInput = errors.New("streaming not supported")

	// ErrMalformedCatalog is returned when the text cannot be tokenized as
	// a gettext catalog at all.
	ErrMalformedCatalog = errors.New("malformed catalog")

	// ErrMissingIdentifier marks a message block without msgid. Such a
	// block is dropped, the rest of the catalog is still parsed.
	ErrMissingIdentifier = errors.New("missing msgid")

	// ErrNoRenderer is fatal for the whole pipeline.
	ErrNoRenderer = errors.New("no renderer for statistics")
)

// ItemError names the catalog which failed.
type ItemError struct {
	Path string
	Err  error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

// newItemError wraps err with the item name, and tags it with kind unless
// err already wraps kind.
func newItemError(path string, kind, err error) *ItemError {
	if err == nil {
		err = kind
	} else if !errors.Is(err, kind) {
		err = fmt.Errorf("%w: %v", kind, err)
	}
	return &ItemError{Path: path, Err: err}
}
