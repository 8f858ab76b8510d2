package document

import "errors"

var (
	// ErrNilDocument is returned when rendering a nil document.
	ErrNilDocument = errors.New("document: nil document")
	// ErrUnknownKind is returned when an entry point receives an unsupported kind tag.
	ErrUnknownKind = errors.New("document: unknown kind")
)
