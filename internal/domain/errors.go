package domain

import "errors"

// Sentinel errors.
var (
	ErrInvalidLocation  = errors.New("invalid documents location")
	ErrDocumentNotFound = errors.New("document not found")
	ErrInvalidName      = errors.New("invalid document name")
)
