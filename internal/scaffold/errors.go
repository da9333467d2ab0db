package scaffold

import "errors"

// Validation errors are reported before any filesystem mutation occurs.
var (
	ErrEmptyName      = errors.New("module name is empty")
	ErrInvalidName    = errors.New("invalid module name")
	ErrInvalidType    = errors.New("invalid module type")
	ErrInvalidDomain  = errors.New("invalid domain")
	ErrInvalidVersion = errors.New("invalid version")
	ErrInvalidPath    = errors.New("invalid output path")
)

// I/O errors surface from the materializer. A write failure mid-generation
// triggers a rollback of the partially written module directory.
var (
	ErrAlreadyExists = errors.New("module directory already exists")
	ErrWriteFailure  = errors.New("write failure")
)

// ErrUnresolvedToken marks a template referencing a placeholder outside the
// recognized vocabulary. The template set is closed at build time, so this
// is an internal defect and generation fails loudly rather than emitting
// malformed output.
var ErrUnresolvedToken = errors.New("unresolved template token")
