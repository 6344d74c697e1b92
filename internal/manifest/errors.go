package manifest

import "errors"

// Sentinel errors for the manifest package
var (
	// ErrFileNotFound indicates the stack file does not exist
	ErrFileNotFound = errors.New("stack file not found")

	// ErrInvalidFormat indicates the stack file is not valid JSON or YAML
	ErrInvalidFormat = errors.New("stack file must be valid JSON or YAML")

	// ErrUnsupportedExt indicates an unsupported file extension
	ErrUnsupportedExt = errors.New("unsupported file extension (use .json, .yaml, or .yml)")

	// ErrNoPaths indicates the stack file yielded no file paths
	ErrNoPaths = errors.New("no file paths found in stack file")
)
