package docx

import "fmt"

// LoadError represents a document that could not be opened or parsed
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load document %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load document %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// SaveError represents a failure to serialize or write a document
type SaveError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SaveError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to save document %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to save document %s: %s", e.Path, e.Message)
}

func (e *SaveError) Unwrap() error {
	return e.Cause
}

// ColorError represents a run color value that cannot be resolved to RGB
type ColorError struct {
	Value string
}

func (e *ColorError) Error() string {
	return fmt.Sprintf("unresolvable color value %q", e.Value)
}

// StyleNotFoundError represents a paragraph style id missing from the style part
type StyleNotFoundError struct {
	StyleID string
}

func (e *StyleNotFoundError) Error() string {
	return fmt.Sprintf("style %q is not defined in this document", e.StyleID)
}
