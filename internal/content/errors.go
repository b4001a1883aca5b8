package content

import "fmt"

// LoadError represents an error during file discovery, I/O or JSON parsing.
// Path names the offending file or directory when known.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s %s", e.Message, e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("load error: %s", msg)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
