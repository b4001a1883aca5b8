package normalize

import (
	"errors"
	"fmt"

	"github.com/jonathan/idg-content-builder/internal/types"
)

// Data integrity errors. They are wrapped in a *NormalizationError and abort the build.
var (
	ErrMissingSlug           = errors.New("missing slug")
	ErrInconsistentSlug      = errors.New("slugs should be the same for all translations")
	ErrDuplicateTag          = errors.New("duplicate tag")
	ErrMissingTagTranslation = errors.New("tag is missing translation")
	ErrUnknownTag            = errors.New("unknown tag")
	ErrInvalidDate           = errors.New("invalid publishing date")
)

// NormalizationError reports which record and language failed a content integrity check.
type NormalizationError struct {
	Entity   string
	Name     string
	Language types.Language
	Message  string
	Cause    error
}

func (e *NormalizationError) Error() string {
	msg := fmt.Sprintf("normalization error: %s %q for language %q", e.Entity, e.Name, e.Language)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	return msg
}

func (e *NormalizationError) Unwrap() error {
	return e.Cause
}
