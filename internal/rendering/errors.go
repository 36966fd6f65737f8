package rendering

import (
	"errors"
	"fmt"

	"github.com/jonathan/resume-nest/internal/types"
)

// ErrEmptyDocument is the cause reported for a nil document or one without a root.
var ErrEmptyDocument = errors.New("document is empty")

// RenderError reports a failure to serialize a document. Building the tree itself never fails.
type RenderError struct {
	Template types.TemplateType
	Op       string
	Cause    error
}

func (e *RenderError) Error() string {
	what := "document"
	if e.Template != "" {
		what = e.Template.Slug() + " document"
	}
	return fmt.Sprintf("failed to %s %s: %v", e.Op, what, e.Cause)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

func emptyDocument(op string) error {
	return &RenderError{Op: op, Cause: ErrEmptyDocument}
}
