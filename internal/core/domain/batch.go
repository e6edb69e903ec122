package domain

import (
	"slices"
	"strings"
)

// BatchError bundles the failures of one batch of independently run pipelines,
// in submission order.
type BatchError struct {
	errs []error
}

// NewBatchError returns a BatchError for the non-nil errors in errs, or nil
// when there are none.
func NewBatchError(errs []error) error {
	var failed []error
	for _, err := range errs {
		if err != nil {
			failed = append(failed, err)
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return &BatchError{errs: failed}
}

// Errors returns a copy of the underlying errors.
func (e *BatchError) Errors() []error {
	return slices.Clone(e.errs)
}

// Error joins the messages of the underlying errors, one per line.
func (e *BatchError) Error() string {
	msgs := make([]string, len(e.errs))
	for i, err := range e.errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

// Unwrap exposes the underlying errors to errors.Is and errors.As.
func (e *BatchError) Unwrap() []error {
	return e.errs
}

// Is matches ErrPipelineFailed.
func (e *BatchError) Is(target error) bool {
	return target == ErrPipelineFailed
}
