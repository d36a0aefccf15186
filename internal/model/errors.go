package model

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownModel means the (modality, model name) pair is not
	// catalogued. A caller bug, never retried.
	ErrUnknownModel = errors.New("unknown model")
	// ErrNoSelection means Run was called before any successful Select.
	ErrNoSelection = errors.New("no model selected")
	// ErrInputMismatch means the payload modality does not match the
	// selected handler. A caller contract violation.
	ErrInputMismatch = errors.New("input modality mismatch")
)

// InferenceError wraps any failure of a single run: bad or empty input,
// a decode problem or the underlying runtime call going wrong. It is
// always returned as a value at the manager boundary and never corrupts
// manager or registry state.
type InferenceError struct {
	Model    string
	Modality Modality
	Message  string
	Err      error
}

func (e *InferenceError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Model != "" {
		return fmt.Sprintf("inference failed [%s:%s]: %s", e.Modality, e.Model, msg)
	}
	return "inference failed: " + msg
}

func (e *InferenceError) Unwrap() error {
	return e.Err
}

func newInferenceError(d ModelDescriptor, err error, format string, args ...any) *InferenceError {
	return &InferenceError{
		Model:    d.ModelID,
		Modality: d.Modality,
		Message:  fmt.Sprintf(format, args...),
		Err:      err,
	}
}

// IsInference reports whether err is an InferenceError anywhere in its
// chain.
func IsInference(err error) bool {
	var infErr *InferenceError
	return errors.As(err, &infErr)
}
