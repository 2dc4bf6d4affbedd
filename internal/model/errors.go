package model

import (
	"errors"
	"fmt"
)

// FallbackErrorMessage is shown when a failed upload carries no usable message.
const FallbackErrorMessage = "Upload failed. Please try again."

// UploadError describes a failed call to the analysis backend.
// StatusCode is zero when the request never produced an HTTP response.
type UploadError struct {
	StatusCode int
	Message    string // "message" field of the error body, empty if absent
	Err        error
}

func (e *UploadError) Error() string {
	switch {
	case e.StatusCode == 0 && e.Err != nil:
		return fmt.Sprintf("upload: %v", e.Err)
	case e.Message != "":
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("HTTP %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// UserMessage converts an upload failure into the text shown to the user:
// the backend's message when it sent one, the generic fallback otherwise.
func UserMessage(err error) string {
	var uploadErr *UploadError
	if errors.As(err, &uploadErr) && uploadErr.Message != "" {
		return uploadErr.Message
	}
	return FallbackErrorMessage
}
