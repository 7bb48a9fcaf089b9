package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailTaken is returned when registering with an email that already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned for both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidFileSize is returned when an upload is empty or over the limit.
	ErrInvalidFileSize = errors.New("invalid file size")
	// ErrInvalidFileType is returned when the sniffed bytes are not an allowed image.
	ErrInvalidFileType = errors.New("invalid file type, only JPG and PNG allowed")
	// ErrStorageWrite is returned when persisting an upload or a row fails.
	ErrStorageWrite = errors.New("failed to save uploaded file")
)

// ErrorResponse is the single-line error body sent to clients.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MapErrorToHTTP maps domain errors to a status code and client-safe body.
// Anything unrecognised is reported as a generic 500 so driver and filesystem
// detail never leaks to the client.
func MapErrorToHTTP(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, ErrEmailTaken):
		return http.StatusConflict, ErrorResponse{Error: "Email already registered."}
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized, ErrorResponse{Error: "Invalid credentials"}
	case errors.Is(err, ErrInvalidFileSize):
		return http.StatusBadRequest, ErrorResponse{Error: "Invalid file size."}
	case errors.Is(err, ErrInvalidFileType):
		return http.StatusBadRequest, ErrorResponse{Error: "Invalid file type. Only JPG and PNG allowed."}
	case errors.Is(err, ErrStorageWrite):
		return http.StatusInternalServerError, ErrorResponse{Error: "Failed to save uploaded file."}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: "Internal server error."}
	}
}
