package domain

import "errors"

// Domain errors - used across all layers
var (
	// ErrNotFound indicates the requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates the input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates authentication failed or missing
	ErrUnauthorized = errors.New("unauthorized")

	// ErrTokenInvalid indicates the auth token is malformed or invalid
	ErrTokenInvalid = errors.New("token invalid")

	// ErrInvalidMode indicates an unknown decision mode was requested
	ErrInvalidMode = errors.New("invalid decision mode")

	// ErrUnsupportedFileType indicates the file extension is not on the allow-list
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrFileTooLarge indicates the upload exceeds the size ceiling
	ErrFileTooLarge = errors.New("file too large")

	// ErrEmptyDocument indicates no text could be extracted from the upload
	ErrEmptyDocument = errors.New("no text extracted from document")

	// ErrInvalidProvider indicates an unknown AI provider was specified
	ErrInvalidProvider = errors.New("invalid provider")

	// ErrServiceUnavailable indicates an upstream AI service could not be reached
	ErrServiceUnavailable = errors.New("service unavailable")
)
