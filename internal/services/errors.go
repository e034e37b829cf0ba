package services

import "errors"

var (
	// ErrInvalidInput means a required text or file was missing or empty.
	// Flows reject it before any downstream call is made.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingVariable means a prompt template referenced a placeholder
	// the caller did not provide.
	ErrMissingVariable = errors.New("missing template variable")

	// ErrExtractionFailure means an uploaded document could not be decoded
	// to text.
	ErrExtractionFailure = errors.New("text extraction failed")

	// ErrUnsupportedFileType is a specific extraction failure for file
	// types outside pdf/docx/txt.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrModelUnavailable means the generative backend could not be reached.
	ErrModelUnavailable = errors.New("model backend unavailable")

	// ErrModelError means the backend was reached but reported a failure.
	ErrModelError = errors.New("model backend error")

	// ErrExternalFetch means an upstream data fetch (GitHub) failed.
	ErrExternalFetch = errors.New("external fetch failed")

	// ErrProfileNotFound means the requested GitHub user does not exist.
	ErrProfileNotFound = errors.New("github user not found")

	// ErrRenderFailed means PDF rendering did not produce a document.
	ErrRenderFailed = errors.New("pdf rendering failed")
)
