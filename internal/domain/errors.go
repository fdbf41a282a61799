package domain

import "errors"

var (
	// ErrNotFound is returned by a DocumentStore when no document backs the identifier.
	// Readers turn it into an absent result.
	ErrNotFound = errors.New("not found")
	// ErrInvalidID is returned when an identifier cannot be resolved to a document location.
	ErrInvalidID = errors.New("invalid identifier")
	// ErrMalformedDocument wraps decode failures of an existing document.
	ErrMalformedDocument = errors.New("malformed document")
	// ErrUnknownSponsorType is returned for a sponsor tier outside the known set.
	ErrUnknownSponsorType = errors.New("unknown sponsor type")
)
