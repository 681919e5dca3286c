// Package apperr defines the sentinel errors shared across content sources and handlers.
package apperr

import "errors"

var (
	// ErrNotFound means an expected local file or record is absent.
	ErrNotFound = errors.New("not found")
	// ErrRemoteUnavailable covers network, auth and query failures against the CMS.
	ErrRemoteUnavailable = errors.New("remote unavailable")
	// ErrMalformedContent means a file or document was found but could not be parsed.
	ErrMalformedContent = errors.New("malformed content")
)
