package api

import "errors"

var (
	// ErrRequestFailed wraps every non-SUCCESSFUL or undecodable backend
	// response; the ERROR_DESCRIPTION travels in the wrapped message.
	ErrRequestFailed = errors.New("backend request failed")
)
