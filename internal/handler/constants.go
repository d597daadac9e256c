package handler

// Generic HTTP error messages for client responses.
const (
	ErrMsgContainerNotFound = "Container not found"
	ErrMsgUnknownFormat     = "Unknown format %q, expected json or text"
)

// Query parameters and their values
const (
	QueryParamFormat = "format"
	FormatJSON       = "json"
	FormatText       = "text"
)

// URL parameters
const (
	URLParamName = "name"
)

// Container kinds reported in views
const (
	KindStandard = "standard"
	KindMulti    = "multi"
)

// Content types
const (
	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain; charset=utf-8"
)

// Log messages
const (
	LogMsgEncodeFailed = "Failed to encode JSON response"
	LogMsgWriteFailed  = "Failed to write response buffer"
)
