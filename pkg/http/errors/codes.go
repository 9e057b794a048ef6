package errors

// Canonical messages for the error envelope.
const (
	MsgBadRequest       = "Bad request"
	MsgNotFound         = "Resource not found"
	MsgMethodNotAllowed = "Method not allowed"
	MsgUnprocessable    = "Unprocessable entry"
	MsgInternalError    = "Internal server error, please try again later"
)
