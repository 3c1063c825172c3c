package apperror

// Short failure categories as they appear in the "error" field of the
// wire-level error body.
const (
	// Client errors (4xx)
	CodeInvalidArgument  = "InvalidArgument"
	CodeInvalidOperation = "InvalidOperation"
	CodeUnauthorized     = "Unauthorized"
	CodeNotFound         = "NotFound"
	CodeDuplicateEmail   = "DuplicateEmail"
	CodeTimeout          = "Timeout"

	// Server errors (5xx)
	CodeInternalError  = "InternalError"
	CodeNotImplemented = "NotImplemented"
)
