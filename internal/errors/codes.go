package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodePermissionDenied   Code = "PERMISSION_DENIED"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeUnauthenticated    Code = "UNAUTHENTICATED"

	CodeMalformedResponse     Code = "MALFORMED_RESPONSE"
	CodeImageGenerationFailed Code = "IMAGE_GENERATION_FAILED"
	CodeImageEditFailed       Code = "IMAGE_EDIT_FAILED"
	CodeTranslationMismatch   Code = "TRANSLATION_MISMATCH"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// IsTransport reports whether the code describes a failure of the remote
// call itself rather than of the data it returned.
func (c Code) IsTransport() bool {
	switch c {
	case CodeCanceled, CodeDeadlineExceeded, CodePermissionDenied,
		CodeResourceExhausted, CodeUnavailable, CodeUnauthenticated:
		return true
	default:
		return false
	}
}
