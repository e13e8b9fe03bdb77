package errors

import (
	"context"
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// httpCoder is implemented by the API errors the Gemini SDK returns over REST.
type httpCoder interface {
	HTTPCode() int
}

// FromTransportError classifies an error returned by a remote call.
// Errors that already carry a Code pass through untouched; everything else
// is wrapped with a Code derived from its gRPC status or HTTP status, keeping
// the original error as the cause.
func FromTransportError(err error, message string) error {
	if err == nil {
		return nil
	}

	var existing *Error
	if errors.As(err, &existing) {
		return err
	}

	switch {
	case errors.Is(err, context.Canceled):
		return WrapWithCode(err, CodeCanceled, message)
	case errors.Is(err, context.DeadlineExceeded):
		return WrapWithCode(err, CodeDeadlineExceeded, message)
	}

	var hc httpCoder
	if errors.As(err, &hc) && hc.HTTPCode() > 0 {
		return WrapWithCode(err, codeFromHTTPStatus(hc.HTTPCode()), message).
			WithMeta("http_status", hc.HTTPCode())
	}

	if st, ok := status.FromError(err); ok && st.Code() != codes.OK && st.Code() != codes.Unknown {
		return WrapWithCode(err, codeFromGRPC(st.Code()), message).
			WithMeta("grpc_code", st.Code().String())
	}

	return WrapWithCode(err, CodeUnavailable, message)
}

func codeFromHTTPStatus(httpStatus int) Code {
	switch httpStatus {
	case http.StatusBadRequest:
		return CodeInvalidArgument
	case http.StatusUnauthorized:
		return CodeUnauthenticated
	case http.StatusForbidden:
		return CodePermissionDenied
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return CodeDeadlineExceeded
	case http.StatusTooManyRequests:
		return CodeResourceExhausted
	case http.StatusServiceUnavailable, http.StatusBadGateway:
		return CodeUnavailable
	default:
		return CodeInternal
	}
}

func codeFromGRPC(grpcCode codes.Code) Code {
	switch grpcCode {
	case codes.Canceled:
		return CodeCanceled
	case codes.InvalidArgument:
		return CodeInvalidArgument
	case codes.DeadlineExceeded:
		return CodeDeadlineExceeded
	case codes.NotFound:
		return CodeNotFound
	case codes.PermissionDenied:
		return CodePermissionDenied
	case codes.ResourceExhausted:
		return CodeResourceExhausted
	case codes.FailedPrecondition:
		return CodeFailedPrecondition
	case codes.Unauthenticated:
		return CodeUnauthenticated
	case codes.Unavailable:
		return CodeUnavailable
	default:
		return CodeInternal
	}
}
