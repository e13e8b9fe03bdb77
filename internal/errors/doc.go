// Package errors provides the structured error type used across rpg-oracle.
//
// Every error that leaves an internal package carries a Code so callers can
// tell a transport failure from a malformed payload or a missing image:
//
//	err := errors.MalformedResponse("received malformed data from the Oracle")
//	err := errors.InvalidArgumentf("unknown option: %s", name)
//
// Metadata travels with the error and survives wrapping:
//
//	err := errors.ImageEditFailed("no image data returned").
//	    WithMeta("model", modelName)
//
//	if err := client.ContinueTurn(ctx, chat, text); err != nil {
//	    return errors.Wrap(err, "failed to continue the story")
//	}
//
// Errors coming back from the Gemini SDK are normalised with
// FromTransportError, which reads the gRPC status or HTTP code of the
// failure and keeps the original error as the cause.
//
// # Codes
//
// Transport and request codes:
//   - Canceled, DeadlineExceeded: the caller's context ended
//   - InvalidArgument: bad options or configuration
//   - NotFound: cache miss or unknown resource
//   - PermissionDenied, Unauthenticated: API key problems
//   - ResourceExhausted: quota or rate limit
//   - FailedPrecondition: the game is not in a stage that allows the call
//   - Unavailable: the service could not be reached
//   - Internal: anything else
//
// Oracle codes:
//   - MalformedResponse: a payload arrived but did not decode
//   - ImageGenerationFailed: no portrait came back from a generation call
//   - ImageEditFailed: no image came back from an edit call
//   - TranslationMismatch: item translations did not line up with their inputs
package errors
