// Package errors provides structured error handling for dappreg.
//
// Every failure raised by the resolver, the registry loader and the schema
// validator is a PlatformError carrying an ErrorCode, a classification and
// optional context metadata. The package stays compatible with the standard
// library (errors.Is, errors.As, errors.Unwrap).
//
// # Classification
//
// Classification tells a caller whether a failure may be handled locally:
//
//   - ClassificationRecoverable: best-effort work failed and a fallback value
//     is acceptable. Only CodeDecodeFailed is recoverable by default; the
//     string coercion path swallows it and shows the raw value instead.
//   - ClassificationTerminal: the failure must reach the caller. Malformed
//     resolver input (CodeInvalidInput, CodeMissingAddress), broken matcher
//     data (CodePatternInvalid, CodeInvalidMatcher) and typed coercion
//     failures (CodeCoercionFailed) are terminal.
//
// Wrapping keeps the classification of the innermost PlatformError.
//
// # Quick Start
//
//	err := errors.New(errors.CodeMissingAddress, "error is missing a contract address")
//
//	if _, err := fsys.ReadFile(path); err != nil {
//	    return errors.Wrap(err, errors.CodeLoadFailed, "failed to read metadata")
//	}
//
//	err = errors.WithContext(err, "project", "myswap")
//
//	if errors.IsRecoverable(err) {
//	    // fall back
//	}
//
//	resp := errors.ToJSON(err) // flat form for CLI output
package errors
