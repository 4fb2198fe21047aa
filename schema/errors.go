package schema

import (
	stderrors "errors"
	"fmt"

	"github.com/jmgilman/dappreg/errors"
)

var errUnknownKind = stderrors.New("unknown schema kind")

// wrapBuildError wraps an error with CodeSchemaBuildFailed.
// Used when the embedded definitions or an input document cannot be compiled.
func wrapBuildError(err error, message string) errors.PlatformError {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, errors.CodeSchemaBuildFailed, message)
}

// wrapBuildErrorWithContext wraps an error with CodeSchemaBuildFailed and attaches context metadata.
func wrapBuildErrorWithContext(err error, message string, ctx map[string]interface{}) errors.PlatformError {
	if err == nil {
		return nil
	}
	return errors.WrapWithContext(err, errors.CodeSchemaBuildFailed, message, ctx)
}

// wrapValidationErrorWithContext wraps an error with CodeSchemaValidationFailed and attaches context metadata.
func wrapValidationErrorWithContext(err error, message string, ctx map[string]interface{}) errors.PlatformError {
	if err == nil {
		return nil
	}
	return errors.WrapWithContext(err, errors.CodeSchemaValidationFailed, message, ctx)
}

// wrapDecodeErrorWithContext wraps an error with CodeSchemaDecodeFailed and attaches context metadata.
func wrapDecodeErrorWithContext(err error, message string, ctx map[string]interface{}) errors.PlatformError {
	if err == nil {
		return nil
	}
	return errors.WrapWithContext(err, errors.CodeSchemaDecodeFailed, message, ctx)
}

func asPlatformError(err error) errors.PlatformError {
	var pe errors.PlatformError
	if errors.As(err, &pe) {
		return pe
	}
	return nil
}

// makeContext is a convenience helper for creating context maps inline.
// Example: makeContext("filename", "metadata.json", "kind", "#Metadata").
func makeContext(kvPairs ...interface{}) map[string]interface{} {
	if len(kvPairs) == 0 {
		return nil
	}

	ctx := make(map[string]interface{})
	for i := 0; i < len(kvPairs)-1; i += 2 {
		key, ok := kvPairs[i].(string)
		if !ok {
			continue
		}
		ctx[key] = kvPairs[i+1]
	}

	if len(ctx) == 0 {
		return nil
	}
	return ctx
}

// formatFieldPath formats a CUE field path for error messages.
func formatFieldPath(path string) string {
	if path == "" {
		return "<root>"
	}
	return fmt.Sprintf("field %s", path)
}
