package errors

import "fmt"

// Wrap wraps an error with a code and message while preserving the original
// error for errors.Is and errors.As.
//
// If err is a PlatformError its classification is kept, so a recoverable
// failure stays recoverable however many times it is wrapped.
//
// Returns nil if err is nil.
//
// Example:
//
//	data, err := fsys.ReadFile(path)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeLoadFailed, "failed to read metadata")
//	}
func Wrap(err error, code ErrorCode, message string) PlatformError {
	return WrapWithContext(err, code, message, nil)
}

// Wrapf wraps an error with a formatted message.
//
// Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) PlatformError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps an error and attaches context metadata in a single
// operation. The context map is copied.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := validator.Validate(ctx, kind, name, data); err != nil {
//	    return errors.WrapWithContext(err, errors.CodeSchemaValidationFailed, "invalid document", map[string]interface{}{
//	        "project": id,
//	        "file":    name,
//	    })
//	}
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) PlatformError {
	if err == nil {
		return nil
	}

	classification := getDefaultClassification(code)
	var platformErr PlatformError
	if As(err, &platformErr) {
		classification = platformErr.Classification()
	}

	return &platformError{
		code:           code,
		classification: classification,
		message:        message,
		context:        copyContext(ctx),
		cause:          err,
	}
}
