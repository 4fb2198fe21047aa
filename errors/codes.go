// Package errors provides the structured error types used across dappreg.
// It extends Go's standard error handling with error codes, recoverability
// classification, context preservation, and JSON serialization.
package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Resolution input errors.

	// CodeInvalidInput indicates the raw error handed to the resolver carries no message.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeMissingAddress indicates no "Error in the called contract" frame was found.
	CodeMissingAddress ErrorCode = "MISSING_ADDRESS"

	// Matching errors.

	// CodePatternInvalid indicates a pattern descriptor could not be compiled.
	CodePatternInvalid ErrorCode = "PATTERN_INVALID"

	// CodeCoercionFailed indicates an extracted value could not be coerced to its declared type.
	CodeCoercionFailed ErrorCode = "COERCION_FAILED"

	// CodeDecodeFailed indicates a value is not a decodable short string.
	CodeDecodeFailed ErrorCode = "DECODE_FAILED"

	// CodeInvalidMatcher indicates a matcher whose placeholders do not line up with its extractors.
	CodeInvalidMatcher ErrorCode = "INVALID_MATCHER"

	// Registry errors.

	// CodeNotFound indicates a requested project or document does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates a project id was registered twice.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CodeMissingAsset indicates a project is missing its icon or cover file.
	CodeMissingAsset ErrorCode = "MISSING_ASSET"

	// CodeLoadFailed indicates a repository file could not be read.
	CodeLoadFailed ErrorCode = "LOAD_FAILED"

	// Schema errors.

	// CodeSchemaBuildFailed indicates a schema or document could not be compiled.
	CodeSchemaBuildFailed ErrorCode = "SCHEMA_BUILD_FAILED"

	// CodeSchemaValidationFailed indicates a document failed schema validation.
	CodeSchemaValidationFailed ErrorCode = "SCHEMA_VALIDATION_FAILED"

	// CodeSchemaDecodeFailed indicates a validated document could not be decoded into Go types.
	CodeSchemaDecodeFailed ErrorCode = "SCHEMA_DECODE_FAILED"

	// Configuration errors.

	// CodeInvalidConfiguration indicates a configuration error prevents the operation.
	CodeInvalidConfiguration ErrorCode = "INVALID_CONFIGURATION"

	// System errors.

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
