package errors

// ErrorClassification indicates whether a caller may recover from an error
// locally or must surface it.
type ErrorClassification string

const (
	// ClassificationRecoverable marks best-effort failures that a caller may
	// swallow and replace with a fallback value.
	ClassificationRecoverable ErrorClassification = "RECOVERABLE"

	// ClassificationTerminal marks failures that must propagate to the caller.
	ClassificationTerminal ErrorClassification = "TERMINAL"
)

// IsRecoverable returns true if the classification allows local recovery.
func (c ErrorClassification) IsRecoverable() bool {
	return c == ClassificationRecoverable
}

// defaultClassifications maps error codes to their default classification.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	// Short-string decoding is a formatting convenience
	CodeDecodeFailed: ClassificationRecoverable,

	CodeInvalidInput:           ClassificationTerminal,
	CodeMissingAddress:         ClassificationTerminal,
	CodePatternInvalid:         ClassificationTerminal,
	CodeCoercionFailed:         ClassificationTerminal,
	CodeInvalidMatcher:         ClassificationTerminal,
	CodeNotFound:               ClassificationTerminal,
	CodeAlreadyExists:          ClassificationTerminal,
	CodeMissingAsset:           ClassificationTerminal,
	CodeLoadFailed:             ClassificationTerminal,
	CodeSchemaBuildFailed:      ClassificationTerminal,
	CodeSchemaValidationFailed: ClassificationTerminal,
	CodeSchemaDecodeFailed:     ClassificationTerminal,
	CodeInvalidConfiguration:   ClassificationTerminal,
	CodeInternal:               ClassificationTerminal,
	CodeUnknown:                ClassificationTerminal,
}

// getDefaultClassification returns the default classification for an error code.
// Unmapped codes are terminal.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationTerminal
}
