package schema

import (
	"context"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	cuejson "cuelang.org/go/encoding/json"
)

// ValidationIssue represents a single validation error with structured information.
type ValidationIssue struct {
	// Path is the field path where the error occurred (e.g., ["contracts", "0", "tag"]).
	Path []string

	// Message is the human-readable error message.
	Message string

	// Position is the source position if available.
	Position token.Pos
}

func (i ValidationIssue) String() string {
	location := formatFieldPath(strings.Join(i.Path, "."))
	if i.Position.IsValid() {
		location = fmt.Sprintf("%s (%s)", location, i.Position)
	}
	return fmt.Sprintf("%s: %s", location, i.Message)
}

// Validate checks the JSON document data against the definition for kind and
// returns the unified value. The filename is only used in error positions.
//
// Returns CodeSchemaBuildFailed if data is not valid JSON.
// Returns CodeSchemaValidationFailed if data does not satisfy the definition.
func (v *Validator) Validate(ctx context.Context, kind Kind, filename string, data []byte) (cue.Value, error) {
	if err := ctx.Err(); err != nil {
		return cue.Value{}, wrapValidationErrorWithContext(err, "context cancelled", makeContext("filename", filename))
	}

	expr, err := cuejson.Extract(filename, data)
	if err != nil {
		return cue.Value{}, wrapBuildErrorWithContext(
			err,
			"failed to parse JSON document",
			makeContext("filename", filename, "source_size", len(data)),
		)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	def, err := v.definition(kind)
	if err != nil {
		return cue.Value{}, err
	}

	doc := v.cueCtx.BuildExpr(expr)
	if err := doc.Err(); err != nil {
		return cue.Value{}, wrapBuildErrorWithContext(
			err,
			"failed to build JSON document",
			makeContext("filename", filename),
		)
	}

	unified := def.Unify(doc)

	// Validate reports every error at once, unlike Err.
	if err := unified.Validate(cue.Concrete(true), cue.Final(), cue.All()); err != nil {
		return cue.Value{}, wrapValidationErrorWithContext(
			err,
			"document does not match schema",
			makeContext(
				"filename", filename,
				"kind", string(kind),
				"details", cueerrors.Details(err, nil),
				"issues", extractValidationIssues(err),
			),
		)
	}

	return unified, nil
}

// Issues returns the validation issues attached to err, if any.
func Issues(err error) []ValidationIssue {
	pe := asPlatformError(err)
	if pe == nil {
		return nil
	}
	issues, _ := pe.Context()["issues"].([]ValidationIssue)
	return issues
}

// extractValidationIssues extracts structured validation issues from a CUE error.
func extractValidationIssues(err error) []ValidationIssue {
	if err == nil {
		return nil
	}

	var issues []ValidationIssue
	for _, e := range cueerrors.Errors(err) {
		fmtStr, args := e.Msg()

		var pos token.Pos
		if positions := e.InputPositions(); len(positions) > 0 {
			pos = positions[0]
		}

		issues = append(issues, ValidationIssue{
			Path:     e.Path(),
			Message:  fmt.Sprintf(fmtStr, args...),
			Position: pos,
		})
	}

	return issues
}
