/*
Package schema validates and decodes the JSON documents of a project
repository.

# Overview

The repository documents are checked against CUE definitions embedded in the
package (dappreg.cue):

  - #Metadata: a project's metadata.json
  - #ErrorMatchersMap: a matcher table, as in errors-default.json
  - #ScopedErrors: named matcher tables, as in a project's errors.json or
    errors-interfaces.json

JSON input is extracted into a CUE expression with cuelang.org/go/encoding/json
so positions in validation errors refer to the original file. The expression
is unified with the requested definition and validated for concreteness
before it is decoded into Go values.

# Usage

	v, err := schema.New()
	if err != nil {
	    return err
	}

	var table matcher.Table
	if err := v.Decode(ctx, schema.KindErrorMatchersMap, "errors-default.json", data, &table); err != nil {
	    return err
	}

# Error Handling

Failures are returned as PlatformErrors:

  - CodeSchemaBuildFailed: the embedded definitions or the input could not be compiled
  - CodeSchemaValidationFailed: the input does not satisfy the definition
  - CodeSchemaDecodeFailed: a valid value could not be decoded into the target

Validation failures carry an "issues" entry in their context holding a
[]ValidationIssue, one per problem found.

# Thread Safety

A Validator may be shared between goroutines. CUE values derived from its
context are not safe for concurrent mutation, and each call builds its own.
*/
package schema
