package schema

import (
	_ "embed"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed dappreg.cue
var source []byte

// Kind names a definition in the embedded schema.
type Kind string

const (
	// KindMetadata validates a project's metadata.json.
	KindMetadata Kind = "#Metadata"

	// KindErrorMatchersMap validates a single matcher table.
	KindErrorMatchersMap Kind = "#ErrorMatchersMap"

	// KindScopedErrors validates a map of named matcher tables.
	KindScopedErrors Kind = "#ScopedErrors"
)

// Source returns the embedded CUE definitions.
func Source() []byte {
	return source
}

// Validator checks repository documents against the embedded definitions.
type Validator struct {
	// CUE contexts are not safe for concurrent use.
	mu     sync.Mutex
	cueCtx *cue.Context
	schema cue.Value
}

// New compiles the embedded definitions.
//
// Returns CodeSchemaBuildFailed if the definitions do not compile.
func New() (*Validator, error) {
	cueCtx := cuecontext.New()

	schema := cueCtx.CompileBytes(source, cue.Filename("dappreg.cue"))
	if err := schema.Err(); err != nil {
		return nil, wrapBuildError(err, "failed to compile embedded schema")
	}

	return &Validator{
		cueCtx: cueCtx,
		schema: schema,
	}, nil
}

// Definition returns the schema value for kind.
//
// Returns CodeSchemaBuildFailed if kind is not defined.
func (v *Validator) Definition(kind Kind) (cue.Value, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.definition(kind)
}

func (v *Validator) definition(kind Kind) (cue.Value, error) {
	def := v.schema.LookupPath(cue.ParsePath(string(kind)))
	if !def.Exists() {
		return cue.Value{}, wrapBuildErrorWithContext(
			errUnknownKind,
			"schema has no such definition",
			makeContext("kind", string(kind)),
		)
	}
	return def, nil
}
