package matcher

import (
	"fmt"

	"github.com/jmgilman/dappreg/coerce"
)

// DefaultKey is the reserved Table key holding the entrypoint-independent
// matchers.
const DefaultKey = "default"

// Extractor captures one value from a raw trace and coerces it to Type.
type Extractor struct {
	// Matcher is a pattern descriptor whose first group captures the value.
	Matcher string `json:"matcher"`

	// Type is the declared type of the value. Empty means string.
	Type coerce.Type `json:"type,omitempty"`
}

// ErrorMatcher is a single resolution rule.
type ErrorMatcher struct {
	// Matcher is the pattern descriptor tested against the raw trace.
	Matcher string `json:"matcher"`

	// Message is the template rendered on a match.
	Message string `json:"message"`

	// Extractors fill the placeholders {{1}}..{{n}} of Message, in order.
	Extractors []Extractor `json:"extractors,omitempty"`
}

// Table maps entrypoint names to ordered matcher lists. The DefaultKey list
// applies regardless of entrypoint.
type Table map[string][]ErrorMatcher

// Default returns the entrypoint-independent matchers.
func (t Table) Default() []ErrorMatcher {
	return t[DefaultKey]
}

// HasEntrypoints reports whether t holds any list besides the default one.
func (t Table) HasEntrypoints() bool {
	for key := range t {
		if key != DefaultKey {
			return true
		}
	}
	return false
}

// Scope identifies the resolution level of a Table: a project contract, an
// interface, or the global default.
type Scope struct {
	Project   string
	Tag       string
	Interface string
}

// ProjectScope returns the scope of the contract tagged tag in project.
func ProjectScope(project, tag string) Scope {
	return Scope{Project: project, Tag: tag}
}

// InterfaceScope returns the scope of an interface.
func InterfaceScope(name string) Scope {
	return Scope{Interface: name}
}

// DefaultScope returns the global scope.
func DefaultScope() Scope {
	return Scope{}
}

// IsDefault reports whether s is the global scope.
func (s Scope) IsDefault() bool {
	return s == Scope{}
}

func (s Scope) String() string {
	switch {
	case s.Project != "":
		return fmt.Sprintf("project:%s/%s", s.Project, s.Tag)
	case s.Interface != "":
		return "interface:" + s.Interface
	default:
		return DefaultKey
	}
}
