package resolver

import (
	"slices"

	"github.com/jmgilman/dappreg/address"
)

// Call is an invocation attempted as part of the failing transaction.
type Call struct {
	ContractAddress string   `json:"contractAddress" yaml:"contractAddress"`
	Entrypoint      string   `json:"entrypoint" yaml:"entrypoint"`
	Calldata        []string `json:"calldata,omitempty" yaml:"calldata,omitempty"`
}

// Context accumulates what is known about the failing contract. Result is
// nil until a stage resolves the trace.
type Context struct {
	Protocol    string
	ContractTag string
	Interfaces  []string
	Address     string
	Result      *string
}

// Resolved reports whether a stage has produced a result.
func (c Context) Resolved() bool {
	return c.Result != nil
}

// Params is the value threaded through the stages.
type Params struct {
	ErrorMessage string
	Calls        []Call
	Context      Context
}

// WithResult returns a copy of p carrying result. The receiver is not
// modified.
func (p Params) WithResult(result string) Params {
	out := p
	out.Calls = slices.Clone(p.Calls)
	out.Context.Interfaces = slices.Clone(p.Context.Interfaces)
	out.Context.Result = &result
	return out
}

// Entrypoints returns the entrypoint of every call, in order.
func (p Params) Entrypoints() []string {
	entrypoints := make([]string, 0, len(p.Calls))
	for _, c := range p.Calls {
		entrypoints = append(entrypoints, c.Entrypoint)
	}
	return entrypoints
}

// FilterCalls returns the calls addressed to addr. Addresses are compared in
// normalized form.
func FilterCalls(calls []Call, addr string) []Call {
	target := address.Normalize(addr)

	var filtered []Call
	for _, c := range calls {
		if address.Normalize(c.ContractAddress) == target {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// Response is the outcome of resolving a trace.
type Response struct {
	// Result is the resolved message, or the raw trace when nothing matched.
	Result string `json:"result" yaml:"result"`

	// Protocol is the id of the project owning the failing contract.
	Protocol string `json:"protocol,omitempty" yaml:"protocol,omitempty"`

	// Interfaces lists the interfaces the failing contract implements.
	Interfaces []string `json:"interfaces,omitempty" yaml:"interfaces,omitempty"`

	// ContractTag is the project-local tag of the failing contract.
	ContractTag string `json:"contractTag,omitempty" yaml:"contractTag,omitempty"`

	// Address is the normalized address of the failing contract.
	Address string `json:"address" yaml:"address"`
}
