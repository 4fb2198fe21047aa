package resolver

import (
	"log/slog"

	"github.com/jmgilman/dappreg/address"
	"github.com/jmgilman/dappreg/errors"
	"github.com/jmgilman/dappreg/registry"
)

// Registry identifies contracts and supplies matcher tables.
type Registry interface {
	TableSource

	// Identify returns the project identity of the contract at a normalized
	// address.
	Identify(addr string) (registry.Identity, bool)
}

// Resolver resolves raw traces against a Registry.
type Resolver struct {
	registry Registry
	pipeline Stage
	logger   *slog.Logger
}

// New creates a Resolver backed by reg.
func New(reg Registry, opts ...Option) *Resolver {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	if len(o.Stages) == 0 {
		o.Stages = DefaultStages(reg)
	}

	return &Resolver{
		registry: reg,
		pipeline: Combine(o.Stages...),
		logger:   o.Logger,
	}
}

// Format resolves the message of err.
func (r *Resolver) Format(err error, calls ...Call) (*Response, error) {
	if err == nil {
		return nil, errors.New(errors.CodeInvalidInput, "invalid error message")
	}
	return r.FormatError(err.Error(), calls...)
}

// FormatError resolves message, a raw failure trace. Calls addressed to
// contracts other than the failing one are ignored.
func (r *Resolver) FormatError(message string, calls ...Call) (*Response, error) {
	if message == "" {
		return nil, errors.New(errors.CodeInvalidInput, "invalid error message")
	}

	addr, ok := address.ExtractTarget(message)
	if !ok {
		return nil, errors.New(errors.CodeMissingAddress, "error is missing a contract address")
	}

	params := Params{
		ErrorMessage: message,
		Calls:        FilterCalls(calls, addr),
		Context:      Context{Address: addr},
	}

	if id, ok := r.registry.Identify(addr); ok {
		params.Context.Protocol = id.Protocol
		params.Context.ContractTag = id.ContractTag
		params.Context.Interfaces = id.Interfaces
	}

	out, err := r.pipeline(params)
	if err != nil {
		r.logger.Debug("contract error resolution failed",
			"address", addr,
			"protocol", params.Context.Protocol,
			"error", err,
		)
		return nil, errors.WithContext(err, "address", addr)
	}

	result := out.ErrorMessage
	if out.Context.Resolved() {
		result = *out.Context.Result
	}

	r.logger.Debug("resolved contract error",
		"address", addr,
		"protocol", out.Context.Protocol,
		"contract_tag", out.Context.ContractTag,
		"calls", len(params.Calls),
		"verbatim", result == message,
	)

	return &Response{
		Result:      result,
		Protocol:    out.Context.Protocol,
		Interfaces:  out.Context.Interfaces,
		ContractTag: out.Context.ContractTag,
		Address:     addr,
	}, nil
}
