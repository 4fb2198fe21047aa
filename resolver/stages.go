package resolver

import (
	"github.com/jmgilman/dappreg/matcher"
)

// Stage is one step of the resolution pipeline. A stage returns a new Params
// value and never modifies its input.
type Stage func(Params) (Params, error)

// TableSource supplies matcher tables by scope.
type TableSource interface {
	Table(scope matcher.Scope) (matcher.Table, bool)
}

// Combine chains stages into one. Once a stage sets Context.Result the
// remaining stages are skipped. The first error stops the chain.
func Combine(stages ...Stage) Stage {
	return func(p Params) (Params, error) {
		for _, stage := range stages {
			if p.Context.Resolved() {
				return p, nil
			}

			next, err := stage(p)
			if err != nil {
				return p, err
			}
			p = next
		}
		return p, nil
	}
}

// DefaultStages returns the project, interface, default, and fallback stages
// in that order.
func DefaultStages(tables TableSource) []Stage {
	return []Stage{
		ProjectStage(tables),
		InterfaceStage(tables),
		DefaultStage(tables),
		FallbackStage(),
	}
}

// ProjectStage resolves against the table of the failing project contract.
// It is skipped unless both the protocol and the contract tag are known.
func ProjectStage(tables TableSource) Stage {
	return func(p Params) (Params, error) {
		if p.Context.Protocol == "" || p.Context.ContractTag == "" {
			return p, nil
		}

		table, ok := tables.Table(matcher.ProjectScope(p.Context.Protocol, p.Context.ContractTag))
		if !ok {
			return p, nil
		}

		return resolveTable(p, table, p.Entrypoints())
	}
}

// InterfaceStage resolves against the tables of the implemented interfaces
// in list order. The first interface yielding a message wins and interfaces
// without a table are skipped.
func InterfaceStage(tables TableSource) Stage {
	return func(p Params) (Params, error) {
		if len(p.Context.Interfaces) == 0 {
			return p, nil
		}

		entrypoints := p.Entrypoints()
		for _, name := range p.Context.Interfaces {
			table, ok := tables.Table(matcher.InterfaceScope(name))
			if !ok {
				continue
			}

			next, err := resolveTable(p, table, entrypoints)
			if err != nil || next.Context.Resolved() {
				return next, err
			}
		}

		return p, nil
	}
}

// DefaultStage resolves against the global default table without entrypoint
// context.
func DefaultStage(tables TableSource) Stage {
	return func(p Params) (Params, error) {
		table, ok := tables.Table(matcher.DefaultScope())
		if !ok {
			return p, nil
		}

		return resolveTable(p, table, nil)
	}
}

// FallbackStage resolves to the raw trace.
func FallbackStage() Stage {
	return func(p Params) (Params, error) {
		return p.WithResult(p.ErrorMessage), nil
	}
}

func resolveTable(p Params, table matcher.Table, entrypoints []string) (Params, error) {
	msg, ok, err := matcher.ProcessError(p.ErrorMessage, table, entrypoints...)
	if err != nil {
		return p, err
	}
	if !ok {
		return p, nil
	}
	return p.WithResult(msg), nil
}
