package registry

import (
	"log/slog"
	"slices"
	"sort"

	"github.com/jmgilman/dappreg/address"
	"github.com/jmgilman/dappreg/errors"
	"github.com/jmgilman/dappreg/matcher"
)

// Tables holds the matcher tables of every scope.
type Tables struct {
	// Projects maps a project id to its tables keyed by contract tag.
	Projects map[string]map[string]matcher.Table

	// Interfaces maps an interface name to its table.
	Interfaces map[string]matcher.Table

	// Default is the global table. Nil when no global table exists.
	Default matcher.Table
}

type contractRef struct {
	project  string
	contract int
}

// Registry is a read-only index of projects, contracts, and matcher tables.
// It is safe for concurrent use.
type Registry struct {
	projects  map[string]Project
	contracts map[string]contractRef
	tables    Tables
	logger    *slog.Logger
}

// New builds a Registry from projects and tables.
//
// Returns CodeAlreadyExists if two projects share an id and
// CodeInvalidMatcher if any table holds an invalid matcher. When the same
// address is listed more than once the last listing wins.
func New(projects []Project, tables Tables, opts ...Option) (*Registry, error) {
	o := buildOptions(opts)

	r := &Registry{
		projects:  make(map[string]Project, len(projects)),
		contracts: make(map[string]contractRef),
		tables:    tables,
		logger:    o.Logger,
	}

	for _, p := range projects {
		id := p.ID()
		if id == "" {
			return nil, errors.New(errors.CodeInvalidInput, "project has no id")
		}
		if _, exists := r.projects[id]; exists {
			return nil, errors.WithContext(
				errors.Newf(errors.CodeAlreadyExists, "duplicate project id %q", id),
				"project", id,
			)
		}
		r.projects[id] = p

		for i, c := range p.Metadata.Contracts {
			for network, addrs := range c.Addresses {
				for _, addr := range addrs {
					key := address.Normalize(addr)
					if prev, ok := r.contracts[key]; ok && prev.project != id {
						r.logger.Warn("contract address registered by more than one project",
							"address", key,
							"network", string(network),
							"previous", prev.project,
							"project", id,
						)
					}
					r.contracts[key] = contractRef{project: id, contract: i}
				}
			}
		}
	}

	if err := r.validateTables(); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Registry) validateTables() error {
	for _, id := range sortedKeys(r.tables.Projects) {
		if _, ok := r.projects[id]; !ok {
			r.logger.Warn("matcher tables reference an unknown project", "project", id)
		}
		for _, tag := range sortedKeys(r.tables.Projects[id]) {
			if err := r.tables.Projects[id][tag].Validate(); err != nil {
				return errors.WithContext(err, "scope", matcher.ProjectScope(id, tag).String())
			}
		}
	}

	for _, name := range sortedKeys(r.tables.Interfaces) {
		if err := r.tables.Interfaces[name].Validate(); err != nil {
			return errors.WithContext(err, "scope", matcher.InterfaceScope(name).String())
		}
	}

	if r.tables.Default != nil {
		if err := r.tables.Default.Validate(); err != nil {
			return errors.WithContext(err, "scope", matcher.DefaultScope().String())
		}
	}

	return nil
}

// List returns every project sorted by id.
func (r *Registry) List() []Project {
	ids := sortedKeys(r.projects)
	out := make([]Project, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.projects[id])
	}
	return out
}

// Get returns the project with the given id.
func (r *Registry) Get(id string) (Project, bool) {
	p, ok := r.projects[id]
	return p, ok
}

// ProjectByContractAddress returns the project that deployed the contract
// at addr.
func (r *Registry) ProjectByContractAddress(addr string) (Project, bool) {
	_, p, ok := r.ContractByAddress(addr)
	return p, ok
}

// ContractByAddress returns the contract at addr and its project.
func (r *Registry) ContractByAddress(addr string) (Contract, Project, bool) {
	ref, ok := r.contracts[address.Normalize(addr)]
	if !ok {
		return Contract{}, Project{}, false
	}

	p := r.projects[ref.project]
	return p.Metadata.Contracts[ref.contract], p, true
}

// Identify returns the identity of the contract at addr.
func (r *Registry) Identify(addr string) (Identity, bool) {
	c, p, ok := r.ContractByAddress(addr)
	if !ok {
		return Identity{}, false
	}

	return Identity{
		Protocol:    p.ID(),
		ContractTag: c.Tag,
		Interfaces:  slices.Clone(c.Implements),
	}, true
}

// Table returns the matcher table of scope.
func (r *Registry) Table(scope matcher.Scope) (matcher.Table, bool) {
	switch {
	case scope.Project != "":
		table, ok := r.tables.Projects[scope.Project][scope.Tag]
		return table, ok
	case scope.Interface != "":
		table, ok := r.tables.Interfaces[scope.Interface]
		return table, ok
	default:
		return r.tables.Default, r.tables.Default != nil
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
