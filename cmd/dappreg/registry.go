package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"github.com/jmgilman/dappreg/address"
	"github.com/jmgilman/dappreg/errors"
	"github.com/jmgilman/dappreg/registry"
	"github.com/jmgilman/dappreg/schema"
)

type validateResult struct {
	Valid     bool                  `json:"valid" yaml:"valid"`
	Projects  int                   `json:"projects" yaml:"projects"`
	Contracts int                   `json:"contracts" yaml:"contracts"`
	Error     *errors.ErrorResponse `json:"error,omitempty" yaml:"error,omitempty"`
	Issues    []string              `json:"issues,omitempty" yaml:"issues,omitempty"`
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check every document and asset in the repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := a.renderer()

			reg, err := a.loadRegistry(cmd.Context())
			if err != nil {
				result := validateResult{Error: errors.ToJSON(err)}
				delete(result.Error.Context, "issues")
				for _, issue := range schema.Issues(err) {
					result.Issues = append(result.Issues, issue.String())
				}
				if rerr := r.render(result, func() error {
					r.heading("Repository is invalid")
					r.field("Error", result.Error.Message)
					for _, issue := range result.Issues {
						r.line("  " + issue)
					}
					return nil
				}); rerr != nil {
					return rerr
				}
				return err
			}

			result := validateResult{Valid: true}
			for _, p := range reg.List() {
				result.Projects++
				result.Contracts += len(p.Metadata.Contracts)
			}

			return r.render(result, func() error {
				r.heading("Repository is valid")
				r.field("Projects", fmt.Sprint(result.Projects))
				r.field("Contracts", fmt.Sprint(result.Contracts))
				return nil
			})
		},
	}
}

type projectSummary struct {
	ID          string              `json:"id" yaml:"id"`
	DisplayName string              `json:"displayName" yaml:"displayName"`
	Categories  []registry.Category `json:"categories" yaml:"categories"`
	Contracts   int                 `json:"contracts" yaml:"contracts"`
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [pattern]",
		Short: "List registered projects",
		Long: `List registered projects sorted by id.

An optional glob pattern such as "my*" or "{aspect,myswap}" restricts the list
to matching project ids.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := "*"
			if len(args) == 1 {
				pattern = args[0]
			}
			g, err := glob.Compile(pattern)
			if err != nil {
				return errors.WrapWithContext(err, errors.CodeInvalidInput, "invalid project pattern",
					map[string]interface{}{"pattern": pattern})
			}

			reg, err := a.loadRegistry(cmd.Context())
			if err != nil {
				return err
			}

			projects := reg.List()
			summaries := make([]projectSummary, 0, len(projects))
			for _, p := range projects {
				if !g.Match(p.ID()) {
					continue
				}
				summaries = append(summaries, projectSummary{
					ID:          p.ID(),
					DisplayName: p.Metadata.DisplayName,
					Categories:  p.Metadata.Categories,
					Contracts:   len(p.Metadata.Contracts),
				})
			}

			r := a.renderer()
			return r.render(summaries, func() error {
				for _, s := range summaries {
					r.line(fmt.Sprintf("%s  %s  %s",
						r.label.Render(s.ID),
						s.DisplayName,
						r.muted.Render(joinCategories(s.Categories)),
					))
				}
				return nil
			})
		},
	}
}

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.loadRegistry(cmd.Context())
			if err != nil {
				return err
			}

			p, ok := reg.Get(args[0])
			if !ok {
				return errors.WithContext(
					errors.Newf(errors.CodeNotFound, "project %q not found", args[0]),
					"project", args[0],
				)
			}

			r := a.renderer()
			return r.render(p, func() error {
				renderProject(r, p)
				return nil
			})
		},
	}
}

type lookupResult struct {
	Address     string   `json:"address" yaml:"address"`
	Project     string   `json:"project" yaml:"project"`
	DisplayName string   `json:"displayName" yaml:"displayName"`
	ContractTag string   `json:"contractTag" yaml:"contractTag"`
	Interfaces  []string `json:"interfaces,omitempty" yaml:"interfaces,omitempty"`
}

func newLookupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <address>",
		Short: "Find the project that deployed a contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := args[0]
			if !address.IsValid(addr) {
				return errors.WithContext(
					errors.New(errors.CodeInvalidInput, "invalid contract address"),
					"address", addr,
				)
			}

			reg, err := a.loadRegistry(cmd.Context())
			if err != nil {
				return err
			}

			c, p, ok := reg.ContractByAddress(addr)
			if !ok {
				return errors.WithContext(
					errors.New(errors.CodeNotFound, "no project deploys this contract"),
					"address", address.Normalize(addr),
				)
			}

			result := lookupResult{
				Address:     address.Normalize(addr),
				Project:     p.ID(),
				DisplayName: p.Metadata.DisplayName,
				ContractTag: c.Tag,
				Interfaces:  c.Implements,
			}

			r := a.renderer()
			return r.render(result, func() error {
				r.field("Project", result.Project)
				r.field("Name", result.DisplayName)
				r.field("Contract", result.ContractTag)
				r.field("Interfaces", strings.Join(result.Interfaces, ", "))
				return nil
			})
		},
	}
}

func renderProject(r *renderer, p registry.Project) {
	m := p.Metadata
	r.heading(m.DisplayName)
	r.field("ID", m.ID)
	r.field("Description", m.Description)
	r.field("Categories", joinCategories(m.Categories))
	r.field("Icon", p.Icon)
	r.field("Cover", p.Cover)

	if m.Host.URL != "" {
		r.field("Host", m.Host.URL)
	} else {
		for _, network := range sortedNetworks(m.Host.ByNetwork) {
			r.field("Host ("+string(network)+")", m.Host.ByNetwork[network])
		}
	}

	for _, c := range m.Contracts {
		r.line("")
		r.field("Contract", c.Tag)
		if len(c.Implements) > 0 {
			r.field("Implements", strings.Join(c.Implements, ", "))
		}
		for _, network := range sortedNetworks(c.Addresses) {
			for _, addr := range c.Addresses[network] {
				r.line(fmt.Sprintf("  %s %s", r.muted.Render(string(network)), addr))
			}
		}
	}
}

func joinCategories(categories []registry.Category) string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

func sortedNetworks[V any](m map[registry.Network]V) []registry.Network {
	networks := make([]registry.Network, 0, len(m))
	for n := range m {
		networks = append(networks, n)
	}
	sort.Slice(networks, func(i, j int) bool { return networks[i] < networks[j] })
	return networks
}
