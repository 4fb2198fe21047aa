package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/jmgilman/dappreg/errors"
)

type outputFormat string

const (
	outputText outputFormat = "text"
	outputJSON outputFormat = "json"
	outputYAML outputFormat = "yaml"
)

// renderer writes command results in the configured format. Text output is
// styled for terminals and degrades to plain text elsewhere.
type renderer struct {
	w      io.Writer
	format outputFormat

	label lipgloss.Style
	muted lipgloss.Style
	title lipgloss.Style
}

func newRenderer(w io.Writer, format string) (*renderer, error) {
	f := outputFormat(strings.ToLower(format))
	switch f {
	case outputText, outputJSON, outputYAML:
	default:
		return nil, errors.WithContext(
			errors.Newf(errors.CodeInvalidConfiguration, "unknown output format %q", format),
			keyOutput, format,
		)
	}

	lr := lipgloss.NewRenderer(w)
	return &renderer{
		w:      w,
		format: f,
		label:  lr.NewStyle().Bold(true),
		muted:  lr.NewStyle().Foreground(lipgloss.Color("240")),
		title:  lr.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
	}, nil
}

// render writes v as JSON or YAML, or calls text for the text format.
func (r *renderer) render(v interface{}, text func() error) error {
	switch r.format {
	case outputJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, errors.CodeInternal, "failed to encode JSON output")
		}
		return nil
	case outputYAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, errors.CodeInternal, "failed to encode YAML output")
		}
		if err := enc.Close(); err != nil {
			return errors.Wrap(err, errors.CodeInternal, "failed to encode YAML output")
		}
		return nil
	default:
		return text()
	}
}

func (r *renderer) heading(s string) {
	fmt.Fprintln(r.w, r.title.Render(s))
}

// field writes "label: value". Empty values are shown as "-".
func (r *renderer) field(label, value string) {
	if value == "" {
		value = r.muted.Render("-")
	}
	fmt.Fprintf(r.w, "%s %s\n", r.label.Render(label+":"), value)
}

func (r *renderer) line(s string) {
	fmt.Fprintln(r.w, s)
}
