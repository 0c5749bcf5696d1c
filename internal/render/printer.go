// Package render prints a filter result to the terminal.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"sigs.k8s.io/yaml"

	"secretsInspector/internal/models"
	"secretsInspector/internal/secrets"
)

// Output formats
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Formats lists every supported output format
var Formats = []string{FormatText, FormatTable, FormatJSON, FormatYAML}

// IsValidFormat reports whether format is one of Formats
func IsValidFormat(format string) bool {
	return slices.Contains(Formats, format)
}

// Renderer prints a filter result
type Renderer interface {
	Render(result models.FilterResult) error
}

// New returns the renderer for format writing to out
func New(format string, out io.Writer, noColor bool) (Renderer, error) {
	switch format {
	case FormatText:
		return NewTextRenderer(out, noColor), nil
	case FormatTable:
		return &TableRenderer{Out: out}, nil
	case FormatJSON:
		return &JSONRenderer{Out: out}, nil
	case FormatYAML:
		return &YAMLRenderer{Out: out}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

func nothingFound(out io.Writer, namespace string) error {
	_, err := fmt.Fprintf(out, "No secrets found in namespace %q\n", namespace)
	return err
}

// TextRenderer prints one line per secret: the name followed by its type
type TextRenderer struct {
	Out  io.Writer
	name *color.Color
	kind *color.Color
}

func NewTextRenderer(out io.Writer, noColor bool) *TextRenderer {
	r := &TextRenderer{
		Out:  out,
		name: color.New(color.FgHiBlue),
		kind: color.New(color.FgHiGreen),
	}
	if noColor {
		r.name.DisableColor()
		r.kind.DisableColor()
	}
	return r
}

func (r *TextRenderer) Render(result models.FilterResult) error {
	if result.Empty() {
		return nothingFound(r.Out, result.Namespace)
	}
	for _, s := range result.Secrets {
		if _, err := fmt.Fprintf(r.Out, "%s  (%s)\n", r.name.Sprint(s.Name), r.kind.Sprint(secrets.DescribeKind(s.Kind))); err != nil {
			return err
		}
	}
	return nil
}

// TableRenderer prints the secrets as a bordered table
type TableRenderer struct {
	Out io.Writer
}

func (r *TableRenderer) Render(result models.FilterResult) error {
	if result.Empty() {
		return nothingFound(r.Out, result.Namespace)
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Title.Align = text.AlignCenter
	tw.Style().Format.Header = text.FormatDefault

	tw.SetTitle(fmt.Sprintf("Secrets in %s", result.Namespace))
	tw.AppendHeader(table.Row{"Name", "Type", "Description"})
	for _, s := range result.Secrets {
		tw.AppendRow(table.Row{s.Name, s.Kind, secrets.DescribeKind(s.Kind)})
	}

	_, err := fmt.Fprintln(r.Out, tw.Render())
	return err
}

// JSONRenderer prints the result as indented JSON. An empty result is printed
// as an empty list so the output stays machine readable.
type JSONRenderer struct {
	Out io.Writer
}

func (r *JSONRenderer) Render(result models.FilterResult) error {
	data, err := json.MarshalIndent(normalize(result), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(r.Out, string(data))
	return err
}

// YAMLRenderer prints the result as YAML
type YAMLRenderer struct {
	Out io.Writer
}

func (r *YAMLRenderer) Render(result models.FilterResult) error {
	data, err := yaml.Marshal(normalize(result))
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	_, err = r.Out.Write(data)
	return err
}

// normalize makes an empty result encode as [] rather than null
func normalize(result models.FilterResult) models.FilterResult {
	if result.Secrets == nil {
		result.Secrets = []models.SecretRecord{}
	}
	return result
}
