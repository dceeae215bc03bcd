// Package output renders resolved settings and registered sources for the
// appsettings command.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/appsettings/internal/settings"
)

// Format names an encoding for printed values.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for a format other than json or yaml.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat maps a format name to a Format; "" means JSON.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Write encodes v to w in the given format.
func Write(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("error encoding json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("error encoding yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("error encoding yaml: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}

	return nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// SourcesTable renders the sources as an aligned table, highest precedence
// last.
func SourcesTable(basePath string, sources []settings.Source) string {
	rows := [][]string{{"#", "KIND", "LOCATION", "MODE"}}
	for i, src := range sources {
		rows = append(rows, []string{strconv.Itoa(i + 1), src.Kind.String(), location(src), mode(src)})
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	b.WriteString(faintStyle.Render("base path: "+basePath) + "\n")
	for r, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			style := cellStyle.Width(widths[i] + 2)
			if r == 0 {
				style = style.Inherit(headerStyle)
			}
			cells[i] = style.Render(cell)
		}
		b.WriteString(strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, cells...), " ") + "\n")
	}

	return b.String()
}

func location(src settings.Source) string {
	switch src.Kind {
	case settings.KindEnv:
		if src.Prefix == "" {
			return "*"
		}
		return src.Prefix + "*"
	case settings.KindSecrets:
		if src.Path == "" {
			return src.AppID
		}
		return src.Path
	default:
		return src.Path
	}
}

func mode(src settings.Source) string {
	if src.Kind == settings.KindEnv {
		return "-"
	}
	if src.Optional {
		return "optional"
	}

	return "required"
}
