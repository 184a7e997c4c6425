package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/tungetti/hue/internal/component"
	"github.com/tungetti/hue/internal/constants"
	"github.com/tungetti/hue/internal/errors"
	"github.com/tungetti/hue/internal/tokens"
)

// tokenDocument is the serialized form of AppColorTokens.
type tokenDocument struct {
	Scheme   string                         `yaml:"scheme" json:"scheme"`
	Mode     string                         `yaml:"mode" json:"mode"`
	Canvas   string                         `yaml:"canvas" json:"canvas"`
	Families map[string]tokens.FamilyTokens `yaml:"families" json:"families"`
}

func newTokenDocument(t *tokens.AppColorTokens) tokenDocument {
	return tokenDocument{
		Scheme:   t.Scheme().String(),
		Mode:     t.Mode().String(),
		Canvas:   t.Canvas(),
		Families: t.Map(),
	}
}

// componentDocument is the output of the component command.
type componentDocument struct {
	Component string             `yaml:"component" json:"component"`
	Scheme    string             `yaml:"scheme" json:"scheme"`
	Mode      string             `yaml:"mode" json:"mode"`
	Variant   string             `yaml:"variant" json:"variant"`
	Size      string             `yaml:"size" json:"size"`
	Resolved  component.Surface  `yaml:"resolved" json:"resolved"`
	Tokens    component.Stateful `yaml:"tokens" json:"tokens"`
}

func parseFormat(s string) (constants.OutputFormat, error) {
	f := constants.OutputFormat(strings.ToLower(s))
	if !f.Valid() {
		return "", errors.Newf(errors.Validation, "unknown output format %q (want yaml, json or swatch)", s).
			WithOp("cli.parseFormat")
	}
	return f, nil
}

// encode writes doc as YAML or JSON.
func encode(w io.Writer, format constants.OutputFormat, doc interface{}) error {
	switch format {
	case constants.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
}

func chip(bg, fg, text string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg)).
		Render(text)
}

// writeTokenSwatch prints one row of tone chips per family.
func writeTokenSwatch(w io.Writer, t *tokens.AppColorTokens) error {
	header := fmt.Sprintf("%-10s", "")
	for _, tone := range tokens.Tones() {
		header += fmt.Sprintf(" %-12s", tone)
	}
	if _, err := fmt.Fprintf(w, "%s · %s\n%s\n", t.Scheme(), t.Mode(), strings.TrimRight(header, " ")); err != nil {
		return err
	}

	for _, name := range t.FamilyNames() {
		fam := t.Map()[name]
		var b strings.Builder
		b.WriteString(fmt.Sprintf("%-10s", name))
		for _, tone := range tokens.Tones() {
			hex, _ := fam.Get(tone)
			b.WriteString(" ")
			b.WriteString(chip(hex, fam.TextOpposite, "  "))
			b.WriteString(fmt.Sprintf(" %-9s", hex))
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(b.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}

// writeSurfaceSwatch prints a resolved surface as a sample block.
func writeSurfaceSwatch(w io.Writer, doc componentDocument, canvas string) error {
	s := doc.Resolved
	bg := tokens.Flatten(s.Background, canvas)
	sample := lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(tokens.Flatten(s.Text, canvas))).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(tokens.Flatten(s.Border, canvas))).
		Padding(0, 2).
		Render(doc.Component)

	_, err := fmt.Fprintf(w, "%s\n%s %s %s %s\nbackground %s\nborder     %s\ntext       %s\n",
		sample, doc.Scheme, doc.Mode, doc.Variant, doc.Size, s.Background, s.Border, s.Text)
	return err
}
