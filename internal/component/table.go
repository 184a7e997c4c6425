package component

import (
	"github.com/tungetti/hue/internal/palette"
	"github.com/tungetti/hue/internal/tokens"
)

// TableCellTokens are the tokens of an editable table cell.
type TableCellTokens struct {
	Surface            `yaml:",inline"`
	AltBackground      string        `yaml:"altBackground" json:"altBackground"`
	HeaderBackground   string        `yaml:"headerBackground" json:"headerBackground"`
	HeaderText         string        `yaml:"headerText" json:"headerText"`
	HoverBackground    string        `yaml:"hoverBackground" json:"hoverBackground"`
	SelectedBackground string        `yaml:"selectedBackground" json:"selectedBackground"`
	SelectedText       string        `yaml:"selectedText" json:"selectedText"`
	States             StateSurfaces `yaml:"states" json:"states"`
	Size               Dimensions    `yaml:"size" json:"size"`
}

// Resolve returns the cell surface for flags.
func (c *TableCellTokens) Resolve(f StateFlags) Surface {
	_, s := c.States.Resolve(c.Surface, f)
	return s
}

// TableCell generates table cell tokens. It returns nil when t is nil.
func TableCell(t *tokens.AppColorTokens, mode palette.Mode, v Variant, size Size) *TableCellTokens {
	if t == nil {
		return nil
	}
	k := newKit(t, mode, v)
	return &TableCellTokens{
		Surface: Surface{
			Background:  k.canvas,
			Border:      k.neutral.Bg,
			Text:        k.neutral.Text,
			Placeholder: k.neutral.TextShade,
		},
		AltBackground:      tokens.Mix(k.neutral.Bg, k.canvas, 0.5),
		HeaderBackground:   k.fam.Bg,
		HeaderText:         k.fam.Text,
		HoverBackground:    k.fam.Bg,
		SelectedBackground: k.fam.BgShade,
		SelectedText:       k.fam.Text,
		States:             k.allStates(),
		Size:               DimensionsFor(size),
	}
}
