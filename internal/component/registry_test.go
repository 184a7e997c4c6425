package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tungetti/hue/internal/errors"
	"github.com/tungetti/hue/internal/palette"
	"github.com/tungetti/hue/internal/tokens"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{
		"card", "check", "dialog", "icon", "input", "loadingLogo",
		"navbar", "proCard", "slider", "tableCell", "textarea",
	}, Names())
}

func TestGenerate(t *testing.T) {
	tok := tokens.MustBuild(palette.SchemeBlue, palette.ModeLight)

	out, err := Generate("input", Args{Tokens: tok, Mode: palette.ModeLight, Size: SizeMD})
	require.NoError(t, err)
	in, ok := out.(*InputTokens)
	require.True(t, ok)
	assert.Equal(t, Input(tok, palette.ModeLight, VariantDefault, SizeMD), in)
}

func TestGenerate_Errors(t *testing.T) {
	tok := tokens.MustBuild(palette.SchemeBlue, palette.ModeLight)

	_, err := Generate("button", Args{Tokens: tok})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnknownComponent)

	out, err := Generate("card", Args{Mode: palette.ModeLight})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, errors.ErrTokensUnavailable)
}
