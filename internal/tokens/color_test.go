package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMix(t *testing.T) {
	assert.Equal(t, "#000000", Mix("#000000", "#ffffff", 0))
	assert.Equal(t, "#ffffff", Mix("#000000", "#ffffff", 1))
	assert.Equal(t, "#808080", Mix("#000000", "#ffffff", 0.5))
}

func TestMixLab_Endpoints(t *testing.T) {
	assert.Equal(t, "#3b82f6", MixLab("#3b82f6", "#1d4ed8", 0))
	assert.Equal(t, "#1d4ed8", MixLab("#3b82f6", "#1d4ed8", 1))
}

func TestWithAlpha(t *testing.T) {
	assert.Equal(t, "#3b82f680", WithAlpha("#3b82f6", 0.5))
	assert.Equal(t, "#3b82f6ff", WithAlpha("#3b82f6", 2))
	assert.Equal(t, "#3b82f600", WithAlpha("#3b82f6", -1))
}

func TestFlatten(t *testing.T) {
	assert.Equal(t, "#7f7f7f", Flatten("#00000080", "#ffffff"))
	assert.Equal(t, "#3b82f6", Flatten("#3b82f6ff", "#000000"))
	assert.Equal(t, "#0b0f19", Flatten("#3b82f600", "#0b0f19"))
	assert.Equal(t, "#123456", Flatten("#123456", "#ffffff"))
}

func TestLightnessAndDistance(t *testing.T) {
	assert.InDelta(t, 1.0, Lightness("#ffffff"), 1e-9)
	assert.InDelta(t, 0.0, Lightness("#000000"), 1e-9)
	assert.InDelta(t, 0.0, Distance("#123456", "#123456"), 1e-9)
	assert.Greater(t, Distance("#000000", "#ffffff"), 0.9)
}

func TestValidHex(t *testing.T) {
	assert.True(t, ValidHex("#a1b2c3"))
	assert.False(t, ValidHex("a1b2c3"))
	assert.False(t, ValidHex("#a1b2c3ff"))
	assert.False(t, ValidHex("#zzzzzz"))
}
