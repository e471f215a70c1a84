package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 26, 46) // Deep navy field

	RgbMatched       = tcell.NewRGBColor(0, 255, 0)     // Typed prefix
	RgbRemaining     = tcell.NewRGBColor(255, 60, 60)   // Untargeted word
	RgbActive        = tcell.NewRGBColor(255, 255, 0)   // Remaining part of the active word
	RgbHUD           = tcell.NewRGBColor(0, 255, 0)     // Score and level
	RgbTheme         = tcell.NewRGBColor(0, 255, 255)   // Theme label
	RgbInput         = tcell.NewRGBColor(255, 255, 255) // Input buffer
	RgbBoundary      = tcell.NewRGBColor(90, 30, 30)    // Loss line
	RgbGameOver      = tcell.NewRGBColor(255, 0, 0)
	RgbGameOverStats = tcell.NewRGBColor(0, 255, 0)
	RgbHint          = tcell.NewRGBColor(0, 255, 255)
	RgbLevelUp       = tcell.NewRGBColor(0, 255, 255)
)

// Explosion gradient endpoints, blended in Lab space
var (
	explosionHot  = colorful.Color{R: 1, G: 1, B: 0.6}
	explosionCold = colorful.Color{R: 26.0 / 255, G: 26.0 / 255, B: 46.0 / 255}
)

// ExplosionColor returns the explosion color at progress t in [0, 1], fading into the background
func ExplosionColor(t float64) tcell.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return toTcell(explosionHot.BlendLab(explosionCold, t).Clamped())
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
