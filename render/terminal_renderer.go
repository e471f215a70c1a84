package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/cyber-invaders/constants"
	"github.com/lixenwraith/cyber-invaders/engine"
	"github.com/mattn/go-runewidth"
)

// TerminalRenderer draws session snapshots onto a tcell screen
// Logical field coordinates are scaled to the terminal size every frame
type TerminalRenderer struct {
	screen tcell.Screen
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// layout maps logical coordinates to cells for one frame
type layout struct {
	width, height int
	fieldTop      int
	fieldRows     int
}

func newLayout(width, height int) layout {
	rows := height - constants.HUDRows - constants.FooterRows
	if rows < 1 {
		rows = 1
	}
	return layout{
		width:     width,
		height:    height,
		fieldTop:  constants.HUDRows,
		fieldRows: rows,
	}
}

// cell returns the screen cell for a logical position; words above the field are hidden
func (l layout) cell(x, y float64, textWidth int) (col, row int, visible bool) {
	if y < 0 {
		return 0, 0, false
	}

	row = l.fieldTop + int(y/constants.FieldBottom*float64(l.fieldRows-1))
	if row > l.fieldTop+l.fieldRows-1 {
		row = l.fieldTop + l.fieldRows - 1
	}

	col = int(x / constants.FieldWidth * float64(l.width))
	if col+textWidth > l.width {
		col = l.width - textWidth
	}
	if col < 0 {
		col = 0
	}
	return col, row, true
}

// RenderFrame renders the entire frame
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot) {
	w, h := r.screen.Size()
	l := newLayout(w, h)
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)

	r.screen.Fill(' ', defaultStyle)

	r.drawHUD(snap, l, defaultStyle)
	r.drawBoundary(l, defaultStyle)
	r.drawWords(snap, l, defaultStyle)
	r.drawExplosions(snap, l, defaultStyle)
	r.drawInput(snap, l, defaultStyle)

	switch {
	case snap.GameOver:
		r.drawGameOver(snap, l, defaultStyle)
	case snap.LevelUp:
		r.drawLevelUp(snap, l, defaultStyle)
	case len(snap.Words) == 0:
		r.drawInstructions(snap, l, defaultStyle)
	}

	r.screen.Show()
}

// drawHUD draws score, level with theme and quota progress on the top row
func (r *TerminalRenderer) drawHUD(snap engine.Snapshot, l layout, defaultStyle tcell.Style) {
	hud := defaultStyle.Foreground(RgbHUD).Bold(true)
	x := r.drawText(0, 0, fmt.Sprintf("SCORE: %d  ", snap.Score), hud)
	x = r.drawText(x, 0, fmt.Sprintf("LEVEL %d: ", snap.Level), hud)
	x = r.drawText(x, 0, snap.Theme, defaultStyle.Foreground(RgbTheme).Bold(true))

	quota := fmt.Sprintf("CLEARED: %d/%d", snap.WordsCleared, snap.WordsNeeded)
	qx := l.width - runewidth.StringWidth(quota)
	if qx < x+2 {
		qx = x + 2
	}
	r.drawText(qx, 0, quota, hud)
}

// drawBoundary marks the loss line on the last field row
func (r *TerminalRenderer) drawBoundary(l layout, defaultStyle tcell.Style) {
	row := l.fieldTop + l.fieldRows - 1
	if row == l.fieldTop {
		return
	}
	style := defaultStyle.Foreground(RgbBoundary)
	for x := 0; x < l.width; x++ {
		r.screen.SetContent(x, row, '─', nil, style)
	}
}

// drawWords draws each word with its matched prefix highlighted
func (r *TerminalRenderer) drawWords(snap engine.Snapshot, l layout, defaultStyle tcell.Style) {
	for _, w := range snap.Words {
		col, row, ok := l.cell(w.X, w.Y, runewidth.StringWidth(w.Text))
		if !ok {
			continue
		}

		remaining := RgbRemaining
		if w.Active {
			remaining = RgbActive
		}

		x := r.drawText(col, row, w.Matched, defaultStyle.Foreground(RgbMatched).Bold(true))
		r.drawText(x, row, w.Remaining, defaultStyle.Foreground(remaining).Bold(w.Active))
	}
}

// drawExplosions draws fading glyphs at cleared word positions
func (r *TerminalRenderer) drawExplosions(snap engine.Snapshot, l layout, defaultStyle tcell.Style) {
	for _, e := range snap.Explosions {
		col, row, ok := l.cell(e.X, e.Y, 1)
		if !ok {
			continue
		}
		t := float64(e.Age) / float64(constants.ExplosionTTL)
		r.screen.SetContent(col, row, constants.ExplosionGlyph, nil, defaultStyle.Foreground(ExplosionColor(t)).Bold(true))
	}
}

// drawInput draws the input buffer on the bottom row
func (r *TerminalRenderer) drawInput(snap engine.Snapshot, l layout, defaultStyle tcell.Style) {
	if snap.Input == "" || snap.GameOver {
		return
	}
	r.drawText(0, l.height-1, constants.InputPrompt+snap.Input+constants.InputCursor, defaultStyle.Foreground(RgbInput))
}

func (r *TerminalRenderer) drawGameOver(snap engine.Snapshot, l layout, defaultStyle tcell.Style) {
	mid := l.height / 2
	r.drawCentered(l, mid-2, constants.GameOverText, defaultStyle.Foreground(RgbGameOver).Bold(true))
	r.drawCentered(l, mid, fmt.Sprintf("Level Reached: %d", snap.Level), defaultStyle.Foreground(RgbGameOverStats))
	r.drawCentered(l, mid+1, fmt.Sprintf("Final Score: %d", snap.Score), defaultStyle.Foreground(RgbGameOverStats))
	r.drawCentered(l, mid+3, constants.RestartHintText, defaultStyle.Foreground(RgbHint))
}

func (r *TerminalRenderer) drawLevelUp(snap engine.Snapshot, l layout, defaultStyle tcell.Style) {
	r.drawCentered(l, l.height/2, fmt.Sprintf("LEVEL %d COMPLETE!", snap.CompletedLevel), defaultStyle.Foreground(RgbLevelUp).Bold(true))
}

func (r *TerminalRenderer) drawInstructions(snap engine.Snapshot, l layout, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbHUD)
	mid := l.height / 2
	r.drawCentered(l, mid-4, constants.TitleText, defaultStyle.Foreground(RgbTheme).Bold(true))
	r.drawCentered(l, mid-2, fmt.Sprintf("LEVEL %d: %s", snap.Level, snap.Theme), style.Bold(true))
	r.drawCentered(l, mid, constants.InstructionsText, style)
	r.drawCentered(l, mid+1, fmt.Sprintf("Clear %d words to advance to the next level!", snap.WordsNeeded), style)
	r.drawCentered(l, mid+2, constants.StartHintText, style)
}

// drawCentered draws s horizontally centered on row y
func (r *TerminalRenderer) drawCentered(l layout, y int, s string, style tcell.Style) {
	x := (l.width - runewidth.StringWidth(s)) / 2
	if x < 0 {
		x = 0
	}
	r.drawText(x, y, s, style)
}

// drawText draws s starting at (x, y) and returns the column after the last cell
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
	return x
}
