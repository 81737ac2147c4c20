// Package termui adapts tilekernel/internal/board and internal/game to a
// real terminal via tcell: the Renderer draws a Board's visible/explored
// cells and HUD text, and Input turns key events into movement directions
// and menu actions. The core packages never import tcell; only this
// adapter and the cmd/tty host do, keeping the simulation kernel
// renderer-agnostic.
package termui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"tilekernel/internal/board"
)

// Renderer draws a Board onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	hudRows int
}

// NewRenderer creates a Renderer for screen, reserving hudRows rows at the
// bottom for status text.
func NewRenderer(screen tcell.Screen, hudRows int) *Renderer {
	w, h := screen.Size()
	viewH := h - hudRows
	if viewH < 1 {
		viewH = h
	}
	return &Renderer{
		screen:  screen,
		camera:  NewCamera(0, 0, w, viewH),
		hudRows: hudRows,
	}
}

// CenterOn recenters the camera on board position (row, col).
func (r *Renderer) CenterOn(row, col int) { r.camera.Center(row, col) }

// DrawBoard clears the screen and paints every explored cell of b, dimming
// cells that are explored but not currently visible.
func (r *Renderer) DrawBoard(b *board.Board) {
	r.screen.Clear()
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			if !b.Visible(row, col) && !b.Explored(row, col) {
				continue
			}
			x, y, onScreen := r.camera.ToScreen(row, col)
			if !onScreen {
				continue
			}
			item := b.Item(row, col)
			sprixel := item.Sprixel()
			style := tcell.StyleDefault
			if sprixel.FG.IsSet {
				style = style.Foreground(tcell.NewRGBColor(int32(sprixel.FG.R), int32(sprixel.FG.G), int32(sprixel.FG.B)))
			}
			if sprixel.BG.IsSet && !sprixel.BG.Transparent {
				style = style.Background(tcell.NewRGBColor(int32(sprixel.BG.R), int32(sprixel.BG.G), int32(sprixel.BG.B)))
			}
			if !b.Visible(row, col) {
				style = style.Dim(true)
			}
			r.putGlyph(x, y, sprixel.Model, style)
		}
	}
}

// DrawHUD writes lines of status text in the reserved bottom rows, one per
// terminal row, truncated to fit if there are more lines than hudRows.
func (r *Renderer) DrawHUD(lines []string) {
	_, h := r.screen.Size()
	top := h - r.hudRows
	style := tcell.StyleDefault
	for i, line := range lines {
		if i >= r.hudRows {
			break
		}
		for x, ru := range line {
			r.screen.SetContent(x, top+i, ru, nil, style)
		}
	}
}

// Show flushes pending draws to the terminal.
func (r *Renderer) Show() { r.screen.Show() }

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen
// position (x, y), padding a second column when the glyph is double-width.
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
