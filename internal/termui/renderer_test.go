package termui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"tilekernel/internal/board"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.SetSize(w, h)
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init: %v", err)
	}
	return screen
}

func newTestBoard(t *testing.T) *board.Board {
	t.Helper()
	b, err := board.NewBoard(board.Config{
		Name: "test", Width: 5, Height: 5,
		BorderTop: "#", BorderBottom: "#", BorderLeft: "#", BorderRight: "#",
		VoidCellGlyph: ".",
	}, nil)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	return b
}

func TestRendererDrawBoardSkipsUnexploredCells(t *testing.T) {
	screen := newSimScreen(t, 40, 20)
	defer screen.Fini()

	b := newTestBoard(t)
	wall := board.NewWall("wall", "#")
	if err := b.PlaceItem(wall, 2, 2); err != nil {
		t.Fatalf("place wall: %v", err)
	}

	r := NewRenderer(screen, 2)
	r.CenterOn(2, 2)
	r.DrawBoard(b)
	r.Show()

	cells, w, h := screen.GetContents()
	if w != 40 || h != 20 {
		t.Fatalf("screen size = %dx%d; want 40x20", w, h)
	}

	for _, cell := range cells {
		if cell.Runes != nil && len(cell.Runes) > 0 && cell.Runes[0] == '#' {
			t.Fatalf("unexplored wall cell should not have been drawn, found '#' on screen")
		}
	}
}

func TestRendererDrawBoardDrawsVisibleCells(t *testing.T) {
	screen := newSimScreen(t, 40, 20)
	defer screen.Fini()

	b := newTestBoard(t)
	wall := board.NewWall("wall", "#")
	if err := b.PlaceItem(wall, 2, 2); err != nil {
		t.Fatalf("place wall: %v", err)
	}
	b.UpdateFOV(2, 1, 5)

	r := NewRenderer(screen, 2)
	r.CenterOn(2, 1)
	r.DrawBoard(b)
	r.Show()

	x, y, onScreen := r.camera.ToScreen(2, 2)
	if !onScreen {
		t.Fatalf("expected wall cell to map onto screen")
	}
	mainc, _, _, _ := screen.GetContent(x, y)
	if mainc != '#' {
		t.Errorf("GetContent(%d,%d) = %q; want '#'", x, y, mainc)
	}
}

func TestRendererDrawHUDWritesLines(t *testing.T) {
	screen := newSimScreen(t, 40, 20)
	defer screen.Fini()

	r := NewRenderer(screen, 2)
	r.DrawHUD([]string{"HP 10/10"})
	r.Show()

	for i, want := range "HP 10/10" {
		mainc, _, _, _ := screen.GetContent(i, 18)
		if mainc != want {
			t.Errorf("HUD cell %d = %q; want %q", i, mainc, want)
		}
	}
}
