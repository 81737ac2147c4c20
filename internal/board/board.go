package board

import (
	"fmt"
	"strings"

	"tilekernel/internal/boarderr"
)

// MaxRecommendedDimension is the size past which NewBoard logs a warning
// instead of failing — spec treats oversize boards as a performance
// concern, not a correctness one.
const MaxRecommendedDimension = 80

// Logger is the minimal structured-logging collaborator Board uses to
// report non-fatal construction warnings. A *slog.Logger adapter (wired at
// the game/cmd layer) implements it outside of tests.
type Logger interface {
	Warn(msg string, fields map[string]any)
}

type noopLogger struct{}

func (noopLogger) Warn(string, map[string]any) {}

// Config carries the parameters Board validates on construction.
type Config struct {
	Name                   string
	Width, Height          int
	BorderTop              string
	BorderBottom           string
	BorderLeft             string
	BorderRight            string
	VoidCellGlyph          string
	PlayerStartingPosition Position
}

// Board owns the tile matrix, the overlap layer, and the movable/immovable
// sets derived from it. It is the heart of the engine: place_item, move,
// clear_cell, display, and the get_movables/get_immovables queries all
// live here.
type Board struct {
	Name                   string
	Width, Height          int
	BorderTop              string
	BorderBottom           string
	BorderLeft             string
	BorderRight            string
	VoidCellGlyph          string
	PlayerStartingPosition Position

	matrix     [][]Item
	overlapped [][]Item
	visible    [][]bool
	explored   [][]bool

	movables   map[Item]Movable
	immovables map[Item]Item
}

// NewBoard validates cfg and returns a Board whose matrix is entirely Void.
// Fails with ErrSanityCheck on the first offending field.
func NewBoard(cfg Config, logger Logger) (*Board, error) {
	if logger == nil {
		logger = noopLogger{}
	}
	if err := sanityCheck(cfg); err != nil {
		return nil, err
	}
	if cfg.Width > MaxRecommendedDimension || cfg.Height > MaxRecommendedDimension {
		logger.Warn("board dimensions exceed recommended maximum", map[string]any{
			"width": cfg.Width, "height": cfg.Height, "max": MaxRecommendedDimension,
		})
	}

	b := &Board{
		Name:                   cfg.Name,
		Width:                  cfg.Width,
		Height:                 cfg.Height,
		BorderTop:              cfg.BorderTop,
		BorderBottom:           cfg.BorderBottom,
		BorderLeft:             cfg.BorderLeft,
		BorderRight:            cfg.BorderRight,
		VoidCellGlyph:          cfg.VoidCellGlyph,
		PlayerStartingPosition: cfg.PlayerStartingPosition,
		movables:               make(map[Item]Movable),
		immovables:             make(map[Item]Item),
	}
	b.matrix = make([][]Item, cfg.Height)
	b.overlapped = make([][]Item, cfg.Height)
	b.visible = make([][]bool, cfg.Height)
	b.explored = make([][]bool, cfg.Height)
	for r := 0; r < cfg.Height; r++ {
		b.matrix[r] = make([]Item, cfg.Width)
		b.overlapped[r] = make([]Item, cfg.Width)
		b.visible[r] = make([]bool, cfg.Width)
		b.explored[r] = make([]bool, cfg.Width)
		for c := 0; c < cfg.Width; c++ {
			b.matrix[r][c] = b.generateVoidCell()
		}
	}
	return b, nil
}

func sanityCheck(cfg Config) error {
	switch {
	case cfg.Width <= 0 || cfg.Height <= 0:
		return fmt.Errorf("%w: size", boarderr.ErrSanityCheck)
	case cfg.Name == "":
		return fmt.Errorf("%w: name", boarderr.ErrSanityCheck)
	case cfg.BorderTop == "" || cfg.BorderBottom == "" || cfg.BorderLeft == "" || cfg.BorderRight == "":
		return fmt.Errorf("%w: border glyph", boarderr.ErrSanityCheck)
	case cfg.VoidCellGlyph == "":
		return fmt.Errorf("%w: void-cell glyph", boarderr.ErrSanityCheck)
	default:
		return nil
	}
}

// generateVoidCell returns a fresh Void item stamped with the board's
// void-cell glyph.
func (b *Board) generateVoidCell() Item {
	return NewVoid(b.VoidCellGlyph)
}

// InBounds reports whether (row, col) falls within the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.Height && col >= 0 && col < b.Width
}

// Item returns the occupant of (row, col), or nil if out of bounds.
func (b *Board) Item(row, col int) Item {
	if !b.InBounds(row, col) {
		return nil
	}
	return b.matrix[row][col]
}

// Overlapped returns the hidden occupant saved under (row, col), or nil.
func (b *Board) Overlapped(row, col int) Item {
	if !b.InBounds(row, col) {
		return nil
	}
	return b.overlapped[row][col]
}

func isMovableItem(it Item) bool {
	_, ok := it.(Movable)
	return ok
}

// track registers item in the movables or immovables set. Void cells are
// never tracked — they're the board's empty default, not a structure —
// so GetImmovables only ever reports real occupants, matching the
// teacher's get_immovables (engine.py).
func (b *Board) track(item Item) {
	if item.Kind() == "void" {
		return
	}
	if mv, ok := item.(Movable); ok {
		b.movables[item] = mv
	} else {
		b.immovables[item] = item
	}
}

// untrack removes item from whichever set it belongs to.
func (b *Board) untrack(item Item) {
	delete(b.movables, item)
	delete(b.immovables, item)
}

// setCell overwrites the matrix cell and keeps the movable/immovable sets
// consistent with the new occupant.
func (b *Board) setCell(row, col int, item Item) {
	if old := b.matrix[row][col]; old != nil {
		b.untrack(old)
	}
	b.matrix[row][col] = item
	b.track(item)
}

type sizedItem interface {
	Size() (int, int)
}

// PlaceItem inserts item into matrix[row][column], overwriting whatever
// was there. It does not check occupancy — collision and permission logic
// live in Move. If the destination holds an Immovable that is both
// restorable and overlappable, it is saved into the overlap layer first.
func (b *Board) PlaceItem(item Item, row, col int) error {
	if item == nil {
		return boarderr.ErrInvalidType
	}
	if !b.InBounds(row, col) {
		return fmt.Errorf("%w: place (%d,%d)", boarderr.ErrOutOfBoardBound, row, col)
	}

	if sized, ok := item.(sizedItem); ok {
		return b.placeComplex(item, sized, row, col)
	}

	current := b.matrix[row][col]
	if current != nil && !isMovableItem(current) && current.Restorable() && current.Overlappable() {
		b.overlapped[row][col] = current
	}
	if item.Sprixel().BG.Transparent && current != nil {
		s := item.Sprixel()
		s.BG = current.Sprixel().BG
		item.SetSprixel(s)
	}
	b.placeRaw(item, row, col)
	return nil
}

// placeRaw stamps item's position/parent and writes it into the matrix,
// without touching the overlap layer or sprixel background — the caller
// (PlaceItem, or Move's hand-rolled overlap bookkeeping) is responsible
// for that part of the contract.
func (b *Board) placeRaw(item Item, row, col int) {
	if !item.Parent().Set {
		item.SetParent(ParentID{BoardName: b.Name, Set: true})
	}
	item.SetPosition(Position{Row: row, Column: col})
	b.setCell(row, col, item)
}

// placeComplex recursively places every non-nil sub-item of a ComplexItem
// at its offset from (row, col), then stamps the root position.
func (b *Board) placeComplex(item Item, sized sizedItem, row, col int) error {
	w, h := sized.Size()
	if ci, ok := item.(*ComplexItem); ok {
		for r := 0; r < h; r++ {
			for c := 0; c < w; c++ {
				sub := ci.SubItem(r, c)
				if sub == nil {
					continue
				}
				absR, absC := row+r, col+c
				if !b.InBounds(absR, absC) {
					continue
				}
				current := b.matrix[absR][absC]
				if current != nil && !isMovableItem(current) && current.Restorable() && current.Overlappable() {
					b.overlapped[absR][absC] = current
				}
				sub.SetPosition(Position{Row: absR, Column: absC})
				sub.SetParent(ParentID{BoardName: b.Name, Set: true})
				b.setCell(absR, absC, sub)
			}
		}
	}
	item.SetPosition(Position{Row: row, Column: col})
	if !item.Parent().Set {
		item.SetParent(ParentID{BoardName: b.Name, Set: true})
	}
	// The root item itself is tracked directly: its footprint is made of
	// sub-items, but the complex item is the logical movable/immovable.
	b.track(item)
	return nil
}

// ClearCell removes the current occupant. If an overlap entry exists for
// (row, col), it is promoted back into the matrix; otherwise a fresh Void
// is written.
func (b *Board) ClearCell(row, col int) error {
	if !b.InBounds(row, col) {
		return fmt.Errorf("%w: clear (%d,%d)", boarderr.ErrOutOfBoardBound, row, col)
	}
	if ov := b.overlapped[row][col]; ov != nil {
		b.overlapped[row][col] = nil
		b.setCell(row, col, ov)
		return nil
	}
	b.setCell(row, col, b.generateVoidCell())
	return nil
}

// GetMovables returns every tracked Movable whose Attributes() satisfy
// every {attr: substring} filter (conjunctive).
func (b *Board) GetMovables(filters map[string]string) []Movable {
	var result []Movable
	for _, mv := range b.movables {
		if matchesFilters(mv, filters) {
			result = append(result, mv)
		}
	}
	return result
}

// GetImmovables returns every tracked immovable item matching filters.
func (b *Board) GetImmovables(filters map[string]string) []Item {
	var result []Item
	for _, it := range b.immovables {
		if matchesFilters(it, filters) {
			result = append(result, it)
		}
	}
	return result
}

func matchesFilters(item Item, filters map[string]string) bool {
	if len(filters) == 0 {
		return true
	}
	attrs := item.Attributes()
	for key, substr := range filters {
		val, ok := attrs[key]
		if !ok || !strings.Contains(val, substr) {
			return false
		}
	}
	return true
}
