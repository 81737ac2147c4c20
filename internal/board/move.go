package board

import (
	"fmt"

	"tilekernel/internal/boarderr"
	"tilekernel/internal/vec"
)

// Move attempts to move item by step cells in direction dir. A step of 0
// uses item.Step(). Out-of-bounds destinations are refused silently (no
// error, no state change), per spec policy.
func (b *Board) Move(item Movable, dir vec.Direction, step int) error {
	if step == 0 {
		step = item.Step()
	}
	return b.MoveVector(item, vec.FromDirection(dir, step))
}

// MoveVector is Move's general form: v's components are rounded to the
// nearest integer before use, so a host may pass an arbitrary fractional
// offset (e.g. a knockback vector) and still land on a cell.
func (b *Board) MoveVector(item Movable, v vec.Vector2D) error {
	if item == nil || !item.CanMove() {
		return boarderr.ErrNotMovable
	}
	dr, dc := v.RoundedInts()

	if _, ok := item.(sizedItem); ok {
		return b.moveComplex(item, dr, dc)
	}
	return b.moveSimple(item, dr, dc)
}

// moveSimple implements the single-cell move/collision/pickup/overlap
// algorithm described in spec.md §4.1.
func (b *Board) moveSimple(item Movable, dr, dc int) error {
	src := item.Position()
	nr, nc := src.Row+dr, src.Column+dc

	if !b.InBounds(nr, nc) {
		return nil // silently refused
	}

	dest := b.matrix[nr][nc]

	// Activation never blocks movement by itself.
	if act, ok := dest.(Actionable); ok && act.Permission().Permits(item.ActorClass()) {
		act.Activate(item)
		dest = b.matrix[nr][nc] // activation may have mutated the board
	}

	if !dest.Overlappable() && dest.Pickable() && item.Inventory() != nil {
		if err := item.Inventory().AddItem(dest); err == nil {
			if err := b.ClearCell(nr, nc); err != nil {
				return err
			}
			dest = b.matrix[nr][nc]
		}
	}

	if !dest.Overlappable() {
		return nil // refused: not overlappable and not consumed by pickup
	}

	if dest.Restorable() && !isMovableItem(dest) && dest.Kind() != "void" {
		b.overlapped[nr][nc] = dest
	}

	if item.Sprixel().BG.Transparent {
		s := item.Sprixel()
		s.BG = dest.Sprixel().BG
		item.SetSprixel(s)
	}

	destPos := Position{Row: nr, Column: nc}
	if ov := b.overlapped[src.Row][src.Column]; ov != nil {
		if ov.Position() != destPos {
			if err := b.PlaceItem(ov, src.Row, src.Column); err != nil {
				return err
			}
			b.overlapped[src.Row][src.Column] = nil
		} else {
			b.setCell(src.Row, src.Column, b.generateVoidCell())
		}
	} else {
		b.setCell(src.Row, src.Column, b.generateVoidCell())
	}

	b.placeRaw(item, nr, nc)
	return nil
}

// moveComplex implements the multi-cell move algorithm: the whole
// footprint is refused or committed atomically.
func (b *Board) moveComplex(item Movable, dr, dc int) error {
	ci, ok := item.(*ComplexItem)
	if !ok {
		return fmt.Errorf("%w: complex move requires *ComplexItem", boarderr.ErrInvalidType)
	}
	root := item.Position()
	newRoot := Position{Row: root.Row + dr, Column: root.Column + dc}
	w, h := ci.Size()

	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if !b.InBounds(newRoot.Row+r, newRoot.Column+c) {
				return nil // any corner outside the board refuses the whole move
			}
		}
	}

	canDraw := true
	for r := 0; r < h && canDraw; r++ {
		for c := 0; c < w && canDraw; c++ {
			absR, absC := newRoot.Row+r, newRoot.Column+c
			occupant := b.matrix[absR][absC]

			if act, ok := occupant.(Actionable); ok && act.Permission().Permits(item.ActorClass()) {
				act.Activate(item)
				occupant = b.matrix[absR][absC]
			}
			if !occupant.Overlappable() && occupant.Pickable() && item.Inventory() != nil {
				if err := item.Inventory().AddItem(occupant); err == nil {
					_ = b.ClearCell(absR, absC)
					occupant = b.matrix[absR][absC]
				}
			}
			if !occupant.Overlappable() && !ci.owns(occupant) {
				canDraw = false
			}
		}
	}
	if !canDraw {
		return nil
	}

	// Restore every overlapped slot under the current footprint before
	// moving away from it.
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if ov := b.overlapped[root.Row+r][root.Column+c]; ov != nil {
				_ = b.PlaceItem(ov, root.Row+r, root.Column+c)
				b.overlapped[root.Row+r][root.Column+c] = nil
			}
		}
	}

	return b.PlaceItem(item, newRoot.Row, newRoot.Column)
}

