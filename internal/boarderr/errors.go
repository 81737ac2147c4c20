// Package boarderr collects the sentinel errors the engine raises, so
// callers can branch with errors.Is instead of matching strings.
package boarderr

import "errors"

var (
	// ErrInvalidType is returned when an argument is not of the expected kind
	// (not an Item, not a Movable, …).
	ErrInvalidType = errors.New("invalid type")

	// ErrOutOfBoardBound is returned when coordinates fall outside a board's
	// size. Note: Board.Move and Game.AddProjectile treat out-of-bounds as a
	// silent no-op per spec, not as this error — it's reserved for APIs
	// (PlaceItem) where bounds violations are programmer error.
	ErrOutOfBoardBound = errors.New("out of board bound")

	// ErrNotMovable is returned when Move is called on an item that is not
	// a Movable, or whose CanMove() is false.
	ErrNotMovable = errors.New("item is not movable")

	// ErrInvalidLevel is returned when a level number has no associated
	// board, or when the current level is unset.
	ErrInvalidLevel = errors.New("invalid level")

	// ErrUndefined is returned when an operation requires a Player that has
	// not been set yet.
	ErrUndefined = errors.New("undefined")

	// ErrNotEnoughSpace is returned by Inventory.AddItem when the item would
	// push the inventory over its capacity.
	ErrNotEnoughSpace = errors.New("not enough inventory space")

	// ErrNotPickable is returned by Inventory.AddItem when the item is not
	// flagged pickable.
	ErrNotPickable = errors.New("item is not pickable")

	// ErrNoItemByThatName is returned by Inventory.GetItem/DeleteItem when
	// the key is absent.
	ErrNoItemByThatName = errors.New("no item by that name")

	// ErrSanityCheck is returned by NewBoard when a construction parameter
	// fails validation (size, name, border glyphs, void-cell glyph). No
	// sprixel is validated.
	ErrSanityCheck = errors.New("sanity check failed")

	// ErrUnknownSection is returned by configuration lookups for a section
	// that was never loaded or set.
	ErrUnknownSection = errors.New("unknown configuration section")

	// ErrUnknownMenuCategory is returned by menu lookups for a category that
	// was never registered.
	ErrUnknownMenuCategory = errors.New("unknown menu category")
)
