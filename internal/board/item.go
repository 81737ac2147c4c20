// Package board implements the spatial simulation kernel: the tile matrix
// with its overlap-restoration layer, the BoardItem hierarchy, movement and
// collision resolution, and inventory bookkeeping. Rendering, keyboard
// input, and actuator algorithms are deliberately external — this package
// only ever consumes a Sprixel-sized glyph+color pair and an Actuator's
// next move.
package board

// Position is a zero-indexed (row, column) cell. Row is the vertical axis;
// row 0 is the top of the board, so UP decreases row.
type Position struct {
	Row, Column int
}

// Color is a minimal styled-glyph color, independent of any terminal
// library. A host renderer maps it to its own palette.
type Color struct {
	R, G, B     uint8
	IsSet       bool // false means "use terminal default"
	Transparent bool
}

// Sprixel is one styled glyph: a character plus optional foreground and
// background color. It is the atom of rendering the core hands to a host
// renderer; the core never interprets glyph width or escape sequences.
type Sprixel struct {
	Model string
	FG    Color
	BG    Color
}

// ParentID is a weak back-reference: a lookup handle, never an owning
// pointer. It never influences the lifetime of the item it names.
type ParentID struct {
	BoardName string
	Set       bool
}

// Item is the capability-tagged interface implemented by every concrete
// board item variant (Void, Wall, Treasure, Door, GenericStructure,
// GenericActionableStructure, NPC, Player, Projectile, Particle).
type Item interface {
	Name() string
	SetName(string)

	Kind() string // free-form type tag, e.g. "wall", "npc"

	Position() Position
	SetPosition(Position)

	Model() string
	Sprixel() Sprixel
	SetSprixel(Sprixel)

	Parent() ParentID
	SetParent(ParentID)

	Pickable() bool
	Overlappable() bool
	Restorable() bool

	// Opaque reports whether the item blocks line of sight for
	// Board.UpdateFOV. Unrelated to Overlappable: a sheet of glass is
	// walkable-through-blocked but transparent; a closed door is the
	// reverse in some games, but here defaults track Wall-like kinds.
	Opaque() bool
	SetOpaque(bool)

	// Attributes returns the item's filterable fields as strings, used by
	// Board.GetMovables/GetImmovables' substring-match filters.
	Attributes() map[string]string
}

// Animator is the external collaborator that advances an item's animation
// by one frame. The core only calls NextFrame(); it never inspects frames.
type Animator interface {
	NextFrame()
}

// base is embedded by every concrete item and implements the common Item
// plumbing. Concrete types override Pickable/Overlappable/Restorable and
// add their own fields.
type base struct {
	name    string
	kind    string
	pos     Position
	model   string
	sprixel Sprixel
	parent  ParentID

	pickable     bool
	overlappable bool
	restorable   bool
	opaque       bool

	animation Animator
}

func (b *base) Name() string           { return b.name }
func (b *base) SetName(n string)       { b.name = n }
func (b *base) Kind() string           { return b.kind }
func (b *base) Position() Position     { return b.pos }
func (b *base) SetPosition(p Position) { b.pos = p }
func (b *base) Model() string          { return b.model }
func (b *base) Sprixel() Sprixel       { return b.sprixel }
func (b *base) SetSprixel(s Sprixel)   { b.sprixel = s }
func (b *base) Parent() ParentID       { return b.parent }
func (b *base) SetParent(p ParentID)   { b.parent = p }
func (b *base) Pickable() bool         { return b.pickable }
func (b *base) Overlappable() bool     { return b.overlappable }
func (b *base) Restorable() bool       { return b.restorable }
func (b *base) Opaque() bool           { return b.opaque }
func (b *base) SetOpaque(o bool)       { b.opaque = o }

func (b *base) Attributes() map[string]string {
	return map[string]string{
		"name":  b.name,
		"type":  b.kind,
		"model": b.model,
	}
}

// SetAnimation attaches an external animator; pass nil to remove it.
func (b *base) SetAnimation(a Animator) { b.animation = a }

// Animation returns the attached animator, or nil.
func (b *base) Animation() Animator { return b.animation }

// Valuable is implemented by items that contribute to Inventory.Value()
// (currently only Treasure).
type Valuable interface {
	Value() int
}

// SpaceConsumer is implemented by pickable items that occupy more than the
// default one unit of inventory space.
type SpaceConsumer interface {
	InventorySpace() int
}
