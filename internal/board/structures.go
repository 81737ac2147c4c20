package board

// Permission is the permission mask an Actionable checks against the class
// of the actor trying to activate it.
type Permission uint8

const (
	PlayerAuthorized Permission = iota
	NPCAuthorized
	AllCharactersAuthorized // player or NPC
	AllMovableAuthorized    // any Movable, including projectiles/particles
)

// ActorClass classifies a Movable for permission checks.
type ActorClass uint8

const (
	ActorPlayer ActorClass = iota
	ActorNPC
	ActorOther // projectile, particle, or any other movable
)

// Permits reports whether perm allows an actor of the given class to
// activate the structure carrying it.
func (perm Permission) Permits(class ActorClass) bool {
	switch perm {
	case PlayerAuthorized:
		return class == ActorPlayer
	case NPCAuthorized:
		return class == ActorNPC
	case AllCharactersAuthorized:
		return class == ActorPlayer || class == ActorNPC
	case AllMovableAuthorized:
		return true
	default:
		return false
	}
}

// Actionable is implemented by items that respond to being activated by a
// moving actor (a door being opened, a lever being pulled, a trap firing).
type Actionable interface {
	Item
	Permission() Permission
	Activate(actor Movable)
}

// Void is the default filler item occupying any cell with no real content.
// It is overlappable, never pickable, never restorable — it is not worth
// saving into the overlap layer since a fresh one can always be generated.
type Void struct{ base }

// NewVoid creates a Void item at the zero position; Board.PlaceItem will
// set its position when placed.
func NewVoid(glyph string) *Void {
	return &Void{base: base{
		kind:         "void",
		model:        glyph,
		sprixel:      Sprixel{Model: glyph},
		overlappable: true,
	}}
}

// Wall is a static, non-overlappable blocking structure.
type Wall struct{ base }

// NewWall creates a named Wall with the given glyph. Walls are opaque by
// default, blocking Board.UpdateFOV's line of sight.
func NewWall(name, glyph string) *Wall {
	return &Wall{base: base{name: name, kind: "wall", model: glyph, sprixel: Sprixel{Model: glyph}, opaque: true}}
}

// Treasure is a pickable item carrying a score value.
type Treasure struct {
	base
	TreasureValue int
	Space         int // InventorySpace(); defaults to 1 if unset
}

// NewTreasure creates a pickable Treasure worth value points.
func NewTreasure(name, glyph string, value int) *Treasure {
	return &Treasure{
		base:          base{name: name, kind: "treasure", model: glyph, sprixel: Sprixel{Model: glyph}, pickable: true},
		TreasureValue: value,
		Space:         1,
	}
}

// Value implements Valuable.
func (t *Treasure) Value() int { return t.TreasureValue }

// InventorySpace implements SpaceConsumer.
func (t *Treasure) InventorySpace() int {
	if t.Space <= 0 {
		return 1
	}
	return t.Space
}

// Door is overlappable and restorable by default — stepping onto a door
// tucks it into the overlap layer so the walker can later step off onto it
// again. Doors may optionally be Actionable (locked doors requiring a key).
type Door struct {
	base
	perm      Permission
	activator func(actor Movable)
}

// NewDoor creates a Door. It is overlappable and restorable.
func NewDoor(name, glyph string) *Door {
	return &Door{base: base{
		name: name, kind: "door", model: glyph, sprixel: Sprixel{Model: glyph},
		overlappable: true, restorable: true,
	}}
}

// SetActivation makes the door Actionable: perm gates who may trigger it,
// and fn runs when a permitted actor moves onto it (e.g. unlock it).
func (d *Door) SetActivation(perm Permission, fn func(actor Movable)) {
	d.perm = perm
	d.activator = fn
}

// Permission implements Actionable.
func (d *Door) Permission() Permission { return d.perm }

// Activate implements Actionable. No-op if SetActivation was never called.
func (d *Door) Activate(actor Movable) {
	if d.activator != nil {
		d.activator(actor)
	}
}

// GenericStructure is a static, configurable-flags scenery item — the
// catch-all for board decoration that isn't a Wall, Door, or Treasure.
type GenericStructure struct{ base }

// NewGenericStructure creates an immovable item with explicit capability
// flags (pickable, overlappable, restorable, opaque).
func NewGenericStructure(name, kind, glyph string, pickable, overlappable, restorable, opaque bool) *GenericStructure {
	return &GenericStructure{base: base{
		name: name, kind: kind, model: glyph, sprixel: Sprixel{Model: glyph},
		pickable: pickable, overlappable: overlappable, restorable: restorable, opaque: opaque,
	}}
}

// GenericActionableStructure is a static structure that responds to
// Activate() — levers, pressure plates, signposts.
type GenericActionableStructure struct {
	base
	perm      Permission
	activator func(actor Movable)
}

// NewGenericActionableStructure creates an immovable Actionable item.
func NewGenericActionableStructure(name, kind, glyph string, overlappable bool, perm Permission, fn func(actor Movable)) *GenericActionableStructure {
	return &GenericActionableStructure{
		base: base{
			name: name, kind: kind, model: glyph, sprixel: Sprixel{Model: glyph},
			overlappable: overlappable,
		},
		perm:      perm,
		activator: fn,
	}
}

// Permission implements Actionable.
func (g *GenericActionableStructure) Permission() Permission { return g.perm }

// Activate implements Actionable.
func (g *GenericActionableStructure) Activate(actor Movable) {
	if g.activator != nil {
		g.activator(actor)
	}
}
