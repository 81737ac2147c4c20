package board

// Player is the single character exclusively owned by Game. It is always
// overlappable-blocking (occupies its cell) and always carries an
// Inventory.
type Player struct{ movableBase }

// NewPlayer creates a Player with the given glyph, hp, attack, and
// inventory capacity.
func NewPlayer(name, glyph string, maxHP, attack, defense, inventoryCapacity int) *Player {
	p := &Player{}
	p.name = name
	p.kind = "player"
	p.model = glyph
	p.sprixel = Sprixel{Model: glyph}
	p.hp, p.maxHP = maxHP, maxHP
	p.remainingLives = 1
	p.attack, p.defense = attack, defense
	p.class = ActorPlayer
	p.inventory = NewInventory(inventoryCapacity)
	return p
}
