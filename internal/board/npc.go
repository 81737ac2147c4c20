package board

import (
	"math/rand"

	"tilekernel/internal/vec"
)

// NPC is a non-player Movable. Game.AddNPC assigns it a default random
// actuator over {UP,DOWN,LEFT,RIGHT} when none is set.
type NPC struct{ movableBase }

// NewNPC creates an NPC with the given glyph, hp, attack, and defense.
// It starts with no inventory and no actuator; Game.AddNPC fills in a
// default actuator if one isn't assigned before placement.
func NewNPC(name, glyph string, maxHP, attack, defense int) *NPC {
	n := &NPC{}
	n.name = name
	n.kind = "npc"
	n.model = glyph
	n.sprixel = Sprixel{Model: glyph}
	n.hp, n.maxHP = maxHP, maxHP
	n.remainingLives = 1
	n.attack, n.defense = attack, defense
	n.class = ActorNPC
	return n
}

// GiveInventory equips the NPC with a carried Inventory (merchants, bosses
// with lootable equipment).
func (n *NPC) GiveInventory(maxSize int) { n.inventory = NewInventory(maxSize) }

// RandomActuator is the built-in default actuator Game.AddNPC assigns when
// the host doesn't supply one: it uniformly picks from a fixed moveset
// every call. All other actuator algorithms (fixed-path, patrol,
// pathfinder) are host-supplied, per spec.
type RandomActuator struct {
	Moveset []vec.Direction
	rng     *rand.Rand
	state   ActuatorState
}

// NewRandomActuator creates a RandomActuator over the given moveset. An
// empty moveset defaults to the four cardinal directions.
func NewRandomActuator(rng *rand.Rand, moveset ...vec.Direction) *RandomActuator {
	if len(moveset) == 0 {
		moveset = []vec.Direction{vec.Up, vec.Down, vec.Left, vec.Right}
	}
	return &RandomActuator{Moveset: moveset, rng: rng, state: ActuatorRunning}
}

// NextMove implements Actuator.
func (a *RandomActuator) NextMove() vec.Direction {
	if len(a.Moveset) == 0 {
		return vec.NoDir
	}
	return a.Moveset[a.rng.Intn(len(a.Moveset))]
}

// State implements Actuator.
func (a *RandomActuator) State() ActuatorState { return a.state }

// SetState changes the actuator's running/paused/stopped state.
func (a *RandomActuator) SetState(s ActuatorState) { a.state = s }
