package board

import "tilekernel/internal/vec"

// ActuatorState is the running/paused/stopped lifecycle of an Actuator,
// independent of the engine's own Game-level state machine.
type ActuatorState uint8

const (
	ActuatorRunning ActuatorState = iota
	ActuatorPaused
	ActuatorStopped
)

// Actuator is the movement-policy collaborator attached to a Movable.
// Concrete algorithms (random walk, fixed path, patrol, pathfinder) are
// external; the core only ever calls NextMove and State.
type Actuator interface {
	NextMove() vec.Direction
	State() ActuatorState
}

// EffectKind identifies a kind of timed status effect.
type EffectKind uint8

const (
	EffectAttackBoost EffectKind = iota
	EffectDefenseBoost
	EffectWeaken
	EffectPoison
	EffectInvisible
)

// ActiveEffect is one timed status applied to a Movable.
type ActiveEffect struct {
	Kind           EffectKind
	Magnitude      int
	TurnsRemaining int
}

// Effects is the set of status effects currently active on a Movable.
type Effects struct {
	Active []ActiveEffect
}

// Tick decrements every active effect by one turn and drops expired ones.
func (e *Effects) Tick() {
	kept := e.Active[:0]
	for _, eff := range e.Active {
		eff.TurnsRemaining--
		if eff.TurnsRemaining > 0 {
			kept = append(kept, eff)
		}
	}
	e.Active = kept
}

// Apply adds an effect, replacing any existing effect of the same kind only
// if the new duration is longer.
func (e *Effects) Apply(eff ActiveEffect) {
	for i, existing := range e.Active {
		if existing.Kind == eff.Kind {
			if eff.TurnsRemaining > existing.TurnsRemaining {
				e.Active[i] = eff
			}
			return
		}
	}
	e.Active = append(e.Active, eff)
}

// Has reports whether an effect of the given kind is currently active.
func (e *Effects) Has(kind EffectKind) bool {
	for _, eff := range e.Active {
		if eff.Kind == kind {
			return true
		}
	}
	return false
}

// AttackBonus returns the net attack modifier from active effects.
func (e *Effects) AttackBonus() int {
	total := 0
	for _, eff := range e.Active {
		switch eff.Kind {
		case EffectAttackBoost:
			total += eff.Magnitude
		case EffectWeaken:
			total -= eff.Magnitude
		}
	}
	return total
}

// DefenseBonus returns the net defense modifier from active effects.
func (e *Effects) DefenseBonus() int {
	total := 0
	for _, eff := range e.Active {
		if eff.Kind == EffectDefenseBoost {
			total += eff.Magnitude
		}
	}
	return total
}

// PoisonDamage returns the total poison damage to apply this turn.
func (e *Effects) PoisonDamage() int {
	total := 0
	for _, eff := range e.Active {
		if eff.Kind == EffectPoison {
			total += eff.Magnitude
		}
	}
	return total
}

// Movable is implemented by every item that can occupy the movables set
// and be passed to Board.Move: NPC, Player, Projectile, Particle.
type Movable interface {
	Item

	CanMove() bool
	Step() int

	Actuator() Actuator
	SetActuator(Actuator)

	HP() int
	MaxHP() int
	SetHP(int)

	RemainingLives() int

	AttackPower() int
	Defense() int

	ActorClass() ActorClass

	// Inventory returns the movable's inventory, or nil if it doesn't carry
	// one (most NPCs; Projectile and Particle never do).
	Inventory() *Inventory

	Effects() *Effects
}

// movableBase is embedded by every concrete Movable and implements the
// fields common to all of them (step, actuator, hp, attack/defense).
type movableBase struct {
	base

	step     int
	actuator Actuator

	hp, maxHP      int
	remainingLives int

	attack, defense int

	inventory *Inventory
	effects   Effects

	class ActorClass
}

func (m *movableBase) CanMove() bool { return true }
func (m *movableBase) Step() int {
	if m.step <= 0 {
		return 1
	}
	return m.step
}
func (m *movableBase) Actuator() Actuator          { return m.actuator }
func (m *movableBase) SetActuator(a Actuator)      { m.actuator = a }
func (m *movableBase) HP() int                     { return m.hp }
func (m *movableBase) MaxHP() int                  { return m.maxHP }
func (m *movableBase) SetHP(hp int) {
	if hp > m.maxHP {
		hp = m.maxHP
	}
	m.hp = hp
}
func (m *movableBase) RemainingLives() int         { return m.remainingLives }
func (m *movableBase) AttackPower() int            { return m.attack + m.effects.AttackBonus() }
func (m *movableBase) Defense() int                { return m.defense + m.effects.DefenseBonus() }
func (m *movableBase) ActorClass() ActorClass      { return m.class }
func (m *movableBase) Inventory() *Inventory       { return m.inventory }
func (m *movableBase) Effects() *Effects           { return &m.effects }
