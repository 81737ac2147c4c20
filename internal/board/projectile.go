package board

// HitCallback is invoked exactly once per projectile lifetime, with the
// list of items it struck (a single blocker for a directional hit, or the
// Chebyshev neighborhood for an AoE hit).
type HitCallback func(struck []Item)

// Projectile is a short-lived Movable with a remaining range budget, an
// optional area-of-effect, and a one-shot hit callback.
type Projectile struct {
	movableBase

	Range     int
	IsAoE     bool
	AoERadius int

	hitCallback HitCallback
	fired       bool
}

// NewProjectile creates a Projectile with the given glyph, step, range, and
// hit callback. AttackPower carries the damage the callback is expected to
// apply to whatever it strikes.
func NewProjectile(name, glyph string, step, rangeCells, attackPower int, cb HitCallback) *Projectile {
	p := &Projectile{Range: rangeCells, hitCallback: cb}
	p.name = name
	p.kind = "projectile"
	p.model = glyph
	p.sprixel = Sprixel{Model: glyph}
	p.step = step
	p.attack = attackPower
	p.hp, p.maxHP = 1, 1
	p.remainingLives = 1
	p.class = ActorOther
	return p
}

// SetAoE marks the projectile as area-of-effect with the given radius.
func (p *Projectile) SetAoE(radius int) {
	p.IsAoE = true
	p.AoERadius = radius
}

// Fire invokes the hit callback exactly once; subsequent calls are no-ops.
func (p *Projectile) Fire(struck []Item) {
	if p.fired {
		return
	}
	p.fired = true
	if p.hitCallback != nil {
		p.hitCallback(struck)
	}
}

// Fired reports whether the hit callback has already run.
func (p *Projectile) Fired() bool { return p.fired }
