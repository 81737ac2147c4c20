package board

import (
	"math/rand"

	"tilekernel/internal/vec"
)

// Particle is a lightweight, always-overlappable, never-pickable Movable
// with a time-to-live. The host decrements TTL and reaps the particle at
// zero; that integration lives in the game loop, not here.
type Particle struct {
	movableBase

	TTL        int
	Directions []vec.Direction
	FG, BG     Color
}

// NewParticle creates a Particle with the given glyph and directions pool.
func NewParticle(glyph string, ttl int, directions []vec.Direction) *Particle {
	p := &Particle{TTL: ttl, Directions: directions}
	p.kind = "particle"
	p.model = glyph
	p.sprixel = Sprixel{Model: glyph}
	p.overlappable = true
	p.step = 1
	p.hp, p.maxHP = 1, 1
	p.remainingLives = 1
	p.class = ActorOther
	return p
}

// Direction returns a uniformly random element of Directions.
func (p *Particle) Direction(rng *rand.Rand) vec.Direction {
	if len(p.Directions) == 0 {
		return vec.NoDir
	}
	return p.Directions[rng.Intn(len(p.Directions))]
}
