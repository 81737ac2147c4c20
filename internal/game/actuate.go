package game

import (
	"tilekernel/internal/board"
	"tilekernel/internal/boarderr"
	"tilekernel/internal/vec"
)

// MovePlayer moves the Player on the current board. A no-op while the
// engine is PAUSED or STOPPED.
func (g *Game) MovePlayer(dir vec.Direction, step int) error {
	if g.state != StateRunning {
		return nil
	}
	if g.player == nil {
		return boarderr.ErrUndefined
	}
	b, err := g.CurrentBoard()
	if err != nil {
		return err
	}
	return b.Move(g.player, dir, step)
}

// ActuateNPCs advances every RUNNING NPC on the current board by one
// step, in roster (insertion) order: each NPC's move sees the world state
// produced by every earlier NPC's move in this same call. A no-op while
// the engine is PAUSED or STOPPED.
func (g *Game) ActuateNPCs() error {
	if g.state != StateRunning {
		return nil
	}
	b, err := g.CurrentBoard()
	if err != nil {
		return err
	}
	for _, npc := range g.npcRoster[g.currentLevel] {
		actuator := npc.Actuator()
		if actuator == nil || actuator.State() != board.ActuatorRunning {
			continue
		}
		if err := b.Move(npc, actuator.NextMove(), npc.Step()); err != nil {
			return err
		}
	}
	return nil
}

// ActuateProjectiles advances every projectile with a RUNNING actuator and
// positive range: moves it one step, and fires its hit callback exactly
// once when blocked, exhausted, or stopped. A no-op while the engine is
// PAUSED or STOPPED.
func (g *Game) ActuateProjectiles() error {
	if g.state != StateRunning {
		return nil
	}
	b, err := g.CurrentBoard()
	if err != nil {
		return err
	}

	// Snapshot the roster before actuating: reaping a spent projectile
	// mutates g.projectileRoster[g.currentLevel] mid-loop, which would
	// skip or repeat entries if we ranged over the live slice.
	roster := append([]*board.Projectile(nil), g.projectileRoster[g.currentLevel]...)
	for _, proj := range roster {
		if err := g.actuateOneProjectile(b, proj); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) actuateOneProjectile(b *board.Board, proj *board.Projectile) error {
	level := g.currentLevel
	actuator := proj.Actuator()
	if actuator == nil || actuator.State() == board.ActuatorStopped || proj.Range < 0 {
		pos := proj.Position()
		proj.Fire(nil)
		g.projectileRoster[level] = removeProjectile(g.projectileRoster[level], proj)
		return b.ClearCell(pos.Row, pos.Column)
	}
	if actuator.State() != board.ActuatorRunning {
		return nil
	}
	if proj.Range == 0 {
		proj.Fire(g.projectileHit(b, proj))
		pos := proj.Position()
		g.projectileRoster[level] = removeProjectile(g.projectileRoster[level], proj)
		return b.ClearCell(pos.Row, pos.Column)
	}

	before := proj.Position()
	dir := actuator.NextMove()
	if err := b.Move(proj, dir, proj.Step()); err != nil {
		return err
	}
	proj.Range -= proj.Step()

	if proj.Position() == before {
		proj.Fire(g.projectileHitInDirection(b, proj, dir))
	}
	return nil
}

// projectileHit resolves the hit set when a projectile's range hits zero
// in place (no travel direction to look beyond).
func (g *Game) projectileHit(b *board.Board, proj *board.Projectile) []board.Item {
	pos := proj.Position()
	if proj.IsAoE {
		return g.areaItems(b, pos.Row, pos.Column, proj.AoERadius)
	}
	return nil
}

// projectileHitInDirection resolves the hit set for a projectile blocked
// mid-flight: the cell immediately beyond it in dir, if in bounds.
func (g *Game) projectileHitInDirection(b *board.Board, proj *board.Projectile, dir vec.Direction) []board.Item {
	pos := proj.Position()
	if proj.IsAoE {
		return g.neighborItems(b, pos.Row, pos.Column, proj.AoERadius)
	}
	v := vec.FromDirection(dir, 1)
	dr, dc := v.RoundedInts()
	nr, nc := pos.Row+dr, pos.Column+dc
	if !b.InBounds(nr, nc) {
		return nil
	}
	return []board.Item{b.Item(nr, nc)}
}

// AnimateItems calls NextFrame on every item (movable or immovable) whose
// Animation is non-nil. A no-op while the engine is PAUSED or STOPPED.
func (g *Game) AnimateItems() error {
	if g.state != StateRunning {
		return nil
	}
	b, err := g.CurrentBoard()
	if err != nil {
		return err
	}
	for _, item := range b.GetMovables(nil) {
		if animated, ok := item.(interface{ Animation() board.Animator }); ok {
			if a := animated.Animation(); a != nil {
				a.NextFrame()
			}
		}
		if effects := item.Effects(); effects != nil {
			effects.Tick()
		}
	}
	for _, item := range b.GetImmovables(nil) {
		if animated, ok := item.(interface{ Animation() board.Animator }); ok {
			if a := animated.Animation(); a != nil {
				a.NextFrame()
			}
		}
	}
	return nil
}
