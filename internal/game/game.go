// Package game implements the engine's top-level orchestrator: level
// composition, NPC/projectile actuation, the menu and configuration
// stores, and the RUNNING/PAUSED/STOPPED state machine. Rendering and
// keyboard input stay external, consumed only through the interfaces a
// host (internal/termui, cmd/tty) supplies.
package game

import (
	"fmt"
	"math/rand"

	"tilekernel/internal/board"
	"tilekernel/internal/boarderr"
	"tilekernel/internal/config"
)

// State is the engine's running/paused/stopped lifecycle. While PAUSED or
// STOPPED, MovePlayer/ActuateNPCs/ActuateProjectiles/AnimateItems are
// no-ops.
type State uint8

const (
	StateRunning State = iota
	StatePaused
	StateStopped
)

// Logger is the minimal structured-logging collaborator Game uses to
// report non-fatal events (oversize board, run-log write failures).
// Satisfied by a *slog.Logger adapter; see cmd/tty for the concrete wiring
// used outside tests.
type Logger interface {
	Warn(msg string, fields map[string]any)
}

type noopLogger struct{}

func (noopLogger) Warn(string, map[string]any) {}

// Game owns the Player, the level table, and the menu/configuration
// stores layered on top of the board package.
type Game struct {
	Rand *rand.Rand

	player       *board.Player
	boards       map[int]*board.Board
	currentLevel int
	hasLevel     bool

	// npcRoster and projectileRoster track insertion order per level: §5's
	// ordering guarantee ("items are processed in insertion order") isn't
	// something board.GetMovables can give us, since it returns from a Go
	// map. Game is the layer with roster semantics, so it keeps its own
	// ordered lists alongside the board's authoritative occupancy.
	npcRoster        map[int][]*board.NPC
	projectileRoster map[int][]*board.Projectile

	state State

	menus  map[string][]MenuEntry
	config *config.Store

	runLog RunLog

	logger Logger
}

// New creates an empty Game: no levels, no player, state RUNNING.
func New(rng *rand.Rand, logger Logger) *Game {
	if logger == nil {
		logger = noopLogger{}
	}
	return &Game{
		Rand:             rng,
		boards:           make(map[int]*board.Board),
		npcRoster:        make(map[int][]*board.NPC),
		projectileRoster: make(map[int][]*board.Projectile),
		state:            StateRunning,
		menus:            make(map[string][]MenuEntry),
		config:           config.NewStore(),
		runLog:           newRunLog(),
		logger:           logger,
	}
}

// State returns the current engine state.
func (g *Game) State() State { return g.state }

// SetState transitions the engine's state machine.
func (g *Game) SetState(s State) { g.state = s }

// SetPlayer installs the Player the game exclusively owns.
func (g *Game) SetPlayer(p *board.Player) { g.player = p }

// Player returns the game's Player, or nil if none has been set.
func (g *Game) Player() *board.Player { return g.player }

// AddBoard associates level n with board b, taking parenthood of it.
func (g *Game) AddBoard(n int, b *board.Board) {
	g.boards[n] = b
	if b.Width > board.MaxRecommendedDimension || b.Height > board.MaxRecommendedDimension {
		g.logger.Warn("board exceeds recommended maximum dimension", map[string]any{
			"level": n, "width": b.Width, "height": b.Height,
		})
	}
}

// Board returns the board associated with level n, or ErrInvalidLevel.
func (g *Game) Board(n int) (*board.Board, error) {
	b, ok := g.boards[n]
	if !ok {
		return nil, fmt.Errorf("%w: %d", boarderr.ErrInvalidLevel, n)
	}
	return b, nil
}

// CurrentBoard returns the board for the current level, or ErrInvalidLevel
// if no level has been entered yet.
func (g *Game) CurrentBoard() (*board.Board, error) {
	if !g.hasLevel {
		return nil, fmt.Errorf("%w: no current level", boarderr.ErrInvalidLevel)
	}
	return g.Board(g.currentLevel)
}

// ChangeLevel clears the Player from its current board (if placed) and
// places it at the new board's PlayerStartingPosition. Fails with
// ErrInvalidLevel on an unknown level, ErrUndefined when no Player is set.
func (g *Game) ChangeLevel(n int) error {
	if g.player == nil {
		return fmt.Errorf("%w: no player set", boarderr.ErrUndefined)
	}
	dest, err := g.Board(n)
	if err != nil {
		return err
	}

	if g.hasLevel {
		if cur, err := g.Board(g.currentLevel); err == nil {
			pos := g.player.Position()
			if cur.Item(pos.Row, pos.Column) == board.Item(g.player) {
				if err := cur.ClearCell(pos.Row, pos.Column); err != nil {
					return err
				}
			}
		}
	}

	start := dest.PlayerStartingPosition
	if err := dest.PlaceItem(g.player, start.Row, start.Column); err != nil {
		return err
	}
	g.currentLevel = n
	g.hasLevel = true
	return nil
}

// AddNPC places npc on level's board at (row, col), or at a random Void
// cell if row and col are both negative. Assigns a default RandomActuator
// over the four cardinal directions if the NPC has none, and a default
// step of 1.
func (g *Game) AddNPC(level int, npc *board.NPC, row, col int) error {
	b, err := g.Board(level)
	if err != nil {
		return err
	}
	if npc.Actuator() == nil {
		npc.SetActuator(board.NewRandomActuator(g.Rand))
	}

	if row < 0 && col < 0 {
		row, col, err = g.randomVoidCell(b)
		if err != nil {
			return err
		}
	}
	if err := b.PlaceItem(npc, row, col); err != nil {
		return err
	}
	g.npcRoster[level] = append(g.npcRoster[level], npc)
	return nil
}

// randomVoidCell retries random coordinates until it finds a Void cell,
// giving up with ErrNotEnoughSpace after maxAttempts tries.
func (g *Game) randomVoidCell(b *board.Board) (int, int, error) {
	const maxAttempts = 10000
	for i := 0; i < maxAttempts; i++ {
		r := g.Rand.Intn(b.Height)
		c := g.Rand.Intn(b.Width)
		if b.Item(r, c).Kind() == "void" {
			return r, c, nil
		}
	}
	return 0, 0, fmt.Errorf("%w: no void cell found after %d attempts", boarderr.ErrNotEnoughSpace, maxAttempts)
}

// RemoveNPC deletes npc from level's roster and clears its cell.
func (g *Game) RemoveNPC(level int, npc *board.NPC) error {
	b, err := g.Board(level)
	if err != nil {
		return err
	}
	pos := npc.Position()
	if err := b.ClearCell(pos.Row, pos.Column); err != nil {
		return err
	}
	g.npcRoster[level] = removeNPC(g.npcRoster[level], npc)
	return nil
}

func removeNPC(roster []*board.NPC, target *board.NPC) []*board.NPC {
	for i, n := range roster {
		if n == target {
			return append(roster[:i], roster[i+1:]...)
		}
	}
	return roster
}

func removeProjectile(roster []*board.Projectile, target *board.Projectile) []*board.Projectile {
	for i, p := range roster {
		if p == target {
			return append(roster[:i], roster[i+1:]...)
		}
	}
	return roster
}

// AddProjectile immediately resolves on-placement collision: if the
// target cell already holds a non-Void item, the projectile fires its hit
// callback (every non-Void item within AoERadius of the target, the target
// cell included, if IsAoE; else a single-element list holding the blocker)
// and is NOT added to the roster.
// Otherwise it is placed on the board. Out-of-bounds placement is silent,
// per spec policy for this operation.
func (g *Game) AddProjectile(level int, proj *board.Projectile, row, col int) error {
	b, err := g.Board(level)
	if err != nil {
		return err
	}
	if !b.InBounds(row, col) {
		return nil
	}

	blocker := b.Item(row, col)
	if blocker.Kind() != "void" {
		var struck []board.Item
		if proj.IsAoE {
			struck = g.areaItems(b, row, col, proj.AoERadius)
		} else {
			struck = []board.Item{blocker}
		}
		proj.Fire(struck)
		return nil
	}
	if err := b.PlaceItem(proj, row, col); err != nil {
		return err
	}
	g.projectileRoster[level] = append(g.projectileRoster[level], proj)
	return nil
}

// areaItems returns every non-Void item in the Chebyshev square of side
// 2*radius+1 centered on (row, col), INCLUDING the center cell, in
// row-major order. Used to resolve an AoE projectile's hit set: the
// blocker that stopped the projectile is itself struck, alongside
// whatever else sits in the blast radius.
func (g *Game) areaItems(b *board.Board, row, col, radius int) []board.Item {
	var result []board.Item
	for r := row - radius; r <= row+radius; r++ {
		for c := col - radius; c <= col+radius; c++ {
			if !b.InBounds(r, c) {
				continue
			}
			if it := b.Item(r, c); it.Kind() != "void" {
				result = append(result, it)
			}
		}
	}
	return result
}

// neighborItems returns every non-Void item in the Chebyshev square of
// side 2*radius+1 centered on (row, col), excluding the center, in
// row-major order. Used by Neighbors, where the reference object itself
// (usually the Player) shouldn't be reported as its own neighbor.
func (g *Game) neighborItems(b *board.Board, row, col, radius int) []board.Item {
	var result []board.Item
	for _, it := range g.areaItems(b, row, col, radius) {
		pos := it.Position()
		if pos.Row == row && pos.Column == col {
			continue
		}
		result = append(result, it)
	}
	return result
}

// Neighbors returns every non-Void cell within the Chebyshev square of
// side 2*radius+1 centered on object (default: the Player), excluding the
// center. Iteration is row-major for stable test order.
func (g *Game) Neighbors(radius int, object board.Item) ([]board.Item, error) {
	b, err := g.CurrentBoard()
	if err != nil {
		return nil, err
	}
	if object == nil {
		object = g.player
	}
	pos := object.Position()
	return g.neighborItems(b, pos.Row, pos.Column, radius), nil
}
