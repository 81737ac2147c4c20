package game

import (
	"math/rand"
	"testing"

	"tilekernel/internal/board"
	"tilekernel/internal/vec"
)

func newTestGame(t *testing.T, w, h int) (*Game, *board.Board) {
	t.Helper()
	g := New(rand.New(rand.NewSource(1)), nil)
	b, err := board.NewBoard(board.Config{
		Name: "test", Width: w, Height: h,
		BorderTop: "#", BorderBottom: "#", BorderLeft: "#", BorderRight: "#",
		VoidCellGlyph: ".",
	}, nil)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	g.AddBoard(1, b)
	return g, b
}

// TestProjectileAoEOnPlacementStrikesNeighborhood covers the AoE-on-placement
// scenario: a 10x10 board with walls at (3,3), (3,4), (4,3); a projectile
// placed at (3,3) with AoE radius 1 should resolve immediately against the
// blocking wall's neighborhood, never enter the roster, and the callback
// should see all three walls in row-major order.
func TestProjectileAoEOnPlacementStrikesNeighborhood(t *testing.T) {
	g, b := newTestGame(t, 10, 10)

	wallA := board.NewWall("wall", "#") // (3,3) - the placement target itself
	wallB := board.NewWall("wall", "#") // (3,4)
	wallC := board.NewWall("wall", "#") // (4,3)
	if err := b.PlaceItem(wallA, 3, 3); err != nil {
		t.Fatalf("place wallA: %v", err)
	}
	if err := b.PlaceItem(wallB, 3, 4); err != nil {
		t.Fatalf("place wallB: %v", err)
	}
	if err := b.PlaceItem(wallC, 4, 3); err != nil {
		t.Fatalf("place wallC: %v", err)
	}

	var struck []board.Item
	proj := board.NewProjectile("bolt", "*", 1, 5, 3, func(hit []board.Item) {
		struck = hit
	})
	proj.SetAoE(1)

	if err := g.AddProjectile(1, proj, 3, 3); err != nil {
		t.Fatalf("AddProjectile: %v", err)
	}

	if !proj.Fired() {
		t.Fatalf("projectile should have fired on placement against a blocker")
	}
	if got := len(g.projectileRoster[1]); got != 0 {
		t.Fatalf("projectileRoster length = %d; want 0 (resolved on placement, never enrolled)", got)
	}
	if len(struck) != 3 {
		t.Fatalf("struck = %v; want 3 items", struck)
	}
	want := []board.Item{wallA, wallB, wallC}
	for i, item := range want {
		if struck[i] != item {
			t.Errorf("struck[%d] = %v; want %v", i, struck[i], item)
		}
	}
}

// TestProjectileDirectHitOnPlacement covers the non-AoE on-placement path: a
// single blocker yields a one-element struck list and the projectile never
// enters the roster.
func TestProjectileDirectHitOnPlacement(t *testing.T) {
	g, b := newTestGame(t, 10, 10)

	blocker := board.NewWall("wall", "#")
	if err := b.PlaceItem(blocker, 5, 5); err != nil {
		t.Fatalf("place blocker: %v", err)
	}

	var struck []board.Item
	proj := board.NewProjectile("bolt", "*", 1, 5, 3, func(hit []board.Item) { struck = hit })

	if err := g.AddProjectile(1, proj, 5, 5); err != nil {
		t.Fatalf("AddProjectile: %v", err)
	}

	if len(struck) != 1 || struck[0] != blocker {
		t.Fatalf("struck = %v; want [blocker]", struck)
	}
	if got := len(g.projectileRoster[1]); got != 0 {
		t.Fatalf("projectileRoster length = %d; want 0", got)
	}
}

// TestProjectileEntersRosterWhenUnobstructed covers the complementary case:
// an empty target cell places the projectile and enrolls it for actuation.
func TestProjectileEntersRosterWhenUnobstructed(t *testing.T) {
	g, _ := newTestGame(t, 10, 10)

	proj := board.NewProjectile("bolt", "*", 1, 5, 3, nil)
	if err := g.AddProjectile(1, proj, 5, 5); err != nil {
		t.Fatalf("AddProjectile: %v", err)
	}
	if proj.Fired() {
		t.Fatalf("projectile should not have fired when placed on an empty cell")
	}
	if got := len(g.projectileRoster[1]); got != 1 {
		t.Fatalf("projectileRoster length = %d; want 1", got)
	}
}

// TestActuateNPCsProcessesInInsertionOrder verifies spec's roster-order
// invariant: within a single ActuateNPCs call, NPCs are processed in the
// order they were added, not Go map iteration order. Each NPC's actuator
// records its own name in a shared log when NextMove runs.
func TestActuateNPCsProcessesInInsertionOrder(t *testing.T) {
	g, _ := newTestGame(t, 10, 10)

	var order []string
	makeActuator := func(name string) board.Actuator {
		return &recordingActuator{name: name, log: &order}
	}

	names := []string{"first", "second", "third", "fourth"}
	for i, name := range names {
		npc := board.NewNPC(name, "n", 5, 1, 0)
		npc.SetActuator(makeActuator(name))
		if err := g.AddNPC(1, npc, i, 0); err != nil {
			t.Fatalf("AddNPC(%s): %v", name, err)
		}
	}

	if err := g.ActuateNPCs(); err != nil {
		t.Fatalf("ActuateNPCs: %v", err)
	}

	if len(order) != len(names) {
		t.Fatalf("order = %v; want %d entries", order, len(names))
	}
	for i, name := range names {
		if order[i] != name {
			t.Errorf("order[%d] = %q; want %q", i, order[i], name)
		}
	}
}

// recordingActuator records its own name every time NextMove is called and
// always returns NoDir, so the NPC never actually moves (keeps the test
// focused purely on call order, not on board collision semantics). It
// always reports itself running, so ActuateNPCs calls it every time.
type recordingActuator struct {
	name string
	log  *[]string
}

func (a *recordingActuator) State() board.ActuatorState { return board.ActuatorRunning }

func (a *recordingActuator) NextMove() vec.Direction {
	*a.log = append(*a.log, a.name)
	return vec.NoDir
}
