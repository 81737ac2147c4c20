package game

import (
	"tilekernel/internal/board"
	"tilekernel/internal/levelgen"
)

// LoadGeneratedLevel installs b as level n and places every NPC/item spawn
// point levelgen.Generate produced for it. Intended as the single place a
// host wires procedural generation output into the engine, so cmd/tty (and
// tests) don't have to duplicate the NPC-table-to-board.NPC translation.
func (g *Game) LoadGeneratedLevel(n int, b *board.Board, result levelgen.Result) error {
	g.AddBoard(n, b)

	for _, spawn := range result.NPCs {
		npc := board.NewNPC(spawn.Entry.Name, spawn.Entry.Glyph, spawn.Entry.MaxHP, spawn.Entry.Attack, spawn.Entry.Defense)
		if err := g.AddNPC(n, npc, spawn.Row, spawn.Col); err != nil {
			return err
		}
	}

	for _, spawn := range result.Items {
		treasure := board.NewTreasure(spawn.Entry.Name, spawn.Entry.Glyph, spawn.Entry.Value)
		if spawn.Entry.InventorySpace > 0 {
			treasure.Space = spawn.Entry.InventorySpace
		}
		if err := b.PlaceItem(treasure, spawn.Row, spawn.Col); err != nil {
			return err
		}
	}

	return nil
}
