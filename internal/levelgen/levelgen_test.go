package levelgen

import (
	"math/rand"
	"testing"
)

func testConfig(seed int64) Config {
	return Config{
		BoardName:     "test",
		MapWidth:      40,
		MapHeight:     30,
		MinLeafSize:   6,
		MaxLeafSize:   15,
		MinRoomSize:   3,
		RoomPadding:   1,
		CorridorStyle: CorridorLShaped,
		BorderTop:     "#", BorderBottom: "#", BorderLeft: "#", BorderRight: "#",
		VoidCellGlyph: ".",
		NPCBudget:     10,
		NPCTable: []NPCSpawnEntry{
			{Name: "rat", Glyph: "r", MaxHP: 5, Attack: 1, Defense: 0, ThreatCost: 2},
		},
		ItemCount: 3,
		ItemTable: []ItemSpawnEntry{
			{Name: "coin", Glyph: "$", Value: 1, InventorySpace: 1},
		},
		Rand: rand.New(rand.NewSource(seed)),
	}
}

func TestGenerateProducesInBoundsBoard(t *testing.T) {
	cfg := testConfig(1)
	b, result, err := Generate(cfg, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if b.Width != cfg.MapWidth || b.Height != cfg.MapHeight {
		t.Fatalf("board dims = %dx%d; want %dx%d", b.Width, b.Height, cfg.MapWidth, cfg.MapHeight)
	}
	if !b.InBounds(result.PlayerStartRow, result.PlayerStartCol) {
		t.Fatalf("player start (%d,%d) out of bounds", result.PlayerStartRow, result.PlayerStartCol)
	}
	start := b.Item(result.PlayerStartRow, result.PlayerStartCol)
	if start.Kind() != "void" {
		t.Fatalf("player start cell kind = %q; want void (walkable)", start.Kind())
	}
}

func TestGenerateSpawnsAreOnWalkableCells(t *testing.T) {
	cfg := testConfig(2)
	b, result, err := Generate(cfg, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, spawn := range result.NPCs {
		item := b.Item(spawn.Row, spawn.Col)
		if item.Kind() != "void" {
			t.Errorf("NPC spawn at (%d,%d) sits on a %q cell; want void", spawn.Row, spawn.Col, item.Kind())
		}
	}
	for _, spawn := range result.Items {
		item := b.Item(spawn.Row, spawn.Col)
		if item.Kind() != "void" {
			t.Errorf("item spawn at (%d,%d) sits on a %q cell; want void", spawn.Row, spawn.Col, item.Kind())
		}
	}
}

func TestGenerateRespectsItemCount(t *testing.T) {
	cfg := testConfig(3)
	_, result, err := Generate(cfg, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(result.Items) != cfg.ItemCount {
		t.Errorf("len(result.Items) = %d; want %d", len(result.Items), cfg.ItemCount)
	}
}

func TestGenerateNonFloorCellsAreWalled(t *testing.T) {
	cfg := testConfig(4)
	b, result, err := Generate(cfg, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	walkable := map[[2]int]bool{{result.PlayerStartRow, result.PlayerStartCol}: true}
	for _, s := range result.NPCs {
		walkable[[2]int{s.Row, s.Col}] = true
	}

	sawWall := false
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			item := b.Item(row, col)
			if item.Kind() == "wall" {
				sawWall = true
			}
			if item.Kind() != "void" && item.Kind() != "wall" {
				t.Fatalf("cell (%d,%d) has unexpected kind %q", row, col, item.Kind())
			}
		}
	}
	if !sawWall {
		t.Fatalf("generated board has no wall cells at all")
	}
}
