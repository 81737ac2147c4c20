// Package levelgen procedurally builds a *board.Board via binary space
// partitioning: split the map into leaves, carve a room in each terminal
// leaf, and connect sibling rooms with corridors. Adapted from the
// teacher's internal/generate BSP splitter and populator, inverted for
// this engine's tile model: Board.NewBoard already fills every cell with a
// walkable Void, so levelgen carves rooms/corridors as floor bookkeeping
// first and then places Wall everywhere else, rather than carving floor
// out of an all-wall map.
package levelgen

import (
	"math/rand"

	"tilekernel/internal/board"
)

// CorridorStyle selects the shape of the tunnels connecting sibling rooms.
type CorridorStyle uint8

const (
	CorridorLShaped CorridorStyle = iota
	CorridorZShaped
	CorridorStraight
)

// NPCSpawnEntry describes one possible NPC spawn and its threat cost
// against Config.NPCBudget.
type NPCSpawnEntry struct {
	Name       string
	Glyph      string
	MaxHP      int
	Attack     int
	Defense    int
	ThreatCost int
}

// ItemSpawnEntry describes one possible Treasure spawn.
type ItemSpawnEntry struct {
	Name           string
	Glyph          string
	Value          int
	InventorySpace int
}

// Config drives procedural generation for one board.
type Config struct {
	BoardName     string
	MapWidth      int
	MapHeight     int
	MinLeafSize   int
	MaxLeafSize   int
	MinRoomSize   int
	RoomPadding   int
	CorridorStyle CorridorStyle

	BorderTop, BorderBottom, BorderLeft, BorderRight string
	VoidCellGlyph                                    string

	NPCBudget int
	NPCTable  []NPCSpawnEntry

	ItemCount int
	ItemTable []ItemSpawnEntry

	Rand *rand.Rand
}

// NPCSpawn is one resolved NPC placement.
type NPCSpawn struct {
	Entry    NPCSpawnEntry
	Row, Col int
}

// ItemSpawn is one resolved Treasure placement.
type ItemSpawn struct {
	Entry    ItemSpawnEntry
	Row, Col int
}

// Result holds everything Generate produced beyond the board itself.
type Result struct {
	PlayerStartRow, PlayerStartCol int
	NPCs                           []NPCSpawn
	Items                          []ItemSpawn
}

// rect is an inclusive-bounds room rectangle, row/col oriented (the
// teacher's gamemap.Rect is X/Y oriented; renamed here to match this
// engine's row/column convention throughout).
type rect struct {
	Row1, Col1, Row2, Col2 int
}

func (r rect) center() (int, int) {
	return (r.Row1 + r.Row2) / 2, (r.Col1 + r.Col2) / 2
}

// Generate builds a new board of cfg's dimensions, carves a BSP dungeon
// into it, and populates it with NPC and item spawn points drawn from
// cfg's tables.
func Generate(cfg Config, logger board.Logger) (*board.Board, Result, error) {
	floor := make(map[[2]int]bool)
	var rooms []rect

	root := &bspLeaf{Row: 0, Col: 0, H: cfg.MapHeight, W: cfg.MapWidth}
	leaves := []*bspLeaf{root}
	splitAny := true
	for splitAny {
		splitAny = false
		var next []*bspLeaf
		for _, leaf := range leaves {
			if leaf.left != nil || leaf.right != nil {
				next = append(next, leaf.left, leaf.right)
				continue
			}
			if leaf.H > cfg.MaxLeafSize || leaf.W > cfg.MaxLeafSize || cfg.Rand.Float64() > 0.25 {
				if leaf.split(cfg) {
					next = append(next, leaf.left, leaf.right)
					splitAny = true
					continue
				}
			}
			next = append(next, leaf)
		}
		leaves = next
	}

	root.createRooms(cfg, floor, &rooms)
	root.connectChildren(cfg, floor)

	b, err := board.NewBoard(board.Config{
		Name:          cfg.BoardName,
		Width:         cfg.MapWidth,
		Height:        cfg.MapHeight,
		BorderTop:     cfg.BorderTop,
		BorderBottom:  cfg.BorderBottom,
		BorderLeft:    cfg.BorderLeft,
		BorderRight:   cfg.BorderRight,
		VoidCellGlyph: cfg.VoidCellGlyph,
	}, logger)
	if err != nil {
		return nil, Result{}, err
	}

	for row := 0; row < cfg.MapHeight; row++ {
		for col := 0; col < cfg.MapWidth; col++ {
			if floor[[2]int{row, col}] {
				continue
			}
			if err := b.PlaceItem(board.NewWall("wall", "#"), row, col); err != nil {
				return nil, Result{}, err
			}
		}
	}

	var result Result
	result.PlayerStartRow, result.PlayerStartCol = cfg.MapHeight/2, cfg.MapWidth/2
	if len(rooms) > 0 {
		result.PlayerStartRow, result.PlayerStartCol = rooms[0].center()
	}
	b.PlayerStartingPosition = board.Position{Row: result.PlayerStartRow, Column: result.PlayerStartCol}

	populate(cfg, rooms, &result)
	return b, result, nil
}
