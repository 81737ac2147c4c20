package levelgen

// populate places NPC and item spawns into rooms, grounded on the
// teacher's Populate (internal/generate/populator.go): skip the first room
// (player spawn) when budgeting enemies, spend a threat budget picking
// affordable entries, then scatter item spawns across every room.
func populate(cfg Config, rooms []rect, result *Result) {
	if len(rooms) == 0 {
		return
	}

	occupied := make(map[[2]int]bool)
	claim := func(row, col int) { occupied[[2]int{row, col}] = true }

	placeable := rooms
	if len(rooms) > 1 {
		placeable = rooms[1:]
	}

	budget := cfg.NPCBudget
	for budget > 0 && len(cfg.NPCTable) > 0 && len(placeable) > 0 {
		affordable := affordableNPCs(cfg.NPCTable, budget)
		if len(affordable) == 0 {
			break
		}
		entry := affordable[cfg.Rand.Intn(len(affordable))]
		room := placeable[cfg.Rand.Intn(len(placeable))]
		row, col := pickFree(room, cfg, occupied)
		claim(row, col)
		result.NPCs = append(result.NPCs, NPCSpawn{Entry: entry, Row: row, Col: col})
		budget -= entry.ThreatCost
	}

	for i := 0; i < cfg.ItemCount && len(cfg.ItemTable) > 0; i++ {
		entry := cfg.ItemTable[cfg.Rand.Intn(len(cfg.ItemTable))]
		room := rooms[cfg.Rand.Intn(len(rooms))]
		row, col := pickFree(room, cfg, occupied)
		claim(row, col)
		result.Items = append(result.Items, ItemSpawn{Entry: entry, Row: row, Col: col})
	}
}

func affordableNPCs(table []NPCSpawnEntry, budget int) []NPCSpawnEntry {
	var out []NPCSpawnEntry
	for _, e := range table {
		if e.ThreatCost <= budget {
			out = append(out, e)
		}
	}
	return out
}

// pickFree tries up to 20 times to find an unoccupied position inside room,
// falling back to any position so very crowded rooms never loop forever.
func pickFree(room rect, cfg Config, occupied map[[2]int]bool) (int, int) {
	const maxAttempts = 20
	for i := 0; i < maxAttempts; i++ {
		row, col := randomInRoom(room, cfg)
		if !occupied[[2]int{row, col}] {
			return row, col
		}
	}
	return randomInRoom(room, cfg)
}

func randomInRoom(room rect, cfg Config) (int, int) {
	row1, col1 := room.Row1+1, room.Col1+1
	row2, col2 := room.Row2-1, room.Col2-1
	if row1 > row2 || col1 > col2 {
		row1, col1 = room.Row1, room.Col1
		row2, col2 = room.Row2, room.Col2
	}
	h := row2 - row1 + 1
	w := col2 - col1 + 1
	return row1 + cfg.Rand.Intn(max(1, h)), col1 + cfg.Rand.Intn(max(1, w))
}
