package levelgen

// carveCorridor marks the floor cells of a tunnel between (r1,c1) and
// (r2,c2), shaped per cfg.CorridorStyle. Grounded on the teacher's
// carveCorridor (internal/generate/corridor.go), translated from
// "carve floor into an all-wall map" to "mark floor cells" since this
// engine's board starts all-Void (walkable) rather than all-wall.
func carveCorridor(cfg Config, floor map[[2]int]bool, r1, c1, r2, c2 int) {
	switch cfg.CorridorStyle {
	case CorridorZShaped:
		carveZShaped(floor, r1, c1, r2, c2)
	case CorridorStraight:
		carveRow(floor, r1, c1, c2)
		carveCol(floor, c2, r1, r2)
	default: // CorridorLShaped
		if cfg.Rand.Intn(2) == 0 {
			carveRow(floor, r1, c1, c2)
			carveCol(floor, c2, r1, r2)
		} else {
			carveCol(floor, c1, r1, r2)
			carveRow(floor, r2, c1, c2)
		}
	}
}

func carveRow(floor map[[2]int]bool, row, c1, c2 int) {
	if c1 > c2 {
		c1, c2 = c2, c1
	}
	for c := c1; c <= c2; c++ {
		floor[[2]int{row, c}] = true
	}
}

func carveCol(floor map[[2]int]bool, col, r1, r2 int) {
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	for r := r1; r <= r2; r++ {
		floor[[2]int{r, col}] = true
	}
}

func carveZShaped(floor map[[2]int]bool, r1, c1, r2, c2 int) {
	mid := (c1 + c2) / 2
	carveCol(floor, mid, r1, r2)
	carveRow(floor, r1, c1, mid)
	carveRow(floor, r2, mid, c2)
}
