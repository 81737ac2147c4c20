package board

// octant transform matrices: for each octant, a (dx, dy) sweep pair maps to
// a board offset via row = cy + dx*yx + dy*yy, col = cx + dx*xx + dy*xy.
// These are the standard RogueBasin recursive shadowcasting multipliers.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// UpdateFOV recomputes visibility from (originRow, originCol) out to
// radius cells using recursive shadowcasting over eight octants. Cells
// whose occupant reports Opaque() block the sweep past them. Visible marks
// every newly-lit cell as also Explored, and Explored is sticky across
// calls — it is never cleared.
func (b *Board) UpdateFOV(originRow, originCol, radius int) {
	for r := 0; r < b.Height; r++ {
		for c := 0; c < b.Width; c++ {
			b.visible[r][c] = false
		}
	}
	if !b.InBounds(originRow, originCol) {
		return
	}
	b.visible[originRow][originCol] = true
	b.explored[originRow][originCol] = true

	for _, m := range octants {
		b.castLight(originRow, originCol, 1, 1.0, 0.0, radius, m[0], m[1], m[2], m[3])
	}
}

// Visible reports whether (row, col) is lit by the most recent UpdateFOV.
func (b *Board) Visible(row, col int) bool {
	if !b.InBounds(row, col) {
		return false
	}
	return b.visible[row][col]
}

// Explored reports whether (row, col) has ever been lit by UpdateFOV.
func (b *Board) Explored(row, col int) bool {
	if !b.InBounds(row, col) {
		return false
	}
	return b.explored[row][col]
}

func (b *Board) isOpaque(row, col int) bool {
	if !b.InBounds(row, col) {
		return true
	}
	return b.matrix[row][col].Opaque()
}

// castLight lights one octant of the sweep, recursing into child beams
// whenever it passes behind a newly discovered wall run.
func (b *Board) castLight(cy, cx, row int, start, end float64, radius, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := float64(radius * radius)
	newStart := start

	for j := row; j <= radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wr := cy + dx*yx + dy*yy
			wc := cx + dx*xx + dy*xy

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			if float64(dx*dx+dy*dy) < radiusSq && b.InBounds(wr, wc) {
				b.visible[wr][wc] = true
				b.explored[wr][wc] = true
			}

			opaque := b.isOpaque(wr, wc)

			if blocked {
				if opaque {
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if opaque && j < radius {
				blocked = true
				b.castLight(cy, cx, j+1, start, lSlope, radius, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
