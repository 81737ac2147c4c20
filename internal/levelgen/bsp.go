package levelgen

// bspLeaf is a node in the binary space partition tree, grounded verbatim
// on the teacher's bspLeaf (internal/generate/bsp.go), renamed from X/Y/W/H
// to Row/Col/H/W to match this engine's row-major coordinate convention.
type bspLeaf struct {
	Row, Col, W, H int
	left, right    *bspLeaf
	room           *rect
}

// split divides the leaf into two children, returning false when it's
// already split or too small to split further.
func (l *bspLeaf) split(cfg Config) bool {
	if l.left != nil || l.right != nil {
		return false
	}
	splitH := cfg.Rand.Intn(2) == 0
	if l.W > l.H && float64(l.W)/float64(l.H) >= 1.25 {
		splitH = false
	} else if l.H > l.W && float64(l.H)/float64(l.W) >= 1.25 {
		splitH = true
	}

	maxSize := l.H
	if !splitH {
		maxSize = l.W
	}
	if maxSize <= cfg.MinLeafSize*2 {
		return false
	}

	lo := cfg.MinLeafSize
	hi := maxSize - cfg.MinLeafSize
	if lo >= hi {
		return false
	}
	at := lo + cfg.Rand.Intn(hi-lo+1)

	if splitH {
		l.left = &bspLeaf{Row: l.Row, Col: l.Col, W: l.W, H: at}
		l.right = &bspLeaf{Row: l.Row + at, Col: l.Col, W: l.W, H: l.H - at}
	} else {
		l.left = &bspLeaf{Row: l.Row, Col: l.Col, W: at, H: l.H}
		l.right = &bspLeaf{Row: l.Row, Col: l.Col + at, W: l.W - at, H: l.H}
	}
	return true
}

// createRooms recursively carves a room inside every terminal leaf,
// recording its floor cells in floor and appending the room to rooms.
func (l *bspLeaf) createRooms(cfg Config, floor map[[2]int]bool, rooms *[]rect) {
	if l.left != nil || l.right != nil {
		if l.left != nil {
			l.left.createRooms(cfg, floor, rooms)
		}
		if l.right != nil {
			l.right.createRooms(cfg, floor, rooms)
		}
		return
	}

	pad := cfg.RoomPadding
	minW, minH := cfg.MinRoomSize, cfg.MinRoomSize

	availW := l.W - 2*pad
	availH := l.H - 2*pad
	if availW < minW {
		availW = minW
	}
	if availH < minH {
		availH = minH
	}

	rw := minW + cfg.Rand.Intn(max(1, availW-minW+1))
	rh := minH + cfg.Rand.Intn(max(1, availH-minH+1))
	if rw > l.W-2*pad {
		rw = l.W - 2*pad
	}
	if rh > l.H-2*pad {
		rh = l.H - 2*pad
	}
	if rw < 3 {
		rw = 3
	}
	if rh < 3 {
		rh = 3
	}

	rr := l.Row + pad + cfg.Rand.Intn(max(1, l.H-rh-2*pad+1))
	rc := l.Col + pad + cfg.Rand.Intn(max(1, l.W-rw-2*pad+1))

	if rr < 1 {
		rr = 1
	}
	if rc < 1 {
		rc = 1
	}
	if rr+rh >= cfg.MapHeight {
		rh = cfg.MapHeight - rr - 1
	}
	if rc+rw >= cfg.MapWidth {
		rw = cfg.MapWidth - rc - 1
	}
	if rw < 3 || rh < 3 {
		return
	}

	room := rect{Row1: rr, Col1: rc, Row2: rr + rh - 1, Col2: rc + rw - 1}
	l.room = &room
	for row := room.Row1; row <= room.Row2; row++ {
		for col := room.Col1; col <= room.Col2; col++ {
			floor[[2]int{row, col}] = true
		}
	}
	*rooms = append(*rooms, room)
}

// getRoom returns a room belonging to this leaf's subtree, for corridor
// endpoint selection.
func (l *bspLeaf) getRoom() *rect {
	if l.room != nil {
		return l.room
	}
	var lRoom, rRoom *rect
	if l.left != nil {
		lRoom = l.left.getRoom()
	}
	if l.right != nil {
		rRoom = l.right.getRoom()
	}
	if lRoom == nil {
		return rRoom
	}
	return lRoom
}

// connectChildren carves a corridor between the two children of a split
// leaf, recursing first so deeper splits are connected before their
// ancestors.
func (l *bspLeaf) connectChildren(cfg Config, floor map[[2]int]bool) {
	if l.left == nil || l.right == nil {
		return
	}
	l.left.connectChildren(cfg, floor)
	l.right.connectChildren(cfg, floor)

	lRoom := l.left.getRoom()
	rRoom := l.right.getRoom()
	if lRoom == nil || rRoom == nil {
		return
	}
	lr, lc := lRoom.center()
	rr, rc := rRoom.center()
	carveCorridor(cfg, floor, lr, lc, rr, rc)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
