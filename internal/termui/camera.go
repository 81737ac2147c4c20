package termui

// Camera translates between board coordinates and screen coordinates.
// Board columns are doubled because this package's glyphs (often emoji)
// occupy two terminal columns.
type Camera struct {
	OffsetRow  int
	OffsetCol  int
	ViewWidth  int // terminal columns
	ViewHeight int // terminal rows
}

// NewCamera creates a Camera centered on (row, col).
func NewCamera(row, col, viewWidth, viewHeight int) *Camera {
	c := &Camera{ViewWidth: viewWidth, ViewHeight: viewHeight}
	c.Center(row, col)
	return c
}

// Center repositions the camera so board position (row, col) sits in the
// middle of the viewport.
func (c *Camera) Center(row, col int) {
	c.OffsetCol = col - (c.ViewWidth/2)/2
	c.OffsetRow = row - c.ViewHeight/2
}

// ToScreen converts a board (row, col) to a screen (x, y). visible is false
// when the result falls outside the viewport.
func (c *Camera) ToScreen(row, col int) (x, y int, visible bool) {
	x = (col - c.OffsetCol) * 2
	y = row - c.OffsetRow
	visible = x >= 0 && x < c.ViewWidth && y >= 0 && y < c.ViewHeight
	return
}
