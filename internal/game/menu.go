package game

import (
	"fmt"
	"strings"

	"tilekernel/internal/boarderr"
)

// MenuOrientation selects how DisplayMenu joins entries together.
type MenuOrientation uint8

const (
	// OrientationVertical joins entries with a newline, one per line.
	OrientationVertical MenuOrientation = iota
	// OrientationHorizontal joins entries with a pipe, inserting a line
	// break every paginate entries.
	OrientationHorizontal
)

// MenuEntry is one selectable line in a menu category: a shortcut key, the
// text shown to the player, and an opaque payload the host resolves when
// the shortcut is chosen.
type MenuEntry struct {
	Shortcut string
	Message  string
	Data     any
}

// SetMenu replaces category's entries wholesale, in the given order.
func (g *Game) SetMenu(category string, entries []MenuEntry) {
	g.menus[category] = entries
}

// AddMenuEntry appends e to category, creating it if absent.
func (g *Game) AddMenuEntry(category string, e MenuEntry) {
	g.menus[category] = append(g.menus[category], e)
}

// DisplayMenu renders category's entries as a single string: one line per
// entry in OrientationVertical, or pipe-separated with a line break every
// paginate entries in OrientationHorizontal (paginate <= 0 disables
// pagination — everything on one line). Fails with ErrUnknownMenuCategory
// if category was never set.
func (g *Game) DisplayMenu(category string, orientation MenuOrientation, paginate int) (string, error) {
	entries, ok := g.menus[category]
	if !ok {
		return "", fmt.Errorf("%w: %s", boarderr.ErrUnknownMenuCategory, category)
	}

	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf("%s) %s", e.Shortcut, e.Message)
	}

	if orientation == OrientationVertical {
		return strings.Join(lines, "\n"), nil
	}

	if paginate <= 0 {
		return strings.Join(lines, " | "), nil
	}

	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			if i%paginate == 0 {
				b.WriteByte('\n')
			} else {
				b.WriteString(" | ")
			}
		}
		b.WriteString(line)
	}
	return b.String(), nil
}

// MenuEntryByShortcut returns the entry in category matching shortcut, or
// false if category is unknown or no entry matches.
func (g *Game) MenuEntryByShortcut(category, shortcut string) (MenuEntry, bool) {
	for _, e := range g.menus[category] {
		if e.Shortcut == shortcut {
			return e, true
		}
	}
	return MenuEntry{}, false
}
