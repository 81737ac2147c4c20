package board

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"tilekernel/internal/boarderr"
)

// itemSpace returns an item's inventory footprint: SpaceConsumer.InventorySpace()
// if implemented, otherwise the default of 1 unit.
func itemSpace(item Item) int {
	if sc, ok := item.(SpaceConsumer); ok {
		return sc.InventorySpace()
	}
	return 1
}

// Inventory is a capacity-bounded, keyed collection of pickable items.
type Inventory struct {
	MaxSize int

	items map[string]Item
	order []string // insertion order, for stable Search/iteration
}

// NewInventory creates an empty Inventory with the given capacity.
func NewInventory(maxSize int) *Inventory {
	return &Inventory{MaxSize: maxSize, items: make(map[string]Item)}
}

// AddItem inserts item under its Name(), disambiguating empty or duplicate
// names with a UUID suffix. Fails with ErrNotPickable if the item isn't
// pickable, or ErrNotEnoughSpace if it would exceed MaxSize.
func (inv *Inventory) AddItem(item Item) error {
	if !item.Pickable() {
		return fmt.Errorf("%w: %s", boarderr.ErrNotPickable, item.Kind())
	}

	key := item.Name()
	if key == "" {
		key = item.Kind() + "-" + uuid.NewString()
		item.SetName(key)
	} else if _, exists := inv.items[key]; exists {
		key = key + "-" + uuid.NewString()
		item.SetName(key)
	}

	if inv.Size()+itemSpace(item) > inv.MaxSize {
		return fmt.Errorf("%w: %s needs %d, only %d free", boarderr.ErrNotEnoughSpace,
			key, itemSpace(item), inv.MaxSize-inv.Size())
	}

	inv.items[key] = item
	inv.order = append(inv.order, key)
	return nil
}

// Size returns the sum of InventorySpace() over all contents.
func (inv *Inventory) Size() int {
	total := 0
	for _, item := range inv.items {
		total += itemSpace(item)
	}
	return total
}

// Value returns the sum of Value() over contents that implement Valuable.
func (inv *Inventory) Value() int {
	total := 0
	for _, item := range inv.items {
		if v, ok := item.(Valuable); ok {
			total += v.Value()
		}
	}
	return total
}

// Search returns every item whose key contains query, in insertion order.
func (inv *Inventory) Search(query string) []Item {
	var results []Item
	for _, key := range inv.order {
		if item, ok := inv.items[key]; ok && strings.Contains(key, query) {
			results = append(results, item)
		}
	}
	return results
}

// GetItem returns the item stored under the exact key name.
func (inv *Inventory) GetItem(name string) (Item, error) {
	item, ok := inv.items[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", boarderr.ErrNoItemByThatName, name)
	}
	return item, nil
}

// DeleteItem removes the item stored under the exact key name.
func (inv *Inventory) DeleteItem(name string) error {
	if _, ok := inv.items[name]; !ok {
		return fmt.Errorf("%w: %s", boarderr.ErrNoItemByThatName, name)
	}
	delete(inv.items, name)
	for i, key := range inv.order {
		if key == name {
			inv.order = append(inv.order[:i], inv.order[i+1:]...)
			break
		}
	}
	return nil
}

// Items returns every item currently held, in insertion order.
func (inv *Inventory) Items() []Item {
	result := make([]Item, 0, len(inv.order))
	for _, key := range inv.order {
		result = append(result, inv.items[key])
	}
	return result
}
