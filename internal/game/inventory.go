package game

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Inventory holds gold and item stacks keyed by id. A missing key means a
// quantity of zero; stored stacks are never empty.
type Inventory struct {
	Gold  uint64          `json:"gold"`
	Items map[ItemID]Item `json:"items"`
}

func NewInventory() Inventory {
	return Inventory{Items: make(map[ItemID]Item)}
}

// AddItem merges item into its stack. Stacks saturate instead of wrapping.
func (inv *Inventory) AddItem(item Item) {
	if item.Quantity == 0 {
		return
	}
	if inv.Items == nil {
		inv.Items = make(map[ItemID]Item)
	}
	if existing, ok := inv.Items[item.ID]; ok {
		if existing.Quantity > math.MaxUint64-item.Quantity {
			existing.Quantity = math.MaxUint64
		} else {
			existing.Quantity += item.Quantity
		}
		inv.Items[item.ID] = existing
		return
	}
	inv.Items[item.ID] = item
}

func (inv *Inventory) RemoveItem(item Item) error {
	existing, ok := inv.Items[item.ID]
	if !ok {
		return fmt.Errorf("item %d not in inventory: %w", item.ID, ErrInsufficientStock)
	}
	switch {
	case existing.Quantity > item.Quantity:
		existing.Quantity -= item.Quantity
		inv.Items[item.ID] = existing
	case existing.Quantity == item.Quantity:
		delete(inv.Items, item.ID)
	default:
		return fmt.Errorf("item %d has only %d left: %w", item.ID, existing.Quantity, ErrInsufficientStock)
	}
	return nil
}

func (inv Inventory) ItemQuantity(id ItemID) uint64 {
	return inv.Items[id].Quantity
}

func (inv *Inventory) AddGold(amount uint64) {
	if inv.Gold > math.MaxUint64-amount {
		inv.Gold = math.MaxUint64
		return
	}
	inv.Gold += amount
}

func (inv *Inventory) RemoveGold(amount uint64) error {
	if inv.Gold < amount {
		return fmt.Errorf("have %d gold, need %d: %w", inv.Gold, amount, ErrInsufficientGold)
	}
	inv.Gold -= amount
	return nil
}

// Stacks returns the stored items ordered by id.
func (inv Inventory) Stacks() []Item {
	out := make([]Item, 0, len(inv.Items))
	for _, item := range inv.Items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (inv Inventory) String() string {
	parts := make([]string, 0, len(inv.Items))
	for _, item := range inv.Stacks() {
		parts = append(parts, fmt.Sprintf("%d: %d", item.ID, item.Quantity))
	}
	return strings.Join(parts, ", ")
}
