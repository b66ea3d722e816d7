package game

import (
	"fmt"
	"sort"
)

type ItemID uint64

// Item is a stack of one item kind.
type Item struct {
	ID       ItemID `json:"id" yaml:"id"`
	Quantity uint64 `json:"quantity" yaml:"quantity"`
}

func NewItem(id ItemID, quantity uint64) Item {
	return Item{ID: id, Quantity: quantity}
}

// ItemData is static display metadata for an item id.
type ItemData struct {
	ID          ItemID `json:"id" jsonschema:"minimum=1"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ItemDatabase map[ItemID]ItemData

func (db ItemDatabase) Name(id ItemID) string {
	if data, ok := db[id]; ok && data.Name != "" {
		return data.Name
	}
	return fmt.Sprintf("item #%d", id)
}

func (db ItemDatabase) IDs() []ItemID {
	ids := make([]ItemID, 0, len(db))
	for id := range db {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
