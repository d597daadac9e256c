package catalog

import (
	"fmt"
	"sort"

	"github.com/osse101/LootContainers_Go/internal/domain"
)

// Catalog is the append-only registry of known items.
//
// Registering a name twice keeps both entries in All, but Find keeps
// answering with the first one.
type Catalog struct {
	items  []*domain.Item
	byName map[string]*domain.Item
}

// New creates an empty catalog
func New() *Catalog {
	return &Catalog{
		byName: make(map[string]*domain.Item),
	}
}

// Register appends a new item and returns it.
func (c *Catalog) Register(name string, weight int) (*domain.Item, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyName)
	}
	if weight < 0 {
		return nil, fmt.Errorf(ErrFmtNegativeWeight, domain.ErrInvalidInput, name, weight)
	}

	item := &domain.Item{Name: name, Weight: weight}
	c.items = append(c.items, item)

	if _, exists := c.byName[name]; !exists {
		c.byName[name] = item
	}
	return item, nil
}

// Find looks up an item by exact name. Absence is reported through ok.
func (c *Catalog) Find(name string) (*domain.Item, bool) {
	item, ok := c.byName[name]
	return item, ok
}

// All returns the items in registration order.
func (c *Catalog) All() []*domain.Item {
	out := make([]*domain.Item, len(c.items))
	copy(out, c.items)
	return out
}

// Sorted returns the items ordered by name, for display.
func (c *Catalog) Sorted() []*domain.Item {
	out := c.All()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// Len returns the number of registered items, duplicates included.
func (c *Catalog) Len() int {
	return len(c.items)
}
