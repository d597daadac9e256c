package container

import (
	"strings"

	"github.com/osse101/LootContainers_Go/internal/domain"
)

// Standard is a leaf container. It holds items up to a weight capacity.
type Standard struct {
	name        string
	emptyWeight int
	capacity    int
	carried     int
	items       []*domain.Item
	catalog     ItemFinder
	owned       bool
}

// NewStandard creates an empty container that resolves item names through
// catalog.
func NewStandard(name string, emptyWeight, capacity int, catalog ItemFinder) *Standard {
	return &Standard{
		name:        name,
		emptyWeight: emptyWeight,
		capacity:    capacity,
		catalog:     catalog,
	}
}

func (s *Standard) Name() string { return s.name }

func (s *Standard) EmptyWeight() int { return s.emptyWeight }

// Capacity is the most item weight the container can carry.
func (s *Standard) Capacity() int { return s.capacity }

// CarriedWeight is the summed weight of the stored items.
func (s *Standard) CarriedWeight() int { return s.carried }

// TotalWeight includes the container itself.
func (s *Standard) TotalWeight() int {
	return s.emptyWeight + s.carried
}

// Items returns the stored items in the order they were looted.
func (s *Standard) Items() []*domain.Item {
	out := make([]*domain.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Loot stores the item if the catalog knows it and it fits.
func (s *Standard) Loot(itemName string) Result {
	item, ok := s.catalog.Find(itemName)
	if !ok {
		return Result{Status: StatusNotFound, Item: itemName, Container: s.name}
	}
	if item.Weight > s.capacity-s.carried {
		return Result{Status: StatusNoRoom, Item: item.Name, Container: s.name}
	}

	s.items = append(s.items, item)
	s.carried += item.Weight
	return Result{Status: StatusStored, Item: item.Name, Container: s.name}
}

func (s *Standard) Summary() Summary {
	return Summary{
		Name:          s.name,
		TotalWeight:   s.TotalWeight(),
		EmptyWeight:   s.emptyWeight,
		CarriedWeight: s.carried,
		Capacity:      s.capacity,
	}
}

func (s *Standard) ListContents(indent string) string {
	var b strings.Builder
	writeLine(&b, indent, s.Summary().String())
	for _, item := range s.items {
		writeLine(&b, indent+domain.IndentUnit, item.String())
	}
	return b.String()
}

// Duplicate returns an empty copy with the same limits.
func (s *Standard) Duplicate() Container {
	return NewStandard(s.name, s.emptyWeight, s.capacity, s.catalog)
}

func (s *Standard) claim() bool {
	if s.owned {
		return false
	}
	s.owned = true
	return true
}
