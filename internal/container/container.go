// Package container implements weight-limited loot containers.
//
// A Standard container holds items directly. A Multi container holds other
// containers and places each item in the first child, depth first, that has
// room for it.
package container

import (
	"fmt"
	"strings"

	"github.com/osse101/LootContainers_Go/internal/domain"
)

// Container is the behaviour shared by leaf and composite containers.
type Container interface {
	Name() string
	EmptyWeight() int
	TotalWeight() int

	// Loot tries to store the named item. State only changes when the
	// returned status is StatusStored.
	Loot(itemName string) Result

	// ListContents renders the container and everything inside it, one line
	// per entry, starting at the given indent.
	ListContents(indent string) string

	Summary() Summary

	// Duplicate returns an empty, independent container with the same
	// name and limits.
	Duplicate() Container
}

// ItemFinder resolves item names against the catalog.
type ItemFinder interface {
	Find(name string) (*domain.Item, bool)
}

// Finder resolves container names.
type Finder interface {
	Find(name string) (Container, bool)
}

// claimable is implemented by containers that a composite can take ownership
// of. claim reports false once another composite owns the container.
type claimable interface {
	claim() bool
}

// claim takes ownership of c. Containers from outside this package have no
// owner to track and are always claimable.
func claim(c Container) bool {
	if cl, ok := c.(claimable); ok {
		return cl.claim()
	}
	return true
}

// walk calls fn for c and, depth first, for everything nested in it. It stops
// and returns true as soon as fn does.
func walk(c Container, fn func(Container) bool) bool {
	if fn(c) {
		return true
	}
	if m, ok := c.(*Multi); ok {
		for _, child := range m.children {
			if walk(child, fn) {
				return true
			}
		}
	}
	return false
}

// Summary is the one-line description of a container.
type Summary struct {
	Name          string `json:"name"`
	TotalWeight   int    `json:"total_weight"`
	EmptyWeight   int    `json:"empty_weight"`
	CarriedWeight int    `json:"carried_weight"`
	Capacity      int    `json:"capacity"`
}

func (s Summary) String() string {
	return fmt.Sprintf(domain.ContainerLineFormat, s.Name, s.TotalWeight, s.EmptyWeight, s.CarriedWeight, s.Capacity)
}

func writeLine(b *strings.Builder, indent, line string) {
	b.WriteString(indent)
	b.WriteString(line)
	b.WriteByte('\n')
}
