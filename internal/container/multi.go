package container

import (
	"fmt"
	"strings"

	"github.com/osse101/LootContainers_Go/internal/domain"
)

// Multi is a composite container. It owns its children exclusively; no two
// slots ever point at the same instance.
type Multi struct {
	name        string
	children    []Container
	emptyWeight int
	owned       bool
}

// NewMulti resolves childNames in order. A child is placed as is only when
// neither it nor anything nested in it is already in this Multi, and no other
// composite owns it. Otherwise a duplicate takes the slot, so every slot keeps
// its own weight pool. Unknown names fail construction before anything is
// claimed.
func NewMulti(name string, childNames []string, containers Finder) (*Multi, error) {
	resolved := make([]Container, 0, len(childNames))
	for _, childName := range childNames {
		child, ok := containers.Find(childName)
		if !ok {
			return nil, fmt.Errorf(ErrFmtChildNotFound, domain.ErrContainerNotFound, childName, name)
		}
		resolved = append(resolved, child)
	}

	m := &Multi{
		name:     name,
		children: make([]Container, 0, len(resolved)),
	}
	for _, child := range resolved {
		if m.holdsAny(child) || !claim(child) {
			child = child.Duplicate()
			claim(child)
		}
		m.children = append(m.children, child)
	}

	for _, child := range m.children {
		m.emptyWeight += child.EmptyWeight()
	}
	return m, nil
}

// holds reports whether c is placed anywhere in m's tree.
func (m *Multi) holds(c Container) bool {
	for _, child := range m.children {
		if walk(child, func(placed Container) bool { return placed == c }) {
			return true
		}
	}
	return false
}

// holdsAny reports whether c or anything nested in c is already in m's tree.
func (m *Multi) holdsAny(c Container) bool {
	return walk(c, m.holds)
}

func (m *Multi) claim() bool {
	if m.owned {
		return false
	}
	m.owned = true
	return true
}

func (m *Multi) Name() string { return m.name }

// EmptyWeight is the sum of the children's empty weights, fixed at
// construction. It is informational; TotalWeight does not add it again.
func (m *Multi) EmptyWeight() int { return m.emptyWeight }

// Children returns the child containers in composition order.
func (m *Multi) Children() []Container {
	out := make([]Container, len(m.children))
	copy(out, m.children)
	return out
}

// TotalWeight sums the children's total weights.
func (m *Multi) TotalWeight() int {
	total := 0
	for _, child := range m.children {
		total += child.TotalWeight()
	}
	return total
}

// Loot places the item in the first child with room, searching depth first.
// An unknown item stops the search at once.
func (m *Multi) Loot(itemName string) Result {
	for _, child := range m.children {
		res := child.Loot(itemName)
		switch res.Status {
		case StatusNoRoom:
			continue
		default:
			return res
		}
	}
	return Result{Status: StatusNoRoom, Item: itemName, Container: m.name}
}

// Summary reports zero capacity: a composite has none of its own.
func (m *Multi) Summary() Summary {
	return Summary{
		Name:        m.name,
		TotalWeight: m.TotalWeight(),
		EmptyWeight: m.emptyWeight,
	}
}

func (m *Multi) ListContents(indent string) string {
	var b strings.Builder
	writeLine(&b, indent, m.Summary().String())
	for _, child := range m.children {
		b.WriteString(child.ListContents(indent + domain.IndentUnit))
	}
	return b.String()
}

// Duplicate copies the composition with every child duplicated.
func (m *Multi) Duplicate() Container {
	children := make([]Container, len(m.children))
	for i, child := range m.children {
		children[i] = child.Duplicate()
		claim(children[i])
	}
	return &Multi{
		name:        m.name,
		children:    children,
		emptyWeight: m.emptyWeight,
	}
}
