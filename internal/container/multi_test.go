package container

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LootContainers_Go/internal/domain"
)

func TestMultiFirstFitWithFallback(t *testing.T) {
	cat := newTestCatalog(t,
		domain.Item{Name: "statue", Weight: 7},
		domain.Item{Name: "pebble", Weight: 1},
		domain.Item{Name: "boulder", Weight: 50},
	)
	reg := NewRegistry()
	a := NewStandard("A", 1, 5, cat)
	b := NewStandard("B", 2, 10, cat)
	reg.Register(a)
	reg.Register(b)

	m, err := NewMulti("pack", []string{"A", "B"}, reg)
	require.NoError(t, err)

	t.Run("falls back to the next child", func(t *testing.T) {
		res := m.Loot("statue")

		require.True(t, res.OK())
		assert.Equal(t, "B", res.Container)
		assert.Equal(t, 0, a.CarriedWeight())
		assert.Equal(t, 7, b.CarriedWeight())
		assert.Equal(t, a.EmptyWeight()+b.EmptyWeight()+7, m.TotalWeight())
	})

	t.Run("prefers the leftmost child", func(t *testing.T) {
		res := m.Loot("pebble")

		require.True(t, res.OK())
		assert.Equal(t, "A", res.Container)
		assert.Equal(t, 1, a.CarriedWeight())
		assert.Equal(t, 7, b.CarriedWeight())
	})

	t.Run("no child has room", func(t *testing.T) {
		res := m.Loot("boulder")

		assert.Equal(t, StatusNoRoom, res.Status)
		assert.Equal(t, "pack", res.Container, "failure names the composite, not a child")
		assert.Equal(t, `Failure! Item "boulder" NOT stored in container "pack".`, res.Err().Error())
		assert.Equal(t, 1, a.CarriedWeight())
		assert.Equal(t, 7, b.CarriedWeight())
	})

	t.Run("unknown item", func(t *testing.T) {
		res := m.Loot("ghost")

		assert.Equal(t, StatusNotFound, res.Status)
		require.ErrorIs(t, res.Err(), domain.ErrItemNotFound)
		assert.Equal(t, 1, a.CarriedWeight())
		assert.Equal(t, 7, b.CarriedWeight())
	})
}

func TestMultiNotFoundStopsSearch(t *testing.T) {
	first := &stubContainer{name: "first", result: Result{Status: StatusNotFound, Item: "ghost", Container: "first"}}
	second := &stubContainer{name: "second", result: Result{Status: StatusStored, Item: "ghost", Container: "second"}}
	reg := NewRegistry()
	reg.Register(first)
	reg.Register(second)

	m, err := NewMulti("pack", []string{"first", "second"}, reg)
	require.NoError(t, err)

	res := m.Loot("ghost")

	assert.Equal(t, StatusNotFound, res.Status)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls, "search stops on an unknown item")
}

func TestMultiDuplicatesRepeatedChildren(t *testing.T) {
	cat := newTestCatalog(t, domain.Item{Name: "brick", Weight: 4})
	reg := NewRegistry()
	pouch := NewStandard("pouch", 1, 4, cat)
	reg.Register(pouch)

	m, err := NewMulti("belt", []string{"pouch", "pouch"}, reg)
	require.NoError(t, err)

	children := m.Children()
	require.Len(t, children, 2)
	assert.Same(t, pouch, children[0], "first slot keeps the registered instance")
	assert.NotSame(t, pouch, children[1])
	assert.Equal(t, 2, m.EmptyWeight())

	require.True(t, m.Loot("brick").OK())
	second, ok := children[1].(*Standard)
	require.True(t, ok)
	assert.Equal(t, 4, pouch.CarriedWeight())
	assert.Equal(t, 0, second.CarriedWeight(), "the copy has its own weight pool")

	res := m.Loot("brick")
	require.True(t, res.OK(), "second brick goes to the copy")
	assert.Equal(t, 4, pouch.CarriedWeight())
	assert.Equal(t, 4, second.CarriedWeight())

	assert.False(t, m.Loot("brick").OK())
	assert.Equal(t, 10, m.TotalWeight())
}

func TestMultiDoesNotShareChildrenAcrossComposites(t *testing.T) {
	cat := newTestCatalog(t, domain.Item{Name: "coin", Weight: 1})
	reg := NewRegistry()
	purse := NewStandard("purse", 0, 3, cat)
	reg.Register(purse)

	left, err := NewMulti("left", []string{"purse"}, reg)
	require.NoError(t, err)
	right, err := NewMulti("right", []string{"purse", "purse"}, reg)
	require.NoError(t, err)

	assert.Same(t, purse, left.Children()[0], "the first composite takes the registered instance")
	assert.NotSame(t, purse, right.Children()[0])
	assert.NotSame(t, purse, right.Children()[1])
	assert.NotSame(t, right.Children()[0], right.Children()[1])

	require.True(t, right.Loot("coin").OK())
	assert.Equal(t, 0, purse.CarriedWeight())
	assert.Equal(t, 0, left.TotalWeight())
	assert.Equal(t, 1, right.TotalWeight())
}

func TestMultiDuplicatesChildNestedInEarlierSlot(t *testing.T) {
	cat := newTestCatalog(t, domain.Item{Name: "coin", Weight: 1})
	reg := NewRegistry()
	pouch := NewStandard("pouch", 0, 1, cat)
	reg.Register(pouch)

	belt, err := NewMulti("belt", []string{"pouch"}, reg)
	require.NoError(t, err)
	require.True(t, reg.Register(belt))

	rig, err := NewMulti("rig", []string{"belt", "pouch"}, reg)
	require.NoError(t, err)

	children := rig.Children()
	require.Len(t, children, 2)
	assert.Same(t, belt, children[0])
	assert.NotSame(t, pouch, children[1])

	require.True(t, rig.Loot("coin").OK())
	assert.Equal(t, 1, rig.TotalWeight())
	assert.Equal(t, 1, strings.Count(rig.ListContents(""), "coin (weight: 1)"))

	require.True(t, rig.Loot("coin").OK(), "the second pouch has its own weight pool")
	assert.Equal(t, 2, rig.TotalWeight())
	assert.False(t, rig.Loot("coin").OK())
}

func TestMultiDuplicatesSubtreeOverlap(t *testing.T) {
	tin := &stubContainer{name: "tin"}
	reg := NewRegistry()
	reg.Register(tin)

	box, err := NewMulti("box", []string{"tin"}, reg)
	require.NoError(t, err)
	reg.Register(box)

	t.Run("child already nested in an earlier slot", func(t *testing.T) {
		m, err := NewMulti("crate", []string{"box", "tin"}, reg)
		require.NoError(t, err)
		assert.NotSame(t, tin, m.Children()[1])
	})

	t.Run("later child nests an instance already placed", func(t *testing.T) {
		m, err := NewMulti("chest", []string{"tin", "box"}, reg)
		require.NoError(t, err)

		children := m.Children()
		assert.Same(t, tin, children[0])
		copied, ok := children[1].(*Multi)
		require.True(t, ok)
		assert.NotSame(t, box, copied)
		assert.NotSame(t, tin, copied.Children()[0])
	})
}

func TestMultiFailedConstructionClaimsNothing(t *testing.T) {
	cat := newTestCatalog(t)
	reg := NewRegistry()
	bag := NewStandard("bag", 0, 1, cat)
	reg.Register(bag)

	_, err := NewMulti("broken", []string{"bag", "missing"}, reg)
	require.ErrorIs(t, err, domain.ErrContainerNotFound)

	m, err := NewMulti("pack", []string{"bag"}, reg)
	require.NoError(t, err)
	assert.Same(t, bag, m.Children()[0])
}

func TestMultiNested(t *testing.T) {
	cat := newTestCatalog(t,
		domain.Item{Name: "gem", Weight: 2},
		domain.Item{Name: "rope", Weight: 5},
	)
	reg := NewRegistry()
	reg.Register(NewStandard("pocket", 0, 2, cat))
	reg.Register(NewStandard("sack", 1, 5, cat))

	inner, err := NewMulti("satchel", []string{"pocket", "pocket"}, reg)
	require.NoError(t, err)
	require.True(t, reg.Register(inner))

	outer, err := NewMulti("wagon", []string{"satchel", "sack", "satchel"}, reg)
	require.NoError(t, err)

	children := outer.Children()
	require.Len(t, children, 3)
	assert.Same(t, inner, children[0])
	copied, ok := children[2].(*Multi)
	require.True(t, ok)
	assert.NotSame(t, inner, copied)
	for i, child := range copied.Children() {
		assert.NotSame(t, inner.Children()[i], child, "a duplicated composite copies its children too")
	}
	assert.Equal(t, 1, outer.EmptyWeight())

	var stored []string
	for _, name := range []string{"gem", "gem", "rope", "gem", "gem"} {
		res := outer.Loot(name)
		require.True(t, res.OK(), name)
		stored = append(stored, res.Container)
	}
	assert.Equal(t, []string{"pocket", "pocket", "sack", "pocket", "pocket"}, stored)

	res := outer.Loot("gem")
	assert.Equal(t, StatusNoRoom, res.Status)
	assert.Equal(t, "wagon", res.Container)
	assert.Equal(t, 1+2+2+5+2+2, outer.TotalWeight())
}

func TestMultiConstructionFailsOnUnknownChild(t *testing.T) {
	reg := NewRegistry()
	reg.Register(NewStandard("bag", 0, 1, newTestCatalog(t)))

	m, err := NewMulti("pack", []string{"bag", "chest"}, reg)

	assert.Nil(t, m)
	require.ErrorIs(t, err, domain.ErrContainerNotFound)
	assert.Contains(t, err.Error(), "'chest'")
	assert.Contains(t, err.Error(), "'pack'")
}

func TestMultiEmptyComposition(t *testing.T) {
	m, err := NewMulti("nothing", nil, NewRegistry())
	require.NoError(t, err)

	assert.Equal(t, 0, m.EmptyWeight())
	assert.Equal(t, 0, m.TotalWeight())
	assert.Equal(t, StatusNoRoom, m.Loot("anything").Status)
}

func TestMultiListContents(t *testing.T) {
	cat := newTestCatalog(t,
		domain.Item{Name: "bread", Weight: 1},
		domain.Item{Name: "cheese", Weight: 2},
	)
	reg := NewRegistry()
	reg.Register(NewStandard("basket", 3, 10, cat))

	m, err := NewMulti("picnic", []string{"basket"}, reg)
	require.NoError(t, err)
	require.True(t, m.Loot("cheese").OK())
	require.True(t, m.Loot("bread").OK())

	out := m.ListContents("")
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	require.Len(t, lines, 4)
	assert.Equal(t, "picnic (total weight: 6, empty weight: 3, capacity: 0/0)", lines[0])
	assert.Equal(t, "   basket (total weight: 6, empty weight: 3, capacity: 3/10)", lines[1])
	assert.Equal(t, "      cheese (weight: 2)", lines[2])
	assert.Equal(t, "      bread (weight: 1)", lines[3])
	for _, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, domain.IndentUnit))
	}
}

func TestMultiListContentsNestedIndent(t *testing.T) {
	cat := newTestCatalog(t, domain.Item{Name: "key", Weight: 1})
	reg := NewRegistry()
	reg.Register(NewStandard("tin", 0, 1, cat))
	inner, err := NewMulti("case", []string{"tin"}, reg)
	require.NoError(t, err)
	reg.Register(inner)
	outer, err := NewMulti("trunk", []string{"case"}, reg)
	require.NoError(t, err)
	require.True(t, outer.Loot("key").OK())

	want := "trunk (total weight: 1, empty weight: 0, capacity: 0/0)\n" +
		"   case (total weight: 1, empty weight: 0, capacity: 0/0)\n" +
		"      tin (total weight: 1, empty weight: 0, capacity: 1/1)\n" +
		"         key (weight: 1)\n"
	assert.Equal(t, want, outer.ListContents(""))
}

// stubContainer returns a fixed result and counts calls.
type stubContainer struct {
	name   string
	result Result
	calls  int
}

func (s *stubContainer) Name() string     { return s.name }
func (s *stubContainer) EmptyWeight() int { return 0 }
func (s *stubContainer) TotalWeight() int { return 0 }
func (s *stubContainer) Summary() Summary { return Summary{Name: s.name} }
func (s *stubContainer) Duplicate() Container {
	return &stubContainer{name: s.name, result: s.result}
}
func (s *stubContainer) ListContents(indent string) string {
	return indent + s.name + "\n"
}
func (s *stubContainer) Loot(string) Result {
	s.calls++
	return s.result
}
