package looting

import (
	"github.com/stretchr/testify/mock"

	"github.com/osse101/LootContainers_Go/internal/container"
	"github.com/osse101/LootContainers_Go/internal/domain"
)

// MockContainerFinder implements ContainerFinder for testing
type MockContainerFinder struct {
	mock.Mock
}

func (m *MockContainerFinder) Find(name string) (container.Container, bool) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(container.Container), args.Bool(1)
}

// MockItemFinder implements ItemFinder for testing
type MockItemFinder struct {
	mock.Mock
}

func (m *MockItemFinder) Find(name string) (*domain.Item, bool) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.Item), args.Bool(1)
}

// MockContainer implements container.Container for testing
type MockContainer struct {
	mock.Mock
}

func (m *MockContainer) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockContainer) EmptyWeight() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockContainer) TotalWeight() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockContainer) Loot(itemName string) container.Result {
	args := m.Called(itemName)
	return args.Get(0).(container.Result)
}

func (m *MockContainer) ListContents(indent string) string {
	args := m.Called(indent)
	return args.String(0)
}

func (m *MockContainer) Summary() container.Summary {
	args := m.Called()
	return args.Get(0).(container.Summary)
}

func (m *MockContainer) Duplicate() container.Container {
	args := m.Called()
	return args.Get(0).(container.Container)
}
