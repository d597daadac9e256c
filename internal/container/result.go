package container

import (
	"fmt"

	"github.com/osse101/LootContainers_Go/internal/domain"
)

// Status tags the outcome of a loot attempt.
type Status int

const (
	// StatusStored means the item was placed.
	StatusStored Status = iota
	// StatusNoRoom means the item exists but did not fit.
	StatusNoRoom
	// StatusNotFound means the catalog does not know the item.
	StatusNotFound
)

func (s Status) String() string {
	switch s {
	case StatusStored:
		return StatusLabelStored
	case StatusNoRoom:
		return StatusLabelNoRoom
	case StatusNotFound:
		return StatusLabelNotFound
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result describes a loot attempt. On success Container is the leaf that took
// the item; on failure it is the container that gave up.
type Result struct {
	Status    Status `json:"status"`
	Item      string `json:"item"`
	Container string `json:"container"`
}

// OK reports whether the item was stored.
func (r Result) OK() bool {
	return r.Status == StatusStored
}

// Err converts a failed result into the matching domain error.
func (r Result) Err() error {
	switch r.Status {
	case StatusStored:
		return nil
	case StatusNoRoom:
		return &CapacityError{Item: r.Item, Container: r.Container}
	default:
		return fmt.Errorf("%w: %q", domain.ErrItemNotFound, r.Item)
	}
}

// CapacityError is returned when an item fits nowhere in the targeted
// container. It matches domain.ErrCapacityExceeded with errors.Is.
type CapacityError struct {
	Item      string
	Container string
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf(domain.MsgLootFailedFormat, e.Item, e.Container)
}

func (e *CapacityError) Is(target error) bool {
	return target == domain.ErrCapacityExceeded
}
