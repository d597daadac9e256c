package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Container errors
	ErrMsgContainerNotFound = "container not found"
	ErrMsgCapacityExceeded  = "capacity exceeded"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrItemNotFound means the catalog has no item with the requested name.
	// No container accepts such an item, so searches stop on it.
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// ErrContainerNotFound is returned when a container name does not resolve
	// in the registry.
	ErrContainerNotFound = errors.New(ErrMsgContainerNotFound)

	// ErrCapacityExceeded means the item exists but did not fit.
	ErrCapacityExceeded = errors.New(ErrMsgCapacityExceeded)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
