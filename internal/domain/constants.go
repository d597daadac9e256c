package domain

// IndentUnit is the whitespace added for each nesting level in a listing.
const IndentUnit = "   "

// Listing line formats shared by containers and reports
const (
	ItemLineFormat      = "%s (weight: %d)"
	ContainerLineFormat = "%s (total weight: %d, empty weight: %d, capacity: %d/%d)"
)

// Loot outcome messages
const (
	MsgLootStoredFormat = "Success! Item \"%s\" stored in container \"%s\"."
	MsgLootFailedFormat = "Failure! Item \"%s\" NOT stored in container \"%s\"."
)
