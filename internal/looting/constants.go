package looting

// OutcomeUnknownContainer labels attempts whose target container does not exist
const OutcomeUnknownContainer = "unknown_container"

// Error messages
const (
	ErrFmtUnknownContainer = "%w: '%s'"
)

// Log messages
const (
	LogMsgItemLooted       = "Item looted"
	LogMsgItemDidNotFit    = "Item did not fit"
	LogMsgUnknownItem      = "Unknown item requested"
	LogMsgUnknownContainer = "Unknown container requested"
	LogMsgRunCompleted     = "Loot requests processed"
)
