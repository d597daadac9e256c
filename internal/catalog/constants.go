package catalog

// Validation error messages
const (
	ErrMsgEmptyName      = "item has empty name"
	ErrFmtNegativeWeight = "%w: item '%s' has negative weight %d"
)
