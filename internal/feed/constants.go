package feed

// Column counts of the two feed formats
const (
	ItemColumns      = 2 // name,weight
	ContainerColumns = 3 // name,empty_weight,capacity
)

// ==================== Error Messages ====================

const (
	ErrMsgOpenFeedFailed  = "failed to open feed %s: %w"
	ErrMsgReadHeader      = "failed to read header of %s: %w"
	ErrMsgReadRowFailed   = "failed to read %s: %w"
	ErrFmtBadNumber       = "%w: %s line %d: column %s is not an integer: %q"
	ErrFmtInvalidRecord   = "%w: %s line %d: %s"
	ErrMsgRegisterItem    = "failed to register item '%s': %w"
	ErrMsgEmptyFeedSource = "feed source has no header row"
)

// ==================== Log Messages ====================

const (
	LogMsgItemsLoaded        = "Items loaded"
	LogMsgContainersLoaded   = "Containers loaded"
	LogMsgDuplicateContainer = "Container name already registered, keeping the first"
)
