package container

// Status labels, also used as metric label values
const (
	StatusLabelStored   = "stored"
	StatusLabelNoRoom   = "no_room"
	StatusLabelNotFound = "not_found"
)

// Construction error formats
const (
	ErrFmtChildNotFound = "%w: '%s' referenced by multi container '%s'"
)
