package report

// Report headings
const (
	InitialisedFormat = "Initialised %d items including %d containers.\n"
	HeadingItems      = "Items:"
	HeadingContainers = "Containers:"
)
