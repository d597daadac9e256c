package scenario

// SchemaName is the resource name the embedded JSON schema is compiled under
const SchemaName = "scenario.schema.json"

// Supported file extensions
const (
	ExtJSON = ".json"
	ExtYAML = ".yaml"
	ExtYML  = ".yml"
)

// Error messages
const (
	ErrMsgReadFileFailed    = "failed to read scenario file: %w"
	ErrMsgParseFailed       = "failed to parse scenario %s: %w"
	ErrMsgSchemaFailed      = "schema validation failed for %s: %w"
	ErrFmtUnsupportedFormat = "%w: unsupported scenario format %q"
	ErrFmtInvalidScenario   = "%w: %s"
	ErrFmtBuildComposite    = "failed to build composite #%d '%s': %w"
)

// Log messages
const (
	LogMsgCompositeRegistered = "Composite container registered"
	LogMsgCompositeDropped    = "Composite name already registered, keeping the first"
)
