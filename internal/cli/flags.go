package cli

// Common flag names and descriptions
const (
	FlagStore     = "store"
	FlagLogLevel  = "log-level"
	FlagLogFormat = "log-format"
	FlagDebug     = "debug"
	FlagID        = "id"
	FlagPrompt    = "prompt"
	FlagTable     = "table"
	FlagOut       = "out"
	FlagTree      = "tree"
	FlagForce     = "force"

	DescStore     = "Path to the workspace database"
	DescLogLevel  = "Log level: debug, info, warn, error"
	DescLogFormat = "Log format: text or json"
	DescDebug     = "Dump mapping configurations after each step"
	DescTable     = "Table file (.xlsx, or tab/comma separated text)"
)
