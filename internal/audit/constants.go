package audit

// Actor display names for non-admin actors
const (
	ActorPlayer   = "player"
	ActorGameFlow = "game-flow"
)

// List limits
const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

// Log message constants
const (
	LogMsgRecorded       = "Audit entry recorded"
	LogMsgRecordFailed   = "Failed to record audit entry"
	LogMsgRecordPanicked = "Audit record panicked"
	LogMsgDecodeFailed   = "Failed to decode event payload for audit"
)
