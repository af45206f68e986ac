package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓" // Check passed or action succeeded
	SymbolFail    = "✗" // Check failed
	SymbolWarning = "⚠" // Non-fatal problem
	SymbolPending = "○" // Not yet determined
	SymbolActive  = "●" // Currently active (the managed session marker)
)
