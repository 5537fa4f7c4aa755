package ui

// Unicode symbols for status indicators in CLI output.
const (
	SymbolSuccess = "✓" // Operation completed successfully
	SymbolFail    = "✗" // Operation failed
	SymbolBullet  = "•" // List item
	SymbolArrow   = "→" // Mapping or result
)
