// Package ui provides shared terminal output helpers for baro's CLI surface.
//
// The package holds the ANSI color palette and Unicode status symbols used by
// command output (pattern listing, version info, error rendering), plus a
// single-line sparkline widget used by the dashboard's detail view. The full
// chart rendering lives in internal/dash; this package is for the small,
// reusable pieces that both layers share.
//
// # Color Scheme
//
// Colors are defined as ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Successful operations
//	ColorError     (red)    - Failures and errors
//	ColorWarning   (yellow) - Warnings
//	ColorInfo      (cyan)   - Informational messages
//	ColorMuted     (gray)   - Secondary text
//	ColorSecondary (blue)   - Accents
//
// # Symbols
//
// Unicode symbols provide visual status indicators:
//
//	SymbolSuccess (checkmark) - Operation completed successfully
//	SymbolFail    (X)         - Operation failed
//	SymbolBullet  (dot)       - List item
//	SymbolArrow   (arrow)     - Mapping or result
package ui
