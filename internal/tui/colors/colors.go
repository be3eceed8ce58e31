package colors

import "github.com/charmbracelet/lipgloss"

// === Trailer Text Colors ===
// Basic ANSI entries follow the user's terminal theme; the two RGB entries
// are fixed.
var (
	Green   = lipgloss.Color("2")
	Red     = lipgloss.Color("1")
	Blue    = lipgloss.Color("4")
	Magenta = lipgloss.Color("5")
	Cyan    = lipgloss.Color("6")
	Gray    = lipgloss.Color("#808080") // "@" separator
	Unit    = lipgloss.Color("#5a5a82") // "gb" suffix
)
