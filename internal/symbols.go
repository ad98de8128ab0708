// Package internal provides Unicode symbol definitions with fallback support for cross-platform compatibility.
//
// This module ensures consistent visual representation across different terminals and systems
// by providing ASCII fallbacks for Unicode symbols that may not render properly on all platforms.
package internal

import (
	"os"
	"strings"
)

// SymbolSet defines a collection of symbols used throughout the UI
type SymbolSet struct {
	// Ring segments
	RingFilled string
	RingEmpty  string
	RingHead   string

	// Transport indicators
	Play   string
	Pause  string
	Repeat string

	// Misc
	Bullet string
	Check  string
	Clock  string
}

// UnicodeSymbols provides rich Unicode symbols for modern terminals
var UnicodeSymbols = SymbolSet{
	RingFilled: "●",
	RingEmpty:  "·",
	RingHead:   "●",

	Play:   "▶",
	Pause:  "⏸",
	Repeat: "🔁",

	Bullet: "•",
	Check:  "✓",
	Clock:  "⏱",
}

// ASCIISymbols provides ASCII-only fallbacks for compatibility
var ASCIISymbols = SymbolSet{
	RingFilled: "o",
	RingEmpty:  ".",
	RingHead:   "o",

	Play:   ">",
	Pause:  "||",
	Repeat: "[R]",

	Bullet: "*",
	Check:  "[v]",
	Clock:  "[t]",
}

// CurrentSymbols holds the active symbol set based on terminal capabilities
var CurrentSymbols SymbolSet

// init determines which symbol set to use based on environment
func init() {
	CurrentSymbols = detectSymbolSet()
}

// detectSymbolSet determines the appropriate symbol set based on terminal capabilities
func detectSymbolSet() SymbolSet {
	// Check for explicit ASCII mode via environment variable
	if os.Getenv("SWEEP_ASCII") == "1" || os.Getenv("SWEEP_ASCII") == "true" {
		return ASCIISymbols
	}

	// Check TERM environment variable for known problematic terminals
	term := strings.ToLower(os.Getenv("TERM"))
	if term == "dumb" || term == "vt100" || strings.HasPrefix(term, "xterm-mono") {
		return ASCIISymbols
	}

	// Check for SSH connections which might have encoding issues
	if os.Getenv("SSH_CLIENT") != "" || os.Getenv("SSH_TTY") != "" {
		// Only use ASCII for SSH if locale doesn't support UTF-8
		locale := strings.ToLower(os.Getenv("LANG"))
		if !strings.Contains(locale, "utf-8") && !strings.Contains(locale, "utf8") {
			return ASCIISymbols
		}
	}

	// Default to Unicode for modern terminals
	return UnicodeSymbols
}

// ForceASCII switches to ASCII symbols regardless of terminal detection
func ForceASCII() {
	CurrentSymbols = ASCIISymbols
}

// ForceUnicode switches to Unicode symbols regardless of terminal detection
func ForceUnicode() {
	CurrentSymbols = UnicodeSymbols
}
