// Package ui provides shared terminal output helpers for tandem's CLI
// commands: the ANSI color palette, status symbols, and table rendering for
// the sessions and doctor listings. The monitor dashboard has its own
// truecolor styling and only borrows the Bubbles table constructor from here.
//
// Colors are plain ANSI codes for broad terminal compatibility. Use
// DisableColors() to switch to monochrome output (for --no-color or piped
// stdout).
package ui
