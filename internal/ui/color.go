// Package ui holds the colours, styles and table helpers shared by the
// commands and the session view
package ui

import (
	"github.com/pterm/pterm"
)

var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Cyan(a any) string {
	if DarkTheme {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// Outcome colours the status column of a recorded session.
func Outcome(completed bool) string {
	if completed {
		return Green("completed")
	}

	return Red("abandoned")
}
