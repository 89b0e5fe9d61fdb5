// Package style holds the handful of terminal color helpers cake's report
// printers use.
package style

import "github.com/fatih/color"

// Bold renders text in bold, with no color change.
func Bold(text string) string {
	return colored(text, color.New(color.Bold))
}

// Red renders text in red, used for a poor efficiency score.
func Red(text string) string {
	return colored(text, color.New(color.FgRed))
}

// Yellow renders text in yellow, used for a middling efficiency score.
func Yellow(text string) string {
	return colored(text, color.New(color.FgYellow))
}

// Green renders text in green, used for a good efficiency score.
func Green(text string) string {
	return colored(text, color.New(color.FgGreen))
}

func colored(text string, c *color.Color) string {
	return c.SprintFunc()(text)
}
