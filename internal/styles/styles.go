// Package styles provides shared lipgloss styles for CLI output and forms.
package styles

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Tokyo Night color palette.
var (
	ColorRed    = lipgloss.Color("#f7768e")
	ColorGreen  = lipgloss.Color("#9ece6a")
	ColorYellow = lipgloss.Color("#e0af68")
	ColorBlue   = lipgloss.Color("#7aa2f7")
	ColorGray   = lipgloss.Color("#565f89")
	ColorWhite  = lipgloss.Color("#c0caf5")
)

// Banner ASCII art for the header.
const Banner = `
 ┏━┓┏━┓┏━┓╻ ╻╻┏━┓┏━╸
 ┣━┛┃ ┃┣━┛┃╻┃┃┣┳┛┣╸
 ╹  ┗━┛╹  ┗┻┛╹╹┗╸┗━╸`

// BannerStyle styles the ASCII art banner.
var BannerStyle = lipgloss.NewStyle().
	Foreground(ColorBlue).
	Bold(true)

// ErrorStyle styles error text and failed items.
var ErrorStyle = lipgloss.NewStyle().Foreground(ColorRed)

// SuccessStyle styles passed items.
var SuccessStyle = lipgloss.NewStyle().Foreground(ColorGreen)

// WarnStyle styles warnings.
var WarnStyle = lipgloss.NewStyle().Foreground(ColorYellow)

// MutedStyle styles secondary detail text.
var MutedStyle = lipgloss.NewStyle().Foreground(ColorGray)

// SectionStyle styles section headers.
var SectionStyle = lipgloss.NewStyle().
	Bold(true).
	Underline(true)

// DiffAddStyle styles inserted diff lines.
var DiffAddStyle = lipgloss.NewStyle().Foreground(ColorGreen)

// DiffDeleteStyle styles deleted diff lines.
var DiffDeleteStyle = lipgloss.NewStyle().Foreground(ColorRed)

// DiffHeaderStyle styles the file header of a diff.
var DiffHeaderStyle = lipgloss.NewStyle().
	Foreground(ColorBlue).
	Bold(true)

// DividerStyle styles horizontal dividers.
var DividerStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// FormTheme returns the huh theme used by interactive forms.
func FormTheme() *huh.Theme {
	t := huh.ThemeCharm()

	t.Focused.Title = t.Focused.Title.Foreground(ColorBlue).Bold(true)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(ColorBlue)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(ColorBlue)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(ColorGreen)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(ColorRed)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ColorRed)
	t.Focused.Description = t.Focused.Description.Foreground(ColorGray)

	t.Blurred.Title = t.Blurred.Title.Foreground(ColorGray)

	return t
}
