package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Rihla theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconCrescent = "🌙"
	IconSparkle  = "✨"
	IconDone     = "✅"
	IconTrophy   = "🏆"
	IconFire     = "🔥"
	IconSnow     = "❄️"
	IconPray     = "🤲"
	IconBook     = "📖"
	IconInfo     = "ℹ️"
	IconWarn     = "⚠️"
	IconError    = "🧨"
)

var (
	cPrimary = lipgloss.Color("36")  // teal
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// StreakText renders the streak with its state at a glance.
func StreakText(streak int, frozen bool) string {
	if frozen {
		return Key.Render(fmt.Sprintf("%s %d (frozen)", IconSnow, streak))
	}
	if streak <= 0 {
		return Muted.Render("no streak")
	}
	return Warn.Render(fmt.Sprintf("%s %d", IconFire, streak))
}
