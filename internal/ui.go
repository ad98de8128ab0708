package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shirou/gopsutil/v3/host"

	"sweep/internal/anim"
	"sweep/internal/engine"
)

// Styles
var (
	// Enhanced color palette - Tokyo Night inspired
	primaryColor    = lipgloss.Color("#7aa2f7") // Tokyo Night blue
	secondaryColor  = lipgloss.Color("#9ece6a") // Tokyo Night green
	accentColor     = lipgloss.Color("#f7768e") // Tokyo Night red/pink
	warningColor    = lipgloss.Color("#e0af68") // Tokyo Night yellow
	textColor       = lipgloss.Color("#c0caf5") // Tokyo Night foreground
	dimColor        = lipgloss.Color("#565f89") // Tokyo Night comment
	backgroundColor = lipgloss.Color("#1a1b26") // Tokyo Night background

	asciiStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Align(lipgloss.Center).
			MarginBottom(1)

	titleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true).
			Align(lipgloss.Center).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Align(lipgloss.Center).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Bold(true)

	// Status badges, one per engine mode
	runningStatusStyle = lipgloss.NewStyle().
				Foreground(backgroundColor).
				Background(secondaryColor).
				Bold(true).
				Padding(0, 2)

	countdownStatusStyle = lipgloss.NewStyle().
				Foreground(backgroundColor).
				Background(accentColor).
				Bold(true).
				Padding(0, 2)

	idleStatusStyle = lipgloss.NewStyle().
			Foreground(backgroundColor).
			Background(dimColor).
			Bold(true).
			Padding(0, 2)

	autoRestartOnStyle = lipgloss.NewStyle().
				Foreground(warningColor).
				Bold(true)

	autoRestartOffStyle = lipgloss.NewStyle().
				Foreground(dimColor)

	// Enhanced border WITHOUT background
	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 3).
			Margin(1)

	// Enhanced help style
	helpStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			Align(lipgloss.Center).
			Italic(true).
			MarginTop(1)

	// Info box styles
	infoBoxStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(dimColor)
)

// ASCII art for the program name
const asciiArt = `▄▄▄ ▄ ▄ ▄ ▄▄▄ ▄▄▄ ▄▄▄
▀▄▄ █▄█▄█ █▄▄ █▄▄ █▄█
▄▄▀  ▀ ▀  ▀▄▄ ▀▄▄ █  `

// renderTimer renders the stopwatch screen: header, ring, status badge,
// linear seconds bar, auto-restart indicator, and help footer.
func (m Model) renderTimer() string {
	var s strings.Builder

	s.WriteString(m.renderHeader() + "\n")

	now := m.now()
	st := m.engine.Snapshot()
	pal := m.animator.Colors()

	ring := RenderRing(m.animator.Fraction(now), pal, anim.FormatTime(st.Count))
	s.WriteString(lipgloss.NewStyle().Align(lipgloss.Center).Render(ring) + "\n\n")

	s.WriteString(m.renderStatus(st) + "\n\n")

	// Linear seconds-into-minute readout mirroring the eased ring.
	s.WriteString(m.bar.ViewAs(m.animator.Fraction(now)) + "\n\n")

	s.WriteString(m.renderAutoRestart(st) + "\n")

	if m.message != "" {
		warning := lipgloss.NewStyle().Foreground(warningColor).Render(m.message)
		s.WriteString("\n" + warning + "\n")
	}

	help := helpStyle.Render("space: start/stop • r: reset • a: auto-restart • t: theme • ?: about • q: quit")
	s.WriteString("\n" + help)

	content := borderStyle.Render(lipgloss.NewStyle().Align(lipgloss.Center).Render(s.String()))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderStatus renders the mode badge colored by lifecycle state.
func (m Model) renderStatus(st engine.State) string {
	status := st.Status()
	switch {
	case st.Mode == engine.ModeRunning:
		return runningStatusStyle.Render(CurrentSymbols.Play + " " + status)
	case st.Mode == engine.ModeCountingDown:
		return countdownStatusStyle.Render(CurrentSymbols.Pause + " " + status)
	default:
		return idleStatusStyle.Render(status)
	}
}

// renderAutoRestart renders the auto-restart toggle indicator.
func (m Model) renderAutoRestart(st engine.State) string {
	if st.AutoRestart {
		return autoRestartOnStyle.Render(CurrentSymbols.Repeat + " auto-restart on")
	}
	return autoRestartOffStyle.Render(CurrentSymbols.Repeat + " auto-restart off")
}

// renderHeader renders the ASCII art, title and version subtitle.
func (m Model) renderHeader() string {
	ascii := asciiStyle.Render(asciiArt)
	title := titleStyle.Render(AppDesc)
	subtitle := subtitleStyle.Render(GetSubtitle())

	return ascii + "\n" + title + "\n" + subtitle
}

// renderAbout renders the about screen with app metadata and host uptime.
func (m Model) renderAbout() string {
	var s strings.Builder

	ascii := asciiStyle.Render(asciiArt)
	s.WriteString(ascii + "\n")
	s.WriteString(titleStyle.Render("About "+AppName) + "\n\n")

	about := GetAboutText() + `

Created by ` + AppAuthor + `

Powered by Bubble Tea & Lipgloss

Keys:
` + CurrentSymbols.Bullet + ` space     start / stop
` + CurrentSymbols.Bullet + ` r         reset to 00:00
` + CurrentSymbols.Bullet + ` a         toggle countdown auto-restart
` + CurrentSymbols.Bullet + ` t         cycle color theme (` + m.theme.Name + `)

Press any key to return`

	info := lipgloss.NewStyle().
		Foreground(textColor).
		Margin(0, 2).
		Align(lipgloss.Left).
		Render(about)
	s.WriteString(info + "\n\n")

	if uptime := hostUptime(); uptime != "" {
		s.WriteString(infoBoxStyle.Render(CurrentSymbols.Clock+" System uptime: "+uptime) + "\n")
	}

	content := borderStyle.Render(s.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// hostUptime reports how long the host has been up, or "" when the platform
// does not expose it.
func hostUptime() string {
	secs, err := host.Uptime()
	if err != nil || secs == 0 {
		return ""
	}
	d := time.Duration(secs) * time.Second
	if d >= 24*time.Hour {
		return fmt.Sprintf("%dd %dh %dm", int(d.Hours())/24, int(d.Hours())%24, int(d.Minutes())%60)
	}
	return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
}
