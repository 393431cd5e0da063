package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
// - Default (white/black): Primary text
// - Accent (soft blue #7AA2F7): Highlights, paths, tags
// - Muted (gray): Secondary info, counts
// - No colored success/error/warning - use unicode symbols only

const defaultAccent = "#7AA2F7"

var (
	// Accent style for file paths, tags, highlights
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))

	// Muted style for secondary info, hints, counts
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)

	// AccentBold combines accent color with bold
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent)).Bold(true)
)

var (
	accentColor       = defaultAccent
	markdownCodeTheme string
)

// ConfigureTheme applies a user-configured accent color. Values like "none"
// or invalid colors disable the accent entirely.
func ConfigureTheme(accent string) {
	color, ok := normalizeAccentColor(accent)
	if !ok {
		accentColor = ""
		Accent = lipgloss.NewStyle()
		AccentBold = lipgloss.NewStyle().Bold(true)
		return
	}
	accentColor = color
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	AccentBold = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
}

// AccentColor returns the active accent color, if any.
func AccentColor() (string, bool) {
	return accentColor, accentColor != ""
}

// ConfigureMarkdownCodeTheme sets the Chroma theme used for rendered
// markdown code blocks.
func ConfigureMarkdownCodeTheme(theme string) {
	markdownCodeTheme = strings.TrimSpace(theme)
}

// normalizeAccentColor validates a user-supplied accent color. It accepts
// ANSI color codes ("0" to "255") and hex colors ("#RGB" or "#RRGGBB",
// expanding the short form).
func normalizeAccentColor(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	switch strings.ToLower(raw) {
	case "", "none", "off", "default":
		return "", false
	}

	if strings.HasPrefix(raw, "#") {
		hex := raw[1:]
		for _, r := range hex {
			if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
				return "", false
			}
		}
		switch len(hex) {
		case 3:
			var sb strings.Builder
			sb.WriteByte('#')
			for i := 0; i < 3; i++ {
				sb.WriteByte(hex[i])
				sb.WriteByte(hex[i])
			}
			return strings.ToLower(sb.String()), true
		case 6:
			return strings.ToLower(raw), true
		default:
			return "", false
		}
	}

	if n, err := strconv.Atoi(raw); err == nil && n >= 0 && n <= 255 {
		return strconv.Itoa(n), true
	}
	return "", false
}
