package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/culturia/internal/ui/theme"
)

const bannerArt = `
 ██████╗██╗   ██╗██╗  ████████╗██╗   ██╗██████╗ ██╗ █████╗
██╔════╝██║   ██║██║  ╚══██╔══╝██║   ██║██╔══██╗██║██╔══██╗
██║     ██║   ██║██║     ██║   ██║   ██║██████╔╝██║███████║
██║     ██║   ██║██║     ██║   ██║   ██║██╔══██╗██║██╔══██║
╚██████╗╚██████╔╝███████╗██║   ╚██████╔╝██║  ██║██║██║  ██║
 ╚═════╝ ╚═════╝ ╚══════╝╚═╝    ╚═════╝ ╚═╝  ╚═╝╚═╝╚═╝  ╚═╝`

const bannerCompact = "C U L T U R I A"

// renderBanner returns the CULTURIA banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 62 columns.
func renderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 62 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
