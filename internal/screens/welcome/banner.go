package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fitcheck/internal/ui/theme"
)

const bannerArt = `
 ███████╗██╗████████╗ ██████╗██╗  ██╗███████╗ ██████╗██╗  ██╗
 ██╔════╝██║╚══██╔══╝██╔════╝██║  ██║██╔════╝██╔════╝██║ ██╔╝
 █████╗  ██║   ██║   ██║     ███████║█████╗  ██║     █████╔╝
 ██╔══╝  ██║   ██║   ██║     ██╔══██║██╔══╝  ██║     ██╔═██╗
 ██║     ██║   ██║   ╚██████╗██║  ██║███████╗╚██████╗██║  ██╗
 ╚═╝     ╚═╝   ╚═╝    ╚═════╝╚═╝  ╚═╝╚══════╝ ╚═════╝╚═╝  ╚═╝`

const (
	bannerCompact = "F I T C H E C K"
	bannerWidth   = 62
)

// RenderBanner returns the banner in the primary color, or a one-line
// fallback when the art does not fit.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
