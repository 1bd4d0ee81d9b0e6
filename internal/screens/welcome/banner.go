package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/soroban/internal/ui/theme"
)

// BannerArt is the block-letter SOROBAN title, 61 columns wide.
const BannerArt = `
 ███████╗ ██████╗ ██████╗  ██████╗ ██████╗  █████╗ ███╗   ██╗
 ██╔════╝██╔═══██╗██╔══██╗██╔═══██╗██╔══██╗██╔══██╗████╗  ██║
 ███████╗██║   ██║██████╔╝██║   ██║██████╔╝███████║██╔██╗ ██║
 ╚════██║██║   ██║██╔══██╗██║   ██║██╔══██╗██╔══██║██║╚██╗██║
 ███████║╚██████╔╝██║  ██║╚██████╔╝██████╔╝██║  ██║██║ ╚████║
 ╚══════╝ ╚═════╝ ╚═╝  ╚═╝ ╚═════╝ ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═══╝`

const bannerCompact = "S O R O B A N"

// bannerMinWidth is the narrowest terminal that fits BannerArt.
const bannerMinWidth = 64

// RenderBanner returns the SOROBAN banner in the primary color, or the
// compact form when the terminal is too narrow.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(BannerArt)
}
