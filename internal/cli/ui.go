package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/navtree/pkg/nav"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - labels and highlights
	colorBlue  = lipgloss.Color("75")  // Light blue - URIs
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// styleLabel for page labels.
	styleLabel = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)

	// styleURI for page link targets.
	styleURI = lipgloss.NewStyle().Foreground(colorBlue)

	// styleHidden for invisible pages.
	styleHidden = lipgloss.NewStyle().Foreground(colorDim)

	// styleBranch for tree branch characters.
	styleBranch = lipgloss.NewStyle().Foreground(colorDim)

	// styleMatch for find results.
	styleMatch = lipgloss.NewStyle().Foreground(colorCyan)
)

// =============================================================================
// Tree Rendering
// =============================================================================

// renderTree formats a container's full subtree as an indented tree in
// traversal order, one page per line.
func renderTree(c *nav.Container) string {
	var sb strings.Builder
	writeTree(&sb, c, "")
	return sb.String()
}

func writeTree(sb *strings.Builder, c *nav.Container, prefix string) {
	pages := c.Pages()
	for i, p := range pages {
		last := i == len(pages)-1
		branch, childIndent := "├── ", "│   "
		if last {
			branch, childIndent = "└── ", "    "
		}

		sb.WriteString(prefix)
		sb.WriteString(styleBranch.Render(branch))
		if p.Visible() {
			sb.WriteString(styleLabel.Render(p.Label()))
		} else {
			sb.WriteString(styleHidden.Render(p.Label() + " (hidden)"))
		}
		if uri := p.URI(); uri != "" {
			sb.WriteString(" ")
			sb.WriteString(styleURI.Render(uri))
		}
		sb.WriteString("\n")

		writeTree(sb, p.Children(), prefix+childIndent)
	}
}

// renderMatch formats one find result as "label  uri".
func renderMatch(p nav.Page) string {
	out := styleMatch.Render(p.Label())
	if uri := p.URI(); uri != "" {
		out += "  " + styleURI.Render(uri)
	}
	return out
}
