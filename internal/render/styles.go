package render

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6"))

	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warmStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	hotStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

var bannerLines = []string{
	"██████╗ ██╗   ██╗██╗     ███████╗███████╗",
	"██╔══██╗██║   ██║██║     ██╔════╝██╔════╝",
	"██████╔╝██║   ██║██║     ███████╗█████╗  ",
	"██╔═══╝ ██║   ██║██║     ╚════██║██╔══╝  ",
	"██║     ╚██████╔╝███████╗███████║███████╗",
	"╚═╝      ╚═════╝ ╚══════╝╚══════╝╚══════╝",
}

var bannerGradient = []string{"208", "214", "226", "121", "33", "177"}
