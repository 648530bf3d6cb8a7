package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Accent = lipgloss.Color("#f4722b")

	ContainerTitle       = lipgloss.NewStyle().Bold(true)
	ContainerBorder      = lipgloss.RoundedBorder()
	ContainerStyle       = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Gray)
	ContainerStyleActive = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Blue)

	HeaderContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)
	ContentContainerStyle = lipgloss.NewStyle().Align(lipgloss.Center)
	FooterContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)

	FocusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	BlurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(Black)
	CursorStyle  = FocusedStyle
	NoStyle      = lipgloss.NewStyle()
	HelpStyle    = BlurredStyle

	FocusedSubmitButton = lipgloss.NewStyle().Foreground(Accent).Render("[ Valider ]")
	BlurredSubmitButton = fmt.Sprintf("[ %s ]", BlurredStyle.Render("Valider"))

	Black       = lipgloss.Color("#111111")
	Gray        = lipgloss.Color("#3e3e3e")
	Gray500     = lipgloss.Color("#6b7280")
	GrayDark    = lipgloss.Color("#2f3030")
	GrayDarkAlt = lipgloss.Color("#0f0f0f")
	White       = lipgloss.Color("#cccccc")
	Whiter      = lipgloss.Color("#eeeeee")

	Red   = lipgloss.Color("#B8383B")
	Blue  = lipgloss.Color("#5885A2")
	Green = lipgloss.Color("#4d7455")
	Gold  = lipgloss.Color("#ffd700")

	Title    = lipgloss.NewStyle().Foreground(Whiter).Bold(true).PaddingLeft(1)
	Subtitle = lipgloss.NewStyle().Foreground(Gray500).PaddingLeft(1)
	Clock    = lipgloss.NewStyle().Foreground(Gold).Bold(true).PaddingRight(1)

	AdminTrigger       = lipgloss.NewStyle().Foreground(Gray500).PaddingLeft(1).PaddingRight(1)
	AdminTriggerActive = lipgloss.NewStyle().Foreground(Accent).Bold(true).PaddingLeft(1).PaddingRight(1)

	TableHeading       = lipgloss.NewStyle().Background(Black).Foreground(Accent).Bold(true)
	TableRowValuesEven = lipgloss.NewStyle().Background(GrayDark)
	TableRowValuesOdd  = lipgloss.NewStyle().Background(GrayDarkAlt)
	TableRowSelected   = lipgloss.NewStyle().Background(Blue).Foreground(Black).Bold(true)
	LeagueName         = lipgloss.NewStyle().Bold(true)
	FloorLabel         = lipgloss.NewStyle().Foreground(Gray500)
	Office             = lipgloss.NewStyle().Align(lipgloss.Right)

	DeleteButton = lipgloss.NewStyle().Foreground(Red).Bold(true)

	ErrorBanner   = lipgloss.NewStyle().Foreground(Whiter).Background(Red).Bold(true).Padding(0, 1)
	ConfirmBanner = lipgloss.NewStyle().Foreground(Black).Background(Gold).Bold(true).Padding(0, 1)

	StatusError   = lipgloss.NewStyle().Foreground(Red).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusMessage = lipgloss.NewStyle().Foreground(Green).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusHelp    = lipgloss.NewStyle().Foreground(Gray).Bold(true).Align(lipgloss.Center)
	StatusVersion = lipgloss.NewStyle().Foreground(Green).Bold(true).Align(lipgloss.Center).PaddingLeft(1).PaddingRight(1)

	ScreensaverTitle   = lipgloss.NewStyle().Foreground(Whiter).Bold(true)
	ScreensaverCaption = lipgloss.NewStyle().Foreground(Gray500).Italic(true)
	ScreensaverClock   = lipgloss.NewStyle().Foreground(Gold).Bold(true)

	PanelLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Align(lipgloss.Right).Width(16)
	PanelValue = lipgloss.NewStyle().Width(60)

	InfoMessage = lipgloss.NewStyle().Align(lipgloss.Center).Padding(1)

	HelpBox = lipgloss.NewStyle().Padding(2)

	IconInfo   = "💡"
	IconEmpty  = "🏟️"
	IconLock   = "🔒"
	IconUnlock = "🔓"
)

func DetailRow(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		PanelLabel.Render(label+" "),
		PanelValue.Render(value))
}

// WrapX will wrap a centered string with the supplied character up to the lenth specified.
func WrapX(width int, value string, character string) string {
	all := max(width-lipgloss.Width(value), 0)

	return strings.Repeat(character, all/2) + value + strings.Repeat(character, all/2)
}

func TitleBorder(border lipgloss.Border, width int, title string) lipgloss.Border {
	border.Top = WrapX(width, "┤"+title+"├", border.Top)

	return border
}
