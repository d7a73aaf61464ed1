package styles

import "github.com/charmbracelet/lipgloss"

type Style struct {
	Color          Color
	Doc            lipgloss.Style
	TitleBar       lipgloss.Style
	SubtitleBar    lipgloss.Style
	NavLink        lipgloss.Style
	NavLinkActive  lipgloss.Style
	Card           lipgloss.Style
	CardSelected   lipgloss.Style
	Scrim          lipgloss.AdaptiveColor
	ModalBox       lipgloss.Style
	ModalTitle     lipgloss.Style
	ModalDate      lipgloss.Style
	Tab            lipgloss.Style
	TabActive      lipgloss.Style
	CategoryHeader lipgloss.Style
	Podium         [3]lipgloss.Style
	Record         lipgloss.Style
	Qualification  lipgloss.Style
	Highlight      lipgloss.Style
	NotifySuccess  lipgloss.Style
	NotifyError    lipgloss.Style
	ConsentBanner  lipgloss.Style
	Menu           lipgloss.Style
	FieldLabel     lipgloss.Style
	Help           lipgloss.Style
	Subtle         lipgloss.Style
}

type Color struct {
	ClubBlue          lipgloss.Color
	ClubAccent        lipgloss.Color
	Navy              lipgloss.Color
	Gold              lipgloss.Color
	Silver            lipgloss.Color
	Bronze            lipgloss.Color
	Record            lipgloss.Color
	Qualification     lipgloss.Color
	Success           lipgloss.Color
	Error             lipgloss.Color
	Light             lipgloss.Color
	Dark              lipgloss.Color
	Subtle            lipgloss.AdaptiveColor
	PrimaryForeground lipgloss.AdaptiveColor
}

func Default() *Style {
	clubBlue := lipgloss.Color("#04088A")
	clubAccent := lipgloss.Color("#1E34C8")
	navy := lipgloss.Color("#05076D")
	gold := lipgloss.Color("#FFD700")
	silver := lipgloss.Color("#C0C0C0")
	bronze := lipgloss.Color("#CD7F32")
	record := lipgloss.Color("#E74C3C")
	qualification := lipgloss.Color("#5F27CD")
	success := lipgloss.Color("#27AE60")
	errorRed := lipgloss.Color("#E74C3C")
	light := lipgloss.Color("#F5F6FA")
	dark := lipgloss.Color("#0A1929")
	subtle := lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	primaryForeground := lipgloss.AdaptiveColor{Light: "#383838", Dark: "#D9DCCF"}

	badge := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	return &Style{
		Color: Color{
			// club colors
			ClubBlue:      clubBlue,
			ClubAccent:    clubAccent,
			Navy:          navy,
			Gold:          gold,
			Silver:        silver,
			Bronze:        bronze,
			Record:        record,
			Qualification: qualification,
			// Thematic colors
			Success:           success,
			Error:             errorRed,
			Light:             light,
			Dark:              dark,
			Subtle:            subtle,
			PrimaryForeground: primaryForeground,
		},
		Doc: lipgloss.NewStyle().Margin(0, 1),
		// header styles
		TitleBar: lipgloss.NewStyle().
			Align(lipgloss.Center).
			Bold(true).
			Foreground(light).
			Background(clubBlue),
		SubtitleBar: lipgloss.NewStyle().
			Align(lipgloss.Center).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(primaryForeground).
			Foreground(primaryForeground),
		NavLink:       lipgloss.NewStyle().Padding(0, 1).Foreground(primaryForeground),
		NavLinkActive: lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true).Foreground(clubAccent),
		// result cards
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtle).
			Padding(0, 1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(clubAccent).
			Padding(0, 1),
		// results viewer
		Scrim: subtle,
		ModalBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(clubAccent).
			Padding(0, 1),
		ModalTitle: lipgloss.NewStyle().Bold(true).Foreground(clubAccent),
		ModalDate:  lipgloss.NewStyle().Italic(true).Foreground(primaryForeground),
		Tab:        lipgloss.NewStyle().Padding(0, 2).Foreground(primaryForeground),
		TabActive: lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(light).
			Background(clubAccent),
		CategoryHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(navy).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(navy),
		Podium: [3]lipgloss.Style{
			badge.Foreground(dark).Background(gold),
			badge.Foreground(dark).Background(silver),
			badge.Foreground(light).Background(bronze),
		},
		Record:        badge.Foreground(light).Background(record),
		Qualification: badge.Foreground(light).Background(qualification),
		Highlight: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(navy).
			PaddingLeft(1),
		// notification (toast) styles
		NotifySuccess: lipgloss.NewStyle().Foreground(light).Background(success).Padding(0, 2),
		NotifyError:   lipgloss.NewStyle().Foreground(light).Background(errorRed).Padding(0, 2),
		ConsentBanner: lipgloss.NewStyle().
			Foreground(light).
			Background(dark).
			Padding(0, 2),
		Menu: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(clubAccent).
			Padding(0, 1),
		FieldLabel: lipgloss.NewStyle().Bold(true).Width(10),
		Help:       lipgloss.NewStyle().Foreground(subtle),
		Subtle:     lipgloss.NewStyle().Foreground(subtle),
	}
}
