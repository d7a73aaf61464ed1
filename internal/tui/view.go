package tui

import (
	"fmt"
	"strings"

	"github.com/bcdxn/vsa/internal/consent"
	"github.com/bcdxn/vsa/internal/contact"
	"github.com/bcdxn/vsa/internal/domain"
	"github.com/bcdxn/vsa/internal/nav"
	"github.com/bcdxn/vsa/internal/notify"
	"github.com/bcdxn/vsa/internal/render"
	"github.com/bcdxn/vsa/internal/search"
	"github.com/charmbracelet/lipgloss"
	"github.com/evertras/bubble-table/table"
)

const (
	clubName     = "VSA Athlétisme"
	heroSubtitle = "Courir, sauter, lancer : la passion de l'athlétisme depuis 1979"
	aboutText    = "Le VSA accueille petits et grands, du loisir à la compétition. " +
		"Nos entraîneurs diplômés encadrent le sprint, le demi-fond, les sauts, les lancers et le cross."
	contactText   = "Une question sur les licences ou les entraînements ? Écrivez-nous."
	maxModalWidth = 96
	maxCardWidth  = 64
	searchLimit   = 5

	closeControl    = "[x]"
	closeControlGap = "  "
)

const (
	colRank   = "rank"
	colName   = "name"
	colEvent  = "event"
	colPerf   = "performance"
	colBadges = "badges"
)

var heroStats = []struct {
	Value string
	Label string
}{
	{"350+", "Licenciés"},
	{"45", "Ans d'histoire"},
	{"120+", "Médailles"},
}

type pageSection struct {
	id    string
	title string
	body  string
	text  string // text is the searchable plain content
}

/* Layout
------------------------------------------------------------------------------------------------- */

// layout sizes the viewports and refreshes their content from the current state.
func (m Model) layout() Model {
	blocks := m.pageSections()
	m.sections = make([]nav.Section, 0, len(blocks))
	parts := make([]string, 0, len(blocks))
	top := 0
	for _, b := range blocks {
		m.sections = append(m.sections, nav.Section{ID: b.id, Title: b.title, Top: top})
		parts = append(parts, b.body)
		top += lipgloss.Height(b.body) + 1
	}

	chrome := lipgloss.Height(headerView(m)) + lipgloss.Height(footerView(m))
	if o := overlaysView(m); o != "" {
		chrome += lipgloss.Height(o)
	}
	m.page.Width = m.width
	m.page.Height = max(1, m.height-chrome)
	m.page.SetContent(strings.Join(parts, "\n\n"))

	if m.modal.Visible() {
		w, h := modalBodySize(m)
		m.body.Width = w
		m.body.Height = h
		m.body.SetContent(tabContent(m, w))
	}
	return m
}

func (m Model) activeSection() string {
	return nav.ActiveSection(m.sections, m.page.YOffset, m.navOffset)
}

func (m Model) searchSections() []search.Section {
	blocks := m.pageSections()
	sections := make([]search.Section, 0, len(blocks)+len(m.extraSections))
	for _, b := range blocks {
		sections = append(sections, search.Section{ID: b.id, Title: b.title, Text: b.text})
	}
	return append(sections, m.extraSections...)
}

func (m Model) pageSections() []pageSection {
	width := max(20, m.width)
	return []pageSection{
		heroSection(m, width),
		aboutSection(width),
		resultsSection(m, width),
		contactSection(m, width),
	}
}

/* Page
------------------------------------------------------------------------------------------------- */

func pageView(m Model) string {
	parts := []string{headerView(m)}
	if o := overlaysView(m); o != "" {
		parts = append(parts, o)
	}
	parts = append(parts, m.page.View(), footerView(m))
	return s.Doc.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func headerView(m Model) string {
	active := m.activeSection()
	links := make([]string, 0, len(m.sections))
	for _, sec := range m.sections {
		if sec.ID == active {
			links = append(links, s.NavLinkActive.Render(sec.Title))
		} else {
			links = append(links, s.NavLink.Render(sec.Title))
		}
	}
	linkRow := lipgloss.JoinHorizontal(lipgloss.Top, links...)

	if nav.Compact(m.page.YOffset, compactThreshold) {
		title := s.TitleBar.Render(" " + clubName + " ")
		return lipgloss.JoinHorizontal(lipgloss.Top, title, " ", linkRow)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		s.TitleBar.Width(m.width).Render(clubName),
		s.SubtitleBar.Width(m.width).Render(linkRow),
	)
}

func overlaysView(m Model) string {
	var parts []string
	if m.menu.IsOpen() {
		parts = append(parts, menuView(m))
	}
	if m.focus == focusSearch || len(m.searchResults) > 0 {
		parts = append(parts, searchView(m))
	}
	if b, ok := m.notices.Current(); ok {
		parts = append(parts, notificationView(b))
	}
	if m.submitting {
		parts = append(parts, m.spinner.View()+" "+contact.SendingLabel)
	}
	if m.consentState.NeedsBanner() {
		parts = append(parts, s.ConsentBanner.Width(m.width).Render(fmt.Sprintf(
			"%s  [a] %s  [d] %s", consent.BannerText, consent.AcceptLabel, consent.DeclineLabel)))
	}
	if len(parts) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func footerView(m Model) string {
	var help string
	switch m.focus {
	case focusMenu:
		help = "↑/↓ section • entrée aller • esc fermer"
	case focusForm:
		help = "tab champ suivant • ctrl+s envoyer • esc quitter le formulaire"
	case focusSearch:
		help = "entrée aller au premier résultat • esc fermer"
	default:
		help = "←/→ compétition • entrée résultats • m menu • / rechercher • c contact • q quitter"
		if m.page.YOffset > scrollTopThreshold {
			help = "t ↑ haut de page • " + help
		}
	}
	return s.Help.Render(help)
}

func menuView(m Model) string {
	lines := make([]string, 0, len(m.sections))
	for i, sec := range m.sections {
		prefix := "  "
		if i == m.cursor {
			prefix = "▸ "
		}
		lines = append(lines, prefix+sec.Title)
	}
	return s.Menu.Render(strings.Join(lines, "\n"))
}

func searchView(m Model) string {
	lines := []string{m.searchInput.View()}
	query := m.searchInput.Value()
	switch {
	case len([]rune(strings.TrimSpace(query))) < search.MinQueryLength:
	case len(m.searchResults) == 0:
		lines = append(lines, s.Subtle.Render(search.NoResults))
	default:
		for i, r := range m.searchResults {
			if i == searchLimit {
				break
			}
			snippet := r.Snippet
			if limit := m.width - lipgloss.Width(r.Title) - 6; limit > 10 && len([]rune(snippet)) > limit {
				snippet = string([]rune(snippet)[:limit]) + "…"
			}
			lines = append(lines, fmt.Sprintf("%s  %s", s.ModalTitle.Render(r.Title), s.Subtle.Render(snippet)))
		}
	}
	return strings.Join(lines, "\n")
}

func notificationView(b notify.Banner) string {
	if b.Kind == notify.KindSuccess {
		return s.NotifySuccess.Render(b.Text)
	}
	return s.NotifyError.Render(b.Text)
}

func heroSection(m Model, width int) pageSection {
	stats := make([]string, len(m.counters))
	plain := make([]string, len(heroStats))
	for i, c := range m.counters {
		stats[i] = lipgloss.NewStyle().Width(width/len(m.counters)).Align(lipgloss.Center).Render(
			s.ModalTitle.Render(c.Text()) + "\n" + heroStats[i].Label)
		plain[i] = heroStats[i].Value + " " + heroStats[i].Label
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(clubName),
		lipgloss.NewStyle().Italic(true).Render(m.typewriter.Text()),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, stats...),
	)
	return pageSection{
		id:    "accueil",
		title: "Accueil",
		body:  body,
		text:  clubName + " " + heroSubtitle + " " + strings.Join(plain, " "),
	}
}

func aboutSection(width int) pageSection {
	body := lipgloss.JoinVertical(lipgloss.Left,
		s.CategoryHeader.Render("Le Club"),
		lipgloss.NewStyle().Width(width).Render(aboutText),
	)
	return pageSection{id: "club", title: "Le Club", body: body, text: "Le Club " + aboutText}
}

func resultsSection(m Model, width int) pageSection {
	cardWidth := min(width-2, maxCardWidth)
	cards := []string{s.CategoryHeader.Render("Nos Résultats")}
	text := []string{"Nos Résultats"}
	for i, id := range m.modal.IDs() {
		title, date := m.modal.Title(id), m.modal.Date(id)
		style := s.Card
		hint := ""
		if i == m.selected {
			style = s.CardSelected
			hint = "\n" + s.Help.Render("entrée : voir les résultats")
		}
		cards = append(cards, style.Width(cardWidth).Render(
			s.ModalTitle.Render(title)+"\n"+date+hint))
		text = append(text, title, date)
	}
	return pageSection{
		id:    "resultats",
		title: "Résultats",
		body:  lipgloss.JoinVertical(lipgloss.Left, cards...),
		text:  strings.Join(text, " "),
	}
}

func contactSection(m Model, width int) pageSection {
	parts := []string{s.CategoryHeader.Render("Contact"), contactText, "", m.form.view(width)}
	if !m.form.active {
		parts = append(parts, s.Help.Render("c : remplir le formulaire"))
	}
	return pageSection{
		id:    "contact",
		title: "Contact",
		body:  lipgloss.JoinVertical(lipgloss.Left, parts...),
		text:  "Contact " + contactText,
	}
}

/* Results Viewer
------------------------------------------------------------------------------------------------- */

func modalView(m Model) string {
	return s.Doc.Render(lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modalBox(m),
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(s.Scrim),
	))
}

func modalBox(m Model) string {
	c := m.modal.Content()
	w, _ := modalBodySize(m)

	selectors := m.modal.Tabs().Selectors()
	tabs := make([]string, len(selectors))
	for i, sel := range selectors {
		label := fmt.Sprintf("%d %s", i+1, sel.Tab.Label())
		if sel.Active {
			tabs[i] = s.TabActive.Render(label)
		} else {
			tabs[i] = s.Tab.Render(label)
		}
	}

	inner := lipgloss.JoinVertical(lipgloss.Left,
		modalTitleView(m)+closeControlGap+s.Help.Render(closeControl),
		s.ModalDate.Render(c.Date),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		"",
		m.body.View(),
		s.Help.Render("←/→ onglet • ↑/↓ défiler • esc fermer"),
	)
	return s.ModalBox.Width(w + 2).Render(inner)
}

func modalTitleView(m Model) string {
	return s.ModalTitle.Render(m.modal.Content().Title)
}

func modalBodySize(m Model) (int, int) {
	w := max(20, min(m.width-4, maxModalWidth))
	h := max(3, m.height-11)
	return w, h
}

// tabContent renders the active tab only, so exactly one content container is visible.
func tabContent(m Model, width int) string {
	c := m.modal.Content()
	switch m.modal.Tabs().Active() {
	case domain.TabHighlights:
		return highlightsView(c.Highlights, width)
	case domain.TabConditions:
		return conditionsView(c.Conditions)
	default:
		return resultsView(c.Results)
	}
}

func resultsView(v render.ResultsView) string {
	parts := make([]string, 0, len(v.Groups)*2)
	for _, g := range v.Groups {
		parts = append(parts, s.CategoryHeader.Render(g.Label), resultsTable(g).View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func resultsTable(g render.Group) table.Model {
	rows := make([]table.Row, 0, len(g.Rows))
	for _, r := range g.Rows {
		rows = append(rows, table.NewRow(table.RowData{
			colRank:   r.Rank,
			colName:   r.Name,
			colEvent:  r.Event,
			colPerf:   table.NewStyledCell(r.Performance, lipgloss.NewStyle().Bold(true)),
			colBadges: marksView(r.Marks),
		}))
	}
	return table.New([]table.Column{
		table.NewColumn(colRank, "Rang", 5).WithStyle(lipgloss.NewStyle().Align(lipgloss.Center)),
		table.NewColumn(colName, "Athlète", 20),
		table.NewColumn(colEvent, "Épreuve", 18),
		table.NewColumn(colPerf, "Performance", 12),
		table.NewColumn(colBadges, "Distinctions", 18),
	}).
		WithRows(rows).
		WithBaseStyle(lipgloss.NewStyle().Align(lipgloss.Left))
}

func marksView(marks []render.BadgeMark) string {
	out := make([]string, 0, len(marks))
	for _, mk := range marks {
		switch mk.Kind {
		case render.MarkPodium:
			out = append(out, s.Podium[mk.Position-1].Render(mk.Label))
		case render.MarkRecord:
			out = append(out, s.Record.Render(mk.Label))
		case render.MarkQualification:
			out = append(out, s.Qualification.Render(mk.Label))
		}
	}
	return strings.Join(out, " ")
}

func highlightsView(v render.HighlightsView, width int) string {
	items := make([]string, 0, len(v.Items)+1)
	items = append(items, s.ModalTitle.Render("★ "+v.Title))
	for _, item := range v.Items {
		items = append(items, s.Highlight.Width(width-2).Render(item))
	}
	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

func conditionsView(v render.ConditionsView) string {
	lines := []string{s.ModalTitle.Render("ⓘ " + v.Title)}
	for _, f := range v.Fields {
		lines = append(lines, s.FieldLabel.Width(15).Render(f.Label+":")+" "+f.Value)
	}
	return strings.Join(lines, "\n")
}
