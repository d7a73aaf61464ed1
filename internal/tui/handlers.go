package tui

import (
	"strings"
	"time"

	"github.com/bcdxn/vsa/internal/consent"
	"github.com/bcdxn/vsa/internal/contact"
	"github.com/bcdxn/vsa/internal/domain"
	"github.com/bcdxn/vsa/internal/effects"
	"github.com/bcdxn/vsa/internal/notify"
	"github.com/bcdxn/vsa/internal/search"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

/* Tea Message Types
------------------------------------------------------------------------------------------------- */

// dismissNotificationMsg fires once a notification's display time has elapsed. It only
// dismisses the notification it was scheduled for.
type dismissNotificationMsg struct{ ID string }

// SectionsMsg delivers sections indexed from the site's pages, added to the search.
type SectionsMsg []search.Section

// Deferred messages carry the generation they were scheduled in; a message from an older
// generation was cancelled and is ignored.
type (
	submitDoneMsg  struct{ gen int }
	counterTickMsg struct{ gen int }
	typeTickMsg    struct{ gen int }
)

/* Tea Commands
------------------------------------------------------------------------------------------------- */

func notifyCmd(m Model, kind notify.Kind, text string) tea.Cmd {
	b := m.notices.Show(kind, text)
	return tea.Tick(m.notices.Duration(), func(time.Time) tea.Msg {
		return dismissNotificationMsg{ID: b.ID}
	})
}

func submitCmd(gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return submitDoneMsg{gen: gen} })
}

func counterTickCmd(gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return counterTickMsg{gen: gen} })
}

func typeTickCmd(gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return typeTickMsg{gen: gen} })
}

/* Tea Message Handlers
------------------------------------------------------------------------------------------------- */

func handleKeyMsg(m Model, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.logger.Debug("received quit tea message")
		return m, tea.Quit
	}
	// the cancellation key closes the results viewer whatever has focus
	if msg.String() == "esc" && m.modal.Visible() {
		return closeModal(m), nil
	}
	switch m.focus {
	case focusModal:
		return handleModalKey(m, msg)
	case focusMenu:
		return handleMenuKey(m, msg)
	case focusForm:
		return handleFormKey(m, msg)
	case focusSearch:
		return handleSearchKey(m, msg)
	default:
		return handlePageKey(m, msg)
	}
}

func handlePageKey(m Model, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ids := m.modal.IDs()
	switch msg.String() {
	case "q":
		m.logger.Debug("received quit tea message")
		return m, tea.Quit
	case "a", "d":
		if m.consentState.NeedsBanner() {
			return answerConsent(m, msg.String() == "a"), nil
		}
	case "m":
		if m.menu.Toggle() {
			m.focus = focusMenu
			m.cursor = m.activeSectionIndex()
		}
		return m, nil
	case "t":
		m.page.GotoTop()
		return m, nil
	case "s":
		return skipIntro(m), nil
	case "/":
		m.focus = focusSearch
		return m, m.searchInput.Focus()
	case "c":
		m.focus = focusForm
		m = jumpTo(m, "contact")
		return m, m.form.focusField(m.form.focused)
	case "left", "h", "shift+tab":
		if len(ids) > 0 {
			m.selected = (m.selected + len(ids) - 1) % len(ids)
		}
		return m, nil
	case "right", "l", "tab":
		if len(ids) > 0 {
			m.selected = (m.selected + 1) % len(ids)
		}
		return m, nil
	case "enter":
		if m.selected < len(ids) {
			return openModal(m, ids[m.selected]), nil
		}
		return m, nil
	}
	return scrollPage(m, msg)
}

func handleModalKey(m Model, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	active := m.modal.Tabs().Active()
	switch msg.String() {
	case "x", "q":
		return closeModal(m), nil
	case "tab", "right", "l":
		return switchTab(m, active.Next()), nil
	case "shift+tab", "left", "h":
		return switchTab(m, active.Prev()), nil
	case "1", "2", "3":
		tabs := domain.Tabs()
		return switchTab(m, tabs[msg.String()[0]-'1']), nil
	}
	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	return m, cmd
}

func handleMenuKey(m Model, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "m":
		m.menu.Toggle()
		m.focus = focusPage
	case "esc", "q":
		m.menu.Close()
		m.focus = focusPage
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.sections)-1 {
			m.cursor++
		}
	case "enter":
		m.menu.Close()
		m.focus = focusPage
		if m.cursor < len(m.sections) {
			m = m.layout()
			m.page.SetYOffset(m.sections[m.cursor].Top)
		}
	}
	return m, nil
}

func handleFormKey(m Model, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.submitting {
			m = cancelSubmit(m)
		}
		m.form.blur()
		m.focus = focusPage
		return m, nil
	case "ctrl+s":
		return submitForm(m)
	case "tab", "down":
		return m, m.form.focusField(m.form.focused + 1)
	case "shift+tab", "up":
		return m, m.form.focusField(m.form.focused - 1)
	case "enter":
		if !m.form.onMessage() {
			if m.form.focused == fieldSubject {
				return m, m.form.focusField(fieldMessage)
			}
			return m, m.form.focusField(m.form.focused + 1)
		}
	}
	if m.submitting {
		return m, nil
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func handleSearchKey(m Model, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searchInput.Blur()
		m.searchInput.Reset()
		m.searchResults = nil
		m.focus = focusPage
		return m, nil
	case "enter":
		m.searchInput.Blur()
		m.focus = focusPage
		if len([]rune(strings.TrimSpace(m.searchInput.Value()))) >= search.MinQueryLength {
			m.metrics.Searched()
		}
		if len(m.searchResults) > 0 {
			m = m.layout()
			m = jumpTo(m, m.searchResults[0].Section)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m = runSearch(m)
	return m, cmd
}

func handleMouseMsg(m Model, msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	click := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
	if m.menu.IsOpen() {
		if click && !inside(msg, menuRect(m)) {
			m.logger.Debug("click outside of the menu")
			m.menu.Close()
			m.focus = focusPage
		}
		return m, nil
	}
	if m.modal.Visible() {
		if click {
			if cx, cy, cw := closeControlRect(m); msg.Y == cy && msg.X >= cx && msg.X < cx+cw {
				m.logger.Debug("click on results viewer close control")
				return closeModal(m), nil
			}
			if !inside(msg, modalRect(m)) {
				m.logger.Debug("click on results viewer scrim")
				return closeModal(m), nil
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.body, cmd = m.body.Update(msg)
		return m, cmd
	}
	if m.lock.Locked() {
		return m, nil
	}
	var cmd tea.Cmd
	m.page, cmd = m.page.Update(msg)
	return m, cmd
}

func handleWindowSizeMsg(m Model, msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	h, v := s.Doc.GetFrameSize()
	m.width = msg.Width - h
	m.height = msg.Height - v
	return m, nil
}

func handleDismissNotificationMsg(m Model, msg dismissNotificationMsg) (tea.Model, tea.Cmd) {
	if !m.notices.Dismiss(msg.ID) {
		m.logger.Debug("ignoring stale notification dismissal", "id", msg.ID)
	}
	return m, nil
}

func handleSectionsMsg(m Model, msg SectionsMsg) (tea.Model, tea.Cmd) {
	m.logger.Debug("received indexed sections", "count", len(msg))
	m.extraSections = append(m.extraSections, msg...)
	if m.focus == focusSearch {
		m = runSearch(m)
	}
	return m, nil
}

func handleSubmitDoneMsg(m Model, msg submitDoneMsg) (tea.Model, tea.Cmd) {
	if !m.submitting || msg.gen != m.submitGen {
		m.logger.Debug("ignoring stale submission", "gen", msg.gen)
		return m, nil
	}
	m.submitting = false
	m.form.reset()
	m.metrics.FormSubmitted()
	m.logger.Info("contact form submitted")
	return m, notifyCmd(m, notify.KindSuccess, contact.SuccessMessage)
}

func handleCounterTickMsg(m Model, msg counterTickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.effectsGen {
		return m, nil
	}
	done := true
	for i := range m.counters {
		if !m.counters[i].Step() {
			done = false
		}
	}
	if done {
		return m, nil
	}
	return m, counterTickCmd(m.effectsGen, effects.FrameInterval)
}

func handleTypeTickMsg(m Model, msg typeTickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.effectsGen || m.typewriter.Step() {
		return m, nil
	}
	return m, typeTickCmd(m.effectsGen, effects.TypingInterval)
}

/* Private Helper Functions
------------------------------------------------------------------------------------------------- */

func openModal(m Model, id string) Model {
	if !m.modal.Open(id) {
		return m
	}
	m.focus = focusModal
	m.body.GotoTop()
	return m
}

func closeModal(m Model) Model {
	m.modal.Close()
	if m.focus == focusModal {
		m.focus = focusPage
	}
	return m
}

func switchTab(m Model, tab domain.Tab) Model {
	if m.modal.SwitchTo(tab) {
		m.body.GotoTop()
	}
	return m
}

func scrollPage(m Model, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.lock.Locked() {
		m.logger.Debug("page scroll is locked", "holders", m.lock.Holders())
		return m, nil
	}
	var cmd tea.Cmd
	m.page, cmd = m.page.Update(msg)
	return m, cmd
}

func submitForm(m Model) (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	if err := m.form.values().Validate(); err != nil {
		m.metrics.FormRejected(contact.Reason(err))
		m.logger.Debug("contact form rejected", "err", err)
		return m, notifyCmd(m, notify.KindError, err.Error())
	}
	if b, ok := m.notices.Current(); ok && b.Kind == notify.KindError {
		m.notices.Cancel(b.ID)
	}
	m.submitting = true
	m.submitGen++
	return m, tea.Batch(m.spinner.Tick, submitCmd(m.submitGen, m.submitDelay))
}

// cancelSubmit abandons the running submission; its pending completion becomes stale.
func cancelSubmit(m Model) Model {
	m.submitting = false
	m.submitGen++
	m.logger.Debug("contact submission cancelled")
	return m
}

// skipIntro completes the intro effects at once and invalidates their pending ticks.
func skipIntro(m Model) Model {
	for i := range m.counters {
		m.counters[i].Finish()
	}
	m.typewriter.Finish()
	m.effectsGen++
	return m
}

func answerConsent(m Model, accepted bool) Model {
	st := consent.StateDeclined
	if accepted {
		st = consent.StateAccepted
	}
	m.consentState = st
	if m.consentStore != nil {
		if err := m.consentStore.Save(st); err != nil {
			m.logger.Warn("saving consent", "err", err)
		}
	}
	return m
}

func runSearch(m Model) Model {
	m.searchResults = search.Search(m.searchSections(), m.searchInput.Value())
	return m
}

func jumpTo(m Model, sectionID string) Model {
	for _, sec := range m.sections {
		if sec.ID == sectionID {
			m.page.SetYOffset(sec.Top)
			return m
		}
	}
	m.logger.Debug("search result outside of the page", "section", sectionID)
	return m
}

type rect struct{ x, y, w, h int }

func inside(msg tea.MouseMsg, r rect) bool {
	return msg.X >= r.x && msg.X < r.x+r.w && msg.Y >= r.y && msg.Y < r.y+r.h
}

// modalRect returns the position and size of the results viewer box on screen.
func modalRect(m Model) rect {
	box := modalBox(m)
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	fh, fv := s.Doc.GetFrameSize()
	return rect{
		x: max(0, (m.width-w)/2) + fh/2,
		y: max(0, (m.height-h)/2) + fv/2,
		w: w,
		h: h,
	}
}

// closeControlRect returns the screen cells of the viewer's close control, which ends the
// box's first line.
func closeControlRect(m Model) (x, y, w int) {
	box := modalRect(m)
	x = box.x + s.ModalBox.GetBorderLeftSize() + s.ModalBox.GetPaddingLeft() +
		lipgloss.Width(modalTitleView(m)) + len(closeControlGap)
	y = box.y + s.ModalBox.GetBorderTopSize() + s.ModalBox.GetPaddingTop()
	return x, y, lipgloss.Width(s.Help.Render(closeControl))
}

// menuRect returns where the open menu is drawn: first overlay, right below the header.
func menuRect(m Model) rect {
	menu := menuView(m)
	fh, fv := s.Doc.GetFrameSize()
	return rect{
		x: fh / 2,
		y: fv/2 + lipgloss.Height(headerView(m)),
		w: lipgloss.Width(menu),
		h: lipgloss.Height(menu),
	}
}

func (m Model) activeSectionIndex() int {
	id := m.activeSection()
	for i, sec := range m.sections {
		if sec.ID == id {
			return i
		}
	}
	return 0
}
