package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/bcdxn/vsa/internal/consent"
	"github.com/bcdxn/vsa/internal/contact"
	"github.com/bcdxn/vsa/internal/effects"
	"github.com/bcdxn/vsa/internal/metrics"
	"github.com/bcdxn/vsa/internal/modal"
	"github.com/bcdxn/vsa/internal/nav"
	"github.com/bcdxn/vsa/internal/notify"
	"github.com/bcdxn/vsa/internal/results"
	"github.com/bcdxn/vsa/internal/scrolllock"
	"github.com/bcdxn/vsa/internal/search"
	"github.com/bcdxn/vsa/internal/tui/styles"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	s = styles.Default()
)

const (
	focusPage focus = iota
	focusMenu
	focusModal
	focusForm
	focusSearch
)

const (
	compactThreshold   = 3
	scrollTopThreshold = 8
	defaultWidth       = 100
	defaultHeight      = 32
)

type focus int

// New returns the Bubbletea program running the club viewer.
func New(opts ...TUIOption) *tea.Program {
	m := NewModel(opts...)
	return tea.NewProgram(m, tea.WithContext(m.ctx), tea.WithAltScreen(), tea.WithMouseCellMotion())
}

// NewModel returns the viewer model; exposed separately from New so it can be driven directly.
func NewModel(opts ...TUIOption) Model {
	m := Model{
		logger:      slog.Default(),
		ctx:         context.Background(),
		lock:        scrolllock.New(),
		notifyAfter: notify.DefaultDuration,
		submitDelay: contact.SubmitDelay,
		navOffset:   4,
		width:       defaultWidth,
		height:      defaultHeight,
	}
	// apply given options
	for _, opt := range opts {
		opt(&m)
	}

	if m.dataset == nil {
		d, err := results.Default()
		if err != nil {
			m.logger.Error("loading embedded results", "err", err)
		}
		m.dataset = &d
	}
	m.modal = modal.New(*m.dataset,
		modal.WithLogger(m.logger),
		modal.WithScrollLock(m.lock),
		modal.WithMetrics(m.metrics),
	)
	m.menu = nav.NewMenu(m.lock)
	m.notices = notify.New(m.notifyAfter)

	if m.consentStore != nil {
		st, err := m.consentStore.Load()
		if err != nil {
			m.logger.Warn("reading consent", "err", err)
		}
		m.consentState = st
	} else {
		m.consentState = consent.StateAccepted
	}

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	m.spinner = sp

	si := textinput.New()
	si.Placeholder = "Rechercher..."
	si.Prompt = "/ "
	m.searchInput = si

	m.form = newContactForm()
	m.page = viewport.New(m.width, m.height)
	m.body = viewport.New(m.width, m.height)

	m.typewriter = effects.NewTypewriter(heroSubtitle)
	m.counters = make([]effects.Counter, len(heroStats))
	for i, st := range heroStats {
		m.counters[i] = effects.NewCounter(st.Value, effects.CounterDuration, effects.FrameInterval)
	}

	m = m.layout()
	return m
}

type TUIOption = func(m *Model)

// WithLogger configures the logger to use within the TUI program
func WithLogger(l *slog.Logger) TUIOption {
	return func(m *Model) { m.logger = l }
}

// WithContext configures the context to use within the TUI program
func WithContext(ctx context.Context) TUIOption {
	return func(m *Model) { m.ctx = ctx }
}

// WithDataset replaces the embedded results.
func WithDataset(d results.Dataset) TUIOption {
	return func(m *Model) { m.dataset = &d }
}

// WithMetrics configures the recorder counting interactions.
func WithMetrics(r *metrics.Recorder) TUIOption {
	return func(m *Model) { m.metrics = r }
}

// WithScrollLock shares the page scroll lock.
func WithScrollLock(l *scrolllock.Lock) TUIOption {
	return func(m *Model) { m.lock = l }
}

// WithConsentStore enables the consent banner backed by the given store.
func WithConsentStore(st consent.Store) TUIOption {
	return func(m *Model) { m.consentStore = &st }
}

// WithNotifyDuration sets how long notifications stay visible.
func WithNotifyDuration(d time.Duration) TUIOption {
	return func(m *Model) { m.notifyAfter = d }
}

// WithSubmitDelay sets the duration of the simulated form submission.
func WithSubmitDelay(d time.Duration) TUIOption {
	return func(m *Model) { m.submitDelay = d }
}

// WithNavOffset sets how many lines ahead of a section it becomes active.
func WithNavOffset(lines int) TUIOption {
	return func(m *Model) { m.navOffset = lines }
}

// WithExtraSections adds sections, e.g. indexed from the site's pages, to the search.
func WithExtraSections(sections []search.Section) TUIOption {
	return func(m *Model) { m.extraSections = sections }
}

/* Bubbletea Interface Implementation
------------------------------------------------------------------------------------------------- */

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		typeTickCmd(m.effectsGen, effects.TypingDelay),
		counterTickCmd(m.effectsGen, effects.CounterDelay),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		next tea.Model
		cmd  tea.Cmd
	)
	switch msg := msg.(type) {
	case tea.KeyMsg:
		next, cmd = handleKeyMsg(m, msg)
	case tea.MouseMsg:
		next, cmd = handleMouseMsg(m, msg)
	case tea.WindowSizeMsg:
		next, cmd = handleWindowSizeMsg(m, msg)
	case dismissNotificationMsg:
		next, cmd = handleDismissNotificationMsg(m, msg)
	case SectionsMsg:
		next, cmd = handleSectionsMsg(m, msg)
	case submitDoneMsg:
		next, cmd = handleSubmitDoneMsg(m, msg)
	case counterTickMsg:
		next, cmd = handleCounterTickMsg(m, msg)
	case typeTickMsg:
		next, cmd = handleTypeTickMsg(m, msg)
	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m.layout(), cmd
	default:
		return m, nil
	}
	if nm, ok := next.(Model); ok {
		return nm.layout(), cmd
	}
	return next, cmd
}

func (m Model) View() string {
	if m.modal.Visible() {
		return modalView(m)
	}
	return pageView(m)
}

/* Type Definitions
------------------------------------------------------------------------------------------------- */

type Model struct {
	// collaborators
	modal        *modal.Controller
	menu         *nav.Menu
	notices      *notify.Center
	lock         *scrolllock.Lock
	dataset      *results.Dataset
	consentStore *consent.Store
	consentState consent.State
	// page
	focus    focus
	width    int
	height   int
	page     viewport.Model
	sections []nav.Section
	selected int // selected result card
	cursor   int // selected menu entry
	// results viewer body
	body viewport.Model
	// contact form
	form        contactForm
	submitting  bool
	submitGen   int // generation of the running submission
	spinner     spinner.Model
	submitDelay time.Duration
	// search
	searchInput   textinput.Model
	searchResults []search.Result
	extraSections []search.Section
	// intro effects
	counters   []effects.Counter
	typewriter effects.Typewriter
	effectsGen int
	// configuration
	notifyAfter time.Duration
	navOffset   int
	// observability
	logger  *slog.Logger
	metrics *metrics.Recorder
	ctx     context.Context
}
