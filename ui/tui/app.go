package tui

import (
	"math"
	"strconv"
	"time"

	"tabpager/internal/config"
	"tabpager/internal/logger"
	"tabpager/internal/pager"
	"tabpager/internal/syncctl"
	"tabpager/internal/tabbar"
	"tabpager/internal/tabs"
	"tabpager/ui/tui/components"
	"tabpager/ui/tui/styles"
	"tabpager/ui/tui/views"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rs/zerolog"
)

// indicatorEpsilon is how close the drawn indicator must be to the model
// offset before the easing spring stops.
const indicatorEpsilon = 1e-3

// indicatorFrequency is the angular frequency of the critically damped
// indicator spring. It covers about 95% of a jump in 100ms.
const indicatorFrequency = 48.0

// Options configures the widget.
type Options struct {
	Style         styles.Style
	AnimateSelect bool
	DragStep      float64
	SettleDelay   time.Duration
	FrameInterval time.Duration
	Spring        pager.SpringConfig
	// Zones is the hit-zone manager for tab clicks. When nil, New creates one
	// and Close releases it.
	Zones      *zone.Manager
	Logger     zerolog.Logger
	SyncLogger zerolog.Logger
}

// DefaultOptions returns the built-in widget options.
func DefaultOptions() Options {
	return Options{
		Style:         styles.DefaultStyle(),
		DragStep:      0.1,
		SettleDelay:   300 * time.Millisecond,
		FrameInterval: 16 * time.Millisecond,
		Spring:        pager.DefaultSpring(),
		Logger:        zerolog.Nop(),
		SyncLogger:    zerolog.Nop(),
	}
}

// OptionsFromConfig builds the widget options from the application config.
func OptionsFromConfig(cfg *config.AppConfig) Options {
	b := cfg.Behavior
	return Options{
		Style:         styles.FromConfig(cfg.Style),
		AnimateSelect: b.AnimateSelect,
		DragStep:      b.DragStep,
		SettleDelay:   b.SettleDelay,
		FrameInterval: b.FrameInterval,
		Spring: pager.SpringConfig{
			FPS:       b.FPS(),
			Frequency: b.SpringFrequency,
			Damping:   b.SpringDamping,
		},
		Logger:     logger.GetLogger("tui"),
		SyncLogger: logger.GetLogger("sync"),
	}
}

// Model is the Bubble Tea model of the tab bar and pager widget.
type Model struct {
	opts  Options
	bar   *tabbar.Model
	pager *pager.Model[components.Page]
	ctrl  *syncctl.Controller

	zones      *zone.Manager
	ownsZones  bool
	zonePrefix string
	keys       KeyMap
	help       help.Model
	log        zerolog.Logger

	// Drawn indicator position, eased toward the model offset.
	indPos    float64
	indVel    float64
	indSpring harmonica.Spring

	ticking  bool
	dragSeq  int
	tabRow   string
	quitting bool
	width    int
	height   int
	bodyH    int
}

// Messages
type FrameMsg time.Time

type settleMsg struct {
	seq int
}

// New creates the widget for ts. ts must not be empty.
func New(ts []tabs.Tab[components.Page], opts Options) (*Model, error) {
	bar, err := tabbar.New(tabs.Labels(ts))
	if err != nil {
		return nil, err
	}
	pg, err := pager.New(tabs.Contents(ts), opts.Spring)
	if err != nil {
		return nil, err
	}
	ctrl, err := syncctl.New(bar, pg,
		syncctl.WithAnimatedSelect(opts.AnimateSelect),
		syncctl.WithLogger(opts.SyncLogger),
	)
	if err != nil {
		return nil, err
	}

	zones := opts.Zones
	if zones == nil {
		zones = zone.New()
	}
	fps := opts.Spring.FPS
	if fps <= 0 {
		fps = 60
	}

	m := &Model{
		opts:       opts,
		bar:        bar,
		pager:      pg,
		ctrl:       ctrl,
		zones:      zones,
		zonePrefix: zones.NewPrefix(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		log:        opts.Logger,
		ownsZones:  opts.Zones == nil,
		indSpring:  harmonica.NewSpring(harmonica.FPS(fps), indicatorFrequency, 1.0),
		width:      80,
		height:     24,
	}

	bar.OnActiveChange(func(prev, next int) {
		m.tabRow = ""
		m.log.Debug().Int("from", prev).Int("to", next).Msg("active tab changed")
	})
	bar.OnLayout(func() { m.tabRow = "" })
	pg.OnScrolled(m.observeScroll)

	m.layout()
	return m, nil
}

// SetTabs replaces every tab at once.
func (m *Model) SetTabs(ts []tabs.Tab[components.Page]) error {
	if len(ts) == 0 {
		return tabs.ErrEmptyPages
	}
	if err := m.bar.SetLabels(tabs.Labels(ts)); err != nil {
		return err
	}
	if err := m.pager.SetPages(tabs.Contents(ts)); err != nil {
		return err
	}
	if err := m.ctrl.Reset(); err != nil {
		return err
	}
	if err := m.ctrl.HandleScrolled(m.pager.Scroll()); err != nil {
		return err
	}
	m.indPos, m.indVel = m.bar.Indicator().Offset(), 0
	m.tabRow = ""
	m.layout()
	return nil
}

// Close releases the hit-zone manager if New created it.
func (m *Model) Close() {
	if m.ownsZones {
		m.zones.Close()
		m.ownsZones = false
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Commands
func (m *Model) frameCmd() tea.Cmd {
	return tea.Tick(m.opts.FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

func (m *Model) settleCmd() tea.Cmd {
	seq := m.dragSeq
	return tea.Tick(m.opts.SettleDelay, func(time.Time) tea.Msg {
		return settleMsg{seq: seq}
	})
}

// animate starts the frame loop if something moves and no loop is running.
func (m *Model) animate() tea.Cmd {
	if m.ticking || !m.moving() {
		return nil
	}
	m.ticking = true
	return m.frameCmd()
}

func (m *Model) moving() bool {
	target := m.bar.Indicator().Offset()
	return m.pager.Animating() ||
		math.Abs(m.indPos-target) > indicatorEpsilon ||
		math.Abs(m.indVel) > indicatorEpsilon
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case FrameMsg:
		return m.handleFrameMsg()

	case settleMsg:
		return m.handleSettleMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tabRow = ""
		m.help.Width = msg.Width
		m.layout()
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.logSelect(m.bar.NextTab())
		return m, m.animate()

	case key.Matches(msg, m.keys.Prev):
		m.logSelect(m.bar.PrevTab())
		return m, m.animate()

	case key.Matches(msg, m.keys.Jump):
		i, _ := strconv.Atoi(msg.String())
		if i >= 1 && i <= m.bar.Count() {
			m.logSelect(m.bar.SelectTab(i - 1))
		}
		return m, m.animate()

	case key.Matches(msg, m.keys.DragLeft):
		return m, m.drag(-m.opts.DragStep)

	case key.Matches(msg, m.keys.DragRight):
		return m, m.drag(m.opts.DragStep)
	}

	return m, m.updateCurrentPage(msg)
}

func (m *Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Action == tea.MouseActionRelease:
		for i := 0; i < m.bar.Count(); i++ {
			if m.zones.Get(views.TabZoneID(m.zonePrefix, i)).InBounds(msg) {
				m.logSelect(m.bar.SelectTab(i))
				return m, m.animate()
			}
		}

	case msg.Action != tea.MouseActionPress:
		return m, nil

	case msg.Button == tea.MouseButtonWheelLeft,
		msg.Shift && msg.Button == tea.MouseButtonWheelUp:
		return m, m.drag(-m.opts.DragStep)

	case msg.Button == tea.MouseButtonWheelRight,
		msg.Shift && msg.Button == tea.MouseButtonWheelDown:
		return m, m.drag(m.opts.DragStep)

	case msg.Button == tea.MouseButtonWheelUp, msg.Button == tea.MouseButtonWheelDown:
		return m, m.updateCurrentPage(msg)
	}
	return m, nil
}

func (m *Model) handleFrameMsg() (tea.Model, tea.Cmd) {
	m.ticking = false
	m.pager.Step()

	target := m.bar.Indicator().Offset()
	if m.pager.Dragging() || m.pager.Animating() {
		// The pager is already moving continuously.
		m.indPos, m.indVel = target, 0
	} else {
		m.indPos, m.indVel = m.indSpring.Update(m.indPos, m.indVel, target)
		if math.Abs(m.indPos-target) < indicatorEpsilon && math.Abs(m.indVel) < indicatorEpsilon {
			m.indPos, m.indVel = target, 0
		}
	}
	return m, m.animate()
}

func (m *Model) handleSettleMsg(msg settleMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.dragSeq || !m.pager.Dragging() {
		return m, nil
	}
	m.pager.Release()
	m.log.Debug().Float64("from", m.pager.Scroll()).Float64("to", m.pager.Target()).Msg("drag released")
	return m, m.animate()
}

// logSelect logs a rejected tab selection.
func (m *Model) logSelect(err error) {
	if err != nil {
		m.log.Warn().Err(err).Msg("tab selection rejected")
	}
}

func (m *Model) drag(delta float64) tea.Cmd {
	if err := m.pager.Drag(delta); err != nil {
		m.log.Warn().Err(err).Msg("drag rejected")
		return nil
	}
	m.indPos, m.indVel = m.bar.Indicator().Offset(), 0
	m.dragSeq++
	return m.settleCmd()
}

func (m *Model) updateCurrentPage(msg tea.Msg) tea.Cmd {
	p, err := m.pager.Page(m.pager.Current())
	if err != nil {
		return nil
	}
	return p.Update(msg)
}

func (m *Model) observeScroll(offset float64) {
	for _, p := range m.pager.Pages() {
		if o, ok := p.(components.ScrollObserver); ok {
			o.ObserveScroll(offset)
		}
	}
}

// layout sizes every page to the space left under the tab bar.
func (m *Model) layout() {
	barH := 1 + m.opts.Style.IndicatorRows()
	footH := lipgloss.Height(m.footer())
	m.bodyH = m.height - barH - footH
	if m.bodyH < 1 {
		m.bodyH = 1
	}
	for _, p := range m.pager.Pages() {
		p.SetSize(m.width, m.bodyH)
	}
}

func (m *Model) footer() string {
	return styles.FooterStyle.Render(m.help.View(m.keys))
}

func (m *Model) props() views.ViewProps {
	return views.ViewProps{
		Width:           m.width,
		Height:          m.bodyH,
		Labels:          m.bar.Labels(),
		Active:          m.bar.Active(),
		IndicatorOffset: m.indPos,
		Style:           m.opts.Style,
		ZonePrefix:      m.zonePrefix,
		Mark:            m.zones.Mark,
		Scroll:          m.pager.Scroll(),
		Pages: func(i int) (string, bool) {
			p, err := m.pager.Page(i)
			if err != nil {
				return "", false
			}
			return p.View(), true
		},
	}
}

// ActiveTab returns the active tab index.
func (m *Model) ActiveTab() int { return m.bar.Active() }

// Scroll returns the pager scroll position.
func (m *Model) Scroll() float64 { return m.pager.Scroll() }

// IndicatorOffset returns the indicator offset held by the tab bar.
func (m *Model) IndicatorOffset() float64 { return m.bar.Indicator().Offset() }

// DisplayedIndicator returns where the indicator is drawn this frame.
func (m *Model) DisplayedIndicator() float64 { return m.indPos }

// Phase returns the pager phase.
func (m *Model) Phase() pager.Phase { return m.pager.Phase() }

// Labels returns the tab labels.
func (m *Model) Labels() []string { return m.bar.Labels() }

// Err returns the last synchronization error.
func (m *Model) Err() error { return m.ctrl.Err() }

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	p := m.props()
	if m.tabRow == "" {
		m.tabRow = views.RenderTabRow(p)
	}
	bar := m.tabRow
	if ind := views.RenderIndicator(p); ind != "" {
		bar = lipgloss.JoinVertical(lipgloss.Left, bar, ind)
	}

	return m.zones.Scan(views.RenderFrame(bar, views.RenderPager(p), m.footer()))
}

// Start runs the widget full screen until the user quits.
func Start(ts []tabs.Tab[components.Page], opts Options) error {
	m, err := New(ts, opts)
	if err != nil {
		return err
	}
	defer m.Close()

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err = p.Run()
	return err
}
