package tui

import (
	"context"
	"image"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"

	"pokeview/internal/config"
	"pokeview/internal/pokeapi"
	"pokeview/internal/viewer"
	"pokeview/ui/tui/components"
	"pokeview/ui/tui/state"
	"pokeview/ui/tui/styles"
	"pokeview/ui/tui/views"
)

const (
	defaultBarWidth = 30
	spriteCols      = 24
	spriteRows      = 10
	chartHeight     = 12
)

// MainModel is the Bubble Tea Model acting as the Controller
type MainModel struct {
	ctx          context.Context
	provider     pokeapi.CreatureProvider
	sprites      pokeapi.SpriteLoader // nil disables sprite drawing
	config       config.Config
	sugar        *zap.SugaredLogger
	controller   *viewer.Controller
	sprite       image.Image
	spriteURL    string
	spinner      spinner.Model
	entry        textinput.Model
	entryFocused bool
	spriteWidget *components.SpriteWidget
	chart        *components.StatChart
	keys         keyMap
	help         help.Model
	focus        state.Control
	animCursor   float64
	velocity     float64 // Physics velocity
	spring       harmonica.Spring
	quitting     bool
	width        int
	height       int
}

// Messages
type AnimateMsg time.Time

// CreatureLoadedMsg carries the settled result of one creature fetch.
type CreatureLoadedMsg struct {
	Request  viewer.Request
	Creature *pokeapi.Creature
	Err      error
}

// SpriteLoadedMsg carries a sprite download; Image is nil on any failure.
type SpriteLoadedMsg struct {
	URL   string
	Image image.Image
	Err   error
}

func InitialModel(provider pokeapi.CreatureProvider, sprites pokeapi.SpriteLoader, cfg config.Config, sugar *zap.SugaredLogger) MainModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Accent(false))

	ti := textinput.New()
	ti.Prompt = "# "
	ti.Placeholder = "id"
	ti.CharLimit = 7
	ti.Width = 7

	// Fast response, no overshoot
	spring := harmonica.NewSpring(harmonica.FPS(60), 12.0, 0.9)

	if !cfg.Sprites.Enabled {
		sprites = nil
	}

	return MainModel{
		ctx:      context.Background(),
		provider: provider,
		sprites:  sprites,
		config:   cfg,
		sugar:    sugar,
		controller: viewer.New(
			viewer.WithStart(cfg.Viewer.Start),
			viewer.WithRandomMax(cfg.Viewer.RandomMax),
		),
		spinner:      s,
		entry:        ti,
		spriteWidget: components.NewSpriteWidget(spriteCols, spriteRows),
		chart:        components.NewStatChart(40, chartHeight),
		keys:         defaultKeyMap(),
		help:         help.New(),
		spring:       spring,
		focus:        state.ControlNext,
		animCursor:   float64(state.ControlNext),
	}
}

func (m *MainModel) Init() tea.Cmd {
	zone.NewGlobal()
	return tea.Batch(
		m.spinner.Tick,
		animateCmd(),
		m.fetch(m.controller.Start()),
	)
}

// Commands
func animateCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*16, func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}

func fetchCreatureCmd(ctx context.Context, p pokeapi.CreatureProvider, req viewer.Request) tea.Cmd {
	return func() tea.Msg {
		creature, err := p.GetCreature(ctx, req.ID)
		return CreatureLoadedMsg{Request: req, Creature: creature, Err: err}
	}
}

func loadSpriteCmd(ctx context.Context, l pokeapi.SpriteLoader, url string) tea.Cmd {
	return func() tea.Msg {
		img, err := l.LoadSprite(ctx, url)
		return SpriteLoadedMsg{URL: url, Image: img, Err: err}
	}
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case AnimateMsg:
		return m.handleAnimateMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case CreatureLoadedMsg:
		return m.handleCreatureLoadedMsg(msg)

	case SpriteLoadedMsg:
		return m.handleSpriteLoadedMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.entryFocused {
		return m.handleEntryKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Previous):
		return m.activate(state.ControlPrevious)
	case key.Matches(msg, m.keys.Next):
		return m.activate(state.ControlNext)
	case key.Matches(msg, m.keys.Random):
		return m.activate(state.ControlRandom)
	case key.Matches(msg, m.keys.Shiny):
		return m.activate(state.ControlShiny)
	case key.Matches(msg, m.keys.Entry):
		return m.activate(state.ControlEntry)
	case key.Matches(msg, m.keys.FocusNext):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.FocusPrev):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Activate):
		return m.activate(m.focus)
	}
	return m, nil
}

func (m *MainModel) handleEntryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		text := m.entry.Value()
		m.blurEntry()
		req, ok := m.controller.SetSelectionText(text)
		if !ok {
			m.sugar.Debugf("Ignoring direct entry %q", text)
			return m, nil
		}
		return m, m.selectionChanged(req)
	case key.Matches(msg, m.keys.Cancel):
		m.blurEntry()
		return m, nil
	}

	var cmd tea.Cmd
	m.entry, cmd = m.entry.Update(msg)
	return m, cmd
}

// activate runs a control as if its button was pressed. Disabled controls do nothing.
func (m *MainModel) activate(c state.Control) (tea.Model, tea.Cmd) {
	m.focus = c
	if !m.appState().Enabled(c) {
		return m, nil
	}

	var (
		req viewer.Request
		ok  bool
	)
	switch c {
	case state.ControlPrevious:
		req, ok = m.controller.Previous()
	case state.ControlNext:
		req, ok = m.controller.Next()
	case state.ControlRandom:
		req, ok = m.controller.Random()
	case state.ControlShiny:
		m.controller.ToggleShiny()
		m.spinner.Style = m.spinner.Style.Foreground(styles.Accent(m.controller.Shiny()))
		return m, m.refreshSprite()
	case state.ControlEntry:
		return m, m.focusEntry()
	}
	if !ok {
		return m, nil
	}
	return m, m.selectionChanged(req)
}

func (m *MainModel) selectionChanged(req viewer.Request) tea.Cmd {
	m.sprite = nil
	m.spriteURL = ""
	return m.fetch(req)
}

func (m *MainModel) fetch(req viewer.Request) tea.Cmd {
	m.sugar.Infof("Selection %d (generation %d)", req.ID, req.Generation)
	return fetchCreatureCmd(m.ctx, m.provider, req)
}

func (m *MainModel) focusEntry() tea.Cmd {
	m.entryFocused = true
	m.entry.SetValue(strconv.Itoa(m.controller.Selection()))
	m.entry.CursorEnd()
	return m.entry.Focus()
}

func (m *MainModel) blurEntry() {
	m.entryFocused = false
	m.entry.Blur()
	m.entry.Reset()
}

func (m *MainModel) moveFocus(delta int) {
	n := len(state.Controls)
	m.focus = state.Control((int(m.focus) + delta + n) % n)
}

func (m *MainModel) handleAnimateMsg(msg AnimateMsg) (tea.Model, tea.Cmd) {
	var v float64 = m.velocity
	m.animCursor, v = m.spring.Update(m.animCursor, v, float64(m.focus))
	m.velocity = v
	return m, animateCmd()
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	// The chart takes whatever the card leaves on wide terminals
	if chartW := msg.Width - m.barWidth() - 12; chartW > 20 {
		m.chart.Resize(min(chartW, 48), chartHeight)
	}
	return m, nil
}

func (m *MainModel) handleCreatureLoadedMsg(msg CreatureLoadedMsg) (tea.Model, tea.Cmd) {
	if !m.controller.Resolve(msg.Request, msg.Creature, msg.Err) {
		m.sugar.Debugf("Dropping stale response for %d (generation %d)", msg.Request.ID, msg.Request.Generation)
		return m, nil
	}
	if out := m.controller.Outcome(); out.Status != viewer.StatusSuccess {
		m.sugar.Infof("Selection %d failed: %s (%v)", msg.Request.ID, out.Message, msg.Err)
		return m, nil
	}
	m.sugar.Infof("Selection %d resolved to %s", msg.Request.ID, msg.Creature.Name)
	return m, m.refreshSprite()
}

func (m *MainModel) handleSpriteLoadedMsg(msg SpriteLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.URL != m.spriteURL {
		return m, nil
	}
	if msg.Err != nil {
		m.sugar.Debugf("Sprite unavailable %s: %s", msg.URL, msg.Err)
	}
	m.sprite = msg.Image
	return m, nil
}

// refreshSprite starts loading the sprite for the current selection and mode.
// The sprite URL follows the selection, not the returned record id.
func (m *MainModel) refreshSprite() tea.Cmd {
	m.sprite = nil
	m.spriteURL = ""
	if m.sprites == nil || m.controller.Outcome().Status != viewer.StatusSuccess {
		return nil
	}
	m.spriteURL = m.currentSpriteURL()
	return loadSpriteCmd(m.ctx, m.sprites, m.spriteURL)
}

func (m *MainModel) currentSpriteURL() string {
	tpl := m.config.Sprites.Normal
	if m.controller.Shiny() {
		tpl = m.config.Sprites.Shiny
	}
	return pokeapi.SpriteURL(tpl, m.controller.Selection())
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease {
		return m, nil
	}
	for _, c := range state.Controls {
		if zone.Get(c.ZoneID()).InBounds(msg) {
			if m.entryFocused && c != state.ControlEntry {
				m.blurEntry()
			}
			return m.activate(c)
		}
	}
	return m, nil
}

func (m *MainModel) appState() state.AppState {
	return state.AppState{
		Snapshot:  m.controller.Snapshot(),
		Sprite:    m.sprite,
		SpriteURL: m.spriteURL,
	}
}

func (m *MainModel) barWidth() int {
	if m.width > 0 && m.width < defaultBarWidth+14 {
		return max(10, m.width-14)
	}
	return defaultBarWidth
}

func (m *MainModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	s := m.appState()
	props := views.ViewProps{
		Width:        m.width,
		Height:       m.height,
		FocusCursor:  m.focus,
		AnimCursor:   m.animCursor,
		SpinnerView:  m.spinner.View(),
		EntryView:    m.entry.View(),
		EntryFocused: m.entryFocused,
		HelpView:     m.help.View(m.keys),
		BarWidth:     m.barWidth(),
	}

	if rec := s.Outcome.Record; rec != nil {
		if m.sprites != nil {
			m.spriteWidget.SetImage(s.Sprite, rec.Name)
			props.SpriteView = m.spriteWidget.View()
		}
		m.chart.SetStats(rec.Stats, s.Shiny)
		props.ChartView = m.chart.View()
	}

	return views.RenderViewer(s, props)
}

// Start runs the viewer until the user quits.
func Start(provider pokeapi.CreatureProvider, sprites pokeapi.SpriteLoader, cfg config.Config, sugar *zap.SugaredLogger) error {
	m := InitialModel(provider, sprites, cfg, sugar)
	p := tea.NewProgram(
		&m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
