package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"magicchat/config"
	appmodel "magicchat/model"
)

const (
	HeaderTitle      = "Chatbot de Josue Ivan"
	InputPlaceholder = "Escribe tu mensaje..."

	badgeThinking = "Pensando..."
	badgeOnline   = "Conectado"
	badgeOffline  = "Sin conexión"
)

// renderKey identifies a rendered bot message. Indices restart after a
// reset, so the generation is part of the key.
type renderKey struct {
	generation uint64
	index      int
}

type AppView struct {
	// Reference to core data model
	dataModel *appmodel.Model

	// UI Components
	viewport       viewport.Model
	input          textinput.Model
	loadingSpinner spinner.Model
	keys           keyMap

	// Window state
	width  int
	height int
	ready  bool

	// Markdown output for bot messages, filled asynchronously
	rendered    map[renderKey]string
	renderWidth int

	showHelp bool

	// Transient status bar notice (clipboard results)
	statusNotice    string
	statusNoticeSeq int
}

func NewAppView(cfg *config.Config, exchanger appmodel.Exchanger, version, license string) AppView {
	ti := textinput.New()
	ti.Placeholder = InputPlaceholder
	ti.Prompt = "> "
	ti.CharLimit = 0
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = ThinkingBadgeStyle

	var kb *config.KeyBindingsConfig
	if cfg != nil {
		kb = cfg.Keybindings
	}

	dataModel := appmodel.NewModel(cfg, exchanger, version, license)

	if config.DebugLog != nil {
		config.DebugLog.WithField("endpoint", exchanger.Endpoint()).Debug("[AppView] created")
	}

	return AppView{
		dataModel:      dataModel,
		viewport:       viewport.New(0, 0),
		input:          ti,
		loadingSpinner: s,
		keys:           newKeyMap(kb),
		rendered:       make(map[renderKey]string),
	}
}

func (a AppView) Init() tea.Cmd {
	// Markdown waits for the first WindowSizeMsg to know the width
	return tea.Batch(
		textinput.Blink,
		a.dataModel.PingEndpoint(),
	)
}

func (a AppView) View() string {
	if !a.ready {
		return "Cargando..."
	}

	if a.showHelp {
		return a.renderHelpModal(a.width, a.height)
	}

	parts := []string{
		a.renderHeader(),
		"",
		a.viewport.View(),
	}

	if banner := a.renderErrorBanner(); banner != "" {
		parts = append(parts, banner)
	}

	parts = append(parts, a.input.View(), a.renderStatusBar())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderHeader draws "title ......... badge" across the full width. The
// title is truncated first when the terminal is narrow.
func (a AppView) renderHeader() string {
	var badge string
	switch {
	case a.dataModel.Loading:
		badge = ThinkingBadgeStyle.Render(a.loadingSpinner.View() + " " + badgeThinking)
	case a.dataModel.EndpointReachable:
		badge = ConnectedBadgeStyle.Render("● " + badgeOnline)
	default:
		badge = OfflineBadgeStyle.Render("● " + badgeOffline)
	}

	badgeWidth := lipgloss.Width(badge)
	titleMax := a.width - badgeWidth - 1
	if titleMax < 0 {
		titleMax = 0
	}

	title := HeaderTitle
	if runewidth.StringWidth(title) > titleMax {
		title = runewidth.Truncate(title, titleMax, "…")
	}
	title = TitleStyle.Render(title)

	gap := a.width - lipgloss.Width(title) - badgeWidth
	if gap < 1 {
		gap = 1
	}

	return title + strings.Repeat(" ", gap) + badge
}

func (a AppView) renderErrorBanner() string {
	if a.dataModel.Err == "" {
		return ""
	}
	return ErrorBannerStyle.Width(a.width - 2).Render(a.dataModel.Err)
}

func (a AppView) renderStatusBar() string {
	if a.statusNotice != "" {
		return StatusStyle.Render(a.statusNotice)
	}

	descStyle := lipgloss.NewStyle().Foreground(successColor).Bold(true)
	var hints []string
	for _, b := range a.keys.statusBindings() {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s %s", h.Key, descStyle.Render(h.Desc)))
	}
	return StatusStyle.Render(strings.Join(hints, "  "))
}

// layout sizes the viewport to whatever the header, banner, input and
// status bar leave over.
func (a *AppView) layout() {
	// header (1) + spacer (1) + input (1) + status bar (1)
	chrome := 4
	if banner := a.renderErrorBanner(); banner != "" {
		chrome += lipgloss.Height(banner)
	}

	viewportHeight := a.height - chrome
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	a.viewport.Width = a.width
	a.viewport.Height = viewportHeight
	a.input.Width = a.width - lipgloss.Width(a.input.Prompt) - 1
}
