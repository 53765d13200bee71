package viz

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/twoslit/internal/config"
	"go.uber.org/zap"
)

// Model is the Bubble Tea program for the explorer. Every control change is
// applied to the AppState synchronously inside Update.
type Model struct {
	state     *AppState
	styles    Styles
	logger    *zap.Logger
	plotWidth int
	zoom      int
	showHelp  bool
}

func NewModel(state *AppState, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Model{
		state:     state,
		styles:    NewStyles(state.Theme),
		logger:    logger,
		plotWidth: defaultPlotWidth,
		zoom:      defaultZoom,
	}
}

func (m Model) State() *AppState { return m.state }

// HalfWidth is the displayed screen half-width in meters.
func (m Model) HalfWidth() float64 { return ZoomLevels[m.zoom] }

func (m Model) Init() tea.Cmd { return nil }

// Update routes keys to the application state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.plotWidth = msg.Width - panelWidth - gutter - 2
		if m.plotWidth < minPlotWidth {
			m.plotWidth = minPlotWidth
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab", "down", "j":
		m.state.FocusNext()
	case "shift+tab", "up", "k":
		m.state.FocusPrev()
	case "right", "l":
		m.adjust(1)
	case "left", "h":
		m.adjust(-1)
	case "L", "shift+right":
		m.adjust(coarseSteps)
	case "H", "shift+left":
		m.adjust(-coarseSteps)
	case "r":
		m.state.Reset()
		m.logger.Debug("parameters reset", m.fields()...)
	case "z":
		if m.zoom < len(ZoomLevels)-1 {
			m.zoom++
		}
	case "x":
		if m.zoom > 0 {
			m.zoom--
		}
	case "t":
		m.state.Theme = NextTheme(m.state.Theme)
		m.styles = NewStyles(m.state.Theme)
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m Model) adjust(n int) {
	m.state.Adjust(n)
	m.logger.Debug("pattern updated", m.fields()...)
}

func (m Model) fields() []zap.Field {
	p := m.state.Params()
	return []zap.Field{
		zap.Float64("slit_separation", p.SlitSeparation),
		zap.Float64("screen_distance", p.ScreenDistance),
		zap.Float64("wavelength", p.Wavelength),
		zap.Float64("bandwidth", p.Bandwidth),
		zap.Float64("fringe_spacing", m.state.Pattern.FringeSpacing),
		zap.Int("labels", len(m.state.Labels)),
	}
}

// View renders the fringe strip, the intensity curve and the parameter panel.
func (m Model) View() string {
	w := newWindow(m.HalfWidth(), m.plotWidth)
	st := m.styles

	var left strings.Builder
	left.WriteString(st.Title.Render("  INTERFERENCE FRINGES") + "\n")
	left.WriteString(renderStrip(m.state, st, w) + "\n")
	left.WriteString(renderLabels(m.state, st, w) + "\n\n")
	left.WriteString(st.Title.Render("  INTENSITY") + "\n")
	left.WriteString(renderCurve(m.state, st, w) + "\n")
	left.WriteString(renderLabels(m.state, st, w) + "\n")
	left.WriteString(renderAxis(st, w))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, left.String(), "  ", renderPanel(m.state, st))
	if m.showHelp {
		return helpText + "\n" + mainView
	}
	return mainView
}

// Run starts the explorer on the terminal's alternate screen.
func Run(cfg *config.Config, logger *zap.Logger) error {
	m := NewModel(NewAppState(cfg), logger)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
