package tui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/spectra/internal/filter"
	"github.com/papapumpkin/spectra/internal/periodic"
	"github.com/papapumpkin/spectra/internal/telemetry"
	"github.com/papapumpkin/spectra/internal/view"
)

// AppModel is the root BubbleTea model composing all sub-views. Every
// change to the selection rebuilds the page from the catalog.
type AppModel struct {
	Catalog   *periodic.Catalog
	Selection view.Selection
	Page      view.Page
	Err       error // last build failure, shown in place of the page
	TabBar    TabBar
	StatusBar StatusBar
	Content   DetailPanel
	Keys      KeyMap
	Width     int
	Height    int
	Messages  []string // recent reload/error messages, newest last

	// Explorer state.
	Cursor  int // index into choices
	choices []view.Choice

	// Century picker state.
	CenturyCursor int // index into filter.AllCenturies

	Telemetry *telemetry.Emitter
}

// NewAppModel creates a root model showing sel. A nil emitter disables
// telemetry.
func NewAppModel(cat *periodic.Catalog, sel view.Selection, em *telemetry.Emitter) AppModel {
	m := AppModel{
		Catalog:   cat,
		Selection: sel,
		Content:   NewDetailPanel(80, 10),
		Telemetry: em,
		choices:   view.ElementChoices(cat),
	}
	m.syncCursor()
	m.rebuild(false)
	return m
}

// Init implements tea.Model. The page is built eagerly, so there is nothing
// to start.
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update handles all messages.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Content.SetSize(m.contentWidth(), m.contentHeight())
		m.render(true)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case MsgConfigReloaded:
		m.Selection = msg.Selection
		m.StatusBar.Reloads++
		m.syncCursor()
		m.addMessage("config reloaded from %s", msg.Path)
		m.Telemetry.Record(telemetry.KindConfigReloaded, m.Selection.Section.Label(), m.Selection.Symbol, m.optionsData())
		m.rebuild(false)

	case MsgError:
		m.addMessage("error: %s", msg.Msg)

	default:
		m.Content.Update(msg)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	explorer := m.Selection.Section == view.SectionExplorer

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.NextSection):
		m.setSection(m.Selection.Section.Next())

	case key.Matches(msg, m.Keys.PrevSection):
		m.setSection(m.Selection.Section.Prev())

	case key.Matches(msg, m.Keys.JumpSection):
		if n, err := strconv.Atoi(msg.String()); err == nil {
			if s, ok := view.SectionFromNumber(n); ok {
				m.setSection(s)
			}
		}

	case key.Matches(msg, m.Keys.ToggleSpectra):
		m.Selection.Options.ShowSpectra = !m.Selection.Options.ShowSpectra
		m.optionsChanged()

	case key.Matches(msg, m.Keys.ToggleGrouping):
		m.Selection.Options.GroupByEpoch = !m.Selection.Options.GroupByEpoch
		m.optionsChanged()

	case key.Matches(msg, m.Keys.CenturyFocus) && !explorer:
		m.CenturyCursor = (m.CenturyCursor + 1) % len(filter.AllCenturies())

	case key.Matches(msg, m.Keys.CenturyToggle) && !explorer:
		m.toggleCentury(filter.AllCenturies()[m.CenturyCursor])
		m.optionsChanged()

	case key.Matches(msg, m.Keys.CenturyClear) && !explorer:
		if len(m.Selection.Options.Centuries) > 0 {
			m.Selection.Options.Centuries = nil
			m.optionsChanged()
		}

	case key.Matches(msg, m.Keys.Up) && explorer:
		m.moveCursor(-1)

	case key.Matches(msg, m.Keys.Down) && explorer:
		m.moveCursor(1)

	default:
		m.Content.Update(msg)
	}

	return m, nil
}

// setSection switches the visible section and scrolls to the top.
func (m *AppModel) setSection(s view.Section) {
	if s == m.Selection.Section {
		return
	}
	m.Selection.Section = s
	if s == view.SectionExplorer && m.Selection.Symbol == "" && len(m.choices) > 0 {
		m.Selection.Symbol = m.choices[m.Cursor].Symbol
	}
	m.rebuild(false)
}

// moveCursor steps the explorer selection by delta, clamped to the list.
func (m *AppModel) moveCursor(delta int) {
	if len(m.choices) == 0 {
		return
	}
	next := min(max(m.Cursor+delta, 0), len(m.choices)-1)
	if next == m.Cursor {
		return
	}
	m.Cursor = next
	m.Selection.Symbol = m.choices[next].Symbol
	m.rebuild(false)
}

// syncCursor points the explorer cursor at the selected symbol.
func (m *AppModel) syncCursor() {
	sym := view.SymbolFromChoice(m.Selection.Symbol)
	for i, c := range m.choices {
		if c.Symbol == sym {
			m.Cursor = i
			return
		}
	}
	m.Cursor = 0
}

// toggleCentury adds or removes c from the filter, keeping the set sorted.
// The slice is copied because the selection may share it with the config.
func (m *AppModel) toggleCentury(c filter.Century) {
	cur := m.Selection.Options.Centuries
	if i := slices.Index(cur, c); i >= 0 {
		m.Selection.Options.Centuries = slices.Delete(slices.Clone(cur), i, i+1)
		return
	}
	next := append(slices.Clone(cur), c)
	slices.Sort(next)
	m.Selection.Options.Centuries = next
}

// optionsChanged records the new options and re-renders in place.
func (m *AppModel) optionsChanged() {
	m.Telemetry.Record(telemetry.KindOptionsChanged, m.Selection.Section.Label(), m.Selection.Symbol, m.optionsData())
	m.rebuild(true)
}

func (m AppModel) optionsData() map[string]any {
	o := m.Selection.Options
	return map[string]any{
		"show_spectra":   o.ShowSpectra,
		"group_by_epoch": o.GroupByEpoch,
		"centuries":      filter.Labels(o.Centuries),
	}
}

// rebuild recomputes the page for the current selection and re-renders it.
func (m *AppModel) rebuild(keepOffset bool) {
	if m.Selection.Section == view.SectionExplorer {
		m.Keys = ExplorerKeyMap()
	} else {
		m.Keys = DefaultKeyMap()
	}

	page, err := view.BuildPage(m.Catalog, m.Selection)
	m.Err = err
	if err == nil {
		m.Page = page
		m.Telemetry.Record(telemetry.KindViewRender, page.Section, m.Selection.Symbol, map[string]any{"panels": len(page.Panels)})
	}
	m.render(keepOffset)
}

// render lays the current page out for the content width.
func (m *AppModel) render(keepOffset bool) {
	m.syncBars()
	if m.Err != nil {
		m.Content.SetContent(m.Selection.Section.Title(), styleError.Render(m.Err.Error()), false)
		return
	}
	m.Content.SetContent(m.Selection.Section.Title(), renderPage(m.Page, m.contentWidth()), keepOffset)
}

// syncBars copies the selection into the status and tab bars.
func (m *AppModel) syncBars() {
	m.TabBar.Active = m.Selection.Section
	m.TabBar.Width = m.Width
	m.StatusBar.Section = m.Selection.Section
	m.StatusBar.Symbol = view.SymbolFromChoice(m.Selection.Symbol)
	m.StatusBar.ShowSpectra = m.Selection.Options.ShowSpectra
	m.StatusBar.GroupByEpoch = m.Selection.Options.GroupByEpoch
	m.StatusBar.Centuries = m.Selection.Options.Centuries
	m.StatusBar.Width = m.Width
}

// maxMessages is how many recent messages the model keeps.
const maxMessages = 20

// addMessage appends a formatted message to the messages log, dropping the
// oldest beyond maxMessages.
func (m *AppModel) addMessage(format string, args ...any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	m.Messages = append(m.Messages, msg)
	if n := len(m.Messages) - maxMessages; n > 0 {
		m.Messages = slices.Delete(m.Messages, 0, n)
	}
}

// contentWidth is the usable width inside the content border.
func (m AppModel) contentWidth() int {
	if m.Width == 0 {
		return 80
	}
	return max(m.Width-4, 1)
}

// contentHeight is the viewport height left after the chrome, the content
// border, its title and both scroll indicators.
func (m AppModel) contentHeight() int {
	return max(m.Height-chromeHeight-5, 1)
}

// View renders the full TUI.
func (m AppModel) View() string {
	if m.Width == 0 {
		return "initializing..."
	}
	if m.Width < MinWidth || m.Height < MinHeight {
		return tooSmall(m.Width, m.Height)
	}

	sections := []string{
		m.StatusBar.View(),
		m.TabBar.View(),
		m.renderControls(),
		m.Content.View(),
		m.renderMessage(),
		m.buildFooter().View(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderControls renders the century picker, or the element selector on
// the explorer.
func (m AppModel) renderControls() string {
	if m.Selection.Section == view.SectionExplorer {
		return m.renderElementSelector()
	}
	active := m.Selection.Options.Centuries
	var parts []string
	for i, c := range filter.AllCenturies() {
		label := c.Label()
		style := styleCenturyOff
		if slices.Contains(active, c) {
			style = styleCenturyOn
		}
		if i == m.CenturyCursor {
			style = style.Inherit(styleCenturyFocus)
		}
		parts = append(parts, style.Render(label))
	}
	line := styleDim.Render("centuries ") + strings.Join(parts, " ")
	if len(active) == 0 {
		line += styleDim.Render("  (all)")
	}
	return lipgloss.NewStyle().MaxWidth(m.Width).PaddingLeft(2).Render(line)
}

// renderElementSelector renders the explorer's current choice with its
// neighbors.
func (m AppModel) renderElementSelector() string {
	if len(m.choices) == 0 {
		return ""
	}
	cur := m.choices[m.Cursor]
	var b strings.Builder
	if m.Cursor > 0 {
		b.WriteString(styleDim.Render("‹ " + m.choices[m.Cursor-1].Symbol + "  "))
	}
	b.WriteString(styleSelectionIndicator.Render(selectionIndicator))
	b.WriteString(stylePageTitle.Render(cur.Label))
	if m.Cursor < len(m.choices)-1 {
		b.WriteString(styleDim.Render("  " + m.choices[m.Cursor+1].Symbol + " ›"))
	}
	b.WriteString(styleDim.Render(fmt.Sprintf("  %d/%d", m.Cursor+1, len(m.choices))))
	return lipgloss.NewStyle().MaxWidth(m.Width).PaddingLeft(2).Render(b.String())
}

// renderMessage renders the most recent message, or an empty line.
func (m AppModel) renderMessage() string {
	if len(m.Messages) == 0 {
		return ""
	}
	last := m.Messages[len(m.Messages)-1]
	style := styleDim
	if strings.HasPrefix(last, "error:") {
		style = styleError
	}
	return style.Render(TruncateWithEllipsis("  "+last, m.Width))
}

// buildFooter creates the footer with the bindings for the current section.
func (m AppModel) buildFooter() Footer {
	f := Footer{Width: m.Width}
	if m.Selection.Section == view.SectionExplorer {
		f.Bindings = ExplorerFooterBindings(m.Keys)
	} else {
		f.Bindings = SectionFooterBindings(m.Keys)
	}
	return f
}
