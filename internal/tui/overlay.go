package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/genchat/internal/config"
)

// overlayKind identifies which overlay is open, if any. Overlays are
// exclusive: opening one replaces the chat view until it closes.
type overlayKind int

const (
	overlayNone overlayKind = iota
	overlayPersona
	overlayTheme
	overlaySettings
)

// Settings form field indices
const (
	settingsFieldModel = iota
	settingsFieldKey
	settingsFieldRemember
	settingsFieldCount
)

// settingsForm holds the state of the settings overlay
type settingsForm struct {
	inputs   []textinput.Model
	focus    int
	remember bool
}

// newSettingsForm builds the settings form seeded from current state.
// The key input is masked; a blank key means "keep the current one".
func newSettingsForm(modelID string, remember bool) settingsForm {
	inputs := make([]textinput.Model, 2)

	inputs[settingsFieldModel] = textinput.New()
	inputs[settingsFieldModel].Placeholder = "model id..."
	inputs[settingsFieldModel].CharLimit = 100
	inputs[settingsFieldModel].Width = 40
	inputs[settingsFieldModel].SetValue(modelID)
	inputs[settingsFieldModel].Focus()

	inputs[settingsFieldKey] = textinput.New()
	inputs[settingsFieldKey].Placeholder = "API key (blank keeps current)..."
	inputs[settingsFieldKey].CharLimit = 200
	inputs[settingsFieldKey].Width = 40
	inputs[settingsFieldKey].EchoMode = textinput.EchoPassword
	inputs[settingsFieldKey].EchoCharacter = '•'

	return settingsForm{
		inputs:   inputs,
		remember: remember,
	}
}

// blur removes focus from the current field
func (f *settingsForm) blur() {
	if f.focus < len(f.inputs) {
		f.inputs[f.focus].Blur()
	}
}

// focusCurrent sets focus on the current field
func (f *settingsForm) focusCurrent() {
	if f.focus < len(f.inputs) {
		f.inputs[f.focus].Focus()
	}
}

// openOverlay switches the chat into an overlay, seeding cursors and form
// fields from current state.
func (m Model) openOverlay(kind overlayKind) (tea.Model, tea.Cmd) {
	m.overlay = kind
	m.menuCursor = 0

	switch kind {
	case overlayPersona:
		for i, p := range config.Personas() {
			if p.ID == m.session.Persona().ID {
				m.menuCursor = i
			}
		}
	case overlayTheme:
		for i, t := range AllThemes() {
			if t.Name == m.cfg.Theme {
				m.menuCursor = i
			}
		}
	case overlaySettings:
		m.settings = newSettingsForm(m.session.Client().Model(), m.cfg.RememberKey)
		return m, textinput.Blink
	}
	return m, nil
}

// updateOverlay handles updates while an overlay is open. Responses and
// reveal ticks keep progressing behind the overlay.
func (m Model) updateOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case responseMsg:
		m.loading = false
		m.startReveal(m.session.Len() - 1)
		m.updateViewport()
		m.viewport.GotoBottom()
		return m, revealTick(m.revealSeq)

	case errMsg:
		m.loading = false
		m.err = msg.err
		return m, nil

	case revealTickMsg:
		if msg.seq == m.revealSeq && m.revealIndex < len(m.revealText) {
			m.revealIndex++
			m.updateViewport()
			if m.revealIndex < len(m.revealText) {
				return m, revealTick(m.revealSeq)
			}
		}
		return m, nil

	case noticeClearMsg:
		m.notice = ""
		return m, nil

	case tea.KeyMsg:
		switch m.overlay {
		case overlayPersona, overlayTheme:
			return m.updateSelector(msg)
		case overlaySettings:
			return m.updateSettings(msg)
		}
	}

	return m, nil
}

// updateSelector handles the persona and theme list overlays
func (m Model) updateSelector(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(config.Personas())
	if m.overlay == overlayTheme {
		count = len(AllThemes())
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.overlay = overlayNone

	case "up", "k":
		m.menuCursor--
		if m.menuCursor < 0 {
			m.menuCursor = count - 1
		}

	case "down", "j":
		m.menuCursor++
		if m.menuCursor >= count {
			m.menuCursor = 0
		}

	case "enter":
		return m.applySelection()
	}

	return m, nil
}

// applySelection commits the highlighted persona or theme. Personas take
// effect for subsequent sends only and are never persisted; themes apply
// immediately and are saved for the next run.
func (m Model) applySelection() (tea.Model, tea.Cmd) {
	switch m.overlay {
	case overlayPersona:
		p := config.Personas()[m.menuCursor]
		m.session.SetPersona(p)
		m.notice = fmt.Sprintf("persona: %s", p.Name)

	case overlayTheme:
		t := AllThemes()[m.menuCursor]
		m.cfg.Theme = t.Name
		m.styles = NewStyles(t.Name)
		m.restyleComponents()
		m.updateViewport()
		if err := config.SetTheme(t.Name); err != nil {
			m.notice = fmt.Sprintf("theme applied; save failed: %v", err)
		} else {
			m.notice = fmt.Sprintf("theme: %s", t.Name)
		}
	}

	m.overlay = overlayNone
	return m, clearNotice()
}

// restyleComponents re-applies theme colors to the stateful widgets
// after a theme change.
func (m *Model) restyleComponents() {
	m.textarea.FocusedStyle.Base = lipgloss.NewStyle().Foreground(m.styles.Theme.Text)
	m.textarea.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(m.styles.Theme.TextDim)
	m.textarea.BlurredStyle = m.textarea.FocusedStyle
	m.spinner.Style = m.styles.Loading
}

// updateSettings handles the settings overlay form
func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.overlay = overlayNone
		return m, nil

	case "tab", "down":
		m.settings.blur()
		m.settings.focus++
		if m.settings.focus >= settingsFieldCount {
			m.settings.focus = 0
		}
		m.settings.focusCurrent()
		return m, textinput.Blink

	case "shift+tab", "up":
		m.settings.blur()
		m.settings.focus--
		if m.settings.focus < 0 {
			m.settings.focus = settingsFieldCount - 1
		}
		m.settings.focusCurrent()
		return m, textinput.Blink

	case " ":
		if m.settings.focus == settingsFieldRemember {
			m.settings.remember = !m.settings.remember
			return m, nil
		}

	case "enter":
		return m.applySettings()
	}

	// Route remaining keys to the focused input
	if m.settings.focus < len(m.settings.inputs) {
		var cmd tea.Cmd
		m.settings.inputs[m.settings.focus], cmd = m.settings.inputs[m.settings.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

// applySettings commits the settings form: the model id goes to the
// client and config, the API key through the remember contract. A blank
// key with remember off erases any stored key; a blank key with remember
// on leaves the stored key untouched.
func (m Model) applySettings() (tea.Model, tea.Cmd) {
	modelID := strings.TrimSpace(m.settings.inputs[settingsFieldModel].Value())
	key := strings.TrimSpace(m.settings.inputs[settingsFieldKey].Value())
	remember := m.settings.remember

	var saveErr error

	if modelID != "" && modelID != m.session.Client().Model() {
		m.session.Client().SetModel(modelID)
		m.cfg.Model = modelID
		saveErr = config.SetModel(modelID)
	}

	if remember != m.cfg.RememberKey {
		m.cfg.RememberKey = remember
		if err := config.SetRememberKey(remember); err != nil && saveErr == nil {
			saveErr = err
		}
	}

	switch {
	case key != "":
		m.session.Client().SetAPIKey(key)
		if err := config.StoreAPIKey(key, remember); err != nil && saveErr == nil {
			saveErr = err
		}
	case !remember:
		if err := config.ClearAPIKey(); err != nil && saveErr == nil {
			saveErr = err
		}
	}

	m.overlay = overlayNone
	if saveErr != nil {
		m.err = saveErr
		return m, nil
	}
	m.notice = "settings saved"
	return m, clearNotice()
}

// renderOverlay renders the active overlay in place of the chat view
func (m Model) renderOverlay() string {
	width := m.width - 8
	if width < 40 {
		width = 40
	}
	if width > 80 {
		width = 80
	}

	var body string
	switch m.overlay {
	case overlayPersona:
		body = m.renderPersonaSelect()
	case overlayTheme:
		body = m.renderThemeSelect()
	case overlaySettings:
		body = m.renderSettings()
	}

	return m.styles.OverlayBox.Width(width).Render(body)
}

// renderPersonaSelect renders the persona list overlay
func (m Model) renderPersonaSelect() string {
	var content strings.Builder

	content.WriteString(m.styles.OverlayTitle.Render("Select a persona"))
	content.WriteString("\n\n")

	current := m.session.Persona()
	for i, p := range config.Personas() {
		cursor := "  "
		nameStyle := m.styles.MenuItem
		if i == m.menuCursor {
			cursor = m.styles.MenuCursor.Render("▸ ")
			nameStyle = m.styles.MenuSelected
		}

		marker := ""
		if p.ID == current.ID {
			marker = m.styles.Enabled.Render(" (current)")
		}

		content.WriteString(cursor + nameStyle.Render(p.Name) + marker)
		content.WriteString("\n")
		content.WriteString(m.styles.Hint.Render("    " + truncate(p.Preamble, 64)))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(m.overlayStatusBar())
	return content.String()
}

// renderThemeSelect renders the theme list overlay
func (m Model) renderThemeSelect() string {
	var content strings.Builder

	content.WriteString(m.styles.OverlayTitle.Render("Select a theme"))
	content.WriteString("\n\n")

	for i, t := range AllThemes() {
		cursor := "  "
		nameStyle := m.styles.MenuItem
		if i == m.menuCursor {
			cursor = m.styles.MenuCursor.Render("▸ ")
			nameStyle = m.styles.MenuSelected
		}

		marker := ""
		if t.Name == m.cfg.Theme {
			marker = m.styles.Enabled.Render(" (current)")
		}

		line := fmt.Sprintf("%s%s - %s", cursor, nameStyle.Render(t.Name), m.styles.Value.Render(t.Description))
		content.WriteString(line + marker)
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(m.overlayStatusBar())
	return content.String()
}

// renderSettings renders the settings form overlay
func (m Model) renderSettings() string {
	var content strings.Builder

	content.WriteString(m.styles.OverlayTitle.Render("Settings"))
	content.WriteString("\n\n")

	labels := [settingsFieldCount]string{"Model", "API key", "Remember key"}

	for i, label := range labels {
		cursor := "  "
		labelStyle := m.styles.MenuItem
		if m.settings.focus == i {
			cursor = m.styles.MenuCursor.Render("▸ ")
			labelStyle = m.styles.MenuSelected
		}
		content.WriteString(cursor + labelStyle.Render(label))
		content.WriteString("\n")

		switch i {
		case settingsFieldModel, settingsFieldKey:
			content.WriteString("    " + m.settings.inputs[i].View())
		case settingsFieldRemember:
			state := m.styles.Disabled.Render("off (key kept for this run only)")
			if m.settings.remember {
				state = m.styles.Enabled.Render("on (key stored on disk)")
			}
			content.WriteString("    " + state)
		}
		content.WriteString("\n")
	}

	content.WriteString("\n")
	switch config.APIKeySource() {
	case config.KeySourceEnv:
		content.WriteString(m.styles.Hint.Render("Key loaded from " + config.EnvAPIKey + " (env wins over stored keys)."))
	case config.KeySourceFile:
		content.WriteString(m.styles.Hint.Render("Key loaded from disk."))
	default:
		if m.session.Client().HasAPIKey() {
			content.WriteString(m.styles.Hint.Render("Key set for this run only."))
		} else {
			content.WriteString(m.styles.Hint.Render("No API key loaded."))
		}
	}

	content.WriteString("\n\n")
	content.WriteString(m.overlayStatusBar())
	return content.String()
}

// overlayStatusBar renders the shortcut hints shared by the overlays
func (m Model) overlayStatusBar() string {
	var shortcuts []string
	if m.overlay == overlaySettings {
		shortcuts = []string{
			m.styles.StatusKey.Render("Tab") + m.styles.StatusDesc.Render(" Next field"),
			m.styles.StatusKey.Render("Space") + m.styles.StatusDesc.Render(" Toggle"),
			m.styles.StatusKey.Render("Enter") + m.styles.StatusDesc.Render(" Save"),
			m.styles.StatusKey.Render("Esc") + m.styles.StatusDesc.Render(" Cancel"),
		}
	} else {
		shortcuts = []string{
			m.styles.StatusKey.Render("↑↓") + m.styles.StatusDesc.Render(" Navigate"),
			m.styles.StatusKey.Render("Enter") + m.styles.StatusDesc.Render(" Select"),
			m.styles.StatusKey.Render("Esc") + m.styles.StatusDesc.Render(" Cancel"),
		}
	}
	return strings.Join(shortcuts, "  │  ")
}

// truncate shortens s to at most max runes, appending an ellipsis.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
