package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/genchat/internal/api"
	"github.com/diogo/genchat/internal/config"
	apierrors "github.com/diogo/genchat/internal/errors"
	"github.com/diogo/genchat/internal/render"
)

// revealInterval is the delay between typewriter ticks while a model
// message is being revealed.
const revealInterval = 18 * time.Millisecond

// Canned prompts offered while the transcript holds only the greeting.
var suggestions = []string{
	"Explain what an HTTP ETag does",
	"Write a limerick about slow CI pipelines",
	"Suggest three names for a caching library",
}

// Message types for the TUI
type (
	responseMsg struct {
		reply string
	}
	errMsg struct {
		err error
	}
	// revealTickMsg advances the typewriter reveal. seq ties the tick to
	// one specific reveal so ticks from a superseded reveal are discarded.
	revealTickMsg struct {
		seq int
	}
	noticeClearMsg struct{}
)

// Model represents the chat TUI state
type Model struct {
	session *api.ChatSession
	cfg     config.Config
	styles  Styles

	// UI components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	// State
	loading bool
	ready   bool
	err     error
	notice  string

	// Typewriter reveal state. The reveal is cosmetic: the transcript
	// already holds the full message, only the view trails behind.
	revealSeq   int
	revealMsg   int
	revealText  []rune
	revealIndex int

	// Overlay state
	overlay    overlayKind
	menuCursor int
	settings   settingsForm

	// Dimensions
	width  int
	height int
}

// NewChatModel creates a new chat TUI model. The seeded greeting is
// revealed with the same typewriter effect used for replies.
func NewChatModel(session *api.ChatSession, cfg config.Config) Model {
	styles := NewStyles(cfg.Theme)

	// Create textarea for input
	ta := textarea.New()
	ta.Placeholder = "Type your message here..."
	ta.CharLimit = 4000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.Focus()

	// Style the textarea
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(styles.Theme.Text)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(styles.Theme.TextDim)
	ta.BlurredStyle = ta.FocusedStyle

	// Create spinner
	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = styles.Loading

	m := Model{
		session:  session,
		cfg:      cfg,
		styles:   styles,
		textarea: ta,
		spinner:  s,
	}
	m.startReveal(session.Len() - 1)
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
		revealTick(m.revealSeq),
	)
}

// revealTick schedules the next typewriter tick for the given reveal.
func revealTick(seq int) tea.Cmd {
	return tea.Tick(revealInterval, func(time.Time) tea.Msg {
		return revealTickMsg{seq: seq}
	})
}

// startReveal arms the typewriter for the transcript message at index and
// invalidates any reveal still in flight.
func (m *Model) startReveal(index int) {
	msgs := m.session.Messages()
	if index < 0 || index >= len(msgs) {
		return
	}
	m.revealSeq++
	m.revealMsg = index
	m.revealText = []rune(msgs[index].Content)
	m.revealIndex = 0
}

// clearNotice clears the transient notice after a short delay.
func clearNotice() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return noticeClearMsg{}
	})
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	if m.overlay != overlayNone {
		return m.updateOverlay(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if !m.loading {
				return m, tea.Quit
			}

		case "ctrl+p":
			return m.openOverlay(overlayPersona)

		case "ctrl+t":
			return m.openOverlay(overlayTheme)

		case "ctrl+s":
			return m.openOverlay(overlaySettings)

		case "alt+1", "alt+2", "alt+3":
			if m.suggestionsVisible() {
				idx := int(msg.String()[4] - '1')
				return m.submit(suggestions[idx], false)
			}
			return m, nil

		case "enter":
			input := strings.TrimSpace(m.textarea.Value())
			switch input {
			case "exit", "quit", "/exit", "/quit":
				return m, tea.Quit
			case "/persona":
				m.textarea.Reset()
				return m.openOverlay(overlayPersona)
			case "/theme":
				m.textarea.Reset()
				return m.openOverlay(overlayTheme)
			case "/settings":
				m.textarea.Reset()
				return m.openOverlay(overlaySettings)
			case "/copy":
				m.textarea.Reset()
				return m.copyLastReply()
			}
			return m.submit(input, true)
		}

	case responseMsg:
		m.loading = false
		m.startReveal(m.session.Len() - 1)
		m.updateViewport()
		m.viewport.GotoBottom()
		cmds = append(cmds, revealTick(m.revealSeq))

	case errMsg:
		// The optimistic user message stays; nothing is rolled back.
		m.loading = false
		m.err = msg.err

	case revealTickMsg:
		if msg.seq == m.revealSeq && m.revealIndex < len(m.revealText) {
			m.revealIndex++
			m.updateViewport()
			m.viewport.GotoBottom()
			if m.revealIndex < len(m.revealText) {
				cmds = append(cmds, revealTick(m.revealSeq))
			}
		}

	case noticeClearMsg:
		m.notice = ""

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	// Update child components - only pass KeyMsg to textarea to prevent escape sequence leaks
	if !m.loading {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.textarea, cmd = m.textarea.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit runs the dispatch preconditions in order: blank input is a
// silent no-op, an in-flight request blocks the send, and a missing API
// key surfaces an error without touching the transcript. Only then is the
// composed message appended and the request fired. clearInput resets the
// textarea on dispatch; suggestion sends leave any typed draft alone.
func (m Model) submit(text string, clearInput bool) (tea.Model, tea.Cmd) {
	text = strings.TrimSpace(text)
	if text == "" {
		return m, nil
	}
	if m.loading {
		return m, nil
	}
	if !m.session.Client().HasAPIKey() {
		m.err = apierrors.ErrMissingAPIKey
		m.notice = "press ctrl+s to set your API key"
		return m, nil
	}

	m.session.AppendUser(text)
	m.err = nil
	m.notice = ""
	m.loading = true
	if clearInput {
		m.textarea.Reset()
	}
	m.updateViewport()
	m.viewport.GotoBottom()

	return m, tea.Batch(m.generate(), m.spinner.Tick)
}

// generate dispatches the transcript to the API off the UI goroutine.
func (m Model) generate() tea.Cmd {
	session := m.session
	return func() tea.Msg {
		reply, err := session.Generate(context.Background())
		if err != nil {
			return errMsg{err: err}
		}
		return responseMsg{reply: reply}
	}
}

// copyLastReply copies the newest model reply to the system clipboard.
func (m Model) copyLastReply() (tea.Model, tea.Cmd) {
	reply, ok := m.session.LastReply()
	if !ok {
		m.notice = "nothing to copy"
		return m, clearNotice()
	}
	if err := clipboard.WriteAll(reply.Content); err != nil {
		m.notice = fmt.Sprintf("copy failed: %v", err)
	} else {
		m.notice = "reply copied to clipboard"
	}
	return m, clearNotice()
}

// suggestionsVisible reports whether the canned prompt chips should be
// shown. They disappear as soon as the transcript grows past the greeting.
func (m Model) suggestionsVisible() bool {
	return m.session.Len() == 1 && !m.loading
}

// resize recomputes component dimensions from the window size.
func (m *Model) resize() {
	headerHeight := 4 // Header panel with border
	inputHeight := 6  // Input panel with border
	statusHeight := 1 // Status bar
	padding := 2      // Extra spacing

	vpHeight := m.height - headerHeight - inputHeight - statusHeight - padding
	if vpHeight < 5 {
		vpHeight = 5
	}

	contentWidth := m.width - 4

	// Initialize viewport on first size message
	if !m.ready {
		m.viewport = viewport.New(contentWidth, vpHeight)
		m.textarea.SetWidth(contentWidth - 4)
		m.ready = true
	} else {
		m.viewport.Width = contentWidth
		m.viewport.Height = vpHeight
		m.textarea.SetWidth(contentWidth - 4)
	}
	m.updateViewport()
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return m.styles.Loading.Render("  Initializing...")
	}

	if m.overlay != overlayNone {
		return m.renderOverlay()
	}

	var sections []string
	contentWidth := m.width - 4

	// Header: title, model id, persona, theme
	headerParts := []string{
		m.styles.Title.Render("✦ genchat"),
		m.styles.Hint.Render("  •  "),
		m.styles.Subtitle.Render(m.session.Client().Model()),
		m.styles.Hint.Render("  •  "),
		m.styles.Subtitle.Render(m.session.Persona().Name),
		m.styles.Hint.Render("  •  "),
		m.styles.Subtitle.Render(m.cfg.Theme),
	}
	headerContent := lipgloss.JoinHorizontal(lipgloss.Center, headerParts...)
	header := m.styles.Header.Width(contentWidth).Render(headerContent)
	sections = append(sections, header)

	// Error banner under the header, message shown verbatim
	if m.err != nil {
		sections = append(sections, m.styles.ErrorBanner.Render("⚠ "+m.err.Error()))
	}

	// Messages area
	messagesPanel := m.styles.MessagesArea.
		Width(contentWidth).
		Height(m.viewport.Height).
		Render(m.viewport.View())
	sections = append(sections, messagesPanel)

	// Suggestion chips on a fresh transcript
	if m.suggestionsVisible() {
		sections = append(sections, m.renderSuggestions(contentWidth))
	}

	// Input area
	var inputContent string
	if m.loading {
		inputContent = m.spinner.View() + m.styles.Loading.Render(" Waiting for Gemini...")
	} else {
		inputContent = lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.InputLabel.Render("You"),
			m.textarea.View(),
		)
	}
	inputPanel := m.styles.InputPanel.Width(contentWidth).Render(inputContent)
	sections = append(sections, inputPanel)

	// Transient notice
	if m.notice != "" {
		sections = append(sections, m.styles.Notice.Render(m.notice))
	}

	// Status bar
	sections = append(sections, m.renderStatusBar(contentWidth))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderSuggestions renders the canned prompt chips. alt+1..3 sends the
// matching suggestion through the normal send path.
func (m Model) renderSuggestions(width int) string {
	chips := make([]string, 0, len(suggestions))
	for i, s := range suggestions {
		key := m.styles.SuggestionKey.Render(fmt.Sprintf("alt+%d", i+1))
		chips = append(chips, m.styles.Suggestion.Render(key+" "+s))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, chips...)
	if lipgloss.Width(row) > width {
		row = lipgloss.JoinVertical(lipgloss.Left, chips...)
	}
	return row
}

// renderStatusBar renders the bottom status bar with shortcuts
func (m Model) renderStatusBar(width int) string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send"},
		{"Ctrl+P", "Persona"},
		{"Ctrl+T", "Theme"},
		{"Ctrl+S", "Settings"},
		{"Esc", "Quit"},
	}

	var items []string
	for _, s := range shortcuts {
		item := lipgloss.JoinHorizontal(
			lipgloss.Center,
			m.styles.StatusKey.Render(s.key),
			m.styles.StatusDesc.Render(" "+s.desc),
		)
		items = append(items, item)
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(items, "  │  "))
	return m.styles.StatusBar.Width(width).Align(lipgloss.Center).Render(bar)
}

// updateViewport refreshes the viewport content with styled messages.
// The newest model message renders as a prefix while its reveal runs.
func (m *Model) updateViewport() {
	var content strings.Builder
	bubbleWidth := m.viewport.Width - 6

	msgs := m.session.Messages()
	for i, msg := range msgs {
		if i > 0 {
			content.WriteString("\n")
		}

		if msg.IsUser() {
			label := m.styles.UserLabel.Render("⬤ You")
			bubble := m.styles.UserBubble.Width(bubbleWidth).Render(msg.Content)
			content.WriteString(label + "\n" + bubble)
		} else {
			label := m.styles.ModelLabel.Render("✦ Gemini")

			text := msg.Content
			revealing := i == m.revealMsg && m.revealIndex < len(m.revealText)
			if revealing {
				text = string(m.revealText[:m.revealIndex])
			}

			// Markdown waits until the reveal finishes; partially revealed
			// markup renders badly.
			if m.cfg.Markdown && !revealing {
				text = render.Reply(text, m.renderOpts(bubbleWidth-4))
			}

			bubble := m.styles.ModelBubble.Width(bubbleWidth).Render(text)
			content.WriteString(label + "\n" + bubble)
		}
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// renderOpts returns markdown options for the current theme at width.
// GLAMOUR_STYLE overrides the theme-derived style.
func (m Model) renderOpts(width int) render.Options {
	style := render.StyleForTheme(m.cfg.Theme)
	if env := os.Getenv("GLAMOUR_STYLE"); env != "" {
		style = env
	}
	return render.DefaultOptions().WithStyle(style).WithWidth(width)
}

// RunChat starts the chat TUI
func RunChat(session *api.ChatSession, cfg config.Config) error {
	m := NewChatModel(session, cfg)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
