package tui

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/diogo/genchat/internal/api"
	"github.com/diogo/genchat/internal/config"
)

func TestOpenOverlay_PersonaSeedsCursor(t *testing.T) {
	m, _ := newSizedTestModel(t)
	m.session.SetPersona(config.PersonaWriter)

	updatedModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})

	typedModel := updatedModel.(Model)
	if typedModel.overlay != overlayPersona {
		t.Fatal("Ctrl+P should open the persona overlay")
	}
	if typedModel.menuCursor != 2 {
		t.Errorf("Expected cursor on the active persona (2), got %d", typedModel.menuCursor)
	}
}

func TestOpenOverlay_ThemeSeedsCursor(t *testing.T) {
	client := &api.MockClient{APIKeyVal: "test-key"}
	session := api.NewChatSession(client, config.DefaultPersona())
	cfg := config.DefaultConfig()
	cfg.Theme = config.ThemeGreen
	cfg.Markdown = false

	m := NewChatModel(session, cfg)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(Model)

	updatedModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})

	typedModel := updatedModel.(Model)
	if typedModel.overlay != overlayTheme {
		t.Fatal("Ctrl+T should open the theme overlay")
	}
	if typedModel.menuCursor != 2 {
		t.Errorf("Expected cursor on the active theme (2), got %d", typedModel.menuCursor)
	}
}

func TestOpenOverlay_SettingsSeedsForm(t *testing.T) {
	m, client := newSizedTestModel(t)

	updatedModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	typedModel := updatedModel.(Model)
	if typedModel.overlay != overlaySettings {
		t.Fatal("Ctrl+S should open the settings overlay")
	}
	if got := typedModel.settings.inputs[settingsFieldModel].Value(); got != client.Model() {
		t.Errorf("Expected model field seeded with %q, got %q", client.Model(), got)
	}
	if typedModel.settings.focus != settingsFieldModel {
		t.Errorf("Expected focus on the model field, got %d", typedModel.settings.focus)
	}
	if typedModel.settings.remember != m.cfg.RememberKey {
		t.Error("Remember toggle should seed from the config")
	}
	if cmd == nil {
		t.Error("Opening settings should return the cursor blink command")
	}
}

func TestUpdateSelector_CursorWraps(t *testing.T) {
	m, _ := newSizedTestModel(t)
	opened, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	m = opened.(Model)

	// Up from the first entry wraps to the last
	updatedModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	typedModel := updatedModel.(Model)
	if want := len(config.Personas()) - 1; typedModel.menuCursor != want {
		t.Errorf("Expected cursor %d after wrapping up, got %d", want, typedModel.menuCursor)
	}

	// Down from the last entry wraps back to the first
	updatedModel, _ = typedModel.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	typedModel = updatedModel.(Model)
	if typedModel.menuCursor != 0 {
		t.Errorf("Expected cursor 0 after wrapping down, got %d", typedModel.menuCursor)
	}
}

func TestUpdateSelector_EscCloses(t *testing.T) {
	m, _ := newSizedTestModel(t)
	opened, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	m = opened.(Model)

	updatedModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyEscape})

	typedModel := updatedModel.(Model)
	if typedModel.overlay != overlayNone {
		t.Error("Escape should close the overlay")
	}
	if typedModel.session.Persona().ID != config.DefaultPersona().ID {
		t.Error("Escape should not change the persona")
	}
}

func TestApplySelection_Persona(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	m, _ := newSizedTestModel(t)
	opened, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	m = opened.(Model)

	// Move to the second persona and select it
	moved, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = moved.(Model)
	updatedModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	typedModel := updatedModel.(Model)
	if typedModel.session.Persona().ID != config.PersonaCoder.ID {
		t.Errorf("Expected persona %q, got %q", config.PersonaCoder.ID, typedModel.session.Persona().ID)
	}
	if typedModel.overlay != overlayNone {
		t.Error("Selection should close the overlay")
	}
	if !strings.Contains(typedModel.notice, config.PersonaCoder.Name) {
		t.Errorf("Expected a notice naming the persona, got %q", typedModel.notice)
	}
	if cmd == nil {
		t.Error("Selection should schedule the notice clear")
	}

	// Persona selection is never persisted
	configPath, err := config.GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}
	if _, err := os.Stat(configPath); !os.IsNotExist(err) {
		t.Error("Persona selection should not write the config file")
	}
}

func TestApplySelection_ThemePersists(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	m, _ := newSizedTestModel(t)
	opened, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = opened.(Model)

	// Move from default to pink (last entry) and select it
	for i := 0; i < 3; i++ {
		moved, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = moved.(Model)
	}
	updatedModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	typedModel := updatedModel.(Model)
	if typedModel.cfg.Theme != config.ThemePink {
		t.Errorf("Expected theme %q, got %q", config.ThemePink, typedModel.cfg.Theme)
	}
	if typedModel.styles.Theme.Name != config.ThemePink {
		t.Error("Styles should be rebuilt for the new theme")
	}
	if typedModel.overlay != overlayNone {
		t.Error("Selection should close the overlay")
	}

	// The theme choice survives for the next run
	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Theme != config.ThemePink {
		t.Errorf("Expected persisted theme %q, got %q", config.ThemePink, cfg.Theme)
	}
}

func TestUpdateOverlay_ResponseProgressesBehindOverlay(t *testing.T) {
	m, _ := newSizedTestModel(t)
	opened, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	m = opened.(Model)

	m.loading = true
	m.session.AppendUser("question")
	m.session.AppendModel("late reply")

	updatedModel, cmd := m.Update(responseMsg{reply: "late reply"})

	typedModel := updatedModel.(Model)
	if typedModel.loading {
		t.Error("Response should clear the loading flag behind the overlay")
	}
	if typedModel.overlay != overlayPersona {
		t.Error("Response should leave the overlay open")
	}
	if typedModel.revealMsg != 2 {
		t.Errorf("Expected reveal on message 2, got %d", typedModel.revealMsg)
	}
	if cmd == nil {
		t.Error("Response should schedule the first reveal tick")
	}
}

func TestUpdateOverlay_RevealTickProgressesBehindOverlay(t *testing.T) {
	m, _ := newSizedTestModel(t)
	opened, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = opened.(Model)

	updatedModel, _ := m.Update(revealTickMsg{seq: m.revealSeq})

	typedModel := updatedModel.(Model)
	if typedModel.revealIndex != 1 {
		t.Errorf("Expected reveal index 1, got %d", typedModel.revealIndex)
	}
	if typedModel.overlay != overlayTheme {
		t.Error("Reveal tick should leave the overlay open")
	}
}

func TestUpdateSettings_Navigation(t *testing.T) {
	m, _ := newSizedTestModel(t)
	opened, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = opened.(Model)

	next := func(msg tea.KeyMsg) {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}

	next(tea.KeyMsg{Type: tea.KeyTab})
	if m.settings.focus != settingsFieldKey {
		t.Errorf("Expected focus on the key field, got %d", m.settings.focus)
	}

	next(tea.KeyMsg{Type: tea.KeyTab})
	if m.settings.focus != settingsFieldRemember {
		t.Errorf("Expected focus on the remember toggle, got %d", m.settings.focus)
	}

	// Tab past the last field wraps to the first
	next(tea.KeyMsg{Type: tea.KeyTab})
	if m.settings.focus != settingsFieldModel {
		t.Errorf("Expected focus to wrap to the model field, got %d", m.settings.focus)
	}

	// Shift+Tab from the first field wraps to the last
	next(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.settings.focus != settingsFieldRemember {
		t.Errorf("Expected focus to wrap to the remember toggle, got %d", m.settings.focus)
	}
}

func TestUpdateSettings_SpaceTogglesRemember(t *testing.T) {
	m, _ := newSizedTestModel(t)
	opened, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = opened.(Model)

	// Move focus to the remember toggle
	for i := 0; i < 2; i++ {
		moved, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = moved.(Model)
	}

	updatedModel, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	typedModel := updatedModel.(Model)
	if !typedModel.settings.remember {
		t.Error("Space should toggle remember on")
	}

	updatedModel, _ = typedModel.Update(tea.KeyMsg{Type: tea.KeySpace})
	typedModel = updatedModel.(Model)
	if typedModel.settings.remember {
		t.Error("Space should toggle remember back off")
	}
}

func TestUpdateSettings_SpaceTypesIntoFocusedInput(t *testing.T) {
	m, client := newSizedTestModel(t)
	opened, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = opened.(Model)

	// Focus is on the model field; space is just a character here
	updatedModel, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	typedModel := updatedModel.(Model)
	if got := typedModel.settings.inputs[settingsFieldModel].Value(); got != client.Model()+" " {
		t.Errorf("Expected a space appended to the model field, got %q", got)
	}
	if typedModel.settings.remember {
		t.Error("Space in a text field should not touch the remember toggle")
	}
}

func TestUpdateSettings_EscCloses(t *testing.T) {
	m, client := newSizedTestModel(t)
	opened, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = opened.(Model)

	m.settings.inputs[settingsFieldModel].SetValue("discarded-model")
	updatedModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyEscape})

	typedModel := updatedModel.(Model)
	if typedModel.overlay != overlayNone {
		t.Error("Escape should close the settings overlay")
	}
	if client.ModelVal == "discarded-model" {
		t.Error("Escape should discard unapplied edits")
	}
}

func TestApplySettings_ModelChange(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvAPIKey, "")

	m, client := newSizedTestModel(t)
	opened, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = opened.(Model)

	m.settings.inputs[settingsFieldModel].SetValue("gemini-2.5-pro")
	updatedModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	typedModel := updatedModel.(Model)
	if client.Model() != "gemini-2.5-pro" {
		t.Errorf("Expected client model %q, got %q", "gemini-2.5-pro", client.Model())
	}
	if typedModel.cfg.Model != "gemini-2.5-pro" {
		t.Errorf("Expected config model %q, got %q", "gemini-2.5-pro", typedModel.cfg.Model)
	}
	if typedModel.overlay != overlayNone {
		t.Error("Saving should close the overlay")
	}
	if typedModel.notice != "settings saved" {
		t.Errorf("Expected save notice, got %q", typedModel.notice)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Model != "gemini-2.5-pro" {
		t.Errorf("Expected persisted model %q, got %q", "gemini-2.5-pro", cfg.Model)
	}
}

func TestApplySettings_StoresKey(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvAPIKey, "")

	m, client := newSizedTestModel(t)
	opened, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = opened.(Model)

	m.settings.inputs[settingsFieldKey].SetValue("fresh-key")
	m.settings.remember = true
	updatedModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	typedModel := updatedModel.(Model)
	if client.APIKeyVal != "fresh-key" {
		t.Errorf("Expected client key %q, got %q", "fresh-key", client.APIKeyVal)
	}
	if !typedModel.cfg.RememberKey {
		t.Error("Expected remember flag in the config")
	}

	key, err := config.LoadAPIKey()
	if err != nil {
		t.Fatalf("LoadAPIKey failed: %v", err)
	}
	if key != "fresh-key" {
		t.Errorf("Expected stored key %q, got %q", "fresh-key", key)
	}
}

func TestApplySettings_BlankKey(t *testing.T) {
	t.Run("remember on keeps stored key", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		t.Setenv(config.EnvAPIKey, "")

		if err := config.StoreAPIKey("stored-key", true); err != nil {
			t.Fatalf("StoreAPIKey failed: %v", err)
		}

		m, _ := newSizedTestModel(t)
		opened, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
		m = opened.(Model)

		m.settings.remember = true
		m.Update(tea.KeyMsg{Type: tea.KeyEnter})

		key, err := config.LoadAPIKey()
		if err != nil {
			t.Fatalf("LoadAPIKey failed: %v", err)
		}
		if key != "stored-key" {
			t.Errorf("A blank key with remember on should keep the stored key, got %q", key)
		}
	})

	t.Run("remember off clears stored key", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		t.Setenv(config.EnvAPIKey, "")

		if err := config.StoreAPIKey("stored-key", true); err != nil {
			t.Fatalf("StoreAPIKey failed: %v", err)
		}

		m, _ := newSizedTestModel(t)
		opened, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
		m = opened.(Model)

		m.Update(tea.KeyMsg{Type: tea.KeyEnter})

		if config.HasStoredKey() {
			t.Error("A blank key with remember off should clear the stored key")
		}
	})
}

func TestRenderOverlay_Persona(t *testing.T) {
	m, _ := newSizedTestModel(t)
	opened, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	m = opened.(Model)

	view := m.View()

	if !strings.Contains(view, "Select a persona") {
		t.Error("View should contain the persona overlay title")
	}
	for _, p := range config.Personas() {
		if !strings.Contains(view, p.Name) {
			t.Errorf("View should list persona %q", p.Name)
		}
	}
	if !strings.Contains(view, "(current)") {
		t.Error("View should mark the active persona")
	}
}

func TestRenderOverlay_Theme(t *testing.T) {
	m, _ := newSizedTestModel(t)
	opened, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = opened.(Model)

	view := m.View()

	if !strings.Contains(view, "Select a theme") {
		t.Error("View should contain the theme overlay title")
	}
	for _, th := range AllThemes() {
		if !strings.Contains(view, th.Name) {
			t.Errorf("View should list theme %q", th.Name)
		}
	}
}

func TestRenderOverlay_Settings(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvAPIKey, "")

	m, _ := newSizedTestModel(t)
	opened, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = opened.(Model)

	view := m.View()

	for _, label := range []string{"Settings", "Model", "API key", "Remember key"} {
		if !strings.Contains(view, label) {
			t.Errorf("View should contain %q", label)
		}
	}
	if !strings.Contains(view, "off (key kept") {
		t.Error("View should show the remember toggle state")
	}
	if !strings.Contains(view, "Key set for this run only") {
		t.Error("View should explain where the active key comes from")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"short string unchanged", "short", 10, "short"},
		{"exact length unchanged", "exactly10!", 10, "exactly10!"},
		{"long string truncated", "a very long string that keeps going", 10, "a very ..."},
		{"multibyte runes counted once", "ééééééééééé", 10, "ééééééé..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input, tt.max)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
			}
		})
	}
}
