package tui

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/zforge/internal/wordlist"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMenuNavigation(t *testing.T) {
	m := newMenuModel("test")

	m, _ = m.Update(keyRunes("j"))
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}

	m, _ = m.Update(keyRunes("k"))
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}

	// cursor clamps at the top
	m, _ = m.Update(keyRunes("k"))
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0 after clamp", m.cursor)
	}
}

func TestMenuSelect(t *testing.T) {
	tests := []struct {
		name   string
		cursor int
		want   viewID
	}{
		{"new wordlist", 0, viewForm},
		{"saved profiles", 1, viewProfiles},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMenuModel("test")
			m.cursor = tt.cursor

			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			if cmd == nil {
				t.Fatal("expected command")
			}

			nav, ok := cmd().(navigateMsg)
			if !ok {
				t.Fatalf("expected navigateMsg, got %T", cmd())
			}
			if nav.view != tt.want {
				t.Errorf("view = %d, want %d", nav.view, tt.want)
			}
		})
	}
}

func TestMenuQuit(t *testing.T) {
	m := newMenuModel("test")
	m.cursor = int(menuQuit)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestFormCollectsProfile(t *testing.T) {
	m := newFormModel(wordlist.Profile{})
	m.inputs[fieldName].SetValue("  John ")
	m.inputs[fieldSurname].SetValue("Doe")
	m.inputs[fieldBirthdate].SetValue("15031990")
	m.inputs[fieldKeywords].SetValue("Crypto, gaming , ")
	m.inputs[fieldEmail].SetValue("John@Example.com")

	p := m.profile()

	if p.Name != "john" {
		t.Errorf("Name = %q, want lowercased and trimmed %q", p.Name, "john")
	}
	if p.Surname != "doe" {
		t.Errorf("Surname = %q, want %q", p.Surname, "doe")
	}
	if p.Email != "john@example.com" {
		t.Errorf("Email = %q, want %q", p.Email, "john@example.com")
	}

	want := []string{"crypto", "gaming"}
	if len(p.Keywords) != len(want) {
		t.Fatalf("Keywords = %v, want %v", p.Keywords, want)
	}
	for i := range want {
		if p.Keywords[i] != want[i] {
			t.Errorf("Keywords[%d] = %q, want %q", i, p.Keywords[i], want[i])
		}
	}
}

func TestFormSubmitRequiresName(t *testing.T) {
	m := newFormModel(wordlist.Profile{})

	m, _ = m.submit()
	if m.flash == "" {
		t.Error("expected flash for missing name")
	}
}

func TestFormSubmitEmitsProfile(t *testing.T) {
	m := newFormModel(wordlist.Profile{})
	m.inputs[fieldName].SetValue("john")

	_, cmd := m.submit()
	if cmd == nil {
		t.Fatal("expected command")
	}

	sub, ok := cmd().(formSubmitMsg)
	if !ok {
		t.Fatalf("expected formSubmitMsg, got %T", cmd())
	}
	if sub.profile.Name != "john" {
		t.Errorf("profile name = %q, want %q", sub.profile.Name, "john")
	}
}

func TestFormFieldNavigation(t *testing.T) {
	m := newFormModel(wordlist.Profile{})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != 1 {
		t.Errorf("focus = %d, want 1", m.focus)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != 0 {
		t.Errorf("focus = %d, want 0", m.focus)
	}

	// wraps around backwards
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != int(formFieldCount)-1 {
		t.Errorf("focus = %d, want %d after wrap", m.focus, int(formFieldCount)-1)
	}
}

func TestFormPrefill(t *testing.T) {
	p := wordlist.Profile{
		Name:     "john",
		Keywords: []string{"crypto", "gaming"},
	}

	m := newFormModel(p)
	if got := m.inputs[fieldName].Value(); got != "john" {
		t.Errorf("name input = %q, want %q", got, "john")
	}
	if got := m.inputs[fieldKeywords].Value(); got != "crypto, gaming" {
		t.Errorf("keywords input = %q, want %q", got, "crypto, gaming")
	}
}

func newTestResults(t *testing.T, name string) resultsModel {
	t.Helper()

	cfg := wordlist.DefaultConfig()
	p := wordlist.Profile{Name: name, Birthdate: "15031990"}
	tokens, diag := wordlist.Generate(p, cfg)

	return newResultsModel(wordlistReadyMsg{
		profile: p,
		tokens:  tokens,
		diag:    diag,
	}, cfg)
}

func TestResultsSaveProfileKey(t *testing.T) {
	m := newTestResults(t, "john")

	_, cmd := m.Update(keyRunes("s"))
	if cmd == nil {
		t.Fatal("expected command")
	}

	save, ok := cmd().(saveProfileMsg)
	if !ok {
		t.Fatalf("expected saveProfileMsg, got %T", cmd())
	}
	if save.profile.Name != "john" {
		t.Errorf("profile name = %q, want %q", save.profile.Name, "john")
	}
}

func TestResultsExportTXT(t *testing.T) {
	t.Chdir(t.TempDir())

	m := newTestResults(t, "john")
	m, _ = m.Update(keyRunes("t"))

	if !strings.Contains(m.flash, "john_passwords.txt") {
		t.Errorf("flash = %q, want export path", m.flash)
	}

	data, err := os.ReadFile("john_passwords.txt")
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if len(data) == 0 {
		t.Error("export is empty")
	}
}

func TestResultsExportPathFallback(t *testing.T) {
	m := resultsModel{}
	if got := m.exportPath("txt"); got != "zforge_passwords.txt" {
		t.Errorf("exportPath = %q, want %q", got, "zforge_passwords.txt")
	}
}

func TestProfilesKeys(t *testing.T) {
	m := newProfilesModel(nil)

	// back navigation works on an empty list
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected command")
	}
	if nav, ok := cmd().(navigateMsg); !ok || nav.view != viewMenu {
		t.Errorf("expected navigate to menu, got %v", cmd())
	}

	// enter on an empty list is a no-op
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no command on empty list")
	}
}
