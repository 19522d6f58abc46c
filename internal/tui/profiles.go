package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zforge/internal/store"
	"github.com/zarlcorp/zforge/internal/wordlist"
)

// profilesModel displays saved target profiles in a scrollable list.
type profilesModel struct {
	records []store.ProfileRecord
	cursor  int
	flash   string
}

// generateProfileMsg requests generation for a saved profile.
type generateProfileMsg struct {
	profile wordlist.Profile
}

// editProfileMsg requests editing a saved profile in the form.
type editProfileMsg struct {
	profile wordlist.Profile
}

// deleteProfileMsg requests deletion of a saved profile.
type deleteProfileMsg struct {
	id string
}

func newProfilesModel(records []store.ProfileRecord) profilesModel {
	return profilesModel{records: records}
}

func (m profilesModel) Init() tea.Cmd {
	return nil
}

func (m profilesModel) Update(msg tea.Msg) (profilesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m profilesModel) handleKey(msg tea.KeyMsg) (profilesModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
	}

	if len(m.records) == 0 {
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.cursor < len(m.records)-1 {
			m.cursor++
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		p := m.records[m.cursor].Profile
		return m, func() tea.Msg { return generateProfileMsg{profile: p} }
	}

	switch msg.String() {
	case "e":
		p := m.records[m.cursor].Profile
		return m, func() tea.Msg { return editProfileMsg{profile: p} }
	case "d":
		id := m.records[m.cursor].ID
		return m, func() tea.Msg { return deleteProfileMsg{id: id} }
	}

	return m, nil
}

func (m profilesModel) View() string {
	accentStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)

	s := "\n"

	if len(m.records) == 0 {
		s += "  " + zstyle.MutedText.Render("no saved profiles") + "\n"
		s += "\n"
		// reserved flash line (empty for empty state)
		s += "\n"
		return s
	}

	for i, rec := range m.records {
		name := truncate(strings.TrimSpace(rec.Profile.Name+" "+rec.Profile.Surname), 25)
		created := rec.CreatedAt.Format(time.DateOnly)
		line := fmt.Sprintf("%-25s %s", name, zstyle.MutedText.Render(created))

		if i == m.cursor {
			s += "  " + accentStyle.Render("▸") + " " + line + "\n"
		} else {
			s += "    " + line + "\n"
		}
	}

	s += "\n"

	// always reserve a line for flash to prevent layout shift
	if m.flash != "" {
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
