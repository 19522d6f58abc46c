package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zforge/internal/wordfile"
	"github.com/zarlcorp/zforge/internal/wordlist"
)

// resultsModel displays generation statistics with export actions.
type resultsModel struct {
	profile wordlist.Profile
	tokens  wordlist.Set
	stats   wordlist.Stats
	diag    wordlist.Diagnostics
	cfg     wordlist.Config
	flash   string
}

// wordlistReadyMsg carries a finished generation run to the root model.
type wordlistReadyMsg struct {
	profile wordlist.Profile
	tokens  wordlist.Set
	stats   wordlist.Stats
	diag    wordlist.Diagnostics
}

// saveProfileMsg requests persisting the profile in the store.
type saveProfileMsg struct {
	profile wordlist.Profile
}

// profileSavedMsg confirms the profile was saved.
type profileSavedMsg struct{}

// flashMsg clears the flash after a timeout.
type flashMsg struct{}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return flashMsg{}
	})
}

func newResultsModel(msg wordlistReadyMsg, cfg wordlist.Config) resultsModel {
	return resultsModel{
		profile: msg.profile,
		tokens:  msg.tokens,
		stats:   msg.stats,
		diag:    msg.diag,
		cfg:     cfg,
	}
}

func (m resultsModel) Init() tea.Cmd {
	return nil
}

func (m resultsModel) Update(msg tea.Msg) (resultsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case profileSavedMsg:
		m.flash = "profile saved"
		return m, clearFlashAfter()

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m resultsModel) handleKey(msg tea.KeyMsg) (resultsModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
	}

	switch msg.String() {
	case "t":
		return m.export("txt")
	case "j":
		return m.export("json")
	case "c":
		return m.export("csv")
	case "s":
		p := m.profile
		return m, func() tea.Msg { return saveProfileMsg{profile: p} }
	case "n":
		return m, func() tea.Msg { return navigateMsg{view: viewForm} }
	}

	return m, nil
}

func (m resultsModel) export(format string) (resultsModel, tea.Cmd) {
	path := m.exportPath(format)

	f, err := os.Create(path)
	if err != nil {
		m.flash = "export: " + err.Error()
		return m, clearFlashAfter()
	}
	defer f.Close()

	switch format {
	case "txt":
		err = wordfile.WriteTXT(f, m.tokens)
	case "json":
		meta := wordfile.Metadata{
			Tool:        "zforge",
			GeneratedAt: time.Now(),
			TargetName:  m.profile.Name,
			Profile:     m.profile,
		}
		err = wordfile.WriteJSON(f, m.tokens, m.stats, meta)
	case "csv":
		err = wordfile.WriteCSV(f, m.tokens, m.cfg.SpecialChars)
	}

	if err != nil {
		m.flash = "export: " + err.Error()
		return m, clearFlashAfter()
	}

	m.flash = "saved " + path
	return m, clearFlashAfter()
}

func (m resultsModel) exportPath(format string) string {
	base := strings.ToLower(strings.TrimSpace(m.profile.Name))
	if base == "" {
		base = "zforge"
	}
	return base + "_passwords." + format
}

func (m resultsModel) View() string {
	s := "\n"

	row := func(label, value string) string {
		return fmt.Sprintf("  %s %s\n", zstyle.MutedText.Render(fmt.Sprintf("%-16s", label)), value)
	}

	s += row("passwords", fmt.Sprintf("%d", m.stats.Total))
	s += row("base words", fmt.Sprintf("%d", m.diag.BaseWords))
	s += row("date variants", fmt.Sprintf("%d", m.diag.DateVariations))
	s += row("avg length", fmt.Sprintf("%.2f", m.stats.AvgLength))
	s += row("length range", fmt.Sprintf("%d-%d", m.stats.MinLength, m.stats.MaxLength))
	s += "\n"
	s += row("weak", fmt.Sprintf("%d (%.1f%%)", m.stats.Strengths[wordlist.Weak], m.stats.WeakPct))
	s += row("medium", fmt.Sprintf("%d (%.1f%%)", m.stats.Strengths[wordlist.Medium], m.stats.MediumPct))
	s += row("strong", fmt.Sprintf("%d (%.1f%%)", m.stats.Strengths[wordlist.Strong], m.stats.StrongPct))

	if len(m.diag.Warnings) > 0 {
		s += "\n"
		for _, w := range m.diag.Warnings {
			s += "  " + zstyle.StatusWarn.Render(w) + "\n"
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
