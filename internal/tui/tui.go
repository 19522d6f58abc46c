// Package tui implements the root Bubble Tea model for zforge.
package tui

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zforge/internal/store"
	"github.com/zarlcorp/zforge/internal/wordlist"
)

// TODO: add a zforge accent color to zstyle.
var accent = zstyle.ZburnAccent

type viewID int

const (
	viewPassword viewID = iota
	viewMenu
	viewForm
	viewResults
	viewProfiles
)

// Model is the root TUI model.
type Model struct {
	version  string
	dataDir  string
	cfg      wordlist.Config
	store    *store.Store
	firstRun bool

	active   viewID
	password passwordModel
	menu     menuModel
	form     formModel
	results  resultsModel
	profiles profilesModel

	// terminal dimensions
	width  int
	height int
}

// New creates the root TUI model.
func New(version, dataDir string, cfg wordlist.Config, firstRun bool) Model {
	return Model{
		version:  version,
		dataDir:  dataDir,
		cfg:      cfg,
		firstRun: firstRun,
		active:   viewPassword,
		password: newPasswordModel(firstRun),
		menu:     newMenuModel(version),
	}
}

func (m Model) Init() tea.Cmd {
	return m.password.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case passwordSubmitMsg:
		return m.openStore(msg.password)

	case navigateMsg:
		return m.navigate(msg.view)

	case formSubmitMsg:
		return m, generateCmd(msg.profile, m.cfg)

	case generateProfileMsg:
		return m, generateCmd(msg.profile, m.cfg)

	case editProfileMsg:
		m.form = newFormModel(msg.profile)
		m.active = viewForm
		return m, tea.Batch(m.form.Init(), tea.ClearScreen)

	case wordlistReadyMsg:
		m.results = newResultsModel(msg, m.cfg)
		m.active = viewResults
		return m, tea.ClearScreen

	case saveProfileMsg:
		return m.handleSaveProfile(msg.profile)

	case deleteProfileMsg:
		return m.handleDeleteProfile(msg.id)
	}

	return m.updateActive(msg)
}

func (m Model) View() string {
	// password and menu include the logo — render directly
	switch m.active {
	case viewPassword:
		return m.password.View()
	case viewMenu:
		return m.menu.View()
	}

	// all other views: header + separator + content + footer
	var content string
	switch m.active {
	case viewForm:
		content = m.form.View()
	case viewResults:
		content = m.results.View()
	case viewProfiles:
		content = m.profiles.View()
	}

	header := zstyle.RenderHeader("zforge", viewTitle(m.active), accent)
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(helpFor(m.active))

	return "\n" + header + "\n" + sep + "\n" + content + "\n" + footer + "\n"
}

// viewTitle returns the display title for each view.
func viewTitle(id viewID) string {
	switch id {
	case viewForm:
		return "Target Profile"
	case viewResults:
		return "Wordlist"
	case viewProfiles:
		return "Saved Profiles"
	}
	return ""
}

// helpFor returns keybinding pairs for each view's footer.
func helpFor(id viewID) []zstyle.HelpPair {
	switch id {
	case viewForm:
		return []zstyle.HelpPair{
			{Key: "tab", Desc: "next"},
			{Key: "shift+tab", Desc: "prev"},
			{Key: "ctrl+g", Desc: "generate"},
			{Key: "esc", Desc: "back"},
		}
	case viewResults:
		return []zstyle.HelpPair{
			{Key: "t", Desc: "txt"},
			{Key: "j", Desc: "json"},
			{Key: "c", Desc: "csv"},
			{Key: "s", Desc: "save profile"},
			{Key: "n", Desc: "new"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewProfiles:
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "navigate"},
			{Key: "enter", Desc: "generate"},
			{Key: "e", Desc: "edit"},
			{Key: "d", Desc: "delete"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	}
	return nil
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.active {
	case viewPassword:
		m.password, cmd = m.password.Update(msg)
	case viewMenu:
		m.menu, cmd = m.menu.Update(msg)
	case viewForm:
		m.form, cmd = m.form.Update(msg)
	case viewResults:
		m.results, cmd = m.results.Update(msg)
	case viewProfiles:
		m.profiles, cmd = m.profiles.Update(msg)
	}

	return m, cmd
}

// generateCmd runs the combination engine off the update loop.
func generateCmd(p wordlist.Profile, cfg wordlist.Config) tea.Cmd {
	return func() tea.Msg {
		tokens, diag := wordlist.Generate(p, cfg)
		stats := wordlist.Aggregate(tokens, cfg.SpecialChars, time.Now())
		return wordlistReadyMsg{profile: p, tokens: tokens, stats: stats, diag: diag}
	}
}

func (m Model) openStore(password string) (tea.Model, tea.Cmd) {
	if err := os.MkdirAll(m.dataDir, 0o700); err != nil {
		m.password, _ = m.password.Update(passwordErrMsg{
			err: fmt.Errorf("create data dir: %w", err),
		})
		return m, nil
	}

	fsys := zfilesystem.NewOSFileSystem(m.dataDir)
	s, err := store.Open(fsys, []byte(password))
	if err != nil {
		m.password, _ = m.password.Update(passwordErrMsg{err: err})
		return m, nil
	}

	m.store = s
	return m.navigate(viewMenu)
}

func (m Model) navigate(view viewID) (tea.Model, tea.Cmd) {
	switch view {
	case viewMenu:
		mm := newMenuModel(m.version)
		if m.store != nil {
			if records, err := m.store.List(); err == nil {
				mm.profileCount = len(records)
			}
		}
		m.menu = mm
		m.active = viewMenu
		return m, tea.ClearScreen

	case viewForm:
		m.form = newFormModel(wordlist.Profile{})
		m.active = viewForm
		return m, tea.Batch(m.form.Init(), tea.ClearScreen)

	case viewProfiles:
		m, cmd := m.loadProfiles()
		return m, tea.Batch(cmd, tea.ClearScreen)

	case viewResults:
		m.active = viewResults
		return m, tea.ClearScreen
	}

	return m, nil
}

func (m Model) loadProfiles() (tea.Model, tea.Cmd) {
	records, err := m.store.List()
	if err != nil {
		// show empty list with error flash
		m.profiles = newProfilesModel(nil)
		m.profiles.flash = "load: " + err.Error()
		m.active = viewProfiles
		return m, clearFlashAfter()
	}

	m.profiles = newProfilesModel(records)
	m.active = viewProfiles
	return m, nil
}

func (m Model) handleSaveProfile(p wordlist.Profile) (tea.Model, tea.Cmd) {
	rec := store.NewProfileRecord(p, time.Now())
	if err := m.store.Save(rec); err != nil {
		m.results.flash = "save: " + err.Error()
		return m, clearFlashAfter()
	}

	m.results, _ = m.results.Update(profileSavedMsg{})
	return m, clearFlashAfter()
}

func (m Model) handleDeleteProfile(id string) (tea.Model, tea.Cmd) {
	if err := m.store.Delete(id); err != nil {
		m.profiles.flash = "delete: " + err.Error()
		return m, clearFlashAfter()
	}

	// reload list after delete
	return m.loadProfiles()
}

// Close cleans up resources. Call after the program exits.
func (m Model) Close() {
	if m.store != nil {
		m.store.Close()
	}
}
