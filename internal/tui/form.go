package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zforge/internal/wordlist"
)

type formField int

const (
	fieldName formField = iota
	fieldSurname
	fieldNickname
	fieldBirthdate
	fieldPartnerName
	fieldPartnerNickname
	fieldPartnerBirthdate
	fieldChildName
	fieldChildNickname
	fieldChildBirthdate
	fieldPetName
	fieldCompany
	fieldKeywords
	fieldEmail
	fieldPhone
	formFieldCount
)

var formLabels = [formFieldCount]string{
	"name",
	"surname",
	"nickname",
	"birthdate",
	"partner name",
	"partner nick",
	"partner bday",
	"child name",
	"child nick",
	"child bday",
	"pet name",
	"company",
	"keywords",
	"email",
	"phone",
}

// formSubmitMsg requests wordlist generation for the entered profile.
type formSubmitMsg struct {
	profile wordlist.Profile
}

// formModel collects target profile details across tab-navigated inputs.
type formModel struct {
	inputs   []textinput.Model
	focus    int
	flash    string
	warnings []string
}

func newFormModel(p wordlist.Profile) formModel {
	inputs := make([]textinput.Model, formFieldCount)

	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 128
		ti.Width = 40
		inputs[i] = ti
	}

	inputs[fieldBirthdate].Placeholder = "DDMMYYYY"
	inputs[fieldPartnerBirthdate].Placeholder = "DDMMYYYY"
	inputs[fieldChildBirthdate].Placeholder = "DDMMYYYY"
	inputs[fieldKeywords].Placeholder = "comma separated"
	inputs[fieldKeywords].CharLimit = 256

	inputs[fieldName].SetValue(p.Name)
	inputs[fieldSurname].SetValue(p.Surname)
	inputs[fieldNickname].SetValue(p.Nickname)
	inputs[fieldBirthdate].SetValue(p.Birthdate)
	inputs[fieldPartnerName].SetValue(p.PartnerName)
	inputs[fieldPartnerNickname].SetValue(p.PartnerNickname)
	inputs[fieldPartnerBirthdate].SetValue(p.PartnerBirthdate)
	inputs[fieldChildName].SetValue(p.ChildName)
	inputs[fieldChildNickname].SetValue(p.ChildNickname)
	inputs[fieldChildBirthdate].SetValue(p.ChildBirthdate)
	inputs[fieldPetName].SetValue(p.PetName)
	inputs[fieldCompany].SetValue(p.Company)
	inputs[fieldKeywords].SetValue(strings.Join(p.Keywords, ", "))
	inputs[fieldEmail].SetValue(p.Email)
	inputs[fieldPhone].SetValue(p.Phone)

	inputs[0].Focus()

	return formModel{inputs: inputs}
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		if msg.Type == tea.KeyEsc {
			return m, func() tea.Msg { return navigateMsg{view: viewMenu} }
		}

		if key.Matches(msg, zstyle.KeyTab) || msg.Type == tea.KeyDown {
			return m.nextField(), nil
		}

		if msg.Type == tea.KeyUp || msg.Type == tea.KeyShiftTab {
			return m.prevField(), nil
		}

		if key.Matches(msg, zstyle.KeyEnter) {
			// enter on last field generates; otherwise advance
			if m.focus == int(formFieldCount)-1 {
				return m.submit()
			}
			return m.nextField(), nil
		}

		if msg.String() == "ctrl+g" {
			return m.submit()
		}

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m.updateInput(msg)
}

func (m formModel) submit() (formModel, tea.Cmd) {
	p := m.profile()
	warnings := p.Validate()

	if p.Name == "" {
		m.flash = "target name is required"
		m.warnings = warnings
		return m, clearFlashAfter()
	}

	m.warnings = warnings
	return m, func() tea.Msg { return formSubmitMsg{profile: p} }
}

// profile collects the inputs into a normalized profile. Name-like fields
// are lowercased to match how the combination engine treats its inputs.
func (m formModel) profile() wordlist.Profile {
	val := func(f formField) string {
		return strings.ToLower(strings.TrimSpace(m.inputs[f].Value()))
	}

	var keywords []string
	for _, kw := range strings.Split(m.inputs[fieldKeywords].Value(), ",") {
		if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
			keywords = append(keywords, kw)
		}
	}

	return wordlist.Profile{
		Name:             val(fieldName),
		Surname:          val(fieldSurname),
		Nickname:         val(fieldNickname),
		Birthdate:        val(fieldBirthdate),
		PartnerName:      val(fieldPartnerName),
		PartnerNickname:  val(fieldPartnerNickname),
		PartnerBirthdate: val(fieldPartnerBirthdate),
		ChildName:        val(fieldChildName),
		ChildNickname:    val(fieldChildNickname),
		ChildBirthdate:   val(fieldChildBirthdate),
		PetName:          val(fieldPetName),
		Company:          val(fieldCompany),
		Keywords:         keywords,
		Email:            val(fieldEmail),
		Phone:            val(fieldPhone),
	}
}

func (m formModel) nextField() formModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % int(formFieldCount)
	m.inputs[m.focus].Focus()
	return m
}

func (m formModel) prevField() formModel {
	m.inputs[m.focus].Blur()
	m.focus--
	if m.focus < 0 {
		m.focus = int(formFieldCount) - 1
	}
	m.inputs[m.focus].Focus()
	return m
}

func (m formModel) updateInput(msg tea.Msg) (formModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m formModel) View() string {
	accentStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)

	s := "\n"

	for i, input := range m.inputs {
		label := zstyle.MutedText.Render(fmt.Sprintf("  %-14s", formLabels[i]))
		if i == m.focus {
			s += accentStyle.Render("▸") + " " + label + input.View() + "\n"
		} else {
			s += "  " + label + input.View() + "\n"
		}
	}

	s += "\n"

	for _, w := range m.warnings {
		s += "  " + zstyle.StatusWarn.Render(w) + "\n"
	}

	// always reserve a line for flash to prevent layout shift
	if m.flash != "" {
		s += "  " + zstyle.StatusErr.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}
