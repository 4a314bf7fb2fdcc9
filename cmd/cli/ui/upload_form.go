package ui

import (
	"fmt"
	"strconv"

	"ebook-share/app/dto"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type uploadDoneMsg struct{}

type UploadCancelledMsg struct{}

type UploadFormModel struct {
	Session  *Session
	Inputs   []textinput.Model
	FocusIdx int
	Err      error
}

const (
	formTitle = iota
	formAuthor
	formGenre
	formYear
	formContent
)

func NewUploadFormModel(s *Session) UploadFormModel {
	labels := []string{"Title: ", "Author: ", "Genre: ", "Year: ", "Content: "}
	inputs := make([]textinput.Model, len(labels))
	for i, label := range labels {
		inputs[i] = textinput.New()
		inputs[i].Prompt = label
	}
	inputs[formTitle].Focus()

	return UploadFormModel{Session: s, Inputs: inputs}
}

func (m UploadFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m UploadFormModel) Update(msg tea.Msg) (UploadFormModel, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.Inputs))

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return m, func() tea.Msg { return UploadCancelledMsg{} }
		case tea.KeyEnter:
			if m.FocusIdx == len(m.Inputs)-1 {
				return m, m.submitCmd
			}
			m.nextInput()
		case tea.KeyTab, tea.KeyDown:
			m.nextInput()
		case tea.KeyShiftTab, tea.KeyUp:
			m.prevInput()
		}
	case errMsg:
		m.Err = msg
	}

	for i := range m.Inputs {
		m.Inputs[i], cmds[i] = m.Inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m *UploadFormModel) nextInput() {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx = (m.FocusIdx + 1) % len(m.Inputs)
	m.Inputs[m.FocusIdx].Focus()
}

func (m *UploadFormModel) prevInput() {
	m.Inputs[m.FocusIdx].Blur()
	m.FocusIdx--
	if m.FocusIdx < 0 {
		m.FocusIdx = len(m.Inputs) - 1
	}
	m.Inputs[m.FocusIdx].Focus()
}

func (m UploadFormModel) submitCmd() tea.Msg {
	year, err := strconv.Atoi(m.Inputs[formYear].Value())
	if err != nil {
		return errMsg(fmt.Errorf("invalid year"))
	}
	req := dto.AddEbookRequest{
		Title:           m.Inputs[formTitle].Value(),
		Author:          m.Inputs[formAuthor].Value(),
		Genre:           m.Inputs[formGenre].Value(),
		PublicationYear: year,
		Content:         m.Inputs[formContent].Value(),
	}
	if err := m.Session.Upload(req); err != nil {
		return errMsg(err)
	}
	return uploadDoneMsg{}
}

func (m UploadFormModel) View() string {
	s := titleStyle.Render("eBookShare - Upload") + "\n\n"
	for i := range m.Inputs {
		s += m.Inputs[i].View() + "\n"
	}
	s += "\n" + blurredStyle.Render("Tab to move, Enter on the last field to upload, Esc to cancel")
	if m.Err != nil {
		s += "\n\n" + errorMessageStyle(m.Err.Error())
	}
	return s
}
