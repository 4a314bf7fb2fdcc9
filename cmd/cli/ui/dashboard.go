package ui

import (
	"strconv"
	"strings"

	"ebook-share/app/models"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var searchFields = []string{"title", "author", "genre", "year", "uploader"}

type booksLoadedMsg struct {
	Books []models.Ebook
}

type bookDeletedMsg struct{}

type UploadRequestedMsg struct{}

type DashboardModel struct {
	Session   *Session
	Table     table.Model
	Books     []models.Ebook
	Search    textinput.Model
	SearchIdx int
	Searching bool
	MineOnly  bool
	Err       error
	Status    string
}

func NewDashboardModel(s *Session, width, height int) DashboardModel {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Title", Width: 30},
		{Title: "Author", Width: 20},
		{Title: "Genre", Width: 14},
		{Title: "Year", Width: 6},
		{Title: "Uploader", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height-10),
	)

	sStyle := table.DefaultStyles()
	sStyle.Header = sStyle.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	sStyle.Selected = sStyle.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(sStyle)

	search := textinput.New()
	search.Prompt = "Search term: "

	return DashboardModel{
		Session: s,
		Table:   t,
		Search:  search,
	}
}

func (m DashboardModel) Init() tea.Cmd {
	return m.refreshCmd
}

func (m DashboardModel) refreshCmd() tea.Msg {
	var (
		books []models.Ebook
		err   error
	)
	if m.MineOnly {
		books, err = m.Session.YourUploads()
	} else {
		books, err = m.Session.ListBooks()
	}
	if err != nil {
		return errMsg(err)
	}
	return booksLoadedMsg{Books: books}
}

func (m DashboardModel) searchCmd() tea.Msg {
	books, err := m.Session.SearchBooks(searchFields[m.SearchIdx], m.Search.Value())
	if err != nil {
		return errMsg(err)
	}
	return booksLoadedMsg{Books: books}
}

func (m DashboardModel) deleteCmd() tea.Msg {
	selected := m.Table.SelectedRow()
	if len(selected) == 0 {
		return nil
	}
	id, err := strconv.ParseUint(selected[0], 10, 64)
	if err != nil {
		return errMsg(err)
	}
	if err := m.Session.DeleteBook(uint(id)); err != nil {
		return errMsg(err)
	}
	return bookDeletedMsg{}
}

func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	var cmd tea.Cmd

	if m.Searching {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch msg.Type {
			case tea.KeyEnter:
				m.Searching = false
				m.Search.Blur()
				return m, m.searchCmd
			case tea.KeyEsc:
				m.Searching = false
				m.Search.Blur()
				return m, nil
			case tea.KeyTab:
				m.SearchIdx = (m.SearchIdx + 1) % len(searchFields)
				return m, nil
			}
		}
		m.Search, cmd = m.Search.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.Err = nil
			m.Status = ""
			return m, m.refreshCmd
		case "/":
			m.Searching = true
			m.Search.SetValue("")
			m.Search.Focus()
			return m, textinput.Blink
		case "m":
			m.MineOnly = !m.MineOnly
			return m, m.refreshCmd
		case "u":
			return m, func() tea.Msg { return UploadRequestedMsg{} }
		case "d":
			return m, m.deleteCmd
		case "q":
			return m, tea.Quit
		}

	case booksLoadedMsg:
		m.Err = nil
		m.Books = msg.Books
		rows := make([]table.Row, 0, len(msg.Books))
		for _, b := range msg.Books {
			rows = append(rows, table.Row{
				strconv.FormatUint(uint64(b.ID), 10),
				b.Title, b.Author, b.Genre,
				strconv.Itoa(b.PublicationYear),
				b.UploaderName,
			})
		}
		m.Table.SetRows(rows)
		if len(rows) == 0 {
			m.Status = "No matches."
		} else {
			m.Status = ""
		}

	case bookDeletedMsg:
		m.Status = "eBook deleted."
		return m, m.refreshCmd

	case errMsg:
		m.Err = msg
	}

	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m DashboardModel) View() string {
	var b strings.Builder
	title := "eBookShare - All Books"
	if m.MineOnly {
		title = "eBookShare - Your Uploads"
	}
	b.WriteString(titleStyle.Render(title) + "\n\n")

	if m.Searching {
		b.WriteString(focusedStyle.Render("Field: "+searchFields[m.SearchIdx]) + "  (Tab to cycle)\n")
		b.WriteString(m.Search.View() + "\n\n")
	}

	b.WriteString(m.Table.View())
	b.WriteString("\n\n")
	b.WriteString(blurredStyle.Render("r refresh · / search · m my uploads · u upload · d delete · q quit"))

	if m.Status != "" {
		b.WriteString("\n" + blurredStyle.Render(m.Status))
	}
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
