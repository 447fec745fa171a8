package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/anikatabassum/maatricare/internal/agent"
	"github.com/anikatabassum/maatricare/internal/cli/formatter"
	"github.com/anikatabassum/maatricare/internal/domain"
)

// replyMsg delivers one finished assistant reply to the chat model.
type replyMsg struct {
	intent domain.Intent
	text   string
}

// chatModel is the bubbletea model for the interactive chat session.
type chatModel struct {
	app      *App
	input    textinput.Model
	messages []string
	waiting  bool
}

func newChatModel(app *App) *chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500
	ti.Placeholder = "Ask about nutrition, exercise, mood, or appointments..."

	m := &chatModel{app: app, input: ti}
	m.messages = append(m.messages,
		formatter.Header("MaatriCare"),
		formatter.Dim("Type your question, /profile to review your profile, /quit to leave."),
	)
	return m
}

func (m *chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.waiting {
				return m, nil
			}
			input := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if input == "" {
				return m, nil
			}
			return m.handleInput(input)
		}

	case replyMsg:
		m.waiting = false
		m.messages = append(m.messages, formatter.FormatReply(msg.intent, msg.text), "")
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *chatModel) View() string {
	var b strings.Builder

	for _, msg := range m.messages {
		b.WriteString(msg)
		b.WriteString("\n")
	}

	if m.waiting {
		b.WriteString(formatter.Dim("Thinking...") + "\n")
	}

	prompt := formatter.StylePurple.Render("you") + formatter.Dim("> ")
	b.WriteString(prompt)
	b.WriteString(m.input.View())

	return b.String()
}

func (m *chatModel) handleInput(input string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(input) {
	case "/quit", "/exit", "/q", "quit", "exit":
		return m, tea.Quit
	case "/profile":
		m.messages = append(m.messages, formatter.FormatProfile(m.app.Store.Profile(), m.app.Store.Medical()))
		return m, nil
	case "/stats":
		m.messages = append(m.messages, formatter.FormatStats(m.app.Monitor.Stats()))
		return m, nil
	}

	m.messages = append(m.messages, formatter.Dim("You: ")+input)
	m.waiting = true

	app := m.app
	return m, func() tea.Msg {
		reply := app.Assistant.Respond(context.Background(), input)
		return replyMsg{intent: agent.ClassifyIntent(input), text: reply}
	}
}
