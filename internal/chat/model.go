// Package chat implements the simulated admin/mentor chat panel as a
// bubbletea model. Messages live only in memory; every outgoing message is
// answered with a canned reply after a delay.
package chat

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/edpay/internal/cli/formatter"
	"github.com/alexanderramin/edpay/internal/payout"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	AutoReply      = "Thank you for your message! I'll look into this and get back to you soon."
	adminName      = "Admin"
	selfName       = "You"
	seedQuestion   = "Hello there! I had a question about my recent payout."
	seedAnswer     = "Hi! Sure, what would you like to know?"
	defaultWidth   = 72
	defaultHeight  = 14
	chromeHeight   = 5
	inputCharLimit = 1000
)

// Message is one chat line.
type Message struct {
	ID      string
	Sender  string
	Content string
	At      time.Time
}

// Config selects the chat perspective. With MentorView the signed-in user is
// a mentor talking to "Admin"; otherwise the admin is talking to MentorName.
type Config struct {
	MentorName string
	MentorView bool
	ReplyDelay time.Duration
	Clock      payout.Clock
	IDs        payout.IDGenerator
}

// replyMsg fires when the simulated peer answers.
type replyMsg struct{}

type keyMap struct {
	Send key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Send: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		Quit: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// Model is the chat panel.
type Model struct {
	cfg      Config
	keys     keyMap
	input    textinput.Model
	vp       viewport.Model
	messages []Message
	status   string
	pending  int
	quitting bool
}

// New returns a chat seeded with the two-message opening exchange, one hour
// and thirty minutes before now.
func New(cfg Config) Model {
	cfg.Clock = payout.ClockOrSystem(cfg.Clock)
	cfg.IDs = payout.IDsOrUUID(cfg.IDs)
	if cfg.ReplyDelay < 0 {
		cfg.ReplyDelay = 0
	}

	ti := textinput.New()
	ti.Placeholder = "Type your message..."
	ti.Prompt = "> "
	ti.CharLimit = inputCharLimit
	ti.Focus()

	vp := viewport.New(defaultWidth, defaultHeight)
	vp.KeyMap = scrollKeyMap()

	now := cfg.Clock.Now()
	m := Model{cfg: cfg, keys: defaultKeyMap(), input: ti, vp: vp}
	m.messages = []Message{
		{ID: "1", Sender: m.peer(), Content: seedQuestion, At: now.Add(-time.Hour)},
		{ID: "2", Sender: m.self(), Content: seedAnswer, At: now.Add(-30 * time.Minute)},
	}
	m.refresh()
	return m
}

// Messages returns a copy of the conversation so far.
func (m Model) Messages() []Message {
	out := make([]Message, len(m.messages))
	copy(out, m.messages)
	return out
}

// Title is the panel heading.
func (m Model) Title() string {
	if m.cfg.MentorView {
		return "Chat with " + adminName
	}
	return "Chat with " + m.cfg.MentorName
}

func (m Model) self() string {
	if m.cfg.MentorView {
		return selfName
	}
	return adminName
}

func (m Model) peer() string {
	if m.cfg.MentorView {
		return adminName
	}
	return m.cfg.MentorName
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.vp.Width = msg.Width
		m.vp.Height = max(msg.Height-chromeHeight, 1)
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 1)
		m.refresh()
		return m, nil

	case replyMsg:
		if m.pending > 0 {
			m.pending--
		}
		m.append(m.peer(), AutoReply)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Send):
			return m.send()
		case isScrollKey(msg):
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// send posts the input as the user's message and schedules the reply.
// Blank input is ignored.
func (m Model) send() (tea.Model, tea.Cmd) {
	text := m.input.Value()
	if strings.TrimSpace(text) == "" {
		return m, nil
	}
	m.input.Reset()
	m.append(m.self(), text)
	m.status = "Message sent to " + m.peer()
	m.pending++
	return m, tea.Tick(m.cfg.ReplyDelay, func(time.Time) tea.Msg { return replyMsg{} })
}

func (m *Model) append(sender, content string) {
	m.messages = append(m.messages, Message{
		ID:      m.cfg.IDs.NewID(),
		Sender:  sender,
		Content: content,
		At:      m.cfg.Clock.Now(),
	})
	m.refresh()
}

func (m *Model) refresh() {
	m.vp.SetContent(m.renderMessages())
	m.vp.GotoBottom()
}

var (
	ownStyle  = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorBlue).Padding(0, 1)
	peerStyle = lipgloss.NewStyle().Foreground(formatter.ColorFg).Padding(0, 1)
)

func (m Model) renderMessages() string {
	width := m.vp.Width
	bubbleWidth := max(width*4/5, 10)

	var b strings.Builder
	for i, msg := range m.messages {
		if i > 0 {
			b.WriteString("\n")
		}
		meta := fmt.Sprintf("%s  %s", msg.Sender, formatter.Dim(msg.At.Local().Format("15:04:05")))
		style := peerStyle
		align := lipgloss.Left
		if msg.Sender == m.self() {
			style = ownStyle
			align = lipgloss.Right
		}
		bubble := lipgloss.JoinVertical(lipgloss.Left, meta, style.Width(bubbleWidth).Render(msg.Content))
		b.WriteString(lipgloss.PlaceHorizontal(width, align, bubble))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(formatter.Header(m.Title()))
	b.WriteString("\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	if m.pending > 0 {
		b.WriteString(formatter.Dim(m.peer() + " is typing..."))
	} else if m.status != "" {
		b.WriteString(formatter.StyleGreen.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(formatter.Dim("enter send · esc quit · pgup/pgdown scroll"))
	return b.String()
}

// scrollKeyMap leaves letter keys to the text input.
func scrollKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}

func isScrollKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown, tea.KeyCtrlU, tea.KeyCtrlD:
		return true
	}
	return false
}
