// Package tui is the local chat mode: the same conversation the Telegram bot
// has, in the terminal.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// ReplyFunc produces the bot's reply for one input line. recognized reports
// whether a reminder was extracted (drives the reply style).
type ReplyFunc func(text string) (reply string, recognized bool)

type exchange struct {
	input      string
	reply      string
	recognized bool
}

type Chat struct {
	input   textarea.Model
	history []exchange
	replyFn ReplyFunc
}

func NewChat(replyFn ReplyFunc) *Chat {
	ta := textarea.New()
	ta.Placeholder = "сходить в магазин завтра в 10:30"
	ta.Focus()
	ta.CharLimit = 500
	ta.SetWidth(60)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false

	return &Chat{
		input:   ta,
		replyFn: replyFn,
	}
}

func (c *Chat) Init() tea.Cmd {
	return c.input.Focus()
}

func (c *Chat) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c", "esc":
			return c, tea.Quit
		case "enter":
			text := strings.TrimSpace(c.input.Value())
			if text == "" {
				return c, nil
			}
			reply, recognized := c.replyFn(text)
			c.history = append(c.history, exchange{
				input:      text,
				reply:      reply,
				recognized: recognized,
			})
			c.input.Reset()
			return c, nil
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *Chat) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("prophet-bot"))
	b.WriteString("\n")

	for _, e := range c.history {
		b.WriteString(userStyle.Render("> " + e.input))
		b.WriteString("\n")
		if e.recognized {
			b.WriteString(botStyle.Render(e.reply))
		} else {
			b.WriteString(apologyStyle.Render(e.reply))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(c.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Enter: отправить • Esc: выход"))

	return b.String()
}
