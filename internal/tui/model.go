package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"geo/internal/geo"
)

const maxLogLines = 200

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

type Model struct {
	g        *geo.Game
	last     []geo.Square // 最近一步，棋盘上标出
	input    textinput.Model
	logLines []string

	width  int
	height int
}

func NewModel(g *geo.Game) Model {
	ti := textinput.New()
	ti.Placeholder = "2c2e / R5h / undo / help"
	ti.Prompt = "> "
	ti.CharLimit = 200
	ti.Width = 60
	ti.Focus()

	return Model{
		g:        g,
		input:    ti,
		logLines: []string{"ready (type help for commands)"},
	}
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = min(80, max(30, m.width-4))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.input.SetValue("")
			return m, nil
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			if m.execCommand(line) {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// execCommand 执行一行输入；返回 true 表示退出
func (m *Model) execCommand(line string) bool {
	m.appendLog("> " + line)

	parts := strings.Fields(line)
	switch parts[0] {
	case "q", "quit", "exit":
		return true

	case "help":
		m.appendLog("  <from><to>[=L]  e.g. 2c2e, 3j3k=D")
		m.appendLog("  <notation>      e.g. 2e, R5h, Cx1k")
		m.appendLog("  undo | reset | load <gfen> | gfen | moves | history | q")

	case "undo":
		res, ok := m.g.Undo()
		if !ok {
			m.appendError("nothing to undo")
			return false
		}
		m.last = nil
		m.appendLog("undo " + res.Notation)

	case "reset":
		m.g.Reset()
		m.last = nil
		m.appendLog("reset to initial position")

	case "load":
		gfen := strings.TrimSpace(strings.TrimPrefix(line, "load"))
		if err := m.g.Load(gfen); err != nil {
			m.appendError(err.Error())
			return false
		}
		m.last = nil
		m.appendLog("loaded " + m.g.GFEN())

	case "gfen":
		m.appendLog(m.g.GFEN())

	case "moves":
		m.appendLog(strings.Join(m.g.Moves(geo.GenOptions{}), " "))

	case "history":
		m.appendLog(formatHistory(m.g.History()))

	default:
		m.play(line)
	}
	return false
}

func (m *Model) play(text string) {
	if m.g.Eliminated() {
		m.appendError("game is over")
		return
	}
	res, ok := m.g.MoveSAN(text)
	if !ok {
		m.appendError(fmt.Sprintf("illegal move: %s", text))
		return
	}
	from, _ := geo.ParseSquare(res.From)
	to, _ := geo.ParseSquare(res.To)
	m.last = []geo.Square{from, to}
	m.appendLog(fmt.Sprintf("%s %s (%s-%s)", res.Color, res.Notation, res.From, res.To))

	switch {
	case m.g.Eliminated():
		m.appendLog(fmt.Sprintf("%s eliminated, %s wins", m.g.Loser(), m.g.Loser().Opposite()))
	case m.g.InDraw():
		m.appendLog("draw")
	}
}

// formatHistory 每回合一行："1. 2e R5h"
func formatHistory(moves []string) string {
	if len(moves) == 0 {
		return "(no moves)"
	}
	var b strings.Builder
	for i := 0; i < len(moves); i += 2 {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d. %s", i/2+1, moves[i])
		if i+1 < len(moves) {
			b.WriteString(" " + moves[i+1])
		}
	}
	return b.String()
}

func (m *Model) appendLog(s string) {
	m.logLines = append(m.logLines, s)
	if len(m.logLines) > maxLogLines {
		m.logLines = m.logLines[len(m.logLines)-maxLogLines:]
	}
}

func (m *Model) appendError(s string) {
	m.appendLog(errStyle.Render("error: " + s))
}

func (m Model) status() string {
	switch {
	case m.g.Eliminated():
		return fmt.Sprintf("%s wins", m.g.Loser().Opposite())
	case m.g.InDraw():
		return "draw"
	}
	pos := m.g.Position()
	return fmt.Sprintf("%s to move  move:%d  half:%d", m.g.Turn(), pos.MoveNumber, pos.HalfMoves)
}

func (m Model) View() string {
	header := titleStyle.Render("geo  " + m.status())

	pos := m.g.Position()
	board := boxStyle.Render(RenderBoard(&pos, m.last...))

	logHeight := max(5, m.height-16)
	logStart := max(0, len(m.logLines)-logHeight)
	logBody := strings.Join(m.logLines[logStart:], "\n")
	logBox := boxStyle.Width(max(20, m.width-28)).Height(logHeight).Render(logBody)

	body := lipgloss.JoinHorizontal(lipgloss.Top, board, logBox)
	inputBox := boxStyle.Width(max(20, m.width-2)).Render(m.input.View())

	return header + "\n" + body + "\n" + inputBox + "\n"
}
