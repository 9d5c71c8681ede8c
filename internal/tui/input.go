package tui

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/nebulaextract/internal/tui/styles"
)

// ErrAborted is returned when the user cancels interactive input.
var ErrAborted = errors.New("input cancelled")

const maxLineSize = 1 << 20

// Banner is printed before interactive input starts.
func Banner() string {
	return styles.Logo.Render("NebulaExtract (CLI)") + "\n" +
		styles.Subtitle.Render("Paste your text, then send an empty line for confirmation!.") + "\n"
}

// ReadLines collects lines from r until the first blank line or EOF and
// returns them joined and trimmed.
func ReadLines(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// lineCollector is a bubbletea model that gathers lines until an empty one.
type lineCollector struct {
	input   textinput.Model
	lines   []string
	done    bool
	aborted bool
}

func newLineCollector() *lineCollector {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "client text..."
	input.CharLimit = 0
	input.Width = 72
	input.Focus()

	return &lineCollector{input: input}
}

func (m *lineCollector) Init() tea.Cmd {
	return textinput.Blink
}

func (m *lineCollector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.aborted = true
			return m, tea.Quit

		case msg.Paste:
			if m.paste(string(msg.Runes)) {
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, keys.Enter):
			line := m.input.Value()
			m.input.Reset()
			if m.submit(line) {
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		if msg.Width > 4 {
			m.input.Width = msg.Width - 4
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit records one finished line and reports whether input is complete.
func (m *lineCollector) submit(line string) bool {
	line = strings.TrimRight(line, "\r")
	if strings.TrimSpace(line) == "" {
		m.done = true
		return true
	}
	m.lines = append(m.lines, line)
	return false
}

// paste feeds pasted text through the same line rules as typed input.
// Terminals send pasted line breaks as \r, \r\n or \n. The text after the
// last break stays in the input field.
func (m *lineCollector) paste(text string) bool {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	segments := strings.Split(m.input.Value()+text, "\n")
	last := len(segments) - 1
	for _, seg := range segments[:last] {
		if m.submit(seg) {
			m.input.Reset()
			return true
		}
	}
	m.input.SetValue(segments[last])
	m.input.CursorEnd()
	return false
}

func (m *lineCollector) text() string {
	return strings.TrimSpace(strings.Join(m.lines, "\n"))
}

func (m *lineCollector) View() string {
	var b strings.Builder
	for _, line := range m.lines {
		b.WriteString(styles.Subtitle.Render("  " + line))
		b.WriteString("\n")
	}
	if m.done || m.aborted {
		return b.String()
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(keys.helpLine()))
	return b.String()
}

// CollectLines runs an inline bubbletea prompt on a terminal and returns the
// collected text.
func CollectLines(in io.Reader, out io.Writer) (string, error) {
	p := tea.NewProgram(newLineCollector(), tea.WithInput(in), tea.WithOutput(out))

	final, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := final.(*lineCollector)
	if !ok || m.aborted {
		return "", ErrAborted
	}
	return m.text(), nil
}
