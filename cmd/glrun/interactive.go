package main

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type interactiveModel struct {
	err      error
	sess     *session
	output   *bytes.Buffer
	opts     options
	result   string
	funcs    []string
	frames   textinput.Model
	st       styles
	selected int
	state    modelState
}

type modelState int

const (
	stateSelectFunc modelState = iota
	stateInputFrames
	stateShowResult
)

// outputTail is the number of guest output lines shown after a run.
const outputTail = 8

func newInteractiveModel(opts options) *interactiveModel {
	ti := textinput.New()
	ti.Prompt = "frames: "
	ti.Placeholder = "1"
	ti.Width = 12

	out := &bytes.Buffer{}
	opts.stdout = out
	opts.stderr = out

	return &interactiveModel{
		opts:   opts,
		output: out,
		frames: ti,
		st:     colorStyles(),
		state:  stateSelectFunc,
	}
}

type loadedMsg struct {
	err   error
	sess  *session
	funcs []string
}

type callResultMsg struct {
	err    error
	result string
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadModule
}

func (m *interactiveModel) loadModule() tea.Msg {
	s, err := loadSession(context.Background(), m.opts)
	if err != nil {
		return loadedMsg{err: err}
	}
	if err := s.start(m.opts); err != nil {
		s.close()
		return loadedMsg{err: err}
	}
	return loadedMsg{sess: s, funcs: s.functions()}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state != stateInputFrames || msg.String() == "ctrl+c" {
				if m.sess != nil {
					m.sess.close()
				}
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectFunc && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectFunc && m.selected < len(m.funcs)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectFunc:
				if len(m.funcs) == 0 {
					return m, nil
				}
				m.frames.SetValue("")
				m.frames.Focus()
				m.state = stateInputFrames
				return m, textinput.Blink

			case stateInputFrames:
				m.frames.Blur()
				return m, m.callFunction

			case stateShowResult:
				m.state = stateSelectFunc
				m.result = ""
				m.err = nil
			}

		case "esc":
			switch m.state {
			case stateInputFrames:
				m.frames.Blur()
				m.state = stateSelectFunc
			case stateShowResult:
				m.state = stateSelectFunc
				m.result = ""
				m.err = nil
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.sess = msg.sess
		m.funcs = msg.funcs

	case callResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputFrames {
		var cmd tea.Cmd
		m.frames, cmd = m.frames.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) callFunction() tea.Msg {
	if m.sess == nil {
		return callResultMsg{err: fmt.Errorf("module not loaded")}
	}

	count := 1
	if v := strings.TrimSpace(m.frames.Value()); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return callResultMsg{err: fmt.Errorf("invalid frame count %q", v)}
		}
		count = n
	}

	m.output.Reset()
	stats, err := m.sess.run(m.funcs[m.selected], count)
	return callResultMsg{result: renderStats(stats, m.st), err: err}
}

func (m *interactiveModel) View() string {
	if m.err != nil && m.state != stateShowResult {
		return m.st.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.sess == nil {
		return "Loading module..."
	}

	var b strings.Builder

	b.WriteString(m.st.title.Render("GL Runner"))
	b.WriteString(" ")
	b.WriteString(m.opts.wasmFile)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectFunc:
		b.WriteString(renderImports(m.sess.imports, m.st))
		b.WriteString("\nSelect a function to run:\n\n")
		if len(m.funcs) == 0 {
			b.WriteString(m.st.warn.Render("  no exported functions without parameters"))
			b.WriteString("\n")
		}
		for i, f := range m.funcs {
			if i == m.selected {
				b.WriteString(m.st.title.Render("> " + f))
			} else {
				b.WriteString("  " + m.st.ok.Render(f))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.st.help.Render("↑/↓ select • enter run • q quit"))

	case stateInputFrames:
		fmt.Fprintf(&b, "Running %s\n\n", m.st.ok.Render(m.funcs[m.selected]))
		b.WriteString(m.frames.View())
		b.WriteString("\n\n")
		b.WriteString(m.st.help.Render("enter run • esc back"))

	case stateShowResult:
		fmt.Fprintf(&b, "Ran %s:\n\n", m.st.ok.Render(m.funcs[m.selected]))
		b.WriteString(m.result)
		if m.err != nil {
			b.WriteString(m.st.err.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n")
		}
		if tail := lastLines(m.output.String(), outputTail); tail != "" {
			b.WriteString("\n")
			b.WriteString(m.st.label.Render("guest output"))
			b.WriteString("\n")
			b.WriteString(tail)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.st.help.Render("enter continue • q quit"))
	}

	return b.String()
}

func lastLines(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}

func runInteractive(opts options) error {
	p := tea.NewProgram(newInteractiveModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
