// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package tui is the full-screen curriculum editor. It is a thin view over
// program.Program; every mutation goes through the same Move/Rename
// operations the menu editor uses.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/staranto/tpctlgo/internal/program"
)

type mode int

const (
	modeNormal mode = iota
	modeRename
)

type Editor struct {
	program *program.Program
	cursor  int
	mode    mode

	input  textinput.Model
	status string
	isErr  bool

	width  int
	height int
}

// NewEditor builds the model for the given curriculum.
func NewEditor(p *program.Program) *Editor {
	ti := textinput.New()
	ti.Prompt = renamePromptStyle.Render("rename: ")
	ti.CharLimit = 100

	return &Editor{
		program: p,
		input:   ti,
	}
}

// Run launches the editor and blocks until the user quits.
func Run(p *program.Program) error {
	_, err := tea.NewProgram(NewEditor(p), tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("editor failed: %w", err)
	}
	return nil
}

func (e *Editor) Init() tea.Cmd {
	return nil
}

func (e *Editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.width = msg.Width
		e.height = msg.Height
		return e, nil

	case tea.KeyMsg:
		if e.mode == modeRename {
			return e.updateRename(msg)
		}
		return e.updateNormal(msg)
	}

	return e, nil
}

func (e *Editor) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return e, tea.Quit

	case "up", "k":
		if e.cursor > 0 {
			e.cursor--
		}
		e.setStatus("", false)

	case "down", "j":
		if e.cursor < e.program.Len()-1 {
			e.cursor++
		}
		e.setStatus("", false)

	case "shift+up", "K":
		e.move(e.cursor + 1, e.cursor)

	case "shift+down", "J":
		e.move(e.cursor + 1, e.cursor + 2)

	case "r":
		week, err := e.program.Week(e.cursor + 1)
		if err != nil {
			e.setStatus(err.Error(), true)
			break
		}
		e.mode = modeRename
		e.input.SetValue(week.Name)
		e.input.CursorEnd()
		return e, e.input.Focus()
	}

	return e, nil
}

func (e *Editor) updateRename(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		e.mode = modeNormal
		e.input.Blur()
		e.setStatus("rename cancelled", false)
		return e, nil

	case "enter":
		err := e.program.Rename(e.cursor+1, e.input.Value())
		if err != nil {
			e.setStatus(err.Error(), true)
		} else {
			e.setStatus("renamed", false)
		}
		e.mode = modeNormal
		e.input.Blur()
		return e, nil
	}

	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return e, cmd
}

// move runs a reposition and keeps the cursor on the moved week. Bounds
// errors from the program surface in the status bar.
func (e *Editor) move(from, to int) {
	if to < 1 || to > e.program.Len() {
		return
	}
	if err := e.program.Move(from, to); err != nil {
		e.setStatus(err.Error(), true)
		return
	}
	e.cursor = to - 1
	e.setStatus(fmt.Sprintf("moved to position %d", to), false)
}

func (e *Editor) setStatus(s string, isErr bool) {
	e.status = s
	e.isErr = isErr
}

func (e *Editor) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("TRAINING PROGRAM"))
	b.WriteString("\n\n")

	for i, w := range e.program.Weeks() {
		line := fmt.Sprintf("%s %s",
			positionStyle.Render(fmt.Sprintf("Week %d:", w.Position)), w.Name)
		if i == e.cursor {
			b.WriteString(itemSelectedStyle.Render("> " + line))
		} else {
			b.WriteString(itemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")

	if e.mode == modeRename {
		b.WriteString(e.input.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter save · esc cancel"))
		return b.String()
	}

	if e.status != "" {
		if e.isErr {
			b.WriteString(errorStyle.Render(e.status))
		} else {
			b.WriteString(statusStyle.Render(e.status))
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("j/k move cursor · J/K move week · r rename · q quit"))
	return b.String()
}
