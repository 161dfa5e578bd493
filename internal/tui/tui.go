package tui

import (
	"fmt"
	"strings"

	"github.com/atinylittleshell/treecomp/pkg/fscomplete"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// maxVisibleSuggestions bounds how many suggestions are rendered at once.
const maxVisibleSuggestions = 10

// Model is the bubbletea model for the interactive completion prompt. The
// user types a path; completions refresh on every keystroke, tab and the
// arrow keys cycle through them, enter accepts the highlighted one.
type Model struct {
	input     textinput.Model
	completer *fscomplete.Completer
	cwd       string
	logger    *zap.Logger

	suggestions []string
	selected    int
	fuzzied     bool // suggestions came from the fuzzy fallback

	accepted string
	done     bool
}

// NewModel creates the prompt model.
func NewModel(completer *fscomplete.Completer, cwd string, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	input := textinput.New()
	input.Prompt = PromptStyle.Render("> ")
	input.Placeholder = "type a path"
	input.Focus()

	m := Model{
		input:     input,
		completer: completer,
		cwd:       cwd,
		logger:    logger,
		selected:  -1,
	}
	m.refreshSuggestions()
	return m
}

// Accepted returns the value the user accepted, or "" if they quit.
func (m Model) Accepted() string {
	return m.accepted
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.done = true
			return m, tea.Quit

		case tea.KeyEnter:
			if m.selected >= 0 && m.selected < len(m.suggestions) {
				m.applySelected()
				return m, nil
			}
			m.accepted = m.input.Value()
			m.done = true
			return m, tea.Quit

		case tea.KeyTab, tea.KeyDown:
			m.cycle(1)
			return m, nil

		case tea.KeyShiftTab, tea.KeyUp:
			m.cycle(-1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refreshSuggestions()
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")

	visible := m.suggestions
	if len(visible) > maxVisibleSuggestions {
		visible = visible[:maxVisibleSuggestions]
	}

	for i, suggestion := range visible {
		if i == m.selected {
			b.WriteString(SelectedStyle.Render("▸ " + suggestion))
		} else {
			b.WriteString(ItemStyle.Render("  " + suggestion))
		}
		b.WriteString("\n")
	}

	switch {
	case len(m.suggestions) == 0:
		b.WriteString(DimStyle.Render("  no matches"))
	case m.fuzzied:
		b.WriteString(DimStyle.Render(fmt.Sprintf("  %d fuzzy matches", len(m.suggestions))))
	case len(m.suggestions) > maxVisibleSuggestions:
		b.WriteString(DimStyle.Render(fmt.Sprintf("  %d more…", len(m.suggestions)-maxVisibleSuggestions)))
	default:
		b.WriteString(DimStyle.Render(fmt.Sprintf("  %d matches", len(m.suggestions))))
	}
	b.WriteString("\n")
	b.WriteString(DimStyle.Render("tab: cycle · enter: accept · esc: quit"))

	return b.String()
}

// cycle moves the selection by delta, wrapping around the suggestion list.
func (m *Model) cycle(delta int) {
	if len(m.suggestions) == 0 {
		return
	}
	m.selected += delta
	if m.selected >= len(m.suggestions) {
		m.selected = 0
	}
	if m.selected < 0 {
		m.selected = len(m.suggestions) - 1
	}
}

// applySelected replaces the input with the highlighted suggestion. If the
// suggestion is a directory the cursor ends up right after the separator,
// ready to descend further.
func (m *Model) applySelected() {
	m.input.SetValue(m.suggestions[m.selected])
	m.input.CursorEnd()
	m.refreshSuggestions()
}

// refreshSuggestions recomputes the completion list for the current input.
// When strict prefix completion finds nothing, it falls back to fuzzy
// matching within the innermost directory the user has typed so far.
func (m *Model) refreshSuggestions() {
	word := m.input.Value()

	suggestions := m.completer.Complete(word, m.cwd)
	m.fuzzied = false
	if len(suggestions) == 0 {
		suggestions = m.fuzzySuggestions(word)
		m.fuzzied = len(suggestions) > 0
	}

	m.suggestions = suggestions
	m.selected = -1
	m.logger.Debug(
		"suggestions refreshed",
		zap.String("word", word),
		zap.Int("count", len(suggestions)),
		zap.Bool("fuzzy", m.fuzzied),
	)
}

// Run drives the interactive prompt and returns the accepted path, or ""
// if the user quit without accepting.
func Run(completer *fscomplete.Completer, cwd string, logger *zap.Logger) (string, error) {
	program := tea.NewProgram(NewModel(completer, cwd, logger))
	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("completion prompt failed: %w", err)
	}

	model, ok := final.(Model)
	if !ok {
		return "", fmt.Errorf("unexpected model type %T", final)
	}
	return model.Accepted(), nil
}
