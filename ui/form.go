// Package ui implements the interactive front end for the ASCII art
// generator: a terminal form with adjustable parameters, output
// toggles, and a preview pane. Generation runs on a background worker
// whose completion message is applied on the event loop; no UI state is
// touched from the worker.
package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	digitalavator "github.com/CMouse123456/DigitalAvator"
)

// Form rows, in display and focus order.
const (
	rowInputPath = iota
	rowOutputDir
	rowWidth
	rowContrast
	rowGamma
	rowFontSize
	rowPreview
	rowSaveText
	rowSaveImage
	rowGenerate
	rowCount
)

// param is a slider-like numeric field adjusted in fixed steps within
// a closed range.
type param struct {
	label   string
	value   float64
	min     float64
	max     float64
	step    float64
	integer bool
}

func (p *param) increase() {
	p.value = math.Min(p.value+p.step, p.max)
}

func (p *param) decrease() {
	p.value = math.Max(p.value-p.step, p.min)
}

func (p param) display() string {
	if p.integer {
		return fmt.Sprintf("%d", int(math.Round(p.value)))
	}
	return fmt.Sprintf("%.1f", p.value)
}

// doneMsg carries the outcome of one background generation back to the
// event loop.
type doneMsg struct {
	result *digitalavator.Result
	err    error
}

// Model is the bubbletea model for the generator form.
type Model struct {
	styles Styles

	inputPath textinput.Model
	outputDir textinput.Model
	params    []param
	toggles   []bool

	cursor  int
	busy    bool
	status  string
	failed  bool
	preview viewport.Model
	ready   bool
}

// New creates the form with the standard parameter ranges and all
// output artifacts enabled.
func New(styles Styles) Model {
	input := textinput.New()
	input.Placeholder = "path to image (jpg, png, bmp)"
	input.CharLimit = 0
	input.Width = 48
	input.Focus()

	outDir := textinput.New()
	outDir.Placeholder = "output directory"
	outDir.CharLimit = 0
	outDir.Width = 48
	outDir.SetValue(".")

	return Model{
		styles:    styles,
		inputPath: input,
		outputDir: outDir,
		params: []param{
			{label: "Width", value: digitalavator.DefaultOutputWidth, min: 50, max: 500, step: 10, integer: true},
			{label: "Contrast", value: digitalavator.DefaultContrast, min: 0.5, max: 3.0, step: 0.1},
			{label: "Gamma", value: digitalavator.DefaultGamma, min: 0.1, max: 2.0, step: 0.1},
			{label: "Font size", value: digitalavator.DefaultFontSize, min: 4, max: 24, step: 1, integer: true},
		},
		toggles: []bool{true, true, true},
		status:  "Ready: choose an image and press enter on Generate",
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// generateCmd dispatches one pipeline invocation onto a background
// worker. The returned command posts a doneMsg when the worker
// finishes; the model applies it on the event loop.
func (m Model) generateCmd() tea.Cmd {
	g := digitalavator.NewGenerator(
		digitalavator.WithOutputWidth(int(math.Round(m.params[0].value))),
		digitalavator.WithContrast(m.params[1].value),
		digitalavator.WithGamma(m.params[2].value),
		digitalavator.WithFontSize(int(math.Round(m.params[3].value))),
		digitalavator.WithOutputDir(m.outputDir.Value()),
		digitalavator.WithArtifacts(m.toggles[0], m.toggles[1], m.toggles[2]),
	)
	path := m.inputPath.Value()
	return func() tea.Msg {
		res, err := g.Generate(path)
		return doneMsg{result: res, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := msg.Width - 4
		height := msg.Height - 18
		if width < 10 {
			width = 10
		}
		if height < 3 {
			height = 3
		}
		if !m.ready {
			m.preview = viewport.New(width, height)
			m.ready = true
		} else {
			m.preview.Width = width
			m.preview.Height = height
		}
		return m, nil

	case doneMsg:
		m.busy = false
		if msg.err != nil {
			m.failed = true
			m.status = "Error: " + msg.err.Error()
			return m, nil
		}
		m.failed = false
		m.status = m.doneStatus(msg.result)
		if msg.result.Preview != nil {
			m.preview.SetContent(strings.Join(msg.result.Preview, "\n"))
			m.preview.GotoTop()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) doneStatus(res *digitalavator.Result) string {
	written := make([]string, 0, 2)
	if res.TextPath != "" {
		written = append(written, res.TextPath)
	}
	if res.ImagePath != "" {
		written = append(written, res.ImagePath)
	}
	if len(written) == 0 {
		return fmt.Sprintf("Done: %d lines generated", len(res.Lines))
	}
	return "Done: wrote " + strings.Join(written, ", ")
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyUp, tea.KeyShiftTab:
		m.moveCursor(-1)
		return m, nil

	case tea.KeyDown, tea.KeyTab:
		m.moveCursor(1)
		return m, nil

	case tea.KeyLeft:
		if i, ok := paramIndex(m.cursor); ok {
			m.params[i].decrease()
		}
		return m, nil

	case tea.KeyRight:
		if i, ok := paramIndex(m.cursor); ok {
			m.params[i].increase()
		}
		return m, nil

	case tea.KeySpace:
		if i, ok := toggleIndex(m.cursor); ok {
			m.toggles[i] = !m.toggles[i]
			return m, nil
		}

	case tea.KeyEnter:
		if m.cursor == rowGenerate && !m.busy {
			m.busy = true
			m.failed = false
			m.status = "Working..."
			return m, m.generateCmd()
		}
	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}

	// Remaining keys edit whichever path field is focused.
	var cmd tea.Cmd
	switch m.cursor {
	case rowInputPath:
		m.inputPath, cmd = m.inputPath.Update(msg)
	case rowOutputDir:
		m.outputDir, cmd = m.outputDir.Update(msg)
	}
	return m, cmd
}

func (m *Model) moveCursor(delta int) {
	m.cursor = (m.cursor + delta + rowCount) % rowCount
	if m.cursor == rowInputPath {
		m.inputPath.Focus()
	} else {
		m.inputPath.Blur()
	}
	if m.cursor == rowOutputDir {
		m.outputDir.Focus()
	} else {
		m.outputDir.Blur()
	}
}

func paramIndex(cursor int) (int, bool) {
	if cursor >= rowWidth && cursor <= rowFontSize {
		return cursor - rowWidth, true
	}
	return 0, false
}

func toggleIndex(cursor int) (int, bool) {
	if cursor >= rowPreview && cursor <= rowSaveImage {
		return cursor - rowPreview, true
	}
	return 0, false
}

var toggleLabels = []string{"Preview", "Save text file", "Save PNG image"}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("DigitalAvator"))
	b.WriteString("\n")

	b.WriteString(m.renderRow(rowInputPath, "Input image", m.inputPath.View()))
	b.WriteString(m.renderRow(rowOutputDir, "Output dir", m.outputDir.View()))

	for i, p := range m.params {
		value := fmt.Sprintf("◄ %s ►", p.display())
		b.WriteString(m.renderRow(rowWidth+i, p.label, value))
	}

	for i, label := range toggleLabels {
		mark := "[ ]"
		if m.toggles[i] {
			mark = "[x]"
		}
		b.WriteString(m.renderRow(rowPreview+i, label, mark))
	}

	generate := "Generate"
	if m.busy {
		generate = "Generating..."
	}
	b.WriteString(m.renderRow(rowGenerate, "", generate))

	status := m.styles.Status
	if m.failed {
		status = m.styles.Error
	}
	b.WriteString(status.Render(m.status))
	b.WriteString("\n")

	if m.ready && m.preview.TotalLineCount() > 0 {
		b.WriteString(m.styles.Preview.Render(m.preview.View()))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render(
		"tab/↑↓ move · ←/→ adjust · space toggle · enter generate · pgup/pgdn scroll · esc quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderRow(row int, label, value string) string {
	cursor := "  "
	labelStyle := m.styles.Label
	if row == m.cursor {
		cursor = "> "
		labelStyle = m.styles.Selected
	}
	if label == "" {
		return fmt.Sprintf("%s%s\n", cursor, labelStyle.Render(value))
	}
	return fmt.Sprintf("%s%s %s\n",
		cursor,
		labelStyle.Render(lipgloss.NewStyle().Width(12).Render(label)),
		m.styles.Value.Render(value))
}
