package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	m "recase.dev/pkg/recase/internal/model"
)

// pagerChrome is the number of lines the pager reserves for its title and
// footer.
const pagerChrome = 4

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	pathStyle  = lipgloss.NewStyle().Bold(true)
	countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	mutedStyle = lipgloss.NewStyle().Faint(true)
)

var styledPalette = palette{
	path:  render(pathStyle),
	count: render(countStyle),
	warn:  render(warnStyle),
	muted: render(mutedStyle),
}

func render(style lipgloss.Style) func(string) string {
	return func(s string) string { return style.Render(s) }
}

// TUI implements UI with styled output and a Bubble Tea pager for tables
// that do not fit the terminal.
type TUI struct {
	output io.Writer
	width  int
	height int
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	t := &TUI{output: output}

	if f, ok := output.(*os.File); ok {
		width, height, err := term.GetSize(f.Fd())
		if err == nil {
			t.width = width
			t.height = height
		}
	}

	return t
}

func (t *TUI) report() reporter {
	return reporter{out: t.output, paint: styledPalette}
}

// DisplayTargets prints how many files each target set resolved to.
func (t *TUI) DisplayTargets(ctx context.Context, selections []m.Selection) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.report().targets(selections)
}

// DisplayMissingFile reports a target file that does not exist.
func (t *TUI) DisplayMissingFile(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.report().missing(path)
}

// DisplayFileStart prints the progress line for path.
func (t *TUI) DisplayFileStart(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.report().start(path)
}

// DisplayFileResult prints the per-entry counts of one file.
func (t *TUI) DisplayFileResult(ctx context.Context, file m.FileSummary) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.report().fileResult(file)
}

// DisplayRunSummary prints the grand total.
func (t *TUI) DisplayRunSummary(ctx context.Context, summary m.RunSummary) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.report().runSummary(summary)
}

// DisplayEstimation shows the dry-run table, paged when it is taller than
// the terminal.
func (t *TUI) DisplayEstimation(ctx context.Context, summary m.RunSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return t.show("Pending changes", renderEstimationTable(summary))
}

// DisplayAudit shows the spelling audit findings.
func (t *TUI) DisplayAudit(ctx context.Context, findings []m.Inconsistency) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(findings) == 0 {
		_, err := fmt.Fprintln(t.output, countStyle.Render("No unconverted spellings found"))
		return err
	}

	return t.show("Unconverted spellings", renderAuditTable(findings))
}

func (t *TUI) show(title, body string) error {
	model := newPagerModel(title, body, t.width, t.height)

	// If the content is small, just print and exit
	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.staticView())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// pagerModel is the Bubble Tea model scrolling a rendered table.
type pagerModel struct {
	title    string
	body     string
	lines    int
	height   int
	viewport viewport.Model
	quitting bool
}

func newPagerModel(title, body string, width, height int) pagerModel {
	vp := viewport.New(width, max(height-pagerChrome, 1))
	vp.SetContent(body)

	return pagerModel{
		title:    title,
		body:     body,
		lines:    strings.Count(body, "\n"),
		height:   height,
		viewport: vp,
	}
}

func (pm pagerModel) needsPagination() bool {
	return pm.height > 0 && pm.lines > pm.height-pagerChrome
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.height = msg.Height
		pm.viewport.Width = msg.Width
		pm.viewport.Height = max(msg.Height-pagerChrome, 1)

		return pm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			pm.quitting = true
			return pm, tea.Quit
		case "g", "home":
			pm.viewport.GotoTop()
			return pm, nil
		case "G", "end":
			pm.viewport.GotoBottom()
			return pm, nil
		}
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) staticView() string {
	return titleStyle.Render(pm.title) + "\n\n" + pm.body
}

func (pm pagerModel) View() string {
	if pm.quitting {
		return ""
	}

	footer := mutedStyle.Render(fmt.Sprintf("%3.f%% | ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit", pm.viewport.ScrollPercent()*100))

	return titleStyle.Render(pm.title) + "\n\n" + pm.viewport.View() + "\n" + footer
}
