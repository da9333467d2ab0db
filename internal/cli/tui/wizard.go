// Package tui implements the interactive module wizard shown when `modkit
// create` runs without arguments on a terminal.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/modkit-dev/modkit/internal/cli/tui/theme"
	"github.com/modkit-dev/modkit/internal/scaffold"
	"github.com/modkit-dev/modkit/pkg/validators"
)

type wizardStep int

const (
	stepName wizardStep = iota
	stepType
	stepDomain
	stepDescription
	stepLayout
	stepDone
)

const totalSteps = 5

// LayoutConfig is one selectable skeleton layout.
type LayoutConfig struct {
	DisplayName string
	MCPServer   bool
	WithDocker  bool
}

var layouts = []LayoutConfig{
	{DisplayName: "Standard (module skeleton only)"},
	{DisplayName: "MCP server (adds server.py, schemas, tools, resources, prompts)", MCPServer: true},
	{DisplayName: "Docker (adds Dockerfile, compose file, k8s manifests)", WithDocker: true},
	{DisplayName: "MCP server + Docker", MCPServer: true, WithDocker: true},
}

// Wizard is a paginated bubbletea model collecting a module specification.
type Wizard struct {
	width  int
	height int

	step   wizardStep
	seed   scaffold.SpecInput
	result scaffold.SpecInput
	ok     bool
	errMsg string

	nameInput        textinput.Model
	domainInput      textinput.Model
	descriptionInput textinput.Model
	typeList         list.Model
	layoutList       list.Model
}

// NewWizard builds the wizard. The seed carries flag and config defaults the
// wizard does not ask for (author, output directory, version).
func NewWizard(seed scaffold.SpecInput) *Wizard {
	mk := func(ph string, w int) textinput.Model {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = ph
		ti.Width = w
		return ti
	}

	typeItems := make([]list.Item, 0, len(scaffold.ModuleTypes()))
	for _, t := range scaffold.ModuleTypes() {
		typeItems = append(typeItems, choiceItem{label: string(t), hint: t.Description()})
	}
	tl := list.New(typeItems, choiceDelegate{}, 60, 10)
	tl.Title = "Module type"
	tl.SetShowStatusBar(false)
	tl.SetFilteringEnabled(false)
	tl.Styles.Title = lipgloss.NewStyle().Bold(true)
	tl.Styles.PaginationStyle = list.DefaultStyles().PaginationStyle.PaddingLeft(2)

	layoutItems := make([]list.Item, 0, len(layouts))
	for _, l := range layouts {
		layoutItems = append(layoutItems, choiceItem{label: l.DisplayName})
	}
	ll := list.New(layoutItems, choiceDelegate{}, 70, 10)
	ll.Title = "Skeleton layout"
	ll.SetShowStatusBar(false)
	ll.SetFilteringEnabled(false)
	ll.Styles.Title = lipgloss.NewStyle().Bold(true)
	ll.Styles.PaginationStyle = list.DefaultStyles().PaginationStyle.PaddingLeft(2)

	w := &Wizard{
		step:             stepName,
		seed:             seed,
		nameInput:        mk("kebab-case name (e.g. user-management)", 50),
		domainInput:      mk("domain label (e.g. billing)", 50),
		descriptionInput: mk("one-line description (optional)", 60),
		typeList:         tl,
		layoutList:       ll,
	}
	w.nameInput.SetValue(seed.Name)
	w.domainInput.SetValue(seed.Domain)
	w.descriptionInput.SetValue(seed.Description)
	w.nameInput.Focus()
	return w
}

// Ok reports whether the wizard completed with a full specification.
func (w *Wizard) Ok() bool { return w.ok }

// Result returns the collected specification input.
func (w *Wizard) Result() scaffold.SpecInput { return w.result }

func (w *Wizard) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles Bubble Tea messages and routes to the current step's components.
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		w.width, w.height = m.Width, m.Height
		w.typeList.SetSize(maxInt(60, m.Width-20), maxInt(8, m.Height-10))
		w.layoutList.SetSize(maxInt(70, m.Width-20), maxInt(8, m.Height-10))
		return w, nil
	case tea.KeyMsg:
		switch m.String() {
		case "esc":
			if w.step == stepName {
				return w, tea.Quit
			}
			w.errMsg = ""
			w.prevStep()
			return w, nil
		case "ctrl+c":
			return w, tea.Quit
		case "enter":
			return w, w.onEnter()
		}
	}

	switch w.step {
	case stepName:
		var cmd tea.Cmd
		w.nameInput, cmd = w.nameInput.Update(msg)
		return w, cmd
	case stepType:
		var cmd tea.Cmd
		w.typeList, cmd = w.typeList.Update(msg)
		return w, cmd
	case stepDomain:
		var cmd tea.Cmd
		w.domainInput, cmd = w.domainInput.Update(msg)
		return w, cmd
	case stepDescription:
		var cmd tea.Cmd
		w.descriptionInput, cmd = w.descriptionInput.Update(msg)
		return w, cmd
	case stepLayout:
		var cmd tea.Cmd
		w.layoutList, cmd = w.layoutList.Update(msg)
		return w, cmd
	}

	return w, nil
}

func (w *Wizard) View() string {
	header := w.renderHeader()
	body := ""
	switch w.step {
	case stepName:
		body = w.labeled("Module name", w.nameInput.View()) + w.errorView()
	case stepType:
		body = w.typeList.View() + w.errorView()
	case stepDomain:
		body = w.labeled("Domain", w.domainInput.View()) + w.errorView()
	case stepDescription:
		body = w.labeled("Description", w.descriptionInput.View()) + "\n" +
			theme.StatusStyle().Render("Press Enter to accept the generated default") + w.errorView()
	case stepLayout:
		body = w.layoutList.View() + w.errorView()
	case stepDone:
		body = theme.HeadingStyle().Render("Done")
	}

	help := theme.HelpStyle().Render("enter: confirm • esc: back • ctrl+c: quit")
	inner := lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", help)

	if w.width == 0 {
		return inner
	}
	boxWidth := min(max(60, (w.width*8)/10), w.width-10)
	box := lipgloss.NewStyle().
		Width(boxWidth).
		Padding(1, 2).
		Render(inner)
	return lipgloss.Place(w.width, w.height, lipgloss.Center, lipgloss.Center, box)
}

// onEnter handles the Enter key by delegating to a step-specific handler.
func (w *Wizard) onEnter() tea.Cmd {
	w.errMsg = ""
	switch w.step {
	case stepName:
		return w.enterName()
	case stepType:
		return w.enterType()
	case stepDomain:
		return w.enterDomain()
	case stepDescription:
		return w.enterDescription()
	case stepLayout:
		return w.enterLayout()
	}
	return nil
}

// enterName validates the kebab-case name before advancing.
func (w *Wizard) enterName() tea.Cmd {
	name := strings.TrimSpace(w.nameInput.Value())
	if err := validators.ValidateModuleName(name); err != nil {
		w.errMsg = err.Error()
		return nil
	}
	w.result.Name = name
	w.step = stepType
	return nil
}

func (w *Wizard) enterType() tea.Cmd {
	if it, ok := w.typeList.SelectedItem().(choiceItem); ok {
		w.result.Type = it.label
		w.step = stepDomain
		w.domainInput.Focus()
	}
	return nil
}

func (w *Wizard) enterDomain() tea.Cmd {
	domain := strings.TrimSpace(w.domainInput.Value())
	if err := validators.ValidateDomain(domain); err != nil {
		w.errMsg = err.Error()
		return nil
	}
	w.result.Domain = domain
	w.step = stepDescription
	w.descriptionInput.Focus()
	return nil
}

// enterDescription accepts an optional description; empty falls back to the
// generated default.
func (w *Wizard) enterDescription() tea.Cmd {
	w.result.Description = strings.TrimSpace(w.descriptionInput.Value())
	w.step = stepLayout
	return nil
}

// enterLayout finalizes the specification and closes the wizard.
func (w *Wizard) enterLayout() tea.Cmd {
	idx := w.layoutList.Index()
	if idx < 0 || idx >= len(layouts) {
		return nil
	}
	layout := layouts[idx]

	w.result.Version = w.seed.Version
	w.result.Author = w.seed.Author
	w.result.Email = w.seed.Email
	w.result.Options = w.seed.Options
	w.result.Options.MCPServer = w.seed.Options.MCPServer || layout.MCPServer
	w.result.Options.WithDocker = w.seed.Options.WithDocker || layout.WithDocker

	w.ok = true
	w.step = stepDone
	return tea.Quit
}

// prevStep moves the wizard back by one step.
func (w *Wizard) prevStep() {
	switch w.step {
	case stepType:
		w.step = stepName
		w.nameInput.Focus()
	case stepDomain:
		w.step = stepType
	case stepDescription:
		w.step = stepDomain
		w.domainInput.Focus()
	case stepLayout:
		w.step = stepDescription
		w.descriptionInput.Focus()
	default:
		w.step = stepName
		w.nameInput.Focus()
	}
}

func (w *Wizard) renderHeader() string {
	pos := int(w.step) + 1
	if pos > totalSteps {
		pos = totalSteps
	}
	title := fmt.Sprintf("Create Module  -  Step %d/%d", pos, totalSteps)
	return theme.HeadingStyle().Render(title)
}

func (w *Wizard) labeled(label, view string) string {
	return lipgloss.JoinHorizontal(lipgloss.Left, theme.StatusStyle().Render(label+": "), view)
}

func (w *Wizard) errorView() string {
	if strings.TrimSpace(w.errMsg) == "" {
		return ""
	}
	return theme.ErrorStyle().Render("\nError: " + w.errMsg)
}

// RunWizard runs the wizard on the current terminal. A nil result without an
// error means the user cancelled.
func RunWizard(seed scaffold.SpecInput) (*scaffold.SpecInput, error) {
	w := NewWizard(seed)
	if _, err := tea.NewProgram(w, tea.WithAltScreen()).Run(); err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}
	if !w.Ok() {
		return nil, nil
	}
	result := w.Result()
	return &result, nil
}

// choice list items
type choiceItem struct {
	label string
	hint  string
}

func (i choiceItem) Title() string       { return i.label }
func (i choiceItem) Description() string { return i.hint }
func (i choiceItem) FilterValue() string { return i.label }

type choiceDelegate struct{}

func (d choiceDelegate) Height() int                             { return 1 }
func (d choiceDelegate) Spacing() int                            { return 0 }
func (d choiceDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d choiceDelegate) Render(out io.Writer, m list.Model, index int, it list.Item) {
	i, ok := it.(choiceItem)
	if !ok {
		return
	}
	str := fmt.Sprintf("%d. %s", index+1, i.Title())
	if i.hint != "" {
		str += theme.StatusStyle().Render("  " + i.hint)
	}
	normal := lipgloss.NewStyle().PaddingLeft(2)
	selected := lipgloss.NewStyle().PaddingLeft(1).Foreground(theme.ColorPrimary)
	if index == m.Index() {
		_, _ = out.Write([]byte(selected.Render("> " + str)))
	} else {
		_, _ = out.Write([]byte(normal.Render(str)))
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
