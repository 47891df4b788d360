package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"queryopt/pkg/catalog"
	"queryopt/pkg/costmodel"
	"queryopt/pkg/executor"
	"queryopt/pkg/optimizer"
)

// model is the bubbletea application state: a cursor over the fixed
// demo query list, the optimizer/catalog the session runs against,
// and the last run's rendered output.
type model struct {
	catalog   *catalog.Catalog
	optimizer *optimizer.Optimizer
	queries   []demoQuery

	cursor     int
	showReport bool
	output     viewport.Model
	spinner    spinner.Model

	width, height int

	lastReport string
	lastResult string
}

func newModel() model {
	cat := catalog.New()
	catalog.PopulateSampleData(cat)
	catalog.SeedDemoStatistics(cat)

	cm := costmodel.NewModel(costmodel.DefaultConfig())
	opt := optimizer.New(cat, cm, optimizer.DefaultConfig())

	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = candidateStyle

	vp := viewport.New(80, 20)

	return model{
		catalog:   cat,
		optimizer: opt,
		queries:   demoQueries(),
		output:    vp,
		spinner:   sp,
	}
}

func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.output.Width = msg.Width - 4
		m.output.Height = msg.Height - 10

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.queries)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Report):
			m.showReport = !m.showReport
			m.output.SetContent(m.renderOutput())
		case key.Matches(msg, keys.Run):
			m.runSelected()
			m.output.SetContent(m.renderOutput())
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// runSelected optimizes and executes the currently selected query,
// storing the rendered report and result onto the model so toggling
// the report view doesn't require re-running the optimizer.
func (m *model) runSelected() {
	query := m.queries[m.cursor]

	candidates, err := m.optimizer.GenerateAllPlans(query.stmt)
	if err != nil {
		m.lastResult = errorStyle.Render(err.Error())
		return
	}

	best, err := m.optimizer.Optimize(query.stmt)
	if err != nil {
		m.lastResult = errorStyle.Render(err.Error())
		return
	}

	cm := costmodel.NewModel(costmodel.DefaultConfig())
	costed := make([]optimizer.Candidate, 0, len(candidates))
	for _, c := range candidates {
		cost := cm.EstimatePlanCost(c, m.catalog)
		c.SetCost(cost)
		costed = append(costed, optimizer.Candidate{Plan: c, Cost: cost})
	}
	m.lastReport = m.optimizer.PrintReport(costed)

	result, err := executor.Execute(best, m.catalog)
	if err != nil {
		m.lastResult = errorStyle.Render(err.Error())
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, winnerStyle.Render("winning plan")+"\n%s\n\n", best.String())
	fmt.Fprintf(&b, "total cost: %.4f\n", best.Cost().Total)
	fmt.Fprintf(&b, "rows returned: %d\n", len(result.Rows))
	m.lastResult = b.String()
}

func (m model) renderOutput() string {
	if m.showReport && m.lastReport != "" {
		return candidateStyle.Render(m.lastReport)
	}
	if m.lastResult == "" {
		return candidateStyle.Render("press enter to optimize and run the selected query")
	}
	return m.lastResult
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("cost-based query optimizer — demo"))
	b.WriteString("\n\n")

	for i, q := range m.queries {
		line := fmt.Sprintf("%d. %s", i+1, q.label)
		if i == m.cursor {
			b.WriteString(selectedQueryStyle.Render(line))
		} else {
			b.WriteString(queryListStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.output.View())
	b.WriteString("\n")
	b.WriteString(statusBarStyle.Render("↑/↓ select · enter run · r toggle report · q quit"))

	return appStyle.Render(b.String())
}
