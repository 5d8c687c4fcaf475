// Package browse is the interactive terminal page: checkbox groups with
// live counts, an editable selection token list and the record table.
package browse

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kamusis/catalog-cli/internal/catalog"
	"github.com/kamusis/catalog-cli/internal/filter"
)

type focus int

const (
	focusFilters focus = iota
	focusTable
	focusSelect
)

// item is one checkbox row of the side panel.
type item struct {
	field  catalog.FieldDescriptor
	option catalog.Option
}

// Model is the bubbletea model of the browser page. It owns the one
// filter.State of the session.
type Model struct {
	cat    *catalog.Catalog
	eval   *filter.Evaluator
	state  *filter.State
	result filter.Result

	items     []item
	cursor    int
	focus     focus
	prevFocus focus

	table  table.Model
	input  textinput.Model
	keys   keyMap
	styles Styles
}

// New builds the page for cat starting from state. A nil state starts empty.
func New(cat *catalog.Catalog, eval *filter.Evaluator, state *filter.State, pageSize int) Model {
	if state == nil {
		state = filter.NewState()
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	var items []item
	for _, d := range cat.Fields {
		for _, o := range d.Options {
			items = append(items, item{field: d, option: o})
		}
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Name", Width: 24},
			{Title: "Public", Width: 7},
			{Title: "Active", Width: 7},
			{Title: "Regions", Width: 12},
			{Title: "Tags", Width: 22},
		}),
		table.WithHeight(pageSize),
	)

	in := textinput.New()
	in.Placeholder = "Select filters (e.g., public:true, tags:math)"
	in.Prompt = "filters> "
	in.Width = 60

	m := Model{
		cat:    cat,
		eval:   eval,
		state:  state,
		items:  items,
		focus:  focusFilters,
		table:  t,
		input:  in,
		keys:   defaultKeyMap(),
		styles: DefaultStyles(),
	}
	m.refresh()
	return m
}

// State returns a copy of the current filter state.
func (m Model) State() *filter.State { return m.state.Clone() }

// Result returns the rows and counts currently displayed.
func (m Model) Result() filter.Result { return m.result }

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.focus == focusSelect {
		return m.updateSelect(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Focus):
		if m.focus == focusFilters {
			m.focus = focusTable
			m.table.Focus()
		} else {
			m.focus = focusFilters
			m.table.Blur()
		}
		return m, nil
	case key.Matches(keyMsg, m.keys.Select):
		m.prevFocus = m.focus
		m.focus = focusSelect
		m.input.SetValue(strings.Join(m.state.Tokens(), ", "))
		m.input.CursorEnd()
		return m, m.input.Focus()
	case key.Matches(keyMsg, m.keys.ClearAll):
		m.state.SetAllFromTokens(nil)
		m.refresh()
		return m, nil
	}

	if m.focus == focusTable {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(keyMsg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Toggle):
		if it, ok := m.current(); ok {
			m.state.Toggle(string(it.field.Key), it.option.Value.String())
			m.refresh()
		}
	case key.Matches(keyMsg, m.keys.Clear):
		if it, ok := m.current(); ok {
			m.state.ClearField(string(it.field.Key))
			m.refresh()
		}
	}
	return m, nil
}

func (m Model) updateSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Apply):
		m.state.SetAllFromTokens(splitTokens(m.input.Value()))
		m.refresh()
		m.leaveSelect()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.leaveSelect()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) leaveSelect() {
	m.input.Blur()
	m.input.SetValue("")
	m.focus = m.prevFocus
}

func (m Model) current() (item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return item{}, false
	}
	return m.items[m.cursor], true
}

// splitTokens splits the selection input on commas.
func splitTokens(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// refresh recomputes rows and counts from the state.
func (m *Model) refresh() {
	m.result = m.eval.Evaluate(m.cat, m.state, "")
	rows := make([]table.Row, 0, len(m.result.Records))
	for _, r := range m.result.Records {
		rows = append(rows, table.Row{
			r.Name,
			yesNo(r.Public),
			yesNo(r.Active),
			strings.Join(r.Regions, ", "),
			strings.Join(r.Tags, ", "),
		})
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

func yesNo(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// View renders the page.
func (m Model) View() string {
	return lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(), m.mainView())
}

func (m Model) sidebarView() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Filters"))

	idx := 0
	for _, fc := range m.result.Counts {
		b.WriteString("\n")
		b.WriteString(m.styles.Header.Render(fc.Field.Label))
		b.WriteString("\n")
		for _, oc := range fc.Options {
			marker := "  "
			style := m.styles.Option
			if m.focus == focusFilters && idx == m.cursor {
				marker = "› "
				style = m.styles.Cursor
			}
			box := "[ ]"
			if m.state.Has(string(fc.Field.Key), oc.Option.Value.String()) {
				box = "[x]"
			}
			dot := " "
			if fc.Field.Key == catalog.FieldTags {
				dot = TagDot(m.cat.TagColor(oc.Option.Value.String()))
			}
			line := fmt.Sprintf("%s%s %-14s", marker, box, oc.Option.Label)
			b.WriteString(style.Render(line))
			b.WriteString(" " + dot + " ")
			b.WriteString(m.styles.Count.Render(fmt.Sprintf("%3d", oc.Count)))
			b.WriteString("\n")
			idx++
		}
	}
	return m.styles.Sidebar.Render(b.String())
}

func (m Model) mainView() string {
	var sel string
	switch {
	case m.focus == focusSelect:
		sel = m.input.View()
	case len(m.result.Tokens) == 0:
		sel = m.styles.Help.Render(m.input.Placeholder)
	default:
		chips := make([]string, 0, len(m.result.Tokens))
		for _, tok := range m.result.Tokens {
			chips = append(chips, m.styles.Token.Render(tok))
		}
		sel = lipgloss.JoinHorizontal(lipgloss.Top, chips...)
	}

	frame := m.styles.Unfocused
	if m.focus == focusTable {
		frame = m.styles.Focused
	}

	footer := m.styles.Footer.Render(fmt.Sprintf("%d of %d", len(m.result.Records), m.result.Total))
	help := m.styles.Help.Render("space toggle • c clear field • C clear all • / edit selection • tab table • q quit")

	return m.styles.Main.Render(lipgloss.JoinVertical(lipgloss.Left,
		sel,
		frame.Render(m.table.View()),
		footer,
		help,
	))
}

// Run shows the page until the user quits and returns the final model.
func Run(ctx context.Context, m Model) (Model, error) {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return m, fmt.Errorf("browser failed: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm, nil
	}
	return m, nil
}
