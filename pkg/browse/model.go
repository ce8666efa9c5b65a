package browse

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/matst80/portfolio-finder/pkg/controller"
	"github.com/matst80/portfolio-finder/pkg/types"
)

type focus int

const (
	focusSearch focus = iota
	focusFacets
)

// option is one selectable facet value in the side panel.
type option struct {
	field *types.BaseField
	value string
}

var controls = []struct {
	key   string
	short string
}{
	{key: "tab", short: "search/facets"},
	{key: "space", short: "toggle"},
	{key: "ctrl+s", short: "sort"},
	{key: "ctrl+d", short: "direction"},
	{key: "ctrl+g", short: "grid/list"},
	{key: "ctrl+r", short: "clear"},
	{key: "esc", short: "quit"},
}

// Model drives a controller from keystrokes. All filtering happens
// synchronously in the controller, the model only renders its state.
type Model struct {
	ctrl    *controller.Controller
	input   textinput.Model
	focus   focus
	options []option
	cursor  int
	width   int
	height  int
	now     func() time.Time
}

func New(ctrl *controller.Controller) Model {
	input := textinput.New()
	input.Placeholder = "Search " + strings.ToLower(ctrl.Schema().Name)
	input.Prompt = "/ "
	input.CharLimit = 120
	input.Width = 50
	input.SetValue(ctrl.Criteria().Query)
	input.Focus()

	return Model{
		ctrl:    ctrl,
		input:   input,
		options: buildOptions(ctrl),
		now:     time.Now,
	}
}

func buildOptions(ctrl *controller.Controller) []option {
	ret := make([]option, 0)
	for _, f := range ctrl.Facets().Fields() {
		if f.HideFacet {
			continue
		}
		values := ctrl.Facets().Sorted(f.Key)
		for _, v := range values {
			ret = append(ret, option{field: f.BaseField, value: v})
		}
	}
	return ret
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "shift+tab":
			m.toggleFocus()
			return m, nil
		case "ctrl+s":
			m.cycleSort()
			return m, nil
		case "ctrl+d":
			if sort := m.ctrl.Criteria().Sort; sort != "" {
				m.ctrl.SetSort(sort)
			}
			return m, nil
		case "ctrl+g":
			m.toggleView()
			return m, nil
		case "ctrl+r":
			m.ctrl.ClearAll()
			m.input.SetValue("")
			return m, nil
		}
		if m.focus == focusFacets {
			return m.updateFacets(msg)
		}
	}
	return m.updateSearch(msg)
}

func (m *Model) toggleFocus() {
	if m.focus == focusSearch && len(m.options) > 0 {
		m.focus = focusFacets
		m.input.Blur()
		return
	}
	m.focus = focusSearch
	m.input.Focus()
}

func (m *Model) cycleSort() {
	sorts := m.ctrl.Schema().Sorts
	if len(sorts) == 0 {
		return
	}
	current := m.ctrl.Criteria().Sort
	idx := slices.IndexFunc(sorts, func(s types.SortField) bool { return s.Key == current })
	m.ctrl.SetSort(sorts[(idx+1)%len(sorts)].Key)
}

func (m *Model) toggleView() {
	if m.ctrl.Criteria().View == types.ViewGrid {
		m.ctrl.SetViewMode(types.ViewList)
	} else {
		m.ctrl.SetViewMode(types.ViewGrid)
	}
}

func (m Model) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != m.ctrl.Criteria().Query {
		m.ctrl.SetSearchText(value)
	}
	return m, cmd
}

func (m Model) updateFacets(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case " ", "enter":
		m.selectOption(m.options[m.cursor])
	}
	return m, nil
}

func (m *Model) selectOption(o option) {
	if o.field.IsTags() {
		m.ctrl.ToggleTag(o.field.Key, o.value)
		return
	}
	criteria := m.ctrl.Criteria()
	if current, ok := criteria.FacetValue(o.field.Key); ok && current == o.value {
		m.ctrl.SetFacet(o.field.Key, types.All)
		return
	}
	m.ctrl.SetFacet(o.field.Key, o.value)
}

func (m Model) isSelected(o option, criteria *types.Criteria) bool {
	if o.field.IsTags() {
		return criteria.HasTag(o.field.Key, o.value)
	}
	v, ok := criteria.FacetValue(o.field.Key)
	return ok && v == o.value
}

func (m Model) View() string {
	criteria := m.ctrl.Criteria()
	header := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.ctrl.Schema().Name),
		m.input.View(),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.facetsView(criteria),
		m.resultsView(criteria),
	)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.statusView(criteria))
}

func (m Model) facetsView(criteria *types.Criteria) string {
	var b strings.Builder
	var last types.FieldKey
	counts := map[types.FieldKey]map[string]int{}
	for i, o := range m.options {
		if o.field.Key != last {
			b.WriteString(headerStyle.Render(o.field.Name))
			b.WriteString("\n")
			last = o.field.Key
			counts[o.field.Key] = m.ctrl.FacetCounts(o.field.Key)
		}
		marker := "  "
		if m.focus == focusFacets && i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		check := "[ ]"
		line := fmt.Sprintf("%s (%d)", o.value, counts[o.field.Key][o.value])
		if m.isSelected(o, criteria) {
			check = "[x]"
			line = selectedStyle.Render(line)
		}
		b.WriteString(marker + check + " " + line + "\n")
	}
	return facetsStyle.Render(b.String())
}

func (m Model) resultsView(criteria *types.Criteria) string {
	schema := m.ctrl.Schema()
	items := m.ctrl.Result().Items
	if len(items) == 0 {
		return mutedStyle.Render("  nothing matches")
	}
	if len(items) > maxRows {
		items = items[:maxRows]
	}
	now := m.now()
	if criteria.View == types.ViewGrid {
		perRow := 3
		if m.width > facetsWidth {
			perRow = max(1, (m.width-facetsWidth)/(cardWidth+3))
		}
		rows := make([]string, 0)
		for chunk := range slices.Chunk(items, perRow) {
			cards := make([]string, 0, len(chunk))
			for _, item := range chunk {
				cards = append(cards, cardStyle.Render(
					titleStyle.Render(Title(schema, item))+"\n"+
						mutedStyle.Render(strings.Join(Labels(schema, item), ", ")),
				))
			}
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
		}
		return lipgloss.JoinVertical(lipgloss.Left, rows...)
	}
	var b strings.Builder
	for _, item := range items {
		b.WriteString("  " + titleStyle.Render(Title(schema, item)))
		if criteria.Sort != "" {
			b.WriteString(divider + SortValue(schema, item, criteria.Sort, now))
		}
		if labels := Labels(schema, item); len(labels) > 0 {
			b.WriteString(divider + mutedStyle.Render(strings.Join(labels, ", ")))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) statusView(criteria *types.Criteria) string {
	sort := "input order"
	if criteria.Sort != "" {
		sort = fmt.Sprintf("%s %s", criteria.Sort, criteria.Direction)
	}
	help := make([]string, 0, len(controls))
	for _, c := range controls {
		help = append(help, c.key+" "+c.short)
	}
	return statusStyle.Render(
		fmt.Sprintf("%d of %d", m.ctrl.ResultCount(), m.ctrl.TotalCount()) + divider + sort + divider + "?" + criteria.String() + "\n" +
			strings.Join(help, divider),
	)
}
