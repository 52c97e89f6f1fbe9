package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gigview/internal/logging"
	"gigview/internal/view"
	"gigview/internal/viewstate"
)

// Browser is the top-level bubbletea model: a tab per dataset, a search
// input, and the current page of the active dataset. Every state mutation
// is written through to the view-state store so selections survive
// restarts.
type Browser struct {
	ctx      context.Context
	datasets []Dataset
	states   map[string]view.State
	store    viewstate.Store

	active    int
	filterIdx int // which structured filter field keys target

	search    textinput.Model
	searching bool
	spin      spinner.Model

	width  int
	height int
}

// NewBrowser builds the browser over the given datasets, restoring each
// dataset's persisted view state.
func NewBrowser(ctx context.Context, datasets []Dataset, store viewstate.Store) Browser {
	search := textinput.New()
	search.Placeholder = "search"
	search.CharLimit = 120
	search.Width = 32

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	states := make(map[string]view.State, len(datasets))
	for _, ds := range datasets {
		st, ok := store.Load(ds.Namespace())
		if !ok {
			st = ds.DefaultState()
		}
		states[ds.Namespace()] = st
	}

	return Browser{
		ctx:      ctx,
		datasets: datasets,
		states:   states,
		store:    store,
		search:   search,
		spin:     spin,
		width:    100,
		height:   30,
	}
}

func (b Browser) Init() tea.Cmd {
	cmds := []tea.Cmd{b.spin.Tick}
	for _, ds := range b.datasets {
		cmds = append(cmds, ds.Fetch(b.ctx))
	}
	return tea.Batch(cmds...)
}

func (b Browser) current() Dataset {
	return b.datasets[b.active]
}

func (b Browser) state() view.State {
	return b.states[b.current().Namespace()]
}

// setState stores a new state for the active dataset, in memory and through
// the store.
func (b *Browser) setState(st view.State) {
	ns := b.current().Namespace()
	b.states[ns] = st
	b.store.Save(ns, st)
}

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		return b, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		b.spin, cmd = b.spin.Update(msg)
		return b, cmd

	case loadedMsg:
		logging.Debug("dataset load settled", "namespace", msg.namespace)
		return b, nil

	case tea.KeyMsg:
		if b.searching {
			return b.updateSearch(msg)
		}
		return b.updateKeys(msg)
	}
	return b, nil
}

// updateSearch handles keys while the query input is focused.
func (b Browser) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		b.searching = false
		b.search.Blur()
		b.setState(b.state().WithQuery(b.search.Value()))
		return b, nil
	case "esc":
		b.searching = false
		b.search.Blur()
		b.search.SetValue(b.state().Query)
		return b, nil
	}
	var cmd tea.Cmd
	b.search, cmd = b.search.Update(msg)
	return b, cmd
}

func (b Browser) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := b.state()

	switch msg.String() {
	case "q", "ctrl+c":
		return b, tea.Quit

	case "tab":
		b.active = (b.active + 1) % len(b.datasets)
		b.filterIdx = 0
		b.search.SetValue(b.state().Query)
		return b, nil

	case "shift+tab":
		b.active = (b.active - 1 + len(b.datasets)) % len(b.datasets)
		b.filterIdx = 0
		b.search.SetValue(b.state().Query)
		return b, nil

	case "/":
		b.searching = true
		b.search.SetValue(st.Query)
		return b, b.search.Focus()

	case "esc":
		if st.Query != "" {
			b.search.SetValue("")
			b.setState(st.WithQuery(""))
		}
		return b, nil

	case "s":
		b.setState(st.WithSort(b.nextSortKey(st.SortKey), st.SortDir))
		return b, nil

	case "d":
		dir := view.Asc
		if st.SortDir == view.Asc {
			dir = view.Desc
		}
		b.setState(st.WithSort(st.SortKey, dir))
		return b, nil

	case "f":
		if n := len(b.current().Filters()); n > 0 {
			b.filterIdx = (b.filterIdx + 1) % n
		}
		return b, nil

	case "v":
		b.cycleFilterValue(st)
		return b, nil

	case "right", "l", "n":
		b.setState(st.WithPage(st.Page + 1))
		return b, nil

	case "left", "h", "p":
		b.setState(st.WithPage(st.Page - 1))
		return b, nil

	case "+":
		b.setState(st.WithPageSize(st.PageSize + 5))
		return b, nil

	case "-":
		b.setState(st.WithPageSize(st.PageSize - 5))
		return b, nil

	case "r":
		return b, b.current().Fetch(b.ctx)
	}
	return b, nil
}

// nextSortKey cycles through the active dataset's sortable fields.
func (b Browser) nextSortKey(current string) string {
	keys := b.current().SortKeys()
	if len(keys) == 0 {
		return current
	}
	for i, k := range keys {
		if k == current {
			return keys[(i+1)%len(keys)]
		}
	}
	return keys[0]
}

// cycleFilterValue advances the targeted filter field through
// All -> option1 -> ... -> optionN -> All.
func (b *Browser) cycleFilterValue(st view.State) {
	filters := b.current().Filters()
	if len(filters) == 0 {
		return
	}
	f := filters[b.filterIdx%len(filters)]

	values := append([]string{view.FilterAll}, f.Options...)
	current := st.Filters[f.Field]
	if current == "" {
		current = view.FilterAll
	}
	next := values[0]
	for i, v := range values {
		if v == current {
			next = values[(i+1)%len(values)]
			break
		}
	}
	b.setState(st.WithFilter(f.Field, next))
}

func (b Browser) View() string {
	var sb strings.Builder

	// Tabs
	var tabs []string
	for i, ds := range b.datasets {
		if i == b.active {
			tabs = append(tabs, activeTabStyle.Render(ds.Title()))
		} else {
			tabs = append(tabs, tabStyle.Render(ds.Title()))
		}
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	sb.WriteString("\n")

	// Search line
	if b.searching {
		sb.WriteString(b.search.View())
	} else if q := b.state().Query; q != "" {
		sb.WriteString(dimStyle.Render("query: ") + rowStyle.Render(q))
	} else {
		sb.WriteString(dimStyle.Render("press / to search"))
	}
	sb.WriteString("\n\n")

	sb.WriteString(b.viewBody())
	sb.WriteString("\n")
	sb.WriteString(b.viewFooter())
	return sb.String()
}

// viewBody renders the tri-state body: loading, error with retry hint, or
// the current page (possibly an explicit empty message).
func (b Browser) viewBody() string {
	ds := b.current()

	if ds.Loading() {
		return b.spin.View() + dimStyle.Render(" loading "+ds.Title()+"…")
	}
	if err := ds.Err(); err != nil {
		return errorStyle.Render("error: "+err.Error()) + "\n" +
			dimStyle.Render("press r to retry")
	}

	page := ds.Page(b.state())
	if page.TotalCount == 0 {
		return emptyStyle.Render("no matching records")
	}

	widths := b.columnWidths(ds.Columns())
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(formatRow(ds.Columns(), widths)))
	sb.WriteString("\n")
	for _, row := range page.Rows {
		sb.WriteString(rowStyle.Render(formatRow(row, widths)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (b Browser) viewFooter() string {
	ds := b.current()
	st := b.state()
	page := ds.Page(st)

	var filters []string
	for field, val := range st.Filters {
		filters = append(filters, field+"="+val)
	}
	filterNote := "none"
	if len(filters) > 0 {
		filterNote = strings.Join(filters, " ")
	}

	target := ""
	if opts := ds.Filters(); len(opts) > 0 {
		target = " · f targets " + opts[b.filterIdx%len(opts)].Field
	}

	return footerStyle.Render(fmt.Sprintf(
		"page %d/%d · %d records · sort %s %s · filters %s%s\n"+
			"tab switch · / search · s sort · d direction · v filter value · ←/→ page · +/- size · r reload · q quit",
		page.CurrentPage, page.TotalPages, page.TotalCount,
		st.SortKey, st.SortDir, filterNote, target,
	))
}

// columnWidths splits the terminal width evenly, giving any remainder to
// the first column.
func (b Browser) columnWidths(columns []string) []int {
	n := len(columns)
	if n == 0 {
		return nil
	}
	avail := b.width - n // one space gap per column
	if avail < n*4 {
		avail = n * 4
	}
	widths := make([]int, n)
	each := avail / n
	for i := range widths {
		widths[i] = each
	}
	widths[0] += avail - each*n
	return widths
}

func formatRow(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		w := 8
		if i < len(widths) {
			w = widths[i]
		}
		parts[i] = fmt.Sprintf("%-*s", w, truncate(c, w))
	}
	return strings.Join(parts, " ")
}
