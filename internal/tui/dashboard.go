// Package tui is the interactive dashboard: the packing checklist,
// the context status line, and the leaving / training actions.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/idilsaglam/packup/internal/api"
	"github.com/idilsaglam/packup/internal/checklist"
	"github.com/idilsaglam/packup/internal/model"
	"github.com/idilsaglam/packup/internal/ui"
)

// listItem adapts a PredictedItem to bubbles/list.Item.
type listItem struct {
	item   model.PredictedItem
	packed bool
}

func (i listItem) Title() string       { return ui.ChecklistRow(i.item, i.packed) }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.item.Name }

// Single-line row rendering: checkbox, name, muted probability meta.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)
	box := ui.MutedStyle.Render(ui.BoxUnchecked)
	name := it.item.Name
	if it.packed {
		box = ui.SuccessStyle.Render(ui.BoxChecked)
		name = ui.PackedStyle.Render(name)
	}
	line := fmt.Sprintf("%s %s  %s", box, name, ui.MutedStyle.Render(ui.ItemMeta(it.item)))
	prefix := "  "
	if index == m.Index() {
		prefix = ui.SelectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

// Messages produced by background commands.
type predictionsMsg struct {
	items []model.PredictedItem
	err   error
}

type summaryMsg struct{ text string }

type leaveMsg struct{ result checklist.LeaveResult }

type trainMsg struct{ err error }

// Model is the Bubble Tea model for the dashboard. It owns the
// prediction store; every store mutation happens in Update.
type Model struct {
	client *api.Client
	store  *checklist.Store
	eval   *checklist.Evaluator
	log    *zap.Logger

	list    list.Model
	width   int
	height  int
	loading bool
	summary string
	flash   string

	// leaving modal
	leaveOpen   bool
	leaveResult checklist.LeaveResult
}

// New builds the dashboard model around an existing store.
func New(client *api.Client, store *checklist.Store, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.Title = ui.TitleStyle.Render("Packing checklist")
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.TitleStyle
	l.Styles.HelpStyle = ui.HelpStyle
	l.Styles.PaginationStyle = ui.HelpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")

	packBind := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "packed"))
	leaveBind := key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "leaving"))
	trainBind := key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "train"))
	reloadBind := key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload"))
	extra := func() []key.Binding {
		return []key.Binding{packBind, leaveBind, trainBind, reloadBind}
	}
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	return Model{
		client:  client,
		store:   store,
		eval:    checklist.NewEvaluator(client, log),
		log:     log,
		list:    l,
		loading: true,
		summary: ui.MutedStyle.Render("Loading context..."),
	}
}

// Run starts the dashboard program.
func Run(client *api.Client, log *zap.Logger) error {
	store := checklist.NewStore(client)
	m := New(client, store, log)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadPredictionsCmd(), m.loadSummaryCmd())
}

// loadPredictionsCmd fetches on a background goroutine; the store is
// only touched once the message reaches Update.
func (m Model) loadPredictionsCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		items, err := client.PredictToday(context.Background())
		return predictionsMsg{items: items, err: err}
	}
}

func (m Model) loadSummaryCmd() tea.Cmd {
	client, log := m.client, m.log
	return func() tea.Msg {
		in, err := client.Insights(context.Background())
		if err != nil {
			log.Error("load context summary failed", zap.Error(err))
			return summaryMsg{text: ui.SummaryLoadFailed}
		}
		return summaryMsg{text: ui.ContextSummary(in.TodayContext, in.ModelMetrics)}
	}
}

func (m Model) leaveCmd(snap checklist.Snapshot) tea.Cmd {
	eval := m.eval
	return func() tea.Msg {
		return leaveMsg{result: eval.Leave(context.Background(), snap)}
	}
}

func (m Model) trainCmd() tea.Cmd {
	client, log := m.client, m.log
	return func() tea.Msg {
		err := client.TrainModel(context.Background())
		if err != nil {
			log.Error("train model failed", zap.Error(err))
		}
		return trainMsg{err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case predictionsMsg:
		m.loading = false
		m.store.Apply(msg.items, msg.err)
		if msg.err != nil {
			m.log.Error("load predictions failed", zap.Error(msg.err))
		}
		m.list.SetItems(m.rows())
		return m, nil

	case summaryMsg:
		m.summary = msg.text
		return m, nil

	case leaveMsg:
		m.leaveOpen = true
		m.leaveResult = msg.result
		return m, nil

	case trainMsg:
		if msg.err != nil {
			m.flash = ui.ErrorStyle.Render("Could not train model yet. Need more diverse data.")
			return m, nil
		}
		m.flash = ui.SuccessStyle.Render("Model trained successfully!")
		// metrics changed; refresh the status line
		return m, m.loadSummaryCmd()

	case tea.KeyMsg:
		if m.leaveOpen {
			return m.updateLeaveModal(msg)
		}
		m.flash = ""
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case " ":
			m.togglePacked()
			return m, nil
		case "r":
			m.loading = true
			return m, tea.Batch(m.loadPredictionsCmd(), m.loadSummaryCmd())
		case "t":
			return m, m.trainCmd()
		case "l":
			// Snapshot here, not in the command: the warning must
			// reflect the state at the moment of the action.
			return m, m.leaveCmd(m.store.Snapshot())
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateLeaveModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.leaveResult.Missing) == 0 {
		// all packed, any key dismisses the confirmation
		m.leaveOpen = false
		return m, nil
	}
	switch msg.String() {
	case "y":
		// user chose to leave anyway; the warning is advisory only
		return m, tea.Quit
	case "n", "esc":
		m.leaveOpen = false
		return m, nil
	}
	return m, nil
}

// togglePacked flips the selected row and writes through the store.
func (m *Model) togglePacked() {
	i := m.list.Index()
	if i < 0 || i >= len(m.list.Items()) {
		return
	}
	li, ok := m.list.Items()[i].(listItem)
	if !ok {
		return
	}
	m.store.SetPacked(li.item.ItemID, !li.packed)
	li.packed = m.store.Packed(li.item.ItemID)
	m.list.SetItem(i, li)
}

// rows rebuilds the list items from the store.
func (m Model) rows() []list.Item {
	items := m.store.Items()
	out := make([]list.Item, 0, len(items))
	for _, it := range items {
		out = append(out, listItem{item: it, packed: m.store.Packed(it.ItemID)})
	}
	return out
}

func (m Model) View() string {
	w, h := m.width, m.height
	if w == 0 {
		w, h = 80, 24
	}

	var body string
	switch {
	case m.loading:
		body = ui.MutedStyle.Render(ui.MsgLoading)
	case m.store.LoadFailed():
		body = ui.ErrorStyle.Render(ui.MsgLoadFailed)
	case len(m.store.Items()) == 0:
		body = ui.MutedStyle.Render(ui.MsgNoItems)
	default:
		m.list.SetSize(w-4, h-8)
		body = m.list.View()
	}

	header := ui.HelpStyle.Render(m.summary)
	packed := 0
	for _, it := range m.store.Items() {
		if m.store.Packed(it.ItemID) {
			packed++
		}
	}
	progress := ""
	if n := len(m.store.Items()); n > 0 {
		progress = ui.AccentStyle.Render("Packed ") + ui.ProgressBar(packed, n, 24)
	}

	sections := []string{header}
	if progress != "" {
		sections = append(sections, progress)
	}
	sections = append(sections, body)
	if m.flash != "" {
		sections = append(sections, m.flash)
	}
	content := strings.Join(sections, "\n")

	if m.leaveOpen {
		content += "\n" + ui.Panel(m.leaveLines())
	}
	return ui.Panel([]string{content})
}

// leaveLines renders the leaving modal body.
func (m Model) leaveLines() []string {
	if len(m.leaveResult.Missing) == 0 {
		return []string{
			ui.SuccessStyle.Render("All good! You’ve packed everything important. ✔"),
			ui.HelpStyle.Render("press any key to continue"),
		}
	}
	names := make([]string, 0, len(m.leaveResult.Missing))
	for _, it := range m.leaveResult.Missing {
		names = append(names, it.Name)
	}
	return []string{
		ui.ErrorStyle.Render("Warning! You usually take: " + strings.Join(names, ", ") + "."),
		"They are not marked as packed. Are you sure you want to leave?",
		ui.HelpStyle.Render("y: leave anyway · n/esc: stay"),
	}
}
