package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"countryviz/internal/country"
	"countryviz/internal/metric"
	"countryviz/internal/present"
	"countryviz/internal/view"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// LoadFunc fetches and validates the dataset once at startup.
type LoadFunc func(ctx context.Context) (country.Result, error)

// Options configure a Dashboard.
type Options struct {
	Source   string
	Load     LoadFunc
	PageSize view.PageSize
	Chart    present.ChartType
	Debounce time.Duration
	Styles   Styles
	Logger   *zap.Logger

	// Metric, when set, is selected as soon as the data arrives.
	Metric metric.Kind

	// Send delivers debounced search terms; pass (*tea.Program).Send.
	Send func(tea.Msg)
}

type loadedMsg struct {
	res country.Result
	err error
}

// computeMsg runs a metric derivation after the spinner has painted.
type computeMsg struct {
	kind metric.Kind
}

// panels holds the rendered surfaces the reconciler redraws.
type panels struct {
	chart  string
	table  string
	stats  string
	pager  string
	banner string
}

// Dashboard is the interactive terminal view. All state changes go through
// its controller, one message at a time.
type Dashboard struct {
	opts   Options
	styles Styles
	logger *zap.Logger
	layout LayoutConfig

	spinner  spinner.Model
	search   textinput.Model
	typing   bool
	debounce *SearchDebouncer

	loading  bool
	loadErr  error
	result   country.Result
	ctrl     *view.Controller
	rec      *view.Reconciler
	panels   *panels
	chart    present.ChartType
	selected int
	pending  metric.Kind
}

// NewDashboard creates the dashboard model.
func NewDashboard(opts Options) *Dashboard {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Styles.Theme.Name == "" {
		opts.Styles = DefaultStyles()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = opts.Styles.Spinner

	ti := textinput.New()
	ti.Placeholder = "Search by name or region... (/ to focus)"
	ti.Prompt = "Search: "
	ti.CharLimit = 100
	ti.Width = 40
	ti.PromptStyle = opts.Styles.Bold

	d := &Dashboard{
		opts:     opts,
		styles:   opts.Styles,
		logger:   opts.Logger,
		layout:   NewLayoutConfig(MinimumTerminalWidth, MinimumTerminalHeight),
		spinner:  sp,
		search:   ti,
		debounce: NewSearchDebouncer(opts.Debounce, opts.Send),
		loading:  true,
		panels:   &panels{},
		chart:    present.SanitizeChartType(string(opts.Chart)),
	}
	return d
}

// Init starts the load and the spinner.
func (d *Dashboard) Init() tea.Cmd {
	load := d.opts.Load
	return tea.Batch(d.spinner.Tick, func() tea.Msg {
		if load == nil {
			return loadedMsg{err: fmt.Errorf("no data loader configured")}
		}
		res, err := load(context.Background())
		return loadedMsg{res: res, err: err}
	})
}

// Update handles one message.
func (d *Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.layout = NewLayoutConfig(msg.Width, msg.Height)
		d.search.Width = min(60, d.layout.ContentWidth()-len(d.search.Prompt)-2)
		d.redrawAll()
		return d, nil

	case spinner.TickMsg:
		if !d.loading {
			return d, nil
		}
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(msg)
		return d, cmd

	case loadedMsg:
		return d, d.handleLoaded(msg)

	case computeMsg:
		d.debounce.Stop()
		d.search.SetValue("")
		d.apply(d.ctrl.SelectMetric(msg.kind))
		d.loading = false
		d.pending = ""
		return d, nil

	case searchMsg:
		if d.ctrl == nil || !d.debounce.Current(msg.seq) {
			return d, nil
		}
		d.apply(d.ctrl.SetSearchTerm(msg.term))
		return d, nil

	case tea.KeyMsg:
		return d.handleKey(msg)
	}
	return d, nil
}

func (d *Dashboard) handleLoaded(msg loadedMsg) tea.Cmd {
	d.loading = false
	if msg.err != nil {
		d.loadErr = msg.err
		d.logger.Error("dataset load failed", zap.Error(msg.err))
		return nil
	}

	d.result = msg.res
	d.ctrl = view.NewController(msg.res.Data,
		view.WithPageSize(d.opts.PageSize),
		view.WithLogger(d.logger))
	d.rec = d.newReconciler()
	d.redrawAll()

	d.logger.Info("dashboard ready",
		zap.Int("valid", len(msg.res.Data)),
		zap.Int("skipped", msg.res.Skipped))

	if d.opts.Metric != "" {
		return d.selectMetric(d.opts.Metric)
	}
	return nil
}

// selectMetric shows the spinner and defers the derivation to the next
// message so the loading state is drawn first.
func (d *Dashboard) selectMetric(kind metric.Kind) tea.Cmd {
	d.loading = true
	d.pending = kind
	return tea.Batch(d.spinner.Tick, func() tea.Msg { return computeMsg{kind: kind} })
}

func (d *Dashboard) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		d.debounce.Stop()
		return d, tea.Quit
	}

	if d.typing {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			d.typing = false
			d.search.Blur()
			return d, nil
		}
		before := d.search.Value()
		var cmd tea.Cmd
		d.search, cmd = d.search.Update(msg)
		if d.search.Value() != before && d.ctrl != nil {
			return d, tea.Batch(cmd, d.debounce.Push(d.search.Value()))
		}
		return d, cmd
	}

	if msg.String() == "q" {
		d.debounce.Stop()
		return d, tea.Quit
	}
	if d.ctrl == nil || d.loading {
		return d, nil
	}

	switch key := msg.String(); key {
	case "1", "2", "3", "4", "5", "6":
		kinds := metric.Kinds()
		return d, d.selectMetric(kinds[int(key[0]-'1')])
	case "/":
		d.typing = true
		return d, d.search.Focus()
	case "c", "esc":
		d.debounce.Stop()
		d.search.SetValue("")
		d.apply(d.ctrl.ClearFilter())
	case "left", "h":
		d.apply(d.ctrl.PrevPage())
	case "right", "l":
		d.apply(d.ctrl.NextPage())
	case "s":
		d.apply(d.ctrl.SetPageSize(d.ctrl.State().PageSize.Next()))
	case "t":
		d.chart = d.chart.Next()
		d.drawChart(d.ctrl.State())
	case "up", "k":
		d.moveSelection(-1)
	case "down", "j":
		d.moveSelection(1)
	}
	return d, nil
}

func (d *Dashboard) moveSelection(delta int) {
	n := len(d.ctrl.State().Current)
	if n == 0 {
		return
	}
	d.selected = min(max(d.selected+delta, 0), n-1)
	d.drawTable(d.ctrl.State())
}

// apply runs a transition through the reconciler. Rejected transitions
// draw nothing.
func (d *Dashboard) apply(t view.Transition) {
	if !t.Accepted() {
		return
	}
	d.selected = 0
	drawn := d.rec.Apply(t)
	d.logger.Debug("redrawn", zap.Stringer("change", t.Change), zap.Int("surfaces", len(drawn)))
}

func (d *Dashboard) redrawAll() {
	if d.rec != nil && d.ctrl != nil {
		d.rec.RedrawAll(d.ctrl.State())
	}
}

func (d *Dashboard) newReconciler() *view.Reconciler {
	return view.NewReconciler().
		Register(view.TargetChart, view.SurfaceFunc(d.drawChart)).
		Register(view.TargetTable, view.SurfaceFunc(d.drawTable)).
		Register(view.TargetStats, view.SurfaceFunc(d.drawStats)).
		Register(view.TargetPager, view.SurfaceFunc(d.drawPager)).
		Register(view.TargetSearchBanner, view.SurfaceFunc(d.drawBanner))
}

// =============================================================================
// SURFACES
// =============================================================================

func (d *Dashboard) drawChart(s view.State) {
	w, h := d.layout.PanelWidth(), d.layout.PanelHeight()
	if s.Metric == "" {
		lines := []string{present.LoadedMessage(len(d.result.Data), d.result.Skipped), present.SelectPrompt}
		d.panels.chart = emptyView(lines, false, d.styles, w, h)
		return
	}
	d.panels.chart = ChartView(s, d.chart, d.styles, w, h)
}

func (d *Dashboard) drawTable(s view.State) {
	if s.Metric == "" {
		d.panels.table = ""
		return
	}
	w, h := d.layout.PanelWidth(), d.layout.PanelHeight()
	if msg := present.EmptyMessage(s, false); msg != nil {
		d.panels.table = emptyView(msg, s.Presence() == view.NoResults, d.styles, w, h)
		return
	}

	rows := present.Rows(s)
	t := RankingTable("", rows)

	// keep the selected row visible
	tipLines := 0
	var tip present.Tooltip
	if d.selected < len(s.Current) {
		tip = present.TooltipFor(s.Metric, s.Current[d.selected])
		tipLines = len(tip.Lines()) + 1
	}
	maxRows := max(h-2-tipLines, 1)
	start := 0
	if d.selected >= maxRows {
		start = d.selected - maxRows + 1
	}
	t.Rows = t.Rows[start:]
	t.Selected = d.selected - start

	out := t.View(d.styles, maxRows)
	if tipLines > 0 {
		out += d.tooltipView(tip)
	}
	d.panels.table = out
}

func (d *Dashboard) tooltipView(tip present.Tooltip) string {
	var sb strings.Builder
	sb.WriteString(d.styles.Title.Render(tip.Title) + "  ")
	sb.WriteString(d.styles.BannerEmpty.Render(tip.ValueLabel+":") + " " + tip.Value + "\n")
	for _, f := range tip.Fields {
		sb.WriteString(d.styles.Bold.Render(f.Name+":") + " " + d.styles.Body.Render(f.Value) + "\n")
	}
	return sb.String()
}

func (d *Dashboard) drawStats(s view.State) {
	stats := present.Stats(s)
	if stats == nil {
		d.panels.stats = ""
		return
	}
	parts := make([]string, len(stats))
	for i, st := range stats {
		parts[i] = d.styles.StatValue.Render(st.Value) + " " + d.styles.StatLabel.Render(st.Label)
	}
	d.panels.stats = lipgloss.NewStyle().Width(d.layout.ContentWidth()).Render(strings.Join(parts, "   "))
}

func (d *Dashboard) drawPager(s view.State) {
	if s.Metric == "" {
		d.panels.pager = ""
		return
	}
	var parts []string
	for _, c := range present.Pager(s) {
		label := c.Label
		switch {
		case c.Kind == present.ControlPrev:
			label = "← " + label
		case c.Kind == present.ControlNext:
			label = label + " →"
		}
		switch {
		case c.Disabled:
			parts = append(parts, d.styles.PageDisabled.Render(label))
		case c.Active:
			parts = append(parts, d.styles.PageActive.Render("["+label+"]"))
		default:
			parts = append(parts, d.styles.Body.Render(label))
		}
	}

	sizes := make([]string, len(view.PageSizeChoices))
	for i, ps := range view.PageSizeChoices {
		label := ps.String()
		if ps == s.PageSize {
			label = d.styles.PageActive.Render(label)
		} else {
			label = d.styles.Muted.Render(label)
		}
		sizes[i] = label
	}

	line := strings.Join(parts, " ")
	if line != "" {
		line += "   "
	}
	line += d.styles.Muted.Render("per page: ") + strings.Join(sizes, " ")
	d.panels.pager = line + "\n" + d.styles.Muted.Render(present.PagerSummary(s))
}

func (d *Dashboard) drawBanner(s view.State) {
	b := present.SearchBanner(s)
	if !b.Visible {
		d.panels.banner = ""
		return
	}
	style := d.styles.Banner
	if b.Empty {
		style = d.styles.BannerEmpty
	}
	d.panels.banner = style.Render(b.Title) + "\n" + d.styles.Muted.Render(b.Detail)
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the dashboard.
func (d *Dashboard) View() string {
	var sb strings.Builder
	title := present.FallbackLabels.ChartTitle
	if d.opts.Source != "" {
		title += "  ·  " + d.opts.Source
	}
	sb.WriteString(d.styles.Header.Width(d.layout.TerminalWidth).Render(title))
	sb.WriteString("\n")

	switch {
	case d.loadErr != nil:
		sb.WriteString(d.styles.Error.Render(present.LoadErrorMessage) + "\n")
		sb.WriteString(d.styles.Muted.Render(d.loadErr.Error()) + "\n\n")
		sb.WriteString(d.styles.Footer.Render("q quit"))
		return sb.String()
	case d.ctrl == nil:
		sb.WriteString(d.spinner.View() + " " + present.LoadingMessage + "\n")
		return sb.String()
	}

	sb.WriteString(d.menuView() + "\n")
	sb.WriteString(d.search.View() + "\n")
	if d.panels.banner != "" {
		sb.WriteString(d.panels.banner + "\n")
	}

	chart := d.panels.chart
	if d.loading {
		chart = d.spinner.View() + " Loading " + present.MenuLabel(d.pending) + "..."
	}
	w := d.layout.PanelWidth()
	chartPanel := d.styles.Panel.Width(w).Render(chart)
	if d.panels.table == "" {
		sb.WriteString(chartPanel + "\n")
	} else {
		tablePanel := d.styles.Panel.Width(w).Render(d.panels.table)
		if d.layout.SideBySide {
			sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, chartPanel, " ", tablePanel) + "\n")
		} else {
			sb.WriteString(chartPanel + "\n" + tablePanel + "\n")
		}
	}

	if d.panels.stats != "" {
		sb.WriteString(d.panels.stats + "\n")
	}
	if d.panels.pager != "" {
		sb.WriteString(d.panels.pager + "\n")
	}
	sb.WriteString(d.styles.Footer.Render(d.helpLine()))
	return sb.String()
}

func (d *Dashboard) menuView() string {
	current := d.ctrl.State().Metric
	items := make([]string, 0, len(metric.Kinds()))
	for i, k := range metric.Kinds() {
		label := fmt.Sprintf("%d %s", i+1, present.MenuLabel(k))
		if k == current {
			items = append(items, d.styles.MenuActive.Render(label))
		} else {
			items = append(items, d.styles.MenuItem.Render(label))
		}
	}
	return strings.Join(items, "")
}

func (d *Dashboard) helpLine() string {
	if d.typing {
		return "type to filter • enter/esc done • ctrl+c quit"
	}
	return fmt.Sprintf("1-6 metric • / search • c clear • ←/→ page • s page size • t chart (%s) • ↑/↓ details • q quit", d.chart)
}

// State exposes the current view state.
func (d *Dashboard) State() view.State {
	if d.ctrl == nil {
		return view.State{}
	}
	return d.ctrl.State()
}

// ChartType returns the chart type in use.
func (d *Dashboard) ChartType() present.ChartType { return d.chart }

// Run starts the dashboard as a full-screen program and blocks until it
// exits.
func Run(opts Options) error {
	var p *tea.Program
	opts.Send = func(msg tea.Msg) { p.Send(msg) }
	d := NewDashboard(opts)
	p = tea.NewProgram(d, tea.WithAltScreen())
	_, err := p.Run()
	d.debounce.Stop()
	return err
}
