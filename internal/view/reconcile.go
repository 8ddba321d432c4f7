package view

// Target is one rendered surface that may need redrawing after a
// transition.
type Target int

const (
	TargetChart Target = iota
	TargetTable
	TargetStats
	TargetPager
	TargetSearchBanner
)

func (t Target) String() string {
	switch t {
	case TargetChart:
		return "chart"
	case TargetTable:
		return "table"
	case TargetStats:
		return "stats"
	case TargetPager:
		return "pager"
	case TargetSearchBanner:
		return "search-banner"
	}
	return "unknown"
}

// Plan decides which surfaces to redraw for a change, in redraw order.
// Anything that alters the current page redraws chart, table and stats, in
// that order, followed by the pager. The search banner only follows the
// filter and metric.
func Plan(change Change) []Target {
	if change == 0 {
		return nil
	}
	targets := []Target{TargetChart, TargetTable, TargetStats, TargetPager}
	if change.Any(ChangeMetric | ChangeFilter) {
		targets = append(targets, TargetSearchBanner)
	}
	return targets
}

// Surface is a renderer component that can redraw itself from a state.
type Surface interface {
	Redraw(State)
}

// SurfaceFunc adapts a function to Surface.
type SurfaceFunc func(State)

// Redraw calls f(s).
func (f SurfaceFunc) Redraw(s State) { f(s) }

// Reconciler is the single step that turns a transition into redraws.
// Surfaces run synchronously; Apply returns only after every planned
// surface has redrawn.
type Reconciler struct {
	surfaces map[Target]Surface
}

// NewReconciler creates an empty reconciler.
func NewReconciler() *Reconciler {
	return &Reconciler{surfaces: make(map[Target]Surface)}
}

// Register attaches a surface to a target, replacing any previous one.
func (r *Reconciler) Register(t Target, s Surface) *Reconciler {
	r.surfaces[t] = s
	return r
}

// Apply redraws the surfaces planned for t and returns the targets that
// were redrawn.
func (r *Reconciler) Apply(t Transition) []Target {
	var drawn []Target
	for _, target := range Plan(t.Change) {
		s, ok := r.surfaces[target]
		if !ok {
			continue
		}
		s.Redraw(t.State)
		drawn = append(drawn, target)
	}
	return drawn
}

// RedrawAll redraws every registered surface, for example after a resize or
// a chart type toggle that leaves the state untouched.
func (r *Reconciler) RedrawAll(s State) {
	for _, target := range []Target{TargetChart, TargetTable, TargetStats, TargetPager, TargetSearchBanner} {
		if surface, ok := r.surfaces[target]; ok {
			surface.Redraw(s)
		}
	}
}
