package export

import (
	"context"
	"fmt"
	"time"

	"countryviz/internal/country"
	"countryviz/internal/metric"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Snapshot is one export run: the canonical records and all six derived
// views over them.
type Snapshot struct {
	RunID     string
	CreatedAt time.Time
	Source    string
	Records   []country.Record
	Skipped   int
	Views     map[metric.Kind][]metric.Item
}

// Build derives every metric view of res concurrently. Derivations are pure
// and share only the read-only record slice.
func Build(ctx context.Context, source string, res country.Result) (*Snapshot, error) {
	kinds := metric.Kinds()
	views := make([][]metric.Item, len(kinds))

	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("derive %s: %w", kind, err)
			}
			views[i] = metric.Derive(res.Data, kind)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap := &Snapshot{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now(),
		Source:    source,
		Records:   res.Data,
		Skipped:   res.Skipped,
		Views:     make(map[metric.Kind][]metric.Item, len(kinds)),
	}
	for i, kind := range kinds {
		snap.Views[kind] = views[i]
	}
	return snap, nil
}
