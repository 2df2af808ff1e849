package stats

import (
	"context"
	"sort"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/ukpabik/mid-diff/internal/adapter"
	"github.com/ukpabik/mid-diff/internal/domain"
	"github.com/ukpabik/mid-diff/internal/logger"
	"github.com/ukpabik/mid-diff/internal/store"
	"github.com/ukpabik/mid-diff/internal/store/schema"
)

// minSampleSize is the smallest number of matches a (champion, item) pair
// needs before its win rate is considered signal rather than noise
const minSampleSize = 5

// RebuildResult summarizes one completed aggregate rebuild
type RebuildResult struct {
	// Matches is how many cached match/build rows fed the rebuild
	Matches int
	// Pairs is how many (champion, item) rows survived the sample floor
	Pairs int
	// Duration is how long the rebuild took
	Duration time.Duration
}

//go:generate mockgen -source=aggregator.go -destination=../mocks/stats_aggregator.go -package=mocks -mock_names=Aggregator=MockAggregator

// Aggregator rebuilds the champion/item win rate table from the cached
// match corpus
type Aggregator interface {
	// Rebuild recomputes every (champion, item) win rate and swaps the
	// table in one transaction. At most one rebuild runs at a time; a
	// second call while one is in flight fails immediately.
	Rebuild(ctx context.Context) (*RebuildResult, error)
}

type aggregator struct {
	store   store.Store
	clock   adapter.Clock
	running atomic.Bool
}

// NewAggregator creates a new win rate aggregator
func NewAggregator(st store.Store, clock adapter.Clock) Aggregator {
	return &aggregator{
		store: st,
		clock: clock,
	}
}

// pairStats accumulates wins and totals for one (champion, item) pair
type pairStats struct {
	wins  int64
	total int64
}

// pairKey identifies one (champion, item) pair
type pairKey struct {
	champion string
	item     int
}

// Rebuild recomputes the win rate table from scratch
func (a *aggregator) Rebuild(ctx context.Context) (*RebuildResult, error) {
	if !a.running.CompareAndSwap(false, true) {
		return nil, domain.ErrRebuildInProgress
	}
	defer a.running.Store(false)

	started := a.clock.Now()
	logger.InfoCtx(ctx, "Aggregate rebuild started")

	rows, err := a.store.MatchBuildRows(ctx)
	if err != nil {
		return nil, err
	}

	stats := make(map[pairKey]*pairStats)
	for _, row := range rows {
		for _, itemID := range row.Items() {
			// Zero is an empty slot, not an item
			if itemID == 0 {
				continue
			}
			key := pairKey{champion: row.ChampionName, item: itemID}
			s := stats[key]
			if s == nil {
				s = &pairStats{}
				stats[key] = s
			}
			s.total++
			if row.Win {
				s.wins++
			}
		}
	}

	winrates := make([]schema.ChampionItemWinrate, 0, len(stats))
	for key, s := range stats {
		if s.total < minSampleSize {
			continue
		}
		winrates = append(winrates, schema.ChampionItemWinrate{
			ChampionName: key.champion,
			ItemID:       key.item,
			WinRate:      float64(s.wins) / float64(s.total),
			SampleSize:   s.total,
		})
	}

	// Deterministic output order so identical corpora produce identical
	// tables
	sort.Slice(winrates, func(i, j int) bool {
		if winrates[i].ChampionName != winrates[j].ChampionName {
			return winrates[i].ChampionName < winrates[j].ChampionName
		}
		return winrates[i].ItemID < winrates[j].ItemID
	})

	if err := a.store.ReplaceChampionItemWinrates(ctx, winrates); err != nil {
		return nil, err
	}

	result := &RebuildResult{
		Matches:  len(rows),
		Pairs:    len(winrates),
		Duration: a.clock.Since(started),
	}

	logger.InfoCtx(ctx, "Aggregate rebuild complete",
		zap.Int("matches", result.Matches),
		zap.Int("pairs", result.Pairs),
		zap.Duration("duration", result.Duration),
	)
	return result, nil
}
