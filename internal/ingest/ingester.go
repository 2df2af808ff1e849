package ingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/ukpabik/mid-diff/internal/adapter"
	"github.com/ukpabik/mid-diff/internal/config"
	"github.com/ukpabik/mid-diff/internal/domain"
	"github.com/ukpabik/mid-diff/internal/logger"
	"github.com/ukpabik/mid-diff/internal/providers/riot"
	"github.com/ukpabik/mid-diff/internal/store"
	"github.com/ukpabik/mid-diff/internal/store/schema"
)

// SyncResult summarizes one completed player sync
type SyncResult struct {
	Player *schema.Player
	// Requested is how many recent match ids upstream reported
	Requested int
	// Fetched is how many of those were actually pulled; the rest were
	// already cached
	Fetched int
	// RankEntries are the refreshed ladder snapshots
	RankEntries []schema.RankEntry
}

//go:generate mockgen -source=ingester.go -destination=../mocks/ingester.go -package=mocks -mock_names=Ingester=MockIngester

// Ingester drives the player sync flow: identity resolution, gap-only match
// caching, and rank refresh.
type Ingester interface {
	// SyncPlayer runs a full sync inline and returns its result
	SyncPlayer(ctx context.Context, gameName, tagLine string) (*SyncResult, error)
	// SyncPlayerAsync queues a full sync on the worker pool and returns a
	// job id for polling
	SyncPlayerAsync(ctx context.Context, gameName, tagLine string) (string, error)
	// CacheMissing fetches and persists the given matches that are not yet
	// cached for the player, in input order
	CacheMissing(ctx context.Context, puuid string, matchIDs []string) (int, error)
	// Job looks up an async sync job by id
	Job(id string) (*Job, bool)
	// Close drains the worker pool
	Close()
}

type ingester struct {
	riot  riot.Client
	store store.Store
	clock adapter.Clock
	pool  pond.Pool
	jobs  *jobRegistry
}

// NewIngester creates an ingester backed by a bounded worker pool. The pool
// rejects submissions once the queue is full rather than blocking API
// handlers.
func NewIngester(riotClient riot.Client, st store.Store, clock adapter.Clock, cfg config.WorkerConfig) Ingester {
	pool := pond.NewPool(
		cfg.PoolSize,
		pond.WithQueueSize(cfg.QueueSize),
		pond.WithNonBlocking(true),
	)

	return &ingester{
		riot:  riotClient,
		store: st,
		clock: clock,
		pool:  pool,
		jobs:  newJobRegistry(),
	}
}

// SyncPlayer runs a full sync inline
func (i *ingester) SyncPlayer(ctx context.Context, gameName, tagLine string) (*SyncResult, error) {
	account, err := i.riot.AccountByRiotID(ctx, gameName, tagLine)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve account %s#%s: %w", gameName, tagLine, err)
	}

	player := &schema.Player{
		PUUID:        account.PUUID,
		GameName:     account.GameName,
		TagLine:      account.TagLine,
		LastSyncedAt: i.clock.Now().UTC(),
	}
	if err := i.store.UpsertPlayer(ctx, player); err != nil {
		return nil, err
	}

	matchIDs, err := i.riot.RecentMatchIDs(ctx, account.PUUID, domain.MatchFilterRanked, domain.DefaultRecentMatchCount)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent matches: %w", err)
	}

	fetched, err := i.CacheMissing(ctx, account.PUUID, matchIDs)
	if err != nil {
		return nil, err
	}

	rankEntries, err := i.refreshRanks(ctx, account.PUUID)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Player sync complete",
		zap.String("puuid", account.PUUID),
		zap.Int("requested", len(matchIDs)),
		zap.Int("fetched", fetched),
	)

	return &SyncResult{
		Player:      player,
		Requested:   len(matchIDs),
		Fetched:     fetched,
		RankEntries: rankEntries,
	}, nil
}

// SyncPlayerAsync queues a full sync on the worker pool
func (i *ingester) SyncPlayerAsync(ctx context.Context, gameName, tagLine string) (string, error) {
	job := i.jobs.create(gameName, tagLine)

	task := i.pool.SubmitErr(func() error {
		i.jobs.update(job.ID, func(j *Job) { j.Status = JobStatusRunning })

		// The request context dies with the HTTP response; the job runs on
		// its own.
		result, err := i.SyncPlayer(context.Background(), gameName, tagLine)
		if err != nil {
			i.jobs.complete(job.ID, 0, err)
			return err
		}

		i.jobs.update(job.ID, func(j *Job) { j.PUUID = result.Player.PUUID })
		i.jobs.complete(job.ID, result.Fetched, nil)
		return nil
	})

	// Surface queue rejection on the job itself so pollers see the failure
	// instead of a job stuck in queued
	go func() {
		if err := task.Wait(); err != nil && errors.Is(err, pond.ErrQueueFull) {
			i.jobs.complete(job.ID, 0, domain.ErrIngestQueueFull)
			logger.WarnCtx(ctx, "Sync job rejected, worker queue full",
				zap.String("job_id", job.ID),
				zap.String("game_name", gameName),
				zap.String("tag_line", tagLine),
			)
		}
	}()

	return job.ID, nil
}

// CacheMissing fetches and persists matches not yet cached for the player.
// Already-cached ids are skipped without an upstream call, so a re-sync
// spends rate-limit budget only on the gap. Processing is sequential in
// input order and stops at the first upstream or storage error.
func (i *ingester) CacheMissing(ctx context.Context, puuid string, matchIDs []string) (int, error) {
	existing, err := i.store.ExistingMatchIDs(ctx, puuid, matchIDs)
	if err != nil {
		return 0, err
	}

	fetched := 0
	for _, matchID := range matchIDs {
		if existing[matchID] {
			continue
		}

		payload, err := i.riot.MatchByID(ctx, matchID)
		if err != nil {
			return fetched, fmt.Errorf("failed to fetch match %s: %w", matchID, err)
		}

		match, build, err := ProjectParticipant(payload, puuid)
		if err != nil {
			// The player is not in a match their own history listed. Skip
			// the row rather than wedging the sync on upstream data drift.
			logger.WarnCtx(ctx, "Participant missing from match payload, skipping",
				zap.String("match_id", matchID),
				zap.String("puuid", puuid),
				zap.Error(err),
			)
			continue
		}

		if err := i.store.SaveMatch(ctx, match); err != nil {
			return fetched, err
		}
		if err := i.store.SaveBuild(ctx, build); err != nil {
			return fetched, err
		}
		fetched++
	}

	return fetched, nil
}

// refreshRanks pulls the player's current ladder entries and overwrites the
// stored snapshots
func (i *ingester) refreshRanks(ctx context.Context, puuid string) ([]schema.RankEntry, error) {
	leagueEntries, err := i.riot.LeagueEntries(ctx, puuid)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch league entries: %w", err)
	}

	now := i.clock.Now().UTC()
	entries := make([]schema.RankEntry, 0, len(leagueEntries))
	for _, entry := range leagueEntries {
		entries = append(entries, schema.RankEntry{
			PUUID:        puuid,
			QueueType:    entry.QueueType,
			Tier:         entry.Tier,
			Rank:         entry.Rank,
			LeaguePoints: entry.LeaguePoints,
			Wins:         entry.Wins,
			Losses:       entry.Losses,
			UpdatedAt:    now,
		})
	}

	if err := i.store.UpsertRankEntries(ctx, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Job looks up an async sync job by id
func (i *ingester) Job(id string) (*Job, bool) {
	return i.jobs.get(id)
}

// Close drains the worker pool
func (i *ingester) Close() {
	i.pool.StopAndWait()
}
