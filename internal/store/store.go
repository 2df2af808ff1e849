package store

import (
	"context"

	"github.com/ukpabik/mid-diff/internal/store/schema"
)

// MatchBuildRow is the join of a cached match with its item build, the
// input shape for the winrate aggregation.
type MatchBuildRow struct {
	ChampionName string `gorm:"column:champion_name"`
	Win          bool   `gorm:"column:win"`
	Item0        int    `gorm:"column:item0"`
	Item1        int    `gorm:"column:item1"`
	Item2        int    `gorm:"column:item2"`
	Item3        int    `gorm:"column:item3"`
	Item4        int    `gorm:"column:item4"`
	Item5        int    `gorm:"column:item5"`
	Item6        int    `gorm:"column:item6"`
}

// Items returns the seven slots in order
func (r MatchBuildRow) Items() [7]int {
	return [7]int{r.Item0, r.Item1, r.Item2, r.Item3, r.Item4, r.Item5, r.Item6}
}

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore

// Store defines the interface for database operations
type Store interface {
	// UpsertPlayer creates a player or updates the identity fields in place
	UpsertPlayer(ctx context.Context, player *schema.Player) error
	// GetPlayerByPUUID retrieves a player by PUUID, nil if absent
	GetPlayerByPUUID(ctx context.Context, puuid string) (*schema.Player, error)
	// GetPlayerByRiotID retrieves a player by riot-id, matched case-insensitively
	GetPlayerByRiotID(ctx context.Context, gameName, tagLine string) (*schema.Player, error)

	// SaveMatch inserts a match row, silently skipping duplicates
	SaveMatch(ctx context.Context, match *schema.Match) error
	// SaveBuild inserts a build row, silently skipping duplicates
	SaveBuild(ctx context.Context, build *schema.PlayerBuild) error
	// ExistingMatchIDs reports which of the given match ids already have
	// BOTH a match row and a build row for the player
	ExistingMatchIDs(ctx context.Context, puuid string, matchIDs []string) (map[string]bool, error)
	// MatchesByPUUID retrieves a player's cached matches, most recent first
	MatchesByPUUID(ctx context.Context, puuid string, limit int) ([]schema.Match, error)
	// MatchBuildRows retrieves every cached match joined with its build
	MatchBuildRows(ctx context.Context) ([]MatchBuildRow, error)

	// ReplaceChampionItemWinrates swaps the whole winrate table for the
	// given rows in one transaction
	ReplaceChampionItemWinrates(ctx context.Context, rows []schema.ChampionItemWinrate) error
	// WinratesByChampion retrieves winrate rows for a champion, matched
	// case-insensitively
	WinratesByChampion(ctx context.Context, champion string) ([]schema.ChampionItemWinrate, error)

	// UpsertRankEntries replaces a player's rank snapshots queue by queue
	UpsertRankEntries(ctx context.Context, entries []schema.RankEntry) error
	// RankEntriesByPUUID retrieves a player's rank snapshots
	RankEntriesByPUUID(ctx context.Context, puuid string) ([]schema.RankEntry, error)
}
