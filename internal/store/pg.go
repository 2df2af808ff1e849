package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ukpabik/mid-diff/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	// Set defaults if not provided
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// UpsertPlayer creates a player or updates the identity fields in place
func (s *pgStore) UpsertPlayer(ctx context.Context, player *schema.Player) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "puuid"}},
		DoUpdates: clause.AssignmentColumns([]string{"game_name", "tag_line", "profile_icon_id", "last_synced_at"}),
	}).Create(player).Error
	if err != nil {
		return fmt.Errorf("failed to upsert player: %w", err)
	}
	return nil
}

// GetPlayerByPUUID retrieves a player by PUUID
func (s *pgStore) GetPlayerByPUUID(ctx context.Context, puuid string) (*schema.Player, error) {
	var player schema.Player
	err := s.db.WithContext(ctx).Where("puuid = ?", puuid).First(&player).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return &player, nil
}

// GetPlayerByRiotID retrieves a player by riot-id, matched case-insensitively
func (s *pgStore) GetPlayerByRiotID(ctx context.Context, gameName, tagLine string) (*schema.Player, error) {
	var player schema.Player
	err := s.db.WithContext(ctx).
		Where("LOWER(game_name) = LOWER(?) AND LOWER(tag_line) = LOWER(?)", gameName, tagLine).
		First(&player).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get player by riot-id: %w", err)
	}
	return &player, nil
}

// SaveMatch inserts a match row, silently skipping duplicates
func (s *pgStore) SaveMatch(ctx context.Context, match *schema.Match) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "match_id"}, {Name: "puuid"}},
		DoNothing: true,
	}).Create(match).Error
	if err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}
	return nil
}

// SaveBuild inserts a build row, silently skipping duplicates
func (s *pgStore) SaveBuild(ctx context.Context, build *schema.PlayerBuild) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "match_id"}, {Name: "puuid"}},
		DoNothing: true,
	}).Create(build).Error
	if err != nil {
		return fmt.Errorf("failed to save build: %w", err)
	}
	return nil
}

// ExistingMatchIDs reports which of the given match ids already have both a
// match row and a build row for the player. Ids with only one half written
// are reported absent so the caller re-fetches and completes them.
func (s *pgStore) ExistingMatchIDs(ctx context.Context, puuid string, matchIDs []string) (map[string]bool, error) {
	existing := make(map[string]bool, len(matchIDs))
	if len(matchIDs) == 0 {
		return existing, nil
	}

	var ids []string
	err := s.db.WithContext(ctx).
		Model(&schema.Match{}).
		Select("matches.match_id").
		Joins("JOIN player_builds ON player_builds.match_id = matches.match_id AND player_builds.puuid = matches.puuid").
		Where("matches.puuid = ? AND matches.match_id IN ?", puuid, matchIDs).
		Pluck("matches.match_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to check existing matches: %w", err)
	}

	for _, id := range ids {
		existing[id] = true
	}
	return existing, nil
}

// MatchesByPUUID retrieves a player's cached matches, most recent first
func (s *pgStore) MatchesByPUUID(ctx context.Context, puuid string, limit int) ([]schema.Match, error) {
	var matches []schema.Match
	err := s.db.WithContext(ctx).
		Where("puuid = ?", puuid).
		Order("game_start_timestamp DESC").
		Limit(limit).
		Find(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get matches: %w", err)
	}
	return matches, nil
}

// MatchBuildRows retrieves every cached match joined with its build
func (s *pgStore) MatchBuildRows(ctx context.Context) ([]MatchBuildRow, error) {
	var rows []MatchBuildRow
	err := s.db.WithContext(ctx).
		Table("matches").
		Select("matches.champion_name, matches.win, player_builds.item0, player_builds.item1, player_builds.item2, player_builds.item3, player_builds.item4, player_builds.item5, player_builds.item6").
		Joins("JOIN player_builds ON player_builds.match_id = matches.match_id AND player_builds.puuid = matches.puuid").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get match build rows: %w", err)
	}
	return rows, nil
}

// ReplaceChampionItemWinrates swaps the whole winrate table for the given
// rows in one transaction, so readers see either the old table or the new
// one but never a mix.
func (s *pgStore) ReplaceChampionItemWinrates(ctx context.Context, rows []schema.ChampionItemWinrate) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&schema.ChampionItemWinrate{}).Error; err != nil {
			return fmt.Errorf("failed to clear winrates: %w", err)
		}

		if len(rows) == 0 {
			return nil
		}

		if err := tx.CreateInBatches(rows, winrateBatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert winrates: %w", err)
		}
		return nil
	})
}

// winrateBatchSize keeps batch inserts well under PostgreSQL's 65535
// parameter limit (5 bound fields per row).
const winrateBatchSize = 5000

// WinratesByChampion retrieves winrate rows for a champion, matched
// case-insensitively
func (s *pgStore) WinratesByChampion(ctx context.Context, champion string) ([]schema.ChampionItemWinrate, error) {
	var rows []schema.ChampionItemWinrate
	err := s.db.WithContext(ctx).
		Where("LOWER(champion_name) = LOWER(?)", champion).
		Order("win_rate DESC, item_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get winrates: %w", err)
	}
	return rows, nil
}

// UpsertRankEntries replaces a player's rank snapshots queue by queue
func (s *pgStore) UpsertRankEntries(ctx context.Context, entries []schema.RankEntry) error {
	if len(entries) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "puuid"}, {Name: "queue_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"tier", "rank", "league_points", "wins", "losses", "updated_at"}),
	}).Create(&entries).Error
	if err != nil {
		return fmt.Errorf("failed to upsert rank entries: %w", err)
	}
	return nil
}

// RankEntriesByPUUID retrieves a player's rank snapshots
func (s *pgStore) RankEntriesByPUUID(ctx context.Context, puuid string) ([]schema.RankEntry, error) {
	var entries []schema.RankEntry
	err := s.db.WithContext(ctx).
		Where("puuid = ?", puuid).
		Order("queue_type ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get rank entries: %w", err)
	}
	return entries, nil
}
