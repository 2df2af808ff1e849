package schema

import "time"

// RankEntry represents the rank_entries table, one row per player per
// ranked queue. Re-synced snapshots overwrite in place.
type RankEntry struct {
	PUUID        string `gorm:"column:puuid;primaryKey;type:text"`
	QueueType    string `gorm:"column:queue_type;primaryKey;type:text"`
	Tier         string `gorm:"column:tier;type:text"`
	Rank         string `gorm:"column:rank;type:text"`
	LeaguePoints int    `gorm:"column:league_points;not null"`
	Wins         int    `gorm:"column:wins;not null"`
	Losses       int    `gorm:"column:losses;not null"`

	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the RankEntry model
func (RankEntry) TableName() string {
	return "rank_entries"
}
