package schema

import "time"

// Match represents the matches table - a player-scoped projection of one
// match, keyed (match_id, puuid) and immutable once written. It is not the
// raw upstream payload: only the fields this service consumes survive the
// projection, plus two derived metrics.
type Match struct {
	// MatchID is the upstream match identifier
	MatchID string `gorm:"column:match_id;primaryKey;type:text"`
	// PUUID is the player this row is scoped to
	PUUID string `gorm:"column:puuid;primaryKey;type:text;index:idx_matches_puuid_game_start,priority:1"`

	// ChampionName is the champion the player locked in
	ChampionName string `gorm:"column:champion_name;not null;type:text;index"`
	// ChampionID is the numeric champion identifier
	ChampionID int `gorm:"column:champion_id;not null"`
	// TeamPosition is the assigned lane (TOP, JUNGLE, MIDDLE, BOTTOM, UTILITY)
	TeamPosition string `gorm:"column:team_position;not null;type:text"`
	// Win is whether the player's team won
	Win bool `gorm:"column:win;not null"`

	Kills   int `gorm:"column:kills;not null"`
	Deaths  int `gorm:"column:deaths;not null"`
	Assists int `gorm:"column:assists;not null"`

	GoldEarned           int `gorm:"column:gold_earned;not null"`
	GoldSpent            int `gorm:"column:gold_spent;not null"`
	TotalMinionsKilled   int `gorm:"column:total_minions_killed;not null"`
	NeutralMinionsKilled int `gorm:"column:neutral_minions_killed;not null"`

	DamageDealtToChampions int `gorm:"column:damage_dealt_to_champions;not null"`
	TotalDamageTaken       int `gorm:"column:total_damage_taken;not null"`

	VisionScore int `gorm:"column:vision_score;not null"`
	WardsPlaced int `gorm:"column:wards_placed;not null"`
	WardsKilled int `gorm:"column:wards_killed;not null"`

	TurretTakedowns    int `gorm:"column:turret_takedowns;not null"`
	InhibitorTakedowns int `gorm:"column:inhibitor_takedowns;not null"`

	// GameStartTimestamp is the game start in Unix milliseconds
	GameStartTimestamp int64 `gorm:"column:game_start_timestamp;not null;index:idx_matches_puuid_game_start,priority:2,sort:desc"`
	// GameDuration is the game length in seconds
	GameDuration int64  `gorm:"column:game_duration;not null"`
	GameMode     string `gorm:"column:game_mode;not null;type:text"`
	QueueID      int    `gorm:"column:queue_id;not null"`

	// CSPerMin is (totalMinionsKilled + neutralMinionsKilled) per minute
	CSPerMin float64 `gorm:"column:cs_per_min;not null"`
	// KDA is (kills + assists) / max(1, deaths)
	KDA float64 `gorm:"column:kda;not null"`

	// CreatedAt is when this row was cached
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the Match model
func (Match) TableName() string {
	return "matches"
}
