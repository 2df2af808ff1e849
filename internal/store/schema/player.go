package schema

import "time"

// Player represents the players table - the identity record every other
// table hangs off. Created on first successful identity resolution and
// updated in place on re-sync.
type Player struct {
	// PUUID is the stable external player identifier
	PUUID string `gorm:"column:puuid;primaryKey;type:text"`
	// GameName is the display name half of the riot-id
	GameName string `gorm:"column:game_name;not null;type:text"`
	// TagLine is the tagline half of the riot-id (e.g. "NA1")
	TagLine string `gorm:"column:tag_line;not null;type:text"`
	// ProfileIconID references the player's profile icon in the catalog CDN
	ProfileIconID int `gorm:"column:profile_icon_id;not null;default:0"`
	// LastSyncedAt records the most recent successful sync for this player
	LastSyncedAt time.Time `gorm:"column:last_synced_at;not null;default:now()"`
	// CreatedAt is when this player was first resolved
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the Player model
func (Player) TableName() string {
	return "players"
}
