package schema

import "time"

// PlayerBuild represents the player_builds table - the seven item-slot
// identifiers a player held at match end, keyed identically to Match. The
// two rows are written together but remain logically independent: a crash
// between the writes leaves one orphaned half, which the both-rows
// existence check turns into a cheap re-fetch on the next pass.
type PlayerBuild struct {
	MatchID string `gorm:"column:match_id;primaryKey;type:text"`
	PUUID   string `gorm:"column:puuid;primaryKey;type:text;index"`

	// Item0..Item6 are item ids; 0 denotes an empty slot
	Item0 int `gorm:"column:item0;not null"`
	Item1 int `gorm:"column:item1;not null"`
	Item2 int `gorm:"column:item2;not null"`
	Item3 int `gorm:"column:item3;not null"`
	Item4 int `gorm:"column:item4;not null"`
	Item5 int `gorm:"column:item5;not null"`
	Item6 int `gorm:"column:item6;not null"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the PlayerBuild model
func (PlayerBuild) TableName() string {
	return "player_builds"
}

// Items returns the seven slots in order
func (b *PlayerBuild) Items() [7]int {
	return [7]int{b.Item0, b.Item1, b.Item2, b.Item3, b.Item4, b.Item5, b.Item6}
}
