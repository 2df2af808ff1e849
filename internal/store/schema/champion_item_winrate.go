package schema

import "time"

// ChampionItemWinrate represents the champion_item_winrates table, the
// output of the nightly aggregation. The whole table is replaced on each
// rebuild, so rows never update in place.
type ChampionItemWinrate struct {
	ChampionName string  `gorm:"column:champion_name;primaryKey;type:text"`
	ItemID       int     `gorm:"column:item_id;primaryKey"`
	WinRate      float64 `gorm:"column:win_rate;not null"`
	SampleSize   int64   `gorm:"column:sample_size;not null"`

	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the ChampionItemWinrate model
func (ChampionItemWinrate) TableName() string {
	return "champion_item_winrates"
}
