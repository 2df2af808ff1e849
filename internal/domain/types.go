package domain

// QueueType identifies a ranked ladder queue as reported by the upstream
// league endpoint
type QueueType string

const (
	// QueueRankedSolo is the solo/duo ranked ladder
	QueueRankedSolo QueueType = "RANKED_SOLO_5x5"
	// QueueRankedFlex is the flex ranked ladder
	QueueRankedFlex QueueType = "RANKED_FLEX_SR"
)

// MatchFilter selects which match types are returned by the recent-match-id
// list endpoint
type MatchFilter string

const (
	// MatchFilterRanked restricts the id list to ranked games
	MatchFilterRanked MatchFilter = "ranked"
	// MatchFilterNormal restricts the id list to normal games
	MatchFilterNormal MatchFilter = "normal"
)

const (
	// DefaultRecentMatchCount is how many recent match ids a sync pulls
	DefaultRecentMatchCount = 20

	// ItemSlots is the number of item slots a player holds at match end
	ItemSlots = 7
)
