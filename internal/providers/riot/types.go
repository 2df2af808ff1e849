package riot

// Account represents a Riot account resolved by riot-id
type Account struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// LeagueEntry represents one ranked ladder entry for a player. Riot returns
// one entry per queue the player has a rank in.
type LeagueEntry struct {
	PUUID        string `json:"puuid"`
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}

// MatchPayload is the full match response from the match-v5 endpoint,
// narrowed to the fields this service consumes
type MatchPayload struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

// MatchMetadata holds match-level identifiers
type MatchMetadata struct {
	MatchID string `json:"matchId"`
}

// MatchInfo holds game-level facts plus the per-player participant entries
type MatchInfo struct {
	GameStartTimestamp int64         `json:"gameStartTimestamp"`
	GameDuration       int64         `json:"gameDuration"`
	GameMode           string        `json:"gameMode"`
	QueueID            int           `json:"queueId"`
	Participants       []Participant `json:"participants"`
}

// Participant is one player's line in a match payload
type Participant struct {
	PUUID        string `json:"puuid"`
	ChampionName string `json:"championName"`
	ChampionID   int    `json:"championId"`
	TeamPosition string `json:"teamPosition"`
	Win          bool   `json:"win"`

	Kills   int `json:"kills"`
	Deaths  int `json:"deaths"`
	Assists int `json:"assists"`

	GoldEarned           int `json:"goldEarned"`
	GoldSpent            int `json:"goldSpent"`
	TotalMinionsKilled   int `json:"totalMinionsKilled"`
	NeutralMinionsKilled int `json:"neutralMinionsKilled"`

	TotalDamageDealtToChampions int `json:"totalDamageDealtToChampions"`
	TotalDamageTaken            int `json:"totalDamageTaken"`

	VisionScore int `json:"visionScore"`
	WardsPlaced int `json:"wardsPlaced"`
	WardsKilled int `json:"wardsKilled"`

	TurretTakedowns    int `json:"turretTakedowns"`
	InhibitorTakedowns int `json:"inhibitorTakedowns"`

	Item0 int `json:"item0"`
	Item1 int `json:"item1"`
	Item2 int `json:"item2"`
	Item3 int `json:"item3"`
	Item4 int `json:"item4"`
	Item5 int `json:"item5"`
	Item6 int `json:"item6"`
}

// Items returns the seven item-slot identifiers in slot order. A zero id
// denotes an empty slot.
func (p *Participant) Items() [7]int {
	return [7]int{p.Item0, p.Item1, p.Item2, p.Item3, p.Item4, p.Item5, p.Item6}
}
