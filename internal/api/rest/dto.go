package rest

import (
	"time"

	"github.com/ukpabik/mid-diff/internal/ingest"
	"github.com/ukpabik/mid-diff/internal/stats"
	"github.com/ukpabik/mid-diff/internal/store/schema"
)

// PlayerResponse represents a player identity record
type PlayerResponse struct {
	PUUID         string    `json:"puuid"`
	GameName      string    `json:"game_name"`
	TagLine       string    `json:"tag_line"`
	ProfileIconID int       `json:"profile_icon_id"`
	LastSyncedAt  time.Time `json:"last_synced_at"`
}

// MatchResponse represents one cached match from the player's perspective
type MatchResponse struct {
	MatchID      string `json:"match_id"`
	ChampionName string `json:"champion_name"`
	ChampionID   int    `json:"champion_id"`
	TeamPosition string `json:"team_position"`
	Win          bool   `json:"win"`

	Kills   int `json:"kills"`
	Deaths  int `json:"deaths"`
	Assists int `json:"assists"`

	GoldEarned             int `json:"gold_earned"`
	TotalMinionsKilled     int `json:"total_minions_killed"`
	NeutralMinionsKilled   int `json:"neutral_minions_killed"`
	DamageDealtToChampions int `json:"damage_dealt_to_champions"`
	TotalDamageTaken       int `json:"total_damage_taken"`
	VisionScore            int `json:"vision_score"`

	GameStartTimestamp int64  `json:"game_start_timestamp"`
	GameDuration       int64  `json:"game_duration"`
	GameMode           string `json:"game_mode"`
	QueueID            int    `json:"queue_id"`

	CSPerMin float64 `json:"cs_per_min"`
	KDA      float64 `json:"kda"`
}

// RankEntryResponse represents a ranked ladder snapshot for one queue
type RankEntryResponse struct {
	QueueType    string    `json:"queue_type"`
	Tier         string    `json:"tier"`
	Rank         string    `json:"rank"`
	LeaguePoints int       `json:"league_points"`
	Wins         int       `json:"wins"`
	Losses       int       `json:"losses"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SyncResponse represents the outcome of a synchronous player sync
type SyncResponse struct {
	Player      PlayerResponse      `json:"player"`
	Requested   int                 `json:"requested"`
	Fetched     int                 `json:"fetched"`
	RankEntries []RankEntryResponse `json:"rank_entries"`
}

// SyncJobResponse represents an accepted asynchronous sync
type SyncJobResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

// RebuildResponse represents the outcome of a manual aggregate rebuild
type RebuildResponse struct {
	Matches    int    `json:"matches"`
	Pairs      int    `json:"pairs"`
	DurationMS int64  `json:"duration_ms"`
	FinishedAt string `json:"finished_at"`
}

// toPlayerResponse maps a player row to its API representation
func toPlayerResponse(player *schema.Player) PlayerResponse {
	return PlayerResponse{
		PUUID:         player.PUUID,
		GameName:      player.GameName,
		TagLine:       player.TagLine,
		ProfileIconID: player.ProfileIconID,
		LastSyncedAt:  player.LastSyncedAt,
	}
}

// toMatchResponse maps a match row to its API representation
func toMatchResponse(match schema.Match) MatchResponse {
	return MatchResponse{
		MatchID:                match.MatchID,
		ChampionName:           match.ChampionName,
		ChampionID:             match.ChampionID,
		TeamPosition:           match.TeamPosition,
		Win:                    match.Win,
		Kills:                  match.Kills,
		Deaths:                 match.Deaths,
		Assists:                match.Assists,
		GoldEarned:             match.GoldEarned,
		TotalMinionsKilled:     match.TotalMinionsKilled,
		NeutralMinionsKilled:   match.NeutralMinionsKilled,
		DamageDealtToChampions: match.DamageDealtToChampions,
		TotalDamageTaken:       match.TotalDamageTaken,
		VisionScore:            match.VisionScore,
		GameStartTimestamp:     match.GameStartTimestamp,
		GameDuration:           match.GameDuration,
		GameMode:               match.GameMode,
		QueueID:                match.QueueID,
		CSPerMin:               match.CSPerMin,
		KDA:                    match.KDA,
	}
}

// toMatchResponses maps a slice of match rows
func toMatchResponses(matches []schema.Match) []MatchResponse {
	responses := make([]MatchResponse, 0, len(matches))
	for _, match := range matches {
		responses = append(responses, toMatchResponse(match))
	}
	return responses
}

// toRankEntryResponses maps ranked ladder snapshots
func toRankEntryResponses(entries []schema.RankEntry) []RankEntryResponse {
	responses := make([]RankEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, RankEntryResponse{
			QueueType:    entry.QueueType,
			Tier:         entry.Tier,
			Rank:         entry.Rank,
			LeaguePoints: entry.LeaguePoints,
			Wins:         entry.Wins,
			Losses:       entry.Losses,
			UpdatedAt:    entry.UpdatedAt,
		})
	}
	return responses
}

// toSyncResponse maps a sync result to its API representation
func toSyncResponse(result *ingest.SyncResult) SyncResponse {
	return SyncResponse{
		Player:      toPlayerResponse(result.Player),
		Requested:   result.Requested,
		Fetched:     result.Fetched,
		RankEntries: toRankEntryResponses(result.RankEntries),
	}
}

// toRebuildResponse maps a rebuild result to its API representation
func toRebuildResponse(result *stats.RebuildResult) RebuildResponse {
	return RebuildResponse{
		Matches:    result.Matches,
		Pairs:      result.Pairs,
		DurationMS: result.Duration.Milliseconds(),
		FinishedAt: time.Now().UTC().Format(time.RFC3339),
	}
}
