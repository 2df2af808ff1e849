package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukpabik/mid-diff/internal/domain"
	"github.com/ukpabik/mid-diff/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func buildTestPlayer(puuid, gameName, tagLine string) *schema.Player {
	return &schema.Player{
		PUUID:         puuid,
		GameName:      gameName,
		TagLine:       tagLine,
		ProfileIconID: 4568,
		LastSyncedAt:  time.Now().UTC(),
	}
}

func buildTestMatch(matchID, puuid, champion string, win bool) *schema.Match {
	return &schema.Match{
		MatchID:              matchID,
		PUUID:                puuid,
		ChampionName:         champion,
		ChampionID:           103,
		TeamPosition:         "MIDDLE",
		Win:                  win,
		Kills:                7,
		Deaths:               3,
		Assists:              9,
		GoldEarned:           12500,
		GoldSpent:            11800,
		TotalMinionsKilled:   185,
		NeutralMinionsKilled: 12,
		GameStartTimestamp:   time.Now().UnixMilli(),
		GameDuration:         1850,
		GameMode:             "CLASSIC",
		QueueID:              420,
		CSPerMin:             6.4,
		KDA:                  5.33,
	}
}

func buildTestBuild(matchID, puuid string, items [7]int) *schema.PlayerBuild {
	return &schema.PlayerBuild{
		MatchID: matchID,
		PUUID:   puuid,
		Item0:   items[0],
		Item1:   items[1],
		Item2:   items[2],
		Item3:   items[3],
		Item4:   items[4],
		Item5:   items[5],
		Item6:   items[6],
	}
}

// saveMatchWithBuild writes both halves of a cached match
func saveMatchWithBuild(t *testing.T, store Store, match *schema.Match, items [7]int) {
	ctx := context.Background()
	require.NoError(t, store.SaveMatch(ctx, match))
	require.NoError(t, store.SaveBuild(ctx, buildTestBuild(match.MatchID, match.PUUID, items)))
}

// =============================================================================
// Test: Players
// =============================================================================

func testUpsertPlayer(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("creates a new player", func(t *testing.T) {
		player := buildTestPlayer("puuid-create-1", "Faker", "KR1")
		require.NoError(t, store.UpsertPlayer(ctx, player))

		got, err := store.GetPlayerByPUUID(ctx, "puuid-create-1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Faker", got.GameName)
		assert.Equal(t, "KR1", got.TagLine)
	})

	t.Run("updates identity fields in place on conflict", func(t *testing.T) {
		player := buildTestPlayer("puuid-update-1", "OldName", "NA1")
		require.NoError(t, store.UpsertPlayer(ctx, player))

		renamed := buildTestPlayer("puuid-update-1", "NewName", "NA1")
		renamed.ProfileIconID = 9999
		require.NoError(t, store.UpsertPlayer(ctx, renamed))

		got, err := store.GetPlayerByPUUID(ctx, "puuid-update-1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "NewName", got.GameName)
		assert.Equal(t, 9999, got.ProfileIconID)
	})

	t.Run("returns nil for unknown puuid", func(t *testing.T) {
		got, err := store.GetPlayerByPUUID(ctx, "puuid-missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func testGetPlayerByRiotID(t *testing.T, store Store) {
	ctx := context.Background()

	player := buildTestPlayer("puuid-riotid-1", "Hide on bush", "KR1")
	require.NoError(t, store.UpsertPlayer(ctx, player))

	t.Run("matches case-insensitively", func(t *testing.T) {
		got, err := store.GetPlayerByRiotID(ctx, "hide ON BUSH", "kr1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "puuid-riotid-1", got.PUUID)
	})

	t.Run("returns nil for unknown riot-id", func(t *testing.T) {
		got, err := store.GetPlayerByRiotID(ctx, "nobody", "XX0")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

// =============================================================================
// Test: Matches and Builds
// =============================================================================

func testSaveMatchIdempotent(t *testing.T, store Store) {
	ctx := context.Background()

	match := buildTestMatch("NA1_100", "puuid-m1", "Ahri", true)
	require.NoError(t, store.SaveMatch(ctx, match))

	// Re-inserting the same key with different stats is silently skipped
	dup := buildTestMatch("NA1_100", "puuid-m1", "Ahri", true)
	dup.Kills = 99
	require.NoError(t, store.SaveMatch(ctx, dup))

	matches, err := store.MatchesByPUUID(ctx, "puuid-m1", 10)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 7, matches[0].Kills)

	build := buildTestBuild("NA1_100", "puuid-m1", [7]int{3006, 6655, 3020, 0, 0, 0, 3363})
	require.NoError(t, store.SaveBuild(ctx, build))
	require.NoError(t, store.SaveBuild(ctx, build))
}

func testExistingMatchIDs(t *testing.T, store Store) {
	ctx := context.Background()
	puuid := "puuid-existing"

	// Complete pair
	saveMatchWithBuild(t, store, buildTestMatch("NA1_200", puuid, "Orianna", true), [7]int{6655, 3020, 0, 0, 0, 0, 3363})

	// Match row only, no build. A crash between the two writes leaves this
	// shape and it must count as absent.
	require.NoError(t, store.SaveMatch(ctx, buildTestMatch("NA1_201", puuid, "Orianna", false)))

	// Same match id cached for another player must not leak in
	saveMatchWithBuild(t, store, buildTestMatch("NA1_202", "puuid-other", "Zed", true), [7]int{3006, 0, 0, 0, 0, 0, 3363})

	existing, err := store.ExistingMatchIDs(ctx, puuid, []string{"NA1_200", "NA1_201", "NA1_202", "NA1_203"})
	require.NoError(t, err)
	assert.True(t, existing["NA1_200"])
	assert.False(t, existing["NA1_201"])
	assert.False(t, existing["NA1_202"])
	assert.False(t, existing["NA1_203"])

	t.Run("empty input returns empty map", func(t *testing.T) {
		existing, err := store.ExistingMatchIDs(ctx, puuid, nil)
		require.NoError(t, err)
		assert.Empty(t, existing)
	})
}

func testMatchesByPUUID(t *testing.T, store Store) {
	ctx := context.Background()
	puuid := "puuid-recent"

	base := time.Now().UnixMilli()
	for i := 0; i < 5; i++ {
		match := buildTestMatch(fmt.Sprintf("NA1_30%d", i), puuid, "Syndra", i%2 == 0)
		match.GameStartTimestamp = base + int64(i*60_000)
		require.NoError(t, store.SaveMatch(ctx, match))
	}

	matches, err := store.MatchesByPUUID(ctx, puuid, 3)
	require.NoError(t, err)
	require.Len(t, matches, 3)

	// Most recent first
	assert.Equal(t, "NA1_304", matches[0].MatchID)
	assert.Equal(t, "NA1_303", matches[1].MatchID)
	assert.Equal(t, "NA1_302", matches[2].MatchID)

	limit := domain.DefaultRecentMatchCount
	matches, err = store.MatchesByPUUID(ctx, puuid, limit)
	require.NoError(t, err)
	assert.Len(t, matches, 5)
}

func testMatchBuildRows(t *testing.T, store Store) {
	ctx := context.Background()

	saveMatchWithBuild(t, store, buildTestMatch("NA1_400", "puuid-j1", "Ahri", true), [7]int{6655, 3020, 0, 0, 0, 0, 3363})
	saveMatchWithBuild(t, store, buildTestMatch("NA1_401", "puuid-j2", "Zed", false), [7]int{6693, 3111, 0, 0, 0, 0, 3364})

	// Build-less match must not appear in the join
	require.NoError(t, store.SaveMatch(ctx, buildTestMatch("NA1_402", "puuid-j3", "Lux", true)))

	rows, err := store.MatchBuildRows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byChampion := make(map[string]MatchBuildRow)
	for _, row := range rows {
		byChampion[row.ChampionName] = row
	}
	require.Contains(t, byChampion, "Ahri")
	assert.True(t, byChampion["Ahri"].Win)
	assert.Equal(t, [7]int{6655, 3020, 0, 0, 0, 0, 3363}, byChampion["Ahri"].Items())
	require.Contains(t, byChampion, "Zed")
	assert.False(t, byChampion["Zed"].Win)
}

// =============================================================================
// Test: Winrates
// =============================================================================

func testReplaceChampionItemWinrates(t *testing.T, store Store) {
	ctx := context.Background()

	first := []schema.ChampionItemWinrate{
		{ChampionName: "Ahri", ItemID: 6655, WinRate: 0.6, SampleSize: 10},
		{ChampionName: "Ahri", ItemID: 3020, WinRate: 0.55, SampleSize: 8},
		{ChampionName: "Zed", ItemID: 6693, WinRate: 0.48, SampleSize: 12},
	}
	require.NoError(t, store.ReplaceChampionItemWinrates(ctx, first))

	rows, err := store.WinratesByChampion(ctx, "Ahri")
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	// Second rebuild fully replaces the table
	second := []schema.ChampionItemWinrate{
		{ChampionName: "Zed", ItemID: 6693, WinRate: 0.52, SampleSize: 20},
	}
	require.NoError(t, store.ReplaceChampionItemWinrates(ctx, second))

	rows, err = store.WinratesByChampion(ctx, "Ahri")
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = store.WinratesByChampion(ctx, "Zed")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.InDelta(t, 0.52, rows[0].WinRate, 1e-9)

	t.Run("replace with empty set clears the table", func(t *testing.T) {
		require.NoError(t, store.ReplaceChampionItemWinrates(ctx, nil))
		rows, err := store.WinratesByChampion(ctx, "Zed")
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func testWinratesByChampion(t *testing.T, store Store) {
	ctx := context.Background()

	rows := []schema.ChampionItemWinrate{
		{ChampionName: "Orianna", ItemID: 6655, WinRate: 0.61, SampleSize: 30},
		{ChampionName: "Orianna", ItemID: 3020, WinRate: 0.61, SampleSize: 25},
		{ChampionName: "Orianna", ItemID: 4645, WinRate: 0.7, SampleSize: 9},
	}
	require.NoError(t, store.ReplaceChampionItemWinrates(ctx, rows))

	got, err := store.WinratesByChampion(ctx, "oRIaNNa")
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Ordered by win rate descending, item id ascending on ties
	assert.Equal(t, 4645, got[0].ItemID)
	assert.Equal(t, 3020, got[1].ItemID)
	assert.Equal(t, 6655, got[2].ItemID)
}

// =============================================================================
// Test: Rank Entries
// =============================================================================

func testUpsertRankEntries(t *testing.T, store Store) {
	ctx := context.Background()
	puuid := "puuid-ranks"

	entries := []schema.RankEntry{
		{PUUID: puuid, QueueType: string(domain.QueueRankedSolo), Tier: "GOLD", Rank: "II", LeaguePoints: 54, Wins: 30, Losses: 28},
		{PUUID: puuid, QueueType: string(domain.QueueRankedFlex), Tier: "SILVER", Rank: "I", LeaguePoints: 12, Wins: 10, Losses: 9},
	}
	require.NoError(t, store.UpsertRankEntries(ctx, entries))

	got, err := store.RankEntriesByPUUID(ctx, puuid)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Re-sync overwrites the solo snapshot in place
	entries[0].Tier = "PLATINUM"
	entries[0].Rank = "IV"
	entries[0].LeaguePoints = 1
	require.NoError(t, store.UpsertRankEntries(ctx, entries[:1]))

	got, err = store.RankEntriesByPUUID(ctx, puuid)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, entry := range got {
		if entry.QueueType == string(domain.QueueRankedSolo) {
			assert.Equal(t, "PLATINUM", entry.Tier)
			assert.Equal(t, 1, entry.LeaguePoints)
		}
	}

	t.Run("empty input is a no-op", func(t *testing.T) {
		require.NoError(t, store.UpsertRankEntries(ctx, nil))
	})
}

// RunStoreTests runs the shared store suite against an implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"UpsertPlayer", testUpsertPlayer},
		{"GetPlayerByRiotID", testGetPlayerByRiotID},
		{"SaveMatchIdempotent", testSaveMatchIdempotent},
		{"ExistingMatchIDs", testExistingMatchIDs},
		{"MatchesByPUUID", testMatchesByPUUID},
		{"MatchBuildRows", testMatchBuildRows},
		{"ReplaceChampionItemWinrates", testReplaceChampionItemWinrates},
		{"WinratesByChampion", testWinratesByChampion},
		{"UpsertRankEntries", testUpsertRankEntries},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
