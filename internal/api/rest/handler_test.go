package rest_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukpabik/mid-diff/internal/api/rest"
	"github.com/ukpabik/mid-diff/internal/domain"
	"github.com/ukpabik/mid-diff/internal/ingest"
	"github.com/ukpabik/mid-diff/internal/logger"
	"github.com/ukpabik/mid-diff/internal/mocks"
	"github.com/ukpabik/mid-diff/internal/recommend"
	"github.com/ukpabik/mid-diff/internal/stats"
	"github.com/ukpabik/mid-diff/internal/store/schema"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	gin.SetMode(gin.TestMode)

	code := m.Run()
	os.Exit(code)
}

type testDeps struct {
	ingester    *mocks.MockIngester
	store       *mocks.MockStore
	recommender *mocks.MockRecommender
	aggregator  *mocks.MockAggregator
}

func newTestRouter(t *testing.T) (*gin.Engine, testDeps) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	deps := testDeps{
		ingester:    mocks.NewMockIngester(ctrl),
		store:       mocks.NewMockStore(ctrl),
		recommender: mocks.NewMockRecommender(ctrl),
		aggregator:  mocks.NewMockAggregator(ctrl),
	}

	router := gin.New()
	rest.SetupRoutes(router, rest.NewHandler(deps.ingester, deps.store, deps.recommender, deps.aggregator))
	return router, deps
}

func perform(router *gin.Engine, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func testPlayer() *schema.Player {
	return &schema.Player{
		PUUID:        "puuid-1",
		GameName:     "Faker",
		TagLine:      "KR1",
		LastSyncedAt: time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestHealthCheck(t *testing.T) {
	router, _ := newTestRouter(t)

	w := perform(router, http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeBody(t, w)["status"])
}

func TestSyncPlayer(t *testing.T) {
	router, deps := newTestRouter(t)

	deps.ingester.EXPECT().
		SyncPlayer(gomock.Any(), "Faker", "KR1").
		Return(&ingest.SyncResult{
			Player:    testPlayer(),
			Requested: 20,
			Fetched:   3,
			RankEntries: []schema.RankEntry{
				{PUUID: "puuid-1", QueueType: string(domain.QueueRankedSolo), Tier: "CHALLENGER"},
			},
		}, nil)

	w := perform(router, http.MethodPost, "/api/v1/sync/Faker/KR1")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(3), body["fetched"])
	assert.Equal(t, float64(20), body["requested"])
	player, ok := body["player"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "puuid-1", player["puuid"])
}

func TestSyncPlayer_Async(t *testing.T) {
	router, deps := newTestRouter(t)

	deps.ingester.EXPECT().
		SyncPlayerAsync(gomock.Any(), "Faker", "KR1").
		Return("job-1", nil)

	w := perform(router, http.MethodPost, "/api/v1/sync/Faker/KR1?async=true")

	assert.Equal(t, http.StatusAccepted, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "job-1", body["job_id"])
	assert.Equal(t, string(ingest.JobStatusQueued), body["status"])
}

func TestSyncPlayer_UnknownRiotID(t *testing.T) {
	router, deps := newTestRouter(t)

	deps.ingester.EXPECT().
		SyncPlayer(gomock.Any(), "Nobody", "NA1").
		Return(nil, &domain.UpstreamError{StatusCode: http.StatusNotFound, URL: "https://example.test"})

	w := perform(router, http.MethodPost, "/api/v1/sync/Nobody/NA1")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSyncPlayer_UpstreamThrottled(t *testing.T) {
	router, deps := newTestRouter(t)

	deps.ingester.EXPECT().
		SyncPlayer(gomock.Any(), "Faker", "KR1").
		Return(nil, domain.ErrRateLimitExceeded)

	w := perform(router, http.MethodPost, "/api/v1/sync/Faker/KR1")

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestSyncPlayer_UpstreamFailure(t *testing.T) {
	router, deps := newTestRouter(t)

	deps.ingester.EXPECT().
		SyncPlayer(gomock.Any(), "Faker", "KR1").
		Return(nil, &domain.UpstreamError{StatusCode: http.StatusInternalServerError, URL: "https://example.test"})

	w := perform(router, http.MethodPost, "/api/v1/sync/Faker/KR1")

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetSyncJob(t *testing.T) {
	router, deps := newTestRouter(t)

	deps.ingester.EXPECT().Job("job-1").Return(&ingest.Job{
		ID:       "job-1",
		GameName: "Faker",
		TagLine:  "KR1",
		Status:   ingest.JobStatusSucceeded,
		Fetched:  5,
	}, true)

	w := perform(router, http.MethodGet, "/api/v1/jobs/job-1")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, string(ingest.JobStatusSucceeded), body["status"])
	assert.Equal(t, float64(5), body["fetched"])
}

func TestGetSyncJob_NotFound(t *testing.T) {
	router, deps := newTestRouter(t)

	deps.ingester.EXPECT().Job("missing").Return(nil, false)

	w := perform(router, http.MethodGet, "/api/v1/jobs/missing")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPlayer(t *testing.T) {
	router, deps := newTestRouter(t)

	deps.store.EXPECT().GetPlayerByPUUID(gomock.Any(), "puuid-1").Return(testPlayer(), nil)

	w := perform(router, http.MethodGet, "/api/v1/players/puuid-1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Faker", decodeBody(t, w)["game_name"])
}

func TestGetPlayer_NotFound(t *testing.T) {
	router, deps := newTestRouter(t)

	deps.store.EXPECT().GetPlayerByPUUID(gomock.Any(), "missing").Return(nil, domain.ErrPlayerNotFound)

	w := perform(router, http.MethodGet, "/api/v1/players/missing")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPlayerByRiotID(t *testing.T) {
	router, deps := newTestRouter(t)

	deps.store.EXPECT().GetPlayerByRiotID(gomock.Any(), "Faker", "KR1").Return(testPlayer(), nil)

	w := perform(router, http.MethodGet, "/api/v1/players/by-riot-id/Faker/KR1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "puuid-1", decodeBody(t, w)["puuid"])
}

func TestGetPlayerByRiotID_NotFound(t *testing.T) {
	router, deps := newTestRouter(t)

	// The store reports a missing row as a nil player, not an error
	deps.store.EXPECT().GetPlayerByRiotID(gomock.Any(), "Nobody", "XX0").Return(nil, nil)

	w := perform(router, http.MethodGet, "/api/v1/players/by-riot-id/Nobody/XX0")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPlayerMatches(t *testing.T) {
	router, deps := newTestRouter(t)

	deps.store.EXPECT().
		MatchesByPUUID(gomock.Any(), "puuid-1", domain.DefaultRecentMatchCount).
		Return([]schema.Match{
			{MatchID: "NA1_100", PUUID: "puuid-1", ChampionName: "Ahri", Win: true},
			{MatchID: "NA1_99", PUUID: "puuid-1", ChampionName: "Ahri", Win: false},
		}, nil)

	w := perform(router, http.MethodGet, "/api/v1/players/puuid-1/matches")

	assert.Equal(t, http.StatusOK, w.Code)
	matches, ok := decodeBody(t, w)["matches"].([]any)
	require.True(t, ok)
	assert.Len(t, matches, 2)
}

func TestGetPlayerMatches_CustomLimit(t *testing.T) {
	router, deps := newTestRouter(t)

	deps.store.EXPECT().
		MatchesByPUUID(gomock.Any(), "puuid-1", 5).
		Return([]schema.Match{}, nil)

	w := perform(router, http.MethodGet, "/api/v1/players/puuid-1/matches?limit=5")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetPlayerMatches_InvalidLimit(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, limit := range []string{"0", "-1", "101", "abc"} {
		w := perform(router, http.MethodGet, "/api/v1/players/puuid-1/matches?limit="+limit)
		assert.Equal(t, http.StatusBadRequest, w.Code, "limit=%s", limit)
	}
}

func TestGetPlayerRanks(t *testing.T) {
	router, deps := newTestRouter(t)

	deps.store.EXPECT().
		RankEntriesByPUUID(gomock.Any(), "puuid-1").
		Return([]schema.RankEntry{
			{PUUID: "puuid-1", QueueType: string(domain.QueueRankedSolo), Tier: "GOLD", Rank: "II"},
		}, nil)

	w := perform(router, http.MethodGet, "/api/v1/players/puuid-1/ranks")

	assert.Equal(t, http.StatusOK, w.Code)
	entries, ok := decodeBody(t, w)["rank_entries"].([]any)
	require.True(t, ok)
	require.Len(t, entries, 1)
}

func TestGetBuild(t *testing.T) {
	router, deps := newTestRouter(t)

	deps.recommender.EXPECT().
		OptimalBuild(gomock.Any(), "ahri").
		Return(&recommend.BuildRecommendation{
			Champion:       "ahri",
			CatalogVersion: "15.17.1",
			Items: []recommend.RecommendedItem{
				{ItemID: 6655, Name: "Luden's Companion", WinRate: 0.62, SampleSize: 40},
			},
		}, nil)

	w := perform(router, http.MethodGet, "/api/v1/builds/ahri")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "ahri", body["champion"])
	items, ok := body["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
}

func TestTriggerRebuild(t *testing.T) {
	router, deps := newTestRouter(t)

	deps.aggregator.EXPECT().Rebuild(gomock.Any()).Return(&stats.RebuildResult{
		Matches:  100,
		Pairs:    12,
		Duration: 250 * time.Millisecond,
	}, nil)

	w := perform(router, http.MethodPost, "/api/v1/stats/rebuild")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(100), body["matches"])
	assert.Equal(t, float64(12), body["pairs"])
}

func TestTriggerRebuild_AlreadyRunning(t *testing.T) {
	router, deps := newTestRouter(t)

	deps.aggregator.EXPECT().Rebuild(gomock.Any()).Return(nil, domain.ErrRebuildInProgress)

	w := perform(router, http.MethodPost, "/api/v1/stats/rebuild")

	assert.Equal(t, http.StatusConflict, w.Code)
}
