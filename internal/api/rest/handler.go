package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ukpabik/mid-diff/internal/domain"
	"github.com/ukpabik/mid-diff/internal/ingest"
	"github.com/ukpabik/mid-diff/internal/recommend"
	"github.com/ukpabik/mid-diff/internal/stats"
	"github.com/ukpabik/mid-diff/internal/store"
)

// maxMatchLimit caps the matches page size
const maxMatchLimit = 100

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// SyncPlayer ingests a player's recent ranked history. Synchronous by
	// default; ?async=true queues the sync and returns a job handle.
	// POST /api/v1/sync/:gameName/:tagLine
	SyncPlayer(c *gin.Context)

	// GetSyncJob retrieves the status of an asynchronous sync job
	// GET /api/v1/jobs/:id
	GetSyncJob(c *gin.Context)

	// GetPlayer retrieves a player by puuid
	// GET /api/v1/players/:puuid
	GetPlayer(c *gin.Context)

	// GetPlayerByRiotID retrieves a player by game name and tagline
	// (case-insensitive)
	// GET /api/v1/players/by-riot-id/:gameName/:tagLine
	GetPlayerByRiotID(c *gin.Context)

	// GetPlayerMatches retrieves a player's cached matches, newest first
	// GET /api/v1/players/:puuid/matches?limit=<limit>
	GetPlayerMatches(c *gin.Context)

	// GetPlayerRanks retrieves a player's ranked ladder snapshots
	// GET /api/v1/players/:puuid/ranks
	GetPlayerRanks(c *gin.Context)

	// GetBuild retrieves the recommended build for a champion
	// (case-insensitive)
	// GET /api/v1/builds/:champion
	GetBuild(c *gin.Context)

	// TriggerRebuild runs the winrate aggregation outside its schedule
	// POST /api/v1/stats/rebuild
	TriggerRebuild(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	ingester    ingest.Ingester
	store       store.Store
	recommender recommend.Recommender
	aggregator  stats.Aggregator
}

// NewHandler creates a new REST API handler
func NewHandler(ingester ingest.Ingester, st store.Store, recommender recommend.Recommender, aggregator stats.Aggregator) Handler {
	return &handler{
		ingester:    ingester,
		store:       st,
		recommender: recommender,
		aggregator:  aggregator,
	}
}

// SyncPlayer ingests a player's recent ranked history
func (h *handler) SyncPlayer(c *gin.Context) {
	gameName := c.Param("gameName")
	tagLine := c.Param("tagLine")
	if gameName == "" || tagLine == "" {
		respondBadRequest(c, "Game name and tagline are required")
		return
	}

	if c.Query("async") == "true" {
		jobID, err := h.ingester.SyncPlayerAsync(c.Request.Context(), gameName, tagLine)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusAccepted, SyncJobResponse{
			JobID:  jobID,
			Status: string(ingest.JobStatusQueued),
		})
		return
	}

	result, err := h.ingester.SyncPlayer(c.Request.Context(), gameName, tagLine)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSyncResponse(result))
}

// GetSyncJob retrieves the status of an asynchronous sync job
func (h *handler) GetSyncJob(c *gin.Context) {
	id := c.Param("id")

	job, ok := h.ingester.Job(id)
	if !ok {
		respondNotFound(c, "Job not found")
		return
	}
	c.JSON(http.StatusOK, job)
}

// GetPlayer retrieves a player by puuid
func (h *handler) GetPlayer(c *gin.Context) {
	puuid := c.Param("puuid")

	player, err := h.store.GetPlayerByPUUID(c.Request.Context(), puuid)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if player == nil {
		respondNotFound(c, "Player not found")
		return
	}
	c.JSON(http.StatusOK, toPlayerResponse(player))
}

// GetPlayerByRiotID retrieves a player by game name and tagline
func (h *handler) GetPlayerByRiotID(c *gin.Context) {
	gameName := c.Param("gameName")
	tagLine := c.Param("tagLine")

	player, err := h.store.GetPlayerByRiotID(c.Request.Context(), gameName, tagLine)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if player == nil {
		respondNotFound(c, "Player not found")
		return
	}
	c.JSON(http.StatusOK, toPlayerResponse(player))
}

// GetPlayerMatches retrieves a player's cached matches, newest first
func (h *handler) GetPlayerMatches(c *gin.Context) {
	puuid := c.Param("puuid")

	limit := domain.DefaultRecentMatchCount
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxMatchLimit {
			respondBadRequest(c, "Invalid limit", "limit must be between 1 and "+strconv.Itoa(maxMatchLimit))
			return
		}
		limit = parsed
	}

	matches, err := h.store.MatchesByPUUID(c.Request.Context(), puuid, limit)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": toMatchResponses(matches)})
}

// GetPlayerRanks retrieves a player's ranked ladder snapshots
func (h *handler) GetPlayerRanks(c *gin.Context) {
	puuid := c.Param("puuid")

	entries, err := h.store.RankEntriesByPUUID(c.Request.Context(), puuid)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rank_entries": toRankEntryResponses(entries)})
}

// GetBuild retrieves the recommended build for a champion
func (h *handler) GetBuild(c *gin.Context) {
	champion := c.Param("champion")
	if champion == "" {
		respondBadRequest(c, "Champion name is required")
		return
	}

	build, err := h.recommender.OptimalBuild(c.Request.Context(), champion)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, build)
}

// TriggerRebuild runs the winrate aggregation outside its schedule
func (h *handler) TriggerRebuild(c *gin.Context) {
	result, err := h.aggregator.Rebuild(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRebuildResponse(result))
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "mid-diff-api",
	})
}
