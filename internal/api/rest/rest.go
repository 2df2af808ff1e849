package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint (no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Sync a player's recent history (sync, or async with ?async=true)
		v1.POST("/sync/:gameName/:tagLine", handler.SyncPlayer)

		// Async sync job status (public read access)
		v1.GET("/jobs/:id", handler.GetSyncJob)

		// Player endpoints (public read access)
		v1.GET("/players/by-riot-id/:gameName/:tagLine", handler.GetPlayerByRiotID)
		v1.GET("/players/:puuid", handler.GetPlayer)
		v1.GET("/players/:puuid/matches", handler.GetPlayerMatches)
		v1.GET("/players/:puuid/ranks", handler.GetPlayerRanks)

		// Build recommendation (public read access)
		v1.GET("/builds/:champion", handler.GetBuild)

		// Manual aggregate rebuild
		v1.POST("/stats/rebuild", handler.TriggerRebuild)
	}
}
