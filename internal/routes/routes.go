package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"springwatch/internal/config"
	"springwatch/internal/features/feed"
	"springwatch/internal/features/pages"
	"springwatch/internal/features/reports"
	"springwatch/internal/pkg/blob"
	"springwatch/internal/pkg/ratelimit"
)

func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config, blobs blob.Gateway) {
	// API v1 group
	api := router.Group("/api/v1")

	// The repository is shared: the reports feature writes through it,
	// the feed refreshes from it.
	repo := reports.NewRepository(db)
	reportFeed := feed.New(repo)

	// Transport-level limiter on the submit endpoint. The domain
	// cooldown is enforced inside the submission workflow.
	submitLimiter := ratelimit.New(cfg.RateLimit, cfg.RateWindow)
	submitLimiter.StartCleanup(cfg.RateWindow)

	reports.RegisterRoutes(api, cfg, repo, blobs, reportFeed, ratelimit.Middleware(submitLimiter))
	feed.RegisterRoutes(api, reportFeed)
	pages.RegisterRoutes(api)
}
