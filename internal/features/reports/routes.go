// ================== internal/features/reports/routes.go ==================
package reports

import (
	"github.com/gin-gonic/gin"

	"springwatch/internal/config"
	"springwatch/internal/pkg/blob"
)

func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config, repo *Repository, blobs blob.Gateway, feed FeedRefresher, submitLimiter gin.HandlerFunc) {
	svc := NewService(blobs, repo, cfg.SubmitCooldown)
	handler := NewHandler(svc, repo, feed)

	reports := router.Group("/reports")
	{
		reports.GET("", handler.List)
		reports.GET("/latest", handler.Latest)
		reports.POST("", submitLimiter, handler.Submit)
	}
}
