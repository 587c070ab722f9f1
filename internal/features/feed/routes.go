// ================== internal/features/feed/routes.go ==================
package feed

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, f *Feed) {
	handler := NewHandler(f)

	feed := router.Group("/feed")
	{
		feed.GET("", handler.Get)
		feed.GET("/current", handler.Current)
		feed.POST("/selection", handler.Select)
	}
}
