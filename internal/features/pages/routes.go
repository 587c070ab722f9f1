// ================== internal/features/pages/routes.go ==================
package pages

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	handler := NewHandler()

	pages := router.Group("/pages")
	{
		pages.GET("", handler.List)
		pages.GET("/:slug", handler.Get)
	}
}
