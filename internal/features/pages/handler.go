package pages

import (
	"github.com/gin-gonic/gin"

	"springwatch/internal/pkg/response"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// List godoc
// @Summary List informational pages
// @Tags pages
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=[]Page}
// @Router /pages [get]
func (h *Handler) List(c *gin.Context) {
	out := make([]Page, 0, len(slugs))
	for _, slug := range slugs {
		out = append(out, content[slug])
	}

	response.Success(c, out)
}

// Get godoc
// @Summary Get one informational page
// @Tags pages
// @Produce json
// @Param slug path string true "Page slug" Enums(about, privacy, accessibility)
// @Success 200 {object} response.SuccessResponse{data=Page}
// @Failure 404 {object} response.ErrorResponse
// @Router /pages/{slug} [get]
func (h *Handler) Get(c *gin.Context) {
	page, ok := content[c.Param("slug")]
	if !ok {
		response.NotFound(c, "Page not found", "PAGE_NOT_FOUND")
		return
	}

	response.Success(c, page)
}
