package feed

import (
	"time"

	"github.com/gin-gonic/gin"

	"springwatch/internal/features/reports"
	"springwatch/internal/pkg/response"
)

// ReportView is a report plus its derived elapsed-time label.
type ReportView struct {
	reports.Report
	Elapsed string `json:"elapsed" example:"5 hours"`
}

// View is the full feed snapshot the client renders.
type View struct {
	State    string       `json:"state" example:"loaded" enums:"loading,loaded,empty"`
	Selected int          `json:"selected" example:"0"`
	Current  *ReportView  `json:"current"`
	Reports  []ReportView `json:"reports"`
}

// SelectRequest moves the feed selection
type SelectRequest struct {
	Index *int `json:"index" binding:"required" example:"2"`
}

type Handler struct {
	feed *Feed
}

func NewHandler(feed *Feed) *Handler {
	return &Handler{feed: feed}
}

func (h *Handler) view(now time.Time) View {
	items := h.feed.Reports()

	views := make([]ReportView, len(items))
	for i, r := range items {
		views[i] = ReportView{Report: r, Elapsed: ElapsedLabel(r.CreatedAt, now)}
	}

	v := View{
		State:    h.feed.State().String(),
		Selected: h.feed.Selected(),
		Reports:  views,
	}
	if len(views) > 0 && v.Selected < len(views) {
		current := views[v.Selected]
		v.Current = &current
	}
	return v
}

// Get godoc
// @Summary Get the feed
// @Description Refresh the cached report history and return it with elapsed-time labels
// @Tags feed
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=View}
// @Router /feed [get]
func (h *Handler) Get(c *gin.Context) {
	h.feed.Refresh(c.Request.Context())
	response.Success(c, h.view(time.Now()))
}

// Current godoc
// @Summary Get the currently selected report
// @Tags feed
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=ReportView}
// @Failure 404 {object} response.ErrorResponse
// @Router /feed/current [get]
func (h *Handler) Current(c *gin.Context) {
	current := h.feed.Current()
	if current == nil {
		response.NotFound(c, "Feed is empty", "FEED_EMPTY")
		return
	}

	response.Success(c, ReportView{Report: *current, Elapsed: ElapsedLabel(current.CreatedAt, time.Now())})
}

// Select godoc
// @Summary Move the feed selection
// @Description Select a report by index. An out-of-range index leaves the selection unchanged.
// @Tags feed
// @Accept json
// @Produce json
// @Param request body SelectRequest true "Selection index"
// @Success 200 {object} response.SuccessResponse{data=View}
// @Failure 400 {object} response.ErrorResponse
// @Router /feed/selection [post]
func (h *Handler) Select(c *gin.Context) {
	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	h.feed.Select(*req.Index)
	response.Success(c, h.view(time.Now()))
}
