// ================== internal/features/reports/handler.go ==================
package reports

import (
	"context"
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"springwatch/internal/pkg/response"
	apperrors "springwatch/pkg/errors"
)

// RecordReader is the read side of the repository used by the handlers.
type RecordReader interface {
	ListAll(ctx context.Context) ([]Report, error)
	Latest(ctx context.Context) (*Report, error)
}

// FeedRefresher lets the submit handler refresh the cached feed after a
// successful submission without this package depending on the feed.
type FeedRefresher interface {
	Refresh(ctx context.Context) []Report
}

type Handler struct {
	svc  *Service
	repo RecordReader
	feed FeedRefresher
}

func NewHandler(svc *Service, repo RecordReader, feed FeedRefresher) *Handler {
	return &Handler{svc: svc, repo: repo, feed: feed}
}

// List godoc
// @Summary List all reports
// @Description Get the full report history, newest first
// @Tags reports
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=[]Report}
// @Failure 500 {object} response.ErrorResponse
// @Router /reports [get]
func (h *Handler) List(c *gin.Context) {
	reports, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		response.DatabaseError(c, "Failed to load reports")
		return
	}

	response.Success(c, reports)
}

// Latest godoc
// @Summary Get the most recent report
// @Tags reports
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=Report}
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /reports/latest [get]
func (h *Handler) Latest(c *gin.Context) {
	report, err := h.repo.Latest(c.Request.Context())
	if err != nil {
		response.DatabaseError(c, "Failed to load latest report")
		return
	}
	if report == nil {
		response.NotFound(c, "No reports yet", "NO_REPORTS")
		return
	}

	response.Success(c, report)
}

// Submit godoc
// @Summary Submit a new report
// @Description Upload a photo with a 1-5 cleanliness rating and an optional comment, subject to the submission cooldown
// @Tags reports
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Photo of the spring"
// @Param rating formData int true "Cleanliness rating, 1 (worst) to 5 (best)"
// @Param comments formData string false "Optional free-text comment"
// @Success 201 {object} response.SuccessResponse{data=Report}
// @Failure 422 {object} response.ErrorResponse
// @Failure 429 {object} response.ErrorResponse
// @Failure 502 {object} response.ErrorResponse
// @Router /reports [post]
func (h *Handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	in := SubmitInput{Comments: c.PostForm("comments")}
	if rating, err := strconv.Atoi(c.PostForm("rating")); err == nil {
		in.Rating = rating
	}

	file, header, err := c.Request.FormFile("image")
	if err == nil {
		defer file.Close()

		if err := ValidateImageFile(header); err != nil {
			response.ValidationFailed(c, err.Error())
			return
		}

		in.Filename = header.Filename
		in.Image, err = io.ReadAll(io.LimitReader(file, MaxImageSize))
		if err != nil {
			response.BadRequest(c, "Failed to read image upload", "UPLOAD_READ_FAILED")
			return
		}
	}

	mostRecent, err := h.repo.Latest(ctx)
	if err != nil {
		response.DatabaseError(c, "Failed to load latest report")
		return
	}

	report, err := h.svc.Submit(ctx, in, mostRecent)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			response.ValidationFailed(c, err.Error())
		case errors.Is(err, apperrors.ErrCooldown):
			remaining := h.svc.CooldownRemaining(mostRecent)
			c.Header("Retry-After", strconv.Itoa(int(remaining.Seconds())+1))
			response.TooManyRequests(c, "A report was submitted recently. Please wait before submitting again.", "COOLDOWN_ACTIVE")
		case errors.Is(err, apperrors.ErrStorage):
			response.BadGateway(c, "Failed to store the report", "STORAGE_FAILURE")
		default:
			response.InternalServerError(c, "Failed to submit report", "SUBMIT_FAILED")
		}
		return
	}

	if h.feed != nil {
		h.feed.Refresh(ctx)
	}

	response.Created(c, report)
}
