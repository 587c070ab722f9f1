package reports

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"springwatch/internal/pkg/blob"
	"springwatch/internal/pkg/logger"
	apperrors "springwatch/pkg/errors"
)

// RecordStore is the slice of the repository the workflow writes
// through.
type RecordStore interface {
	Append(ctx context.Context, report *Report) error
}

// SubmitInput is a candidate submission.
type SubmitInput struct {
	Image    []byte
	Filename string
	Rating   int
	Comments string
}

// Service runs the submission workflow: validate, check the cooldown
// against the most recent report, upload the image, then append the
// record. Steps run in that order, one at a time, and nothing is
// retried; the first failure aborts the submission and is reported once.
type Service struct {
	blobs    blob.Gateway
	store    RecordStore
	cooldown time.Duration
	now      func() time.Time
}

func NewService(blobs blob.Gateway, store RecordStore, cooldown time.Duration) *Service {
	return &Service{
		blobs:    blobs,
		store:    store,
		cooldown: cooldown,
		now:      time.Now,
	}
}

// Cooldown returns the configured minimum gap between submissions.
func (s *Service) Cooldown() time.Duration {
	return s.cooldown
}

// CooldownRemaining reports how long until a new submission would be
// accepted, zero when submissions are open. A report whose creation
// time is unknown does not hold the cooldown.
func (s *Service) CooldownRemaining(mostRecent *Report) time.Duration {
	if mostRecent == nil || !mostRecent.CreatedAt.Known {
		return 0
	}
	remaining := s.cooldown - s.now().Sub(mostRecent.CreatedAt.Time)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Submit validates the input, enforces the cooldown, uploads the image
// and appends the record. The cooldown check is advisory: it runs
// against the snapshot of the most recent report the caller loaded, so
// two sessions racing inside the window can both succeed.
func (s *Service) Submit(ctx context.Context, in SubmitInput, mostRecent *Report) (*Report, error) {
	if len(in.Image) == 0 {
		return nil, fmt.Errorf("%w: no image", apperrors.ErrValidation)
	}
	if err := ValidateRating(in.Rating); err != nil {
		return nil, fmt.Errorf("%w: bad rating: %v", apperrors.ErrValidation, err)
	}
	if err := ValidateComments(in.Comments); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	if remaining := s.CooldownRemaining(mostRecent); remaining > 0 {
		return nil, fmt.Errorf("%w: %s remaining", apperrors.ErrCooldown, remaining.Round(time.Second))
	}

	url, err := s.blobs.Store(ctx, bytes.NewReader(in.Image), in.Filename)
	if err != nil {
		return nil, fmt.Errorf("%w: image upload: %v", apperrors.ErrStorage, err)
	}

	report := &Report{
		ImageURL:   url,
		Rating:     in.Rating,
		RatingText: RatingLabel(in.Rating),
		Comments:   in.Comments,
	}

	if err := s.store.Append(ctx, report); err != nil {
		// The upload already succeeded, so the stored object is now
		// unreferenced. There is no transaction spanning the two
		// services; the orphan is accepted and logged.
		logger.Warn("report append failed after upload, object %s is orphaned: %v", url, err)
		return nil, fmt.Errorf("%w: record append: %v", apperrors.ErrStorage, err)
	}

	return report, nil
}
