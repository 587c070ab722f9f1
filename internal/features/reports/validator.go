package reports

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

var (
	AllowedImageTypes = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

	MaxImageSize = int64(10 * 1024 * 1024) // 10MB
	MaxComments  = 500
)

// ValidateImageFile checks size and extension of an uploaded image
func ValidateImageFile(header *multipart.FileHeader) error {
	if header.Size == 0 {
		return fmt.Errorf("image file is empty")
	}
	if header.Size > MaxImageSize {
		return fmt.Errorf("image file size exceeds maximum allowed size of %d MB", MaxImageSize/(1024*1024))
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	for _, allowed := range AllowedImageTypes {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("invalid image file type: %s. Allowed types: %s", ext, strings.Join(AllowedImageTypes, ", "))
}

// ValidateRating checks the rating is inside the 1..5 scale
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf("rating must be between %d and %d", MinRating, MaxRating)
	}
	return nil
}

// ValidateComments bounds the optional free-text comment
func ValidateComments(comments string) error {
	if len(comments) > MaxComments {
		return fmt.Errorf("comments cannot exceed %d characters", MaxComments)
	}
	return nil
}
