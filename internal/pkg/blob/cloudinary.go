package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	apperrors "springwatch/pkg/errors"
)

// Cloudinary stores images through the Cloudinary upload API.
type Cloudinary struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinary creates a Cloudinary-backed gateway.
func NewCloudinary(cloudName, apiKey, apiSecret, folder string) (*Cloudinary, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, errors.New("cloudinary credentials are required")
	}

	cloudinaryURL := fmt.Sprintf("cloudinary://%s:%s@%s", apiKey, apiSecret, cloudName)
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary client: %w", err)
	}

	if folder == "" {
		folder = "springwatch"
	}

	return &Cloudinary{cld: cld, folder: folder}, nil
}

func (s *Cloudinary) Store(ctx context.Context, r io.Reader, suggestedName string) (string, error) {
	// Cloudinary appends the format itself, so the public ID drops the
	// extension from the generated key.
	key := ObjectKey(time.Now(), suggestedName)
	publicID := strings.TrimSuffix(key, filepath.Ext(key))

	result, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		PublicID:     publicID,
		Folder:       s.folder,
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("%w: upload of %s: %v", apperrors.ErrStorage, key, err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("%w: upload of %s: %s", apperrors.ErrStorage, key, result.Error.Message)
	}

	return result.SecureURL, nil
}
