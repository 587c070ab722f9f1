package blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	apperrors "springwatch/pkg/errors"
)

// FirebaseStorage stores images in a Firebase Storage bucket and
// returns token-protected public download URLs, the same URL shape the
// Firebase web SDK produces.
type FirebaseStorage struct {
	app    *firebase.App
	bucket string
}

// NewFirebaseStorage initializes the Firebase app with a service
// account credentials file and verifies the default bucket is reachable.
func NewFirebaseStorage(ctx context.Context, credentialsFile, bucket string) (*FirebaseStorage, error) {
	if bucket == "" {
		return nil, errors.New("firebase storage bucket is required")
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{StorageBucket: bucket}, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	if _, err := client.DefaultBucket(); err != nil {
		return nil, fmt.Errorf("failed to open bucket %s: %w", bucket, err)
	}

	return &FirebaseStorage{app: app, bucket: bucket}, nil
}

func (s *FirebaseStorage) Store(ctx context.Context, r io.Reader, suggestedName string) (string, error) {
	client, err := s.app.Storage(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	bkt, err := client.DefaultBucket()
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	key := ObjectKey(time.Now(), suggestedName)
	token := uuid.NewString()

	w := bkt.Object(key).NewWriter(ctx)
	w.Metadata = map[string]string{"firebaseStorageDownloadTokens": token}
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("%w: upload of %s: %v", apperrors.ErrStorage, key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("%w: upload of %s: %v", apperrors.ErrStorage, key, err)
	}

	return fmt.Sprintf(
		"https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media&token=%s",
		s.bucket, url.PathEscape(key), token,
	), nil
}
