// Package blob abstracts the hosted object store that holds report
// images. Implementations store a binary payload under a generated key
// and hand back a publicly fetchable URL.
package blob

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"
)

// Gateway is the storage boundary used by the submission workflow.
// Store must not be retried automatically; a failure is reported once
// to the caller.
type Gateway interface {
	Store(ctx context.Context, r io.Reader, suggestedName string) (url string, err error)
}

// ObjectKey builds the storage key for an uploaded image. The
// millisecond timestamp prefix keeps concurrent uploads from
// overwriting each other even when two users pick the same filename.
func ObjectKey(now time.Time, suggestedName string) string {
	name := filepath.Base(strings.TrimSpace(suggestedName))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "upload"
	}
	name = strings.ReplaceAll(name, " ", "_")
	return fmt.Sprintf("images/%d_%s", now.UnixMilli(), name)
}
