package object

import (
	"context"
	"io"
)

// ObjectStore defines the contract for saving and retrieving raw review
// snapshots. Keys are caller-chosen relative paths such as
// "target/89799762/reviews.json".
type ObjectStore interface {
	SaveWithKey(ctx context.Context, storageKey string, contentType string, r io.Reader) (sizeBytes int64, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}
