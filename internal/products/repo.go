package products

import "context"

// Repo defines persistence operations for product documents.
type Repo interface {
	Upsert(ctx context.Context, doc ProductDocument) error
	GetByKey(ctx context.Context, key string) (ProductDocument, error)
}
