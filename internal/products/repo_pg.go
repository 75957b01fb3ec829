package products

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres. Document payloads are stored as
// JSONB so the stored shape matches the API shape exactly.
type PGRepo struct {
	DB *sql.DB
}

// Upsert inserts or replaces the document for its key.
func (r *PGRepo) Upsert(ctx context.Context, doc ProductDocument) error {
	const query = `
INSERT INTO products (
    document_key,
    product_id,
    retailer,
    product_info,
    analysis,
    complaint_reviews,
    saved_timestamp
) VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (document_key) DO UPDATE SET
    product_info = EXCLUDED.product_info,
    analysis = EXCLUDED.analysis,
    complaint_reviews = EXCLUDED.complaint_reviews,
    saved_timestamp = EXCLUDED.saved_timestamp`

	productInfo, err := marshalNullable(doc.ProductInfo)
	if err != nil {
		return err
	}
	analysis, err := json.Marshal(doc.Analysis)
	if err != nil {
		return err
	}
	complaintReviews, err := json.Marshal(doc.ComplaintReviews)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		doc.DocumentKey,
		doc.ProductID,
		doc.Retailer,
		productInfo,
		analysis,
		complaintReviews,
		doc.SavedTimestamp,
	)
	return err
}

// GetByKey returns the document stored under key.
func (r *PGRepo) GetByKey(ctx context.Context, key string) (ProductDocument, error) {
	const query = `
SELECT document_key, product_id, retailer, product_info, analysis, complaint_reviews, saved_timestamp
FROM products
WHERE document_key = $1`

	var doc ProductDocument
	var productInfo []byte
	var analysis []byte
	var complaintReviews []byte
	err := r.DB.QueryRowContext(ctx, query, key).Scan(
		&doc.DocumentKey,
		&doc.ProductID,
		&doc.Retailer,
		&productInfo,
		&analysis,
		&complaintReviews,
		&doc.SavedTimestamp,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return ProductDocument{}, ErrNotFound
	}
	if err != nil {
		return ProductDocument{}, err
	}

	if len(productInfo) > 0 {
		if err := json.Unmarshal(productInfo, &doc.ProductInfo); err != nil {
			return ProductDocument{}, err
		}
	}
	if err := json.Unmarshal(analysis, &doc.Analysis); err != nil {
		return ProductDocument{}, err
	}
	if err := json.Unmarshal(complaintReviews, &doc.ComplaintReviews); err != nil {
		return ProductDocument{}, err
	}
	return doc, nil
}

// marshalNullable maps a nil map to SQL NULL rather than the JSON literal
// "null".
func marshalNullable(m map[string]any) (any, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}
