// Package products persists analysis results keyed by retailer and product.
package products

import (
	"errors"
	"fmt"

	"reviewlens-backend/internal/analyses"
	"reviewlens-backend/internal/complaints"
)

// ErrNotFound indicates no stored document for the requested product.
var ErrNotFound = errors.New("product not found")

// ProductDocument is the stored shape for one analyzed product. The analysis
// record is stored without its complaint reviews; those live at the document
// level so list views can read them without loading the full analysis.
type ProductDocument struct {
	DocumentKey      string                       `json:"document_key"`
	ProductID        string                       `json:"product_id"`
	Retailer         string                       `json:"retailer"`
	ProductInfo      map[string]any               `json:"product_info,omitempty"`
	Analysis         analyses.AnalysisRecord      `json:"analysis"`
	ComplaintReviews []complaints.ComplaintReview `json:"complaint_reviews"`
	SavedTimestamp   string                       `json:"saved_timestamp"`
}

// Key builds the canonical document key for a retailer/product pair.
func Key(retailer, productID string) string {
	return fmt.Sprintf("%s_%s_product", retailer, productID)
}
