package products

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"reviewlens-backend/internal/analyses"
	"reviewlens-backend/internal/complaints"
	"reviewlens-backend/internal/shared/storage/object"
	"reviewlens-backend/internal/shared/telemetry"
	"reviewlens-backend/internal/shared/util"
)

// Service contains business logic for stored product analyses.
type Service struct {
	Repo  Repo
	Store object.ObjectStore // optional raw-review snapshots
}

// Analyzer produces an analysis record from a batch of review texts.
type Analyzer interface {
	Analyze(ctx context.Context, reviews []string) analyses.AnalysisRecord
}

// ComplaintAnalysis is the complaint-focused view of a stored document.
type ComplaintAnalysis struct {
	ProductInfo         map[string]any               `json:"product_info,omitempty"`
	TotalReviews        int                          `json:"total_reviews"`
	TotalComplaints     int                          `json:"total_complaints"`
	ComplaintPercentage float64                      `json:"complaint_percentage"`
	TopComplaints       []complaints.TopComplaint    `json:"top_complaints"`
	ComplaintCategories map[string]int               `json:"complaint_categories"`
	ComplaintReviews    []complaints.ComplaintReview `json:"complaint_reviews"`
}

// SaveAnalysis stores the analysis under the retailer/product key, moving
// complaint reviews from the analysis to the document level. When a snapshot
// store is configured the raw review batch is archived first; a snapshot
// failure is logged but never fails the save.
func (s *Service) SaveAnalysis(ctx context.Context, retailer, productID string, productInfo map[string]any, rec analyses.AnalysisRecord, reviews []string) error {
	retailer, productID, err := sanitizePair(retailer, productID)
	if err != nil {
		return err
	}

	s.snapshotReviews(ctx, retailer, productID, reviews)

	stripped, complaintReviews := rec.SplitComplaintReviews()
	doc := ProductDocument{
		DocumentKey:      Key(retailer, productID),
		ProductID:        productID,
		Retailer:         retailer,
		ProductInfo:      productInfo,
		Analysis:         stripped,
		ComplaintReviews: complaintReviews,
		SavedTimestamp:   time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.Repo.Upsert(ctx, doc); err != nil {
		return fmt.Errorf("save product %s: %w", doc.DocumentKey, err)
	}
	telemetry.Info("products.saved", map[string]any{
		"document_key":      doc.DocumentKey,
		"complaint_reviews": len(doc.ComplaintReviews),
		"analysis_id":       rec.AnalysisID,
	})
	return nil
}

// GetProduct returns the full stored document.
func (s *Service) GetProduct(ctx context.Context, retailer, productID string) (ProductDocument, error) {
	retailer, productID, err := sanitizePair(retailer, productID)
	if err != nil {
		return ProductDocument{}, err
	}
	return s.Repo.GetByKey(ctx, Key(retailer, productID))
}

// GetAnalysis returns only the analysis part of the stored document.
func (s *Service) GetAnalysis(ctx context.Context, retailer, productID string) (analyses.AnalysisRecord, error) {
	doc, err := s.GetProduct(ctx, retailer, productID)
	if err != nil {
		return analyses.AnalysisRecord{}, err
	}
	return doc.Analysis, nil
}

// GetComplaintAnalysis returns the complaint-focused view of the document.
func (s *Service) GetComplaintAnalysis(ctx context.Context, retailer, productID string) (ComplaintAnalysis, error) {
	doc, err := s.GetProduct(ctx, retailer, productID)
	if err != nil {
		return ComplaintAnalysis{}, err
	}
	return ComplaintAnalysis{
		ProductInfo:         doc.ProductInfo,
		TotalReviews:        doc.Analysis.TotalReviews,
		TotalComplaints:     doc.Analysis.TotalComplaints,
		ComplaintPercentage: doc.Analysis.ComplaintPercentage,
		TopComplaints:       doc.Analysis.TopComplaints,
		ComplaintCategories: doc.Analysis.ComplaintCategories,
		ComplaintReviews:    doc.ComplaintReviews,
	}, nil
}

// OpenSnapshot streams the archived raw review batch for a product.
func (s *Service) OpenSnapshot(ctx context.Context, retailer, productID string) (json.RawMessage, error) {
	if s.Store == nil {
		return nil, ErrNotFound
	}
	retailer, productID, err := sanitizePair(retailer, productID)
	if err != nil {
		return nil, err
	}
	rc, err := s.Store.Open(ctx, snapshotKey(retailer, productID))
	if err != nil {
		telemetry.Warn("products.snapshot_missing", map[string]any{
			"storage_key": snapshotKey(retailer, productID),
			"error":       err.Error(),
		})
		return nil, ErrNotFound
	}
	defer rc.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(rc); err != nil {
		return nil, err
	}
	return json.RawMessage(buf.Bytes()), nil
}

// Reanalyze re-runs the pipeline over the archived raw review batch and
// stores the fresh analysis, preserving any previously saved product info.
func (s *Service) Reanalyze(ctx context.Context, retailer, productID string, an Analyzer) (analyses.AnalysisRecord, error) {
	retailer, productID, err := sanitizePair(retailer, productID)
	if err != nil {
		return analyses.AnalysisRecord{}, err
	}

	raw, err := s.OpenSnapshot(ctx, retailer, productID)
	if err != nil {
		return analyses.AnalysisRecord{}, err
	}
	var reviews []string
	if err := json.Unmarshal(raw, &reviews); err != nil {
		return analyses.AnalysisRecord{}, fmt.Errorf("decode snapshot %s: %w", snapshotKey(retailer, productID), err)
	}

	var productInfo map[string]any
	if doc, err := s.Repo.GetByKey(ctx, Key(retailer, productID)); err == nil {
		productInfo = doc.ProductInfo
	}

	rec := an.Analyze(ctx, reviews)
	if err := s.SaveAnalysis(ctx, retailer, productID, productInfo, rec, reviews); err != nil {
		return analyses.AnalysisRecord{}, err
	}
	return rec, nil
}

func (s *Service) snapshotReviews(ctx context.Context, retailer, productID string, reviews []string) {
	if s.Store == nil || len(reviews) == 0 {
		return
	}
	payload, err := json.Marshal(reviews)
	if err != nil {
		telemetry.Warn("products.snapshot_failed", map[string]any{"error": err.Error()})
		return
	}
	key := snapshotKey(retailer, productID)
	if _, err := s.Store.SaveWithKey(ctx, key, "application/json", bytes.NewReader(payload)); err != nil {
		telemetry.Warn("products.snapshot_failed", map[string]any{
			"storage_key": key,
			"error":       err.Error(),
		})
	}
}

func snapshotKey(retailer, productID string) string {
	return fmt.Sprintf("%s/%s/reviews.json", retailer, productID)
}

func sanitizePair(retailer, productID string) (string, string, error) {
	cleanRetailer, err := util.SanitizeKeyPart(retailer)
	if err != nil {
		return "", "", fmt.Errorf("retailer: %w", err)
	}
	cleanID, err := util.SanitizeKeyPart(productID)
	if err != nil {
		return "", "", fmt.Errorf("product id: %w", err)
	}
	return cleanRetailer, cleanID, nil
}
