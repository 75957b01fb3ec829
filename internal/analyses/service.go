package analyses

import (
	"context"
	"time"

	"github.com/google/uuid"

	"reviewlens-backend/internal/complaints"
	"reviewlens-backend/internal/normalize"
	"reviewlens-backend/internal/rating"
	"reviewlens-backend/internal/shared/metrics"
	"reviewlens-backend/internal/shared/telemetry"
)

const maxTopComplaints = 7

// Service contains the analysis pipeline: normalization, rating prediction,
// statistics, and complaint classification.
type Service struct {
	Predictor  rating.Predictor
	Mode       rating.Mode
	Classifier complaints.Classifier
	Threshold  float64
}

// NewService wires the pipeline. A zero threshold falls back to the default.
func NewService(pred rating.Predictor, mode rating.Mode, cls complaints.Classifier, threshold float64) *Service {
	if threshold <= 0 {
		threshold = complaints.DefaultThreshold
	}
	return &Service{Predictor: pred, Mode: mode, Classifier: cls, Threshold: threshold}
}

// Analyze runs the full pipeline over a batch of review texts. It never
// returns an error: an empty input yields an all-zero record, and a
// classification failure yields a record with rating statistics but no
// complaint breakdown.
func (s *Service) Analyze(ctx context.Context, reviews []string) (rec AnalysisRecord) {
	start := metrics.NowMillis()
	metrics.IncAnalysisStarted()

	rec = EmptyRecord(uuid.NewString(), s.Mode.Method(), s.Mode == rating.ModeModel, time.Now().UTC().Format(time.RFC3339))

	defer func() {
		if r := recover(); r != nil {
			telemetry.Error("analyses.panic", map[string]any{"panic": r})
			metrics.IncAnalysisDegraded()
			rec = EmptyRecord(rec.AnalysisID, rec.AnalysisMethod, rec.MLBased, rec.AnalysisTimestamp)
		}
		metrics.ObserveAnalysisDurationMs(metrics.NowMillis() - start)
		metrics.IncAnalysisCompleted()
	}()

	if len(reviews) == 0 {
		telemetry.Info("analyses.empty", map[string]any{"analysis_id": rec.AnalysisID})
		return rec
	}

	cleaned := make([]string, len(reviews))
	for i, text := range reviews {
		cleaned[i] = normalize.Clean(text)
	}

	ratings := s.Predictor.Predict(reviews)
	rated := buildRated(reviews, cleaned, ratings)
	summarize(&rec, rated)
	metrics.AddReviewsAnalyzed(len(rated))

	s.classifyComplaints(ctx, &rec, rated)

	telemetry.Info("analyses.completed", map[string]any{
		"analysis_id":   rec.AnalysisID,
		"total_reviews": rec.TotalReviews,
		"complaints":    rec.TotalComplaints,
		"method":        rec.AnalysisMethod,
	})
	return rec
}

// classifyComplaints runs the complaint classifier over every review and
// folds the results into the record. Classification is independent of the
// rating buckets: a well-rated review can still name a concrete problem. A
// classifier error degrades the record (no category breakdown) rather than
// failing the analysis.
func (s *Service) classifyComplaints(ctx context.Context, rec *AnalysisRecord, rated []RatedReview) {
	texts := make([]string, len(rated))
	for i, r := range rated {
		texts[i] = r.Text
	}

	results, err := s.Classifier.ClassifyBatch(ctx, texts, s.Threshold)
	if err != nil {
		telemetry.Error("analyses.classify_failed", map[string]any{
			"analysis_id": rec.AnalysisID,
			"error":       err.Error(),
		})
		metrics.IncAnalysisDegraded()
		return
	}

	counts := complaints.CountByCategory(results)
	rec.TopComplaints = complaints.TopComplaints(counts, maxTopComplaints)
	rec.ComplaintCategories = nonzeroCounts(counts)
	rec.ComplaintReviews = complaints.ExtractReviews(texts, results)
}
