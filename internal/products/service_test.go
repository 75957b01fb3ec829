package products

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"reviewlens-backend/internal/analyses"
	"reviewlens-backend/internal/complaints"
	"reviewlens-backend/internal/shared/util"
)

// fakeStore captures saved snapshots in memory.
type fakeStore struct {
	saved map[string][]byte
	err   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{saved: make(map[string][]byte)}
}

func (f *fakeStore) SaveWithKey(ctx context.Context, key, contentType string, r io.Reader) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	f.saved[key] = data
	return int64(len(data)), nil
}

func (f *fakeStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	data, ok := f.saved[key]
	if !ok {
		return nil, errors.New("no such key")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func testRecord() analyses.AnalysisRecord {
	rec := analyses.EmptyRecord("analysis-1", "ML-based", true, "2026-08-29T00:00:00Z")
	rec.TotalReviews = 3
	rec.TotalComplaints = 1
	rec.ComplaintReviews = []complaints.ComplaintReview{
		{Text: "broke after a week", ComplaintType: complaints.MaterialQuality, Confidence: 0.91},
	}
	return rec
}

func TestSaveAnalysisSplitsComplaintReviews(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), Store: newFakeStore()}

	err := svc.SaveAnalysis(context.Background(), "target", "89799762", map[string]any{"name": "X"}, testRecord(), []string{"a", "b"})
	if err != nil {
		t.Fatalf("SaveAnalysis: %v", err)
	}

	doc, err := svc.GetProduct(context.Background(), "target", "89799762")
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if doc.DocumentKey != "target_89799762_product" {
		t.Errorf("document_key = %q", doc.DocumentKey)
	}
	if len(doc.Analysis.ComplaintReviews) != 0 {
		t.Errorf("analysis still embeds complaint_reviews")
	}
	if len(doc.ComplaintReviews) != 1 || doc.ComplaintReviews[0].Text != "broke after a week" {
		t.Errorf("document complaint_reviews = %+v", doc.ComplaintReviews)
	}
	if doc.SavedTimestamp == "" {
		t.Errorf("saved_timestamp not set")
	}
}

func TestSaveAnalysisSnapshotsReviews(t *testing.T) {
	store := newFakeStore()
	svc := &Service{Repo: NewMemoryRepo(), Store: store}

	reviews := []string{"Great!", "Terrible"}
	if err := svc.SaveAnalysis(context.Background(), "target", "1", nil, testRecord(), reviews); err != nil {
		t.Fatalf("SaveAnalysis: %v", err)
	}

	data, ok := store.saved["target/1/reviews.json"]
	if !ok {
		t.Fatalf("snapshot not saved, keys: %v", store.saved)
	}
	var got []string
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if len(got) != 2 || got[0] != "Great!" {
		t.Errorf("snapshot = %v", got)
	}

	raw, err := svc.OpenSnapshot(context.Background(), "target", "1")
	if err != nil {
		t.Fatalf("OpenSnapshot: %v", err)
	}
	if !bytes.Equal(raw, data) {
		t.Errorf("OpenSnapshot returned different payload")
	}
}

func TestSaveAnalysisSnapshotFailureIsNonFatal(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("bucket unavailable")
	svc := &Service{Repo: NewMemoryRepo(), Store: store}

	if err := svc.SaveAnalysis(context.Background(), "target", "1", nil, testRecord(), []string{"a"}); err != nil {
		t.Fatalf("SaveAnalysis: %v", err)
	}
	if _, err := svc.GetProduct(context.Background(), "target", "1"); err != nil {
		t.Fatalf("document not saved despite snapshot failure: %v", err)
	}
}

func TestSaveAnalysisRejectsBadKeyParts(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}

	err := svc.SaveAnalysis(context.Background(), "../etc", "1", nil, testRecord(), nil)
	if !errors.Is(err, util.ErrInvalidKeyPart) {
		t.Fatalf("err = %v, want ErrInvalidKeyPart", err)
	}
}

func TestGetComplaintAnalysis(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	rec := testRecord()
	rec.ComplaintPercentage = 33.3
	rec.ComplaintCategories = map[string]int{"material_quality": 1}
	if err := svc.SaveAnalysis(context.Background(), "trendyol", "42", map[string]any{"name": "Y"}, rec, nil); err != nil {
		t.Fatalf("SaveAnalysis: %v", err)
	}

	view, err := svc.GetComplaintAnalysis(context.Background(), "trendyol", "42")
	if err != nil {
		t.Fatalf("GetComplaintAnalysis: %v", err)
	}
	if view.TotalComplaints != 1 || view.ComplaintPercentage != 33.3 {
		t.Errorf("view totals = %d/%v", view.TotalComplaints, view.ComplaintPercentage)
	}
	if view.ComplaintCategories["material_quality"] != 1 {
		t.Errorf("view categories = %v", view.ComplaintCategories)
	}
	if len(view.ComplaintReviews) != 1 {
		t.Errorf("view complaint_reviews = %+v", view.ComplaintReviews)
	}
	if view.ProductInfo["name"] != "Y" {
		t.Errorf("view product_info = %v", view.ProductInfo)
	}
}

type stubAnalyzer struct {
	rec   analyses.AnalysisRecord
	texts []string
}

func (a *stubAnalyzer) Analyze(ctx context.Context, reviews []string) analyses.AnalysisRecord {
	a.texts = reviews
	return a.rec
}

func TestReanalyzeFromSnapshot(t *testing.T) {
	store := newFakeStore()
	svc := &Service{Repo: NewMemoryRepo(), Store: store}
	if err := svc.SaveAnalysis(context.Background(), "target", "7", map[string]any{"name": "Z"}, testRecord(), []string{"Great!", "Terrible, broken"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	fresh := testRecord()
	fresh.AnalysisID = "analysis-2"
	an := &stubAnalyzer{rec: fresh}

	rec, err := svc.Reanalyze(context.Background(), "target", "7", an)
	if err != nil {
		t.Fatalf("Reanalyze: %v", err)
	}
	if rec.AnalysisID != "analysis-2" {
		t.Errorf("analysis_id = %q", rec.AnalysisID)
	}
	if len(an.texts) != 2 || an.texts[1] != "Terrible, broken" {
		t.Errorf("analyzer input = %v", an.texts)
	}

	doc, err := svc.GetProduct(context.Background(), "target", "7")
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if doc.Analysis.AnalysisID != "analysis-2" {
		t.Errorf("stored analysis_id = %q", doc.Analysis.AnalysisID)
	}
	if doc.ProductInfo["name"] != "Z" {
		t.Errorf("product_info not preserved: %v", doc.ProductInfo)
	}
}

func TestReanalyzeWithoutSnapshot(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), Store: newFakeStore()}
	_, err := svc.Reanalyze(context.Background(), "target", "404", &stubAnalyzer{})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGetProductNotFound(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	if _, err := svc.GetProduct(context.Background(), "target", "404"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
