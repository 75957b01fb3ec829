package complaints

import (
	"context"
	"testing"
)

func TestKeywordClassifierMatchesCategory(t *testing.T) {
	t.Parallel()

	clf := NewKeywordClassifier()
	results, err := clf.ClassifyBatch(context.Background(), []string{
		"Terrible sound, so muffled",
		"Awful battery, died after an hour",
		"Broken on arrival, cheap plastic",
	}, 0)
	if err != nil {
		t.Fatalf("ClassifyBatch: %v", err)
	}

	if _, ok := results[0][SoundQuality]; !ok {
		t.Errorf("expected sound_quality for first review, got %v", results[0])
	}
	if _, ok := results[1][BatteryLife]; !ok {
		t.Errorf("expected battery_life for second review, got %v", results[1])
	}
	if _, ok := results[2][MaterialQuality]; !ok {
		t.Errorf("expected material_quality for third review, got %v", results[2])
	}
}

func TestKeywordClassifierRequiresNegativeSentiment(t *testing.T) {
	t.Parallel()

	// Category keywords alone are not enough; the review must also contain a
	// generic negative word.
	clf := NewKeywordClassifier()
	results, err := clf.ClassifyBatch(context.Background(), []string{"great sound and battery"}, 0)
	if err != nil {
		t.Fatalf("ClassifyBatch: %v", err)
	}
	if len(results[0]) != 0 {
		t.Fatalf("positive review matched %v", results[0])
	}
}

func TestKeywordClassifierFirstMatchWins(t *testing.T) {
	t.Parallel()

	// Review mentions both material and price issues; the first category in
	// vocabulary order (material_quality) wins and only one is assigned.
	clf := NewKeywordClassifier()
	results, err := clf.ClassifyBatch(context.Background(), []string{"cheap flimsy build, terrible price"}, 0)
	if err != nil {
		t.Fatalf("ClassifyBatch: %v", err)
	}
	if len(results[0]) != 1 {
		t.Fatalf("got %d categories, want 1: %v", len(results[0]), results[0])
	}
	if _, ok := results[0][MaterialQuality]; !ok {
		t.Fatalf("expected material_quality, got %v", results[0])
	}
}

func TestKeywordClassifierLengthPreserving(t *testing.T) {
	t.Parallel()

	texts := []string{"", "bad", "ok", ""}
	results, err := NewKeywordClassifier().ClassifyBatch(context.Background(), texts, 0)
	if err != nil {
		t.Fatalf("ClassifyBatch: %v", err)
	}
	if len(results) != len(texts) {
		t.Fatalf("got %d results for %d texts", len(results), len(texts))
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	if _, ok := Resolve(nil, 0).(*KeywordClassifier); !ok {
		t.Error("nil client must resolve to keyword fallback")
	}
	if _, ok := Resolve(&fakeZeroShot{}, 0).(*ZeroShotClassifier); !ok {
		t.Error("real client must resolve to zero-shot strategy")
	}
}

func TestVocabularyIsFixed(t *testing.T) {
	t.Parallel()

	vocab := Vocabulary()
	if len(vocab) != 8 {
		t.Fatalf("vocabulary has %d categories, want 8", len(vocab))
	}
	for _, cat := range vocab {
		if LabelFor(cat) == "" {
			t.Errorf("category %s missing zero-shot label", cat)
		}
		if SummaryFor(cat) == "" {
			t.Errorf("category %s missing summary", cat)
		}
	}
	// Mutating the returned slice must not change the enumeration order.
	vocab[0] = CustomerService
	if Vocabulary()[0] != MaterialQuality {
		t.Error("Vocabulary() leaked internal slice")
	}
}
