package rating

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// testArtifact builds a two-term, two-class artifact where the word "love"
// votes for five stars and "broken" votes for one.
func testArtifact() Artifact {
	return Artifact{
		Vocabulary: map[string]int{"love": 0, "broken": 1},
		Weights: [][]float64{
			// term(love) term(broken) pos neg int pos-neg len avgw punct caps
			{0, 2, 0, 1, 0, 0, 0, 0, 0, 0},
			{2, 0, 1, 0, 0, 1, 0, 0, 0, 0},
		},
		Intercepts: []float64{0, 0},
		Labels:     []int{1, 5},
	}
}

func TestModelPredict(t *testing.T) {
	t.Parallel()

	model, err := NewModelPredictor(testArtifact())
	if err != nil {
		t.Fatalf("NewModelPredictor: %v", err)
	}

	got := model.Predict([]string{"I love it", "Arrived broken"})
	if got[0] != 5 {
		t.Errorf("positive review rated %d, want 5", got[0])
	}
	if got[1] != 1 {
		t.Errorf("negative review rated %d, want 1", got[1])
	}
}

func TestModelPredictLengthPreserving(t *testing.T) {
	t.Parallel()

	model, err := NewModelPredictor(testArtifact())
	if err != nil {
		t.Fatalf("NewModelPredictor: %v", err)
	}
	texts := []string{"a", "", "b", "c"}
	if got := model.Predict(texts); len(got) != len(texts) {
		t.Fatalf("Predict returned %d ratings for %d texts", len(got), len(texts))
	}
}

func TestArtifactValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Artifact)
	}{
		{name: "empty vocabulary", mutate: func(a *Artifact) { a.Vocabulary = nil }},
		{name: "weight row mismatch", mutate: func(a *Artifact) { a.Weights = a.Weights[:1] }},
		{name: "feature dim mismatch", mutate: func(a *Artifact) { a.Weights[0] = a.Weights[0][:3] }},
		{name: "label out of range", mutate: func(a *Artifact) { a.Labels[0] = 7 }},
		{name: "intercept mismatch", mutate: func(a *Artifact) { a.Intercepts = a.Intercepts[:1] }},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			artifact := testArtifact()
			tt.mutate(&artifact)
			if _, err := NewModelPredictor(artifact); err == nil {
				t.Fatal("expected validation error, got nil")
			}
		})
	}
}

func TestLoadModelPredictor(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "rating.json")
	data, err := json.Marshal(testArtifact())
	if err != nil {
		t.Fatalf("marshal artifact: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}

	model, err := LoadModelPredictor(path)
	if err != nil {
		t.Fatalf("LoadModelPredictor: %v", err)
	}
	if got := model.Predict([]string{"love"}); got[0] != 5 {
		t.Fatalf("loaded model rated %d, want 5", got[0])
	}
}

func TestResolveFallsBack(t *testing.T) {
	t.Parallel()

	if _, mode := Resolve("", false); mode != ModeHeuristic {
		t.Fatal("disabled model flag must resolve to heuristic")
	}
	if _, mode := Resolve("", true); mode != ModeHeuristic {
		t.Fatal("missing artifact path must resolve to heuristic")
	}
	if _, mode := Resolve(filepath.Join(t.TempDir(), "absent.json"), true); mode != ModeHeuristic {
		t.Fatal("unreadable artifact must resolve to heuristic")
	}
}

func TestModeMethod(t *testing.T) {
	t.Parallel()

	if got := ModeHeuristic.Method(); got != "Keyword-based" {
		t.Fatalf("ModeHeuristic.Method() = %q", got)
	}
	if got := ModeModel.Method(); got != "ML-based" {
		t.Fatalf("ModeModel.Method() = %q", got)
	}
}
