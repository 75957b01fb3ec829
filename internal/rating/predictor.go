// Package rating predicts an integer star rating in [1,5] for each review text.
//
// Two interchangeable strategies exist: a trained linear model loaded from an
// exported artifact, and a keyword heuristic. The strategy is resolved once at
// process start and never changes for the process lifetime.
package rating

import (
	"strings"

	"reviewlens-backend/internal/shared/telemetry"
)

// Predictor maps review texts to star ratings. Implementations are
// length-preserving: one rating per input text, each in [1,5].
type Predictor interface {
	Predict(texts []string) []int
}

// Mode identifies which rating strategy is active.
type Mode int

const (
	// ModeHeuristic uses the keyword fallback.
	ModeHeuristic Mode = iota
	// ModeModel uses the trained linear model.
	ModeModel
)

// Method returns the consumer-visible analysis_method string for the mode.
func (m Mode) Method() string {
	if m == ModeModel {
		return "ML-based"
	}
	return "Keyword-based"
}

// Resolve picks the rating strategy for the process. The trained model is
// used only when enableModel is set and the artifact loads cleanly; any
// failure falls back to the heuristic permanently. enableModel defaults to
// off in config: the exported artifact and the runtime feature pipeline must
// be version-matched, and the heuristic is the safe default until they are.
func Resolve(artifactPath string, enableModel bool) (Predictor, Mode) {
	if !enableModel {
		return NewHeuristicPredictor(), ModeHeuristic
	}
	if strings.TrimSpace(artifactPath) == "" {
		telemetry.Warn("rating.model_unavailable", map[string]any{
			"reason": "no artifact path configured",
		})
		return NewHeuristicPredictor(), ModeHeuristic
	}
	model, err := LoadModelPredictor(artifactPath)
	if err != nil {
		telemetry.Warn("rating.model_unavailable", map[string]any{
			"artifact": artifactPath,
			"error":    err.Error(),
		})
		return NewHeuristicPredictor(), ModeHeuristic
	}
	telemetry.Info("rating.model_loaded", map[string]any{
		"artifact": artifactPath,
		"classes":  len(model.artifact.Labels),
	})
	return model, ModeModel
}

func clampRating(r int) int {
	if r < 1 {
		return 1
	}
	if r > 5 {
		return 5
	}
	return r
}
