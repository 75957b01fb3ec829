package complaints

import (
	"reviewlens-backend/internal/inference"
	"reviewlens-backend/internal/shared/telemetry"
)

// Resolve picks the classifier strategy once at startup: zero-shot when an
// inference client is configured, otherwise the keyword fallback. The choice
// holds for the process lifetime.
func Resolve(client inference.ZeroShot, batchSize int) Classifier {
	if client == nil {
		telemetry.Warn("complaints.fallback", map[string]any{
			"reason": "no zero-shot endpoint configured",
		})
		return NewKeywordClassifier()
	}
	if _, placeholder := client.(inference.Placeholder); placeholder {
		telemetry.Warn("complaints.fallback", map[string]any{
			"reason": "no zero-shot endpoint configured",
		})
		return NewKeywordClassifier()
	}
	return NewZeroShotClassifier(client, batchSize)
}
