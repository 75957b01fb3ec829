package complaints

import (
	"context"

	"reviewlens-backend/internal/inference"
	"reviewlens-backend/internal/shared/metrics"
	"reviewlens-backend/internal/shared/telemetry"
)

// DefaultBatchSize bounds per-invocation memory and isolates batch failures.
const DefaultBatchSize = 16

// ZeroShotClassifier scores each text against the eight category labels via a
// remote zero-shot endpoint. Texts are processed in fixed-size batches, one
// after another; a failed batch contributes empty results and processing
// continues with the rest.
type ZeroShotClassifier struct {
	client    inference.ZeroShot
	batchSize int
}

// NewZeroShotClassifier wraps an inference client. batchSize <= 0 uses the
// default.
func NewZeroShotClassifier(client inference.ZeroShot, batchSize int) *ZeroShotClassifier {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &ZeroShotClassifier{client: client, batchSize: batchSize}
}

// ClassifyBatch returns one match map per input text. The error return is
// reserved for context cancellation; inference failures degrade per batch.
func (c *ZeroShotClassifier) ClassifyBatch(ctx context.Context, texts []string, threshold float64) ([]map[Category]Match, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	labels := CandidateLabels()
	all := make([]map[Category]Match, 0, len(texts))
	for start := 0; start < len(texts); start += c.batchSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := start + c.batchSize
		if end > len(texts) {
			end = len(texts)
		}
		batch := texts[start:end]

		results, err := c.client.Classify(ctx, batch, labels)
		if err != nil {
			telemetry.Warn("complaints.batch_failed", map[string]any{
				"batch_start": start,
				"batch_size":  len(batch),
				"error":       err.Error(),
			})
			metrics.IncClassifierBatchFailed()
			for range batch {
				all = append(all, map[Category]Match{})
			}
			continue
		}
		for _, result := range results {
			all = append(all, matchesFromResult(result, threshold))
		}
	}
	return all, nil
}

// matchesFromResult keeps every category scoring at or above the threshold.
func matchesFromResult(result inference.Result, threshold float64) map[Category]Match {
	matches := make(map[Category]Match)
	for i, label := range result.Labels {
		if i >= len(result.Scores) || result.Scores[i] < threshold {
			continue
		}
		cat, ok := categoryForLabel(label)
		if !ok {
			continue
		}
		matches[cat] = Match{Score: result.Scores[i], Description: label}
	}
	return matches
}
