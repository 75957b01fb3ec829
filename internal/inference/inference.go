// Package inference abstracts the remote zero-shot classification endpoint.
package inference

import (
	"context"
	"errors"
)

// Result holds the label scores for one input text. Labels are returned
// highest score first by the endpoint; Labels[i] pairs with Scores[i].
type Result struct {
	Labels []string
	Scores []float64
}

// ZeroShot scores texts against arbitrary candidate labels without
// label-specific training. Implementations must return one Result per input
// text or an error for the whole call.
type ZeroShot interface {
	Classify(ctx context.Context, texts []string, labels []string) ([]Result, error)
}

// ErrUnavailable is returned when no inference endpoint is configured.
var ErrUnavailable = errors.New("zero-shot inference not configured")

// Placeholder is a stub implementation used when no endpoint is configured.
type Placeholder struct{}

// Classify returns ErrUnavailable.
func (Placeholder) Classify(ctx context.Context, texts []string, labels []string) ([]Result, error) {
	_ = ctx
	_ = texts
	_ = labels
	return nil, ErrUnavailable
}
