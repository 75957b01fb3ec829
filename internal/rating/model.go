package rating

import (
	"encoding/json"
	"fmt"
	"os"

	"reviewlens-backend/internal/normalize"
)

// Artifact is the exported training artifact for the model strategy: a term
// vocabulary with inverse-document-frequency weights, an optional dense
// projection, one weight row per class, and the fitted label order used to
// decode the winning class index back to a star rating.
type Artifact struct {
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf,omitempty"`
	Projection [][]float64    `json:"projection,omitempty"`
	Weights    [][]float64    `json:"weights"`
	Intercepts []float64      `json:"intercepts"`
	Labels     []int          `json:"labels"`
}

// lexicon + meta features appended after the term vector.
const handcraftedFeatures = 8

func (a *Artifact) validate() error {
	if len(a.Vocabulary) == 0 {
		return fmt.Errorf("artifact has empty vocabulary")
	}
	if len(a.Labels) == 0 {
		return fmt.Errorf("artifact has no labels")
	}
	if len(a.Weights) != len(a.Labels) {
		return fmt.Errorf("artifact has %d weight rows for %d labels", len(a.Weights), len(a.Labels))
	}
	if len(a.Intercepts) != len(a.Labels) {
		return fmt.Errorf("artifact has %d intercepts for %d labels", len(a.Intercepts), len(a.Labels))
	}
	if len(a.IDF) > 0 && len(a.IDF) != len(a.Vocabulary) {
		return fmt.Errorf("artifact idf length %d does not match vocabulary size %d", len(a.IDF), len(a.Vocabulary))
	}

	termDim := len(a.Vocabulary)
	if len(a.Projection) > 0 {
		for i, row := range a.Projection {
			if len(row) != len(a.Vocabulary) {
				return fmt.Errorf("projection row %d has %d columns, want %d", i, len(row), len(a.Vocabulary))
			}
		}
		termDim = len(a.Projection)
	}

	wantDim := termDim + handcraftedFeatures
	for i, row := range a.Weights {
		if len(row) != wantDim {
			return fmt.Errorf("weight row %d has %d features, want %d", i, len(row), wantDim)
		}
	}
	for _, label := range a.Labels {
		if label < 1 || label > 5 {
			return fmt.Errorf("artifact label %d outside [1,5]", label)
		}
	}
	return nil
}

// ModelPredictor scores reviews with the trained linear model.
type ModelPredictor struct {
	artifact Artifact
}

// LoadModelPredictor reads and validates an artifact from disk.
func LoadModelPredictor(path string) (*ModelPredictor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rating artifact: %w", err)
	}
	var artifact Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("parse rating artifact: %w", err)
	}
	if err := artifact.validate(); err != nil {
		return nil, fmt.Errorf("invalid rating artifact: %w", err)
	}
	return &ModelPredictor{artifact: artifact}, nil
}

// NewModelPredictor wraps an already-validated artifact, used by tests.
func NewModelPredictor(artifact Artifact) (*ModelPredictor, error) {
	if err := artifact.validate(); err != nil {
		return nil, err
	}
	return &ModelPredictor{artifact: artifact}, nil
}

// Predict vectorizes each cleaned text, appends the lexicon and meta
// features, and decodes the highest-scoring class to its star label.
func (p *ModelPredictor) Predict(texts []string) []int {
	ratings := make([]int, len(texts))
	for i, text := range texts {
		cleaned := normalize.Clean(text)
		features := p.featureVector(cleaned, text)
		ratings[i] = clampRating(p.decode(features))
	}
	return ratings
}

func (p *ModelPredictor) featureVector(cleaned, raw string) []float64 {
	terms := make([]float64, len(p.artifact.Vocabulary))
	for _, w := range normalize.Words(cleaned) {
		if idx, ok := p.artifact.Vocabulary[w]; ok && idx >= 0 && idx < len(terms) {
			terms[idx]++
		}
	}
	if len(p.artifact.IDF) == len(terms) {
		for i := range terms {
			terms[i] *= p.artifact.IDF[i]
		}
	}
	if len(p.artifact.Projection) > 0 {
		projected := make([]float64, len(p.artifact.Projection))
		for r, row := range p.artifact.Projection {
			var sum float64
			for c, v := range row {
				sum += v * terms[c]
			}
			projected[r] = sum
		}
		terms = projected
	}

	features := make([]float64, 0, len(terms)+handcraftedFeatures)
	features = append(features, terms...)
	features = append(features, lexiconFeatures(cleaned)...)
	features = append(features, metaFeatures(raw)...)
	return features
}

func (p *ModelPredictor) decode(features []float64) int {
	best := 0
	bestScore := scoreClass(p.artifact.Weights[0], p.artifact.Intercepts[0], features)
	for class := 1; class < len(p.artifact.Weights); class++ {
		score := scoreClass(p.artifact.Weights[class], p.artifact.Intercepts[class], features)
		if score > bestScore {
			best = class
			bestScore = score
		}
	}
	return p.artifact.Labels[best]
}

func scoreClass(weights []float64, intercept float64, features []float64) float64 {
	sum := intercept
	for i, w := range weights {
		sum += w * features[i]
	}
	return sum
}
