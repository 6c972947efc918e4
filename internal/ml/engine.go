package ml

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"loanpayback/internal/models"
)

// Engine bundles the scoring artifacts: feature ordering, category tables,
// scaler, and the trained model. Everything is loaded once at process start
// and is read-only afterwards, so one Engine is safe to share across
// concurrent requests.
type Engine struct {
	encoder *FeatureEncoder
	scaler  *StandardScaler
	scorer  Scorer
}

func NewEngine(encoder *FeatureEncoder, scaler *StandardScaler, scorer Scorer) *Engine {
	return &Engine{encoder: encoder, scaler: scaler, scorer: scorer}
}

// Load reads the four artifact files from dir. A missing or inconsistent
// artifact fails the load as a whole; callers treat a nil engine as
// "scoring unavailable" before any request work begins.
func Load(dir string) (*Engine, error) {
	var features []string
	if err := readArtifact(dir, "feature_names.json", &features); err != nil {
		return nil, err
	}

	vocab := map[string][]string{}
	if err := readArtifact(dir, "label_encoders.json", &vocab); err != nil {
		return nil, err
	}

	scaler := &StandardScaler{}
	if err := readArtifact(dir, "scaler.json", scaler); err != nil {
		return nil, err
	}

	model := &LogisticModel{}
	if err := readArtifact(dir, "model.json", model); err != nil {
		return nil, err
	}

	if len(features) == 0 {
		return nil, fmt.Errorf("feature_names.json: empty feature list")
	}
	if len(model.Weights) != len(features) {
		return nil, fmt.Errorf("model.json: %d weights for %d features", len(model.Weights), len(features))
	}
	if len(scaler.Mean) != len(features) || len(scaler.Scale) != len(features) {
		return nil, fmt.Errorf("scaler.json: mean/scale length does not match %d features", len(features))
	}

	return NewEngine(NewFeatureEncoder(features, vocab), scaler, model), nil
}

func readArtifact(dir, name string, v interface{}) error {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("read artifact %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse artifact %s: %w", name, err)
	}
	return nil
}

func (e *Engine) FeatureCount() int {
	return e.encoder.FeatureCount()
}

// Vector encodes and scales one applicant into scorer input.
func (e *Engine) Vector(a *models.Applicant) []float64 {
	return e.scaler.Transform(e.encoder.Encode(a))
}

func (e *Engine) Scorer() Scorer {
	return e.scorer
}
