package ml

import "math"

// Scorer is the opaque scoring capability: a normalized feature vector in,
// a class label and per-class probability mass out. Index 1 of the
// probabilities is the "approved" class.
type Scorer interface {
	Score(vector []float64) (class int, probabilities []float64)
}

// LogisticModel scores with trained logistic-regression coefficients.
type LogisticModel struct {
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
}

func (m *LogisticModel) Score(vector []float64) (int, []float64) {
	z := m.Intercept
	for i, w := range m.Weights {
		if i < len(vector) {
			z += w * vector[i]
		}
	}
	approved := sigmoid(z)
	probs := []float64{1 - approved, approved}

	class := 0
	if approved >= 0.5 {
		class = 1
	}
	return class, probs
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
