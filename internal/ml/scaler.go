package ml

// StandardScaler applies the training-time mean/variance normalization.
// Mean and Scale are per-feature, in scorer ordering.
type StandardScaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

func (s *StandardScaler) Transform(vector []float64) []float64 {
	out := make([]float64, len(vector))
	for i, v := range vector {
		m, sc := 0.0, 1.0
		if i < len(s.Mean) {
			m = s.Mean[i]
		}
		if i < len(s.Scale) && s.Scale[i] != 0 {
			sc = s.Scale[i]
		}
		out[i] = (v - m) / sc
	}
	return out
}
