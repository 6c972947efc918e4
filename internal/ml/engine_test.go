package ml

import (
	"os"
	"path/filepath"
	"testing"

	"loanpayback/internal/models"

	"github.com/stretchr/testify/require"
)

func writeArtifacts(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
}

func validArtifacts() map[string]string {
	return map[string]string{
		"feature_names.json":  `["annual_income", "credit_score", "gender"]`,
		"label_encoders.json": `{"gender": ["Female", "Male", "Other"]}`,
		"scaler.json":         `{"mean": [50000, 650, 1], "scale": [20000, 100, 1]}`,
		"model.json":          `{"weights": [0.5, 1.2, 0.1], "intercept": -0.3}`,
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeArtifacts(t, dir, validArtifacts())

	engine, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, 3, engine.FeatureCount())

	vector := engine.Vector(&models.Applicant{AnnualIncome: 70000, CreditScore: 750})
	require.Len(t, vector, 3)
	require.InDelta(t, 1.0, vector[0], 1e-9) // (70000-50000)/20000
	require.InDelta(t, 1.0, vector[1], 1e-9) // (750-650)/100

	class, probs := engine.Scorer().Score(vector)
	require.Len(t, probs, 2)
	require.InDelta(t, 1.0, probs[0]+probs[1], 1e-9)
	if probs[1] >= 0.5 {
		require.Equal(t, 1, class)
	} else {
		require.Equal(t, 0, class)
	}
}

func TestLoad_MissingArtifact(t *testing.T) {
	dir := t.TempDir()
	files := validArtifacts()
	delete(files, "model.json")
	writeArtifacts(t, dir, files)

	_, err := Load(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "model.json")
}

func TestLoad_WeightLengthMismatch(t *testing.T) {
	dir := t.TempDir()
	files := validArtifacts()
	files["model.json"] = `{"weights": [0.5], "intercept": 0}`
	writeArtifacts(t, dir, files)

	_, err := Load(dir)
	require.Error(t, err)
}

func TestLoad_ScalerLengthMismatch(t *testing.T) {
	dir := t.TempDir()
	files := validArtifacts()
	files["scaler.json"] = `{"mean": [1], "scale": [1]}`
	writeArtifacts(t, dir, files)

	_, err := Load(dir)
	require.Error(t, err)
}

func TestLoad_EmptyFeatureList(t *testing.T) {
	dir := t.TempDir()
	files := validArtifacts()
	files["feature_names.json"] = `[]`
	writeArtifacts(t, dir, files)

	_, err := Load(dir)
	require.Error(t, err)
}

func TestLogisticModel_Score(t *testing.T) {
	model := &LogisticModel{Weights: []float64{2}, Intercept: 0}

	class, probs := model.Score([]float64{3})
	require.Equal(t, 1, class)
	require.Greater(t, probs[1], 0.99)

	class, probs = model.Score([]float64{-3})
	require.Equal(t, 0, class)
	require.Less(t, probs[1], 0.01)
}

func TestStandardScaler_ZeroScale(t *testing.T) {
	scaler := &StandardScaler{Mean: []float64{10}, Scale: []float64{0}}

	out := scaler.Transform([]float64{15})
	require.Equal(t, []float64{5}, out)
}
