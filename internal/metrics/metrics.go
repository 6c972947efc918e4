package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PredictionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loan_predictions_total",
		Help: "Single predictions by outcome.",
	}, []string{"outcome"})

	BatchRowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "loan_batch_rows_total",
		Help: "Batch rows by result (approved, rejected, error).",
	}, []string{"result"})

	BatchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "loan_batches_total",
		Help: "Processed batch uploads.",
	})
)
