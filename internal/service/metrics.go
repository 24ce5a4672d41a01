package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photobooth_generations_total",
			Help: "Total number of image generation requests by outcome.",
		},
		[]string{"status"}, // "success", "denied", "upstream_error"
	)
	generationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "photobooth_generation_duration_seconds",
		Help:    "End-to-end duration of image generation requests.",
		Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
	})
)
