// Package events publishes calculation summaries for downstream platform
// services (district dashboards, aggregation jobs).
package events

import (
	"context"
	"time"
)

// CalculationEvent summarizes one completed calculation.
type CalculationEvent struct {
	DistrictName           string    `json:"district_name"`
	Population             int64     `json:"population"`
	OxygenDeficitKgPerYear float64   `json:"oxygen_deficit_kg_per_year"`
	TreesRequired          int64     `json:"trees_required"`
	ConfidenceLevel        string    `json:"confidence_level"`
	CalculatedAt           time.Time `json:"calculated_at"`
}

// Publisher emits calculation events.
type Publisher interface {
	// PublishCalculation emits an event for a completed calculation.
	PublishCalculation(ctx context.Context, event *CalculationEvent) error

	// Close releases publisher resources.
	Close() error
}

// NoopPublisher discards all events. Used when Pub/Sub is not configured.
type NoopPublisher struct{}

// NewNoopPublisher creates a publisher that discards all events.
func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

// PublishCalculation discards the event.
func (*NoopPublisher) PublishCalculation(context.Context, *CalculationEvent) error {
	return nil
}

// Close is a no-op.
func (*NoopPublisher) Close() error {
	return nil
}
