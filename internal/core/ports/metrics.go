package ports

import "go.trai.ch/pinsync/internal/core/domain"

// MetricsSink exports run statistics.
//
//go:generate go run go.uber.org/mock/mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type MetricsSink interface {
	// Record exports the statistics of a finished run.
	Record(result *domain.Result) error
}
