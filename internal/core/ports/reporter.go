package ports

import "go.trai.ch/pinsync/internal/core/domain"

// Reporter presents reconciliation outcomes to the user.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Mismatch reports a single drifted hook.
	Mismatch(rec domain.MismatchRecord)

	// Summary reports the outcome of a run.
	Summary(result *domain.Result)

	// Mapping lists the registry mapping.
	Mapping(entries []domain.MappingEntry)
}
