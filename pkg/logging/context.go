package logging

import (
	"log/slog"
)

// WithQuery creates a logger scoped to one optimize()/execute() call.
//
// Example:
//
//	log := logging.WithQuery(queryID)
//	log.Info("optimization started")
func WithQuery(queryID int) *slog.Logger {
	return GetLogger().With("query_id", queryID)
}

// WithTable creates a logger with table context.
// Use this for catalog and scan operations.
func WithTable(tableName string) *slog.Logger {
	return GetLogger().With("table", tableName)
}

// WithCandidate creates a logger scoped to one enumerated candidate
// plan, identified by its position in the candidate list and its join
// algorithm.
//
// Example:
//
//	log := logging.WithCandidate(i, "HashJoin")
//	log.Debug("candidate costed", "total_cost", cost)
func WithCandidate(index int, algorithm string) *slog.Logger {
	return GetLogger().With("candidate", index, "algorithm", algorithm)
}

// WithAlgorithm creates a logger with join-algorithm context.
func WithAlgorithm(algorithm string) *slog.Logger {
	return GetLogger().With("algorithm", algorithm)
}

// WithComponent creates a logger with component/subsystem context.
//
// Example:
//
//	log := logging.WithComponent("optimizer")
//	log.Info("component initialized")
func WithComponent(component string) *slog.Logger {
	return GetLogger().With("component", component)
}

// WithError creates a logger with error context.
// Use this when logging errors to include the error in structured format.
func WithError(err error) *slog.Logger {
	return GetLogger().With("error", err.Error())
}
