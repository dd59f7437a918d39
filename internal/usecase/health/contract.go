package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// StatsChecker checks that the daily stats fallback file is readable.
type StatsChecker interface {
	Available(ctx context.Context) error
}
