package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure. The home page still renders,
	// possibly without a document count.
	Degraded Status = "degraded"
	// Unhealthy indicates total failure.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Component names reported in Report.Checks.
const (
	ComponentDatabase   = "database"
	ComponentDailyStats = "daily_stats"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	db    DBPinger
	stats StatsChecker
}

// New creates a Service. stats can be nil when no stats file is configured.
func New(db DBPinger, stats StatsChecker) *Service {
	return &Service{db: db, stats: stats}
}

// Check runs health checks against the document count sources. The report
// reflects whether a count can be served, not whether the home page renders:
// GET / still answers 200 with a null count when every check fails.
// All configured sources down is Unhealthy, some down is Degraded. With no
// stats file configured the database is the only source, so a failed ping
// alone is Unhealthy.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	checks[ComponentDatabase] = result(s.db.Ping(ctx))
	if s.stats != nil {
		checks[ComponentDailyStats] = result(s.stats.Available(ctx))
	}

	failed := 0
	for _, v := range checks {
		if v == CheckError {
			failed++
		}
	}

	status := Healthy
	switch {
	case failed == len(checks):
		status = Unhealthy
	case failed > 0:
		status = Degraded
	}

	return Report{Status: status, Checks: checks}
}

func result(err error) CheckResult {
	if err != nil {
		return CheckError
	}
	return CheckOK
}
