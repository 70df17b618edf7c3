package domain

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrStoreUnavailable is returned when an operation needs PostgreSQL and it cannot be reached
	ErrStoreUnavailable = errors.New("postgres is not configured or available")
	// ErrEmailTaken is returned when registering an email that already has an account
	ErrEmailTaken = errors.New("email is already registered")
	// ErrUserNotFound is returned by UserStore lookups with no match
	ErrUserNotFound = errors.New("user not found")
	// ErrAnalyticsDisabled is returned by visit metric queries when ClickHouse is not enabled
	ErrAnalyticsDisabled = errors.New("visit analytics is not enabled")
)

type TimeService interface {
	Now(now time.Time) []CityTime
}

type AuthService interface {
	Register(ctx context.Context, credentials *Credentials) error
	Login(ctx context.Context, credentials *Credentials) (*LoginResult, error)
}

type VisitService interface {
	RecordVisit(ctx context.Context, event VisitEvent) error
	Total(ctx context.Context) (int64, error)
	Metrics(ctx context.Context, request *VisitMetricRequest) ([]VisitMetric, error)
}

// UserStore persists accounts and the site-wide visit total (PostgreSQL)
type UserStore interface {
	// Connected reports whether a connection is currently established
	Connected() bool
	// Ready returns nil once connected, attempting to (re)connect first if needed
	Ready(ctx context.Context) error
	CreateUser(ctx context.Context, email, passwordHash string) (int64, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	IncrementSiteCounter(ctx context.Context) error
	GetSiteCounter(ctx context.Context) (int64, error)
}

// VisitCounterCache is the fast visit counter (Redis)
type VisitCounterCache interface {
	Connected() bool
	IncrVisits(ctx context.Context) (int64, error)
	// GetVisits returns false when no counter has been stored yet
	GetVisits(ctx context.Context) (int64, bool, error)
}

// VisitRecorder accepts visit events for asynchronous analytics storage
type VisitRecorder interface {
	Enqueue(event VisitEvent) error
}

// VisitAnalytics answers aggregate visit queries (ClickHouse)
type VisitAnalytics interface {
	GetVisitMetrics(ctx context.Context, request VisitMetricRequest) ([]VisitMetric, error)
}

// HealthChecker is implemented by every optional backing service
type HealthChecker interface {
	Connected() bool
	HealthCheck(ctx context.Context) error
}
