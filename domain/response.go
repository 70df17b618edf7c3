package domain

import (
	"kucukaslan/timeapp/buildinfo"
	"time"
)

// LivenessResponse is the body of GET /healthz
type LivenessResponse struct {
	OK       bool `json:"ok" example:"true"`
	Postgres bool `json:"pg" example:"true"`
	Redis    bool `json:"redis" example:"false"`
}

// HealthResponse represents the detailed health status of the service
type HealthResponse struct {
	Status    string              `json:"status" example:"healthy"`
	Timestamp time.Time           `json:"timestamp" example:"2025-11-22T10:00:00Z"`
	BuildInfo buildinfo.Info      `json:"buildInfo"`
	Services  ServiceHealthStatus `json:"services"`

	// VisitPipeline is present only while visit analytics is enabled
	VisitPipeline *VisitPipelineStats `json:"visitPipeline,omitempty"`
}

// VisitPipelineStats reports the analytics batcher counters
type VisitPipelineStats struct {
	Buffered int   `json:"buffered" example:"12"`
	Pending  int   `json:"pending" example:"3"`
	Flushed  int64 `json:"flushed" example:"48210"`
	Dropped  int64 `json:"dropped" example:"0"`
}

// ServiceHealthStatus represents the health status of dependent services
type ServiceHealthStatus struct {
	Postgres   ServiceStatus `json:"postgres"`
	Redis      ServiceStatus `json:"redis"`
	ClickHouse ServiceStatus `json:"clickhouse"`
}

// ServiceStatus represents the status of a single service
type ServiceStatus struct {
	Status  string `json:"status" example:"healthy"`
	Message string `json:"message,omitempty" example:""`
}

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
	StatusDisabled  = "disabled"
)

// CityTime is the current wall-clock time in one city
type CityTime struct {
	Label string `json:"label" example:"New York"`
	TZ    string `json:"tz" example:"America/New_York"`
	ISO   string `json:"iso" example:"2025-11-22T05:00:00.123456-05:00"`
}

// TimeResponse is the body of GET /time/now
type TimeResponse struct {
	Times []CityTime `json:"times"`
}

// OKResponse is the generic acknowledgement body
type OKResponse struct {
	OK bool `json:"ok" example:"true"`
}

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	Detail string `json:"detail" example:"PostgreSQL is not configured/available."`
}

// TotalResponse is the body of GET /metrics/total
type TotalResponse struct {
	Total int64 `json:"total" example:"42"`
}

// VisitMetricsResponse is the body of GET /metrics/visits
type VisitMetricsResponse struct {
	Metrics []VisitMetric `json:"metrics"`
}

type VisitMetric struct {
	// The "Bucket" holds the group name (e.g., "2024-08-25 10:00:00" or "/pricing")
	Bucket         string `json:"bucket"`
	TotalVisits    uint64 `json:"total_visits"`
	UniqueVisitors uint64 `json:"unique_visitors"`
}

// LoginResult carries the outcome of a login attempt. Token is empty when
// the credentials were rejected.
type LoginResult struct {
	OK    bool
	Token string
}
