package api

import (
	"context"
	"kucukaslan/timeapp/domain"
	"time"

	"kucukaslan/timeapp/buildinfo"

	"github.com/gofiber/fiber/v2"
)

const healthCheckTimeout = 3 * time.Second

// Dependency is an optional backing service reported by the health endpoints.
// Enabled is false when the service is not configured at all.
type Dependency struct {
	Enabled bool
	Checker domain.HealthChecker
}

func (d Dependency) status(ctx context.Context) domain.ServiceStatus {
	if !d.Enabled || d.Checker == nil {
		return domain.ServiceStatus{Status: domain.StatusDisabled}
	}
	if err := d.Checker.HealthCheck(ctx); err != nil {
		return domain.ServiceStatus{Status: domain.StatusUnhealthy, Message: err.Error()}
	}
	return domain.ServiceStatus{Status: domain.StatusHealthy}
}

func (d Dependency) connected() bool {
	return d.Enabled && d.Checker != nil && d.Checker.Connected()
}

// VisitPipeline exposes the analytics batcher counters
type VisitPipeline interface {
	Stats() domain.VisitPipelineStats
}

type HealthHandler struct {
	Postgres   Dependency
	Redis      Dependency
	ClickHouse Dependency
	// Pipeline is nil when visit analytics is off
	Pipeline VisitPipeline
}

// Liveness handles the /healthz endpoint
// @Summary Liveness probe
// @Description Always 200 while the process serves HTTP; reports which stores are connected
// @Tags Health
// @Produce json
// @Success 200 {object} domain.LivenessResponse
// @Router /healthz [get]
func (h *HealthHandler) Liveness(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(domain.LivenessResponse{
		OK:       true,
		Postgres: h.Postgres.connected(),
		Redis:    h.Redis.connected(),
	})
}

// HealthCheck handles the /health endpoint
// @Summary Health check endpoint
// @Description Check the health status of the service and its configured dependencies
// @Tags Health
// @Produce json
// @Success 200 {object} domain.HealthResponse "Service is healthy"
// @Failure 503 {object} domain.HealthResponse "Service is unhealthy"
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
	defer cancel()

	response := domain.HealthResponse{
		Timestamp: time.Now(),
		BuildInfo: buildinfo.GetInfo(),
		Services: domain.ServiceHealthStatus{
			Postgres:   h.Postgres.status(ctx),
			Redis:      h.Redis.status(ctx),
			ClickHouse: h.ClickHouse.status(ctx),
		},
	}
	if h.Pipeline != nil {
		stats := h.Pipeline.Stats()
		response.VisitPipeline = &stats
	}

	for _, s := range []domain.ServiceStatus{response.Services.Postgres, response.Services.Redis, response.Services.ClickHouse} {
		if s.Status == domain.StatusUnhealthy {
			response.Status = domain.StatusUnhealthy
			return c.Status(fiber.StatusServiceUnavailable).JSON(response)
		}
	}

	response.Status = domain.StatusHealthy
	return c.Status(fiber.StatusOK).JSON(response)
}
