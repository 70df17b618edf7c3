package api

import (
	"kucukaslan/timeapp/domain"
	"kucukaslan/timeapp/validations"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

var _ VisitHandler = &visitHandler{}

type visitHandler struct {
	visitService domain.VisitService
}

func NewVisitHandler(visitService domain.VisitService) VisitHandler {
	return &visitHandler{visitService: visitService}
}

// RecordVisit counts a page visit
// @Summary Record a visit
// @Description Increment the site visit counter. The body is optional; an unreadable body or invalid field never rejects the visit.
// @Tags Metrics
// @Accept json
// @Produce json
// @Param visit body domain.VisitRequest false "Visited page"
// @Success 200 {object} domain.OKResponse
// @Router /metrics/visit [post]
func (h *visitHandler) RecordVisit(ctx *fiber.Ctx) error {
	var req domain.VisitRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			log.Printf("RecordVisit: ignoring unreadable body: %v", err)
			req = domain.VisitRequest{}
		}
	}
	validations.NormalizeVisitRequest(&req, ctx.Get(fiber.HeaderReferer))

	event := domain.VisitEvent{
		Path:      req.Path,
		Referrer:  req.Referrer,
		UserAgent: ctx.Get(fiber.HeaderUserAgent),
		ClientIP:  ctx.IP(),
		Timestamp: time.Now().UTC(),
	}
	if err := h.visitService.RecordVisit(ctx.UserContext(), event); err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(domain.OKResponse{OK: true})
}

// GetTotal returns the site visit total
// @Summary Total visits
// @Description Visit total from Redis, PostgreSQL or the in-process counter, in that order of preference
// @Tags Metrics
// @Produce json
// @Success 200 {object} domain.TotalResponse
// @Router /metrics/total [get]
func (h *visitHandler) GetTotal(ctx *fiber.Ctx) error {
	total, err := h.visitService.Total(ctx.UserContext())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(domain.TotalResponse{Total: total})
}

// GetMetrics retrieves aggregated visit metrics
// @Summary GET aggregated visit metrics
// @Description Query visit counts and unique visitors from ClickHouse with time filtering and grouping
// @Tags Metrics
// @Produce json
// @Param from query int false "Start timestamp (Unix seconds)"
// @Param to query int false "End timestamp (Unix seconds)"
// @Param group_by query string false "Group by field (hour, day, week, month, year, path, referrer)"
// @Success 200 {object} domain.VisitMetricsResponse
// @Failure 400 {object} domain.ErrorResponse "Invalid request"
// @Failure 503 {object} domain.ErrorResponse "Visit analytics disabled"
// @Router /metrics/visits [get]
func (h *visitHandler) GetMetrics(ctx *fiber.Ctx) error {
	var req domain.VisitMetricRequest

	if fromStr := ctx.Query("from"); fromStr != "" {
		from, err := strconv.ParseInt(fromStr, 10, 64)
		if err != nil {
			return respondError(ctx, fiber.NewError(fiber.StatusBadRequest, "Invalid 'from' parameter: "+err.Error()))
		}
		req.From = &from
	}

	if toStr := ctx.Query("to"); toStr != "" {
		to, err := strconv.ParseInt(toStr, 10, 64)
		if err != nil {
			return respondError(ctx, fiber.NewError(fiber.StatusBadRequest, "Invalid 'to' parameter: "+err.Error()))
		}
		req.To = &to
	}

	if groupBy := ctx.Query("group_by"); groupBy != "" {
		req.GroupBy = &groupBy
	}

	if err := validations.ValidateVisitMetricRequest(&req); err != nil {
		return respondError(ctx, err)
	}

	metrics, err := h.visitService.Metrics(ctx.UserContext(), &req)
	if err != nil {
		return respondError(ctx, err)
	}
	if metrics == nil {
		metrics = []domain.VisitMetric{}
	}
	return ctx.Status(fiber.StatusOK).JSON(domain.VisitMetricsResponse{Metrics: metrics})
}
