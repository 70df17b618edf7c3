package api

import (
	"errors"
	"kucukaslan/timeapp/domain"
	"log"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler interface {
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
}

type VisitHandler interface {
	RecordVisit(ctx *fiber.Ctx) error
	GetTotal(ctx *fiber.Ctx) error
	GetMetrics(ctx *fiber.Ctx) error
}

type TimeHandler interface {
	GetNow(ctx *fiber.Ctx) error
}

const storeUnavailableDetail = "PostgreSQL is not configured/available."

// respondError writes the JSON error body for err, choosing the status from
// fiber errors and domain sentinels
func respondError(ctx *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		return ctx.Status(fiberErr.Code).JSON(domain.ErrorResponse{Detail: fiberErr.Message})
	case errors.Is(err, domain.ErrStoreUnavailable):
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(domain.ErrorResponse{Detail: storeUnavailableDetail})
	case errors.Is(err, domain.ErrEmailTaken):
		return ctx.Status(fiber.StatusConflict).JSON(domain.ErrorResponse{Detail: "Email is already registered."})
	case errors.Is(err, domain.ErrAnalyticsDisabled):
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(domain.ErrorResponse{Detail: "Visit analytics is not enabled."})
	default:
		log.Printf("%s %s failed: %v", ctx.Method(), ctx.Path(), err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(domain.ErrorResponse{Detail: "Internal server error"})
	}
}

// ErrorHandler renders errors that escape handlers (unknown routes, panics
// caught by recover) in the same JSON shape as handler errors
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	return respondError(ctx, err)
}
