package api

import (
	"kucukaslan/timeapp/domain"
	"time"

	"github.com/gofiber/fiber/v2"
)

var _ TimeHandler = &timeHandler{}

type timeHandler struct {
	timeService domain.TimeService
	now         func() time.Time
}

func NewTimeHandler(timeService domain.TimeService) TimeHandler {
	return &timeHandler{timeService: timeService, now: time.Now}
}

// GetNow returns the current time in the world clock cities
// @Summary World clock
// @Description Current time in New York, Beijing, Sydney and Delhi
// @Tags Time
// @Produce json
// @Success 200 {object} domain.TimeResponse
// @Router /time/now [get]
func (h *timeHandler) GetNow(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(domain.TimeResponse{
		Times: h.timeService.Now(h.now()),
	})
}
