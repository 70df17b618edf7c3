package api

import (
	"kucukaslan/timeapp/domain"
	"kucukaslan/timeapp/validations"

	"github.com/gofiber/fiber/v2"
)

// AccessTokenCookie carries the signed JWT after a successful login
const AccessTokenCookie = "access_token"

var _ AuthHandler = &authHandler{}

type authHandler struct {
	authService   domain.AuthService
	secureCookies bool
}

func NewAuthHandler(authService domain.AuthService, secureCookies bool) AuthHandler {
	return &authHandler{authService: authService, secureCookies: secureCookies}
}

func parseCredentials(ctx *fiber.Ctx) (*domain.Credentials, error) {
	var req domain.Credentials
	if err := ctx.BodyParser(&req); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid request body: "+err.Error())
	}
	if err := validations.ValidateCredentials(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// Register creates an account
// @Summary Register an account
// @Description Create an account with an email and password. Emails are case-insensitive.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body domain.Credentials true "Email and password"
// @Success 200 {object} domain.OKResponse
// @Failure 400 {object} domain.ErrorResponse "Invalid request"
// @Failure 409 {object} domain.ErrorResponse "Email already registered"
// @Failure 503 {object} domain.ErrorResponse "PostgreSQL unavailable"
// @Router /auth/register [post]
func (h *authHandler) Register(ctx *fiber.Ctx) error {
	req, err := parseCredentials(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := h.authService.Register(ctx.UserContext(), req); err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(domain.OKResponse{OK: true})
}

// Login checks credentials and sets the access token cookie
// @Summary Log in
// @Description Verify email and password. On success an HttpOnly access_token cookie holding a HS256 JWT is set.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body domain.Credentials true "Email and password"
// @Success 200 {object} domain.OKResponse "ok is false when the credentials are rejected"
// @Failure 400 {object} domain.ErrorResponse "Invalid request"
// @Failure 503 {object} domain.ErrorResponse "PostgreSQL unavailable"
// @Router /auth/login [post]
func (h *authHandler) Login(ctx *fiber.Ctx) error {
	req, err := parseCredentials(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := h.authService.Login(ctx.UserContext(), req)
	if err != nil {
		return respondError(ctx, err)
	}
	if !result.OK {
		return ctx.Status(fiber.StatusOK).JSON(domain.OKResponse{OK: false})
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     AccessTokenCookie,
		Value:    result.Token,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   h.secureCookies,
	})
	return ctx.Status(fiber.StatusOK).JSON(domain.OKResponse{OK: true})
}
