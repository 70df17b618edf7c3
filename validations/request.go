package validations

import (
	"kucukaslan/timeapp/database"
	"kucukaslan/timeapp/domain"
	"net/mail"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	// MaxPasswordBytes is bcrypt's input limit
	MaxPasswordBytes = 72
	// MaxVisitFieldLength bounds free-form visit fields stored for analytics
	MaxVisitFieldLength = 2048
)

func ValidateCredentials(request *domain.Credentials) error {
	email := strings.TrimSpace(request.Email)
	if email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email is required")
	}
	address, err := mail.ParseAddress(email)
	if err != nil || address.Address != email || !hasDottedDomain(email) {
		return fiber.NewError(fiber.StatusBadRequest, "email is not a valid email address")
	}
	request.Email = email

	if request.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "password is required")
	}
	if len(request.Password) > MaxPasswordBytes {
		return fiber.NewError(fiber.StatusBadRequest, "password must be at most 72 bytes")
	}
	return nil
}

// NormalizeVisitRequest never rejects a visit: a missing or unusable path
// becomes "/" and a missing or oversized referrer falls back to headerReferrer.
func NormalizeVisitRequest(request *domain.VisitRequest, headerReferrer string) {
	if !strings.HasPrefix(request.Path, "/") || len(request.Path) > MaxVisitFieldLength {
		request.Path = "/"
	}
	if request.Referrer == "" || len(request.Referrer) > MaxVisitFieldLength {
		request.Referrer = headerReferrer
	}
	if len(request.Referrer) > MaxVisitFieldLength {
		request.Referrer = request.Referrer[:MaxVisitFieldLength]
	}
}

// hasDottedDomain rejects single-label domains such as "a@localhost"
func hasDottedDomain(email string) bool {
	domainPart := email[strings.LastIndex(email, "@")+1:]
	dot := strings.Index(domainPart, ".")
	return dot > 0 && !strings.HasSuffix(domainPart, ".") && !strings.Contains(domainPart, "..")
}

func ValidateVisitMetricRequest(request *domain.VisitMetricRequest) error {
	if request.From != nil {
		// From timestamp must be a positive and not in the future
		if *request.From <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "from must be a positive integer")
		}
		if *request.From > time.Now().UTC().Unix() {
			return fiber.NewError(fiber.StatusBadRequest, "from cannot be in the future")
		}
	}
	if request.To != nil {
		if *request.To <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "to must be a positive integer")
		}
	}
	if request.From != nil && request.To != nil {
		if *request.From > *request.To {
			return fiber.NewError(fiber.StatusBadRequest, "from cannot be greater than to")
		}
	}

	if request.GroupBy != nil {
		if strings.TrimSpace(*request.GroupBy) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "group_by cannot be empty if provided")
		}
		if !database.IsVisitGroup(*request.GroupBy) {
			return fiber.NewError(fiber.StatusBadRequest,
				"group_by must be one of hour, day, week, month, year, path, referrer")
		}
	}

	return nil
}
