// Package healthcheck implements the container liveness probe. The runtime
// image has no shell or curl, so the server binary probes itself:
//
//	HEALTHCHECK CMD ["/app/server", "healthcheck"]
package healthcheck

import (
	"errors"
	"fmt"
	"io"
	"kucukaslan/timeapp/config"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Probe issues a GET to url and returns nil only for a 2xx response
func Probe(url string, timeout time.Duration) error {
	agent := fiber.Get(url)
	if timeout > 0 {
		agent.Timeout(timeout)
	}

	code, _, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("GET %s: %w", url, errors.Join(errs...))
	}
	if code < 200 || code > 299 {
		return fmt.Errorf("GET %s: unexpected status %d", url, code)
	}
	return nil
}

// Run probes the configured /healthz endpoint and returns the process exit
// code: 0 when healthy, 1 otherwise
func Run(cfg *config.Config, stderr io.Writer) int {
	if _, err := cfg.PortNumber(); err != nil {
		fmt.Fprintf(stderr, "healthcheck: %v\n", err)
		return 1
	}
	if err := Probe(cfg.HealthCheckURL(), cfg.HealthCheck.Timeout); err != nil {
		fmt.Fprintf(stderr, "healthcheck: %v\n", err)
		return 1
	}
	return 0
}
