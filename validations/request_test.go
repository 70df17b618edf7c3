package validations

import (
	"strings"
	"testing"
	"time"

	"kucukaslan/timeapp/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCredentials(t *testing.T) {
	valid := &domain.Credentials{Email: "  ray@example.com ", Password: "pw"}
	require.NoError(t, ValidateCredentials(valid))
	assert.Equal(t, "ray@example.com", valid.Email)

	invalid := []domain.Credentials{
		{Email: "", Password: "pw"},
		{Email: "not-an-email", Password: "pw"},
		{Email: "Ray <ray@example.com>", Password: "pw"},
		{Email: "ray@localhost", Password: "pw"},
		{Email: "ray@example.", Password: "pw"},
		{Email: "ray@.com", Password: "pw"},
		{Email: "ray@example.com", Password: ""},
		{Email: "ray@example.com", Password: strings.Repeat("x", 73)},
	}
	for _, c := range invalid {
		c := c
		assert.Error(t, ValidateCredentials(&c), "%+v", c)
	}
}

func TestNormalizeVisitRequest(t *testing.T) {
	tests := []struct {
		name         string
		in           domain.VisitRequest
		header       string
		wantPath     string
		wantReferrer string
	}{
		{"empty body", domain.VisitRequest{}, "", "/", ""},
		{"valid fields kept", domain.VisitRequest{Path: "/pricing", Referrer: "google"}, "https://example.com/", "/pricing", "google"},
		{"relative path", domain.VisitRequest{Path: "pricing"}, "", "/", ""},
		{"oversized path", domain.VisitRequest{Path: "/" + strings.Repeat("a", MaxVisitFieldLength)}, "", "/", ""},
		{"header referrer fallback", domain.VisitRequest{Path: "/docs"}, "https://example.com/", "/docs", "https://example.com/"},
		{"oversized referrer", domain.VisitRequest{Referrer: strings.Repeat("a", MaxVisitFieldLength+1)}, "https://example.com/", "/", "https://example.com/"},
		{"oversized header", domain.VisitRequest{}, strings.Repeat("r", MaxVisitFieldLength+10), "/", strings.Repeat("r", MaxVisitFieldLength)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.in
			NormalizeVisitRequest(&req, tt.header)
			assert.Equal(t, tt.wantPath, req.Path)
			assert.Equal(t, tt.wantReferrer, req.Referrer)
		})
	}
}

func ptr[T any](v T) *T { return &v }

func TestValidateVisitMetricRequest(t *testing.T) {
	now := time.Now().Unix()

	assert.NoError(t, ValidateVisitMetricRequest(&domain.VisitMetricRequest{}))
	assert.NoError(t, ValidateVisitMetricRequest(&domain.VisitMetricRequest{
		From: ptr(now - 3600), To: ptr(now), GroupBy: ptr("hour"),
	}))

	invalid := []domain.VisitMetricRequest{
		{From: ptr(int64(0))},
		{From: ptr(now + 3600)},
		{To: ptr(int64(-5))},
		{From: ptr(now), To: ptr(now - 10)},
		{GroupBy: ptr(" ")},
		{GroupBy: ptr("client_ip")},
	}
	for _, r := range invalid {
		r := r
		assert.Error(t, ValidateVisitMetricRequest(&r))
	}
}
