package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/google/uuid"
	"github.com/tixbase/dibs-payment-service/internal/api/middleware"
	"github.com/tixbase/dibs-payment-service/internal/models"
)

// CreateTestRequestWithContext builds a request carrying an authenticated
// organizer token's claims, the way the auth middleware would.
func CreateTestRequestWithContext(method, target string, body io.Reader, organizer string, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	claims := &models.Claims{UserID: uuid.New(), Email: "organizer@example.com", Organizer: organizer}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.WithValue(req.Context(), middleware.UserContextKey, claims)
	ctx = context.WithValue(ctx, middleware.LoggerKey, logger)

	return req.WithContext(ctx)
}

// CreateTestRequestWithoutContext builds an unauthenticated request, as the
// public checkout, return and callback endpoints receive them.
func CreateTestRequestWithoutContext(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.WithValue(req.Context(), middleware.LoggerKey, logger)

	return req.WithContext(ctx)
}
