package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/pasale/product-catalog/internal/api/middleware"
	"github.com/pasale/product-catalog/internal/models"
	"github.com/pasale/product-catalog/internal/utils"
)

// CreateTestRequestWithContext builds a request as it looks after the auth
// middleware has accepted a token for userID.
func CreateTestRequestWithContext(method, target string, body io.Reader, userID int64, pathParams map[string]string) *http.Request {
	req := CreateTestRequestWithoutContext(method, target, body, pathParams)

	claims := &models.Claims{UserID: userID, Email: "owner@example.com"}

	return req.WithContext(context.WithValue(req.Context(), middleware.UserContextKey, claims))
}

// CreateTestRequestWithoutContext builds an unauthenticated request with a silent logger.
func CreateTestRequestWithoutContext(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))

	return req.WithContext(utils.ContextWithLogger(req.Context(), quiet))
}
