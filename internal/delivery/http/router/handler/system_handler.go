package handler

import (
	"net/http"

	"jobhud/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// Welcome answers the API root with a short index of the available routes.
func Welcome(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"name": "JobHUD API",
		"endpoints": map[string]string{
			"auth":    "/api/auth",
			"profile": "/api/profile",
			"tips":    "/api/tips",
			"health":  "/api/health",
		},
	}, "Welcome to the JobHUD API")
}
