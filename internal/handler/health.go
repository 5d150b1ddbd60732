package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health answers liveness probes with a plain 200 "ok".  The route is
// registered outside the /v1 group, so it stays reachable while the rate
// limiter throttles the API.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
