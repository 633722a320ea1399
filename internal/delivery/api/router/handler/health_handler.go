// Package handler contains the HTTP handlers of the API.
package handler

import (
	"net/http"

	"townscoffee/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// queryLimit reads the optional "limit" query parameter; zero means the
// use case default.
func queryLimit(c echo.Context) (int, error) {
	var limit int
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
		return 0, err
	}

	return limit, nil
}
