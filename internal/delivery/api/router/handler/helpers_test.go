package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "townscoffee/internal/delivery/api/middleware"
	"townscoffee/internal/delivery/api/response"
	"townscoffee/internal/delivery/api/validator"
	deliverycontext "townscoffee/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data    json.RawMessage     `json:"data"`
	Message string              `json:"message"`
	Error   *response.ErrorInfo `json:"error"`
}

type call struct {
	method string
	target string
	body   string
	params map[string]string
	userID string
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e
}

// serve runs h for the call the way echo's router would, including the
// error handler.
func serve(t *testing.T, h echo.HandlerFunc, in call) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	e := newTestEcho()
	req := httptest.NewRequest(in.method, in.target, strings.NewReader(in.body))
	if in.body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	for name, value := range in.params {
		c.SetParamNames(append(c.ParamNames(), name)...)
		c.SetParamValues(append(c.ParamValues(), value)...)
	}
	if in.userID != "" {
		deliverycontext.SetUserID(c, in.userID)
	}

	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))

	return v
}
