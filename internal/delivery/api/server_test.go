package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"townscoffee/config"
	apimiddleware "townscoffee/internal/delivery/api/middleware"
	"townscoffee/internal/delivery/api/router"
	"townscoffee/internal/delivery/api/router/handler"
	deliverycontext "townscoffee/internal/delivery/context"
	"townscoffee/internal/domain/entity"
	"townscoffee/internal/infra/metrics"
	mockSvc "townscoffee/internal/mocks/service"
	mockUC "townscoffee/internal/mocks/usecase"
	"townscoffee/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixtures struct {
	provider *mockSvc.MockIdentityProvider
	coffeeUC *mockUC.MockCoffeeUsecase
}

func createTestEcho(t *testing.T) (*echo.Echo, *serverFixtures) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	fixtures := &serverFixtures{
		provider: mockSvc.NewMockIdentityProvider(t),
		coffeeUC: mockUC.NewMockCoffeeUsecase(t),
	}
	m := metrics.New(cfg)
	authUC := mockUC.NewMockAuthUsecase(t)
	farmerUC := mockUC.NewMockFarmerUsecase(t)

	e := NewEcho(ServerParams{
		Cfg:     cfg,
		Logger:  logger,
		Metrics: m,
		RouterParams: router.RouterParams{
			AuthHandler:      handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: authUC, Logger: logger}),
			UserHandler:      handler.NewUserHandler(handler.UserHandlerParams{AuthUC: authUC}),
			TownHandler:      handler.NewTownHandler(handler.TownHandlerParams{TownUC: mockUC.NewMockTownUsecase(t)}),
			CoffeeHandler:    handler.NewCoffeeHandler(handler.CoffeeHandlerParams{CoffeeUC: fixtures.coffeeUC}),
			FavoritesHandler: handler.NewFavoritesHandler(handler.FavoritesHandlerParams{FavoritesUC: mockUC.NewMockFavoritesUsecase(t)}),
			FarmerHandler:    handler.NewFarmerHandler(handler.FarmerHandlerParams{FarmerUC: farmerUC}),
			AdminHandler:     handler.NewAdminHandler(handler.AdminHandlerParams{FarmerUC: farmerUC, Logger: logger}),
			AuthMiddleware:   apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{Provider: fixtures.provider, AuthUC: authUC}),
			Metrics:          m,
		},
	})

	return e, fixtures
}

func doRequest(e *echo.Echo, method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for name, values := range header {
		req.Header[name] = values
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestServer_HealthEchoesRequestID(t *testing.T) {
	e, _ := createTestEcho(t)

	rec := doRequest(e, http.MethodGet, "/health", http.Header{deliverycontext.HeaderXRequestID: {"req-42"}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, rec.Body.String(), `"requestId":"req-42"`)
}

func TestServer_ProtectedRoutesRequireToken(t *testing.T) {
	e, _ := createTestEcho(t)

	routes := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/user/profile"},
		{http.MethodGet, "/auth/state"},
		{http.MethodPost, "/auth/signout"},
		{http.MethodGet, "/api/v1/favorites"},
		{http.MethodPut, "/api/v1/farmers/f1"},
		{http.MethodGet, "/api/v1/admin/farmers/pending"},
	}

	for _, route := range routes {
		rec := doRequest(e, route.method, route.target, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, route.method+" "+route.target)
	}
}

func TestServer_PublicCatalogUsesOptionalToken(t *testing.T) {
	e, fixtures := createTestEcho(t)

	fixtures.provider.EXPECT().VerifyToken(mock.Anything, "token").Return("uid-1", nil)
	fixtures.coffeeUC.EXPECT().GetCoffee(mock.Anything, "c1", "uid-1").Return(&entity.Coffee{ID: "c1"}, nil)
	fixtures.coffeeUC.EXPECT().GetCoffees(mock.Anything, usecase.GetCoffeesInput{}).Return(&usecase.GetCoffeesOutput{}, nil)

	rec := doRequest(e, http.MethodGet, "/api/v1/coffees/c1", http.Header{echo.HeaderAuthorization: {"Bearer token"}})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodGet, "/api/v1/coffees", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_UnknownRouteUsesErrorEnvelope(t *testing.T) {
	e, _ := createTestEcho(t)

	rec := doRequest(e, http.MethodGet, "/nope", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"HTTP_ERROR"`)
}

func TestServer_MetricsEndpoint(t *testing.T) {
	e, _ := createTestEcho(t)

	doRequest(e, http.MethodGet, "/health", nil)
	rec := doRequest(e, http.MethodGet, "/metrics", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "townscoffee_http_requests_total")
}
