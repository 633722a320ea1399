package middleware

import (
	"strings"

	"townscoffee/internal/delivery/api/response"
	deliverycontext "townscoffee/internal/delivery/context"
	domainerrors "townscoffee/internal/domain/errors"
	"townscoffee/internal/domain/service"
	"townscoffee/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Provider service.IdentityProvider
	AuthUC   usecase.AuthUsecase
}

// AuthMiddleware authenticates requests with identity provider ID tokens.
type AuthMiddleware struct {
	provider service.IdentityProvider
	authUC   usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		provider: params.Provider,
		authUC:   params.AuthUC,
	}
}

// Authenticate requires a valid "Authorization: Bearer <id token>" header and
// stores the token's user id in the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, present := bearerToken(c); !present {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Authorization header is missing")
		}

		return m.OptionalAuthenticate(next)(c)
	}
}

// OptionalAuthenticate behaves like Authenticate when a token is sent and
// lets anonymous requests through.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, present := bearerToken(c)
		if !present {
			return next(c)
		}
		if token == "" {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Invalid token format, must be Bearer token")
		}

		userID, err := m.provider.VerifyToken(c.Request().Context(), token)
		if err != nil {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "Invalid or expired token")
		}

		deliverycontext.SetUserID(c, userID)

		return next(c)
	}
}

// RequireAdmin allows only users whose profile type is admin. It must be
// used after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := deliverycontext.GetUserID(c)
		if !ok {
			return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "User ID not found in context")
		}

		user, err := m.authUC.GetProfile(c.Request().Context(), userID)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		if !user.IsAdmin() {
			return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), "Permission denied: admin role required")
		}

		return next(c)
	}
}

// bearerToken reports whether an Authorization header was sent and returns
// its bearer token, empty when the scheme is not Bearer.
func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", false
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", true
	}

	return strings.TrimSpace(token), true
}
