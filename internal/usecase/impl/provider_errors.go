package impl

import (
	domainerrors "townscoffee/internal/domain/errors"
	"townscoffee/internal/domain/service"
	"townscoffee/internal/errors"
)

// mapProviderError turns an identity provider failure into its domain error,
// keeping the provider's message as details. Other errors pass through.
func mapProviderError(err error) error {
	providerErr, ok := errors.AsType[*service.ProviderError](err)
	if !ok {
		return err
	}

	var appErr *domainerrors.BaseError
	switch providerErr.Kind {
	case service.ProviderErrInvalidCredentials, service.ProviderErrUserNotFound:
		appErr = domainerrors.ErrInvalidCredentials
	case service.ProviderErrUserDisabled:
		appErr = domainerrors.ErrUserDisabled
	case service.ProviderErrTooManyRequests:
		appErr = domainerrors.ErrTooManyRequests
	case service.ProviderErrEmailExists:
		appErr = domainerrors.ErrEmailAlreadyInUse
	case service.ProviderErrInvalidToken:
		appErr = domainerrors.ErrUnauthorized
	default:
		appErr = domainerrors.ErrIdentityProvider
	}

	return appErr.WithDetails(providerErr.Message)
}

func isProviderErrorKind(err error, kind service.ProviderErrorKind) bool {
	providerErr, ok := errors.AsType[*service.ProviderError](err)

	return ok && providerErr.Kind == kind
}
