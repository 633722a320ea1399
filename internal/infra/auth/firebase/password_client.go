package firebase

import (
	"context"
	"strings"
	"time"

	"townscoffee/internal/domain/entity"
	"townscoffee/internal/domain/service"
	"townscoffee/internal/errors"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

const requestTypePasswordReset = "PASSWORD_RESET"

// PasswordClient performs the end-user password flows the admin SDK lacks.
type PasswordClient interface {
	VerifyPassword(ctx context.Context, email, password string) (*entity.Session, error)
	SendPasswordReset(ctx context.Context, email string) error
}

type identityToolkitClient struct {
	relyingParty *identitytoolkit.RelyingpartyService
	now          func() time.Time
}

// NewPasswordClient calls the Identity Toolkit REST API with the web API key.
func NewPasswordClient(ctx context.Context, apiKey string, opts ...option.ClientOption) (PasswordClient, error) {
	if apiKey == "" {
		return nil, errors.New("firebase.apiKey is required for password sign in")
	}

	svc, err := identitytoolkit.NewService(ctx, append(opts, option.WithAPIKey(apiKey))...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create identity toolkit client")
	}

	return &identityToolkitClient{
		relyingParty: svc.Relyingparty,
		now:          time.Now,
	}, nil
}

func (c *identityToolkitClient) VerifyPassword(ctx context.Context, email, password string) (*entity.Session, error) {
	resp, err := c.relyingParty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}).Context(ctx).Do()
	if err != nil {
		return nil, classifyRESTError(err)
	}

	return &entity.Session{
		UserID:       resp.LocalId,
		IDToken:      resp.IdToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    c.now().Add(time.Duration(resp.ExpiresIn) * time.Second),
	}, nil
}

func (c *identityToolkitClient) SendPasswordReset(ctx context.Context, email string) error {
	_, err := c.relyingParty.GetOobConfirmationCode(&identitytoolkit.Relyingparty{
		Email:       email,
		RequestType: requestTypePasswordReset,
	}).Context(ctx).Do()
	if err != nil {
		return classifyRESTError(err)
	}

	return nil
}

// restErrorKinds maps Identity Toolkit error codes to provider error kinds.
// The service may append a description after the code.
var restErrorKinds = []struct {
	code string
	kind service.ProviderErrorKind
}{
	{"INVALID_PASSWORD", service.ProviderErrInvalidCredentials},
	{"INVALID_LOGIN_CREDENTIALS", service.ProviderErrInvalidCredentials},
	{"INVALID_EMAIL", service.ProviderErrInvalidCredentials},
	{"EMAIL_NOT_FOUND", service.ProviderErrUserNotFound},
	{"USER_DISABLED", service.ProviderErrUserDisabled},
	{"TOO_MANY_ATTEMPTS_TRY_LATER", service.ProviderErrTooManyRequests},
	{"RESET_PASSWORD_EXCEED_LIMIT", service.ProviderErrTooManyRequests},
	{"EMAIL_EXISTS", service.ProviderErrEmailExists},
}

func classifyRESTError(err error) error {
	apiErr, ok := errors.AsType[*googleapi.Error](err)
	if !ok {
		return &service.ProviderError{Kind: service.ProviderErrUnknown, Message: err.Error(), Err: err}
	}

	for _, candidate := range restErrorKinds {
		if strings.HasPrefix(apiErr.Message, candidate.code) {
			return &service.ProviderError{Kind: candidate.kind, Message: apiErr.Message, Err: err}
		}
	}

	return &service.ProviderError{Kind: service.ProviderErrUnknown, Message: apiErr.Message, Err: err}
}
