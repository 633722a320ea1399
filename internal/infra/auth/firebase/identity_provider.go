package firebase

import (
	"context"
	"log/slog"
	"sync"

	"townscoffee/config"
	"townscoffee/internal/domain/entity"
	"townscoffee/internal/domain/service"
	"townscoffee/internal/errors"
	"townscoffee/internal/util"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"go.uber.org/fx"
)

// AdminClient is the part of the Firebase admin auth client used here.
type AdminClient interface {
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	DeleteUser(ctx context.Context, uid string) error
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// Provider implements service.IdentityProvider. The current session
// is process-wide, mirroring a signed-in client.
type Provider struct {
	admin    AdminClient
	password PasswordClient
	logger   *slog.Logger

	mu      sync.Mutex
	session *entity.Session
	changes *util.Broadcaster[service.IdentityChange]
}

// ProviderParams holds dependencies for the identity provider, injected by Fx.
type ProviderParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	App    *firebase.App
	Config *config.Config
	Logger *slog.Logger
}

// NewIdentityProvider builds the Firebase identity provider.
func NewIdentityProvider(params ProviderParams) (service.IdentityProvider, error) {
	admin, err := params.App.Auth(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	password, err := NewPasswordClient(params.Ctx, params.Config.Firebase.APIKey)
	if err != nil {
		return nil, err
	}

	provider := New(admin, password, params.Logger)
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			provider.Close()

			return nil
		},
	})

	return provider, nil
}

// New wires the provider from its two clients.
func New(admin AdminClient, password PasswordClient, logger *slog.Logger) *Provider {
	return &Provider{
		admin:    admin,
		password: password,
		logger:   logger,
		changes:  util.NewBroadcasterWithInitial(service.IdentityChange{}),
	}
}

func (p *Provider) CreateAccount(ctx context.Context, email, password string) (string, error) {
	record, err := p.admin.CreateUser(ctx, (&auth.UserToCreate{}).Email(email).Password(password))
	if err != nil {
		return "", classifyAdminError(err)
	}

	return record.UID, nil
}

func (p *Provider) DeleteAccount(ctx context.Context, userID string) error {
	if err := p.admin.DeleteUser(ctx, userID); err != nil {
		return classifyAdminError(err)
	}

	return nil
}

func (p *Provider) SignIn(ctx context.Context, email, password string) (*entity.Session, error) {
	session, err := p.password.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.session = session
	p.mu.Unlock()

	p.changes.Publish(service.IdentityChange{UserID: session.UserID})

	return session, nil
}

func (p *Provider) SignOut(context.Context) error {
	p.mu.Lock()
	p.session = nil
	p.mu.Unlock()

	p.changes.Publish(service.IdentityChange{})

	return nil
}

func (p *Provider) SendPasswordReset(ctx context.Context, email string) error {
	return p.password.SendPasswordReset(ctx, email)
}

func (p *Provider) VerifyToken(ctx context.Context, idToken string) (string, error) {
	token, err := p.admin.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", &service.ProviderError{Kind: service.ProviderErrInvalidToken, Message: err.Error(), Err: err}
	}

	return token.UID, nil
}

func (p *Provider) CurrentUserID() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.session == nil {
		return "", false
	}

	return p.session.UserID, true
}

func (p *Provider) Changes() (<-chan service.IdentityChange, func()) {
	return p.changes.Subscribe()
}

// Close ends every change subscription.
func (p *Provider) Close() {
	p.changes.Close()
}

func classifyAdminError(err error) error {
	kind := service.ProviderErrUnknown
	switch {
	case auth.IsEmailAlreadyExists(err):
		kind = service.ProviderErrEmailExists
	case auth.IsUserNotFound(err):
		kind = service.ProviderErrUserNotFound
	}

	return &service.ProviderError{Kind: kind, Message: err.Error(), Err: err}
}
