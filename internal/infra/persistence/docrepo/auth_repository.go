package docrepo

import (
	"context"
	"log/slog"
	"time"

	"townscoffee/internal/domain/entity"
	domainerrors "townscoffee/internal/domain/errors"
	"townscoffee/internal/domain/repository"
	"townscoffee/internal/domain/service"
	"townscoffee/internal/errors"
	"townscoffee/internal/infra/persistence/model"
	"townscoffee/internal/infra/persistence/store"
	"townscoffee/internal/util"

	"go.uber.org/fx"
)

// AuthRepositoryParams holds dependencies for the auth repository, injected by Fx.
type AuthRepositoryParams struct {
	fx.In

	Lc       fx.Lifecycle
	Provider service.IdentityProvider
	Store    store.Store
	Logger   *slog.Logger
}

// authRepository implements the repository.AuthRepository interface.
type authRepository struct {
	provider service.IdentityProvider
	store    store.Store
	logger   *slog.Logger
	states   *util.Broadcaster[entity.AuthState]
	now      func() time.Time
}

// NewAuthRepository creates the repository and follows the identity provider's
// session changes until shutdown.
func NewAuthRepository(params AuthRepositoryParams) repository.AuthRepository {
	repo := &authRepository{
		provider: params.Provider,
		store:    params.Store,
		logger:   params.Logger,
		states:   util.NewBroadcasterWithInitial(entity.Unauthenticated()),
		now:      time.Now,
	}

	watchCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				repo.watch(watchCtx)
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			repo.states.Close()

			select {
			case <-done:
			case <-ctx.Done():
			}

			return nil
		},
	})

	return repo
}

// watch turns identity changes into authentication states.
func (repo *authRepository) watch(ctx context.Context) {
	changes, unsubscribe := repo.provider.Changes()
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return
		case change, ok := <-changes:
			if !ok {
				return
			}
			repo.states.Publish(repo.resolve(ctx, change))
		}
	}
}

func (repo *authRepository) resolve(ctx context.Context, change service.IdentityChange) entity.AuthState {
	if change.UserID == "" {
		return entity.Unauthenticated()
	}

	repo.states.Publish(entity.Loading())

	user, err := repo.GetUser(ctx, change.UserID)
	if err != nil {
		repo.logger.Warn("Failed to load profile for signed-in user",
			slog.String("user_id", change.UserID),
			slog.Any("error", err),
		)

		return entity.AuthError(err.Error())
	}

	return entity.Authenticated(user)
}

func (repo *authRepository) SignUp(ctx context.Context, email, password string, user *entity.User) (*entity.User, error) {
	userID, err := repo.provider.CreateAccount(ctx, email, password)
	if err != nil {
		return nil, err
	}

	created := *user
	created.ID = userID
	created.Email = email
	created.RegistrationDate = repo.now()

	if err := repo.store.Set(ctx, model.UsersCollection, userID, fromUserDomain(&created), false); err != nil {
		saveErr := domainerrors.ErrProfilePersistenceFailed.WithDetails(err.Error())

		// the account must not outlive a failed profile write, even if the
		// caller has gone away
		if delErr := repo.provider.DeleteAccount(context.WithoutCancel(ctx), userID); delErr != nil {
			repo.logger.Error("Failed to roll back identity account",
				slog.String("user_id", userID),
				slog.Any("save_error", err),
				slog.Any("error", delErr),
			)

			return nil, errors.Join(saveErr, domainerrors.ErrAccountRollbackFailed.WithDetails(delErr.Error()))
		}

		return nil, saveErr
	}

	return &created, nil
}

func (repo *authRepository) SignIn(ctx context.Context, email, password string) (*entity.User, *entity.Session, error) {
	session, err := repo.provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, nil, err
	}

	user, err := repo.GetUser(ctx, session.UserID)
	if err != nil {
		return nil, nil, err
	}

	return user, session, nil
}

func (repo *authRepository) SignOut(ctx context.Context) error {
	return repo.provider.SignOut(ctx)
}

func (repo *authRepository) ResetPassword(ctx context.Context, email string) error {
	return repo.provider.SendPasswordReset(ctx, email)
}

func (repo *authRepository) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.store.Get(ctx, model.UsersCollection, userID, &userM); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch user")
	}

	user, err := toUserDomain(userID, &userM)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode user "+userID)
	}

	return user, nil
}

func (repo *authRepository) UpdateUser(ctx context.Context, user *entity.User) error {
	exists, err := repo.store.Exists(ctx, model.UsersCollection, user.ID)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to fetch user")
	}
	if !exists {
		return repository.ErrUserNotFound
	}

	if err := repo.store.Set(ctx, model.UsersCollection, user.ID, userProfileFields(user), true); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	return nil
}

func (repo *authRepository) CurrentUserID() (string, bool) {
	return repo.provider.CurrentUserID()
}

func (repo *authRepository) AuthStates(ctx context.Context) (<-chan entity.AuthState, func()) {
	states, unsubscribe := repo.states.Subscribe()
	stop := context.AfterFunc(ctx, unsubscribe)

	return states, func() {
		stop()
		unsubscribe()
	}
}
