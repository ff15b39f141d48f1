// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"inkwell/config"
	deliverycontext "inkwell/internal/delivery/context"
	"inkwell/internal/domain/entity"
	domainerrors "inkwell/internal/domain/errors"
	"inkwell/internal/domain/repository"
	"inkwell/internal/domain/service"
	"inkwell/internal/infra/metrics"
	"inkwell/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MaxUsernameLength matches the accounts.username column.
const MaxUsernameLength = 255

// dummyPassword is hashed once and compared against on logins for unknown
// usernames, so both failure paths pay for one bcrypt comparison.
const dummyPassword = "inkwell-dummy-password"

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	minPassword  int
	maxPassword  int
	logger       *slog.Logger

	dummyHashOnce sync.Once
	dummyHash     string
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	minPassword, maxPassword := 1, config.MaxPasswordBytes
	if params.Config != nil && params.Config.PasswordPolicy != nil {
		if params.Config.PasswordPolicy.MinLength > 0 {
			minPassword = params.Config.PasswordPolicy.MinLength
		}
		if params.Config.PasswordPolicy.MaxLength > 0 && params.Config.PasswordPolicy.MaxLength <= config.MaxPasswordBytes {
			maxPassword = params.Config.PasswordPolicy.MaxLength
		}
	}

	return &accountService{
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		minPassword:  minPassword,
		maxPassword:  maxPassword,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register validates the credentials, hashes the password and stores the account.
// The store rejects a taken username atomically, so there is no prior lookup.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if err := srv.validateCredentials(input.Username, input.Password); err != nil {
		metrics.RecordAuthEvent(metrics.EventRegister, metrics.OutcomeInvalid)

		return nil, err
	}

	srv.log(ctx).Debug("Starting registration", slog.String("username", input.Username))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))
		metrics.RecordAuthEvent(metrics.EventRegister, metrics.OutcomeError)

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	id, err := uuid.NewV7()
	if err != nil {
		metrics.RecordAuthEvent(metrics.EventRegister, metrics.OutcomeError)

		return nil, errors.Wrap(err, "failed to generate account id")
	}

	account := &entity.Account{
		ID:           id,
		Username:     input.Username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, domainerrors.ErrUsernameTaken) {
			srv.log(ctx).Info("Registration rejected, username taken", slog.String("username", input.Username))
			metrics.RecordAuthEvent(metrics.EventRegister, metrics.OutcomeConflict)

			return nil, errors.Wrap(err, "failed to register account")
		}

		srv.log(ctx).Error("Failed to create account", slog.String("username", input.Username), slog.Any("error", err))
		metrics.RecordAuthEvent(metrics.EventRegister, metrics.OutcomeError)

		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Info("Account registered", slog.String("accountID", account.ID.String()))
	metrics.RecordAuthEvent(metrics.EventRegister, metrics.OutcomeSuccess)

	return &usecase.RegisterOutput{Account: account}, nil
}

// Login verifies the credentials and issues a session token.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if strings.TrimSpace(input.Username) == "" || input.Password == "" {
		metrics.RecordAuthEvent(metrics.EventLogin, metrics.OutcomeInvalid)

		return nil, domainerrors.ErrValidationFailed.WithDetails("username and password are required")
	}

	srv.log(ctx).Debug("Starting login", slog.String("username", input.Username))

	// Registration never accepts longer passwords and bcrypt would only see a prefix.
	if len(input.Password) > config.MaxPasswordBytes {
		return nil, srv.loginFailed(ctx, input.Username, "password exceeds maximum length")
	}

	account, err := srv.accountRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.hasher.Check(input.Password, srv.getDummyHash())

			return nil, srv.loginFailed(ctx, input.Username, "unknown username")
		}

		srv.log(ctx).Error("Failed to load account", slog.String("username", input.Username), slog.Any("error", err))
		metrics.RecordAuthEvent(metrics.EventLogin, metrics.OutcomeError)

		return nil, errors.Wrap(err, "failed to find account")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		return nil, srv.loginFailed(ctx, input.Username, "password mismatch")
	}

	token, expiresAt, err := srv.tokenService.Issue(account.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.String("accountID", account.ID.String()), slog.Any("error", err))
		metrics.RecordAuthEvent(metrics.EventLogin, metrics.OutcomeError)

		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage("failed to issue session token")
	}

	srv.log(ctx).Debug("Account logged in", slog.String("accountID", account.ID.String()))
	metrics.RecordAuthEvent(metrics.EventLogin, metrics.OutcomeSuccess)

	return &usecase.LoginOutput{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// loginFailed logs the concrete reason and returns the one error the caller sees.
func (srv *accountService) loginFailed(ctx context.Context, username, reason string) error {
	srv.log(ctx).Info("Login failed", slog.String("username", username), slog.String("reason", reason))
	metrics.RecordAuthEvent(metrics.EventLogin, metrics.OutcomeInvalidCredentials)

	return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
}

func (srv *accountService) getDummyHash() string {
	srv.dummyHashOnce.Do(func() {
		hash, err := srv.hasher.Hash(dummyPassword)
		if err != nil {
			srv.logger.Warn("Failed to prepare dummy password hash", slog.Any("error", err))

			return
		}
		srv.dummyHash = hash
	})

	return srv.dummyHash
}

func (srv *accountService) validateCredentials(username, password string) error {
	switch {
	case strings.TrimSpace(username) == "":
		return domainerrors.ErrValidationFailed.WithDetails("username: must not be empty")
	case len(username) > MaxUsernameLength:
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("username: must be at most %d bytes", MaxUsernameLength))
	case password == "":
		return domainerrors.ErrValidationFailed.WithDetails("password: must not be empty")
	case len(password) < srv.minPassword:
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("password: must be at least %d bytes", srv.minPassword))
	case len(password) > srv.maxPassword:
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("password: must be at most %d bytes", srv.maxPassword))
	}

	return nil
}
