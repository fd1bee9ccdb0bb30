package app

import (
	"context"

	"silent-auction-client/internal/domain/shared"
	"silent-auction-client/internal/ports/inbound"
	"silent-auction-client/internal/ports/outbound"
	"silent-auction-client/internal/session"

	"github.com/rs/zerolog"
)

// AccountService implements the session flows: login, registration,
// logout and profile edits. It is the only writer of the session.
type AccountService struct {
	auth    outbound.AuthGateway
	session *session.Store
	logger  zerolog.Logger
}

type AccountServiceParams struct {
	Auth    outbound.AuthGateway
	Session *session.Store
	Logger  zerolog.Logger
}

// NewAccountService creates a new account service
func NewAccountService(params AccountServiceParams) *AccountService {
	return &AccountService{
		auth:    params.Auth,
		session: params.Session,
		logger:  params.Logger.With().Str("component", "account_service").Logger(),
	}
}

// Login authenticates and stores the user in the session
func (service *AccountService) Login(ctx context.Context, email, password string) (*shared.User, error) {
	user, err := service.auth.Login(ctx, email, password)
	if err != nil {
		service.logger.Warn().Err(err).Str("email", email).Msg("Login failed")
		return nil, err
	}

	service.session.Set(*user)
	service.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("User signed in")
	return user, nil
}

// Register creates a new account. Registration does not sign in.
func (service *AccountService) Register(ctx context.Context, req inbound.RegisterRequest) error {
	role := req.Role
	if role == "" {
		role = shared.RoleBidder
	}

	if err := service.auth.Register(ctx, req.Name, req.Email, req.Password, role); err != nil {
		service.logger.Warn().Err(err).Str("email", req.Email).Msg("Registration failed")
		return err
	}

	service.logger.Info().Str("email", req.Email).Msg("Account registered")
	return nil
}

// Logout clears the session
func (service *AccountService) Logout() {
	service.session.Clear()
	service.logger.Info().Msg("User signed out")
}

// UpdateProfile merges the given fields into the current user and
// replaces the session as a whole. There is no backend call; profile
// edits live for the session only.
func (service *AccountService) UpdateProfile(update inbound.ProfileUpdate) (*shared.User, error) {
	user, ok := service.session.Get()
	if !ok {
		return nil, shared.ErrNotSignedIn
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Email != nil {
		user.Email = *update.Email
	}

	service.session.Set(user)
	service.logger.Info().Str("user_id", user.ID).Msg("Profile updated")
	return &user, nil
}
