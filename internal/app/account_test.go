package app

import (
	"context"
	"errors"
	"testing"

	"silent-auction-client/internal/domain/shared"
	"silent-auction-client/internal/ports/inbound"
	"silent-auction-client/internal/ports/outbound"
	"silent-auction-client/internal/session"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func stringPtr(v string) *string { return &v }

func TestAccountService_LoginStoresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := outbound.NewMockAuthGateway(ctrl)
	store := session.NewStore()
	service := NewAccountService(AccountServiceParams{Auth: mockAuth, Session: store, Logger: zerolog.Nop()})

	user := &shared.User{ID: "user1", Name: "Ada", Email: "ada@example.com", Role: shared.RoleBidder}
	mockAuth.EXPECT().Login(gomock.Any(), "ada@example.com", "secret").Return(user, nil)

	got, err := service.Login(context.Background(), "ada@example.com", "secret")
	require.NoError(t, err)
	require.Equal(t, user, got)

	stored, ok := store.Get()
	require.True(t, ok)
	require.Equal(t, *user, stored)
}

func TestAccountService_FailedLoginLeavesSessionEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := outbound.NewMockAuthGateway(ctrl)
	store := session.NewStore()
	service := NewAccountService(AccountServiceParams{Auth: mockAuth, Session: store, Logger: zerolog.Nop()})

	loginErr := errors.New("Invalid email or password")
	mockAuth.EXPECT().Login(gomock.Any(), "ada@example.com", "wrong").Return(nil, loginErr)

	_, err := service.Login(context.Background(), "ada@example.com", "wrong")
	require.ErrorIs(t, err, loginErr)

	_, ok := store.Get()
	require.False(t, ok)
}

func TestAccountService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuth := outbound.NewMockAuthGateway(ctrl)
	service := NewAccountService(AccountServiceParams{Auth: mockAuth, Session: session.NewStore(), Logger: zerolog.Nop()})

	t.Run("role_defaults_to_bidder", func(t *testing.T) {
		mockAuth.EXPECT().
			Register(gomock.Any(), "Ada", "ada@example.com", "secret", shared.RoleBidder).
			Return(nil)

		err := service.Register(context.Background(), inbound.RegisterRequest{
			Name:     "Ada",
			Email:    "ada@example.com",
			Password: "secret",
		})
		require.NoError(t, err)
	})

	t.Run("explicit_seller_role", func(t *testing.T) {
		mockAuth.EXPECT().
			Register(gomock.Any(), "Sam", "sam@example.com", "secret", shared.RoleSeller).
			Return(nil)

		err := service.Register(context.Background(), inbound.RegisterRequest{
			Name:     "Sam",
			Email:    "sam@example.com",
			Password: "secret",
			Role:     shared.RoleSeller,
		})
		require.NoError(t, err)
	})
}

func TestAccountService_Logout(t *testing.T) {
	store := session.NewStore()
	store.Set(shared.User{ID: "user1"})

	service := NewAccountService(AccountServiceParams{Session: store, Logger: zerolog.Nop()})
	service.Logout()

	_, ok := store.Get()
	require.False(t, ok)
}

func TestAccountService_UpdateProfile(t *testing.T) {
	store := session.NewStore()
	service := NewAccountService(AccountServiceParams{Session: store, Logger: zerolog.Nop()})

	t.Run("requires_session", func(t *testing.T) {
		_, err := service.UpdateProfile(inbound.ProfileUpdate{Name: stringPtr("New")})
		require.ErrorIs(t, err, shared.ErrNotSignedIn)
	})

	store.Set(shared.User{ID: "user1", Name: "Ada", Email: "ada@example.com", Role: shared.RoleBidder})

	t.Run("merges_only_given_fields", func(t *testing.T) {
		updated, err := service.UpdateProfile(inbound.ProfileUpdate{Name: stringPtr("Ada L.")})
		require.NoError(t, err)
		require.Equal(t, "Ada L.", updated.Name)
		require.Equal(t, "ada@example.com", updated.Email)
		require.Equal(t, shared.RoleBidder, updated.Role)

		stored, ok := store.Get()
		require.True(t, ok)
		require.Equal(t, *updated, stored)
	})

	t.Run("email_edit", func(t *testing.T) {
		updated, err := service.UpdateProfile(inbound.ProfileUpdate{Email: stringPtr("ada@new.example.com")})
		require.NoError(t, err)
		require.Equal(t, "Ada L.", updated.Name)
		require.Equal(t, "ada@new.example.com", updated.Email)
	})
}
