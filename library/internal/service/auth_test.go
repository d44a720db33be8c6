package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-lending/library/internal/errs"
	"github.com/Astemirdum/library-lending/library/internal/model"
	"github.com/Astemirdum/library-lending/pkg/auth"
)

func TestService_Register(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newMemRepo()
	s := newTestService(repo, &recordingPublisher{}, Options{})

	resp, err := s.Register(ctx, model.RegisterRequest{Username: "Alice", Email: "  Alice@Mail.com ", Password: "pw"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "alice@mail.com", resp.User.Email)
	require.Equal(t, "Alice", resp.User.Username)
	require.NotEqual(t, "pw", repo.users[0].PasswordHash)

	_, err = s.Register(ctx, model.RegisterRequest{Username: "alice2", Email: "ALICE@mail.com", Password: "pw"})
	require.ErrorIs(t, err, errs.ErrEmailInUse)
	require.ErrorIs(t, err, errs.ErrConflict)

	_, err = s.Register(ctx, model.RegisterRequest{Username: " ", Email: "x@mail.com", Password: "pw"})
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestService_Login(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newMemRepo()
	s := newTestService(repo, &recordingPublisher{}, Options{})
	registered, err := s.Register(ctx, model.RegisterRequest{Username: "Alice", Email: "alice@mail.com", Password: "pw"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		req     model.LoginRequest
		wantErr error
	}{
		{name: "email any case", req: model.LoginRequest{Email: " ALICE@mail.COM", Password: "pw"}},
		{name: "username in email field", req: model.LoginRequest{Email: "alice", Password: "pw"}},
		{name: "username field", req: model.LoginRequest{Username: "ALICE", Password: "pw"}},
		{name: "wrong password", req: model.LoginRequest{Email: "alice@mail.com", Password: "PW"}, wantErr: errs.ErrInvalidCredentials},
		{name: "unknown user", req: model.LoginRequest{Email: "bob@mail.com", Password: "pw"}, wantErr: errs.ErrInvalidCredentials},
		{name: "empty identifier", req: model.LoginRequest{Password: "pw"}, wantErr: errs.ErrInvalidCredentials},
	}
	iss := auth.NewIssuer(auth.Config{Key: "test", Issuer: "library", Audience: "clients"})
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			resp, err := s.Login(ctx, tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.ErrorIs(t, err, errs.ErrUnauthorized)
				return
			}
			require.NoError(t, err)
			require.Equal(t, registered.User, resp.User)

			p, err := iss.Parse(resp.Token)
			require.NoError(t, err)
			require.Equal(t, registered.User.ID, p.UserID)
			require.Equal(t, "alice@mail.com", p.Email)
		})
	}
}
