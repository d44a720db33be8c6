package auth_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Astemirdum/library-lending/pkg/auth"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() auth.Config {
	return auth.Config{
		Key:      "super-secret-signing-key",
		Issuer:   "library",
		Audience: "library-clients",
		TTL:      time.Hour,
	}
}

func TestIssuer_IssueParse(t *testing.T) {
	t.Parallel()
	iss := auth.NewIssuer(testConfig())
	p := auth.Principal{UserID: 7, Username: "reader", Email: "reader@mail.com"}

	token, exp, err := iss.Issue(p)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	got, err := iss.Parse(token)
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestIssuer_ParseRejects(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	p := auth.Principal{UserID: 1, Username: "u", Email: "u@mail.com"}

	expired, _, err := auth.NewIssuer(cfg).
		WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) }).
		Issue(p)
	require.NoError(t, err)

	otherKey := cfg
	otherKey.Key = "another-key"
	foreign, _, err := auth.NewIssuer(otherKey).Issue(p)
	require.NoError(t, err)

	otherAud := cfg
	otherAud.Audience = "someone-else"
	wrongAud, _, err := auth.NewIssuer(otherAud).Issue(p)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "expired", token: expired},
		{name: "wrong key", token: foreign},
		{name: "wrong audience", token: wrongAud},
		{name: "garbage", token: "not.a.jwt"},
	}
	iss := auth.NewIssuer(cfg)
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := iss.Parse(tt.token)
			require.ErrorIs(t, err, auth.ErrInvalidToken)
		})
	}
}

func TestPrincipalContext(t *testing.T) {
	t.Parallel()
	_, err := auth.PrincipalFrom(context.Background())
	require.ErrorIs(t, err, auth.ErrNoPrincipal)

	p := auth.Principal{UserID: 3, Username: "x"}
	got, err := auth.PrincipalFrom(auth.WithPrincipal(context.Background(), p))
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestPassword(t *testing.T) {
	t.Parallel()
	hash, err := auth.HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hash)

	require.NoError(t, auth.CheckPassword("s3cret", hash))
	require.ErrorIs(t, auth.CheckPassword("S3cret", hash), auth.ErrInvalidPassword)

	_, err = auth.HashPassword(strings.Repeat("a", 73), bcrypt.MinCost)
	require.ErrorIs(t, err, auth.ErrPasswordTooLong)
}
