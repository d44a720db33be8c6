package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-lending/library/internal/errs"
	"github.com/Astemirdum/library-lending/library/internal/model"
	"github.com/Astemirdum/library-lending/pkg/auth"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	email := normalizeEmail(req.Email)
	if username == "" || email == "" || req.Password == "" {
		return model.AuthResponse{}, errs.New(errs.ErrValidation, "username, email and password are required")
	}

	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if exists {
		return model.AuthResponse{}, errs.ErrEmailInUse
	}

	hash, err := auth.HashPassword(req.Password, s.opts.BcryptCost)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return model.AuthResponse{}, errs.New(errs.ErrValidation, err.Error())
		}
		return model.AuthResponse{}, err
	}

	user, err := s.repo.CreateUser(ctx, model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		return model.AuthResponse{}, err
	}
	s.log.Info("user registered", zap.Int("user_id", user.ID))
	return s.authResponse(user)
}

// Login accepts the email or the username, compared case-insensitively.
func (s *Service) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	identifier := strings.ToLower(strings.TrimSpace(req.Identifier()))
	if identifier == "" {
		return model.AuthResponse{}, errs.ErrInvalidCredentials
	}

	user, err := s.repo.FindUserByLogin(ctx, identifier)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.AuthResponse{}, errs.ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}
	if err := auth.CheckPassword(req.Password, user.PasswordHash); err != nil {
		if errors.Is(err, auth.ErrInvalidPassword) {
			return model.AuthResponse{}, errs.ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}
	return s.authResponse(user)
}

func (s *Service) authResponse(user model.User) (model.AuthResponse, error) {
	info := model.UserInfo{ID: user.ID, Username: user.Username, Email: user.Email}
	token, expiry, err := s.tokens.Issue(auth.Principal{UserID: user.ID, Username: user.Username, Email: user.Email})
	if err != nil {
		return model.AuthResponse{}, err
	}
	return model.AuthResponse{Token: token, Expiry: expiry, User: info}, nil
}
