package services

import (
	"context"

	"GameCatalogAPI/internal/apperr"
	"GameCatalogAPI/internal/repository"
	"GameCatalogAPI/internal/token"
	"GameCatalogAPI/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	Users  repository.UserRepository
	Tokens *token.Service
}

func NewAuthService(users repository.UserRepository, tokens *token.Service) *AuthService {
	return &AuthService{Users: users, Tokens: tokens}
}

// Login validates the credentials and returns a signed bearer token. An
// unknown email and a wrong password both return apperr.ErrInvalidCredentials
// so the response cannot be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if err := validation.ValidateLogin(validation.LoginPayload{Email: email, Password: password}); err != nil {
		return "", err
	}
	u, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		return "", apperr.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", apperr.ErrInvalidCredentials
	}
	return s.Tokens.Issue(u.ID, u.Email)
}
