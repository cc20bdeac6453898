package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/aleksej-tulko/drf-foodgram/internal/auth"
	"github.com/aleksej-tulko/drf-foodgram/internal/models"
	"github.com/aleksej-tulko/drf-foodgram/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct {
	users  repository.UserRepository
	tokens repository.TokenRepository
	secret string
}

func NewAuthService(
	users repository.UserRepository,
	tokens repository.TokenRepository,
	secret string,
) *AuthService {
	return &AuthService{users: users, tokens: tokens, secret: secret}
}

// Login checks the credentials and issues a revocable token.
func (s *AuthService) Login(email, password string) (string, error) {
	if err := validateEmail(email); err != nil {
		return "", err
	}

	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !auth.CheckPassword(user.Password, password) {
		return "", ErrInvalidCredentials
	}

	token, jti, err := auth.IssueToken(s.secret, user.ID)
	if err != nil {
		return "", err
	}
	if _, err := s.tokens.Create(&models.AuthToken{JTI: jti, UserID: user.ID}); err != nil {
		return "", err
	}
	return token, nil
}

// Authenticate resolves a presented token to its user. Revoked tokens
// fail even when the signature is still valid.
func (s *AuthService) Authenticate(tokenString string) (*models.User, string, error) {
	userID, jti, err := auth.ParseToken(s.secret, tokenString)
	if err != nil {
		return nil, "", err
	}

	live, err := s.tokens.Exists(jti)
	if err != nil {
		return nil, "", err
	}
	if !live {
		return nil, "", auth.ErrInvalidToken
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, "", auth.ErrInvalidToken
	}
	return user, jti, nil
}

// Logout revokes a single token.
func (s *AuthService) Logout(jti string) error {
	return s.tokens.Delete(jti)
}
