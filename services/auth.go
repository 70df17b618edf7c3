package services

import (
	"context"
	"errors"
	"fmt"
	"kucukaslan/timeapp/domain"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var _ domain.AuthService = &authService{}

type authService struct {
	store      domain.UserStore
	jwtSecret  []byte
	bcryptCost int
}

// NewAuthService returns a domain.AuthService that stores accounts in store
// and signs HS256 tokens with jwtSecret
func NewAuthService(store domain.UserStore, jwtSecret string) (domain.AuthService, error) {
	if store == nil {
		return nil, fmt.Errorf("user store cannot be nil")
	}
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT secret cannot be empty")
	}
	return &authService{
		store:      store,
		jwtSecret:  []byte(jwtSecret),
		bcryptCost: bcrypt.DefaultCost,
	}, nil
}

func (a *authService) Register(ctx context.Context, credentials *domain.Credentials) error {
	if err := a.store.Ready(ctx); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), a.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if _, err := a.store.CreateUser(ctx, strings.ToLower(credentials.Email), string(hash)); err != nil {
		return err
	}
	return nil
}

// Login returns OK=false for an unknown email or a wrong password
func (a *authService) Login(ctx context.Context, credentials *domain.Credentials) (*domain.LoginResult, error) {
	if err := a.store.Ready(ctx); err != nil {
		return nil, err
	}

	user, err := a.store.GetUserByEmail(ctx, credentials.Email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return &domain.LoginResult{OK: false}, nil
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
		return &domain.LoginResult{OK: false}, nil
	}

	token, err := a.signToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &domain.LoginResult{OK: true, Token: token}, nil
}

func (a *authService) signToken(uid int64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"uid": uid})
	signed, err := token.SignedString(a.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
