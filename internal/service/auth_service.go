package service

import (
	"context"
	"fmt"
	"time"

	"nursing-assistant-be/internal/config"
	"nursing-assistant-be/internal/dto"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 24 * time.Hour

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

// authService authenticates the single configured administrator. There is no
// user table behind this; the credential pair lives in configuration with the
// password stored as a bcrypt hash.
type authService struct {
	cfg *config.AuthConfig
}

func NewAuthService(cfg *config.AuthConfig) IAuthService {
	return &authService{cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Email != s.cfg.AdminEmail {
		return nil, fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	expiresAt := time.Now().Add(tokenLifetime)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": req.Email,
		"role":  "admin",
		"exp":   expiresAt.Unix(),
		"iat":   time.Now().Unix(),
	})

	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &dto.LoginResponse{
		AccessToken: signed,
		ExpiresAt:   expiresAt,
	}, nil
}
