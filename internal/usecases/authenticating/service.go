package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard/internal/config"
)

// Guard é a checagem de credencial usada pela rota do dashboard
type Guard interface {
	ValidateToken(tokenString string) bool
}

type Service struct {
	secret  []byte
	enabled bool
}

func NewService(cfg *config.Config) (*Service, error) {
	if cfg.Auth.Enabled && cfg.Auth.Secret == "" {
		return nil, ErrMissingSecret
	}

	return &Service{
		secret:  []byte(cfg.Auth.Secret),
		enabled: cfg.Auth.Enabled,
	}, nil
}

func (s *Service) Enabled() bool {
	return s.enabled
}

// ValidateToken aceita qualquer requisição quando a guarda está desligada
func (s *Service) ValidateToken(tokenString string) bool {
	if !s.enabled {
		return true
	}

	if _, err := s.parse(tokenString); err != nil {
		logrus.WithError(err).Debug("authenticating: token rejeitado")
		return false
	}
	return true
}

// IssueToken assina um token HS256 para o subject informado
func (s *Service) IssueToken(subject string, ttl time.Duration) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrMissingSecret
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) parse(tokenString string) (*jwt.RegisteredClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
