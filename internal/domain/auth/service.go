package auth

import (
	"context"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Login(ctx context.Context, creds Credentials) (string, error)
}

type Service struct {
	log *slog.Logger
}

func NewService(log *slog.Logger) *Service {
	return &Service{
		log: log.With("component", "auth_service"),
	}
}

// Login validates the credentials and issues a token. Nothing is persisted
// and no token is ever checked against issued state anywhere.
func (s *Service) Login(ctx context.Context, creds Credentials) (string, error) {
	if err := ValidateCredentials(creds); err != nil {
		s.log.Debug("login rejected", "email", creds.Email, "error", err)
		return "", err
	}

	token, err := GenerateToken()
	if err != nil {
		s.log.Error("failed to generate token", "error", err)
		return "", err
	}

	s.log.Info("token issued", "email", creds.Email)
	return token, nil
}
