package service

import (
	"context"
	"time"

	"mangarate/internal/auth"
	"mangarate/internal/session"

	"github.com/google/uuid"
)

// adminGatePasswords is the legacy plaintext allow-list, compared exactly and
// case-sensitively. It is only consulted when no ADMIN_PASSWORD_HASH is
// configured; the bcrypt hash is authoritative otherwise.
var adminGatePasswords = []string{"حسن", "hassan"}

// AdminGateService backs the admin-panel gate. It is independent of the role
// table: passing the gate grants no API privilege, it only unlocks the panel
// UI for users who are already admins.
type AdminGateService interface {
	Login(ctx context.Context, password string) (string, error)
	Active(ctx context.Context, token string) (bool, error)
	Logout(ctx context.Context, token string) error
}

type adminGateService struct {
	passwordHash string
	store        *session.GateStore
	ttl          time.Duration
}

func NewAdminGateService(passwordHash string, store *session.GateStore, ttl time.Duration) AdminGateService {
	return &adminGateService{
		passwordHash: passwordHash,
		store:        store,
		ttl:          ttl,
	}
}

// Login checks the password and, on success, opens a server-side gate
// session and returns its token.
func (s *adminGateService) Login(ctx context.Context, password string) (string, error) {
	if !s.verify(password) {
		return "", ErrGateRejected
	}

	token := uuid.New().String()
	if err := s.store.Set(ctx, token, s.ttl); err != nil {
		return "", err
	}
	return token, nil
}

func (s *adminGateService) verify(password string) bool {
	if s.passwordHash != "" {
		return auth.VerifyPassword(s.passwordHash, password) == nil
	}
	for _, p := range adminGatePasswords {
		if password == p {
			return true
		}
	}
	return false
}

// Active reports whether the gate session behind the token is still open.
func (s *adminGateService) Active(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	return s.store.Exists(ctx, token)
}

// Logout closes the gate session.
func (s *adminGateService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.store.Delete(ctx, token)
}
