package csvstore

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	types "github.com/unisync/unisync-backend/internal/domain"
	"github.com/unisync/unisync-backend/internal/platform/logger"
)

var credentialHeader = []string{"email", "password"}

type CredentialStore interface {
	// Append stores one row per signup email. The password column holds the
	// bcrypt hash, never the raw password.
	Append(ctx context.Context, c types.Credential) error
	EmailExists(ctx context.Context, email string) (bool, error)
	Verify(ctx context.Context, email, password string) (bool, error)
}

type credentialStore struct {
	t *table
}

func NewCredentialStore(dir string, log *logger.Logger) CredentialStore {
	return &credentialStore{t: newTable(dir, "credentials.csv", credentialHeader, log)}
}

func (s *credentialStore) Append(ctx context.Context, c types.Credential) error {
	s.t.mu.Lock()
	defer s.t.mu.Unlock()
	return s.t.appendRow([]string{c.Email, c.PasswordHash})
}

func (s *credentialStore) EmailExists(ctx context.Context, email string) (bool, error) {
	cred, err := s.find(email)
	return cred != nil, err
}

func (s *credentialStore) Verify(ctx context.Context, email, password string) (bool, error) {
	cred, err := s.find(email)
	if err != nil || cred == nil {
		return false, err
	}
	return bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) == nil, nil
}

func (s *credentialStore) find(email string) (*types.Credential, error) {
	s.t.mu.Lock()
	defer s.t.mu.Unlock()
	for _, row := range s.t.readRows() {
		if len(row) < len(credentialHeader) {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(row[0]), strings.TrimSpace(email)) {
			return &types.Credential{Email: row[0], PasswordHash: row[1]}, nil
		}
	}
	return nil, nil
}
