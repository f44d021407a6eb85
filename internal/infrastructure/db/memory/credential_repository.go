package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/commutersec/admin-dashboard/internal/core/domain"
)

// CredentialRepository stores admin credentials keyed by lower-cased username.
type CredentialRepository struct {
	mu    sync.RWMutex
	creds map[string]domain.Credential
}

func NewCredentialRepository() *CredentialRepository {
	return &CredentialRepository{creds: make(map[string]domain.Credential)}
}

func (r *CredentialRepository) FindByUsername(_ context.Context, username string) (*domain.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cred, ok := r.creds[strings.ToLower(username)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &cred, nil
}

func (r *CredentialRepository) Save(_ context.Context, cred *domain.Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(cred.Username)
	if existing, ok := r.creds[key]; ok && existing.AdminID != cred.AdminID {
		return domain.ErrUserExists
	}
	r.creds[key] = *cred
	return nil
}

func (r *CredentialRepository) DeleteByAdminID(_ context.Context, adminID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, cred := range r.creds {
		if cred.AdminID == adminID {
			delete(r.creds, key)
		}
	}
	return nil
}
