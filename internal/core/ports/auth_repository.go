package ports

import (
	"context"

	"github.com/commutersec/admin-dashboard/internal/core/domain"
)

// CredentialRepository stores admin login secrets keyed by username.
type CredentialRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Credential, error)
	Save(ctx context.Context, cred *domain.Credential) error
	DeleteByAdminID(ctx context.Context, adminID int64) error
}
