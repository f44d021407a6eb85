package ports

import (
	"context"

	"github.com/commutersec/admin-dashboard/internal/core/domain"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.Admin, error)
	CurrentAdmin(ctx context.Context, adminID int64) (*domain.Admin, error)
	SetPassword(ctx context.Context, admin domain.Admin, password string) error
	Revoke(ctx context.Context, adminID int64) error
}
