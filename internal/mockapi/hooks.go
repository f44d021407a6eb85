package mockapi

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/commutersec/admin-dashboard/internal/core/domain"
	"github.com/commutersec/admin-dashboard/internal/mockapi/handler"
)

// adminHooks keeps usernames unique and mirrors passwords into the
// credential store.
func adminHooks(svc Services) handler.Hooks[domain.Admin, domain.AdminInput] {
	return handler.Hooks[domain.Admin, domain.AdminInput]{
		BeforeSave: func(ctx context.Context, id int64, in *domain.AdminInput) error {
			if id == 0 && in.Password == "" {
				return domain.ErrInvalidCredentials
			}
			admins, err := svc.Admins.List(ctx)
			if err != nil {
				return err
			}
			for _, a := range admins {
				if a.ID != id && strings.EqualFold(a.Username, in.Username) {
					return domain.ErrUserExists
				}
			}
			return nil
		},
		AfterSave: func(ctx context.Context, saved domain.Admin, in domain.AdminInput) error {
			if in.Password == "" {
				return nil
			}
			return svc.Auth.SetPassword(ctx, saved, in.Password)
		},
		AfterDelete: func(ctx context.Context, id int64) error {
			return svc.Auth.Revoke(ctx, id)
		},
	}
}

func passengerHooks() handler.Hooks[domain.Passenger, domain.PassengerInput] {
	return handler.Hooks[domain.Passenger, domain.PassengerInput]{
		BeforeSave: func(_ context.Context, _ int64, in *domain.PassengerInput) error {
			if in.Password == "" {
				return nil
			}
			hash, err := hashPassword(in.Password)
			if err != nil {
				return err
			}
			in.PasswordHash = hash
			return nil
		},
	}
}

// driverHooks issues a QR code to drivers registered without one.
func driverHooks() handler.Hooks[domain.Driver, domain.DriverInput] {
	return handler.Hooks[domain.Driver, domain.DriverInput]{
		BeforeSave: func(_ context.Context, id int64, in *domain.DriverInput) error {
			if id == 0 && in.QRCode == "" {
				in.QRCode = newQRCode()
			}
			return nil
		},
	}
}

func newQRCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "QR" + strings.ToUpper(raw[:10])
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
