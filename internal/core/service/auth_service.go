package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/commutersec/admin-dashboard/internal/core/domain"
	"github.com/commutersec/admin-dashboard/internal/core/ports"
)

// AuthService implements admin login and token issuing for the mock API.
type AuthService struct {
	creds     ports.CredentialRepository
	admins    ports.Repository[domain.Admin]
	jwtSecret string
	tokenTTL  time.Duration
	now       func() time.Time
	logger    zerolog.Logger
}

func NewAuthService(
	creds ports.CredentialRepository,
	admins ports.Repository[domain.Admin],
	jwtSecret string,
	tokenTTL time.Duration,
	logger zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		creds:     creds,
		admins:    admins,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		now:       time.Now,
		logger:    logger,
	}
}

// Login verifies the password, stamps last_login_at and returns a signed token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	cred, err := s.creds.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	admin, err := s.admins.Get(ctx, cred.AdminID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrUserNotFound
		}
		return "", nil, fmt.Errorf("load admin %d: %w", cred.AdminID, err)
	}
	if admin.IsActive == 0 {
		return "", nil, domain.ErrInactiveAccount
	}

	admin.LastLoginAt = domain.NewTime(s.now().UTC()).Ptr()
	if updated, err := s.admins.Replace(ctx, admin); err != nil {
		s.logger.Warn().Err(err).Int64("admin_id", admin.ID).Msg("failed to record last login")
	} else {
		admin = updated
	}

	token, err := s.generateToken(admin)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("username", admin.Username).Str("role", string(admin.Role)).Msg("admin logged in")
	return token, &admin, nil
}

// CurrentAdmin loads the admin a token was issued for.
func (s *AuthService) CurrentAdmin(ctx context.Context, adminID int64) (*domain.Admin, error) {
	admin, err := s.admins.Get(ctx, adminID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// SetPassword stores a fresh bcrypt hash for admin, replacing any previous
// credential held for the same admin id.
func (s *AuthService) SetPassword(ctx context.Context, admin domain.Admin, password string) error {
	if admin.Username == "" || password == "" {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.creds.DeleteByAdminID(ctx, admin.ID); err != nil {
		return fmt.Errorf("drop previous credential: %w", err)
	}
	return s.creds.Save(ctx, &domain.Credential{
		AdminID:      admin.ID,
		Username:     admin.Username,
		PasswordHash: string(hash),
	})
}

// Revoke removes the credential of a deleted admin.
func (s *AuthService) Revoke(ctx context.Context, adminID int64) error {
	return s.creds.DeleteByAdminID(ctx, adminID)
}

func (s *AuthService) generateToken(admin domain.Admin) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"admin_id": admin.ID,
		"username": admin.Username,
		"role":     string(admin.Role),
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
