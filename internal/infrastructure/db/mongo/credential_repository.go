package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/commutersec/admin-dashboard/internal/core/domain"
)

const collectionCredentials = "admin_credentials"

// CredentialRepository stores admin password hashes with the lower-cased
// username as _id.
type CredentialRepository struct {
	col *mongo.Collection
}

func NewCredentialRepository(db *mongo.Database) *CredentialRepository {
	return &CredentialRepository{col: db.Collection(collectionCredentials)}
}

type mongoCredential struct {
	Username     string `bson:"_id"`
	DisplayName  string `bson:"username"`
	AdminID      int64  `bson:"admin_id"`
	PasswordHash string `bson:"password_hash"`
}

func (r *CredentialRepository) FindByUsername(ctx context.Context, username string) (*domain.Credential, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mc mongoCredential
	if err := r.col.FindOne(ctx, bson.M{"_id": strings.ToLower(username)}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find credential: %w", err)
	}

	return &domain.Credential{
		AdminID:      mc.AdminID,
		Username:     mc.DisplayName,
		PasswordHash: mc.PasswordHash,
	}, nil
}

func (r *CredentialRepository) Save(ctx context.Context, cred *domain.Credential) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoCredential{
		Username:     strings.ToLower(cred.Username),
		DisplayName:  cred.Username,
		AdminID:      cred.AdminID,
		PasswordHash: cred.PasswordHash,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("insert credential: %w", err)
	}
	return nil
}

func (r *CredentialRepository) DeleteByAdminID(ctx context.Context, adminID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, bson.M{"admin_id": adminID}); err != nil {
		return fmt.Errorf("delete credentials: %w", err)
	}
	return nil
}
