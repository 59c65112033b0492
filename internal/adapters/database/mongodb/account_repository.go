package mongodb

import (
	"context"

	"github.com/SscSPs/hr_records_app/internal/apperrors"
	"github.com/SscSPs/hr_records_app/internal/core/domain"
	portsrepo "github.com/SscSPs/hr_records_app/internal/core/ports/repositories"
	"github.com/SscSPs/hr_records_app/internal/models"
	"github.com/SscSPs/hr_records_app/internal/utils/mapping"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AccountRepository is the credential store backed by the accounts collection.
type AccountRepository struct {
	*BaseRepository
	collection *mongo.Collection
}

// NewAccountRepository creates a new credential store.
func NewAccountRepository(base *BaseRepository) portsrepo.CredentialRepositoryFacade {
	return &AccountRepository{BaseRepository: base, collection: base.db.Collection(accountsCollection)}
}

func (r *AccountRepository) FindAccountByUsername(ctx context.Context, username string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *AccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	oid, err := objectID(accountID)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *AccountRepository) SaveAccount(ctx context.Context, account *domain.Account) error {
	result, err := r.collection.InsertOne(ctx, mapping.ToModelAccount(*account))
	if err != nil {
		return mapError(err, "insert account")
	}
	account.AccountID = result.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

func (r *AccountRepository) SetActive(ctx context.Context, username string, active bool) error {
	return r.setField(ctx, username, "is_active", active)
}

func (r *AccountRepository) SetVerified(ctx context.Context, username string) error {
	return r.setField(ctx, username, "is_verified", true)
}

func (r *AccountRepository) setField(ctx context.Context, username, field string, value any) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{"$set": bson.M{field: value}},
	)
	if err != nil {
		return mapError(err, "update account")
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *AccountRepository) findOne(ctx context.Context, filter bson.M) (*domain.Account, error) {
	var doc models.Account
	if err := r.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, mapError(err, "find account")
	}
	account := mapping.ToDomainAccount(doc)
	return &account, nil
}
