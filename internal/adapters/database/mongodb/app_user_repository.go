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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AppUserRepository implements portsrepo.AppUserRepositoryFacade over the users collection.
type AppUserRepository struct {
	*BaseRepository
	collection *mongo.Collection
}

// NewAppUserRepository creates a new user repository.
func NewAppUserRepository(base *BaseRepository) portsrepo.AppUserRepositoryFacade {
	return &AppUserRepository{BaseRepository: base, collection: base.db.Collection(usersCollection)}
}

func (r *AppUserRepository) FindAppUserByID(ctx context.Context, userID string) (*domain.AppUser, error) {
	oid, err := objectID(userID)
	if err != nil {
		return nil, err
	}
	var doc models.AppUser
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, mapError(err, "find user")
	}
	user := mapping.ToDomainAppUser(doc)
	return &user, nil
}

func (r *AppUserRepository) ListAppUsers(ctx context.Context) ([]domain.AppUser, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, mapError(err, "list users")
	}
	defer cursor.Close(ctx)

	var docs []models.AppUser
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, mapError(err, "decode users")
	}
	return mapping.ToDomainAppUserSlice(docs), nil
}

func (r *AppUserRepository) SaveAppUser(ctx context.Context, user *domain.AppUser) error {
	result, err := r.collection.InsertOne(ctx, mapping.ToModelAppUser(*user))
	if err != nil {
		return mapError(err, "insert user")
	}
	user.UserID = result.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

func (r *AppUserRepository) UpdateAppUser(ctx context.Context, userID string, patch domain.AppUserPatch) error {
	oid, err := objectID(userID)
	if err != nil {
		return err
	}

	set := bson.M{}
	setIfPresent(set, "name", patch.Name)
	setIfPresent(set, "email", patch.Email)
	setIfPresent(set, "role", patch.Role)
	if len(set) == 0 {
		return nil
	}

	result, err := r.collection.UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		return mapError(err, "update user")
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *AppUserRepository) DeleteAppUser(ctx context.Context, userID string) error {
	oid, err := objectID(userID)
	if err != nil {
		return err
	}
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return mapError(err, "delete user")
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
