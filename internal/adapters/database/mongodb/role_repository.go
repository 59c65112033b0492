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

// RoleRepository implements portsrepo.RoleRepositoryFacade.
type RoleRepository struct {
	*BaseRepository
	collection *mongo.Collection
}

// NewRoleRepository creates a new role repository.
func NewRoleRepository(base *BaseRepository) portsrepo.RoleRepositoryFacade {
	return &RoleRepository{BaseRepository: base, collection: base.db.Collection(rolesCollection)}
}

func (r *RoleRepository) FindRoleByID(ctx context.Context, roleID string) (*domain.Role, error) {
	oid, err := objectID(roleID)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *RoleRepository) FindRoleByName(ctx context.Context, nom string) (*domain.Role, error) {
	return r.findOne(ctx, bson.M{"nom": nom})
}

func (r *RoleRepository) ListRoles(ctx context.Context) ([]domain.Role, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, mapError(err, "list roles")
	}
	defer cursor.Close(ctx)

	var docs []models.Role
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, mapError(err, "decode roles")
	}
	return mapping.ToDomainRoleSlice(docs), nil
}

func (r *RoleRepository) SaveRole(ctx context.Context, role *domain.Role) error {
	result, err := r.collection.InsertOne(ctx, models.Role{Nom: role.Nom, Description: role.Description})
	if err != nil {
		return mapError(err, "insert role")
	}
	role.RoleID = result.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

func (r *RoleRepository) UpdateRole(ctx context.Context, role domain.Role) error {
	oid, err := objectID(role.RoleID)
	if err != nil {
		return err
	}
	result, err := r.collection.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"nom":         role.Nom,
		"description": role.Description,
	}})
	if err != nil {
		return mapError(err, "update role")
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *RoleRepository) DeleteRole(ctx context.Context, roleID string) error {
	oid, err := objectID(roleID)
	if err != nil {
		return err
	}
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return mapError(err, "delete role")
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *RoleRepository) findOne(ctx context.Context, filter bson.M) (*domain.Role, error) {
	var doc models.Role
	if err := r.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, mapError(err, "find role")
	}
	role := mapping.ToDomainRole(doc)
	return &role, nil
}
