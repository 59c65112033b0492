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

// DepartmentRepository implements portsrepo.DepartmentRepositoryFacade.
type DepartmentRepository struct {
	*BaseRepository
	collection *mongo.Collection
	employees  *mongo.Collection
}

// NewDepartmentRepository creates a new department repository.
func NewDepartmentRepository(base *BaseRepository) portsrepo.DepartmentRepositoryFacade {
	return &DepartmentRepository{
		BaseRepository: base,
		collection:     base.db.Collection(departmentsCollection),
		employees:      base.db.Collection(employeesCollection),
	}
}

func (r *DepartmentRepository) FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error) {
	oid, err := objectID(departmentID)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *DepartmentRepository) FindDepartmentByName(ctx context.Context, nom string) (*domain.Department, error) {
	return r.findOne(ctx, bson.M{"nom": nom})
}

func (r *DepartmentRepository) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, mapError(err, "list departments")
	}
	defer cursor.Close(ctx)

	var docs []models.Department
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, mapError(err, "decode departments")
	}
	return mapping.ToDomainDepartmentSlice(docs), nil
}

func (r *DepartmentRepository) SaveDepartment(ctx context.Context, department *domain.Department) error {
	result, err := r.collection.InsertOne(ctx, models.Department{Nom: department.Nom})
	if err != nil {
		return mapError(err, "insert department")
	}
	department.DepartmentID = result.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

// RenameDepartment updates the department then every employee still carrying oldNom.
func (r *DepartmentRepository) RenameDepartment(ctx context.Context, departmentID, oldNom, newNom string) error {
	oid, err := objectID(departmentID)
	if err != nil {
		return err
	}

	return r.WithTransaction(ctx, func(ctx context.Context) error {
		result, err := r.collection.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"nom": newNom}})
		if err != nil {
			return mapError(err, "rename department")
		}
		if result.MatchedCount == 0 {
			return apperrors.ErrNotFound
		}

		_, err = r.employees.UpdateMany(ctx,
			bson.M{"departement": oldNom},
			bson.M{"$set": bson.M{"departement": newNom}},
		)
		return mapError(err, "cascade department rename")
	})
}

func (r *DepartmentRepository) DeleteDepartment(ctx context.Context, departmentID string) error {
	oid, err := objectID(departmentID)
	if err != nil {
		return err
	}
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return mapError(err, "delete department")
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *DepartmentRepository) findOne(ctx context.Context, filter bson.M) (*domain.Department, error) {
	var doc models.Department
	if err := r.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, mapError(err, "find department")
	}
	department := mapping.ToDomainDepartment(doc)
	return &department, nil
}
