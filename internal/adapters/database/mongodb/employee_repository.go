package mongodb

import (
	"context"
	"fmt"
	"regexp"

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

// EmployeeRepository implements portsrepo.EmployeeRepositoryFacade over the employes collection.
type EmployeeRepository struct {
	*BaseRepository
	collection *mongo.Collection
}

// NewEmployeeRepository creates a new employee repository.
func NewEmployeeRepository(base *BaseRepository) portsrepo.EmployeeRepositoryFacade {
	return &EmployeeRepository{
		BaseRepository: base,
		collection:     base.db.Collection(employeesCollection),
	}
}

// searchFilter matches nom or email case-insensitively. The search text is
// quoted so it is never interpreted as a pattern.
func searchFilter(search string) bson.M {
	if search == "" {
		return bson.M{}
	}
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	return bson.M{"$or": bson.A{
		bson.M{"nom": pattern},
		bson.M{"email": pattern},
	}}
}

func (r *EmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	oid, err := objectID(employeeID)
	if err != nil {
		return nil, err
	}

	var doc models.Employee
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, mapError(err, "find employee")
	}
	employee := mapping.ToDomainEmployee(doc)
	return &employee, nil
}

func (r *EmployeeRepository) FindEmployees(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(filter.Offset))
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}
	return r.find(ctx, searchFilter(filter.Search), opts)
}

func (r *EmployeeRepository) CountEmployees(ctx context.Context, search string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, searchFilter(search))
	if err != nil {
		return 0, mapError(err, "count employees")
	}
	return count, nil
}

func (r *EmployeeRepository) FindEmployeesByDepartement(ctx context.Context, nom string) ([]domain.Employee, error) {
	return r.find(ctx, bson.M{"departement": nom}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
}

func (r *EmployeeRepository) CountEmployeesByDepartement(ctx context.Context, nom string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"departement": nom})
	if err != nil {
		return 0, mapError(err, "count department employees")
	}
	return count, nil
}

func (r *EmployeeRepository) SaveEmployee(ctx context.Context, employee *domain.Employee) error {
	doc, err := mapping.ToModelEmployee(*employee)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return mapError(err, "insert employee")
	}
	employee.EmployeeID = result.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

// UpdateEmployee $sets only the fields present in the patch.
func (r *EmployeeRepository) UpdateEmployee(ctx context.Context, employeeID string, patch domain.EmployeePatch) error {
	oid, err := objectID(employeeID)
	if err != nil {
		return err
	}

	set := bson.M{}
	setIfPresent(set, "nom", patch.Nom)
	setIfPresent(set, "prenom", patch.Prenom)
	setIfPresent(set, "email", patch.Email)
	setIfPresent(set, "departement", patch.Departement)
	setIfPresent(set, "role", patch.Role)
	setIfPresent(set, "date_embauche", patch.DateEmbauche)
	if patch.Salaire != nil {
		salaire, err := mapping.ToDecimal128(patch.Salaire)
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		set["salaire"] = salaire
	}
	if len(set) == 0 {
		return nil
	}

	result, err := r.collection.UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		return mapError(err, "update employee")
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	oid, err := objectID(employeeID)
	if err != nil {
		return err
	}
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return mapError(err, "delete employee")
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *EmployeeRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.Employee, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, mapError(err, "find employees")
	}
	defer cursor.Close(ctx)

	var docs []models.Employee
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, mapError(err, "decode employees")
	}
	return mapping.ToDomainEmployeeSlice(docs), nil
}

func setIfPresent(set bson.M, field string, value *string) {
	if value != nil {
		set[field] = *value
	}
}
