package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/hr_records_app/internal/apperrors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names. Credential accounts live in accounts, apart from the
// admin-managed profiles in users.
const (
	employeesCollection   = "employes"
	departmentsCollection = "departements"
	rolesCollection       = "roles"
	accountsCollection    = "accounts"
	usersCollection       = "users"
)

// BaseRepository holds the database handle shared by all repositories and
// runs multi-document writes in a session transaction when enabled.
type BaseRepository struct {
	client          *mongo.Client
	db              *mongo.Database
	useTransactions bool
}

// NewBaseRepository creates a new base repository.
func NewBaseRepository(client *mongo.Client, db *mongo.Database, useTransactions bool) *BaseRepository {
	return &BaseRepository{client: client, db: db, useTransactions: useTransactions}
}

// Ping verifies the server is reachable.
func (r *BaseRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}

// WithTransaction runs fn inside a transaction, or directly when transactions
// are disabled (standalone servers do not support them).
func (r *BaseRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if !r.useTransactions {
		return fn(ctx)
	}

	session, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

// objectID parses a hex identifier. Malformed identifiers cannot match any
// document, so they are reported as not found.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid id %q", apperrors.ErrNotFound, id)
	}
	return oid, nil
}

// mapError translates driver errors into application errors.
func mapError(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return apperrors.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w", op, apperrors.ErrDuplicate)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
