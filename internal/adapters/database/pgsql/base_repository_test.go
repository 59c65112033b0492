package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/hr_records_app/internal/apperrors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id := uuid.New()
	parsed, err := parseID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = parseID("507f1f77bcf86cd799439011")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMapError(t *testing.T) {
	assert.NoError(t, mapError(nil, "op"))
	assert.ErrorIs(t, mapError(pgx.ErrNoRows, "op"), apperrors.ErrNotFound)

	dup := fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505", ConstraintName: "departements_nom_key"})
	assert.ErrorIs(t, mapError(dup, "insert"), apperrors.ErrDuplicate)

	other := &pgconn.PgError{Code: "23503"}
	err := mapError(other, "insert")
	assert.NotErrorIs(t, err, apperrors.ErrDuplicate)
	assert.True(t, errors.As(err, new(*pgconn.PgError)))
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%durand%", likePattern("durand"))
	assert.Equal(t, `%50\%\_off\\%`, likePattern(`50%_off\`))
}
