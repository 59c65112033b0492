package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/hr_records_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestDepartmentInUseIsValidation(t *testing.T) {
	err := fmt.Errorf("delete departement: %w", apperrors.ErrDepartmentInUse)

	assert.True(t, errors.Is(err, apperrors.ErrDepartmentInUse))
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	assert.False(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Equal(t, "Impossible de supprimer le département, des employés y sont affectés", apperrors.Message(err, "x"))
}

func TestMessage(t *testing.T) {
	wrapped := fmt.Errorf("create employee: %w", apperrors.NewAppError(apperrors.ErrValidation, "Département 'RH' non trouvé"))

	assert.True(t, errors.Is(wrapped, apperrors.ErrValidation))
	assert.Equal(t, "Département 'RH' non trouvé", apperrors.Message(wrapped, "fallback"))
	assert.Equal(t, "fallback", apperrors.Message(apperrors.ErrNotFound, "fallback"))
	assert.Equal(t, "fallback", apperrors.Message(nil, "fallback"))
}
