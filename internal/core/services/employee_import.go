package services

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/hr_records_app/internal/core/domain"
)

const importFieldCount = 4

// maxImportLineBytes bounds a single upload line.
const maxImportLineBytes = 64 * 1024

// ImportEmployees inserts one employee per "nom,prenom,email,departement" line.
// Lines with fewer than four fields are skipped and extra fields are ignored.
// Departement is stored as given, without an existence check.
func (s *employeeService) ImportEmployees(ctx context.Context, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxImportLineBytes)

	added, skipped := 0, 0
	for scanner.Scan() {
		employee, ok := parseImportLine(scanner.Text())
		if !ok {
			skipped++
			continue
		}
		if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
			s.LogError(ctx, err, "Failed to save imported employee", slog.Int("added_so_far", added))
			return added, fmt.Errorf("failed to import employee: %w", err)
		}
		added++
	}
	if err := scanner.Err(); err != nil {
		s.LogError(ctx, err, "Failed to read upload", slog.Int("added_so_far", added))
		return added, fmt.Errorf("failed to read upload: %w", err)
	}

	s.LogInfo(ctx, "Employees imported", slog.Int("added", added), slog.Int("skipped", skipped))
	return added, nil
}

func parseImportLine(line string) (*domain.Employee, bool) {
	parts := strings.Split(strings.TrimSuffix(line, "\r"), ",")
	if len(parts) < importFieldCount {
		return nil, false
	}
	for i := range parts[:importFieldCount] {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return &domain.Employee{
		Nom:         parts[0],
		Prenom:      parts[1],
		Email:       parts[2],
		Departement: parts[3],
		AuditFields: domain.AuditFields{CreatedAt: time.Now().UTC()},
	}, true
}
