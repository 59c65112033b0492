package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// schemaStatements creates the tables when missing. There is no versioned
// migration history; existing tables are left as they are.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS departements (
		id         UUID PRIMARY KEY,
		nom        TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS employes (
		id            UUID PRIMARY KEY,
		nom           TEXT NOT NULL DEFAULT '',
		prenom        TEXT NOT NULL DEFAULT '',
		email         TEXT NOT NULL DEFAULT '',
		departement   TEXT NOT NULL DEFAULT '',
		role          TEXT NOT NULL DEFAULT '',
		date_embauche TEXT NOT NULL DEFAULT '',
		salaire       NUMERIC,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_employes_departement ON employes (departement)`,
	`CREATE TABLE IF NOT EXISTS roles (
		id          UUID PRIMARY KEY,
		nom         TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS accounts (
		id                UUID PRIMARY KEY,
		username          TEXT NOT NULL UNIQUE,
		password_hash     TEXT NOT NULL,
		phone             TEXT NOT NULL,
		role              TEXT NOT NULL DEFAULT 'user',
		is_active         BOOLEAN NOT NULL DEFAULT TRUE,
		is_verified       BOOLEAN NOT NULL DEFAULT FALSE,
		verification_code TEXT,
		created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id         UUID PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL,
		role       TEXT NOT NULL,
		is_active  BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// EnsureSchema creates any missing table or index.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
