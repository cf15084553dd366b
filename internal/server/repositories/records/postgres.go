package records

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"notekeeper/internal/common"
	"notekeeper/internal/dbx"
	"notekeeper/internal/server/migrations"
	"notekeeper/internal/server/models"
)

// PostgresRepository keeps one row per user in the users table. Save is a
// whole-record upsert, so the contract matches the file store: callers
// read-modify-write, concurrent writers of the same id are last-writer-wins.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

func (r *PostgresRepository) Exists(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: db error: %v", common.ErrorUnavailable, err)
	}

	return exists, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.User, error) {
	query :=
		`SELECT id, hashed_password, token, data, note_recipients, accessible_notes, created_at
		 FROM users
		 WHERE id = $1
		 `

	var (
		user       models.User
		data       sql.NullString
		recipients []byte
		accessible []byte
	)

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.HashedPassword, &user.Token, &data, &recipients, &accessible, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: user %q", common.ErrorNotFound, id)
		}
		return nil, fmt.Errorf("%w: db error: %v", common.ErrorUnavailable, err)
	}

	if data.Valid {
		user.Data = &data.String
	}
	if err := json.Unmarshal(recipients, &user.NoteRecipients); err != nil {
		return nil, fmt.Errorf("%w: user %q: note_recipients: %v", common.ErrorCorrupt, id, err)
	}
	if err := json.Unmarshal(accessible, &user.AccessibleNotes); err != nil {
		return nil, fmt.Errorf("%w: user %q: accessible_notes: %v", common.ErrorCorrupt, id, err)
	}

	return &user, nil
}

func (r *PostgresRepository) Save(ctx context.Context, user *models.User) error {
	recipients, err := json.Marshal(user.NoteRecipients)
	if err != nil {
		return fmt.Errorf("encoding record %q: %w", user.ID, err)
	}
	accessible, err := json.Marshal(user.AccessibleNotes)
	if err != nil {
		return fmt.Errorf("encoding record %q: %w", user.ID, err)
	}

	query :=
		`INSERT INTO users (id, hashed_password, token, data, note_recipients, accessible_notes, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE SET
		     hashed_password  = EXCLUDED.hashed_password,
		     token            = EXCLUDED.token,
		     data             = EXCLUDED.data,
		     note_recipients  = EXCLUDED.note_recipients,
		     accessible_notes = EXCLUDED.accessible_notes,
		     created_at       = EXCLUDED.created_at
		 `

	if _, err := r.db.ExecContext(ctx, query,
		user.ID, user.HashedPassword, user.Token, user.Data, recipients, accessible, user.CreatedAt); err != nil {
		return fmt.Errorf("%w: db error: %v", common.ErrorUnavailable, err)
	}

	return nil
}

func (r *PostgresRepository) ClearData(ctx context.Context, id string) error {
	query := `UPDATE users SET data = NULL WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%w: db error: %v", common.ErrorUnavailable, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: db error: %v", common.ErrorUnavailable, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: user %q", common.ErrorNotFound, id)
	}

	return nil
}

func (r *PostgresRepository) ListIDs(ctx context.Context) ([]string, error) {
	query := `SELECT id FROM users ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: db error: %v", common.ErrorUnavailable, err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: db error: %v", common.ErrorUnavailable, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: db error: %v", common.ErrorUnavailable, err)
	}

	return ids, nil
}
