package records

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"notekeeper/internal/common"
	"notekeeper/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestPostgresExists(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM users WHERE id = \$1\)`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.Exists(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("want exists=true")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresGet_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "hashed_password", "token", "data", "note_recipients", "accessible_notes", "created_at",
	}).AddRow("alice", "hash", "tok", "hello", []byte(`["bob"]`), []byte(`[]`), created)

	mock.ExpectQuery(`SELECT id, hashed_password, token, data, note_recipients, accessible_notes, created_at`).
		WithArgs("alice").
		WillReturnRows(rows)

	user, err := repo.Get(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.Data == nil || *user.Data != "hello" {
		t.Fatalf("want data %q, got %v", "hello", user.Data)
	}
	if !reflect.DeepEqual(user.NoteRecipients, []string{"bob"}) {
		t.Fatalf("want recipients [bob], got %v", user.NoteRecipients)
	}
	if !user.CreatedAt.Equal(created) {
		t.Fatalf("want created_at %v, got %v", created, user.CreatedAt)
	}
}

func TestPostgresGet_NullDataMeansNoNote(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "hashed_password", "token", "data", "note_recipients", "accessible_notes", "created_at",
	}).AddRow("alice", "hash", "tok", nil, []byte(`[]`), []byte(`[]`), time.Now())

	mock.ExpectQuery(`SELECT id, hashed_password, token, data`).
		WithArgs("alice").
		WillReturnRows(rows)

	user, err := repo.Get(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Data != nil {
		t.Fatalf("want nil data, got %q", *user.Data)
	}
}

func TestPostgresGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, hashed_password, token, data`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestPostgresGet_CorruptListColumn(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "hashed_password", "token", "data", "note_recipients", "accessible_notes", "created_at",
	}).AddRow("alice", "hash", "tok", nil, []byte(`{broken`), []byte(`[]`), time.Now())

	mock.ExpectQuery(`SELECT id, hashed_password, token, data`).
		WithArgs("alice").
		WillReturnRows(rows)

	_, err := repo.Get(context.Background(), "alice")
	if !errors.Is(err, common.ErrorCorrupt) {
		t.Fatalf("want ErrorCorrupt, got %v", err)
	}
	if !strings.Contains(err.Error(), "alice") {
		t.Fatalf("error should name the record: %v", err)
	}
}

func TestPostgresSave_Upsert(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	data := "hello"

	q := regexp.MustCompile(`INSERT INTO users .* ON CONFLICT \(id\) DO UPDATE SET`)
	mock.ExpectExec(q.String()).
		WithArgs("alice", "hash", "tok", "hello", []byte(`["bob"]`), []byte(`[]`), created).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), &models.User{
		ID:              "alice",
		HashedPassword:  "hash",
		Token:           "tok",
		Data:            &data,
		NoteRecipients:  []string{"bob"},
		AccessibleNotes: []string{},
		CreatedAt:       created,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresClearData_NotFoundWhenNoRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE users SET data = NULL WHERE id = \$1`).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ClearData(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestPostgresListIDs(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id"}).AddRow("alice").AddRow("bob")
	mock.ExpectQuery(`SELECT id FROM users ORDER BY id`).WillReturnRows(rows)

	ids, err := repo.ListIDs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(ids, []string{"alice", "bob"}) {
		t.Fatalf("want [alice bob], got %v", ids)
	}
}

func TestPostgresListIDs_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id FROM users ORDER BY id`).
		WillReturnError(errors.New("db is down"))

	_, err := repo.ListIDs(context.Background())
	if !errors.Is(err, common.ErrorUnavailable) {
		t.Fatalf("want ErrorUnavailable, got %v", err)
	}
}
