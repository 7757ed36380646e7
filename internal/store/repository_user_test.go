package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &userRepository{
		db: &DB{
			DB:                 db,
			logger:             l,
			errorClassificator: NewPostgresErrorClassifier(),
		},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRows(users ...models.User) *sqlmock.Rows {
	rows := sqlmock.NewRows(userColumns)
	for _, u := range users {
		rows.AddRow(u.ID, u.FirstName, u.LastName, u.Email, u.IsAdmin, u.IsActive, u.HashedAPIKey, u.CreatedAt, u.UpdatedAt)
	}
	return rows
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		ID:           "0198f1a2-0000-7000-8000-000000000001",
		FirstName:    "John",
		LastName:     "Doe",
		Email:        "john@example.com",
		IsActive:     true,
		HashedAPIKey: "digest",
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.ID, user.FirstName, user.LastName, user.Email, user.IsAdmin, user.IsActive, user.HashedAPIKey).
		WillReturnRows(userRows(user))

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != user.ID {
		t.Errorf("expected ID %s, got %s", user.ID, created.ID)
	}
	if created.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, created.Email)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Email: "john@example.com"}

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Email: "john@example.com"}

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(ctx, user)
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Email: "john@example.com"}

	rows := sqlmock.
		NewRows([]string{"id"}). // intentionally wrong shape → scan error
		AddRow("abc")

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(rows)

	_, err := repo.CreateUser(ctx, user)
	if err == nil {
		t.Fatal("expected scan error, got nil")
	}
}

func TestFindUserByID_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		ID:    "0198f1a2-0000-7000-8000-000000000001",
		Email: "john@example.com",
	}

	mock.ExpectQuery("SELECT id").
		WithArgs(user.ID).
		WillReturnRows(userRows(user))

	found, err := repo.FindUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, found.Email)
	}
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id").
		WithArgs("missing").
		WillReturnRows(userRows())

	_, err := repo.FindUserByID(ctx, "missing")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByHashedAPIKey_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		ID:           "0198f1a2-0000-7000-8000-000000000001",
		Email:        "john@example.com",
		IsActive:     true,
		HashedAPIKey: "digest",
	}

	mock.ExpectQuery("SELECT id").
		WithArgs("digest").
		WillReturnRows(userRows(user))

	found, err := repo.FindUserByHashedAPIKey(ctx, "digest")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != user.ID {
		t.Errorf("expected ID %s, got %s", user.ID, found.ID)
	}
}

func TestFindUserByHashedAPIKey_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id").
		WithArgs("no-such-digest").
		WillReturnRows(userRows())

	_, err := repo.FindUserByHashedAPIKey(ctx, "no-such-digest")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestUpdateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	newEmail := "new@example.com"
	user := models.User{
		ID:    "0198f1a2-0000-7000-8000-000000000001",
		Email: newEmail,
	}

	mock.ExpectQuery("UPDATE users").
		WillReturnRows(userRows(user))

	updated, err := repo.UpdateUser(ctx, user.ID, models.UserUpdate{Email: &newEmail})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Email != newEmail {
		t.Errorf("expected email %s, got %s", newEmail, updated.Email)
	}
}

func TestUpdateUser_EmptyUpdate(t *testing.T) {
	repo, _, db := newTestUserRepo(t)
	defer db.Close()

	_, err := repo.UpdateUser(context.Background(), "some-id", models.UserUpdate{})
	if !errors.Is(err, ErrBuildingSQLQuery) {
		t.Fatalf("expected ErrBuildingSQLQuery, got %v", err)
	}
}

func TestUpdateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	newEmail := "taken@example.com"

	mock.ExpectQuery("UPDATE users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.UpdateUser(ctx, "some-id", models.UserUpdate{Email: &newEmail})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	newEmail := "new@example.com"

	mock.ExpectQuery("UPDATE users").
		WillReturnRows(userRows())

	_, err := repo.UpdateUser(ctx, "missing", models.UserUpdate{Email: &newEmail})
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestDeleteUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM users").
		WithArgs("some-id").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteUser(context.Background(), "some-id"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM users").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteUser(context.Background(), "missing")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestListUsers_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	first := models.User{ID: "id-1", Email: "first@example.com"}
	second := models.User{ID: "id-2", Email: "second@example.com"}

	mock.ExpectQuery("SELECT id").
		WillReturnRows(userRows(first, second))

	users, err := repo.ListUsers(context.Background(), 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].Email != first.Email || users[1].Email != second.Email {
		t.Errorf("unexpected order: %s, %s", users[0].Email, users[1].Email)
	}
}

func TestListUsers_Empty(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id").
		WillReturnRows(userRows())

	users, err := repo.ListUsers(context.Background(), 20, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("expected empty slice, got %d users", len(users))
	}
}

func TestListUsers_QueryError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id").
		WillReturnError(errors.New("db failure"))

	_, err := repo.ListUsers(context.Background(), 20, 0)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestCountUsers_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"count"}).AddRow(42)
	mock.ExpectQuery("SELECT count").
		WillReturnRows(rows)

	total, err := repo.CountUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 42 {
		t.Errorf("expected 42, got %d", total)
	}
}

func TestCountUsers_Error(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT count").
		WillReturnError(errors.New("db failure"))

	_, err := repo.CountUsers(context.Background())
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}
