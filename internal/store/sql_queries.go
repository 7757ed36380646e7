// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-auth-gate/models"
)

const (
	createUser = `INSERT INTO users (id, first_name, last_name, email, is_admin, is_active, hashed_api_key)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, first_name, last_name, email, is_admin, is_active, hashed_api_key, created_at, updated_at;`

	findUserByID = `SELECT id, first_name, last_name, email, is_admin, is_active, hashed_api_key, created_at, updated_at
    FROM users
    WHERE id = $1;`

	findUserByHashedAPIKey = `SELECT id, first_name, last_name, email, is_admin, is_active, hashed_api_key, created_at, updated_at
    FROM users
    WHERE hashed_api_key = $1;`

	deleteUser = `DELETE FROM users
    WHERE id = $1;`

	countUsers = `SELECT count(*) FROM users;`
)

// userColumns is the canonical column order shared by every query that scans
// a full user row.
var userColumns = []string{
	"id",
	"first_name",
	"last_name",
	"email",
	"is_admin",
	"is_active",
	"hashed_api_key",
	"created_at",
	"updated_at",
}

// buildUpdateUserQuery dynamically builds an UPDATE statement containing only
// the fields present in update. updated_at is always set to NOW() so that any
// successful update bumps the modification timestamp.
//
// Returns [ErrBuildingSQLQuery] when update carries no fields at all.
func buildUpdateUserQuery(ctx context.Context, id string, update models.UserUpdate) (string, []any, error) {
	if update.IsZero() {
		return "", nil, fmt.Errorf("%w: no fields to update", ErrBuildingSQLQuery)
	}

	builder := sq.Update("users").
		Set("updated_at", sq.Expr("NOW()")).
		PlaceholderFormat(sq.Dollar)

	if update.FirstName != nil {
		builder = builder.Set("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		builder = builder.Set("last_name", *update.LastName)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.IsAdmin != nil {
		builder = builder.Set("is_admin", *update.IsAdmin)
	}
	if update.IsActive != nil {
		builder = builder.Set("is_active", *update.IsActive)
	}
	if update.HashedAPIKey != nil {
		builder = builder.Set("hashed_api_key", *update.HashedAPIKey)
	}

	builder = builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, first_name, last_name, email, is_admin, is_active, hashed_api_key, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListUsersQuery builds a paginated SELECT over the users table.
// Rows are ordered by creation time (oldest first) with id as a tie-breaker,
// so that repeated listings with the same page parameters are stable.
func buildListUsersQuery(ctx context.Context, limit, offset int) (string, []any, error) {
	builder := sq.Select(userColumns...).
		From("users").
		OrderBy("created_at ASC", "id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(sq.Dollar)

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
