// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LetterCraft

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lettercraft/backend/models"
)

// userColumns lists the "users" table columns in scan order. Every query that
// returns user rows selects exactly these columns so that scanUser stays the
// single place that knows the row shape.
var userColumns = []string{
	"user_id",
	"username",
	"email",
	"password_hash",
	"created_at",
}

// buildInsertUserQuery builds the parameterised INSERT for a new user account.
// The RETURNING clause hands back the full row so the caller receives the
// server-assigned user_id and created_at.
func buildInsertUserQuery(user models.User) (string, []any, error) {
	query, args, err := sq.
		Insert(user.TableName()).
		Columns("username", "email", "password_hash").
		Values(user.Username, user.Email, user.PasswordHash).
		Suffix("RETURNING user_id, username, email, password_hash, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectUserByEmailQuery builds the lookup query for a user by email.
// Email equality is the canonical identity check; the unique index on the
// email column guarantees at most one row.
func buildSelectUserByEmailQuery(email string) (string, []any, error) {
	query, args, err := sq.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
