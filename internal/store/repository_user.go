// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/keychain-sync/internal/logger"
	"github.com/MKhiriev/keychain-sync/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateUser registers a new account and returns the stored row. A unique
// violation on the login column maps to [ErrLoginAlreadyExists].
func (u *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	err := u.DB.QueryRowContext(ctx, createUser, user.Login, user.AuthHash, user.KDFSalt).Scan(
		&created.UserID,
		&created.Login,
		&created.AuthHash,
		&created.KDFSalt,
		&created.CreatedAt,
	)

	if postgresError(err) == pgerrcode.UniqueViolation {
		log.Warn().
			Str("func", "userRepository.CreateUser").
			Str("login", user.Login).
			Msg("login already exists")
		return models.User{}, ErrLoginAlreadyExists
	}
	if err != nil {
		log.Err(err).
			Str("func", "userRepository.CreateUser").
			Str("login", user.Login).
			Msg("failed to create user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().
		Str("func", "userRepository.CreateUser").
		Int64("user_id", created.UserID).
		Msg("created user")

	return created, nil
}

// FindUserByLogin looks an account up by login.
func (u *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := u.DB.QueryRowContext(ctx, findUserByLogin, login).Scan(
		&user.UserID,
		&user.Login,
		&user.AuthHash,
		&user.KDFSalt,
		&user.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "userRepository.FindUserByLogin").
			Str("login", login).
			Msg("failed to find user by login")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}
