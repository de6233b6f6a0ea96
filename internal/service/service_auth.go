// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LetterCraft

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lettercraft/backend/internal/config"
	"github.com/lettercraft/backend/internal/logger"
	"github.com/lettercraft/backend/internal/store"
	"github.com/lettercraft/backend/internal/utils"
	"github.com/lettercraft/backend/models"
)

// Token lifetimes. A freshly registered account receives a long-lived token
// so the user can start building letters right away; interactive logins get
// a short-lived one.
const (
	signUpTokenTTL = 7 * 24 * time.Hour
	loginTokenTTL  = 2 * time.Hour
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		logger:         logger,
	}
}

// SignUp creates a new user account and issues its first JWT.
//
// It validates that username, email and password are all non-empty, hashes
// the password with bcrypt, and delegates persistence to the UserRepository.
// The issued token carries only the subject claim and remains valid for
// signUpTokenTTL.
//
// The unique index on the email column is the authoritative uniqueness
// check; the lookup made before the INSERT only gives a friendlier error for
// the common case and cannot race ahead of the index.
//
// Returns the persisted user (with server-assigned UserID and CreatedAt) and
// the token, or:
//   - ErrInvalidDataProvided if any field is empty.
//   - store.ErrEmailAlreadyExists if the email is already registered.
//   - ErrTokenCreationFailed if JWT generation fails.
//   - A wrapped storage error for any other repository failure.
func (a *authService) SignUp(ctx context.Context, username, email, password string) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if username == "" || email == "" || password == "" {
		log.Error().Str("username", username).Str("email", email).Msg("invalid user data provided")
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}

	if _, err := a.userRepository.FindUserByEmail(ctx, email); err == nil {
		log.Error().Str("email", email).Msg("email is already registered")
		return models.User{}, models.Token{}, store.ErrEmailAlreadyExists
	} else if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Str("email", email).Msg("user lookup before registration failed")
		return models.User{}, models.Token{}, fmt.Errorf("user lookup before registration failed: %w", err)
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Str("email", email).Msg("password hashing failed")
		return models.User{}, models.Token{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	// sign-up token carries only the subject claim
	token, err := utils.GenerateJWTToken(a.tokenIssuer, registeredUser.UserID, "", signUpTokenTTL, a.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("id", registeredUser.UserID).Msg("sign-up token creation failed")
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return registeredUser, token, nil
}

// Login authenticates an existing user and issues a session JWT.
//
// It validates that email and password are non-empty, looks up the account by
// email, and verifies the supplied password against the stored bcrypt hash.
// The issued token carries both the subject and the email claim and remains
// valid for loginTokenTTL.
//
// Returns the authenticated user record and the token, or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - store.ErrUserNotFound if no account matches the email.
//   - ErrWrongPassword if the password does not match the stored hash.
//   - ErrTokenCreationFailed if JWT generation fails.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid user data provided")
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(password, foundUser.PasswordHash) {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, models.Token{}, ErrWrongPassword
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, foundUser.UserID, foundUser.Email, loginTokenTTL, a.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("login token creation failed")
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return foundUser, token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
