// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LetterCraft

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lettercraft/backend/internal/logger"
	"github.com/lettercraft/backend/internal/service"
	"github.com/lettercraft/backend/internal/store"
	"github.com/lettercraft/backend/internal/utils"
	"github.com/lettercraft/backend/models"
)

// Response texts returned to API clients. Validation problems use the
// "message" field, account and server problems use the "error" field.
const (
	msgAllFieldsRequired = "all fields are required"
	errUserAlreadyExists = "user already exists"
	errUserDoesNotExist  = "user does not exist"
	errInvalidCredential = "invalid email or password"
	errServerError       = "server error"
	errInvalidJSON       = "invalid JSON was passed"
)

// signUp handles POST /auth/signUp.
//
// It decodes the registration payload, delegates to AuthService.SignUp and
// responds with 201 and the created user plus a fresh long-lived token.
//
// Status mapping:
//   - 400 {"message": …}: missing fields.
//   - 400 {"error": …}:   malformed JSON or email already registered.
//   - 500 {"error": …}:   any other failure.
func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: errInvalidJSON}, http.StatusBadRequest)
		return
	}

	registeredUser, token, err := h.services.AuthService.SignUp(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.ErrorResponse{Message: msgAllFieldsRequired}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already registered")
			utils.WriteJSON(w, models.ErrorResponse{Error: errUserAlreadyExists}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSON(w, models.ErrorResponse{Error: errServerError}, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", registeredUser.UserID).Str("email", registeredUser.Email).Msg("user registered")

	utils.WriteJSON(w, models.AuthResponse{
		User:  registeredUser,
		Token: token.String(),
	}, http.StatusCreated)
}

// login handles POST /auth/login.
//
// It decodes the credentials, delegates to AuthService.Login and responds
// with 200, the account and a short-lived session token.
//
// Status mapping:
//   - 400 {"message": …}: missing fields.
//   - 400 {"error": …}:   malformed JSON, unknown email, or wrong password.
//   - 500 {"error": …}:   any other failure.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: errInvalidJSON}, http.StatusBadRequest)
		return
	}

	foundUser, token, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.ErrorResponse{Message: msgAllFieldsRequired}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Msg("no user was found")
			utils.WriteJSON(w, models.ErrorResponse{Error: errUserDoesNotExist}, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("wrong password")
			utils.WriteJSON(w, models.ErrorResponse{Error: errInvalidCredential}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSON(w, models.ErrorResponse{Error: errServerError}, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.AuthResponse{
		User:  foundUser,
		Token: token.String(),
	}, http.StatusOK)
}

// live handles GET / and reports service liveness.
func (h *Handler) live(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("letter builder backend is running"))
}
