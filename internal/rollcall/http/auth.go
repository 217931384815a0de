package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quorumhq/rollcall/internal/rollcall/service"
	"github.com/quorumhq/rollcall/pkg/httpx"
	"github.com/quorumhq/rollcall/pkg/rollcallsdk"
	"github.com/quorumhq/rollcall/pkg/slogx"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleRegister godoc
//
//	@Summary		User Registration Endpoint
//	@Description	Create a new member account and return the user with a signed access token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rollcallsdk.RegisterRequest	true	"Registration details"
//	@Success		201		{object}	rollcallsdk.AuthResponse	"message, user, token"
//	@Failure		400		{object}	rollcallsdk.APIError		"error, message"
//	@Failure		500		{object}	rollcallsdk.APIError		"error, message"
//	@Router			/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req rollcallsdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rollcallsdk.ErrBadRequest.WithMessage("invalid JSON body").WriteError(w)
		return
	}

	user, token, err := h.AuthService.Register(ctx, req.Email, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRegistration):
			rollcallsdk.ErrBadRequest.WithMessage("email, name and password are required").WriteError(w)
		case errors.Is(err, service.ErrEmailTaken):
			// 400, not 409: existing clients match on the status code.
			rollcallsdk.ErrBadRequest.WithMessage("email already registered").WriteError(w)
		default:
			log.Error("registration failed", "err", err)
			rollcallsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, rollcallsdk.AuthResponse{
		Message: "registration successful",
		User:    toUser(user),
		Token:   token,
	})
}

// HandleLogin godoc
//
//	@Summary		User Login Endpoint
//	@Description	Exchange email and password for a signed access token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rollcallsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	rollcallsdk.AuthResponse	"message, user, token"
//	@Failure		400		{object}	rollcallsdk.APIError		"error, message"
//	@Failure		401		{object}	rollcallsdk.APIError		"error, message"
//	@Failure		500		{object}	rollcallsdk.APIError		"error, message"
//	@Router			/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req rollcallsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rollcallsdk.ErrBadRequest.WithMessage("invalid JSON body").WriteError(w)
		return
	}
	if req.Email == "" || req.Password == "" {
		rollcallsdk.ErrBadRequest.WithMessage("email and password are required").WriteError(w)
		return
	}

	user, token, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			rollcallsdk.ErrUnauthenticated.WithMessage("invalid credentials").WriteError(w)
			return
		}
		log.Error("login failed", "err", err)
		rollcallsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, rollcallsdk.AuthResponse{
		Message: "login successful",
		User:    toUser(user),
		Token:   token,
	})
}
