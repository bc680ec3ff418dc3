package http_handlers

import (
	"net/http"

	"github.com/adminboard/account-service/internal/application/identity"
	"github.com/adminboard/account-service/internal/domain"
	"github.com/adminboard/account-service/internal/logger"
	"github.com/adminboard/account-service/internal/transport/http/dto"
	"github.com/adminboard/account-service/internal/transport/http/middleware"
	"github.com/adminboard/account-service/internal/transport/http/response"
)

type IdentityHandler struct {
	svc *identity.Service
}

func NewIdentityHandler(svc *identity.Service) *IdentityHandler {
	return &IdentityHandler{svc: svc}
}

// Signup handles POST /signup.
func (h *IdentityHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Int64("account_id", res.Account.ID).
		Str("email", res.Account.Email).
		Msg("account_registered")

	response.Created(w, dto.SignupResponse{
		Success: true,
		Message: "account created",
	})
}

// Login handles POST /login.
func (h *IdentityHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Int64("account_id", res.Account.ID).
		Msg("account_logged_in")

	response.OK(w, dto.LoginResponse{
		Success: true,
		Message: "login successful",
		Name:    res.Account.Name,
		Email:   res.Account.Email,
		Role:    res.Role,
		ID:      res.Account.ID,
		Token:   res.Token,
	})
}

// Me handles GET /me (token-protected).
func (h *IdentityHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return
	}
	role, _ := middleware.RoleFromContext(r.Context())

	response.OK(w, dto.MeResponse{ID: id, Role: role})
}
