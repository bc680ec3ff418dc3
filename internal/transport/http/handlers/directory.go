package http_handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/adminboard/account-service/internal/application/directory"
	"github.com/adminboard/account-service/internal/domain"
	"github.com/adminboard/account-service/internal/logger"
	"github.com/adminboard/account-service/internal/transport/http/dto"
	"github.com/adminboard/account-service/internal/transport/http/response"
)

type DirectoryHandler struct {
	svc *directory.Service
}

func NewDirectoryHandler(svc *directory.Service) *DirectoryHandler {
	return &DirectoryHandler{svc: svc}
}

// List handles GET /users.
func (h *DirectoryHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.svc.List(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	views := make([]dto.UserView, 0, len(accounts))
	for _, a := range accounts {
		views = append(views, dto.UserView{ID: a.ID, Name: a.Name, Email: a.Email})
	}

	response.OK(w, views)
}

// Update handles PUT /users/{id}.
func (h *DirectoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	var req dto.UpdateAccountRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := h.svc.Update(r.Context(), id, req.Name, req.Email); err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Int64("account_id", id).
		Msg("account_updated")

	response.OK(w, dto.StatusResponse{Success: true, Message: "account updated"})
}

// Delete handles DELETE /users/{id}.
func (h *DirectoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Int64("account_id", id).
		Msg("account_deleted")

	response.OK(w, dto.StatusResponse{Success: true, Message: "account deleted"})
}

func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidField("id", "must be a positive integer")
	}
	return id, nil
}
