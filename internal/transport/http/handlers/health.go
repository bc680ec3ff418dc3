package http_handlers

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/adminboard/account-service/internal/transport/http/response"
)

// HealthHandler serves liveness and readiness. Only the database gates
// readiness; the report cache and the event publisher are best-effort,
// so their state is reported but never flips the status.
type HealthHandler struct {
	db         *sql.DB
	cachePing func(ctx context.Context) error // nil when the report cache is disabled
	publisher  string                          // "amqp" or "noop"
}

func NewHealthHandler(db *sql.DB, cachePing func(context.Context) error, publisher string) *HealthHandler {
	if publisher == "" {
		publisher = "noop"
	}
	return &HealthHandler{db: db, cachePing: cachePing, publisher: publisher}
}

// Healthz handles GET /healthz.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{"status": "ok"})
}

// Readyz handles GET /readyz.
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.PingContext(r.Context()); err != nil {
			response.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unavailable",
				"error":  "database unavailable",
			})
			return
		}
	}

	cache := "disabled"
	if h.cachePing != nil {
		cache = "ok"
		if err := h.cachePing(r.Context()); err != nil {
			cache = "unavailable"
		}
	}

	response.OK(w, map[string]string{
		"status":    "ready",
		"cache":     cache,
		"publisher": h.publisher,
	})
}
