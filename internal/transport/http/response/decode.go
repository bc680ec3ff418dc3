package response

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/adminboard/account-service/internal/domain"
)

// DecodeJSON decodes a JSON request body into dst.
func DecodeJSON(r *http.Request, dst any) error {
	if err := render.DecodeJSON(r.Body, dst); err != nil {
		return domain.ErrInvalidJSON(err)
	}
	return nil
}
