package http_handlers

import (
	"net/http"

	"github.com/adminboard/account-service/internal/application/report"
	"github.com/adminboard/account-service/internal/transport/http/dto"
	"github.com/adminboard/account-service/internal/transport/http/response"
)

type ReportHandler struct {
	svc *report.Service
}

func NewReportHandler(svc *report.Service) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// Generate handles GET /reports.
func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	doc, err := h.svc.Generate(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.NewReportView(doc))
}
