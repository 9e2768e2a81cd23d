package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/anaconecta/conecta-api/internal/infra/http/middleware"
	"github.com/anaconecta/conecta-api/internal/usecase"
)

type ExportHandler struct {
	UC *usecase.ExportUseCase
}

func NewExportHandler(uc *usecase.ExportUseCase) *ExportHandler {
	return &ExportHandler{UC: uc}
}

type exportRequest struct {
	Format string `json:"format"`
}

// Export gera o relatório para download. O header X-Export-Source diz
// se os números são ao vivo ou o último snapshot bom conhecido.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	report := chi.URLParam(r, "report")

	var req exportRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.UC.Export(r.Context(), report, req.Format)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordExport(report, req.Format)

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, result.Filename))
	w.Header().Set("X-Export-Source", result.Source)
	w.WriteHeader(http.StatusOK)
	w.Write(result.Body)
}
