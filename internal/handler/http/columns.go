package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-column-client/internal/logger"
	"github.com/MKhiriev/go-column-client/models"
)

type columnResponse struct {
	Column int      `json:"column"`
	Values []string `json:"values"`
}

type rowResponse struct {
	LineNo  int      `json:"line_no"`
	Columns []string `json:"columns"`
}

type fileResponse struct {
	Rows []rowResponse `json:"rows"`
}

func (h *Handler) getColumn(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	column, err := strconv.Atoi(chi.URLParam(r, "column"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.getColumn").Msg("invalid column number in path")
		http.Error(w, ErrInvalidColumnParam.Error(), http.StatusBadRequest)
		return
	}

	values, err := h.services.ColumnService.Column(r.Context(), column)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getColumn").Int("column", column).Msg("error getting column")
		writeError(w, err)
		return
	}

	writeJSON(w, columnResponse{Column: column, Values: values})
}

func (h *Handler) getFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	rows, err := h.services.ColumnService.File(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getFile").Msg("error getting file rows")
		writeError(w, err)
		return
	}

	writeJSON(w, newFileResponse(rows))
}

func newFileResponse(rows []models.Row) fileResponse {
	resp := fileResponse{Rows: make([]rowResponse, 0, len(rows))}
	for _, row := range rows {
		resp.Rows = append(resp.Rows, rowResponse{LineNo: row.LineNo, Columns: row.Columns[:]})
	}

	return resp
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(v)
}
