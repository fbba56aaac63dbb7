package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/Dosada05/leaderboard-admin/export"
	"github.com/Dosada05/leaderboard-admin/services"
)

type DataHandler struct {
	aggregateService services.AggregateService
}

func NewDataHandler(as services.AggregateService) *DataHandler {
	return &DataHandler{aggregateService: as}
}

// AllData godoc
// @Summary Все команды
// @Tags data
// @Description Таблица лидеров с контактами участников и команды, которых в ней ещё нет.
// @Produce json
// @Success 200 {object} models.AllData
// @Failure 500 {object} map[string]string
// @Router /api/all-data [get]
func (h *DataHandler) AllData(w http.ResponseWriter, r *http.Request) {
	data, err := h.aggregateService.AllData(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, data, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GenerateCode godoc
// @Summary Сгенерировать код команды
// @Tags data
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/generate-code [get]
func (h *DataHandler) GenerateCode(w http.ResponseWriter, r *http.Request) {
	code := services.GenerateUniqueCode(services.DefaultCodeLength)
	if err := writeJSON(w, http.StatusOK, jsonResponse{"uniqueCode": code}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ExportTeams godoc
// @Summary Выгрузить список команд в XLSX
// @Tags data
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} map[string]string
// @Router /api/export/teams.xlsx [get]
func (h *DataHandler) ExportTeams(w http.ResponseWriter, r *http.Request) {
	data, err := h.aggregateService.AllData(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	// Пишем в буфер, чтобы при ошибке ещё можно было ответить JSON.
	var buf bytes.Buffer
	if err := export.WriteRosterXLSX(&buf, data); err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", export.RosterContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="teams.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
