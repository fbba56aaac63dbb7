package handlers

import (
	"net/http"

	"github.com/Dosada05/leaderboard-admin/models"
	"github.com/Dosada05/leaderboard-admin/services"
)

type LeaderboardHandler struct {
	leaderboardService services.LeaderboardService
}

func NewLeaderboardHandler(ls services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: ls}
}

// ListLeaderboard godoc
// @Summary Таблица лидеров
// @Tags leaderboard
// @Description Записи по убыванию totalPoints.
// @Produce json
// @Success 200 {array} models.LeaderboardEntry
// @Failure 500 {object} map[string]string
// @Router /api/leaderboard [get]
func (h *LeaderboardHandler) ListLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.leaderboardService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, entries, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SetLeaderboardStatus godoc
// @Summary Установить статус online/offline
// @Tags leaderboard
// @Accept json
// @Produce json
// @Param id path string true "Leaderboard entry ID"
// @Param body body object true "{\"status\": \"online\"}"
// @Success 200 {object} map[string]interface{} "message, leaderboard"
// @Failure 400 {object} map[string]string "Недопустимый статус"
// @Failure 404 {object} map[string]string "Запись не найдена"
// @Failure 500 {object} map[string]string
// @Router /api/leaderboard/{id}/status [post]
func (h *LeaderboardHandler) SetLeaderboardStatus(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		Status models.LeaderboardStatus `json:"status"`
	}
	// Пустое или битое тело обрабатываем как отсутствующий статус.
	_ = readJSON(w, r, &input)

	updated, err := h.leaderboardService.SetStatus(r.Context(), id, input.Status)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	resp := jsonResponse{
		"message":     "Status updated",
		"leaderboard": updated,
	}
	if err := writeJSON(w, http.StatusOK, resp, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
