package handlers

import (
	"fmt"
	"net/http"

	"github.com/Dosada05/leaderboard-admin/services"
)

type ParticipantHandler struct {
	participantService services.ParticipantService
}

func NewParticipantHandler(ps services.ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{
		participantService: ps,
	}
}

// ListParticipants godoc
// @Summary Список зарегистрированных команд
// @Tags participants
// @Description Команды от новых к старым, с данными из таблицы лидеров.
// @Produce json
// @Success 200 {array} models.ParticipantView
// @Failure 500 {object} map[string]string
// @Router /api/participants [get]
func (h *ParticipantHandler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	participants, err := h.participantService.ListDecorated(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, participants, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RegisterParticipant godoc
// @Summary Зарегистрировать команду
// @Tags participants
// @Accept json
// @Produce json
// @Param body body services.RegisterParticipantInput true "Участники, телефоны и название команды"
// @Success 201 {object} map[string]interface{} "message, uniqueCode, id"
// @Failure 400 {object} map[string]string "Не заполнено обязательное поле"
// @Failure 500 {object} map[string]string
// @Router /api/participants [post]
func (h *ParticipantHandler) RegisterParticipant(w http.ResponseWriter, r *http.Request) {
	var input services.RegisterParticipantInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	participant, err := h.participantService.Register(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	resp := jsonResponse{
		"message":    "Team registered successfully!",
		"uniqueCode": participant.UniqueCode,
		"id":         participant.ID,
	}
	if err := writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteParticipant godoc
// @Summary Удалить команду
// @Tags participants
// @Description Удаляет команду и, если есть, её запись в таблице лидеров.
// @Produce json
// @Param id path string true "Participant ID"
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/participants/{id} [delete]
func (h *ParticipantHandler) DeleteParticipant(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.participantService.Delete(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"message": "Team deleted successfully"}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// MoveToLeaderboard godoc
// @Summary Перенести команду в таблицу лидеров
// @Tags participants
// @Produce json
// @Param id path string true "Participant ID"
// @Success 200 {object} map[string]interface{} "message, leaderboard_data"
// @Failure 400 {object} map[string]string "Команда уже в таблице лидеров"
// @Failure 404 {object} map[string]string "Команда не найдена"
// @Failure 500 {object} map[string]string
// @Router /api/move-to-leaderboard/{id} [post]
func (h *ParticipantHandler) MoveToLeaderboard(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	entry, err := h.participantService.Promote(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	resp := jsonResponse{
		"message":          fmt.Sprintf("Team %q launched to leaderboard!", entry.Name),
		"leaderboard_data": entry,
	}
	if err := writeJSON(w, http.StatusOK, resp, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
