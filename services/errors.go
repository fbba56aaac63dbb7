package services

import "errors"

// Общие ошибки сервисного слоя, которые маппятся в HTTP-ответы.
var (
	// Ошибки валидации
	ErrValidationFailed         = errors.New("validation failed")
	ErrInvalidLeaderboardStatus = errors.New("Invalid status. Use 'online' or 'offline'.")

	// Ошибки конфликтов
	ErrAlreadyInLeaderboard = errors.New("Team already in leaderboard")

	// Ресурс не найден
	ErrParticipantNotFound      = errors.New("Team not found")
	ErrLeaderboardEntryNotFound = errors.New("Leaderboard entry not found")
)
