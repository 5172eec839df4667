package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"skillmatch/internal/pkg/response"
	"skillmatch/internal/usecase"
)

// respondUsecaseError maps usecase sentinels to their HTTP shape. Unknown
// errors never leak details to the client.
func respondUsecaseError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	case errors.Is(err, usecase.ErrInvalidCredentials), errors.Is(err, usecase.ErrUnauthorized):
		return response.Error(c, fiber.StatusUnauthorized, response.MessageUnauthorized, nil)
	case errors.Is(err, usecase.ErrEmailAlreadyUsed):
		return response.Error(c, fiber.StatusConflict, "Email already registered", nil)
	case errors.Is(err, usecase.ErrSkillNotFound):
		return response.Error(c, fiber.StatusNotFound, "Skill not found", nil)
	case errors.Is(err, usecase.ErrCandidateNotFound):
		return response.Error(c, fiber.StatusNotFound, "Candidate not found", nil)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return response.Error(c, fiber.StatusNotFound, "Project not found", nil)
	case errors.Is(err, usecase.ErrMatchNotFound):
		return response.Error(c, fiber.StatusNotFound, "Match not found", nil)
	default:
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}
}
