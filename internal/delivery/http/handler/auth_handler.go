package handler

import (
	"github.com/gofiber/fiber/v3"

	"skillmatch/internal/delivery/http/dto"
	"skillmatch/internal/pkg/response"
	"skillmatch/internal/usecase"
)

type AuthHandler struct {
	uc usecase.AuthUsecase
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/login", h.Login)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	cand, token, err := h.uc.Login(c.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return respondUsecaseError(c, err)
	}

	return response.Success(c, fiber.StatusOK, "Login successful", dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Candidate:   dto.FromCandidate(cand),
	})
}
