package usecase

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"skillmatch/internal/domain/candidate"
	"skillmatch/internal/pkg/jwt"
	"skillmatch/internal/repository"
)

type LoginInput struct {
	Email    string
	Password string
}

type AuthUsecase interface {
	Login(ctx context.Context, in LoginInput) (candidate.Candidate, string, error)
}

type Auth struct {
	candidates repository.CandidateRepository
	jwt        jwt.Service
}

func NewAuthUsecase(candidates repository.CandidateRepository, jwtSvc jwt.Service) *Auth {
	return &Auth{candidates: candidates, jwt: jwtSvc}
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (candidate.Candidate, string, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return candidate.Candidate{}, "", ErrInvalidCredentials
	}

	c, err := u.candidates.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return candidate.Candidate{}, "", ErrInvalidCredentials
		}
		return candidate.Candidate{}, "", ErrInternal
	}
	if !c.IsActive {
		return candidate.Candidate{}, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(c.HashedPassword), []byte(in.Password)); err != nil {
		return candidate.Candidate{}, "", ErrInvalidCredentials
	}

	token, err := u.jwt.GenerateAccessToken(c.ID, c.Email)
	if err != nil {
		return candidate.Candidate{}, "", ErrInternal
	}
	return c, token, nil
}
