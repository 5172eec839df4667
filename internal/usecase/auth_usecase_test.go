package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"skillmatch/internal/domain/candidate"
	"skillmatch/internal/pkg/jwt"
)

func seedAuthCandidate(t *testing.T, active bool) (*fakeCandidateRepo, candidate.Candidate) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	c := candidate.Candidate{
		ID:             uuid.New(),
		Email:          "alex@example.com",
		HashedPassword: string(hashed),
		FullName:       "Alex Chen",
		IsActive:       active,
	}
	return &fakeCandidateRepo{candidates: map[uuid.UUID]candidate.Candidate{c.ID: c}}, c
}

func TestLogin_Success(t *testing.T) {
	repo, seeded := seedAuthCandidate(t, true)
	uc := NewAuthUsecase(repo, jwt.NewHMACService("test-secret", time.Hour))

	c, token, err := uc.Login(context.Background(), LoginInput{
		Email:    "Alex@Example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, c.ID)
	assert.NotEmpty(t, token)

	svc := jwt.NewHMACService("test-secret", time.Hour)
	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, claims.CandidateID)
	assert.Equal(t, seeded.Email, claims.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo, _ := seedAuthCandidate(t, true)
	uc := NewAuthUsecase(repo, jwt.NewHMACService("test-secret", time.Hour))

	_, _, err := uc.Login(context.Background(), LoginInput{
		Email:    "alex@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo, _ := seedAuthCandidate(t, true)
	uc := NewAuthUsecase(repo, jwt.NewHMACService("test-secret", time.Hour))

	_, _, err := uc.Login(context.Background(), LoginInput{
		Email:    "nobody@example.com",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_InactiveCandidate(t *testing.T) {
	repo, _ := seedAuthCandidate(t, false)
	uc := NewAuthUsecase(repo, jwt.NewHMACService("test-secret", time.Hour))

	_, _, err := uc.Login(context.Background(), LoginInput{
		Email:    "alex@example.com",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_EmptyInput(t *testing.T) {
	repo, _ := seedAuthCandidate(t, true)
	uc := NewAuthUsecase(repo, jwt.NewHMACService("test-secret", time.Hour))

	_, _, err := uc.Login(context.Background(), LoginInput{})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
