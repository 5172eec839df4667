package usecase

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInternal           = errors.New("internal error")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrSkillNotFound     = errors.New("skill not found")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrProjectNotFound   = errors.New("project not found")
	ErrMatchNotFound     = errors.New("match not found")
	ErrEmailAlreadyUsed  = errors.New("email already registered")
)
