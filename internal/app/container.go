package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"skillmatch/internal/config"
	"skillmatch/internal/database"
	dbpostgres "skillmatch/internal/database/postgres"
	"skillmatch/internal/infrastructure/cache"
	"skillmatch/internal/pkg/jwt"
	"skillmatch/internal/pkg/logger"
	"skillmatch/internal/repository"
	"skillmatch/internal/usecase"
	"skillmatch/internal/ws"
)

// Container owns every long-lived dependency: config, logger, database,
// cache, websocket hub and the wired usecases.
type Container struct {
	Config config.Config
	Log    *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub

	JWT jwt.Service

	Skills     repository.SkillRepository
	Candidates repository.CandidateRepository
	Projects   repository.ProjectRepository
	Results    repository.MatchResultRepository

	SkillUC     usecase.SkillUsecase
	CandidateUC usecase.CandidateUsecase
	ProjectUC   usecase.ProjectUsecase
	AuthUC      usecase.AuthUsecase
	MatchingUC  usecase.MatchingUsecase
}

func NewContainer(cfg config.Config) (*Container, error) {
	log, err := logger.New(cfg.App.LogJSON, cfg.App.LogDebug)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, log)
	hub := ws.NewHub(log)
	jwtSvc := jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.ExpiresIn)

	skills := repository.NewPostgresSkillRepository(db)
	candidates := repository.NewPostgresCandidateRepository(db)
	projects := repository.NewPostgresProjectRepository(db)
	results := repository.NewPostgresMatchResultRepository(db)

	return &Container{
		Config: cfg,
		Log:    log,
		DB:     db,
		Cache:  redisCache,
		Hub:    hub,
		JWT:    jwtSvc,

		Skills:     skills,
		Candidates: candidates,
		Projects:   projects,
		Results:    results,

		SkillUC:     usecase.NewSkillUsecase(skills),
		CandidateUC: usecase.NewCandidateUsecase(candidates, skills),
		ProjectUC:   usecase.NewProjectUsecase(projects, skills),
		AuthUC:      usecase.NewAuthUsecase(candidates, jwtSvc),
		MatchingUC:  usecase.NewMatchingUsecase(projects, candidates, results, redisCache, hub, log),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.Log != nil {
		_ = c.Log.Sync()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
