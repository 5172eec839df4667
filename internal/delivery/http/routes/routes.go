package routes

import (
	"github.com/gofiber/fiber/v3"

	"skillmatch/internal/delivery/http/handler"
	"skillmatch/internal/delivery/http/middleware"
	"skillmatch/internal/ws"
)

type Deps struct {
	Health     *handler.HealthHandler
	Auth       *handler.AuthHandler
	Skills     *handler.SkillHandler
	Candidates *handler.CandidateHandler
	Projects   *handler.ProjectHandler
	Matching   *handler.MatchingHandler
	Algorithm  *handler.AlgorithmHandler

	WS     *ws.Handler
	AuthMW *middleware.AuthMiddleware
}

func Register(app *fiber.App, d Deps) {
	if app == nil {
		return
	}

	if d.Health != nil {
		d.Health.RegisterRoutes(app)
	}
	if d.WS != nil {
		app.Get("/ws/matching", d.WS.HandleMatchingWS)
	}

	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), d)
}
