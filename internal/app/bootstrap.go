package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"

	"skillmatch/internal/delivery/http/handler"
	"skillmatch/internal/delivery/http/middleware"
	"skillmatch/internal/delivery/http/routes"
	"skillmatch/internal/ws"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// New builds the HTTP application on top of an already-wired container
// and starts the websocket hub loop.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	f.Use(middleware.NewErrorMiddleware(c.Log).Middleware())
	f.Use(middleware.NewAccessLogMiddleware(c.Log).Middleware())

	go c.Hub.Run()

	routes.Register(f, routes.Deps{
		Health:     handler.NewHealthHandler(c.DB, c.Cache),
		Auth:       handler.NewAuthHandler(c.AuthUC),
		Skills:     handler.NewSkillHandler(c.SkillUC),
		Candidates: handler.NewCandidateHandler(c.CandidateUC),
		Projects:   handler.NewProjectHandler(c.ProjectUC),
		Matching:   handler.NewMatchingHandler(c.MatchingUC, c.ProjectUC),
		Algorithm:  handler.NewAlgorithmHandler(),

		WS:     ws.NewHandler(c.Hub, c.Log),
		AuthMW: middleware.NewAuthMiddleware(c.JWT),
	})

	return &App{Fiber: f, Container: c}
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
