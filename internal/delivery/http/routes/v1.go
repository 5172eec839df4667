package routes

import "github.com/gofiber/fiber/v3"

func RegisterV1(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	if d.Auth != nil {
		d.Auth.RegisterRoutes(r.Group("/auth"))
	}
	if d.Candidates != nil {
		d.Candidates.RegisterPublicRoutes(r)
	}

	protected := r
	if d.AuthMW != nil {
		protected = r.Group("", d.AuthMW.Middleware())
	}

	if d.Skills != nil {
		d.Skills.RegisterRoutes(protected)
	}
	if d.Candidates != nil {
		d.Candidates.RegisterRoutes(protected)
	}
	if d.Projects != nil {
		d.Projects.RegisterRoutes(protected)
	}
	if d.Matching != nil {
		d.Matching.RegisterRoutes(protected)
	}
	if d.Algorithm != nil {
		d.Algorithm.RegisterRoutes(protected)
	}
}
