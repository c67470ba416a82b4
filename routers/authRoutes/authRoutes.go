package authRoutes

import (
	authControllers "dc3/controllers/auth"
	"dc3/middleware"
	authValidators "dc3/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidators.Register(), middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), authControllers.Register)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
}
