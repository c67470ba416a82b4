package trainerRoutes

import (
	controllers "dc3/controllers/trainer"
	"dc3/middleware"
	validators "dc3/validators/trainer"

	"github.com/gofiber/fiber/v2"
)

// SetupTrainerRoutes mounts the trainer catalog. Reads are open to any
// authenticated user; writes are admin-only.
func SetupTrainerRoutes(app *fiber.App) {
	trainerGroup := app.Group("/trainer")

	trainerGroup.Get("/list", middleware.JWTMiddleware, validators.TrainerList(), controllers.GetAllTrainers)
	trainerGroup.Get("/:id", middleware.JWTMiddleware, validators.TrainerID(), controllers.GetTrainer)

	trainerGroup.Post("/create", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), validators.CreateTrainer(), controllers.CreateTrainer)
	trainerGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), validators.TrainerID(), validators.CreateTrainer(), controllers.UpdateTrainer)
	trainerGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), validators.TrainerID(), controllers.DeleteTrainer)
}
