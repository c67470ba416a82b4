package courseRoutes

import (
	controllers "dc3/controllers/course"
	"dc3/middleware"
	validators "dc3/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes mounts the course catalog. Reads are open to any
// authenticated user; writes are admin-only.
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	courseGroup.Get("/list", middleware.JWTMiddleware, validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourse)

	courseGroup.Post("/create", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), validators.CourseID(), validators.CreateCourse(), controllers.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), validators.CourseID(), controllers.DeleteCourse)
}
