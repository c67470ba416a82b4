package companyRoutes

import (
	controllers "dc3/controllers/company"
	"dc3/middleware"
	validators "dc3/validators/company"

	"github.com/gofiber/fiber/v2"
)

// SetupCompanyRoutes mounts the company catalog. Reads are open to any
// authenticated user; writes are admin-only.
func SetupCompanyRoutes(app *fiber.App) {
	companyGroup := app.Group("/company")

	companyGroup.Get("/list", middleware.JWTMiddleware, validators.CompanyList(), controllers.GetAllCompanies)
	companyGroup.Get("/:id", middleware.JWTMiddleware, validators.CompanyID(), controllers.GetCompany)

	companyGroup.Post("/create", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), validators.CreateCompany(), controllers.CreateCompany)
	companyGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), validators.CompanyID(), validators.CreateCompany(), controllers.UpdateCompany)
	companyGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), validators.CompanyID(), controllers.DeleteCompany)
	companyGroup.Post("/:id/logo", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), validators.CompanyID(), controllers.UploadLogo)
}
