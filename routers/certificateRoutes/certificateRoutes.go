package certificateRoutes

import (
	controllers "dc3/controllers/certificate"
	"dc3/middleware"
	validators "dc3/validators/certificate"

	"github.com/gofiber/fiber/v2"
)

// SetupCertificateRoutes mounts the DC-3 certificate lifecycle: creation
// (manual or roster upload), admin validation, course associations,
// conflict checking, document generation, and the public QR verification
// endpoint.
func SetupCertificateRoutes(app *fiber.App) {
	certGroup := app.Group("/certificate")

	certGroup.Post("/create", middleware.JWTMiddleware, validators.Create(), controllers.CreateCertificate)
	certGroup.Post("/roster", middleware.JWTMiddleware, controllers.UploadRoster)
	certGroup.Get("/list", middleware.JWTMiddleware, validators.List(), controllers.GetAllCertificates)
	certGroup.Get("/:id", middleware.JWTMiddleware, validators.CertificateID(), controllers.GetCertificate)

	certGroup.Put("/:id/validate", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), validators.CertificateID(), validators.Validate(), controllers.ValidateCertificate)

	certGroup.Post("/:id/courses", middleware.JWTMiddleware, validators.CertificateID(), validators.AddCourse(), controllers.AddCourseAssociation)
	certGroup.Delete("/:id/courses/:assocId", middleware.JWTMiddleware, validators.CertificateID(), validators.AssociationID(), controllers.RemoveCourseAssociation)

	certGroup.Get("/:id/conflicts", middleware.JWTMiddleware, validators.CertificateID(), validators.Conflicts(), controllers.CheckConflicts)
	certGroup.Get("/:id/documents", middleware.JWTMiddleware, validators.CertificateID(), controllers.GenerateDocuments)

	// Public endpoint behind the QR code, no auth.
	app.Get("/validar/:id/:curp", controllers.VerifyCertificate)
}
