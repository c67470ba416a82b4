package certificateController

import (
	"log"

	"dc3/config"
	"dc3/database"
	"dc3/generator"
	"dc3/middleware"
	"dc3/models"
	certModels "dc3/models/certificate"
	"dc3/utils"

	"github.com/gofiber/fiber/v2"
)

// GenerateDocuments renders the DC-3 artifact for a certificate: one PDF
// when the roster resolves to a single document, a zip otherwise. The
// response body is the artifact itself, not the JSON envelope.
func GenerateDocuments(c *fiber.Ctx) error {
	cert, errResp := loadAccessibleCertificate(c)
	if errResp != nil {
		return errResp(c)
	}

	roster, err := cert.ParseRoster()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Certificate roster is corrupted!", nil)
	}

	archiveName := c.Query("name")
	if archiveName == "" {
		archiveName = "constancias_" + cert.Folio
	}

	opts := generator.Options{
		BaseURL:     generator.ResolveBaseURL(config.AppConfig.FrontendURL, c.Hostname(), c.Protocol()),
		ArchiveName: archiveName,
		Logo:        resolveLogo(cert),
	}

	archive, err := generator.GenerateBatch(c.UserContext(), toGeneratorCertificate(cert, roster), utils.NewDriveClient(), opts)
	if err != nil {
		log.Printf("Error generating documents for %s: %v", cert.Folio, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate documents!", nil)
	}

	c.Set(fiber.HeaderContentType, archive.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+archive.FileName+`"`)
	return c.Send(archive.Data)
}

// resolveLogo prefers the certificate's company logo and falls back to the
// configured default.
func resolveLogo(cert certModels.Certificate) []byte {
	if cert.CompanyID != nil {
		var company models.Company
		err := database.Database.Db.Where("id = ? AND is_deleted = ?", *cert.CompanyID, false).First(&company).Error
		if err == nil && company.LogoPath != "" {
			if logo := utils.LoadLogo(company.LogoPath); logo != nil {
				return logo
			}
		}
	}
	return utils.LoadLogo(config.AppConfig.LogoPath)
}
