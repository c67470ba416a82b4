package certificateController

import (
	"strconv"
	"strings"

	"dc3/database"
	"dc3/middleware"
	certModels "dc3/models/certificate"

	"github.com/gofiber/fiber/v2"
)

// VerifyCertificate is the public endpoint behind the QR validation link:
// /validar/:id/:curp with an optional course_id query. It confirms that
// the CURP belongs to the certificate's roster and returns the public
// fields, never the full record.
func VerifyCertificate(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid certificate id!", nil)
	}

	curp := strings.TrimSpace(c.Params("curp"))
	if curp == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "CURP is required!", nil)
	}

	var cert certModels.Certificate
	if err := database.Database.Db.Preload("Courses").Preload("Courses.Course").
		Where("id = ? AND is_deleted = ?", id, false).First(&cert).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
	}

	roster, err := cert.ParseRoster()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Certificate roster is corrupted!", nil)
	}

	var trainee *certModels.Trainee
	for i := range roster.Trainees {
		if strings.EqualFold(strings.TrimSpace(roster.Trainees[i].CURP), curp) {
			trainee = &roster.Trainees[i]
			break
		}
	}
	if trainee == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No trainee with this CURP on the certificate!", nil)
	}

	result := fiber.Map{
		"folio":        cert.Folio,
		"status":       cert.Status,
		"company_name": cert.CompanyName,
		"trainer_name": cert.TrainerName,
		"full_name":    trainee.FullName,
		"curp":         trainee.CURP,
	}

	if courseParam := c.Query("course_id"); courseParam != "" {
		courseID, err := strconv.Atoi(courseParam)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
		}
		var match *certModels.CertificateCourse
		for i := range cert.Courses {
			if cert.Courses[i].CourseID == uint(courseID) {
				match = &cert.Courses[i]
				break
			}
		}
		if match == nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course is not associated with this certificate!", nil)
		}
		result["course"] = fiber.Map{
			"name":       match.Course.Name,
			"duration":   match.Course.Duration,
			"start_date": match.StartDate,
			"end_date":   match.EndDate,
		}
	} else if cert.CourseName != "" {
		result["course"] = fiber.Map{
			"name":     cert.CourseName,
			"duration": cert.CourseDuration,
			"period":   cert.CoursePeriod,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate verified successfully!", result)
}
