package certificateController

import (
	"dc3/database"
	"dc3/generator"
	"dc3/middleware"
	certModels "dc3/models/certificate"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// CheckConflicts reports trainees on this certificate whose proposed
// course windows overlap windows they already hold on other certificates.
// The candidate fetch is bounded by a date window (defaulting to the
// current year); the actual overlap decision is re-made in memory.
func CheckConflicts(c *fiber.Ctx) error {
	cert, errResp := loadAccessibleCertificate(c)
	if errResp != nil {
		return errResp(c)
	}

	roster, err := cert.ParseRoster()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Certificate roster is corrupted!", nil)
	}

	proposed := toGeneratorCertificate(cert, roster)

	// Nothing to compare against: no trainees or no proposed windows.
	if len(proposed.Trainees) == 0 || len(proposed.Courses) == 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "No conflicts found!", fiber.Map{
			"conflicts": []generator.Conflict{},
		})
	}

	windowStart, windowEnd := conflictWindow(c)

	// Every other certificate's association that intersects the window;
	// the parent roster supplies the CURPs enrolled under it.
	var associations []certModels.CertificateCourse
	err = database.Database.Db.
		Joins("JOIN certificates ON certificates.id = certificate_courses.certificate_id").
		Where("certificate_courses.certificate_id <> ?", cert.ID).
		Where("certificates.is_deleted = ?", false).
		Where("certificate_courses.deleted_at IS NULL").
		Where("certificate_courses.start_date <= ? AND certificate_courses.end_date >= ?", windowEnd, windowStart).
		Find(&associations).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch existing course windows!", nil)
	}

	windows, err := flattenWindows(associations)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read existing rosters!", nil)
	}

	conflicts := generator.FindConflicts(proposed, windows)
	if conflicts == nil {
		conflicts = []generator.Conflict{}
	}

	message := "No conflicts found!"
	if len(conflicts) > 0 {
		message = "Conflicts found!"
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"conflicts": conflicts,
	})
}

// conflictWindow reads the optional start/end query bounds, defaulting to
// the current calendar year.
func conflictWindow(c *fiber.Ctx) (string, string) {
	start := now.BeginningOfYear().Format("2006-01-02")
	end := now.EndOfYear().Format("2006-01-02")

	reqData, ok := c.Locals("validatedWindow").(*struct {
		Start string `query:"start" validate:"omitempty,datetime=2006-01-02"`
		End   string `query:"end" validate:"omitempty,datetime=2006-01-02"`
	})
	if ok {
		if reqData.Start != "" {
			start = reqData.Start
		}
		if reqData.End != "" {
			end = reqData.End
		}
	}
	if start > end {
		start, end = end, start
	}
	return start, end
}

// flattenWindows expands each association into one window per trainee on
// its parent certificate's roster. Parent rosters are parsed once.
func flattenWindows(associations []certModels.CertificateCourse) ([]generator.CourseWindow, error) {
	rosters := make(map[uint][]certModels.Trainee)
	var windows []generator.CourseWindow

	for _, assoc := range associations {
		trainees, cached := rosters[assoc.CertificateID]
		if !cached {
			var parent certModels.Certificate
			if err := database.Database.Db.Where("id = ?", assoc.CertificateID).First(&parent).Error; err != nil {
				return nil, err
			}
			roster, err := parent.ParseRoster()
			if err != nil {
				return nil, err
			}
			trainees = roster.Trainees
			rosters[assoc.CertificateID] = trainees
		}

		for _, t := range trainees {
			windows = append(windows, generator.CourseWindow{
				AssociationID: assoc.ID,
				CertificateID: assoc.CertificateID,
				CourseID:      assoc.CourseID,
				CURP:          t.CURP,
				StartDate:     assoc.StartDate,
				EndDate:       assoc.EndDate,
			})
		}
	}
	return windows, nil
}
