package certificateController

import (
	"bytes"
	"log"
	"strings"

	"dc3/database"
	"dc3/middleware"
	certModels "dc3/models/certificate"
	"dc3/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// Spanish roster headers, matched case-insensitively after trimming.
var rosterColumns = map[string]string{
	"NOMBRE":            "full_name",
	"NOMBRE COMPLETO":   "full_name",
	"CURP":              "curp",
	"PUESTO":            "job_title",
	"OCUPACION":         "occupation",
	"OCUPACIÓN":         "occupation",
	"CURSO DE INTERES":  "course_of_interest",
	"CURSO DE INTERÉS":  "course_of_interest",
}

// UploadRoster creates a certificate from an uploaded xlsx roster. The
// spreadsheet supplies the trainees; the shared certificate columns come
// in as ordinary form fields alongside the file.
func UploadRoster(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	fileHeader, err := c.FormFile("roster")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Roster file is required!", nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to open roster file!", nil)
	}
	defer file.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(file); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to read roster file!", nil)
	}

	workbook, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Roster file is not a valid xlsx workbook!", nil)
	}
	defer workbook.Close()

	sheet := workbook.GetSheetName(0)
	rows, err := workbook.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Roster sheet has no data rows!", nil)
	}

	// Map header labels to column positions.
	columns := make(map[string]int)
	for i, header := range rows[0] {
		key := strings.ToUpper(strings.TrimSpace(header))
		if field, known := rosterColumns[key]; known {
			columns[field] = i
		}
	}
	if _, ok := columns["full_name"]; !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Roster sheet is missing the NOMBRE column!", nil)
	}
	if _, ok := columns["curp"]; !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Roster sheet is missing the CURP column!", nil)
	}

	cellAt := func(row []string, field string) string {
		idx, ok := columns[field]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	roster := certModels.Roster{
		ThematicArea:  strings.TrimSpace(c.FormValue("thematic_area")),
		SignatureType: strings.ToUpper(strings.TrimSpace(c.FormValue("signature_type"))),
	}
	for _, row := range rows[1:] {
		trainee := certModels.Trainee{
			FullName:         cellAt(row, "full_name"),
			CURP:             cellAt(row, "curp"),
			JobTitle:         cellAt(row, "job_title"),
			Occupation:       cellAt(row, "occupation"),
			CourseOfInterest: cellAt(row, "course_of_interest"),
		}
		if trainee.FullName == "" && trainee.CURP == "" {
			continue
		}
		roster.Trainees = append(roster.Trainees, trainee)
	}
	if len(roster.Trainees) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Roster sheet has no trainees!", nil)
	}

	cert := certModels.Certificate{
		Folio:               utils.GenerateFolio(),
		UserID:              userID,
		CompanyName:         strings.TrimSpace(c.FormValue("company_name")),
		CompanyRFC:          strings.TrimSpace(c.FormValue("company_rfc")),
		TrainerName:         strings.TrimSpace(c.FormValue("trainer_name")),
		TrainerRegistration: strings.TrimSpace(c.FormValue("trainer_registration")),
		LegalRep:            strings.TrimSpace(c.FormValue("legal_rep")),
		WorkersRep:          strings.TrimSpace(c.FormValue("workers_rep")),
		ThematicArea:        strings.TrimSpace(c.FormValue("thematic_area")),
		SignatureType:       strings.ToUpper(strings.TrimSpace(c.FormValue("signature_type"))),
		SignatureFileID:     strings.TrimSpace(c.FormValue("signature_file_id")),
		Status:              "PENDING",
		CourseName:          strings.TrimSpace(c.FormValue("course_name")),
		CourseDuration:      strings.TrimSpace(c.FormValue("course_duration")),
		CoursePeriod:        strings.TrimSpace(c.FormValue("course_period")),
	}
	if cert.CompanyName == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "company_name is required!", nil)
	}
	if cert.SignatureType == "" {
		cert.SignatureType = "PHYSICAL"
	}
	if cert.SignatureType != "PHYSICAL" && cert.SignatureType != "DIGITAL" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "signature_type must be PHYSICAL or DIGITAL!", nil)
	}

	if err := cert.SetRoster(roster); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to encode roster!", nil)
	}

	if err := database.Database.Db.Create(&cert).Error; err != nil {
		log.Printf("Error saving roster certificate: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create certificate!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Roster uploaded successfully!", fiber.Map{
		"certificate": cert,
		"trainees":    len(roster.Trainees),
	})
}
