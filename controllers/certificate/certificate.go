package certificateController

import (
	"log"

	"dc3/database"
	"dc3/middleware"
	"dc3/models"
	certModels "dc3/models/certificate"
	"dc3/utils"
	certificateValidator "dc3/validators/certificate"

	"github.com/gofiber/fiber/v2"
)

// CreateCertificate registers a new DC-3 request from the manual entry
// form: certificate-level data plus one or more trainees, optionally with
// course associations.
func CreateCertificate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCertificate").(*certificateValidator.CreateCertificateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	cert := certModels.Certificate{
		Folio:               utils.GenerateFolio(),
		UserID:              userID,
		CompanyID:           reqData.CompanyID,
		CompanyName:         reqData.CompanyName,
		CompanyRFC:          reqData.CompanyRFC,
		TrainerName:         reqData.TrainerName,
		TrainerRegistration: reqData.TrainerRegistration,
		LegalRep:            reqData.LegalRep,
		WorkersRep:          reqData.WorkersRep,
		ThematicArea:        reqData.ThematicArea,
		SignatureType:       reqData.SignatureType,
		SignatureFileID:     reqData.SignatureFileID,
		Status:              "PENDING",
		CourseName:          reqData.CourseName,
		CourseDuration:      reqData.CourseDuration,
		CoursePeriod:        reqData.CoursePeriod,
	}
	if cert.SignatureType == "" {
		cert.SignatureType = "PHYSICAL"
	}

	if err := cert.SetRoster(toRoster(reqData.Trainees)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to encode roster!", nil)
	}

	for _, assoc := range reqData.Courses {
		var course models.Course
		if err := db.Where("id = ? AND is_deleted = ?", assoc.CourseID, false).First(&course).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		cert.Courses = append(cert.Courses, certModels.CertificateCourse{
			CourseID:  assoc.CourseID,
			StartDate: assoc.StartDate,
			EndDate:   assoc.EndDate,
		})
	}

	if err := db.Create(&cert).Error; err != nil {
		log.Printf("Error saving certificate: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create certificate!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Certificate created successfully!", cert)
}

// GetCertificate returns one certificate with its course associations.
// Company representatives can only read their own records.
func GetCertificate(c *fiber.Ctx) error {
	cert, errResp := loadAccessibleCertificate(c)
	if errResp != nil {
		return errResp(c)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate fetched successfully!", cert)
}

// GetAllCertificates lists certificates with pagination, free-text search
// and status filter. Company representatives see only their own.
func GetAllCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedList").(*struct {
		Page   *int   `query:"page"`
		Limit  *int   `query:"limit"`
		Search string `query:"search"`
		Status string `query:"status"`
	})

	page := 1
	limit := 10
	if ok && reqData.Page != nil && *reqData.Page > 0 {
		page = *reqData.Page
	}
	if ok && reqData.Limit != nil && *reqData.Limit > 0 {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&certModels.Certificate{}).Where("is_deleted = ?", false)
	if user.Role != "ADMIN" {
		db = db.Where("user_id = ?", userID)
	}
	if ok && reqData.Status != "" {
		db = db.Where("status = ?", reqData.Status)
	}
	if ok && reqData.Search != "" {
		search := "%" + reqData.Search + "%"
		db = db.Where("company_name ILIKE ? OR company_rfc ILIKE ? OR trainer_name ILIKE ? OR folio ILIKE ?",
			search, search, search, search)
	}

	var total int64
	db.Count(&total)

	var certificates []certModels.Certificate
	if err := db.Preload("Courses").Preload("Courses.Course").
		Offset(offset).Limit(limit).Order("created_at desc").Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": certificates,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// ValidateCertificate is the administrator edit/approve step: it may
// rewrite the shared certificate fields and the roster entries, then
// marks the record APPROVED and notifies the requesting representative.
func ValidateCertificate(c *fiber.Ctx) error {
	certificateID := c.Locals("certificateID").(int)

	db := database.Database.Db

	var cert certModels.Certificate
	if err := db.Where("id = ? AND is_deleted = ?", certificateID, false).First(&cert).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
	}

	reqData, ok := c.Locals("validatedValidation").(*certificateValidator.ValidateCertificateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.CompanyName != "" {
		cert.CompanyName = reqData.CompanyName
	}
	if reqData.TrainerName != "" {
		cert.TrainerName = reqData.TrainerName
	}
	if reqData.TrainerRegistration != "" {
		cert.TrainerRegistration = reqData.TrainerRegistration
	}
	if reqData.LegalRep != "" {
		cert.LegalRep = reqData.LegalRep
	}
	if reqData.WorkersRep != "" {
		cert.WorkersRep = reqData.WorkersRep
	}
	if reqData.ThematicArea != "" {
		cert.ThematicArea = reqData.ThematicArea
	}
	if reqData.SignatureType != "" {
		cert.SignatureType = reqData.SignatureType
	}
	if reqData.SignatureFileID != "" {
		cert.SignatureFileID = reqData.SignatureFileID
	}
	if len(reqData.Trainees) > 0 {
		roster, err := cert.ParseRoster()
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Certificate roster is corrupted!", nil)
		}
		roster.Trainees = toRoster(reqData.Trainees).Trainees
		if err := cert.SetRoster(roster); err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to encode roster!", nil)
		}
	}

	cert.Status = "APPROVED"

	if err := db.Save(&cert).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to validate certificate!", nil)
	}

	// Notify the requesting representative (async, failures only logged)
	go func(cert certModels.Certificate) {
		var owner models.User
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", cert.UserID, false).First(&owner).Error; err != nil {
			return
		}
		if owner.Email == "" {
			return
		}
		if err := utils.SendCertificateValidatedEmail(owner.Email, owner.Name, cert.CompanyName, cert.Folio); err != nil {
			log.Printf("Error sending validation email for %s: %v", cert.Folio, err)
		}
	}(cert)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate validated successfully!", cert)
}

// AddCourseAssociation attaches a course window to a certificate.
func AddCourseAssociation(c *fiber.Ctx) error {
	certificateID := c.Locals("certificateID").(int)

	db := database.Database.Db

	var cert certModels.Certificate
	if err := db.Where("id = ? AND is_deleted = ?", certificateID, false).First(&cert).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
	}

	reqData, ok := c.Locals("validatedAssociation").(*certificateValidator.CourseAssociationRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	assoc := certModels.CertificateCourse{
		CertificateID: cert.ID,
		CourseID:      reqData.CourseID,
		StartDate:     reqData.StartDate,
		EndDate:       reqData.EndDate,
	}

	if err := db.Create(&assoc).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add course association!", nil)
	}

	assoc.Course = course

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course association added successfully!", assoc)
}

// RemoveCourseAssociation detaches a course window from a certificate.
func RemoveCourseAssociation(c *fiber.Ctx) error {
	certificateID := c.Locals("certificateID").(int)
	associationID := c.Locals("associationID").(int)

	db := database.Database.Db

	var assoc certModels.CertificateCourse
	if err := db.Where("id = ? AND certificate_id = ?", associationID, certificateID).First(&assoc).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course association not found!", nil)
	}

	if err := db.Delete(&assoc).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove course association!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course association removed successfully!", nil)
}

// toRoster converts validated trainee payloads into the stored roster
// shape.
func toRoster(trainees []certificateValidator.TraineeRequest) certModels.Roster {
	roster := certModels.Roster{}
	for _, t := range trainees {
		trainee := certModels.Trainee{
			FullName:         t.FullName,
			CURP:             t.CURP,
			JobTitle:         t.JobTitle,
			Occupation:       t.Occupation,
			CourseOfInterest: t.CourseOfInterest,
		}
		if t.Overrides != nil {
			trainee.Overrides = &certModels.Overrides{
				TrainerName:   t.Overrides.TrainerName,
				LegalRep:      t.Overrides.LegalRep,
				WorkersRep:    t.Overrides.WorkersRep,
				StartDate:     t.Overrides.StartDate,
				EndDate:       t.Overrides.EndDate,
				SignatureType: t.Overrides.SignatureType,
				ThematicArea:  t.Overrides.ThematicArea,
			}
		}
		roster.Trainees = append(roster.Trainees, trainee)
	}
	return roster
}

// loadAccessibleCertificate loads the :id certificate and enforces that
// non-admin users only touch their own records. On failure it returns a
// responder instead of a certificate.
func loadAccessibleCertificate(c *fiber.Ctx) (certModels.Certificate, func(*fiber.Ctx) error) {
	var zero certModels.Certificate

	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return zero, func(c *fiber.Ctx) error {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return zero, func(c *fiber.Ctx) error {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
		}
	}

	certificateID := c.Locals("certificateID").(int)

	var cert certModels.Certificate
	if err := database.Database.Db.Preload("Courses").Preload("Courses.Course").
		Where("id = ? AND is_deleted = ?", certificateID, false).First(&cert).Error; err != nil {
		return zero, func(c *fiber.Ctx) error {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
		}
	}

	if user.Role != "ADMIN" && cert.UserID != userID {
		return zero, func(c *fiber.Ctx) error {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have access to this certificate!", nil)
		}
	}

	return cert, nil
}
