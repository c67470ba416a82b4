package trainerController

import (
	"dc3/database"
	"dc3/middleware"
	"dc3/models"

	"github.com/gofiber/fiber/v2"
)

func CreateTrainer(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTrainer").(*struct {
		FullName        string `json:"full_name"`
		Registration    string `json:"registration"`
		Email           string `json:"email"`
		SignatureFileID string `json:"signature_file_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	trainer := models.Trainer{
		FullName:        reqData.FullName,
		Registration:    reqData.Registration,
		Email:           reqData.Email,
		SignatureFileID: reqData.SignatureFileID,
	}

	if err := database.Database.Db.Create(&trainer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create trainer!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Trainer created successfully!", trainer)
}

func UpdateTrainer(c *fiber.Ctx) error {
	trainerID := c.Locals("trainerID").(int)

	var trainer models.Trainer
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", trainerID, false).First(&trainer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Trainer not found!", nil)
	}

	reqData, ok := c.Locals("validatedTrainer").(*struct {
		FullName        string `json:"full_name"`
		Registration    string `json:"registration"`
		Email           string `json:"email"`
		SignatureFileID string `json:"signature_file_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if reqData.FullName != "" {
		trainer.FullName = reqData.FullName
	}
	if reqData.Registration != "" {
		trainer.Registration = reqData.Registration
	}
	if reqData.Email != "" {
		trainer.Email = reqData.Email
	}
	if reqData.SignatureFileID != "" {
		trainer.SignatureFileID = reqData.SignatureFileID
	}

	if err := database.Database.Db.Save(&trainer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update trainer!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trainer updated successfully!", trainer)
}

func DeleteTrainer(c *fiber.Ctx) error {
	trainerID := c.Locals("trainerID").(int)

	var trainer models.Trainer
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", trainerID, false).First(&trainer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Trainer not found!", nil)
	}

	trainer.IsDeleted = true
	if err := database.Database.Db.Save(&trainer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete trainer!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trainer deleted successfully!", nil)
}

func GetTrainer(c *fiber.Ctx) error {
	trainerID := c.Locals("trainerID").(int)

	var trainer models.Trainer
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", trainerID, false).First(&trainer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Trainer not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trainer fetched successfully!", trainer)
}

func GetAllTrainers(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedList").(*struct {
		Page   *int   `query:"page"`
		Limit  *int   `query:"limit"`
		Search string `query:"search"`
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

	var trainers []models.Trainer
	var total int64

	db := database.Database.Db.Model(&models.Trainer{}).Where("is_deleted = ?", false)
	if ok && reqData.Search != "" {
		db = db.Where("full_name ILIKE ? OR registration ILIKE ?", "%"+reqData.Search+"%", "%"+reqData.Search+"%")
	}
	db.Count(&total)

	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&trainers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch trainers!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trainers fetched successfully!", fiber.Map{
		"trainers": trainers,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
