package companyController

import (
	"dc3/config"
	"dc3/database"
	"dc3/middleware"
	"dc3/models"
	"dc3/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateCompany(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCompany").(*struct {
		Name         string `json:"name"`
		RFC          string `json:"rfc"`
		LegalRep     string `json:"legal_rep"`
		WorkersRep   string `json:"workers_rep"`
		Address      string `json:"address"`
		ContactEmail string `json:"contact_email"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := database.Database.Db.Where("rfc = ? AND is_deleted = ?", reqData.RFC, false).First(&models.Company{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A company with this RFC already exists!", nil)
	}

	company := models.Company{
		Name:         reqData.Name,
		RFC:          reqData.RFC,
		LegalRep:     reqData.LegalRep,
		WorkersRep:   reqData.WorkersRep,
		Address:      reqData.Address,
		ContactEmail: reqData.ContactEmail,
	}

	if err := database.Database.Db.Create(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create company!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Company created successfully!", company)
}

func UpdateCompany(c *fiber.Ctx) error {
	companyID := c.Locals("companyID").(int)

	var company models.Company
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", companyID, false).First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
	}

	reqData, ok := c.Locals("validatedCompany").(*struct {
		Name         string `json:"name"`
		RFC          string `json:"rfc"`
		LegalRep     string `json:"legal_rep"`
		WorkersRep   string `json:"workers_rep"`
		Address      string `json:"address"`
		ContactEmail string `json:"contact_email"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Name != "" {
		company.Name = reqData.Name
	}
	if reqData.RFC != "" {
		company.RFC = reqData.RFC
	}
	if reqData.LegalRep != "" {
		company.LegalRep = reqData.LegalRep
	}
	if reqData.WorkersRep != "" {
		company.WorkersRep = reqData.WorkersRep
	}
	if reqData.Address != "" {
		company.Address = reqData.Address
	}
	if reqData.ContactEmail != "" {
		company.ContactEmail = reqData.ContactEmail
	}

	if err := database.Database.Db.Save(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update company!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Company updated successfully!", company)
}

func DeleteCompany(c *fiber.Ctx) error {
	companyID := c.Locals("companyID").(int)

	var company models.Company
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", companyID, false).First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
	}

	company.IsDeleted = true
	if err := database.Database.Db.Save(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete company!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Company deleted successfully!", nil)
}

func GetCompany(c *fiber.Ctx) error {
	companyID := c.Locals("companyID").(int)

	var company models.Company
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", companyID, false).First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Company fetched successfully!", company)
}

func GetAllCompanies(c *fiber.Ctx) error {
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

	var companies []models.Company
	var total int64

	db := database.Database.Db.Model(&models.Company{}).Where("is_deleted = ?", false)
	if ok && reqData.Search != "" {
		db = db.Where("name ILIKE ? OR rfc ILIKE ?", "%"+reqData.Search+"%", "%"+reqData.Search+"%")
	}
	db.Count(&total)

	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&companies).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch companies!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Companies fetched successfully!", fiber.Map{
		"companies": companies,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// UploadLogo stores a company logo used in the header of its generated
// constancias.
func UploadLogo(c *fiber.Ctx) error {
	companyID := c.Locals("companyID").(int)

	var company models.Company
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", companyID, false).First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
	}

	file, err := c.FormFile("logo")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Logo file is required!", nil)
	}

	path, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store logo!", nil)
	}

	company.LogoPath = path
	if err := database.Database.Db.Save(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update company!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logo uploaded successfully!", fiber.Map{
		"logo_path": company.LogoPath,
	})
}
