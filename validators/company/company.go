package companyValidator

import (
	"strconv"
	"strings"

	"dc3/middleware"

	"github.com/gofiber/fiber/v2"
)

func CreateCompany() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name         string `json:"name"`
			RFC          string `json:"rfc"`
			LegalRep     string `json:"legal_rep"`
			WorkersRep   string `json:"workers_rep"`
			Address      string `json:"address"`
			ContactEmail string `json:"contact_email"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}

		rfc := strings.TrimSpace(reqData.RFC)
		if rfc == "" {
			errors["rfc"] = "RFC is required!"
		} else if len(rfc) < 12 || len(rfc) > 13 {
			errors["rfc"] = "RFC must be 12 or 13 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCompany", reqData)
		return c.Next()
	}
}

func CompanyID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid company id!", nil)
		}
		c.Locals("companyID", id)
		return c.Next()
	}
}

func CompanyList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page   *int   `query:"page"`
			Limit  *int   `query:"limit"`
			Search string `query:"search"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}
