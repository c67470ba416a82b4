package trainerValidator

import (
	"strconv"
	"strings"

	"dc3/middleware"

	"github.com/gofiber/fiber/v2"
)

func CreateTrainer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			FullName        string `json:"full_name"`
			Registration    string `json:"registration"`
			Email           string `json:"email"`
			SignatureFileID string `json:"signature_file_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.FullName) == "" {
			errors["full_name"] = "Full name is required!"
		} else if len(strings.TrimSpace(reqData.FullName)) < 3 {
			errors["full_name"] = "Full name must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTrainer", reqData)
		return c.Next()
	}
}

func TrainerID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid trainer id!", nil)
		}
		c.Locals("trainerID", id)
		return c.Next()
	}
}

func TrainerList() fiber.Handler {
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
