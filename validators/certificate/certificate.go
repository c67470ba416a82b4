package certificateValidator

import (
	"strconv"
	"strings"

	"dc3/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type TraineeRequest struct {
	FullName         string            `json:"full_name" validate:"required,min=3"`
	CURP             string            `json:"curp" validate:"required,len=18"`
	JobTitle         string            `json:"job_title"`
	Occupation       string            `json:"occupation"`
	CourseOfInterest string            `json:"course_of_interest"`
	Overrides        *OverridesRequest `json:"certificate_overrides"`
}

type OverridesRequest struct {
	TrainerName   string `json:"trainer_name"`
	LegalRep      string `json:"legal_rep"`
	WorkersRep    string `json:"workers_rep"`
	StartDate     string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate       string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	SignatureType string `json:"signature_type" validate:"omitempty,oneof=PHYSICAL DIGITAL"`
	ThematicArea  string `json:"thematic_area"`
}

type CourseAssociationRequest struct {
	CourseID  uint   `json:"course_id" validate:"required"`
	StartDate string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

type CreateCertificateRequest struct {
	CompanyID           *uint                      `json:"company_id"`
	CompanyName         string                     `json:"company_name" validate:"required,min=3"`
	CompanyRFC          string                     `json:"company_rfc" validate:"required,min=12,max=13"`
	TrainerName         string                     `json:"trainer_name" validate:"required,min=3"`
	TrainerRegistration string                     `json:"trainer_registration"`
	LegalRep            string                     `json:"legal_rep"`
	WorkersRep          string                     `json:"workers_rep"`
	ThematicArea        string                     `json:"thematic_area"`
	SignatureType       string                     `json:"signature_type" validate:"omitempty,oneof=PHYSICAL DIGITAL"`
	SignatureFileID     string                     `json:"signature_file_id"`
	CourseName          string                     `json:"course_name"`
	CourseDuration      string                     `json:"course_duration"`
	CoursePeriod        string                     `json:"course_period"`
	Trainees            []TraineeRequest           `json:"trainees" validate:"required,min=1,dive"`
	Courses             []CourseAssociationRequest `json:"courses" validate:"omitempty,dive"`
}

type ValidateCertificateRequest struct {
	CompanyName         string           `json:"company_name"`
	TrainerName         string           `json:"trainer_name"`
	TrainerRegistration string           `json:"trainer_registration"`
	LegalRep            string           `json:"legal_rep"`
	WorkersRep          string           `json:"workers_rep"`
	ThematicArea        string           `json:"thematic_area"`
	SignatureType       string           `json:"signature_type" validate:"omitempty,oneof=PHYSICAL DIGITAL"`
	SignatureFileID     string           `json:"signature_file_id"`
	Trainees            []TraineeRequest `json:"trainees" validate:"omitempty,dive"`
}

func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCertificateRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		// A certificate needs a course source: associations or its own
		// course fields.
		if len(reqData.Courses) == 0 && strings.TrimSpace(reqData.CourseName) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"courses": "Provide course associations or a course_name!",
			})
		}

		c.Locals("validatedCertificate", reqData)
		return c.Next()
	}
}

func Validate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ValidateCertificateRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedValidation", reqData)
		return c.Next()
	}
}

func AddCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseAssociationRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedAssociation", reqData)
		return c.Next()
	}
}

func List() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page   *int   `query:"page"`
			Limit  *int   `query:"limit"`
			Search string `query:"search"`
			Status string `query:"status"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		if reqData.Status != "" && reqData.Status != "PENDING" && reqData.Status != "APPROVED" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"status": "Status must be PENDING or APPROVED!",
			})
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}

// CertificateID parses and stashes the :id path parameter.
func CertificateID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid certificate id!", nil)
		}
		c.Locals("certificateID", id)
		return c.Next()
	}
}

// AssociationID parses and stashes the :assocId path parameter.
func AssociationID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("assocId"))
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid association id!", nil)
		}
		c.Locals("associationID", id)
		return c.Next()
	}
}

// Conflicts validates the overlap-check window; both sides are optional
// and default to the certificate's own year server-side.
func Conflicts() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Start string `query:"start" validate:"omitempty,datetime=2006-01-02"`
			End   string `query:"end" validate:"omitempty,datetime=2006-01-02"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedWindow", reqData)
		return c.Next()
	}
}

func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			errors[strings.ToLower(fe.Field())] = "Invalid value: failed on '" + fe.Tag() + "' rule!"
		}
		return errors
	}
	errors["request"] = "Invalid request data!"
	return errors
}
