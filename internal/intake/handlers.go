package intake

import (
	"errors"

	"metrodir-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
}

// POST /api/v1/submissions — public intake. 201 with advisory duplicates on
// success; 400 with field-keyed details on validation or address failure.
func (h *Handlers) Submit(c *fiber.Ctx) error {
	var in Input
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}

	outcome, err := h.Service.Submit(c.Context(), in)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			return response.Error(c, ve.Message, fiber.StatusBadRequest, ve.Fields)
		}
		return response.Error(c, err.Error(), fiber.StatusInternalServerError, nil)
	}

	message := "Submission received! An admin will review your listing and you will be notified when it is approved."
	if len(outcome.Duplicates) > 0 {
		message = "Submission received! Note: We found similar existing listings. An admin will review your submission."
	}
	return response.SuccessCreated(c, message, fiber.Map{
		"id":         outcome.Submission.ID,
		"duplicates": outcome.Duplicates,
	}, nil)
}
