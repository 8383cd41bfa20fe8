package moderation

import (
	"errors"

	"metrodir-backend/internal/middleware"
	"metrodir-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

// GET /api/v1/admin/submissions — pending review queue, oldest first.
func (h *Handlers) Pending(c *fiber.Ctx) error {
	subs, err := h.Service.PendingQueue(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Pending submissions fetched", subs, nil)
}

// POST /api/v1/admin/submissions/:id/approve
func (h *Handlers) Approve(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid submission id", fiber.StatusBadRequest, nil)
	}
	listing, err := h.Service.Approve(c.Context(), id, middleware.ModeratorID(c))
	if err != nil {
		return reviewError(c, err)
	}
	return response.Success(c, "Submission approved", listing, nil)
}

// POST /api/v1/admin/submissions/:id/reject — body: {"admin_notes": "..."}
func (h *Handlers) Reject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid submission id", fiber.StatusBadRequest, nil)
	}
	var body struct {
		AdminNotes *string `json:"admin_notes"`
	}
	// Body is optional; ignore parse failures on an empty body.
	_ = c.BodyParser(&body)

	if err := h.Service.Reject(c.Context(), id, middleware.ModeratorID(c), body.AdminNotes); err != nil {
		return reviewError(c, err)
	}
	return response.Success(c, "Submission rejected", nil, nil)
}

func reviewError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return response.Unauthorized(c, err.Error())
	case errors.Is(err, ErrNotFound):
		return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
	case errors.Is(err, ErrAlreadyReviewed):
		return response.Error(c, err.Error(), fiber.StatusConflict, nil)
	default:
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
}
