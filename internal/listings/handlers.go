package listings

import (
	"errors"

	"metrodir-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handlers struct {
	Service *Service
}

// GET /api/v1/listings — public directory, approved only, name ascending.
func (h *Handlers) GetAll(c *fiber.Ctx) error {
	listings, err := h.Service.GetApproved(c.Context())
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Listings fetched", listings, fiber.Map{"count": len(listings)})
}

// GET /api/v1/listings/:id — public detail; unapproved rows 404.
func (h *Handlers) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid listing id", fiber.StatusBadRequest, nil)
	}
	listing, err := h.Service.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		}
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Listing fetched", listing, nil)
}

// POST /api/v1/admin/listings
func (h *Handlers) Create(c *fiber.Ctx) error {
	var in AdminInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	listing, fieldErrs, err := h.Service.Create(c.Context(), in)
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	if fieldErrs != nil {
		return response.Error(c, "Validation failed.", fiber.StatusBadRequest, fieldErrs)
	}
	return response.SuccessCreated(c, "Listing created", listing, nil)
}

// PUT /api/v1/admin/listings/:id
func (h *Handlers) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid listing id", fiber.StatusBadRequest, nil)
	}
	var in AdminInput
	if err := c.BodyParser(&in); err != nil {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	listing, fieldErrs, err := h.Service.Update(c.Context(), id, in)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		}
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	if fieldErrs != nil {
		return response.Error(c, "Validation failed.", fiber.StatusBadRequest, fieldErrs)
	}
	return response.Success(c, "Listing updated", listing, nil)
}

// DELETE /api/v1/admin/listings/:id
func (h *Handlers) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, "Invalid listing id", fiber.StatusBadRequest, nil)
	}
	if err := h.Service.Delete(c.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		}
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Listing deleted", nil, nil)
}
