package search

import (
	"metrodir-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
}

// GET /api/v1/search?query=&role=&location=
func (h *Handlers) Search(c *fiber.Ctx) error {
	results, err := h.Service.Search(c.Context(), Params{
		Query:    c.Query("query"),
		Role:     c.Query("role"),
		Location: c.Query("location"),
	})
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Listings fetched", results, fiber.Map{"count": len(results)})
}
