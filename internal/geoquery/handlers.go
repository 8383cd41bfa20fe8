package geoquery

import (
	"strconv"

	"metrodir-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *Service
}

// GET /api/v1/geo?north=&south=&east=&west= — all four bounds present and
// parseable selects viewport filtering, anything else returns the full set.
func (h *Handlers) Points(c *fiber.Ctx) error {
	north, okN := parseBound(c.Query("north"))
	south, okS := parseBound(c.Query("south"))
	east, okE := parseBound(c.Query("east"))
	west, okW := parseBound(c.Query("west"))

	var points []MapPoint
	if okN && okS && okE && okW {
		points = h.Service.InBounds(c.Context(), north, south, east, west)
	} else {
		points = h.Service.AllWithCoordinates(c.Context())
	}
	return response.Success(c, "Map points fetched", points, fiber.Map{"count": len(points)})
}

func parseBound(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	return v, err == nil
}
