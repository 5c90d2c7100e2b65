package handlers_fiber

import (
	"net/http"

	"logia-admin/internal/entities"
	"logia-admin/internal/mapper"
	"logia-admin/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// GetRituals lists scheduled rituals ordered by date.
func (h *Handler) GetRituals(c *fiber.Ctx) error {
	page, err := pageFromQuery(c)
	if err != nil {
		return writeError(c, h.log, err)
	}

	filter := entities.RitualFilter{
		Kind:   c.Query("tipo"),
		Degree: c.Query("grado"),
		Page:   page,
	}
	from, err := mapper.ParseDate("desde", c.Query("desde"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	if !from.IsZero() {
		filter.From = &from
	}

	list, err := h.uc.Rituals(c.Context(), filter)
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Rituals []dto.Ritual `json:"rituales"`
	}{Rituals: mapper.ToDTORituals(list)})
}

// PostRitual schedules a ritual.
func (h *Handler) PostRitual(c *fiber.Ctx) error {
	var body dto.Ritual
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	in, err := mapper.FromDTORitual(body)
	if err != nil {
		return writeError(c, h.log, err)
	}

	r, err := h.uc.CreateRitual(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Ritual dto.Ritual `json:"ritual"`
	}{Ritual: mapper.ToDTORitual(*r)})
}
