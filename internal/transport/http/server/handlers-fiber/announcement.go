package handlers_fiber

import (
	"net/http"

	"logia-admin/internal/entities"
	"logia-admin/internal/mapper"
	"logia-admin/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// GetAnnouncements lists announcements, newest first.
func (h *Handler) GetAnnouncements(c *fiber.Ctx) error {
	page, err := pageFromQuery(c)
	if err != nil {
		return writeError(c, h.log, err)
	}

	list, err := h.uc.Announcements(c.Context(), entities.AnnouncementFilter{
		Priority: entities.Priority(c.Query("prioridad")),
		Page:     page,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Announcements []dto.Announcement `json:"anuncios"`
	}{Announcements: mapper.ToDTOAnnouncements(list)})
}

// PostAnnouncement publishes an announcement.
func (h *Handler) PostAnnouncement(c *fiber.Ctx) error {
	var body dto.Announcement
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	in, err := mapper.FromDTOAnnouncement(body)
	if err != nil {
		return writeError(c, h.log, err)
	}

	a, err := h.uc.CreateAnnouncement(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Announcement dto.Announcement `json:"anuncio"`
	}{Announcement: mapper.ToDTOAnnouncement(*a)})
}
