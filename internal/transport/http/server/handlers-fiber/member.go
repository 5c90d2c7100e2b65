package handlers_fiber

import (
	"net/http"

	"logia-admin/internal/entities"
	"logia-admin/internal/mapper"
	"logia-admin/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// GetMembers lists members filtered by estado and grado.
func (h *Handler) GetMembers(c *fiber.Ctx) error {
	page, err := pageFromQuery(c)
	if err != nil {
		return writeError(c, h.log, err)
	}

	members, err := h.uc.Members(c.Context(), entities.MemberFilter{
		Status: entities.MemberStatus(c.Query("estado")),
		Degree: c.Query("grado"),
		Page:   page,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Members []dto.Member `json:"miembros"`
	}{Members: mapper.ToDTOMembers(members)})
}

// GetMember returns a member by id.
func (h *Handler) GetMember(c *fiber.Ctx) error {
	member, err := h.uc.Member(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Member dto.Member `json:"miembro"`
	}{Member: mapper.ToDTOMember(*member)})
}

// PostMember registers a new member.
func (h *Handler) PostMember(c *fiber.Ctx) error {
	var body dto.Member
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	in, err := mapper.FromDTOMember(body)
	if err != nil {
		return writeError(c, h.log, err)
	}

	member, err := h.uc.CreateMember(c.Context(), in)
	if err != nil {
		h.log.Infow("create member rejected", "error", err.Error())
		return writeError(c, h.log, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Member dto.Member `json:"miembro"`
	}{Member: mapper.ToDTOMember(*member)})
}
