package handlers_fiber

import (
	"net/http"

	"logia-admin/internal/entities"
	"logia-admin/internal/mapper"
	"logia-admin/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// GetDocuments lists library documents filtered by categoria and grado.
func (h *Handler) GetDocuments(c *fiber.Ctx) error {
	page, err := pageFromQuery(c)
	if err != nil {
		return writeError(c, h.log, err)
	}

	docs, err := h.uc.Documents(c.Context(), entities.DocumentFilter{
		Category: c.Query("categoria"),
		Degree:   c.Query("grado"),
		Page:     page,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Documents []dto.Document `json:"documentos"`
	}{Documents: mapper.ToDTODocuments(docs)})
}

// GetDocument returns a library document by id.
func (h *Handler) GetDocument(c *fiber.Ctx) error {
	doc, err := h.uc.Document(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Document dto.Document `json:"documento"`
	}{Document: mapper.ToDTODocument(*doc)})
}

// PostDocument uploads a document record.
func (h *Handler) PostDocument(c *fiber.Ctx) error {
	var body dto.Document
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	in, err := mapper.FromDTODocument(body)
	if err != nil {
		return writeError(c, h.log, err)
	}

	doc, err := h.uc.CreateDocument(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Document dto.Document `json:"documento"`
	}{Document: mapper.ToDTODocument(*doc)})
}
