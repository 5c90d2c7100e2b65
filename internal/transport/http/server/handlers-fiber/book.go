package handlers_fiber

import (
	"net/http"

	"logia-admin/internal/entities"
	"logia-admin/internal/mapper"
	"logia-admin/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// GetBooks lists catalog books filtered by categoria and grado.
func (h *Handler) GetBooks(c *fiber.Ctx) error {
	page, err := pageFromQuery(c)
	if err != nil {
		return writeError(c, h.log, err)
	}

	books, err := h.uc.Books(c.Context(), entities.BookFilter{
		Category: c.Query("categoria"),
		Degree:   c.Query("grado"),
		Page:     page,
	})
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Books []dto.Book `json:"libros"`
	}{Books: mapper.ToDTOBooks(books)})
}

// PostBook adds a book to the catalog.
func (h *Handler) PostBook(c *fiber.Ctx) error {
	var body dto.Book
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	b, err := h.uc.CreateBook(c.Context(), mapper.FromDTOBook(body))
	if err != nil {
		return writeError(c, h.log, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Book dto.Book `json:"libro"`
	}{Book: mapper.ToDTOBook(*b)})
}
